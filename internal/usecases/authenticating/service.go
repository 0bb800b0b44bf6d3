package authenticating

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/kbrerx/Centro-de-operaciones-INFINITY/infrastructure/repository"
	"github.com/kbrerx/Centro-de-operaciones-INFINITY/internal/config"
	"github.com/kbrerx/Centro-de-operaciones-INFINITY/internal/domain"
	"github.com/kbrerx/Centro-de-operaciones-INFINITY/pkg/apiErrors"
)

type Authenticator interface {
	CreateUser(user *domain.User) (*domain.User, error)
	LoginUser(email, password string) (string, error)
	GetUserProfile(userID int) (*domain.User, error)
	ListUser() ([]*domain.User, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
	ChangePassword(userID int, currentPassword, newPassword string) error
	ValidatePasswordStrength(password string) error
}

type Service struct {
	userRepo repository.UserRepository
	cfg      *config.Config
}

func NewService(userRepo repository.UserRepository, cfg *config.Config) Authenticator {
	return &Service{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

// CreateUser cadastra um sócio do time. O cadastro é fechado: apenas emails
// presentes na lista autorizada da configuração são aceitos.
func (s *Service) CreateUser(user *domain.User) (*domain.User, error) {
	if user.Email == "" || user.Name == "" || user.PasswordHash == "" {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Email, nome e senha são obrigatórios")
	}

	user.Email = handleEmail(user.Email)

	if !s.cfg.IsEmailAuthorized(user.Email) {
		return nil, NewAuthError(ErrEmailNotAuthorized, apiErrors.ErrEmailNotAuthorized, "Email fora da lista de sócios autorizados")
	}

	userDatabase, err := s.userRepo.GetUserByEmail(user.Email)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar usuário no banco de dados")
	}
	if userDatabase != nil {
		return nil, NewAuthError(ErrUserAlreadyExists, apiErrors.ErrUserAlreadyExists, "Email já cadastrado")
	}

	if err := s.ValidatePasswordStrength(user.PasswordHash); err != nil {
		return nil, NewAuthError(ErrWeakPassword, apiErrors.ErrInvalidFormat, err.Error())
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.PasswordHash), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user.PasswordHash = string(hashedPassword)
	user.Active = true

	user, err = s.userRepo.CreateUser(user)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao criar usuário")
	}

	return user, nil
}

func handleEmail(s string) string {
	email := strings.ToLower(s)
	email = strings.TrimSpace(email)
	email = strings.ReplaceAll(email, " ", "")
	return email
}

func (s *Service) ListUser() ([]*domain.User, error) {
	users, err := s.userRepo.ListUser()
	if err != nil {
		return nil, err
	}

	return users, nil
}

func (s *Service) LoginUser(email, password string) (string, error) {
	if email == "" || password == "" {
		return "", NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Email e senha são obrigatórios")
	}

	email = handleEmail(email)

	user, err := s.userRepo.GetUserByEmail(email)
	if err != nil {
		return "", NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar usuário no banco de dados")
	}

	if user == nil {
		return "", NewAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, "Usuário não encontrado")
	}

	if !user.Active {
		return "", NewUserAuthError(ErrUserDisabled, apiErrors.ErrUserDisabled, user.ID, "Conta desativada")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", NewUserAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, user.ID, "Senha incorreta")
	}

	token, err := generateJWT(user, s.cfg.Auth.Secret)
	if err != nil {
		return "", NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao gerar token de autenticação")
	}

	return token, nil
}

func (s *Service) GetUserProfile(userID int) (*domain.User, error) {
	user, err := s.userRepo.GetUserByID(userID)
	if err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return user, nil
}

func generateJWT(user *domain.User, secretKey string) (string, error) {
	claims := domain.Claims{
		UserID:    user.ID,
		UserName:  user.Name,
		UserEmail: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secretKey))
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Auth.Secret), nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*domain.Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, ErrInvalidToken
}

func (s *Service) ValidatePasswordStrength(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("a senha deve conter pelo menos 8 caracteres")
	}

	var (
		hasUpper   bool
		hasLower   bool
		hasNumber  bool
		hasSpecial bool
	)

	const (
		lowerChars   = "abcdefghijklmnopqrstuvwxyz"
		upperChars   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
		numberChars  = "0123456789"
		specialChars = "!@#$%^&*()-_=+[]{}|;:,.<>?"
	)

	for _, char := range password {
		switch {
		case strings.ContainsRune(lowerChars, char):
			hasLower = true
		case strings.ContainsRune(upperChars, char):
			hasUpper = true
		case strings.ContainsRune(numberChars, char):
			hasNumber = true
		case strings.ContainsRune(specialChars, char):
			hasSpecial = true
		}
	}

	if !hasUpper {
		return fmt.Errorf("a senha deve conter pelo menos uma letra maiúscula")
	}
	if !hasLower {
		return fmt.Errorf("a senha deve conter pelo menos uma letra minúscula")
	}
	if !hasNumber {
		return fmt.Errorf("a senha deve conter pelo menos um número")
	}
	if !hasSpecial {
		return fmt.Errorf("a senha deve conter pelo menos um caractere especial")
	}

	return nil
}

// ChangePassword permite que um usuário altere sua própria senha
func (s *Service) ChangePassword(userID int, currentPassword, newPassword string) error {
	user, err := s.userRepo.GetUserByID(userID)
	if err != nil {
		return err
	}

	if user == nil {
		return ErrUserNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
		return ErrInvalidCredentials
	}

	if err := s.ValidatePasswordStrength(newPassword); err != nil {
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user.PasswordHash = string(hashedPassword)
	return s.userRepo.UpdateUser(user)
}
