package authenticating

import (
	"errors"
	"fmt"
)

var (
	// Erros de autenticação
	ErrInvalidCredentials = errors.New("credenciais inválidas")
	ErrUserDisabled       = errors.New("usuário desativado")
	ErrUserNotFound       = errors.New("usuário não encontrado")
	ErrInvalidToken       = errors.New("token inválido")
	ErrExpiredToken       = errors.New("token expirado")
	ErrUserAlreadyExists  = errors.New("usuário já existe")
	ErrEmailNotAuthorized = errors.New("email fora da lista de sócios autorizados")

	// Erros de validação
	ErrInvalidRequest      = errors.New("requisição inválida")
	ErrMissingRequiredData = errors.New("dados obrigatórios ausentes")
	ErrInvalidFormat       = errors.New("formato de dados inválido")

	// Erros relacionados a senha
	ErrWeakPassword = errors.New("senha fraca")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
)

// AuthError carrega o erro base com o código exposto pela API e o
// contexto do usuário envolvido, quando houver.
type AuthError struct {
	Err     error
	Code    string
	UserID  int
	Details string
}

func (e *AuthError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

func NewAuthError(baseErr error, code string, details string) *AuthError {
	return &AuthError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}

// NewUserAuthError cria um erro de autenticação com contexto de usuário
func NewUserAuthError(baseErr error, code string, userID int, details string) *AuthError {
	return &AuthError{
		Err:     baseErr,
		Code:    code,
		UserID:  userID,
		Details: details,
	}
}
