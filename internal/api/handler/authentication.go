package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/kbrerx/Centro-de-operaciones-INFINITY/internal/domain"
	"github.com/kbrerx/Centro-de-operaciones-INFINITY/internal/usecases/authenticating"
	"github.com/kbrerx/Centro-de-operaciones-INFINITY/pkg/apiErrors"
	"github.com/kbrerx/Centro-de-operaciones-INFINITY/pkg/middleware"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}

func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		token, err := service.LoginUser(req.Email, req.Password)
		if err != nil {
			handleAuthError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{
			"token": token,
		})
	}
}

// CreateUser cadastra um sócio do time; o serviço rejeita emails fora da
// lista autorizada
func CreateUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		user, err := service.CreateUser(&domain.User{
			Name:         req.Name,
			Email:        req.Email,
			PasswordHash: req.Password,
		})
		if err != nil {
			handleAuthError(w, err)
			return
		}

		user.PasswordHash = ""
		writeJSON(w, http.StatusCreated, user)
	}
}

// GetMe retorna as informações do usuário logado
func GetMe(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		user, err := service.GetUserProfile(userClaims.UserID)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao obter dados do usuário", nil)
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}

// ListUsers lista os sócios cadastrados no workspace
func ListUsers(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := service.ListUser()
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar usuários", nil)
			return
		}

		writeJSON(w, http.StatusOK, users)
	}
}

// ChangePassword permite que o usuário logado altere a própria senha
func ChangePassword(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var req ChangePasswordRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		if err := service.ChangePassword(userClaims.UserID, req.CurrentPassword, req.NewPassword); err != nil {
			handleAuthError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{
			"message": "Senha alterada com sucesso",
		})
	}
}

// handleAuthError trata erros de autenticação e retorna a resposta apropriada
func handleAuthError(w http.ResponseWriter, err error) {
	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) {
		apiErrors.WriteError(w, authErr.Code, authErr.Error(), nil)
		return
	}

	switch {
	case errors.Is(err, authenticating.ErrInvalidCredentials):
		apiErrors.WriteError(w, apiErrors.ErrInvalidCredentials, "Credenciais inválidas", nil)

	case errors.Is(err, authenticating.ErrUserDisabled):
		apiErrors.WriteError(w, apiErrors.ErrUserDisabled, "Usuário desativado", nil)

	case errors.Is(err, authenticating.ErrUserNotFound):
		apiErrors.WriteError(w, apiErrors.ErrUserNotFound, "Usuário não encontrado", nil)

	case errors.Is(err, authenticating.ErrEmailNotAuthorized):
		apiErrors.WriteError(w, apiErrors.ErrEmailNotAuthorized, "Email fora da lista de sócios autorizados", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao processar autenticação", nil)
	}
}
