package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Códigos de erro da API
const (
	// Erros de autenticação (AUTH)
	ErrInvalidCredentials = "AUTH_001" // Credenciais inválidas
	ErrUserDisabled       = "AUTH_002" // Usuário desativado
	ErrUserNotFound       = "AUTH_003" // Usuário não encontrado
	ErrInvalidToken       = "AUTH_004" // Token inválido
	ErrExpiredToken       = "AUTH_005" // Token expirado
	ErrUserAlreadyExists  = "AUTH_006" // Usuário já existe
	ErrEmailNotAuthorized = "AUTH_007" // E-mail fora da lista autorizada

	// Erros de validação (VAL)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrDuplicateName       = "VAL_004" // Nome já cadastrado

	// Erros de referência (REF)
	ErrOfferNotFound     = "REF_001" // Oferta não encontrada
	ErrItemNotFound      = "REF_002" // Item do funil não encontrado
	ErrAdNotFound        = "REF_003" // Anúncio não encontrado
	ErrCampaignNotFound  = "REF_004" // Campanha não encontrada
	ErrRecordOutOfRange  = "REF_005" // Índice de registro fora do intervalo
	ErrTemplateNotFound  = "REF_006" // Modelo de checklist não encontrado
	ErrVaultEntryInvalid = "REF_007" // Entrada do baú não encontrada

	// Erros de configuração (CFG)
	ErrInvalidConfiguration = "CFG_001" // Configuração inválida

	// Erros do servidor (SRV)
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidCredentials: http.StatusUnauthorized,
	ErrUserDisabled:       http.StatusForbidden,
	ErrUserNotFound:       http.StatusNotFound,
	ErrInvalidToken:       http.StatusUnauthorized,
	ErrExpiredToken:       http.StatusUnauthorized,
	ErrUserAlreadyExists:  http.StatusBadRequest,
	ErrEmailNotAuthorized: http.StatusForbidden,

	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrDuplicateName:       http.StatusConflict,

	ErrOfferNotFound:     http.StatusNotFound,
	ErrItemNotFound:      http.StatusNotFound,
	ErrAdNotFound:        http.StatusNotFound,
	ErrCampaignNotFound:  http.StatusNotFound,
	ErrRecordOutOfRange:  http.StatusNotFound,
	ErrTemplateNotFound:  http.StatusNotFound,
	ErrVaultEntryInvalid: http.StatusNotFound,

	ErrInvalidConfiguration: http.StatusInternalServerError,

	ErrInternalServer:    http.StatusInternalServerError,
	ErrDatabaseOperation: http.StatusInternalServerError,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}

// FromError cria um erro de API a partir de um erro Go
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erro desconhecido",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
