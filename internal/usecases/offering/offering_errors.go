package offering

import (
	"errors"
	"fmt"
)

// Erros do ciclo de vida de ofertas
var (
	// Erros de validação
	ErrInvalidRequest    = errors.New("requisição inválida")
	ErrEmptyName         = errors.New("nome não pode ser vazio")
	ErrInvalidPrice      = errors.New("preço deve ser maior que zero")
	ErrInvalidInvestment = errors.New("investimento não pode ser negativo")
	ErrInvalidCount      = errors.New("quantidade não pode ser negativa")
	ErrDuplicateName     = errors.New("nome já cadastrado")
	ErrInvalidStatus     = errors.New("status inválido")
	ErrInvalidStrategy   = errors.New("estratégia de escala inválida")
	ErrUnknownAlias      = errors.New("alias de funil desconhecido")

	// Erros de referência
	ErrOfferNotFound     = errors.New("oferta não encontrada")
	ErrItemNotFound      = errors.New("item do funil não encontrado")
	ErrAdNotFound        = errors.New("anúncio não encontrado")
	ErrCampaignNotFound  = errors.New("campanha de escala não encontrada")
	ErrComponentNotFound = errors.New("componente da campanha não encontrado")
	ErrRecordOutOfRange  = errors.New("índice de registro fora do intervalo")
	ErrTaskOutOfRange    = errors.New("índice de tarefa fora do intervalo")
	ErrTemplateNotFound  = errors.New("modelo de checklist não encontrado")
	ErrVaultNotFound     = errors.New("entrada da bóveda não encontrada")
	ErrChecklistMissing  = errors.New("oferta não possui checklist associado")

	// Erros de persistência
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
)

// OfferingError é um erro com contexto adicional do workspace
type OfferingError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	OfferID string // ID da oferta envolvida (quando aplicável)
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *OfferingError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *OfferingError) Unwrap() error {
	return e.Err
}

// IsValidationError verifica se o erro é de validação de entrada
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidRequest) ||
		errors.Is(err, ErrEmptyName) ||
		errors.Is(err, ErrInvalidPrice) ||
		errors.Is(err, ErrInvalidInvestment) ||
		errors.Is(err, ErrInvalidCount) ||
		errors.Is(err, ErrDuplicateName) ||
		errors.Is(err, ErrInvalidStatus) ||
		errors.Is(err, ErrInvalidStrategy) ||
		errors.Is(err, ErrUnknownAlias)
}

// IsNotFoundError verifica se o erro é de referência inexistente
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrOfferNotFound) ||
		errors.Is(err, ErrItemNotFound) ||
		errors.Is(err, ErrAdNotFound) ||
		errors.Is(err, ErrCampaignNotFound) ||
		errors.Is(err, ErrComponentNotFound) ||
		errors.Is(err, ErrRecordOutOfRange) ||
		errors.Is(err, ErrTaskOutOfRange) ||
		errors.Is(err, ErrTemplateNotFound) ||
		errors.Is(err, ErrVaultNotFound) ||
		errors.Is(err, ErrChecklistMissing)
}

// NewOfferingError cria um novo erro de oferta com contexto
func NewOfferingError(baseErr error, code string, offerID string, details string) *OfferingError {
	return &OfferingError{
		Err:     baseErr,
		Code:    code,
		OfferID: offerID,
		Details: details,
	}
}
