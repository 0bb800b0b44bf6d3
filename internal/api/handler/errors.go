package handler

import (
	"net/http"

	"github.com/pkg/errors"

	"github.com/kbrerx/Centro-de-operaciones-INFINITY/internal/usecases/offering"
	"github.com/kbrerx/Centro-de-operaciones-INFINITY/pkg/apiErrors"
)

// offeringErrorCodes mapeia os erros sentinela do workspace para os códigos
// de erro da API
var offeringErrorCodes = []struct {
	err  error
	code string
}{
	{offering.ErrOfferNotFound, apiErrors.ErrOfferNotFound},
	{offering.ErrItemNotFound, apiErrors.ErrItemNotFound},
	{offering.ErrAdNotFound, apiErrors.ErrAdNotFound},
	{offering.ErrCampaignNotFound, apiErrors.ErrCampaignNotFound},
	{offering.ErrComponentNotFound, apiErrors.ErrCampaignNotFound},
	{offering.ErrRecordOutOfRange, apiErrors.ErrRecordOutOfRange},
	{offering.ErrTaskOutOfRange, apiErrors.ErrRecordOutOfRange},
	{offering.ErrTemplateNotFound, apiErrors.ErrTemplateNotFound},
	{offering.ErrVaultNotFound, apiErrors.ErrVaultEntryInvalid},
	{offering.ErrChecklistMissing, apiErrors.ErrTemplateNotFound},
	{offering.ErrDuplicateName, apiErrors.ErrDuplicateName},
	{offering.ErrDatabaseOperation, apiErrors.ErrDatabaseOperation},
}

// handleOfferingError converte um erro do serviço de ofertas na resposta HTTP
// padronizada
func handleOfferingError(w http.ResponseWriter, err error) {
	var offeringErr *offering.OfferingError
	if errors.As(err, &offeringErr) {
		apiErrors.WriteError(w, offeringErr.Code, offeringErr.Error(), nil)
		return
	}

	for _, mapping := range offeringErrorCodes {
		if errors.Is(err, mapping.err) {
			apiErrors.WriteError(w, mapping.code, err.Error(), nil)
			return
		}
	}

	if offering.IsValidationError(err) {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
		return
	}

	if offering.IsNotFoundError(err) {
		apiErrors.WriteError(w, apiErrors.ErrOfferNotFound, err.Error(), nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao processar a operação", nil)
}
