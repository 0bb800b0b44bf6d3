package offering

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/kbrerx/Centro-de-operaciones-INFINITY/internal/domain"
	"github.com/kbrerx/Centro-de-operaciones-INFINITY/internal/usecases/metrics"
	"github.com/kbrerx/Centro-de-operaciones-INFINITY/pkg/log"
)

// AddTestingAd registra um novo anúncio na competição de testeo
func (s *Service) AddTestingAd(offerID, name string) (*domain.TestingAd, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	var ad *domain.TestingAd
	err := s.mutateOffer(offerID, func(offer *domain.Offer) error {
		if offer.AdByName(name) != nil {
			return errors.Wrap(ErrDuplicateName, name)
		}
		ad = &domain.TestingAd{
			Name:   name,
			Status: domain.ComponentActive,
		}
		offer.TestingAds = append(offer.TestingAds, ad)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ad, nil
}

// ToggleTestingAd alterna um anúncio de testeo entre ativo e inativo. Os
// registros históricos do anúncio permanecem intactos.
func (s *Service) ToggleTestingAd(offerID, name string) (*domain.TestingAd, error) {
	var ad *domain.TestingAd
	err := s.mutateOffer(offerID, func(offer *domain.Offer) error {
		ad = offer.AdByName(name)
		if ad == nil {
			return errors.Wrap(ErrAdNotFound, name)
		}
		ad.Status = ad.Status.Toggle()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ad, nil
}

// AddTestingRecord grava uma linha diária de desempenho de um anúncio de
// testeo, com os campos derivados calculados sob o funil vigente
func (s *Service) AddTestingRecord(offerID string, input domain.RecordInput) (*domain.DailyRecord, error) {
	var record *domain.DailyRecord
	err := s.mutateOffer(offerID, func(offer *domain.Offer) error {
		if err := validateRecordInput(input, offer.Funnel); err != nil {
			return err
		}
		if offer.AdByName(input.EntityLabel) == nil {
			return errors.Wrap(ErrAdNotFound, input.EntityLabel)
		}

		record = metrics.Compute(input.ToRecord(), offer.Funnel, offer.CommissionPP)
		offer.TestingRecords = append(offer.TestingRecords, record)
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.L.WithFields(log.Fields{
		"offer_id": offerID,
		"entity":   record.EntityLabel,
		"date":     record.Date.Format("2006-01-02"),
	}).Info("Registro de testeo adicionado")

	return record, nil
}

// UpdateTestingRecord substitui um registro de testeo pelo índice, com os
// campos derivados recalculados sob o funil atual
func (s *Service) UpdateTestingRecord(offerID string, index int, input domain.RecordInput) (*domain.DailyRecord, error) {
	var record *domain.DailyRecord
	err := s.mutateOffer(offerID, func(offer *domain.Offer) error {
		if index < 0 || index >= len(offer.TestingRecords) {
			return errors.Wrap(ErrRecordOutOfRange, fmt.Sprintf("índice %d", index))
		}
		if err := validateRecordInput(input, offer.Funnel); err != nil {
			return err
		}
		if offer.AdByName(input.EntityLabel) == nil {
			return errors.Wrap(ErrAdNotFound, input.EntityLabel)
		}

		record = metrics.Compute(input.ToRecord(), offer.Funnel, offer.CommissionPP)
		offer.TestingRecords[index] = record
		return nil
	})
	if err != nil {
		return nil, err
	}
	return record, nil
}

// DeleteTestingRecord remove um registro de testeo pelo índice
func (s *Service) DeleteTestingRecord(offerID string, index int) error {
	return s.mutateOffer(offerID, func(offer *domain.Offer) error {
		if index < 0 || index >= len(offer.TestingRecords) {
			return errors.Wrap(ErrRecordOutOfRange, fmt.Sprintf("índice %d", index))
		}
		offer.TestingRecords = append(offer.TestingRecords[:index], offer.TestingRecords[index+1:]...)
		return nil
	})
}

// validateRecordInput valida a entrada bruta de um registro diário contra o
// funil da oferta
func validateRecordInput(input domain.RecordInput, funnel *domain.FunnelModel) error {
	if input.Date.IsZero() {
		return errors.Wrap(ErrInvalidRequest, "data obrigatória")
	}
	if strings.TrimSpace(input.EntityLabel) == "" {
		return errors.Wrap(ErrInvalidRequest, "entidade obrigatória")
	}
	if input.Investment < 0 {
		return ErrInvalidInvestment
	}
	if input.InitiatedCheckouts < 0 {
		return ErrInvalidCount
	}
	for alias, count := range input.SalesByAlias {
		if count < 0 {
			return errors.Wrap(ErrInvalidCount, alias)
		}
		if funnel.ItemByAlias(alias) == nil {
			return errors.Wrap(ErrUnknownAlias, alias)
		}
	}
	return nil
}
