package offering

import (
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/kbrerx/Centro-de-operaciones-INFINITY/internal/domain"
	"github.com/kbrerx/Centro-de-operaciones-INFINITY/internal/usecases/metrics"
	"github.com/kbrerx/Centro-de-operaciones-INFINITY/pkg/log"
	"github.com/kbrerx/Centro-de-operaciones-INFINITY/pkg/utils"
)

// CreateCampaignInput são os dados de criação de uma campanha de escala
type CreateCampaignInput struct {
	Name             string
	BaseAd           string
	Strategy         domain.ScaleStrategy
	ReplicationCount int
	DailyBudget      float64
}

// CreateScaleCampaign promove um anúncio vencedor de testeo a uma campanha de
// escala, gerando os componentes iniciais conforme a estratégia escolhida
func (s *Service) CreateScaleCampaign(offerID string, input CreateCampaignInput) (*domain.ScaleCampaign, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if !input.Strategy.Valid() {
		return nil, errors.Wrap(ErrInvalidStrategy, string(input.Strategy))
	}
	if input.Strategy.Replicates() && input.ReplicationCount < 1 {
		return nil, errors.Wrap(ErrInvalidRequest, "estratégia exige número de duplicados maior que zero")
	}
	if input.DailyBudget < 0 {
		return nil, errors.Wrap(ErrInvalidRequest, "orçamento diário não pode ser negativo")
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	var campaign *domain.ScaleCampaign
	err = s.mutateOffer(offerID, func(offer *domain.Offer) error {
		if offer.AdByName(input.BaseAd) == nil {
			return errors.Wrap(ErrAdNotFound, input.BaseAd)
		}
		for _, existing := range offer.Scale {
			if strings.EqualFold(existing.Name, name) {
				return errors.Wrap(ErrDuplicateName, name)
			}
		}

		campaign = &domain.ScaleCampaign{
			ID:               id,
			Name:             name,
			BaseAd:           input.BaseAd,
			Strategy:         input.Strategy,
			ReplicationCount: input.ReplicationCount,
			DailyBudget:      input.DailyBudget,
			Components:       domain.BuildComponents(input.Strategy, input.BaseAd, input.ReplicationCount),
			Records:          make([]*domain.DailyRecord, 0),
			Status:           domain.CampaignActive,
			CreatedAt:        time.Now().UTC(),
		}
		offer.Scale[campaign.ID] = campaign
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.L.WithFields(log.Fields{
		"offer_id":    offerID,
		"campaign_id": campaign.ID,
		"strategy":    string(campaign.Strategy),
	}).Info("Campanha de escala criada")

	return campaign, nil
}

// mutateCampaign resolve oferta e campanha e executa fn sob o mutex
func (s *Service) mutateCampaign(offerID, campaignID string, fn func(offer *domain.Offer, campaign *domain.ScaleCampaign) error) error {
	return s.mutateOffer(offerID, func(offer *domain.Offer) error {
		campaign, ok := offer.Scale[campaignID]
		if !ok {
			return errors.Wrap(ErrCampaignNotFound, campaignID)
		}
		return fn(offer, campaign)
	})
}

// AddScaleComponent acrescenta um componente avulso a uma campanha existente
func (s *Service) AddScaleComponent(offerID, campaignID, name string) (*domain.ScaleComponent, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	var component *domain.ScaleComponent
	err := s.mutateCampaign(offerID, campaignID, func(_ *domain.Offer, campaign *domain.ScaleCampaign) error {
		if campaign.ComponentByName(name) != nil {
			return errors.Wrap(ErrDuplicateName, name)
		}
		component = &domain.ScaleComponent{
			Name:   name,
			Status: domain.ComponentActive,
		}
		campaign.Components = append(campaign.Components, component)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return component, nil
}

// ToggleScaleComponent alterna um componente entre ativo e inativo
func (s *Service) ToggleScaleComponent(offerID, campaignID, name string) (*domain.ScaleComponent, error) {
	var component *domain.ScaleComponent
	err := s.mutateCampaign(offerID, campaignID, func(_ *domain.Offer, campaign *domain.ScaleCampaign) error {
		component = campaign.ComponentByName(name)
		if component == nil {
			return errors.Wrap(ErrComponentNotFound, name)
		}
		component.Status = component.Status.Toggle()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return component, nil
}

// ToggleScaleCampaign alterna a campanha inteira entre ativa e inativa
func (s *Service) ToggleScaleCampaign(offerID, campaignID string) (*domain.ScaleCampaign, error) {
	var campaign *domain.ScaleCampaign
	err := s.mutateCampaign(offerID, campaignID, func(_ *domain.Offer, c *domain.ScaleCampaign) error {
		c.Status = c.Status.Toggle()
		campaign = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return campaign, nil
}

// AddScaleRecord grava uma linha diária de um componente da campanha
func (s *Service) AddScaleRecord(offerID, campaignID string, input domain.RecordInput) (*domain.DailyRecord, error) {
	var record *domain.DailyRecord
	err := s.mutateCampaign(offerID, campaignID, func(offer *domain.Offer, campaign *domain.ScaleCampaign) error {
		if err := validateRecordInput(input, offer.Funnel); err != nil {
			return err
		}
		if campaign.ComponentByName(input.EntityLabel) == nil {
			return errors.Wrap(ErrComponentNotFound, input.EntityLabel)
		}

		record = metrics.Compute(input.ToRecord(), offer.Funnel, offer.CommissionPP)
		campaign.Records = append(campaign.Records, record)
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.L.WithFields(log.Fields{
		"offer_id":    offerID,
		"campaign_id": campaignID,
		"entity":      record.EntityLabel,
	}).Info("Registro de escala adicionado")

	return record, nil
}

// UpdateScaleRecord substitui um registro da campanha pelo índice
func (s *Service) UpdateScaleRecord(offerID, campaignID string, index int, input domain.RecordInput) (*domain.DailyRecord, error) {
	var record *domain.DailyRecord
	err := s.mutateCampaign(offerID, campaignID, func(offer *domain.Offer, campaign *domain.ScaleCampaign) error {
		if index < 0 || index >= len(campaign.Records) {
			return errors.Wrap(ErrRecordOutOfRange, fmt.Sprintf("índice %d", index))
		}
		if err := validateRecordInput(input, offer.Funnel); err != nil {
			return err
		}
		if campaign.ComponentByName(input.EntityLabel) == nil {
			return errors.Wrap(ErrComponentNotFound, input.EntityLabel)
		}

		record = metrics.Compute(input.ToRecord(), offer.Funnel, offer.CommissionPP)
		campaign.Records[index] = record
		return nil
	})
	if err != nil {
		return nil, err
	}
	return record, nil
}

// DeleteScaleRecord remove um registro da campanha pelo índice
func (s *Service) DeleteScaleRecord(offerID, campaignID string, index int) error {
	return s.mutateCampaign(offerID, campaignID, func(_ *domain.Offer, campaign *domain.ScaleCampaign) error {
		if index < 0 || index >= len(campaign.Records) {
			return errors.Wrap(ErrRecordOutOfRange, fmt.Sprintf("índice %d", index))
		}
		campaign.Records = append(campaign.Records[:index], campaign.Records[index+1:]...)
		return nil
	})
}
