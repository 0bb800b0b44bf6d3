package offering

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/kbrerx/Centro-de-operaciones-INFINITY/internal/domain"
	"github.com/kbrerx/Centro-de-operaciones-INFINITY/pkg/log"
	"github.com/kbrerx/Centro-de-operaciones-INFINITY/pkg/utils"
)

// AddFunnelItem acrescenta um item pós-compra ao funil da oferta. O alias é
// a letra do tipo seguida da contagem 1-based daquele tipo (B1, U2, D1...).
// Registros anteriores não são tocados: a ausência do alias no mapa de vendas
// equivale a zero.
func (s *Service) AddFunnelItem(offerID string, itemType domain.FunnelItemType, name string, price float64) (*domain.FunnelItem, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if !itemType.Valid() {
		return nil, errors.Wrap(ErrInvalidRequest, fmt.Sprintf("tipo de item inválido: %s", itemType))
	}
	if price <= 0 {
		return nil, ErrInvalidPrice
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	var item *domain.FunnelItem
	err = s.mutateOffer(offerID, func(offer *domain.Offer) error {
		alias := fmt.Sprintf("%s%d", itemType.AliasLetter(), offer.Funnel.CountByType(itemType)+1)
		item = &domain.FunnelItem{
			ID:     id,
			Name:   name,
			Type:   itemType,
			Price:  price,
			Alias:  alias,
			Status: domain.ItemActive,
		}
		offer.Funnel.Items = append(offer.Funnel.Items, item)
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.L.WithFields(log.Fields{
		"offer_id": offerID,
		"alias":    item.Alias,
	}).Info("Item adicionado ao funil")

	return item, nil
}

// ToggleFunnelItem alterna um item do funil entre ativo e arquivado. O
// produto principal não pode ser arquivado.
func (s *Service) ToggleFunnelItem(offerID, itemID string) (*domain.FunnelItem, error) {
	var item *domain.FunnelItem
	err := s.mutateOffer(offerID, func(offer *domain.Offer) error {
		item = offer.Funnel.ItemByID(itemID)
		if item == nil {
			return errors.Wrap(ErrItemNotFound, itemID)
		}
		if item.Type == domain.ItemPrincipal {
			return errors.Wrap(ErrInvalidRequest, "o produto principal não pode ser arquivado")
		}
		if item.Status == domain.ItemActive {
			item.Status = domain.ItemArchived
		} else {
			item.Status = domain.ItemActive
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}
