package domain

import (
	"fmt"
	"time"
)

// ScaleComponent é um anúncio ou conjunto de anúncios dentro de uma campanha
// de escala
type ScaleComponent struct {
	Name   string          `json:"name"`
	Status ComponentStatus `json:"status"`
}

// ScaleCampaign é uma estrutura de maior orçamento construída em torno de um
// anúncio vencedor da fase de testeo. Todo registro referencia um componente
// existente pelo nome; componentes nunca ficam órfãos por construção.
type ScaleCampaign struct {
	ID               string            `json:"id"`
	Name             string            `json:"name"`
	BaseAd           string            `json:"base_ad"`
	Strategy         ScaleStrategy     `json:"strategy"`
	ReplicationCount int               `json:"replication_count,omitempty"`
	DailyBudget      float64           `json:"daily_budget"`
	Components       []*ScaleComponent `json:"components"`
	Records          []*DailyRecord    `json:"records"`
	Status           CampaignStatus    `json:"status"`
	CreatedAt        time.Time         `json:"created_at"`
}

// ComponentByName busca um componente pelo nome
func (c *ScaleCampaign) ComponentByName(name string) *ScaleComponent {
	for _, comp := range c.Components {
		if comp.Name == name {
			return comp
		}
	}
	return nil
}

// ActiveComponents retorna os componentes ativos da campanha
func (c *ScaleCampaign) ActiveComponents() []*ScaleComponent {
	active := make([]*ScaleComponent, 0, len(c.Components))
	for _, comp := range c.Components {
		if comp.Status == ComponentActive {
			active = append(active, comp)
		}
	}
	return active
}

// BuildComponents gera os componentes iniciais de uma campanha conforme a
// estratégia: duplicação de anúncios, duplicação de conjuntos ou o próprio
// anúncio base.
func BuildComponents(strategy ScaleStrategy, baseAd string, replicationCount int) []*ScaleComponent {
	var components []*ScaleComponent

	switch {
	case strategy == StrategyOneToManyAds && replicationCount >= 1:
		for i := 1; i <= replicationCount; i++ {
			components = append(components, &ScaleComponent{
				Name:   fmt.Sprintf("[AD %d] %s", i, baseAd),
				Status: ComponentActive,
			})
		}
	case strategy == StrategyOneToManySets && replicationCount >= 1:
		for i := 1; i <= replicationCount; i++ {
			components = append(components, &ScaleComponent{
				Name:   fmt.Sprintf("Conjunto de Anuncios %d", i),
				Status: ComponentActive,
			})
		}
	default:
		components = append(components, &ScaleComponent{
			Name:   baseAd,
			Status: ComponentActive,
		})
	}

	return components
}
