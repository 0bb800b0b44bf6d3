package domain

import (
	"time"
)

// TestingAd é um anúncio em competição durante a fase de testeo
type TestingAd struct {
	Name   string          `json:"name"`
	Status ComponentStatus `json:"status"`
}

// Offer é um funil de produto sendo validado com tráfego pago. Possui um
// funil, os registros diários da fase de testeo e zero ou mais campanhas de
// escala construídas em torno de anúncios vencedores.
type Offer struct {
	ID             string                    `json:"id"`
	Name           string                    `json:"name"`
	FunnelType     string                    `json:"funnel_type"`
	Status         OfferStatus               `json:"status"`
	Funnel         *FunnelModel              `json:"funnel"`
	TestingAds     []*TestingAd              `json:"testing_ads"`
	TestingRecords []*DailyRecord            `json:"testing_records"`
	Scale          map[string]*ScaleCampaign `json:"scale"`
	CommissionPP   float64                   `json:"commission_pp"`
	TargetCPA      float64                   `json:"target_cpa"`
	Checklist      *ChecklistInstance        `json:"checklist,omitempty"`
	CreatedAt      time.Time                 `json:"created_at"`
}

// AdByName busca um anúncio de testeo pelo nome
func (o *Offer) AdByName(name string) *TestingAd {
	for _, ad := range o.TestingAds {
		if ad.Name == name {
			return ad
		}
	}
	return nil
}

// ActiveAds retorna os anúncios de testeo ativos
func (o *Offer) ActiveAds() []*TestingAd {
	active := make([]*TestingAd, 0, len(o.TestingAds))
	for _, ad := range o.TestingAds {
		if ad.Status == ComponentActive {
			active = append(active, ad)
		}
	}
	return active
}

// ScaleRecords concatena os registros de todas as campanhas de escala
func (o *Offer) ScaleRecords() []*DailyRecord {
	var records []*DailyRecord
	for _, campaign := range o.Scale {
		records = append(records, campaign.Records...)
	}
	return records
}

// AllRecords concatena registros de testeo e de escala, na ordem testeo
// primeiro. Usado pelo monitor global do funil.
func (o *Offer) AllRecords() []*DailyRecord {
	records := make([]*DailyRecord, 0, len(o.TestingRecords))
	records = append(records, o.TestingRecords...)
	records = append(records, o.ScaleRecords()...)
	return records
}

// BreakEvenROAS é o ROAS mínimo para cobrir a comissão por venda do produto
// principal: preço / (preço - comissão). Retorna 0 quando a comissão consome
// todo o preço.
func (o *Offer) BreakEvenROAS() float64 {
	price := o.Funnel.PrincipalPrice()
	netPerSale := price - o.CommissionPP
	if netPerSale <= 0 {
		return 0
	}
	return price / netPerSale
}
