package domain

import (
	"time"
)

// DailyRecord é uma linha diária de desempenho de um anúncio de testeo ou de
// um componente de escala. Os campos derivados são calculados pelo serviço de
// métricas a partir do snapshot do funil vigente no momento do registro e NÃO
// são recalculados automaticamente quando o funil muda depois.
type DailyRecord struct {
	Date               time.Time      `json:"date"`
	EntityLabel        string         `json:"entity"`
	Investment         float64        `json:"investment"`
	InitiatedCheckouts int            `json:"initiated_checkouts"`
	SalesByAlias       map[string]int `json:"sales_by_alias"`

	// Campos derivados
	GrossRevenue float64 `json:"gross_revenue"`
	NetRevenue   float64 `json:"net_revenue"`
	GrossProfit  float64 `json:"gross_profit"`
	NetProfit    float64 `json:"net_profit"`
	GrossROAS    float64 `json:"gross_roas"`
	NetROAS      float64 `json:"net_roas"`
}

// PrincipalSales retorna as vendas do produto principal (0 se ausente)
func (r *DailyRecord) PrincipalSales() int {
	return r.SalesByAlias[PrincipalAlias]
}

// Clone devolve uma cópia profunda do registro, incluindo o mapa de vendas
func (r *DailyRecord) Clone() *DailyRecord {
	out := *r
	out.SalesByAlias = make(map[string]int, len(r.SalesByAlias))
	for alias, count := range r.SalesByAlias {
		out.SalesByAlias[alias] = count
	}
	return &out
}

// RecordInput é a entrada bruta de um registro diário, antes do cálculo dos
// campos derivados
type RecordInput struct {
	Date               time.Time      `json:"date"`
	EntityLabel        string         `json:"entity"`
	Investment         float64        `json:"investment"`
	InitiatedCheckouts int            `json:"initiated_checkouts"`
	SalesByAlias       map[string]int `json:"sales_by_alias"`
}

// ToRecord converte a entrada em um DailyRecord ainda sem campos derivados
func (in RecordInput) ToRecord() *DailyRecord {
	sales := make(map[string]int, len(in.SalesByAlias))
	for alias, count := range in.SalesByAlias {
		sales[alias] = count
	}
	return &DailyRecord{
		Date:               in.Date,
		EntityLabel:        in.EntityLabel,
		Investment:         in.Investment,
		InitiatedCheckouts: in.InitiatedCheckouts,
		SalesByAlias:       sales,
	}
}
