package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/kbrerx/Centro-de-operaciones-INFINITY/internal/domain"
)

func buildFunnel() *domain.FunnelModel {
	funnel := domain.NewFunnel(50)
	funnel.Items = append(funnel.Items,
		&domain.FunnelItem{ID: "b1", Name: "Bump garantía", Type: domain.ItemBump, Price: 20, Alias: "B1", Status: domain.ItemActive},
		&domain.FunnelItem{ID: "u1", Name: "Upsell curso", Type: domain.ItemUpsell, Price: 100, Alias: "U1", Status: domain.ItemArchived},
	)
	return funnel
}

func TestCompute(t *testing.T) {
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		record       *domain.DailyRecord
		commissionPP float64
		validate     func(t *testing.T, out *domain.DailyRecord)
	}{
		{
			name: "Vendas apenas do principal - facturação bruta é preço x quantidade",
			record: &domain.DailyRecord{
				Date:         date,
				EntityLabel:  "AD-01",
				Investment:   100,
				SalesByAlias: map[string]int{"PP": 3},
			},
			validate: func(t *testing.T, out *domain.DailyRecord) {
				assert.Equal(t, 150.0, out.GrossRevenue)
				assert.Equal(t, 150.0, out.NetRevenue)
				assert.Equal(t, 50.0, out.GrossProfit)
				assert.Equal(t, 50.0, out.NetProfit)
				assert.InDelta(t, 1.5, out.GrossROAS, 1e-9)
				assert.InDelta(t, 1.5, out.NetROAS, 1e-9)
			},
		},
		{
			name: "Comissão por venda do principal reduz apenas os campos líquidos",
			record: &domain.DailyRecord{
				Date:         date,
				EntityLabel:  "AD-01",
				Investment:   100,
				SalesByAlias: map[string]int{"PP": 3},
			},
			commissionPP: 10,
			validate: func(t *testing.T, out *domain.DailyRecord) {
				assert.Equal(t, 150.0, out.GrossRevenue)
				assert.Equal(t, 120.0, out.NetRevenue)
				assert.InDelta(t, 1.5, out.GrossROAS, 1e-9)
				assert.InDelta(t, 1.2, out.NetROAS, 1e-9)
			},
		},
		{
			name: "Item arquivado do funil ainda contribui para a facturação",
			record: &domain.DailyRecord{
				Date:         date,
				EntityLabel:  "AD-02",
				Investment:   50,
				SalesByAlias: map[string]int{"PP": 1, "U1": 1},
			},
			validate: func(t *testing.T, out *domain.DailyRecord) {
				assert.Equal(t, 150.0, out.GrossRevenue)
				assert.InDelta(t, 3.0, out.GrossROAS, 1e-9)
			},
		},
		{
			name: "Alias sem item correspondente contribui zero, nunca erro",
			record: &domain.DailyRecord{
				Date:         date,
				EntityLabel:  "AD-03",
				Investment:   10,
				SalesByAlias: map[string]int{"PP": 1, "X9": 4},
			},
			validate: func(t *testing.T, out *domain.DailyRecord) {
				assert.Equal(t, 50.0, out.GrossRevenue)
			},
		},
		{
			name: "Inversão zero - ROAS é zero mesmo com vendas (tráfego orgánico)",
			record: &domain.DailyRecord{
				Date:         date,
				EntityLabel:  "AD-04",
				Investment:   0,
				SalesByAlias: map[string]int{"PP": 2, "B1": 1},
			},
			validate: func(t *testing.T, out *domain.DailyRecord) {
				assert.Equal(t, 120.0, out.GrossRevenue)
				assert.Equal(t, 0.0, out.GrossROAS)
				assert.Equal(t, 0.0, out.NetROAS)
				assert.Equal(t, 120.0, out.NetProfit)
			},
		},
		{
			name: "Dia sem vendas - prejuízo igual à inversão",
			record: &domain.DailyRecord{
				Date:         date,
				EntityLabel:  "AD-05",
				Investment:   80,
				SalesByAlias: map[string]int{},
			},
			validate: func(t *testing.T, out *domain.DailyRecord) {
				assert.Equal(t, 0.0, out.GrossRevenue)
				assert.Equal(t, -80.0, out.NetProfit)
				assert.Equal(t, 0.0, out.NetROAS)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Compute(tt.record, buildFunnel(), tt.commissionPP)
			tt.validate(t, out)
		})
	}
}

func TestComputeNaoMutaEntrada(t *testing.T) {
	record := &domain.DailyRecord{
		Date:         time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		EntityLabel:  "AD-01",
		Investment:   100,
		SalesByAlias: map[string]int{"PP": 3},
	}

	out := Compute(record, buildFunnel(), 0)

	assert.NotSame(t, record, out)
	assert.Equal(t, 0.0, record.GrossRevenue)
	assert.Equal(t, 0.0, record.NetROAS)

	out.SalesByAlias["PP"] = 99
	assert.Equal(t, 3, record.SalesByAlias["PP"])
}

func TestComputeReaplicadoNaoAlteraResultado(t *testing.T) {
	record := &domain.DailyRecord{
		Date:         time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		EntityLabel:  "AD-01",
		Investment:   100,
		SalesByAlias: map[string]int{"PP": 3, "B1": 2},
	}

	once := Compute(record, buildFunnel(), 10)
	twice := Compute(once, buildFunnel(), 10)

	assert.Equal(t, once, twice)
}

func TestRecompute(t *testing.T) {
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	records := []*domain.DailyRecord{
		{Date: date, EntityLabel: "AD-01", Investment: 100, SalesByAlias: map[string]int{"PP": 3}},
		{Date: date.AddDate(0, 0, 1), EntityLabel: "AD-01", Investment: 50, SalesByAlias: map[string]int{"PP": 1}},
	}

	out := Recompute(records, buildFunnel(), 10)

	assert.Len(t, out, 2)
	assert.InDelta(t, 1.2, out[0].NetROAS, 1e-9)
	assert.InDelta(t, 0.8, out[1].NetROAS, 1e-9)

	// coleção original permanece sem campos derivados
	assert.Equal(t, 0.0, records[0].NetROAS)
}
