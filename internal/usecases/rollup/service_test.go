package rollup

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/kbrerx/Centro-de-operaciones-INFINITY/internal/domain"
)

func record(date string, entity string, investment float64, checkouts int, sales map[string]int) *domain.DailyRecord {
	parsed, _ := time.Parse(time.DateOnly, date)
	gross := 0.0
	for alias, count := range sales {
		price := 0.0
		switch alias {
		case "PP":
			price = 50
		case "B1":
			price = 20
		}
		gross += float64(count) * price
	}
	return &domain.DailyRecord{
		Date:               parsed,
		EntityLabel:        entity,
		Investment:         investment,
		InitiatedCheckouts: checkouts,
		SalesByAlias:       sales,
		GrossRevenue:       gross,
		NetRevenue:         gross,
		NetProfit:          gross - investment,
	}
}

func TestAggregatePorAnuncio(t *testing.T) {
	records := []*domain.DailyRecord{
		record("2025-04-07", "AD-01", 100, 5, map[string]int{"PP": 2}),
		record("2025-04-08", "AD-01", 50, 3, map[string]int{"PP": 2, "B1": 1}),
		record("2025-04-07", "AD-02", 30, 1, map[string]int{}),
	}

	rows := Aggregate(records, GroupByEntity, FunnelContext{PrincipalPrice: 50})

	assert.Len(t, rows, 2)

	var ad01 Row
	for _, row := range rows {
		if row.Key == "AD-01" {
			ad01 = row
		}
	}

	assert.Equal(t, 150.0, ad01.Investment)
	assert.Equal(t, 8, ad01.InitiatedCheckouts)
	assert.Equal(t, 220.0, ad01.GrossRevenue) // 4x50 + 1x20
	assert.Equal(t, 4, ad01.PrincipalSales)
	assert.InDelta(t, 37.5, ad01.CPA, 1e-9)             // 150/4
	assert.Equal(t, 200.0, ad01.FrontEndRevenue)        // 4x50
	assert.InDelta(t, 200.0/150.0, ad01.FrontEndROAS, 1e-9)
	assert.InDelta(t, 220.0/150.0, ad01.NetROAS, 1e-9)
}

func TestAggregateConservaTotais(t *testing.T) {
	records := []*domain.DailyRecord{
		record("2025-04-07", "AD-01", 100, 5, map[string]int{"PP": 2}),
		record("2025-04-08", "AD-02", 50, 3, map[string]int{"PP": 1}),
		record("2025-04-14", "AD-01", 70, 2, map[string]int{"PP": 3}),
	}

	for _, groupBy := range []GroupBy{GroupByEntity, GroupByDay, GroupByWeek, GroupByMonth, GroupByWeekday} {
		rows := Aggregate(records, groupBy, FunnelContext{PrincipalPrice: 50})

		totalInvestment, totalSales := 0.0, 0
		for _, row := range rows {
			totalInvestment += row.Investment
			totalSales += row.PrincipalSales
		}

		assert.Equal(t, 220.0, totalInvestment, "group_by=%s", groupBy)
		assert.Equal(t, 6, totalSales, "group_by=%s", groupBy)
	}
}

func TestAggregatePorSemana(t *testing.T) {
	records := []*domain.DailyRecord{
		record("2025-04-09", "AD-01", 10, 0, map[string]int{"PP": 1}), // quarta -> semana de 07/04
		record("2025-04-13", "AD-01", 20, 0, map[string]int{"PP": 1}), // domingo -> mesma semana
		record("2025-04-14", "AD-01", 30, 0, map[string]int{"PP": 1}), // segunda -> semana seguinte
	}

	rows := Aggregate(records, GroupByWeek, FunnelContext{PrincipalPrice: 50})

	assert.Len(t, rows, 2)
	assert.Equal(t, "2025-04-07", rows[0].Key)
	assert.Equal(t, 30.0, rows[0].Investment)
	assert.Equal(t, "2025-04-14", rows[1].Key)
	assert.Equal(t, 30.0, rows[1].Investment)
}

func TestAggregatePorMes(t *testing.T) {
	records := []*domain.DailyRecord{
		record("2025-03-31", "AD-01", 10, 0, map[string]int{"PP": 1}),
		record("2025-04-01", "AD-01", 20, 0, map[string]int{"PP": 1}),
	}

	rows := Aggregate(records, GroupByMonth, FunnelContext{PrincipalPrice: 50})

	assert.Len(t, rows, 2)
	assert.Equal(t, "2025-03", rows[0].Key)
	assert.Equal(t, "Marzo 2025", rows[0].Label)
	assert.Equal(t, "2025-04", rows[1].Key)
	assert.Equal(t, "Abril 2025", rows[1].Label)
}

func TestAggregatePorDiaDaSemana(t *testing.T) {
	records := []*domain.DailyRecord{
		record("2025-04-07", "AD-01", 100, 0, map[string]int{"PP": 2}), // segunda
		record("2025-04-14", "AD-01", 50, 0, map[string]int{"PP": 1}),  // segunda seguinte
		record("2025-04-11", "AD-01", 30, 0, map[string]int{}),         // sexta
	}

	rows := Aggregate(records, GroupByWeekday, FunnelContext{PrincipalPrice: 50})

	// sempre sete linhas, Lunes primeiro, mesmo sem dados
	assert.Len(t, rows, 7)
	assert.Equal(t, "Lunes", rows[0].Label)
	assert.Equal(t, "Domingo", rows[6].Label)

	assert.Equal(t, 150.0, rows[0].Investment)
	assert.Equal(t, 3, rows[0].PrincipalSales)
	assert.Equal(t, 30.0, rows[4].Investment) // Viernes
	assert.Equal(t, 0.0, rows[1].Investment)  // Martes sem dados
	assert.NotNil(t, rows[1].SalesByAlias)
}

func TestAggregateNaoMutaRegistros(t *testing.T) {
	original := record("2025-04-07", "AD-01", 100, 5, map[string]int{"PP": 2})
	records := []*domain.DailyRecord{original}

	rows := Aggregate(records, GroupByEntity, FunnelContext{PrincipalPrice: 50})
	rows[0].SalesByAlias["PP"] = 99

	assert.Equal(t, 2, original.SalesByAlias["PP"])
	assert.Equal(t, 100.0, original.Investment)
}

func TestAggregateSemInversaoNoBalde(t *testing.T) {
	records := []*domain.DailyRecord{
		record("2025-04-07", "ORGANICO", 0, 0, map[string]int{"PP": 3}),
	}

	rows := Aggregate(records, GroupByEntity, FunnelContext{PrincipalPrice: 50})

	assert.Len(t, rows, 1)
	assert.Equal(t, 0.0, rows[0].NetROAS)
	assert.Equal(t, 0.0, rows[0].FrontEndROAS)
	assert.InDelta(t, 0.0, rows[0].CPA, 1e-9)
	assert.Equal(t, 150.0, rows[0].FrontEndRevenue)
}

func TestGroupByValid(t *testing.T) {
	assert.True(t, GroupByEntity.Valid())
	assert.True(t, GroupByWeekday.Valid())
	assert.False(t, GroupBy("quarter").Valid())
	assert.False(t, GroupBy("").Valid())
}
