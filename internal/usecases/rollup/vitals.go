package rollup

import (
	"sort"
	"time"

	"github.com/kbrerx/Centro-de-operaciones-INFINITY/internal/domain"
	"github.com/kbrerx/Centro-de-operaciones-INFINITY/pkg/utils"
)

// ItemAdoption é a taxa de adoção de um item de backend em relação às vendas
// do produto principal
type ItemAdoption struct {
	Alias        string  `json:"alias"`
	Name         string  `json:"name"`
	Sales        int     `json:"sales"`
	AdoptionRate float64 `json:"adoption_rate"`
}

// FunnelVitals são os signos vitais do funil: conversão de checkout e adoção
// dos itens de backend
type FunnelVitals struct {
	InitiatedCheckouts int            `json:"initiated_checkouts"`
	PrincipalSales     int            `json:"principal_sales"`
	CheckoutRate       float64        `json:"checkout_rate"`
	Adoption           []ItemAdoption `json:"adoption"`
}

// Vitals computa as taxas de conversão globais sobre um conjunto de
// registros. Percentuais arredondados a duas casas; denominador zero rende 0.
func Vitals(records []*domain.DailyRecord, funnel *domain.FunnelModel) FunnelVitals {
	vitals := FunnelVitals{}

	totalSales := make(map[string]int)
	for _, record := range records {
		vitals.InitiatedCheckouts += record.InitiatedCheckouts
		for alias, count := range record.SalesByAlias {
			totalSales[alias] += count
		}
	}
	vitals.PrincipalSales = totalSales[domain.PrincipalAlias]

	if vitals.InitiatedCheckouts > 0 {
		vitals.CheckoutRate = utils.RoundWithTwoDecimalPlace(
			float64(vitals.PrincipalSales) / float64(vitals.InitiatedCheckouts) * 100,
		)
	}

	for _, item := range funnel.Items {
		if item.Alias == domain.PrincipalAlias {
			continue
		}
		adoption := ItemAdoption{Alias: item.Alias, Name: item.Name, Sales: totalSales[item.Alias]}
		if vitals.PrincipalSales > 0 {
			adoption.AdoptionRate = utils.RoundWithTwoDecimalPlace(
				float64(adoption.Sales) / float64(vitals.PrincipalSales) * 100,
			)
		}
		vitals.Adoption = append(vitals.Adoption, adoption)
	}

	return vitals
}

// ConsistencyCalendar é a grade anúncio × dia indicando se houve venda do
// produto principal, restrita aos últimos N dias distintos com dados
type ConsistencyCalendar struct {
	Dates   []string                   `json:"dates"`
	Entries map[string]map[string]bool `json:"entries"`
}

// Consistency monta o calendário de consistência dos últimos lastDays dias
// distintos presentes nos registros
func Consistency(records []*domain.DailyRecord, lastDays int) ConsistencyCalendar {
	seen := make(map[string]struct{})
	for _, record := range records {
		seen[record.Date.Format(time.DateOnly)] = struct{}{}
	}

	dates := make([]string, 0, len(seen))
	for date := range seen {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	if lastDays > 0 && len(dates) > lastDays {
		dates = dates[len(dates)-lastDays:]
	}

	inWindow := make(map[string]struct{}, len(dates))
	for _, date := range dates {
		inWindow[date] = struct{}{}
	}

	entries := make(map[string]map[string]bool)
	for _, record := range records {
		date := record.Date.Format(time.DateOnly)
		if _, ok := inWindow[date]; !ok {
			continue
		}
		if entries[record.EntityLabel] == nil {
			entries[record.EntityLabel] = make(map[string]bool, len(dates))
			for _, d := range dates {
				entries[record.EntityLabel][d] = false
			}
		}
		if record.PrincipalSales() > 0 {
			entries[record.EntityLabel][date] = true
		}
	}

	return ConsistencyCalendar{Dates: dates, Entries: entries}
}
