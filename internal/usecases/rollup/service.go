// Package rollup agrega coleções de registros diários por anúncio/componente
// ou por balde temporal (dia, semana ISO, mês, dia da semana) e rederiva as
// métricas financeiras sobre o agregado. Nenhuma função muta os registros de
// origem.
package rollup

import (
	"fmt"
	"sort"
	"time"

	"github.com/kbrerx/Centro-de-operaciones-INFINITY/internal/domain"
)

// GroupBy seleciona a chave de agrupamento
type GroupBy string

const (
	GroupByEntity  GroupBy = "entity"
	GroupByDay     GroupBy = "day"
	GroupByWeek    GroupBy = "week"
	GroupByMonth   GroupBy = "month"
	GroupByWeekday GroupBy = "weekday"
)

func (g GroupBy) Valid() bool {
	switch g {
	case GroupByEntity, GroupByDay, GroupByWeek, GroupByMonth, GroupByWeekday:
		return true
	}
	return false
}

// FunnelContext carrega o preço do produto principal e a comissão, usados
// para rederivar CPA, facturação front-end e ROAS neto sobre o agregado
type FunnelContext struct {
	PrincipalPrice float64
	CommissionPP   float64
}

// Row é uma linha agregada. Key identifica o balde (nome do anúncio, data
// ISO, início da semana, "YYYY-MM" ou dia da semana); Label é a forma de
// exibição.
type Row struct {
	Key   string `json:"key"`
	Label string `json:"label"`

	Investment         float64        `json:"investment"`
	InitiatedCheckouts int            `json:"initiated_checkouts"`
	GrossRevenue       float64        `json:"gross_revenue"`
	NetProfit          float64        `json:"net_profit"`
	SalesByAlias       map[string]int `json:"sales_by_alias"`
	PrincipalSales     int            `json:"principal_sales"`

	// Métricas rederivadas sobre o agregado
	CPA             float64 `json:"cpa"`
	FrontEndRevenue float64 `json:"front_end_revenue"`
	FrontEndROAS    float64 `json:"front_end_roas"`
	NetROAS         float64 `json:"net_roas"`
}

// Ordem fixa Lunes-primeiro dos dias da semana, independente de locale, para
// exibição e testes determinísticos.
var weekdayOrder = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
	time.Friday, time.Saturday, time.Sunday,
}

var weekdayLabels = map[time.Weekday]string{
	time.Monday:    "Lunes",
	time.Tuesday:   "Martes",
	time.Wednesday: "Miércoles",
	time.Thursday:  "Jueves",
	time.Friday:    "Viernes",
	time.Saturday:  "Sábado",
	time.Sunday:    "Domingo",
}

var monthLabels = map[time.Month]string{
	time.January: "Enero", time.February: "Febrero", time.March: "Marzo",
	time.April: "Abril", time.May: "Mayo", time.June: "Junio",
	time.July: "Julio", time.August: "Agosto", time.September: "Septiembre",
	time.October: "Octubre", time.November: "Noviembre", time.December: "Diciembre",
}

// Aggregate agrupa e soma os registros pela chave pedida e rederiva as
// métricas de cada balde. Para GroupByWeekday sempre devolve sete linhas na
// ordem Lunes..Domingo, mesmo para dias sem dados.
func Aggregate(records []*domain.DailyRecord, groupBy GroupBy, funnelCtx FunnelContext) []Row {
	buckets := make(map[string]*Row)

	for _, record := range records {
		key, label := bucketKey(record.Date, record.EntityLabel, groupBy)
		row, ok := buckets[key]
		if !ok {
			row = &Row{Key: key, Label: label, SalesByAlias: make(map[string]int)}
			buckets[key] = row
		}

		row.Investment += record.Investment
		row.InitiatedCheckouts += record.InitiatedCheckouts
		row.GrossRevenue += record.GrossRevenue
		row.NetProfit += record.NetProfit
		for alias, count := range record.SalesByAlias {
			row.SalesByAlias[alias] += count
		}
	}

	rows := orderRows(buckets, groupBy)
	for i := range rows {
		derive(&rows[i], funnelCtx)
	}

	return rows
}

func bucketKey(date time.Time, entity string, groupBy GroupBy) (key, label string) {
	switch groupBy {
	case GroupByEntity:
		return entity, entity
	case GroupByDay:
		key = date.Format(time.DateOnly)
		return key, key
	case GroupByWeek:
		key = isoWeekStart(date).Format(time.DateOnly)
		return key, key
	case GroupByMonth:
		key = fmt.Sprintf("%04d-%02d", date.Year(), int(date.Month()))
		return key, fmt.Sprintf("%s %d", monthLabels[date.Month()], date.Year())
	case GroupByWeekday:
		weekday := date.Weekday()
		return weekdayLabels[weekday], weekdayLabels[weekday]
	}
	return entity, entity
}

// isoWeekStart devolve a segunda-feira da semana ISO da data
func isoWeekStart(date time.Time) time.Time {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	offset := (int(day.Weekday()) + 6) % 7 // Monday=0 .. Sunday=6
	return day.AddDate(0, 0, -offset)
}

func orderRows(buckets map[string]*Row, groupBy GroupBy) []Row {
	if groupBy == GroupByWeekday {
		rows := make([]Row, 0, len(weekdayOrder))
		for _, weekday := range weekdayOrder {
			label := weekdayLabels[weekday]
			if row, ok := buckets[label]; ok {
				rows = append(rows, *row)
				continue
			}
			rows = append(rows, Row{Key: label, Label: label, SalesByAlias: map[string]int{}})
		}
		return rows
	}

	keys := make([]string, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	// Chaves de dia/semana/mês são ISO e ordenam cronologicamente como texto
	sort.Strings(keys)

	rows := make([]Row, 0, len(keys))
	for _, key := range keys {
		rows = append(rows, *buckets[key])
	}
	return rows
}

// derive rederiva as métricas do balde com a mesma política de divisão por
// zero do cálculo diário
func derive(row *Row, funnelCtx FunnelContext) {
	row.PrincipalSales = row.SalesByAlias[domain.PrincipalAlias]

	if row.PrincipalSales > 0 {
		row.CPA = row.Investment / float64(row.PrincipalSales)
	}

	row.FrontEndRevenue = float64(row.PrincipalSales) * funnelCtx.PrincipalPrice

	if row.Investment > 0 {
		row.FrontEndROAS = row.FrontEndRevenue / row.Investment
		row.NetROAS = (row.GrossRevenue - float64(row.PrincipalSales)*funnelCtx.CommissionPP) / row.Investment
	}
}
