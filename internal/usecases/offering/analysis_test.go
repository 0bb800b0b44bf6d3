package offering

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kbrerx/Centro-de-operaciones-INFINITY/internal/domain"
	"github.com/kbrerx/Centro-de-operaciones-INFINITY/internal/usecases/classifying"
	"github.com/kbrerx/Centro-de-operaciones-INFINITY/internal/usecases/rollup"
)

// derivedRecord monta um registro já computado sob preço principal 50 e
// comissão zero
func derivedRecord(date string, entity string, investment float64, ppSales int) *domain.DailyRecord {
	parsed, _ := time.Parse(time.DateOnly, date)
	gross := float64(ppSales) * 50
	record := &domain.DailyRecord{
		Date:         parsed,
		EntityLabel:  entity,
		Investment:   investment,
		SalesByAlias: map[string]int{"PP": ppSales},
		GrossRevenue: gross,
		NetRevenue:   gross,
		NetProfit:    gross - investment,
	}
	if investment > 0 {
		record.NetROAS = gross / investment
		record.GrossROAS = gross / investment
	}
	return record
}

func TestSuggestions(t *testing.T) {
	offer := seedOffer("of1", "Oferta")
	offer.TestingAds = []*domain.TestingAd{
		{Name: "GANADOR", Status: domain.ComponentActive},
		{Name: "FRACO", Status: domain.ComponentActive},
	}
	offer.TestingRecords = []*domain.DailyRecord{
		derivedRecord("2025-05-01", "GANADOR", 100, 4),
		derivedRecord("2025-05-02", "GANADOR", 100, 4),
		derivedRecord("2025-05-03", "GANADOR", 100, 4),
		derivedRecord("2025-05-04", "GANADOR", 100, 4),
		derivedRecord("2025-05-01", "FRACO", 100, 1),
	}
	service := newTestService(t, seedSnapshot(offer))

	verdicts, err := service.Suggestions("of1")

	require.NoError(t, err)
	assert.Equal(t, classifying.CategoryWinner, verdicts["GANADOR"].Category)
	assert.Equal(t, classifying.CategoryKill, verdicts["FRACO"].Category)
}

func TestRollupsValidamAgrupamento(t *testing.T) {
	service := newTestService(t, seedSnapshot(seedOffer("of1", "Oferta")))

	_, err := service.TestingRollup("of1", rollup.GroupBy("quarter"))
	assert.ErrorIs(t, err, ErrInvalidRequest)

	_, err = service.FunnelRollup("of1", rollup.GroupBy(""))
	assert.ErrorIs(t, err, ErrInvalidRequest)

	_, err = service.CampaignRollup("of1", "camp1", rollup.GroupBy("quarter"))
	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestFunnelRollupConsolidaTesteoEEscala(t *testing.T) {
	offer := seedOffer("of1", "Oferta")
	offer.TestingRecords = []*domain.DailyRecord{
		derivedRecord("2025-05-01", "AD-01", 100, 2),
	}
	offer.Scale["camp1"] = &domain.ScaleCampaign{
		ID:     "camp1",
		Name:   "CBO",
		Status: domain.CampaignActive,
		Records: []*domain.DailyRecord{
			derivedRecord("2025-05-01", "AD-01", 200, 5),
		},
	}
	service := newTestService(t, seedSnapshot(offer))

	rows, err := service.FunnelRollup("of1", rollup.GroupByDay)

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 300.0, rows[0].Investment)
	assert.Equal(t, 7, rows[0].PrincipalSales)
}

func TestOfferSummary(t *testing.T) {
	offer := seedOffer("of1", "Oferta")
	offer.CommissionPP = 10 // break-even = 50/(50-10) = 1.25
	offer.TestingAds = []*domain.TestingAd{{Name: "AD-01", Status: domain.ComponentActive}}
	offer.TestingRecords = []*domain.DailyRecord{
		derivedRecord("2025-05-01", "AD-01", 100, 3),
		derivedRecord("2025-05-02", "AD-01", 50, 1),
	}
	offer.Scale["camp1"] = &domain.ScaleCampaign{
		ID:     "camp1",
		Status: domain.CampaignActive,
		Records: []*domain.DailyRecord{
			derivedRecord("2025-05-03", "AD-01", 200, 6),
		},
	}
	service := newTestService(t, seedSnapshot(offer))

	summary, err := service.OfferSummary("of1")

	require.NoError(t, err)
	assert.Equal(t, "of1", summary.OfferID)
	assert.Equal(t, 1.25, summary.BreakEvenROAS)
	assert.Equal(t, 1, summary.AdsTested)

	assert.Equal(t, 2, summary.Testing.Records)
	assert.Equal(t, 2, summary.Testing.ElapsedDays)
	assert.Equal(t, 150.0, summary.Testing.Investment)
	assert.Equal(t, 200.0, summary.Testing.NetRevenue)

	assert.Equal(t, 1, summary.Scale.Records)
	assert.Equal(t, 200.0, summary.Scale.Investment)

	// (200 + 300) / (150 + 200)
	assert.InDelta(t, 1.43, summary.GlobalNetROAS, 1e-9)
	// menos de 10 anúncios testeados: sem sugestão de validação
	assert.False(t, summary.SuggestValidation)
}

func TestOfferSummarySugereValidacao(t *testing.T) {
	offer := seedOffer("of1", "Oferta")
	for _, name := range []string{"A1", "A2", "A3", "A4", "A5", "A6", "A7", "A8", "A9", "A10", "A11"} {
		offer.TestingAds = append(offer.TestingAds, &domain.TestingAd{Name: name, Status: domain.ComponentActive})
	}
	offer.TestingRecords = []*domain.DailyRecord{
		derivedRecord("2025-05-01", "A1", 100, 4), // ROAS 2.0
	}
	service := newTestService(t, seedSnapshot(offer))

	summary, err := service.OfferSummary("of1")

	require.NoError(t, err)
	assert.True(t, summary.SuggestValidation)
}

func TestDashboard(t *testing.T) {
	viva := seedOffer("of1", "Oferta Viva")
	viva.TestingRecords = []*domain.DailyRecord{
		derivedRecord("2025-05-05", "AD-01", 100, 3), // lunes
	}

	validada := seedOffer("of2", "Oferta Validada")
	validada.Status = domain.OfferValidated
	validada.CreatedAt = viva.CreatedAt.Add(time.Hour)
	validada.TestingRecords = []*domain.DailyRecord{
		derivedRecord("2025-05-06", "AD-02", 50, 2), // martes
	}

	arquivada := seedOffer("of3", "Oferta Archivada")
	arquivada.Status = domain.OfferArchived
	arquivada.TestingRecords = []*domain.DailyRecord{
		derivedRecord("2025-05-05", "AD-03", 999, 9),
	}

	service := newTestService(t, seedSnapshot(viva, validada, arquivada))

	report, err := service.Dashboard()

	require.NoError(t, err)

	// a oferta arquivada não contribui em nada
	assert.Len(t, report.Offers, 2)
	assert.Equal(t, "Oferta Viva", report.Offers[0].Name)
	assert.Equal(t, "Oferta Validada", report.Offers[1].Name)

	assert.Equal(t, 150.0, report.TotalInvestment)
	assert.Equal(t, 5, report.PrincipalSales)
	// (150 + 100) / 150
	assert.InDelta(t, 1.67, report.GlobalNetROAS, 1e-9)

	require.Len(t, report.Weekday, 7)
	assert.Equal(t, "Lunes", report.Weekday[0].Label)
	assert.Equal(t, 100.0, report.Weekday[0].Investment)
	assert.Equal(t, 50.0, report.Weekday[1].Investment)
}

func TestConsistencyUsaJanelaPadrao(t *testing.T) {
	offer := seedOffer("of1", "Oferta")
	for i := 0; i < 10; i++ {
		offer.TestingRecords = append(offer.TestingRecords,
			derivedRecord(time.Date(2025, 5, 1+i, 0, 0, 0, 0, time.UTC).Format(time.DateOnly), "AD-01", 10, 1))
	}
	service := newTestService(t, seedSnapshot(offer))

	calendar, err := service.Consistency("of1", 0)

	require.NoError(t, err)
	assert.Len(t, calendar.Dates, 7)
}
