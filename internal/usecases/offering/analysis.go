package offering

import (
	"time"

	"github.com/pkg/errors"

	"github.com/kbrerx/Centro-de-operaciones-INFINITY/internal/domain"
	"github.com/kbrerx/Centro-de-operaciones-INFINITY/internal/usecases/classifying"
	"github.com/kbrerx/Centro-de-operaciones-INFINITY/internal/usecases/rollup"
	"github.com/kbrerx/Centro-de-operaciones-INFINITY/pkg/utils"
)

// Limiares da sugestão de validação de oferta: mínimo de anúncios testeados e
// ROAS neto global acima do patamar de sobrevivência.
const (
	validationMinAdsTested = 10
	validationMinNetROAS   = 1.2
)

// PhaseTotals resume uma fase da oferta (testeo ou escala)
type PhaseTotals struct {
	Records        int     `json:"records"`
	ElapsedDays    int     `json:"elapsed_days"`
	Investment     float64 `json:"investment"`
	NetRevenue     float64 `json:"net_revenue"`
	NetProfit      float64 `json:"net_profit"`
	NetROAS        float64 `json:"net_roas"`
	PrincipalSales int     `json:"principal_sales"`
}

// Summary é o resumo executivo de uma oferta
type Summary struct {
	OfferID           string             `json:"offer_id"`
	Name              string             `json:"name"`
	Status            domain.OfferStatus `json:"status"`
	BreakEvenROAS     float64            `json:"break_even_roas"`
	AdsTested         int                `json:"ads_tested"`
	Testing           PhaseTotals        `json:"testing"`
	Scale             PhaseTotals        `json:"scale"`
	GlobalNetROAS     float64            `json:"global_net_roas"`
	SuggestValidation bool               `json:"suggest_validation"`
}

// DashboardOfferRow é a linha de uma oferta no painel consolidado
type DashboardOfferRow struct {
	OfferID        string             `json:"offer_id"`
	Name           string             `json:"name"`
	Status         domain.OfferStatus `json:"status"`
	Investment     float64            `json:"investment"`
	NetProfit      float64            `json:"net_profit"`
	NetROAS        float64            `json:"net_roas"`
	PrincipalSales int                `json:"principal_sales"`
}

// DashboardReport consolida o desempenho de todas as ofertas vivas
type DashboardReport struct {
	TotalInvestment float64             `json:"total_investment"`
	TotalNetProfit  float64             `json:"total_net_profit"`
	GlobalNetROAS   float64             `json:"global_net_roas"`
	PrincipalSales  int                 `json:"principal_sales"`
	Offers          []DashboardOfferRow `json:"offers"`
	Weekday         []rollup.Row        `json:"weekday"`
}

// Suggestions classifica cada anúncio de testeo da oferta sobre o seu
// histórico acumulado. Anúncios sem inversão são omitidos do resultado.
func (s *Service) Suggestions(offerID string) (map[string]classifying.Verdict, error) {
	var verdicts map[string]classifying.Verdict
	err := s.viewOffer(offerID, func(offer *domain.Offer) error {
		verdicts = classifying.Suggestions(offer.TestingRecords, &classifying.OfferContext{
			CommissionPP: offer.CommissionPP,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return verdicts, nil
}

// TestingRollup agrega os registros da fase de testeo da oferta
func (s *Service) TestingRollup(offerID string, groupBy rollup.GroupBy) ([]rollup.Row, error) {
	if !groupBy.Valid() {
		return nil, errors.Wrap(ErrInvalidRequest, "agrupamento inválido")
	}

	var rows []rollup.Row
	err := s.viewOffer(offerID, func(offer *domain.Offer) error {
		rows = rollup.Aggregate(offer.TestingRecords, groupBy, rollupContext(offer))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// CampaignRollup agrega os registros de uma campanha de escala
func (s *Service) CampaignRollup(offerID, campaignID string, groupBy rollup.GroupBy) ([]rollup.Row, error) {
	if !groupBy.Valid() {
		return nil, errors.Wrap(ErrInvalidRequest, "agrupamento inválido")
	}

	var rows []rollup.Row
	err := s.viewOffer(offerID, func(offer *domain.Offer) error {
		campaign, ok := offer.Scale[campaignID]
		if !ok {
			return errors.Wrap(ErrCampaignNotFound, campaignID)
		}
		rows = rollup.Aggregate(campaign.Records, groupBy, rollupContext(offer))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// FunnelRollup agrega testeo e escala juntos, a visão consolidada do funil
func (s *Service) FunnelRollup(offerID string, groupBy rollup.GroupBy) ([]rollup.Row, error) {
	if !groupBy.Valid() {
		return nil, errors.Wrap(ErrInvalidRequest, "agrupamento inválido")
	}

	var rows []rollup.Row
	err := s.viewOffer(offerID, func(offer *domain.Offer) error {
		rows = rollup.Aggregate(offer.AllRecords(), groupBy, rollupContext(offer))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// FunnelVitals computa conversão de checkout e adoção do backend sobre todos
// os registros da oferta
func (s *Service) FunnelVitals(offerID string) (*rollup.FunnelVitals, error) {
	var vitals rollup.FunnelVitals
	err := s.viewOffer(offerID, func(offer *domain.Offer) error {
		vitals = rollup.Vitals(offer.AllRecords(), offer.Funnel)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &vitals, nil
}

// Consistency monta o calendário de consistência de vendas dos anúncios de
// testeo nos últimos lastDays dias com dados
func (s *Service) Consistency(offerID string, lastDays int) (*rollup.ConsistencyCalendar, error) {
	if lastDays <= 0 {
		lastDays = 7
	}

	var calendar rollup.ConsistencyCalendar
	err := s.viewOffer(offerID, func(offer *domain.Offer) error {
		calendar = rollup.Consistency(offer.TestingRecords, lastDays)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &calendar, nil
}

// OfferSummary produz o resumo executivo da oferta, incluindo a sugestão de
// validação quando o volume de testeo e o ROAS global sustentam a promoção
func (s *Service) OfferSummary(offerID string) (*Summary, error) {
	var summary *Summary
	err := s.viewOffer(offerID, func(offer *domain.Offer) error {
		testing := phaseTotals(offer.TestingRecords)
		scale := phaseTotals(offer.ScaleRecords())

		totalInvestment := testing.Investment + scale.Investment
		totalNetRevenue := testing.NetRevenue + scale.NetRevenue

		globalNetROAS := 0.0
		if totalInvestment > 0 {
			globalNetROAS = utils.RoundWithTwoDecimalPlace(totalNetRevenue / totalInvestment)
		}

		summary = &Summary{
			OfferID:       offer.ID,
			Name:          offer.Name,
			Status:        offer.Status,
			BreakEvenROAS: utils.RoundWithTwoDecimalPlace(offer.BreakEvenROAS()),
			AdsTested:     len(offer.TestingAds),
			Testing:       testing,
			Scale:         scale,
			GlobalNetROAS: globalNetROAS,
			SuggestValidation: offer.Status == domain.OfferTesting &&
				len(offer.TestingAds) > validationMinAdsTested &&
				globalNetROAS > validationMinNetROAS,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return summary, nil
}

// Dashboard consolida todas as ofertas vivas (testeo e validadas); ofertas
// arquivadas não contribuem. Na linha semanal global as métricas front-end
// ficam zeradas: o preço do principal varia entre ofertas.
func (s *Service) Dashboard() (*DashboardReport, error) {
	report := &DashboardReport{
		Offers: make([]DashboardOfferRow, 0),
	}

	err := s.view(func(snapshot *domain.Snapshot) error {
		var allRecords []*domain.DailyRecord
		totalNetRevenue := 0.0

		offers := make([]*domain.Offer, 0, len(snapshot.Offers))
		for _, offer := range snapshot.Offers {
			offers = append(offers, offer)
		}
		sortOffersByCreation(offers)

		for _, offer := range offers {
			if offer.Status == domain.OfferArchived {
				continue
			}

			totals := phaseTotals(offer.AllRecords())
			report.Offers = append(report.Offers, DashboardOfferRow{
				OfferID:        offer.ID,
				Name:           offer.Name,
				Status:         offer.Status,
				Investment:     totals.Investment,
				NetProfit:      totals.NetProfit,
				NetROAS:        totals.NetROAS,
				PrincipalSales: totals.PrincipalSales,
			})

			report.TotalInvestment += totals.Investment
			report.TotalNetProfit += totals.NetProfit
			report.PrincipalSales += totals.PrincipalSales
			totalNetRevenue += totals.NetRevenue
			allRecords = append(allRecords, offer.AllRecords()...)
		}

		if report.TotalInvestment > 0 {
			report.GlobalNetROAS = utils.RoundWithTwoDecimalPlace(totalNetRevenue / report.TotalInvestment)
		}

		report.Weekday = rollup.Aggregate(allRecords, rollup.GroupByWeekday, rollup.FunnelContext{})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return report, nil
}

// rollupContext extrai o contexto de rederivação do funil da oferta
func rollupContext(offer *domain.Offer) rollup.FunnelContext {
	return rollup.FunnelContext{
		PrincipalPrice: offer.Funnel.PrincipalPrice(),
		CommissionPP:   offer.CommissionPP,
	}
}

// phaseTotals soma uma coleção de registros e deriva o ROAS neto da fase
func phaseTotals(records []*domain.DailyRecord) PhaseTotals {
	totals := PhaseTotals{Records: len(records)}

	days := make(map[string]struct{})
	for _, record := range records {
		days[record.Date.Format(time.DateOnly)] = struct{}{}
		totals.Investment += record.Investment
		totals.NetRevenue += record.NetRevenue
		totals.NetProfit += record.NetProfit
		totals.PrincipalSales += record.PrincipalSales()
	}
	totals.ElapsedDays = len(days)

	if totals.Investment > 0 {
		totals.NetROAS = utils.RoundWithTwoDecimalPlace(totals.NetRevenue / totals.Investment)
	}

	return totals
}
