// Package classifying aplica as regras de veredicto sobre o histórico de um
// anúncio em testeo: apagar, ganador ou seguir testeando.
package classifying

import (
	"fmt"
	"sort"

	"github.com/kbrerx/Centro-de-operaciones-INFINITY/internal/domain"
)

// Limiares de decisão. Os valores reproduzem exatamente o comportamento
// acordado com a operação; qualquer mudança altera quais anúncios escalam.
const (
	// KillROASThreshold: abaixo disso (estrito) o anúncio é apagado
	KillROASThreshold = 1.2
	// WinnerROASThreshold: a partir disso o anúncio pode ser ganador
	WinnerROASThreshold = 1.7
	// WinnerStreakLength: dias consecutivos com venda PP exigidos do ganador
	WinnerStreakLength = 4
)

// Category é a categoria de decisão de um anúncio
type Category string

const (
	CategoryKill    Category = "kill"
	CategoryWinner  Category = "winner"
	CategoryTesting Category = "testing"
)

// Verdict é o resultado da classificação de um anúncio
type Verdict struct {
	Category    Category `json:"category"`
	NetROAS     float64  `json:"net_roas"`
	SalesStreak int      `json:"sales_streak"`
}

// Label devolve o rótulo de exibição do veredicto, com ROAS e racha no texto,
// na borda de apresentação
func (v Verdict) Label() string {
	switch v.Category {
	case CategoryKill:
		return fmt.Sprintf("❄️ Apagar (ROAS Neto: %.2f)", v.NetROAS)
	case CategoryWinner:
		return fmt.Sprintf("🏆 GANADOR (ROAS Neto: %.2f, Racha: %d)", v.NetROAS, v.SalesStreak)
	}
	return fmt.Sprintf("🧪 Testeando (ROAS Neto: %.2f, Racha: %d)", v.NetROAS, v.SalesStreak)
}

// OfferContext carrega a comissão da oferta, necessário para o ROAS acumulado
// na forma razão-de-receitas. Quando ausente, a classificação cai no
// somatório de ROAS por registro (ver DESIGN.md: as duas formas divergem
// quando a inversão varia entre dias).
type OfferContext struct {
	CommissionPP float64
}

// Classify computa o veredicto de um anúncio a partir do seu histórico
// ordenado por data. Retorna ok=false quando a inversão total é zero: o
// anúncio deve ser omitido da análise de ganadores.
func Classify(history []*domain.DailyRecord, offerCtx *OfferContext) (Verdict, bool) {
	totalInvestment := 0.0
	for _, record := range history {
		totalInvestment += record.Investment
	}
	if totalInvestment == 0 {
		return Verdict{}, false
	}

	netROAS := cumulativeNetROAS(history, totalInvestment, offerCtx)
	streak := salesStreak(history)

	verdict := Verdict{NetROAS: netROAS, SalesStreak: streak}
	switch {
	case netROAS < KillROASThreshold:
		verdict.Category = CategoryKill
	case netROAS >= WinnerROASThreshold && streak >= WinnerStreakLength:
		verdict.Category = CategoryWinner
	default:
		verdict.Category = CategoryTesting
	}

	return verdict, true
}

// Suggestions agrupa os registros por anúncio, ordena cada grupo por data e
// classifica. Anúncios sem inversão ficam fora do mapa.
func Suggestions(records []*domain.DailyRecord, offerCtx *OfferContext) map[string]Verdict {
	grouped := make(map[string][]*domain.DailyRecord)
	for _, record := range records {
		grouped[record.EntityLabel] = append(grouped[record.EntityLabel], record)
	}

	verdicts := make(map[string]Verdict, len(grouped))
	for entity, history := range grouped {
		sorted := make([]*domain.DailyRecord, len(history))
		copy(sorted, history)
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Date.Before(sorted[j].Date)
		})

		if verdict, ok := Classify(sorted, offerCtx); ok {
			verdicts[entity] = verdict
		}
	}

	return verdicts
}

// cumulativeNetROAS prefere a razão de receitas (Σ bruto - Σ comissões) / Σ
// inversão quando o contexto da oferta está disponível; sem ele, soma o ROAS
// neto de cada registro.
func cumulativeNetROAS(history []*domain.DailyRecord, totalInvestment float64, offerCtx *OfferContext) float64 {
	if offerCtx == nil {
		sum := 0.0
		for _, record := range history {
			sum += record.NetROAS
		}
		return sum
	}

	totalGross := 0.0
	totalPrincipalSales := 0
	for _, record := range history {
		totalGross += record.GrossRevenue
		totalPrincipalSales += record.PrincipalSales()
	}

	return (totalGross - float64(totalPrincipalSales)*offerCtx.CommissionPP) / totalInvestment
}

// salesStreak conta, do registro mais recente para trás, os dias consecutivos
// com venda do produto principal; para no primeiro dia sem venda.
func salesStreak(history []*domain.DailyRecord) int {
	streak := 0
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].PrincipalSales() == 0 {
			break
		}
		streak++
	}
	return streak
}
