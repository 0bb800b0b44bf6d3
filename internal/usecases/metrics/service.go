// Package metrics calcula os campos financeiros derivados de um registro
// diário a partir do funil da oferta e da comissão por venda do produto
// principal. Todas as funções são puras e idempotentes.
package metrics

import (
	"github.com/kbrerx/Centro-de-operaciones-INFINITY/internal/domain"
)

// Compute devolve uma cópia do registro com facturação bruta/neta, ganância e
// ROAS preenchidos. O registro de entrada nunca é mutado.
//
// Itens arquivados do funil ainda contribuem quando presentes em
// SalesByAlias: registros históricos mantêm o valor vendido. Um alias de
// vendas sem item correspondente no funil contribui 0, nunca erro.
func Compute(record *domain.DailyRecord, funnel *domain.FunnelModel, commissionPP float64) *domain.DailyRecord {
	out := record.Clone()

	grossRevenue := 0.0
	for _, item := range funnel.Items {
		if count, ok := out.SalesByAlias[item.Alias]; ok && count > 0 {
			grossRevenue += float64(count) * item.Price
		}
	}

	principalSales := out.PrincipalSales()
	totalCommission := float64(principalSales) * commissionPP
	netRevenue := grossRevenue - totalCommission

	out.GrossRevenue = grossRevenue
	out.NetRevenue = netRevenue
	out.GrossProfit = grossRevenue - out.Investment
	out.NetProfit = netRevenue - out.Investment
	out.GrossROAS = safeRatio(grossRevenue, out.Investment)
	out.NetROAS = safeRatio(netRevenue, out.Investment)

	return out
}

// Recompute reaplica o cálculo sobre uma coleção inteira, usado quando o
// funil ou a comissão mudam e o chamador pede explicitamente a atualização
// dos campos derivados (eles nunca são atualizados de forma implícita).
func Recompute(records []*domain.DailyRecord, funnel *domain.FunnelModel, commissionPP float64) []*domain.DailyRecord {
	out := make([]*domain.DailyRecord, 0, len(records))
	for _, record := range records {
		out = append(out, Compute(record, funnel, commissionPP))
	}
	return out
}

// safeRatio implementa a política de divisão por zero do domínio: inversão 0
// é um caso válido (tráfego orgânico) e o ROAS resultante é 0, nunca erro,
// NaN ou infinito.
func safeRatio(numerator, denominator float64) float64 {
	if denominator > 0 {
		return numerator / denominator
	}
	return 0
}
