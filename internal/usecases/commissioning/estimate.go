package commissioning

import (
	"github.com/shopspring/decimal"
	"github.com/telavenir/telecom-crm-api/internal/domain"
)

// Estimate calcula uma projeção de comissão apenas a partir do total de
// pontos, sem detalhamento por venda. É um caminho deliberadamente separado
// do cálculo fiscal: o resultado é de outro tipo, vem marcado com
// Estimation=true e nunca pode alimentar o alocador de faturas.
//
// Diferente do caminho fiscal, produtos desconhecidos valem zero ponto aqui e
// nenhum nome de cliente é inventado para preencher o documento.
func Estimate(tables Tables, sellerID int, period string, totalPoints int) *domain.CommissionEstimate {
	if totalPoints < 0 {
		totalPoints = 0
	}

	tier := tables.Tiers.TierFor(totalPoints)
	paliers := totalPoints / PalierSize
	amount := tables.Tiers.EstimatePerPalier(tier).Mul(decimal.NewFromInt(int64(paliers)))

	return &domain.CommissionEstimate{
		SellerID:    sellerID,
		Period:      period,
		TotalPoints: totalPoints,
		Tier:        tier,
		Amount:      amount,
		Estimation:  true,
	}
}

// EstimatePointsFromCounts converte contagens por produto em total de pontos
// usando o catálogo com fallback para zero (permitido apenas em estimativa).
func EstimatePointsFromCounts(tables Tables, countsByProduct map[string]int) int {
	total := 0
	for productID, count := range countsByProduct {
		total += tables.Catalog.PointsForEstimate(productID) * count
	}
	return total
}
