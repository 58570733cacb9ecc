package commissioning

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/telavenir/telecom-crm-api/internal/domain"
)

func TestEstimate(t *testing.T) {
	tables := DefaultTables()

	tests := []struct {
		name        string
		totalPoints int
		tier        int
		amount      string
	}{
		{"sem pontos", 0, 1, "0"},
		{"abaixo do primeiro palier", 4, 1, "0"},
		{"dois paliers na tranche 1", 12, 1, "50"},
		{"limite da tranche 1", 25, 1, "125"},
		{"tranche 2", 30, 2, "180"},
		{"tranche 4", 105, 4, "840"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			estimate := Estimate(tables, 7, "2025-06", tt.totalPoints)

			assert.Equal(t, 7, estimate.SellerID)
			assert.Equal(t, "2025-06", estimate.Period)
			assert.Equal(t, tt.tier, estimate.Tier)
			assert.Equal(t, tt.amount, estimate.Amount.String())

			// Toda estimativa sai marcada; é isso que impede o consumo
			// acidental pelo faturamento
			assert.True(t, estimate.Estimation)
		})
	}
}

func TestEstimate_NegativePointsClampedToZero(t *testing.T) {
	estimate := Estimate(DefaultTables(), 1, "2025-06", -10)

	assert.Equal(t, 0, estimate.TotalPoints)
	assert.True(t, estimate.Amount.IsZero())
}

func TestEstimatePointsFromCounts(t *testing.T) {
	tables := DefaultTables()

	counts := map[string]int{
		domain.ProductInternet:         2, // 12 pontos
		domain.ProductMobileNoContract: 3, // 3 pontos
		"produit_inconnu":              5, // zero no caminho de estimativa
	}

	assert.Equal(t, 15, EstimatePointsFromCounts(tables, counts))
}
