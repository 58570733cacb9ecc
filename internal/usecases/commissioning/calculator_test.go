package commissioning

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/telavenir/telecom-crm-api/internal/domain"
)

func saleAt(id int64, productID string, day int) domain.SaleEvent {
	return domain.SaleEvent{
		ID:               id,
		SellerID:         1,
		ClientID:         "ABC123",
		ClientFirstName:  "Jean",
		ClientLastName:   "Dupont",
		ProductID:        productID,
		InstallationDate: time.Date(2025, 6, day, 0, 0, 0, 0, time.UTC),
	}
}

func TestCalculator_Compute_EveryCrossingPays(t *testing.T) {
	calc := NewCalculator(DefaultTables())

	// Quatro internet (6 pontos) e um mobile sem compromisso (1 ponto):
	// acumulados 6, 12, 18, 24, 25 — todas as cinco vendas cruzam um palier
	events := []domain.SaleEvent{
		saleAt(1, domain.ProductInternet, 1),
		saleAt(2, domain.ProductInternet, 2),
		saleAt(3, domain.ProductInternet, 3),
		saleAt(4, domain.ProductInternet, 4),
		saleAt(5, domain.ProductMobileNoContract, 5),
	}

	lines, err := calc.Compute(1, "2025-06", events)
	require.NoError(t, err)
	require.Len(t, lines, 5)

	expectedCumulative := []int{6, 12, 18, 24, 25}
	for i, line := range lines {
		assert.Equal(t, expectedCumulative[i], line.CumulativePoints)
		assert.Equal(t, 1, line.Tier)
		assert.Equal(t, "Jean Dupont", line.Client)
		assert.True(t, line.Commission.IsPositive(), "venda %d deveria pagar comissão", line.SaleEventID)
	}

	// Internet na tranche 1 vale 40, mobile sem compromisso vale 10
	assert.Equal(t, "40", lines[0].Commission.String())
	assert.Equal(t, "10", lines[4].Commission.String())
	assert.Equal(t, "170", Total(lines).String())
}

func TestCalculator_Compute_NoCrossingPaysZero(t *testing.T) {
	calc := NewCalculator(DefaultTables())

	// Um único ponto não cruza o primeiro palier de 5
	lines, err := calc.Compute(1, "2025-06", []domain.SaleEvent{
		saleAt(1, domain.ProductMobileNoContract, 1),
	})
	require.NoError(t, err)
	require.Len(t, lines, 1)

	assert.True(t, lines[0].Commission.IsZero())
	assert.Equal(t, 1, lines[0].CumulativePoints)
	assert.Equal(t, 1, lines[0].Tier)
}

func TestCalculator_Compute_DoubleRungPaysOnce(t *testing.T) {
	calc := NewCalculator(DefaultTables())

	// Quatro vendas de 1 ponto (sem cruzar) e uma internet de 6: o acumulado
	// salta de 4 para 10 e cruza dois degraus de uma vez. Paga uma única
	// comissão, na tranche resultante.
	events := []domain.SaleEvent{
		saleAt(1, domain.ProductMobileNoContract, 1),
		saleAt(2, domain.ProductMobileNoContract, 2),
		saleAt(3, domain.ProductMobileNoContract, 3),
		saleAt(4, domain.ProductMobileNoContract, 4),
		saleAt(5, domain.ProductInternet, 5),
	}

	lines, err := calc.Compute(1, "2025-06", events)
	require.NoError(t, err)
	require.Len(t, lines, 5)

	for _, line := range lines[:4] {
		assert.True(t, line.Commission.IsZero())
	}

	assert.Equal(t, 10, lines[4].CumulativePoints)
	assert.Equal(t, "40", lines[4].Commission.String())
	assert.Equal(t, "40", Total(lines).String())
}

func TestCalculator_Compute_TierPricedAfterSale(t *testing.T) {
	calc := NewCalculator(DefaultTables())

	// Quatro internet deixam o acumulado em 24 (tranche 1). A quinta leva a
	// 30: o cruzamento é precificado na tranche DEPOIS da venda (tranche 2).
	events := []domain.SaleEvent{
		saleAt(1, domain.ProductInternet, 1),
		saleAt(2, domain.ProductInternet, 2),
		saleAt(3, domain.ProductInternet, 3),
		saleAt(4, domain.ProductInternet, 4),
		saleAt(5, domain.ProductInternet, 5),
	}

	lines, err := calc.Compute(1, "2025-06", events)
	require.NoError(t, err)
	require.Len(t, lines, 5)

	assert.Equal(t, 30, lines[4].CumulativePoints)
	assert.Equal(t, 2, lines[4].Tier)
	assert.Equal(t, "50", lines[4].Commission.String())
}

func TestCalculator_Compute_OrdersByInstallationDate(t *testing.T) {
	calc := NewCalculator(DefaultTables())

	ordered := []domain.SaleEvent{
		saleAt(1, domain.ProductInternet, 1),
		saleAt(2, domain.ProductEnergy, 2),
		saleAt(3, domain.ProductMobileWithContract, 3),
		saleAt(4, domain.ProductInternet, 4),
	}
	shuffled := []domain.SaleEvent{ordered[2], ordered[0], ordered[3], ordered[1]}

	expected, err := calc.Compute(1, "2025-06", ordered)
	require.NoError(t, err)

	got, err := calc.Compute(1, "2025-06", shuffled)
	require.NoError(t, err)

	// O cálculo ordena defensivamente: a mesma entrada em qualquer ordem
	// produz linhas idênticas
	assert.Equal(t, expected, got)
}

func TestCalculator_Compute_Deterministic(t *testing.T) {
	calc := NewCalculator(DefaultTables())

	events := []domain.SaleEvent{
		saleAt(1, domain.ProductInternet, 1),
		saleAt(2, domain.ProductMobileNoContract, 2),
		saleAt(3, domain.ProductEnergy, 3),
	}

	first, err := calc.Compute(1, "2025-06", events)
	require.NoError(t, err)

	second, err := calc.Compute(1, "2025-06", events)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestCalculator_Compute_UnknownProductFails(t *testing.T) {
	calc := NewCalculator(DefaultTables())

	events := []domain.SaleEvent{
		saleAt(1, domain.ProductInternet, 1),
		saleAt(2, "tv_satellite", 2),
	}

	lines, err := calc.Compute(1, "2025-06", events)
	assert.Nil(t, lines)
	assert.True(t, errors.Is(err, ErrUnknownProduct))
}

func TestCalculator_Compute_MissingClientIdentityBlocksBatch(t *testing.T) {
	calc := NewCalculator(DefaultTables())

	anonymous := saleAt(2, domain.ProductInternet, 2)
	anonymous.ClientLastName = "   "

	events := []domain.SaleEvent{
		saleAt(1, domain.ProductInternet, 1),
		anonymous,
		saleAt(3, domain.ProductInternet, 3),
	}

	// O lote inteiro falha: nenhuma linha parcial é devolvida
	lines, err := calc.Compute(1, "2025-06", events)
	assert.Nil(t, lines)
	assert.True(t, errors.Is(err, ErrMissingClientIdentity))

	var commErr *CommissionError
	require.True(t, errors.As(err, &commErr))
	assert.Equal(t, int64(2), commErr.SaleEventID)
}

func TestTierThresholdTable_TierFor_Boundaries(t *testing.T) {
	tiers := DefaultTables().Tiers

	tests := []struct {
		points int
		tier   int
	}{
		{0, 1},
		{25, 1},
		{26, 2},
		{50, 2},
		{51, 3},
		{100, 3},
		{101, 4},
		{500, 4},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.tier, tiers.TierFor(tt.points), "pontos=%d", tt.points)
	}
}

func TestProductPointCatalog_PointsFor(t *testing.T) {
	catalog := DefaultTables().Catalog

	points, err := catalog.PointsFor(domain.ProductInternet)
	require.NoError(t, err)
	assert.Equal(t, 6, points)

	_, err = catalog.PointsFor("fibre_pro")
	assert.True(t, errors.Is(err, ErrUnknownProduct))

	// O caminho de estimativa tolera produto desconhecido como zero
	assert.Equal(t, 0, catalog.PointsForEstimate("fibre_pro"))
}

func TestTablesForVersion(t *testing.T) {
	tables, err := TablesForVersion("v1")
	require.NoError(t, err)
	assert.Equal(t, "v1", tables.Version)

	// Versão vazia cai na versão corrente
	tables, err = TablesForVersion("")
	require.NoError(t, err)
	assert.Equal(t, "v1", tables.Version)

	// Versão desconhecida é erro de configuração, não fallback silencioso
	_, err = TablesForVersion("v99")
	assert.True(t, errors.Is(err, ErrUnknownTableVersion))
}
