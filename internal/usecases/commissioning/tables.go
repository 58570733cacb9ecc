package commissioning

import (
	"github.com/shopspring/decimal"
	"github.com/telavenir/telecom-crm-api/internal/domain"
)

// Limites de tranche sobre o total acumulado de pontos. Os limites superiores
// são inclusivos: 25 ainda é tranche 1, 50 ainda é tranche 2, 100 ainda é
// tranche 3.
const (
	tier1MaxPoints = 25
	tier2MaxPoints = 50
	tier3MaxPoints = 100
)

// PalierSize é o tamanho do degrau de pontos que dispara uma comissão.
const PalierSize = 5

// ProductPointCatalog mapeia produto -> peso em pontos.
type ProductPointCatalog struct {
	points map[string]int
}

// PointsFor retorna o peso em pontos de um produto. Produto desconhecido é um
// erro de configuração fatal para o cálculo fiscal; nunca é silenciosamente
// tratado como zero aqui.
func (c ProductPointCatalog) PointsFor(productID string) (int, error) {
	points, ok := c.points[productID]
	if !ok {
		return 0, NewCommissionError(ErrUnknownProduct, "", productID, "produto ausente do catálogo de pontos")
	}
	return points, nil
}

// PointsForEstimate retorna o peso em pontos de um produto, com fallback para
// zero quando desconhecido. Uso permitido apenas no caminho de estimativa.
func (c ProductPointCatalog) PointsForEstimate(productID string) int {
	return c.points[productID]
}

// TierThresholdTable mapeia total acumulado -> tranche e (tranche, produto) ->
// valor de comissão.
type TierThresholdTable struct {
	amounts map[int]map[string]decimal.Decimal

	// Valor médio por palier usado apenas pelo caminho de estimativa.
	estimatePerPalier map[int]decimal.Decimal
}

// TierFor retorna a tranche (1 a 4) para um total acumulado de pontos.
func (t TierThresholdTable) TierFor(cumulativePoints int) int {
	switch {
	case cumulativePoints <= tier1MaxPoints:
		return 1
	case cumulativePoints <= tier2MaxPoints:
		return 2
	case cumulativePoints <= tier3MaxPoints:
		return 3
	default:
		return 4
	}
}

// CommissionAmount retorna o valor de comissão para (tranche, produto).
// Combinação desconhecida é falha de configuração, nunca comissão zero.
func (t TierThresholdTable) CommissionAmount(tier int, productID string) (decimal.Decimal, error) {
	byProduct, ok := t.amounts[tier]
	if !ok {
		return decimal.Zero, NewCommissionError(ErrUnknownTierProduct, "", productID, "tranche fora da tabela de comissões")
	}

	amount, ok := byProduct[productID]
	if !ok {
		return decimal.Zero, NewCommissionError(ErrUnknownTierProduct, "", productID, "produto sem valor para a tranche")
	}

	return amount, nil
}

// EstimatePerPalier retorna o valor médio por palier da tranche, usado somente
// para estimativas.
func (t TierThresholdTable) EstimatePerPalier(tier int) decimal.Decimal {
	return t.estimatePerPalier[tier]
}

// Tables agrupa as tabelas de referência do cálculo de CVD. É injetada no
// calculador como objeto de configuração explícito, o que permite versionar
// as tabelas por período fiscal sem estado global mutável.
type Tables struct {
	Version string
	Catalog ProductPointCatalog
	Tiers   TierThresholdTable
}

// TableSet resolve qual versão de tabelas vale para um período fiscal.
type TableSet struct {
	defaultTables Tables
	byPeriod      map[string]Tables
}

func NewTableSet(defaultTables Tables) *TableSet {
	return &TableSet{
		defaultTables: defaultTables,
		byPeriod:      make(map[string]Tables),
	}
}

// RegisterPeriod fixa uma versão de tabelas para um período específico
// (formato "2006-01").
func (s *TableSet) RegisterPeriod(period string, tables Tables) {
	s.byPeriod[period] = tables
}

// ForPeriod retorna as tabelas em vigor no período.
func (s *TableSet) ForPeriod(period string) Tables {
	if tables, ok := s.byPeriod[period]; ok {
		return tables
	}
	return s.defaultTables
}

// NewCatalog monta um catálogo a partir de um mapa produto -> pontos.
func NewCatalog(points map[string]int) ProductPointCatalog {
	copied := make(map[string]int, len(points))
	for productID, p := range points {
		copied[productID] = p
	}
	return ProductPointCatalog{points: copied}
}

// NewTierTable monta a tabela de tranches a partir dos valores por
// (tranche, produto) e dos valores médios por palier para estimativa.
func NewTierTable(amounts map[int]map[string]decimal.Decimal, estimatePerPalier map[int]decimal.Decimal) TierThresholdTable {
	copied := make(map[int]map[string]decimal.Decimal, len(amounts))
	for tier, byProduct := range amounts {
		copied[tier] = make(map[string]decimal.Decimal, len(byProduct))
		for productID, amount := range byProduct {
			copied[tier][productID] = amount
		}
	}

	estimates := make(map[int]decimal.Decimal, len(estimatePerPalier))
	for tier, amount := range estimatePerPalier {
		estimates[tier] = amount
	}

	return TierThresholdTable{amounts: copied, estimatePerPalier: estimates}
}

// TablesForVersion devolve a versão pedida das tabelas de CVD. A versão vem
// da configuração (COMMISSION_TABLE_VERSION); versão desconhecida é falha de
// configuração, nunca fallback silencioso em caminho fiscal.
func TablesForVersion(version string) (Tables, error) {
	switch version {
	case "", "v1":
		return DefaultTables(), nil
	default:
		return Tables{}, NewCommissionError(ErrUnknownTableVersion, "", "", version)
	}
}

// DefaultTables retorna a versão v1 das tabelas de CVD.
func DefaultTables() Tables {
	catalog := NewCatalog(map[string]int{
		domain.ProductInternet:           6,
		domain.ProductMobileWithContract: 5,
		domain.ProductEnergy:             4,
		domain.ProductMobileNoContract:   1,
	})

	amounts := map[int]map[string]decimal.Decimal{
		1: {
			domain.ProductInternet:           decimal.NewFromInt(40),
			domain.ProductMobileWithContract: decimal.NewFromInt(30),
			domain.ProductEnergy:             decimal.NewFromInt(25),
			domain.ProductMobileNoContract:   decimal.NewFromInt(10),
		},
		2: {
			domain.ProductInternet:           decimal.NewFromInt(50),
			domain.ProductMobileWithContract: decimal.NewFromInt(35),
			domain.ProductEnergy:             decimal.NewFromInt(30),
			domain.ProductMobileNoContract:   decimal.NewFromInt(12),
		},
		3: {
			domain.ProductInternet:           decimal.NewFromInt(60),
			domain.ProductMobileWithContract: decimal.NewFromInt(40),
			domain.ProductEnergy:             decimal.NewFromInt(35),
			domain.ProductMobileNoContract:   decimal.NewFromInt(15),
		},
		4: {
			domain.ProductInternet:           decimal.NewFromInt(70),
			domain.ProductMobileWithContract: decimal.NewFromInt(50),
			domain.ProductEnergy:             decimal.NewFromInt(40),
			domain.ProductMobileNoContract:   decimal.NewFromInt(20),
		},
	}

	estimates := map[int]decimal.Decimal{
		1: decimal.NewFromInt(25),
		2: decimal.NewFromInt(30),
		3: decimal.NewFromInt(35),
		4: decimal.NewFromInt(40),
	}

	return Tables{
		Version: "v1",
		Catalog: catalog,
		Tiers:   NewTierTable(amounts, estimates),
	}
}
