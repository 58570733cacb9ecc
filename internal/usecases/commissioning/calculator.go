package commissioning

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/telavenir/telecom-crm-api/internal/domain"
)

// Calculator aplica o algoritmo de CVD por paliers sobre a sequência de
// vendas instaladas de um revendedor em um período.
//
// Contrato de ordem: a comissão de cada venda depende de todas as anteriores,
// então a ordem de processamento é regra de negócio (data de instalação
// crescente). O calculador ordena defensivamente em vez de confiar na ordem
// do chamador.
//
// O cálculo é um fold puro: sem efeitos colaterais, sem estado compartilhado,
// e duas execuções sobre a mesma entrada produzem linhas idênticas.
type Calculator struct {
	tables Tables
}

func NewCalculator(tables Tables) *Calculator {
	return &Calculator{tables: tables}
}

// Compute percorre as vendas da esquerda para a direita e atribui a cada uma
// o valor de comissão (possivelmente zero). Retorna uma linha por venda de
// entrada, na ordem cronológica.
//
// Uma comissão é paga quando a venda cruza um palier de 5 pontos:
// floor(depois/5) > floor(antes/5). A diferença de floor, e não a igualdade,
// tolera um produto futuro pesado o bastante para cruzar dois degraus de uma
// vez; nesse caso paga-se uma única comissão, na tranche resultante.
//
// A tranche usada para precificar é a tranche DEPOIS da venda.
func (c *Calculator) Compute(sellerID int, period string, events []domain.SaleEvent) ([]domain.CommissionLedgerLine, error) {
	ordered := make([]domain.SaleEvent, len(events))
	copy(ordered, events)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].InstallationDate.Before(ordered[j].InstallationDate)
	})

	lines := make([]domain.CommissionLedgerLine, 0, len(ordered))
	pointsBefore := 0

	for _, event := range ordered {
		points, err := c.tables.Catalog.PointsFor(event.ProductID)
		if err != nil {
			return nil, NewSaleCommissionError(ErrUnknownProduct, event.ID, rawClientName(event), event.ProductID, "produto ausente do catálogo de pontos")
		}

		clientName, err := clientDisplayName(event)
		if err != nil {
			// Hard-stop fiscal: uma fatura não pode referenciar uma venda
			// anônima, então a falha derruba o lote inteiro do período.
			return nil, err
		}

		pointsAfter := pointsBefore + points
		crossed := pointsAfter/PalierSize > pointsBefore/PalierSize

		tier := c.tables.Tiers.TierFor(pointsBefore)
		commission := decimal.Zero

		if crossed {
			tier = c.tables.Tiers.TierFor(pointsAfter)

			commission, err = c.tables.Tiers.CommissionAmount(tier, event.ProductID)
			if err != nil {
				return nil, NewSaleCommissionError(ErrUnknownTierProduct, event.ID, clientName, event.ProductID, fmt.Sprintf("sem valor para tranche %d", tier))
			}
		}

		lines = append(lines, domain.CommissionLedgerLine{
			SaleEventID:      event.ID,
			Product:          event.ProductID,
			Client:           clientName,
			Points:           points,
			Commission:       commission,
			Tier:             tier,
			CumulativePoints: pointsAfter,
		})

		pointsBefore = pointsAfter
	}

	return lines, nil
}

// Total soma os valores das linhas. O total de uma fatura é sempre essa soma,
// nunca recalculado a partir de agregados.
func Total(lines []domain.CommissionLedgerLine) decimal.Decimal {
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.Commission)
	}
	return total
}

// clientDisplayName valida a identidade do cliente e monta o nome exibido na
// fatura. Nome ou sobrenome vazios depois do trim são violação fiscal.
func clientDisplayName(event domain.SaleEvent) (string, error) {
	firstName := strings.TrimSpace(event.ClientFirstName)
	lastName := strings.TrimSpace(event.ClientLastName)

	if firstName == "" || lastName == "" {
		return "", NewSaleCommissionError(
			ErrMissingClientIdentity,
			event.ID,
			rawClientName(event),
			event.ProductID,
			fmt.Sprintf("venda %d sem nome completo de cliente", event.ID),
		)
	}

	return firstName + " " + lastName, nil
}

func rawClientName(event domain.SaleEvent) string {
	return strings.TrimSpace(strings.TrimSpace(event.ClientFirstName) + " " + strings.TrimSpace(event.ClientLastName))
}
