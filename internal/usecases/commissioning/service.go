package commissioning

import (
	"github.com/sirupsen/logrus"
	"github.com/telavenir/telecom-crm-api/infrastructure/repository"
	"github.com/telavenir/telecom-crm-api/internal/domain"
	"github.com/telavenir/telecom-crm-api/pkg/utils"
)

// Commissioner expõe o cálculo de CVD para os consumidores do motor
// (handlers, agendador de faturamento e módulo de contabilidade).
type Commissioner interface {
	// ComputeStatement calcula as linhas de comissão fiscais do revendedor no
	// período, a partir das vendas instaladas reais.
	ComputeStatement(sellerID int, period string) (*domain.CommissionStatement, error)

	// EstimateStatement projeta a comissão do período apenas a partir de
	// totais. Resultado marcado como estimativa; nunca vira fatura.
	EstimateStatement(sellerID int, period string) (*domain.CommissionEstimate, error)

	// TablesForPeriod retorna as tabelas de referência em vigor no período.
	TablesForPeriod(period string) Tables
}

type Service struct {
	tableSet      *TableSet
	saleEventRepo repository.SaleEventRepository
}

func NewService(tableSet *TableSet, saleEventRepo repository.SaleEventRepository) Commissioner {
	return &Service{
		tableSet:      tableSet,
		saleEventRepo: saleEventRepo,
	}
}

func (s *Service) ComputeStatement(sellerID int, period string) (*domain.CommissionStatement, error) {
	if _, err := utils.ParsePeriod(period); err != nil {
		return nil, NewCommissionError(ErrInvalidPeriod, "", "", period)
	}

	events, err := s.saleEventRepo.ListInstalledBySellerAndPeriod(sellerID, period)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"seller_id": sellerID,
			"period":    period,
		}).Error("Erro ao buscar vendas instaladas do revendedor")
		return nil, NewCommissionError(ErrDatabaseOperation, "", "", err.Error())
	}

	calculator := NewCalculator(s.tableSet.ForPeriod(period))

	lines, err := calculator.Compute(sellerID, period, events)
	if err != nil {
		return nil, err
	}

	return &domain.CommissionStatement{
		SellerID: sellerID,
		Period:   period,
		Lines:    lines,
		Total:    Total(lines),
	}, nil
}

func (s *Service) EstimateStatement(sellerID int, period string) (*domain.CommissionEstimate, error) {
	if _, err := utils.ParsePeriod(period); err != nil {
		return nil, NewCommissionError(ErrInvalidPeriod, "", "", period)
	}

	counts, err := s.saleEventRepo.CountInstalledByProduct(sellerID, period)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"seller_id": sellerID,
			"period":    period,
		}).Error("Erro ao buscar contagens de vendas para estimativa")
		return nil, NewCommissionError(ErrDatabaseOperation, "", "", err.Error())
	}

	tables := s.tableSet.ForPeriod(period)
	totalPoints := EstimatePointsFromCounts(tables, counts)

	return Estimate(tables, sellerID, period, totalPoints), nil
}

func (s *Service) TablesForPeriod(period string) Tables {
	return s.tableSet.ForPeriod(period)
}
