package invoicing

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/telavenir/telecom-crm-api/infrastructure/repository"
	"github.com/telavenir/telecom-crm-api/internal/domain"
	"github.com/telavenir/telecom-crm-api/internal/usecases/commissioning"
	"github.com/telavenir/telecom-crm-api/pkg/utils"
)

// Prazo de pagamento contado a partir da emissão.
const paymentTermDays = 30

// Allocator aloca números fiscais de fatura. A alocação é idempotente por
// (revendedor, período): a primeira chamada fixa o número para sempre, as
// seguintes devolvem o mesmo registro.
type Allocator interface {
	// GenerateOrGet devolve a numeração fiscal do par (revendedor, período),
	// alocando uma nova apenas se ainda não existir.
	GenerateOrGet(ctx context.Context, sellerID int, period string) (*domain.InvoiceAllocation, error)

	// Issue calcula as comissões fiscais do período e aloca (ou recupera) a
	// numeração, devolvendo o documento completo para o renderizador.
	// Qualquer erro fatal no cálculo bloqueia a emissão inteira.
	Issue(ctx context.Context, sellerID int, period string) (*domain.InvoiceDocument, error)

	// Preview devolve um número provisório efêmero, de tipo distinto, para
	// telas de pré-visualização. Nunca é persistido.
	Preview(sellerID int, period string) *domain.InvoicePreview
}

type Service struct {
	invoiceRepo  repository.FiscalInvoiceRepository
	commissioner commissioning.Commissioner
	now          func() time.Time
}

func NewService(invoiceRepo repository.FiscalInvoiceRepository, commissioner commissioning.Commissioner) *Service {
	return &Service{
		invoiceRepo:  invoiceRepo,
		commissioner: commissioner,
		now:          time.Now,
	}
}

func (s *Service) GenerateOrGet(ctx context.Context, sellerID int, period string) (*domain.InvoiceAllocation, error) {
	if sellerID <= 0 {
		return nil, NewInvoiceError(ErrSellerIDRequired, sellerID, period, "", false)
	}

	if _, err := utils.ParsePeriod(period); err != nil {
		return nil, NewInvoiceError(ErrInvalidPeriod, sellerID, period, period, false)
	}

	existing, err := s.invoiceRepo.GetBySellerAndPeriod(ctx, sellerID, period)
	if err != nil {
		return nil, NewInvoiceError(ErrInvoiceStore, sellerID, period, err.Error(), true)
	}

	if existing != nil {
		return domain.NewInvoiceAllocation(existing, true), nil
	}

	issueDate := s.now()
	dueDate := issueDate.AddDate(0, 0, paymentTermDays)

	invoice, created, err := s.invoiceRepo.Allocate(ctx, sellerID, period, issueDate, dueDate)
	if err != nil {
		// Falha de persistência nunca degrada para numeração improvisada em
		// fatura real; o erro sobe como infraestrutura repetível.
		return nil, NewInvoiceError(ErrInvoiceStore, sellerID, period, err.Error(), true)
	}

	if created {
		logrus.WithFields(logrus.Fields{
			"seller_id":      sellerID,
			"period":         period,
			"invoice_number": invoice.InvoiceNumber,
		}).Info("Número fiscal de fatura alocado")
	}

	return domain.NewInvoiceAllocation(invoice, !created), nil
}

func (s *Service) Issue(ctx context.Context, sellerID int, period string) (*domain.InvoiceDocument, error) {
	statement, err := s.commissioner.ComputeStatement(sellerID, period)
	if err != nil {
		// O erro do cálculo já aponta a venda/cliente que bloqueou a emissão.
		return nil, err
	}

	allocation, err := s.GenerateOrGet(ctx, sellerID, period)
	if err != nil {
		return nil, err
	}

	return &domain.InvoiceDocument{
		Allocation: allocation,
		Lines:      statement.Lines,
		Total:      statement.Total.StringFixed(2),
	}, nil
}

func (s *Service) Preview(sellerID int, period string) *domain.InvoicePreview {
	return &domain.InvoicePreview{
		TemporaryNumber: fmt.Sprintf("PROVISOIRE-%d-%s", sellerID, period),
		Provisional:     true,
	}
}
