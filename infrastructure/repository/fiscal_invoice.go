package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/telavenir/telecom-crm-api/infrastructure/database/postgres"
	"github.com/telavenir/telecom-crm-api/internal/domain"
)

const (
	fiscalInvoicesTable        = "fiscal_invoices"
	fiscalInvoiceCountersTable = "fiscal_invoice_counters"
)

type FiscalInvoiceRepository interface {
	GetBySellerAndPeriod(ctx context.Context, sellerID int, period string) (*domain.FiscalInvoice, error)

	// Allocate aloca atomicamente o próximo número fiscal para o par
	// (revendedor, período), ou devolve o registro já existente se outra
	// requisição ganhou a corrida. O booleano indica se um registro novo foi
	// criado nesta chamada.
	Allocate(ctx context.Context, sellerID int, period string, issueDate, dueDate time.Time) (*domain.FiscalInvoice, bool, error)
}

type fiscalInvoiceRepository struct {
	conn *postgres.Connection
}

func NewFiscalInvoiceRepository(conn *postgres.Connection) FiscalInvoiceRepository {
	return &fiscalInvoiceRepository{
		conn: conn,
	}
}

func (r *fiscalInvoiceRepository) GetBySellerAndPeriod(ctx context.Context, sellerID int, period string) (*domain.FiscalInvoice, error) {
	queryBuilder := squirrel.
		Select("id", "seller_id", "period", "invoice_number", "issue_date", "due_date", "created_at").
		From(fiscalInvoicesTable).
		Where(squirrel.Eq{"seller_id": sellerID, "period": period}).
		PlaceholderFormat(squirrel.Dollar)

	invoiceSQL, invoiceArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	var invoice domain.FiscalInvoice
	err = r.conn.QueryRow(invoiceSQL, invoiceArgs...).Scan(
		&invoice.ID,
		&invoice.SellerID,
		&invoice.Period,
		&invoice.InvoiceNumber,
		&invoice.IssueDate,
		&invoice.DueDate,
		&invoice.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &invoice, nil
}

// Allocate roda em uma única transação:
//  1. trava a linha do contador anual com SELECT ... FOR UPDATE (criando-a
//     se for o primeiro número do ano);
//  2. incrementa o contador e monta "FA <ano> <mês> <sequência>";
//  3. insere a fatura protegida por UNIQUE (seller_id, period).
//
// Duas requisições simultâneas para a mesma chave serializam no lock do
// contador; a que perder a corrida lê o registro inserido pela primeira.
// A sequência anual não tem buracos: o contador só avança quando o INSERT
// da fatura entra na mesma transação.
func (r *fiscalInvoiceRepository) Allocate(ctx context.Context, sellerID int, period string, issueDate, dueDate time.Time) (*domain.FiscalInvoice, bool, error) {
	year, _, _ := strings.Cut(period, "-")

	var invoice *domain.FiscalInvoice
	created := false

	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		// Quem já tem número registrado devolve o existente sem tocar no
		// contador.
		existing, err := r.getForUpdate(tx, sellerID, period)
		if err != nil {
			return err
		}
		if existing != nil {
			invoice = existing
			return nil
		}

		sequence, err := nextSequence(tx, year)
		if err != nil {
			return err
		}

		inserted := &domain.FiscalInvoice{
			SellerID:      sellerID,
			Period:        period,
			InvoiceNumber: domain.FormatInvoiceNumber(period, sequence),
			IssueDate:     issueDate,
			DueDate:       dueDate,
		}

		insertSQL, insertArgs, err := squirrel.
			Insert(fiscalInvoicesTable).
			Columns("seller_id", "period", "invoice_number", "issue_date", "due_date").
			Values(inserted.SellerID, inserted.Period, inserted.InvoiceNumber, inserted.IssueDate, inserted.DueDate).
			Suffix("RETURNING id, created_at").
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return err
		}

		if err := tx.QueryRow(insertSQL, insertArgs...).Scan(&inserted.ID, &inserted.CreatedAt); err != nil {
			return err
		}

		invoice = inserted
		created = true
		return nil
	})
	if err != nil {
		// Corrida perdida na UNIQUE (seller_id, period): outra transação
		// inseriu primeiro. O contador desta transação foi revertido junto,
		// então basta devolver o registro vencedor.
		if isUniqueViolation(err) {
			existing, getErr := r.GetBySellerAndPeriod(ctx, sellerID, period)
			if getErr != nil {
				return nil, false, getErr
			}
			if existing != nil {
				return existing, false, nil
			}
		}
		return nil, false, err
	}

	return invoice, created, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

func (r *fiscalInvoiceRepository) getForUpdate(tx *sql.Tx, sellerID int, period string) (*domain.FiscalInvoice, error) {
	querySQL, queryArgs, err := squirrel.
		Select("id", "seller_id", "period", "invoice_number", "issue_date", "due_date", "created_at").
		From(fiscalInvoicesTable).
		Where(squirrel.Eq{"seller_id": sellerID, "period": period}).
		Suffix("FOR UPDATE").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	var invoice domain.FiscalInvoice
	err = tx.QueryRow(querySQL, queryArgs...).Scan(
		&invoice.ID,
		&invoice.SellerID,
		&invoice.Period,
		&invoice.InvoiceNumber,
		&invoice.IssueDate,
		&invoice.DueDate,
		&invoice.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &invoice, nil
}

// nextSequence garante a linha do contador do ano e a incrementa sob lock.
func nextSequence(tx *sql.Tx, year string) (int64, error) {
	_, err := tx.Exec(
		"INSERT INTO "+fiscalInvoiceCountersTable+" (year, last_value) VALUES ($1, 0) ON CONFLICT (year) DO NOTHING",
		year,
	)
	if err != nil {
		return 0, err
	}

	var sequence int64
	err = tx.QueryRow(
		"UPDATE "+fiscalInvoiceCountersTable+" SET last_value = last_value + 1 WHERE year = $1 RETURNING last_value",
		year,
	).Scan(&sequence)
	if err != nil {
		return 0, err
	}

	return sequence, nil
}
