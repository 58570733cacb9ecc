package repository

import (
	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/telavenir/telecom-crm-api/infrastructure/database/postgres"
	"github.com/telavenir/telecom-crm-api/internal/domain"
	"github.com/telavenir/telecom-crm-api/pkg/utils"
)

const saleEventsTable = "sale_events"

type SaleEventRepository interface {
	CreateSaleEvent(event *domain.SaleEvent) (*domain.SaleEvent, error)

	// ListInstalledBySellerAndPeriod devolve as vendas instaladas do
	// revendedor no período, ordenadas por data de instalação crescente.
	// Essa ordem é a ordem de verdade do cálculo de comissões.
	ListInstalledBySellerAndPeriod(sellerID int, period string) ([]domain.SaleEvent, error)

	// CountInstalledByProduct devolve só as contagens por produto do período.
	// Alimenta exclusivamente o caminho de estimativa.
	CountInstalledByProduct(sellerID int, period string) (map[string]int, error)
}

type saleEventRepository struct {
	conn *postgres.Connection
}

func NewSaleEventRepository(conn *postgres.Connection) SaleEventRepository {
	return &saleEventRepository{
		conn: conn,
	}
}

func (r *saleEventRepository) CreateSaleEvent(event *domain.SaleEvent) (*domain.SaleEvent, error) {
	queryBuilder := squirrel.
		Insert(saleEventsTable).
		Columns("seller_id", "client_id", "client_first_name", "client_last_name", "product_id", "points", "installation_date").
		Values(event.SellerID, event.ClientID, event.ClientFirstName, event.ClientLastName, event.ProductID, event.Points, event.InstallationDate).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar)

	eventSQL, eventArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.conn.QueryRow(eventSQL, eventArgs...).Scan(&event.ID, &event.CreatedAt)
	if err != nil {
		return nil, err
	}

	return event, nil
}

func (r *saleEventRepository) ListInstalledBySellerAndPeriod(sellerID int, period string) ([]domain.SaleEvent, error) {
	start, end, err := utils.PeriodBounds(period)
	if err != nil {
		return nil, err
	}

	queryBuilder := squirrel.
		Select("id", "seller_id", "client_id", "client_first_name", "client_last_name", "product_id", "points", "installation_date", "created_at").
		From(saleEventsTable).
		Where(squirrel.Eq{"seller_id": sellerID}).
		Where(squirrel.GtOrEq{"installation_date": start}).
		Where(squirrel.Lt{"installation_date": end}).
		OrderBy("installation_date ASC", "id ASC").
		PlaceholderFormat(squirrel.Dollar)

	eventsSQL, eventsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(eventsSQL, eventsArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []domain.SaleEvent
	for rows.Next() {
		var event domain.SaleEvent
		if err := rows.Scan(
			&event.ID,
			&event.SellerID,
			&event.ClientID,
			&event.ClientFirstName,
			&event.ClientLastName,
			&event.ProductID,
			&event.Points,
			&event.InstallationDate,
			&event.CreatedAt,
		); err != nil {
			return nil, err
		}

		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

func (r *saleEventRepository) CountInstalledByProduct(sellerID int, period string) (map[string]int, error) {
	start, end, err := utils.PeriodBounds(period)
	if err != nil {
		return nil, err
	}

	queryBuilder := squirrel.
		Select("product_id", "COUNT(*)").
		From(saleEventsTable).
		Where(squirrel.Eq{"seller_id": sellerID}).
		Where(squirrel.GtOrEq{"installation_date": start}).
		Where(squirrel.Lt{"installation_date": end}).
		GroupBy("product_id").
		PlaceholderFormat(squirrel.Dollar)

	countsSQL, countsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(countsSQL, countsArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var productID string
		var count int
		if err := rows.Scan(&productID, &count); err != nil {
			return nil, err
		}
		counts[productID] = count
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}
