package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/telavenir/telecom-crm-api/infrastructure/database/postgres"
	"github.com/telavenir/telecom-crm-api/internal/domain"
)

const clientsTable = "clients"

type ClientRepository interface {
	CreateClient(client *domain.Client) (*domain.Client, error)
	UpdateClient(client *domain.Client) error
	GetClientByID(clientID string) (*domain.Client, error)
	ListClientsBySeller(sellerID int) ([]*domain.Client, error)
}

type clientRepository struct {
	conn *postgres.Connection
}

func NewClientRepository(conn *postgres.Connection) ClientRepository {
	return &clientRepository{
		conn: conn,
	}
}

func (r *clientRepository) CreateClient(client *domain.Client) (*domain.Client, error) {
	queryBuilder := squirrel.
		Insert(clientsTable).
		Columns("id", "seller_id", "first_name", "last_name", "email", "phone", "address", "postal_code", "city").
		Values(client.ID, client.SellerID, client.FirstName, client.LastName, client.Email, client.Phone, client.Address, client.PostalCode, client.City).
		Suffix("RETURNING created_at").
		PlaceholderFormat(squirrel.Dollar)

	clientSQL, clientArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	err = r.conn.QueryRow(clientSQL, clientArgs...).Scan(&client.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar cliente: %w", err)
	}

	return client, nil
}

func (r *clientRepository) UpdateClient(client *domain.Client) error {
	queryBuilder := squirrel.
		Update(clientsTable).
		Where(squirrel.Eq{"id": client.ID})

	if client.FirstName != "" {
		queryBuilder = queryBuilder.Set("first_name", client.FirstName)
	}

	if client.LastName != "" {
		queryBuilder = queryBuilder.Set("last_name", client.LastName)
	}

	if client.Email != nil && *client.Email != "" {
		queryBuilder = queryBuilder.Set("email", client.Email)
	}

	if client.Phone != nil && *client.Phone != "" {
		queryBuilder = queryBuilder.Set("phone", client.Phone)
	}

	if client.Address != nil && *client.Address != "" {
		queryBuilder = queryBuilder.Set("address", client.Address)
	}

	if client.PostalCode != nil && *client.PostalCode != "" {
		queryBuilder = queryBuilder.Set("postal_code", client.PostalCode)
	}

	if client.City != nil && *client.City != "" {
		queryBuilder = queryBuilder.Set("city", client.City)
	}

	if client.Deleted {
		queryBuilder = queryBuilder.Set("deleted", true)
		queryBuilder = queryBuilder.Set("deleted_at", client.DeletedAt)
	}

	clientSQL, clientArgs, err := queryBuilder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	_, err = r.conn.Exec(clientSQL, clientArgs...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar cliente: %w", err)
	}

	return nil
}

func (r *clientRepository) GetClientByID(clientID string) (*domain.Client, error) {
	var client domain.Client
	err := r.conn.QueryRow(
		"SELECT id, seller_id, first_name, last_name, email, phone, address, postal_code, city, created_at, updated_at FROM clients WHERE deleted = false AND id = $1",
		clientID,
	).Scan(
		&client.ID,
		&client.SellerID,
		&client.FirstName,
		&client.LastName,
		&client.Email,
		&client.Phone,
		&client.Address,
		&client.PostalCode,
		&client.City,
		&client.CreatedAt,
		&client.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &client, nil
}

func (r *clientRepository) ListClientsBySeller(sellerID int) ([]*domain.Client, error) {
	queryBuilder := squirrel.
		Select("id", "seller_id", "first_name", "last_name", "email", "phone", "address", "postal_code", "city", "created_at", "updated_at").
		From(clientsTable).
		Where(squirrel.Eq{"deleted": false, "seller_id": sellerID}).
		OrderBy("last_name ASC", "first_name ASC").
		PlaceholderFormat(squirrel.Dollar)

	clientsSQL, clientsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(clientsSQL, clientsArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clients []*domain.Client
	for rows.Next() {
		var client domain.Client
		if err := rows.Scan(
			&client.ID,
			&client.SellerID,
			&client.FirstName,
			&client.LastName,
			&client.Email,
			&client.Phone,
			&client.Address,
			&client.PostalCode,
			&client.City,
			&client.CreatedAt,
			&client.UpdatedAt,
		); err != nil {
			return nil, err
		}

		clients = append(clients, &client)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return clients, nil
}
