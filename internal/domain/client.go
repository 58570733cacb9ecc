package domain

import "time"

// Client é a ficha de cliente do CRM. O motor de comissões só consome o nome
// (identidade obrigatória na fatura); o resto é cadastro comum.
type Client struct {
	ID         string     `json:"id"`
	SellerID   int        `json:"seller_id"`
	FirstName  string     `json:"first_name"`
	LastName   string     `json:"last_name"`
	Email      *string    `json:"email"`
	Phone      *string    `json:"phone"`
	Address    *string    `json:"address"`
	PostalCode *string    `json:"postal_code"`
	City       *string    `json:"city"`
	Deleted    bool       `json:"deleted"`
	DeletedAt  *time.Time `json:"deleted_at"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}
