package domain

import "time"

// Produtos comercializados pelos revendedores. Os pesos em pontos de cada
// produto ficam no catálogo de comissionamento, não aqui.
const (
	ProductInternet           = "internet"
	ProductMobileWithContract = "mobile_avec_engagement"
	ProductEnergy             = "energie"
	ProductMobileNoContract   = "mobile_sans_engagement"
)

// SaleEvent representa uma venda instalada de um revendedor. É o dado de
// verdade do motor de comissões: o total acumulado de pontos é sempre
// recalculado a partir da lista ordenada de vendas, nunca persistido como
// estado autoritativo.
//
// Depois que uma comissão foi calculada sobre a venda, o registro é imutável.
type SaleEvent struct {
	ID               int64     `json:"id"`
	SellerID         int       `json:"seller_id"`
	ClientID         string    `json:"client_id"`
	ClientFirstName  string    `json:"client_first_name"`
	ClientLastName   string    `json:"client_last_name"`
	ProductID        string    `json:"product_id"`
	Points           int       `json:"points"`
	InstallationDate time.Time `json:"installation_date"`
	CreatedAt        time.Time `json:"created_at"`
}

// NewSaleEventRequest é o corpo aceito no registro de uma venda instalada.
type NewSaleEventRequest struct {
	ClientID         string `json:"client_id"`
	ProductID        string `json:"product_id"`
	InstallationDate string `json:"installation_date"`
}
