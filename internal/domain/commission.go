package domain

import "github.com/shopspring/decimal"

// CommissionLedgerLine é o resultado do cálculo de CVD para uma venda.
// Os nomes dos campos JSON (produit, client, tranche, pointsCumules...) são
// um contrato de compatibilidade com o renderizador de faturas e não podem
// ser renomeados de um lado só.
type CommissionLedgerLine struct {
	SaleEventID      int64           `json:"saleEventId"`
	Product          string          `json:"produit"`
	Client           string          `json:"client"`
	Points           int             `json:"points"`
	Commission       decimal.Decimal `json:"commission"`
	Tier             int             `json:"tranche"`
	CumulativePoints int             `json:"pointsCumules"`
}

// CommissionStatement agrupa as linhas de comissão de um revendedor em um
// período fiscal. O total é sempre a soma das linhas, nunca recalculado a
// partir de agregados.
type CommissionStatement struct {
	SellerID int                    `json:"seller_id"`
	Period   string                 `json:"period"`
	Lines    []CommissionLedgerLine `json:"lines"`
	Total    decimal.Decimal        `json:"total"`
}

// CommissionEstimate é o resultado do caminho de estimativa, calculado apenas
// a partir de totais quando não há detalhamento por venda. Nunca pode ser
// usado para emitir um documento fiscal; o campo Estimation deixa isso
// visível para qualquer consumidor.
type CommissionEstimate struct {
	SellerID    int             `json:"seller_id"`
	Period      string          `json:"period"`
	TotalPoints int             `json:"total_points"`
	Tier        int             `json:"tranche"`
	Amount      decimal.Decimal `json:"montant_estime"`
	Estimation  bool            `json:"estimation"`
}
