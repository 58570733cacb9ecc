package domain

import (
	"fmt"
	"strings"
	"time"
)

// FormatInvoiceNumber monta o número fiscal no formato
// "FA <ano> <mês> <sequência com 8 dígitos>". O formato é contrato com o
// arquivo fiscal e com o renderizador.
func FormatInvoiceNumber(period string, sequence int64) string {
	year, month, _ := strings.Cut(period, "-")
	return fmt.Sprintf("FA %s %s %08d", year, month, sequence)
}

// FiscalInvoice é o registro permanente de numeração de fatura para um par
// (revendedor, período). Criado no máximo uma vez; o número nunca muda depois
// da primeira alocação.
type FiscalInvoice struct {
	ID            int64     `json:"id"`
	SellerID      int       `json:"seller_id"`
	Period        string    `json:"period"`
	InvoiceNumber string    `json:"invoice_number"`
	IssueDate     time.Time `json:"issue_date"`
	DueDate       time.Time `json:"due_date"`
	CreatedAt     time.Time `json:"created_at"`
}

// InvoiceAllocation é a forma de resposta consumida pelo renderizador de
// faturas. Os nomes JSON são contrato de compatibilidade.
type InvoiceAllocation struct {
	InvoiceNumber string `json:"numeroFacture"`
	IssueDate     string `json:"dateFacturation"`
	DueDate       string `json:"dateEcheance"`
	IsExisting    bool   `json:"isExisting"`
}

// NewInvoiceAllocation converte o registro persistido para a forma do
// renderizador. As datas saem como ISO (somente data).
func NewInvoiceAllocation(inv *FiscalInvoice, isExisting bool) *InvoiceAllocation {
	return &InvoiceAllocation{
		InvoiceNumber: inv.InvoiceNumber,
		IssueDate:     inv.IssueDate.Format(time.DateOnly),
		DueDate:       inv.DueDate.Format(time.DateOnly),
		IsExisting:    isExisting,
	}
}

// InvoicePreview é uma pré-visualização efêmera. O número provisório nunca é
// persistido e o tipo é distinto de InvoiceAllocation de propósito: um
// preview não pode ser confundido com uma fatura real.
type InvoicePreview struct {
	TemporaryNumber string `json:"numeroProvisoire"`
	Provisional     bool   `json:"provisoire"`
}

// InvoiceDocument é a carga completa entregue ao renderizador: numeração
// fiscal mais as linhas de comissão que a justificam.
type InvoiceDocument struct {
	Allocation *InvoiceAllocation     `json:"allocation"`
	Lines      []CommissionLedgerLine `json:"lignes"`
	Total      string                 `json:"total"`
}
