package invoicing

import (
	"errors"
	"fmt"
)

// Erros específicos da emissão de faturas fiscais
var (
	// Erros de validação
	ErrInvalidPeriod    = errors.New("período fiscal inválido")
	ErrSellerIDRequired = errors.New("identificador do revendedor é obrigatório")

	// Erros de infraestrutura. ErrInvoiceStore é seguro de repetir: a
	// alocação é idempotente, então o chamador pode reexecutar a chamada
	// inteira. Jamais degrada para numeração não fiscal.
	ErrInvoiceStore = errors.New("erro ao acessar o armazenamento de faturas")
)

// InvoiceError carrega o contexto da falha de emissão.
type InvoiceError struct {
	Err       error  // Erro base
	SellerID  int    // Revendedor envolvido
	Period    string // Período fiscal envolvido
	Details   string // Detalhes adicionais
	Retryable bool   // Se o chamador pode repetir a chamada com segurança
}

// Error implementa a interface error
func (e *InvoiceError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *InvoiceError) Unwrap() error {
	return e.Err
}

// NewInvoiceError cria um novo InvoiceError
func NewInvoiceError(baseErr error, sellerID int, period string, details string, retryable bool) *InvoiceError {
	return &InvoiceError{
		Err:       baseErr,
		SellerID:  sellerID,
		Period:    period,
		Details:   details,
		Retryable: retryable,
	}
}
