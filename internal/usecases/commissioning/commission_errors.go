package commissioning

import (
	"errors"
	"fmt"
)

// Erros específicos do cálculo de comissões
var (
	// Erros de configuração/catálogo
	ErrUnknownProduct      = errors.New("produto desconhecido no catálogo de pontos")
	ErrUnknownTierProduct  = errors.New("combinação tranche/produto desconhecida na tabela de comissões")
	ErrUnknownTableVersion = errors.New("versão desconhecida das tabelas de comissões")

	// Erros de conformidade fiscal
	ErrMissingClientIdentity = errors.New("venda sem identidade de cliente")

	// Erros de validação
	ErrInvalidPeriod = errors.New("período fiscal inválido")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("erro ao buscar vendas do revendedor")
)

// CommissionError carrega o contexto fiscal do erro: qual venda e qual
// cliente bloquearam o cálculo. A emissão da fatura precisa reportar isso ao
// chamador, não uma falha genérica.
type CommissionError struct {
	Err         error  // Erro base
	Client      string // Nome do cliente envolvido (quando aplicável)
	ProductID   string // Produto envolvido (quando aplicável)
	SaleEventID int64  // ID da venda que disparou o erro
	Details     string // Detalhes adicionais
}

// Error implementa a interface error
func (e *CommissionError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *CommissionError) Unwrap() error {
	return e.Err
}

// IsConfigurationError verifica se o erro vem de lacuna de catálogo/tabela
func IsConfigurationError(err error) bool {
	return errors.Is(err, ErrUnknownProduct) ||
		errors.Is(err, ErrUnknownTierProduct)
}

// NewCommissionError cria um novo CommissionError
func NewCommissionError(baseErr error, client string, productID string, details string) *CommissionError {
	return &CommissionError{
		Err:       baseErr,
		Client:    client,
		ProductID: productID,
		Details:   details,
	}
}

// NewSaleCommissionError cria um CommissionError apontando a venda que o causou
func NewSaleCommissionError(baseErr error, saleEventID int64, client string, productID string, details string) *CommissionError {
	return &CommissionError{
		Err:         baseErr,
		SaleEventID: saleEventID,
		Client:      client,
		ProductID:   productID,
		Details:     details,
	}
}
