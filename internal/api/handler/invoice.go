package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/telavenir/telecom-crm-api/internal/usecases/commissioning"
	"github.com/telavenir/telecom-crm-api/internal/usecases/invoicing"
	"github.com/telavenir/telecom-crm-api/pkg/apiErrors"
)

// IssueInvoice emite (ou recupera) a fatura fiscal do revendedor no período.
// A primeira chamada aloca o número definitivo; as seguintes devolvem o mesmo
// documento com isExisting=true.
func IssueInvoice(service invoicing.Allocator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sellerID, ok := sellerIDFromRequest(w, r)
		if !ok {
			return
		}

		period := httprouter.ParamsFromContext(r.Context()).ByName("period")
		if period == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Período não fornecido", nil)
			return
		}

		document, err := service.Issue(r.Context(), sellerID, period)
		if err != nil {
			writeInvoiceError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(document); err != nil {
			logrus.Error("Erro ao enviar fatura fiscal:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// PreviewInvoice devolve um número provisório efêmero para telas de
// pré-visualização. Nada é persistido.
func PreviewInvoice(service invoicing.Allocator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sellerID, ok := sellerIDFromRequest(w, r)
		if !ok {
			return
		}

		period := httprouter.ParamsFromContext(r.Context()).ByName("period")
		if period == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Período não fornecido", nil)
			return
		}

		preview := service.Preview(sellerID, period)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(preview); err != nil {
			logrus.Error("Erro ao enviar pré-visualização de fatura:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// writeInvoiceError traduz os erros do faturamento para a resposta da API
func writeInvoiceError(w http.ResponseWriter, err error) {
	logrus.Error("Erro ao emitir fatura fiscal:", err)

	// Erros fatais de comissão bloqueiam a emissão e sobem como estão
	var commErr *commissioning.CommissionError
	if errors.As(err, &commErr) {
		writeCommissionError(w, err)
		return
	}

	switch {
	case errors.Is(err, invoicing.ErrInvalidPeriod):
		apiErrors.WriteError(w, apiErrors.ErrInvalidPeriod, "Período inválido, esperado AAAA-MM", nil)
	case errors.Is(err, invoicing.ErrSellerIDRequired):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do revendedor inválido", nil)
	case errors.Is(err, invoicing.ErrInvoiceStore):
		apiErrors.WriteError(w, apiErrors.ErrInvoiceStore, "Falha ao persistir fatura fiscal, tente novamente", nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao emitir fatura fiscal", nil)
	}
}
