package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/telavenir/telecom-crm-api/internal/domain"
	"github.com/telavenir/telecom-crm-api/internal/usecases/commissioning"
	"github.com/telavenir/telecom-crm-api/pkg/apiErrors"
	"github.com/telavenir/telecom-crm-api/pkg/middleware"
)

// sellerIDFromRequest extrai o ID do revendedor da URL e valida a permissão:
// revendedores só enxergam os próprios dados, admin e supervisor enxergam todos.
func sellerIDFromRequest(w http.ResponseWriter, r *http.Request) (int, bool) {
	idStr := httprouter.ParamsFromContext(r.Context()).ByName("id")
	if idStr == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do revendedor não fornecido", nil)
		return 0, false
	}

	sellerID, err := strconv.Atoi(idStr)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do revendedor inválido", nil)
		return 0, false
	}

	userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
		return 0, false
	}

	if userClaims.UserRoleID == domain.RoleSeller && userClaims.UserID != sellerID {
		apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para acessar dados de outro revendedor", nil)
		return 0, false
	}

	return sellerID, true
}

// GetSellerCommissions retorna o extrato de comissões fiscais do revendedor no período
func GetSellerCommissions(service commissioning.Commissioner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sellerID, ok := sellerIDFromRequest(w, r)
		if !ok {
			return
		}

		period := r.URL.Query().Get("period")
		if period == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Parâmetro period não fornecido", nil)
			return
		}

		statement, err := service.ComputeStatement(sellerID, period)
		if err != nil {
			writeCommissionError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(statement); err != nil {
			logrus.Error("Erro ao enviar extrato de comissões:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// GetSellerCommissionEstimate retorna a projeção de comissão do período,
// calculada apenas a partir dos totais de vendas. Nunca alimenta fatura.
func GetSellerCommissionEstimate(service commissioning.Commissioner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sellerID, ok := sellerIDFromRequest(w, r)
		if !ok {
			return
		}

		period := r.URL.Query().Get("period")
		if period == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Parâmetro period não fornecido", nil)
			return
		}

		estimate, err := service.EstimateStatement(sellerID, period)
		if err != nil {
			writeCommissionError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(estimate); err != nil {
			logrus.Error("Erro ao enviar estimativa de comissões:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// writeCommissionError traduz os erros do motor de comissões para a resposta da API
func writeCommissionError(w http.ResponseWriter, err error) {
	logrus.Error("Erro ao calcular comissões:", err)

	var commErr *commissioning.CommissionError
	details := any(nil)
	if errors.As(err, &commErr) {
		details = commErr.Details
	}

	switch {
	case errors.Is(err, commissioning.ErrInvalidPeriod):
		apiErrors.WriteError(w, apiErrors.ErrInvalidPeriod, "Período inválido, esperado AAAA-MM", details)
	case errors.Is(err, commissioning.ErrUnknownProduct):
		apiErrors.WriteError(w, apiErrors.ErrUnknownProduct, "Produto ausente do catálogo de pontos", details)
	case errors.Is(err, commissioning.ErrUnknownTierProduct):
		apiErrors.WriteError(w, apiErrors.ErrUnknownTierProduct, "Produto sem valor na tabela de tranches", details)
	case errors.Is(err, commissioning.ErrMissingClientIdentity):
		apiErrors.WriteError(w, apiErrors.ErrMissingClientIdentity, "Venda sem identidade do cliente bloqueia o cálculo fiscal", details)
	case errors.Is(err, commissioning.ErrDatabaseOperation):
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar vendas do período", nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao calcular comissões", nil)
	}
}
