package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/telavenir/telecom-crm-api/internal/domain"
	"github.com/telavenir/telecom-crm-api/internal/usecases/clienting"
	"github.com/telavenir/telecom-crm-api/pkg/apiErrors"
	"github.com/telavenir/telecom-crm-api/pkg/middleware"
)

// CreateClient cria um novo cliente da carteira do revendedor
func CreateClient(service clienting.ClientService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateClient")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var client domain.Client
		if err := json.NewDecoder(r.Body).Decode(&client); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		// Revendedor só cadastra na própria carteira
		if userClaims.UserRoleID == domain.RoleSeller || client.SellerID == 0 {
			client.SellerID = userClaims.UserID
		}

		created, err := service.CreateClient(&client)
		if err != nil {
			writeClientError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(created); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// ListClients lista os clientes da carteira do revendedor
func ListClients(service clienting.ClientService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		// Revendedor lista a própria carteira; admin e supervisor podem
		// consultar qualquer revendedor via query string
		sellerID := userClaims.UserID
		if userClaims.UserRoleID != domain.RoleSeller {
			if sellerIDStr := r.URL.Query().Get("sellerId"); sellerIDStr != "" {
				id, err := strconv.Atoi(sellerIDStr)
				if err != nil {
					apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro sellerId inválido", nil)
					return
				}
				sellerID = id
			}
		}

		clients, err := service.ListClients(sellerID)
		if err != nil {
			writeClientError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(clients); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// GetClient retorna um cliente por ID
func GetClient(service clienting.ClientService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clientID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		client, err := service.GetClient(clientID)
		if err != nil {
			writeClientError(w, err)
			return
		}

		if client == nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Cliente não encontrado", nil)
			return
		}

		if !canAccessClient(r, client) {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para acessar este cliente", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(client); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// UpdateClient atualiza os dados cadastrais de um cliente
func UpdateClient(service clienting.ClientService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateClient")

		clientID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		existing, err := service.GetClient(clientID)
		if err != nil {
			writeClientError(w, err)
			return
		}
		if existing == nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Cliente não encontrado", nil)
			return
		}

		if !canAccessClient(r, existing) {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para editar este cliente", nil)
			return
		}

		var client domain.Client
		if err := json.NewDecoder(r.Body).Decode(&client); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		client.ID = clientID

		if err := service.UpdateClient(&client); err != nil {
			writeClientError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
	}
}

// RecordClientSale registra uma venda instalada para o cliente. Os pontos e o
// nome do cliente ficam congelados no evento.
func RecordClientSale(service clienting.ClientService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RecordClientSale")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		clientID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var request domain.NewSaleEventRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		event, err := service.RecordSale(userClaims.UserID, clientID, &request)
		if err != nil {
			writeClientError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(event); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// canAccessClient verifica se o usuário logado pode acessar o cliente:
// revendedores só enxergam a própria carteira
func canAccessClient(r *http.Request, client *domain.Client) bool {
	userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
	if !ok {
		return false
	}

	if userClaims.UserRoleID == domain.RoleSeller {
		return client.SellerID == userClaims.UserID
	}

	return true
}

// writeClientError traduz os erros do serviço de clientes para a resposta da API
func writeClientError(w http.ResponseWriter, err error) {
	logrus.Error(err)

	var clientErr *clienting.ClientError
	if errors.As(err, &clientErr) {
		apiErrors.WriteError(w, clientErr.Code, clientErr.Details, nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao processar requisição", nil)
}
