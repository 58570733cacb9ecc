package clienting

import (
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/telavenir/telecom-crm-api/infrastructure/repository"
	"github.com/telavenir/telecom-crm-api/internal/domain"
	"github.com/telavenir/telecom-crm-api/internal/usecases/commissioning"
	"github.com/telavenir/telecom-crm-api/pkg/apiErrors"
	"github.com/telavenir/telecom-crm-api/pkg/utils"
)

type ClientService interface {
	CreateClient(client *domain.Client) (*domain.Client, error)
	UpdateClient(client *domain.Client) error
	GetClient(clientID string) (*domain.Client, error)
	ListClients(sellerID int) ([]*domain.Client, error)

	// RecordSale registra uma venda instalada para o cliente. Os pontos do
	// produto são congelados na gravação, junto com o nome do cliente na
	// época da venda.
	RecordSale(sellerID int, clientID string, request *domain.NewSaleEventRequest) (*domain.SaleEvent, error)
}

type Service struct {
	clientRepo    repository.ClientRepository
	saleEventRepo repository.SaleEventRepository
	commissioner  commissioning.Commissioner
}

func NewService(
	clientRepo repository.ClientRepository,
	saleEventRepo repository.SaleEventRepository,
	commissioner commissioning.Commissioner,
) ClientService {
	return &Service{
		clientRepo:    clientRepo,
		saleEventRepo: saleEventRepo,
		commissioner:  commissioner,
	}
}

func (s *Service) CreateClient(client *domain.Client) (*domain.Client, error) {
	if strings.TrimSpace(client.FirstName) == "" || strings.TrimSpace(client.LastName) == "" {
		return nil, NewClientError(ErrClientNameRequired, apiErrors.ErrMissingRequiredData, "Nome e sobrenome do cliente são obrigatórios")
	}

	clientID, err := utils.GenerateID()
	if err != nil {
		return nil, NewClientError(ErrGenerateID, apiErrors.ErrInternalServer, "Falha ao gerar identificador único para cliente")
	}

	client.ID = clientID

	client, err = s.clientRepo.CreateClient(client)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar cliente no banco de dados")
		return nil, NewClientError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao criar cliente")
	}

	return client, nil
}

func (s *Service) UpdateClient(client *domain.Client) error {
	if client.ID == "" {
		return NewClientError(ErrClientIDRequired, apiErrors.ErrMissingRequiredData, "ID do cliente não fornecido")
	}

	existing, err := s.clientRepo.GetClientByID(client.ID)
	if err != nil {
		return NewClientErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, client.ID, "Falha ao consultar cliente")
	}
	if existing == nil {
		return NewClientErrorWithID(ErrClientNotFound, apiErrors.ErrInvalidRequest, client.ID, "Cliente não encontrado")
	}

	if err := s.clientRepo.UpdateClient(client); err != nil {
		return NewClientErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, client.ID, "Falha ao atualizar cliente")
	}

	return nil
}

func (s *Service) GetClient(clientID string) (*domain.Client, error) {
	if clientID == "" {
		return nil, NewClientError(ErrClientIDRequired, apiErrors.ErrMissingRequiredData, "ID do cliente não fornecido")
	}

	client, err := s.clientRepo.GetClientByID(clientID)
	if err != nil {
		return nil, NewClientErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, clientID, "Falha ao consultar cliente")
	}

	return client, nil
}

func (s *Service) ListClients(sellerID int) ([]*domain.Client, error) {
	clients, err := s.clientRepo.ListClientsBySeller(sellerID)
	if err != nil {
		return nil, NewClientError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao listar clientes")
	}

	return clients, nil
}

func (s *Service) RecordSale(sellerID int, clientID string, request *domain.NewSaleEventRequest) (*domain.SaleEvent, error) {
	client, err := s.GetClient(clientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, NewClientErrorWithID(ErrClientNotFound, apiErrors.ErrInvalidRequest, clientID, "Cliente não encontrado")
	}

	installedAt, err := utils.ParseDate(request.InstallationDate)
	if err != nil {
		return nil, NewClientErrorWithID(ErrInvalidInstallation, apiErrors.ErrInvalidFormat, clientID, "Data de instalação inválida, esperado AAAA-MM-DD")
	}

	// Pontos congelados da tabela em vigor no período da instalação
	tables := s.commissioner.TablesForPeriod(utils.PeriodOf(*installedAt))
	points, err := tables.Catalog.PointsFor(request.ProductID)
	if err != nil {
		return nil, NewClientErrorWithID(ErrUnknownProduct, apiErrors.ErrUnknownProduct, clientID, "Produto ausente do catálogo de pontos: "+request.ProductID)
	}

	event := &domain.SaleEvent{
		SellerID:         sellerID,
		ClientID:         client.ID,
		ClientFirstName:  client.FirstName,
		ClientLastName:   client.LastName,
		ProductID:        request.ProductID,
		Points:           points,
		InstallationDate: *installedAt,
	}

	event, err = s.saleEventRepo.CreateSaleEvent(event)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"seller_id": sellerID,
			"client_id": clientID,
			"product":   request.ProductID,
		}).Error("Erro ao registrar venda instalada")
		return nil, NewClientErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, clientID, "Falha ao registrar venda")
	}

	return event, nil
}
