package clienting

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/telavenir/telecom-crm-api/infrastructure/repository/mocks"
	"github.com/telavenir/telecom-crm-api/internal/domain"
	"github.com/telavenir/telecom-crm-api/internal/usecases/commissioning"
	commissioningmocks "github.com/telavenir/telecom-crm-api/internal/usecases/commissioning/mocks"
	"go.uber.org/mock/gomock"
)

func TestService_CreateClient(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClientRepo := mocks.NewMockClientRepository(ctrl)

	mockClientRepo.EXPECT().
		CreateClient(gomock.Any()).
		DoAndReturn(func(client *domain.Client) (*domain.Client, error) {
			// O identificador é gerado antes da persistência
			assert.Len(t, client.ID, 6)
			return client, nil
		})

	service := NewService(mockClientRepo, nil, nil)

	client, err := service.CreateClient(&domain.Client{
		SellerID:  3,
		FirstName: "Jean",
		LastName:  "Dupont",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, client.ID)
}

func TestService_CreateClient_RequiresFullName(t *testing.T) {
	service := NewService(nil, nil, nil)

	_, err := service.CreateClient(&domain.Client{
		SellerID:  3,
		FirstName: "Jean",
		LastName:  "   ",
	})

	assert.True(t, errors.Is(err, ErrClientNameRequired))
}

func TestService_RecordSale_FreezesPointsAtRecording(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClientRepo := mocks.NewMockClientRepository(ctrl)
	mockSaleEventRepo := mocks.NewMockSaleEventRepository(ctrl)
	mockCommissioner := commissioningmocks.NewMockCommissioner(ctrl)

	mockClientRepo.EXPECT().
		GetClientByID("AB12CD").
		Return(&domain.Client{
			ID:        "AB12CD",
			SellerID:  3,
			FirstName: "Jean",
			LastName:  "Dupont",
		}, nil)

	// A tabela em vigor no período da instalação decide os pontos
	mockCommissioner.EXPECT().
		TablesForPeriod("2025-06").
		Return(commissioning.DefaultTables())

	mockSaleEventRepo.EXPECT().
		CreateSaleEvent(gomock.Any()).
		DoAndReturn(func(event *domain.SaleEvent) (*domain.SaleEvent, error) {
			event.ID = 1
			return event, nil
		})

	service := NewService(mockClientRepo, mockSaleEventRepo, mockCommissioner)

	event, err := service.RecordSale(3, "AB12CD", &domain.NewSaleEventRequest{
		ProductID:        domain.ProductInternet,
		InstallationDate: "2025-06-10",
	})
	require.NoError(t, err)

	assert.Equal(t, 6, event.Points)
	assert.Equal(t, "Jean", event.ClientFirstName)
	assert.Equal(t, "Dupont", event.ClientLastName)
	assert.Equal(t, time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC), event.InstallationDate)
}

func TestService_RecordSale_UnknownProduct(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClientRepo := mocks.NewMockClientRepository(ctrl)
	mockSaleEventRepo := mocks.NewMockSaleEventRepository(ctrl)
	mockCommissioner := commissioningmocks.NewMockCommissioner(ctrl)

	mockClientRepo.EXPECT().
		GetClientByID("AB12CD").
		Return(&domain.Client{ID: "AB12CD", FirstName: "Jean", LastName: "Dupont"}, nil)

	mockCommissioner.EXPECT().
		TablesForPeriod("2025-06").
		Return(commissioning.DefaultTables())

	service := NewService(mockClientRepo, mockSaleEventRepo, mockCommissioner)

	_, err := service.RecordSale(3, "AB12CD", &domain.NewSaleEventRequest{
		ProductID:        "tv_satellite",
		InstallationDate: "2025-06-10",
	})

	assert.True(t, errors.Is(err, ErrUnknownProduct))
}

func TestService_RecordSale_ClientNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClientRepo := mocks.NewMockClientRepository(ctrl)

	mockClientRepo.EXPECT().
		GetClientByID("ZZ99ZZ").
		Return(nil, nil)

	service := NewService(mockClientRepo, nil, nil)

	_, err := service.RecordSale(3, "ZZ99ZZ", &domain.NewSaleEventRequest{
		ProductID:        domain.ProductInternet,
		InstallationDate: "2025-06-10",
	})

	assert.True(t, errors.Is(err, ErrClientNotFound))

	var clientErr *ClientError
	require.True(t, errors.As(err, &clientErr))
	assert.Equal(t, "ZZ99ZZ", clientErr.ClientID)
}

func TestService_RecordSale_InvalidInstallationDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClientRepo := mocks.NewMockClientRepository(ctrl)

	mockClientRepo.EXPECT().
		GetClientByID("AB12CD").
		Return(&domain.Client{ID: "AB12CD", FirstName: "Jean", LastName: "Dupont"}, nil)

	service := NewService(mockClientRepo, nil, nil)

	_, err := service.RecordSale(3, "AB12CD", &domain.NewSaleEventRequest{
		ProductID:        domain.ProductInternet,
		InstallationDate: "10/06/2025",
	})

	assert.True(t, errors.Is(err, ErrInvalidInstallation))
}
