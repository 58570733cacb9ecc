package commissioning

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/telavenir/telecom-crm-api/infrastructure/repository/mocks"
	"github.com/telavenir/telecom-crm-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestService_ComputeStatement(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSaleEventRepo := mocks.NewMockSaleEventRepository(ctrl)

	events := []domain.SaleEvent{
		{
			ID:               1,
			SellerID:         3,
			ClientFirstName:  "Claire",
			ClientLastName:   "Martin",
			ProductID:        domain.ProductInternet,
			InstallationDate: time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:               2,
			SellerID:         3,
			ClientFirstName:  "Paul",
			ClientLastName:   "Bernard",
			ProductID:        domain.ProductEnergy,
			InstallationDate: time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		},
	}

	mockSaleEventRepo.EXPECT().
		ListInstalledBySellerAndPeriod(3, "2025-06").
		Return(events, nil)

	service := NewService(NewTableSet(DefaultTables()), mockSaleEventRepo)

	statement, err := service.ComputeStatement(3, "2025-06")
	require.NoError(t, err)

	assert.Equal(t, 3, statement.SellerID)
	assert.Equal(t, "2025-06", statement.Period)
	require.Len(t, statement.Lines, 2)

	// internet: 0→6 cruza (40); energie: 6→10 cruza (25)
	assert.Equal(t, "40", statement.Lines[0].Commission.String())
	assert.Equal(t, "25", statement.Lines[1].Commission.String())
	assert.Equal(t, "65", statement.Total.String())
}

func TestService_ComputeStatement_InvalidPeriod(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewService(NewTableSet(DefaultTables()), mocks.NewMockSaleEventRepository(ctrl))

	// O repositório nunca é consultado com período malformado
	_, err := service.ComputeStatement(3, "junho de 2025")
	assert.True(t, errors.Is(err, ErrInvalidPeriod))
}

func TestService_ComputeStatement_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSaleEventRepo := mocks.NewMockSaleEventRepository(ctrl)
	mockSaleEventRepo.EXPECT().
		ListInstalledBySellerAndPeriod(3, "2025-06").
		Return(nil, errors.New("connection refused"))

	service := NewService(NewTableSet(DefaultTables()), mockSaleEventRepo)

	_, err := service.ComputeStatement(3, "2025-06")
	assert.True(t, errors.Is(err, ErrDatabaseOperation))
}

func TestService_EstimateStatement(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSaleEventRepo := mocks.NewMockSaleEventRepository(ctrl)
	mockSaleEventRepo.EXPECT().
		CountInstalledByProduct(3, "2025-06").
		Return(map[string]int{
			domain.ProductInternet:         2,
			domain.ProductMobileNoContract: 3,
		}, nil)

	service := NewService(NewTableSet(DefaultTables()), mockSaleEventRepo)

	estimate, err := service.EstimateStatement(3, "2025-06")
	require.NoError(t, err)

	// 2x internet + 3x mobile sem compromisso = 15 pontos = 3 paliers
	assert.Equal(t, 15, estimate.TotalPoints)
	assert.Equal(t, 1, estimate.Tier)
	assert.Equal(t, "75", estimate.Amount.String())
	assert.True(t, estimate.Estimation)
}

func TestService_TablesForPeriod_VersionedByPeriod(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tableSet := NewTableSet(DefaultTables())

	v2 := DefaultTables()
	v2.Version = "v2"
	tableSet.RegisterPeriod("2025-07", v2)

	service := NewService(tableSet, mocks.NewMockSaleEventRepository(ctrl))

	assert.Equal(t, "v1", service.TablesForPeriod("2025-06").Version)
	assert.Equal(t, "v2", service.TablesForPeriod("2025-07").Version)
}
