package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/telavenir/telecom-crm-api/infrastructure/repository/mocks"
	"github.com/telavenir/telecom-crm-api/internal/domain"
	invoicingmocks "github.com/telavenir/telecom-crm-api/internal/usecases/invoicing/mocks"
	"github.com/telavenir/telecom-crm-api/pkg/utils"
	"go.uber.org/mock/gomock"
)

func TestMonthlyInvoiceRunService_runMonthlyInvoices(t *testing.T) {
	// O período faturado é sempre o mês fechado anterior
	expectedPeriod := utils.PreviousPeriod(time.Now())

	tests := []struct {
		name  string
		setup func(userRepo *mocks.MockUserRepository, allocator *invoicingmocks.MockAllocator)
	}{
		{
			name: "Deve alocar fatura para cada revendedor ativo",
			setup: func(userRepo *mocks.MockUserRepository, allocator *invoicingmocks.MockAllocator) {
				userRepo.EXPECT().
					ListActiveSellers().
					Return([]*domain.User{
						{ID: 3, Name: "Marie", Active: true},
						{ID: 5, Name: "Paul", Active: true},
					}, nil)

				allocator.EXPECT().
					GenerateOrGet(gomock.Any(), 3, expectedPeriod).
					Return(&domain.InvoiceAllocation{InvoiceNumber: "FA 2025 06 00000001"}, nil)

				allocator.EXPECT().
					GenerateOrGet(gomock.Any(), 5, expectedPeriod).
					Return(&domain.InvoiceAllocation{InvoiceNumber: "FA 2025 06 00000002"}, nil)
			},
		},
		{
			name: "Falha em um revendedor não interrompe os demais",
			setup: func(userRepo *mocks.MockUserRepository, allocator *invoicingmocks.MockAllocator) {
				userRepo.EXPECT().
					ListActiveSellers().
					Return([]*domain.User{
						{ID: 3, Name: "Marie", Active: true},
						{ID: 5, Name: "Paul", Active: true},
					}, nil)

				allocator.EXPECT().
					GenerateOrGet(gomock.Any(), 3, expectedPeriod).
					Return(nil, assert.AnError)

				// O revendedor seguinte ainda é processado
				allocator.EXPECT().
					GenerateOrGet(gomock.Any(), 5, expectedPeriod).
					Return(&domain.InvoiceAllocation{InvoiceNumber: "FA 2025 06 00000002"}, nil)
			},
		},
		{
			name: "Revendedor já faturado conta como existente",
			setup: func(userRepo *mocks.MockUserRepository, allocator *invoicingmocks.MockAllocator) {
				userRepo.EXPECT().
					ListActiveSellers().
					Return([]*domain.User{
						{ID: 3, Name: "Marie", Active: true},
					}, nil)

				allocator.EXPECT().
					GenerateOrGet(gomock.Any(), 3, expectedPeriod).
					Return(&domain.InvoiceAllocation{InvoiceNumber: "FA 2025 06 00000001", IsExisting: true}, nil)
			},
		},
		{
			name: "Nenhum revendedor ativo encerra sem alocar",
			setup: func(userRepo *mocks.MockUserRepository, allocator *invoicingmocks.MockAllocator) {
				userRepo.EXPECT().
					ListActiveSellers().
					Return([]*domain.User{}, nil)
			},
		},
		{
			name: "Erro ao listar revendedores encerra sem alocar",
			setup: func(userRepo *mocks.MockUserRepository, allocator *invoicingmocks.MockAllocator) {
				userRepo.EXPECT().
					ListActiveSellers().
					Return(nil, assert.AnError)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUserRepo := mocks.NewMockUserRepository(ctrl)
			mockAllocator := invoicingmocks.NewMockAllocator(ctrl)

			tt.setup(mockUserRepo, mockAllocator)

			service := &MonthlyInvoiceRunService{
				config:    MonthlyInvoiceRunConfig{RequestDelaySeconds: 0},
				userRepo:  mockUserRepo,
				allocator: mockAllocator,
			}

			service.runMonthlyInvoices()

			assert.False(t, service.runRunning)
			assert.False(t, service.lastRunStartedAt.IsZero())
		})
	}
}

func TestMonthlyInvoiceRunService_runMonthlyInvoices_IgnoresConcurrentRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	mockAllocator := invoicingmocks.NewMockAllocator(ctrl)

	service := &MonthlyInvoiceRunService{
		config:     MonthlyInvoiceRunConfig{RequestDelaySeconds: 0},
		userRepo:   mockUserRepo,
		allocator:  mockAllocator,
		runRunning: true,
	}

	// Com uma execução em andamento, nada é consultado nem alocado
	service.runMonthlyInvoices()

	assert.True(t, service.runRunning)
}

func TestMonthlyInvoiceRunService_GetStatus(t *testing.T) {
	service := &MonthlyInvoiceRunService{
		config: MonthlyInvoiceRunConfig{
			CronSchedule: "0 6 1 * *",
			RunEnabled:   true,
		},
	}

	status := service.GetStatus()

	assert.Equal(t, false, status["run_running"])
	assert.Equal(t, "0 6 1 * *", status["run_cron"])
	assert.Equal(t, true, status["run_enabled"])
}
