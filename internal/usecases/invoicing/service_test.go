package invoicing

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/telavenir/telecom-crm-api/infrastructure/repository/mocks"
	"github.com/telavenir/telecom-crm-api/internal/domain"
	"github.com/telavenir/telecom-crm-api/internal/usecases/commissioning"
	commissioningmocks "github.com/telavenir/telecom-crm-api/internal/usecases/commissioning/mocks"
	"go.uber.org/mock/gomock"
)

func fixedNow() time.Time {
	return time.Date(2025, 7, 1, 5, 0, 0, 0, time.UTC)
}

func newTestService(invoiceRepo *mocks.MockFiscalInvoiceRepository, commissioner *commissioningmocks.MockCommissioner) *Service {
	service := NewService(invoiceRepo, commissioner)
	service.now = fixedNow
	return service
}

func TestService_GenerateOrGet_AllocatesOnFirstCall(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockInvoiceRepo := mocks.NewMockFiscalInvoiceRepository(ctrl)
	mockCommissioner := commissioningmocks.NewMockCommissioner(ctrl)

	issueDate := fixedNow()
	dueDate := issueDate.AddDate(0, 0, 30)

	mockInvoiceRepo.EXPECT().
		GetBySellerAndPeriod(gomock.Any(), 3, "2025-06").
		Return(nil, nil)

	mockInvoiceRepo.EXPECT().
		Allocate(gomock.Any(), 3, "2025-06", issueDate, dueDate).
		Return(&domain.FiscalInvoice{
			ID:            1,
			SellerID:      3,
			Period:        "2025-06",
			InvoiceNumber: "FA 2025 06 00000001",
			IssueDate:     issueDate,
			DueDate:       dueDate,
		}, true, nil)

	service := newTestService(mockInvoiceRepo, mockCommissioner)

	allocation, err := service.GenerateOrGet(context.Background(), 3, "2025-06")
	require.NoError(t, err)

	assert.Equal(t, "FA 2025 06 00000001", allocation.InvoiceNumber)
	assert.Equal(t, "2025-07-01", allocation.IssueDate)
	assert.Equal(t, "2025-07-31", allocation.DueDate)
	assert.False(t, allocation.IsExisting)
}

func TestService_GenerateOrGet_ReturnsExistingOnSecondCall(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockInvoiceRepo := mocks.NewMockFiscalInvoiceRepository(ctrl)
	mockCommissioner := commissioningmocks.NewMockCommissioner(ctrl)

	// O registro já existe: nenhum número novo é alocado
	mockInvoiceRepo.EXPECT().
		GetBySellerAndPeriod(gomock.Any(), 3, "2025-06").
		Return(&domain.FiscalInvoice{
			ID:            1,
			SellerID:      3,
			Period:        "2025-06",
			InvoiceNumber: "FA 2025 06 00000001",
			IssueDate:     time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
			DueDate:       time.Date(2025, 7, 31, 0, 0, 0, 0, time.UTC),
		}, nil)

	service := newTestService(mockInvoiceRepo, mockCommissioner)

	allocation, err := service.GenerateOrGet(context.Background(), 3, "2025-06")
	require.NoError(t, err)

	assert.Equal(t, "FA 2025 06 00000001", allocation.InvoiceNumber)
	assert.True(t, allocation.IsExisting)
}

func TestService_GenerateOrGet_RaceLoserGetsWinnerRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockInvoiceRepo := mocks.NewMockFiscalInvoiceRepository(ctrl)
	mockCommissioner := commissioningmocks.NewMockCommissioner(ctrl)

	mockInvoiceRepo.EXPECT().
		GetBySellerAndPeriod(gomock.Any(), 3, "2025-06").
		Return(nil, nil)

	// Outra requisição ganhou a corrida dentro do repositório: Allocate
	// devolve o registro vencedor com created=false
	mockInvoiceRepo.EXPECT().
		Allocate(gomock.Any(), 3, "2025-06", gomock.Any(), gomock.Any()).
		Return(&domain.FiscalInvoice{
			InvoiceNumber: "FA 2025 06 00000001",
			IssueDate:     fixedNow(),
			DueDate:       fixedNow().AddDate(0, 0, 30),
		}, false, nil)

	service := newTestService(mockInvoiceRepo, mockCommissioner)

	allocation, err := service.GenerateOrGet(context.Background(), 3, "2025-06")
	require.NoError(t, err)

	assert.Equal(t, "FA 2025 06 00000001", allocation.InvoiceNumber)
	assert.True(t, allocation.IsExisting)
}

func TestService_GenerateOrGet_ValidatesInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := newTestService(
		mocks.NewMockFiscalInvoiceRepository(ctrl),
		commissioningmocks.NewMockCommissioner(ctrl),
	)

	_, err := service.GenerateOrGet(context.Background(), 0, "2025-06")
	assert.True(t, errors.Is(err, ErrSellerIDRequired))

	_, err = service.GenerateOrGet(context.Background(), 3, "06/2025")
	assert.True(t, errors.Is(err, ErrInvalidPeriod))
}

func TestService_GenerateOrGet_StoreFailureIsRetryable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockInvoiceRepo := mocks.NewMockFiscalInvoiceRepository(ctrl)

	mockInvoiceRepo.EXPECT().
		GetBySellerAndPeriod(gomock.Any(), 3, "2025-06").
		Return(nil, nil)

	mockInvoiceRepo.EXPECT().
		Allocate(gomock.Any(), 3, "2025-06", gomock.Any(), gomock.Any()).
		Return(nil, false, errors.New("connection refused"))

	service := newTestService(mockInvoiceRepo, commissioningmocks.NewMockCommissioner(ctrl))

	_, err := service.GenerateOrGet(context.Background(), 3, "2025-06")
	assert.True(t, errors.Is(err, ErrInvoiceStore))

	var invErr *InvoiceError
	require.True(t, errors.As(err, &invErr))
	assert.True(t, invErr.Retryable)
}

// fakeInvoiceStore reproduz a semântica do repositório fiscal em memória:
// alocação serializada sob lock, contador anual e unicidade por
// (revendedor, período).
type fakeInvoiceStore struct {
	mu      sync.Mutex
	byKey   map[string]*domain.FiscalInvoice
	lastSeq int64
}

func newFakeInvoiceStore() *fakeInvoiceStore {
	return &fakeInvoiceStore{byKey: make(map[string]*domain.FiscalInvoice)}
}

func invoiceKey(sellerID int, period string) string {
	return fmt.Sprintf("%d|%s", sellerID, period)
}

func (s *fakeInvoiceStore) GetBySellerAndPeriod(_ context.Context, sellerID int, period string) (*domain.FiscalInvoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.byKey[invoiceKey(sellerID, period)], nil
}

func (s *fakeInvoiceStore) Allocate(_ context.Context, sellerID int, period string, issueDate, dueDate time.Time) (*domain.FiscalInvoice, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.byKey[invoiceKey(sellerID, period)]; ok {
		return existing, false, nil
	}

	s.lastSeq++
	invoice := &domain.FiscalInvoice{
		ID:            s.lastSeq,
		SellerID:      sellerID,
		Period:        period,
		InvoiceNumber: domain.FormatInvoiceNumber(period, s.lastSeq),
		IssueDate:     issueDate,
		DueDate:       dueDate,
	}
	s.byKey[invoiceKey(sellerID, period)] = invoice

	return invoice, true, nil
}

func TestService_GenerateOrGet_ConcurrentCallsShareOneNumber(t *testing.T) {
	store := newFakeInvoiceStore()

	service := NewService(store, nil)
	service.now = fixedNow

	const callers = 16

	var wg sync.WaitGroup
	numbers := make(chan string, callers)
	existing := make(chan bool, callers)

	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			allocation, err := service.GenerateOrGet(context.Background(), 3, "2025-06")
			assert.NoError(t, err)
			if err != nil {
				return
			}
			numbers <- allocation.InvoiceNumber
			existing <- allocation.IsExisting
		}()
	}

	wg.Wait()
	close(numbers)
	close(existing)

	// Todas as chamadas enxergam o mesmo número fiscal
	unique := make(map[string]struct{})
	for number := range numbers {
		unique[number] = struct{}{}
	}
	require.Len(t, unique, 1)
	assert.Contains(t, unique, "FA 2025 06 00000001")

	// Uma única chamada criou o registro; as demais receberam o existente
	created := 0
	for isExisting := range existing {
		if !isExisting {
			created++
		}
	}
	assert.Equal(t, 1, created)

	// O armazenamento guarda exatamente um registro e a sequência não avançou
	// além dele
	assert.Len(t, store.byKey, 1)
	assert.Equal(t, int64(1), store.lastSeq)
}

func TestService_Issue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockInvoiceRepo := mocks.NewMockFiscalInvoiceRepository(ctrl)
	mockCommissioner := commissioningmocks.NewMockCommissioner(ctrl)

	mockCommissioner.EXPECT().
		ComputeStatement(3, "2025-06").
		Return(&domain.CommissionStatement{
			SellerID: 3,
			Period:   "2025-06",
			Lines: []domain.CommissionLedgerLine{
				{SaleEventID: 1, Product: domain.ProductInternet, Client: "Jean Dupont", Commission: decimal.NewFromInt(40), Tier: 1, CumulativePoints: 6},
			},
			Total: decimal.NewFromInt(40),
		}, nil)

	mockInvoiceRepo.EXPECT().
		GetBySellerAndPeriod(gomock.Any(), 3, "2025-06").
		Return(nil, nil)

	mockInvoiceRepo.EXPECT().
		Allocate(gomock.Any(), 3, "2025-06", gomock.Any(), gomock.Any()).
		Return(&domain.FiscalInvoice{
			InvoiceNumber: "FA 2025 06 00000042",
			IssueDate:     fixedNow(),
			DueDate:       fixedNow().AddDate(0, 0, 30),
		}, true, nil)

	service := newTestService(mockInvoiceRepo, mockCommissioner)

	document, err := service.Issue(context.Background(), 3, "2025-06")
	require.NoError(t, err)

	assert.Equal(t, "FA 2025 06 00000042", document.Allocation.InvoiceNumber)
	require.Len(t, document.Lines, 1)
	assert.Equal(t, "40.00", document.Total)
}

func TestService_Issue_BlockedByCommissionError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockInvoiceRepo := mocks.NewMockFiscalInvoiceRepository(ctrl)
	mockCommissioner := commissioningmocks.NewMockCommissioner(ctrl)

	// Venda anônima bloqueia o cálculo: nenhuma numeração pode ser alocada
	mockCommissioner.EXPECT().
		ComputeStatement(3, "2025-06").
		Return(nil, commissioning.NewSaleCommissionError(
			commissioning.ErrMissingClientIdentity, 7, "", domain.ProductInternet, "venda 7 sem nome completo de cliente",
		))

	service := newTestService(mockInvoiceRepo, mockCommissioner)

	_, err := service.Issue(context.Background(), 3, "2025-06")
	assert.True(t, errors.Is(err, commissioning.ErrMissingClientIdentity))
}

func TestService_Preview(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := newTestService(
		mocks.NewMockFiscalInvoiceRepository(ctrl),
		commissioningmocks.NewMockCommissioner(ctrl),
	)

	preview := service.Preview(3, "2025-06")

	assert.Equal(t, "PROVISOIRE-3-2025-06", preview.TemporaryNumber)
	assert.True(t, preview.Provisional)
}
