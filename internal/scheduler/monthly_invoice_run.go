package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/telavenir/telecom-crm-api/infrastructure/repository"
	"github.com/telavenir/telecom-crm-api/internal/config"
	"github.com/telavenir/telecom-crm-api/internal/usecases/invoicing"
	"github.com/telavenir/telecom-crm-api/pkg/utils"
)

// MonthlyInvoiceRunConfig representa a configuração do agendador de faturamento mensal
type MonthlyInvoiceRunConfig struct {
	CronSchedule        string
	RequestDelaySeconds int
	RunEnabled          bool
}

// MonthlyInvoiceRunService gerencia o agendamento e execução do faturamento
// mensal dos revendedores ativos. A alocação fiscal é idempotente por
// (revendedor, período), então repetir a execução nunca gera número novo.
type MonthlyInvoiceRunService struct {
	scheduler          *gocron.Scheduler
	config             MonthlyInvoiceRunConfig
	userRepo           repository.UserRepository
	allocator          invoicing.Allocator
	runRunning         bool
	runMutex           sync.Mutex
	lastRunStartedAt   time.Time
	lastRunCompletedAt time.Time
}

// NewMonthlyInvoiceRunService cria uma nova instância do serviço de faturamento mensal
func NewMonthlyInvoiceRunService(
	userRepo repository.UserRepository,
	allocator invoicing.Allocator,
	appConfig *config.Config,
) *MonthlyInvoiceRunService {
	// Criar a configuração com base na config global
	runConfig := MonthlyInvoiceRunConfig{
		CronSchedule:        appConfig.MonthlyInvoiceRun.CronSchedule,
		RequestDelaySeconds: appConfig.MonthlyInvoiceRun.RequestDelaySeconds,
		RunEnabled:          appConfig.MonthlyInvoiceRun.Enabled,
	}

	// Criar o agendador
	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":         runConfig.CronSchedule,
		"request_delay_seconds": runConfig.RequestDelaySeconds,
		"run_enabled":           runConfig.RunEnabled,
	}).Info("Configuração do agendador de faturamento mensal carregada")

	return &MonthlyInvoiceRunService{
		scheduler:  scheduler,
		config:     runConfig,
		userRepo:   userRepo,
		allocator:  allocator,
		runRunning: false,
	}
}

// Start inicia o agendador
func (s *MonthlyInvoiceRunService) Start(ctx context.Context) error {
	if !s.config.RunEnabled {
		logrus.Info("Faturamento mensal automático desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de faturamento mensal")

	// Agendar o faturamento do mês anterior
	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runMonthlyInvoices()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar faturamento mensal: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de faturamento mensal")
		s.scheduler.Stop()
	}()

	return nil
}

// runMonthlyInvoices emite as faturas do mês anterior para todos os revendedores ativos
func (s *MonthlyInvoiceRunService) runMonthlyInvoices() {
	s.runMutex.Lock()
	if s.runRunning {
		s.runMutex.Unlock()
		logrus.Info("Faturamento mensal já em andamento, ignorando")
		return
	}
	s.runRunning = true
	s.runMutex.Unlock()

	startTime := time.Now()
	s.lastRunStartedAt = startTime

	defer func() {
		s.runMutex.Lock()
		s.runRunning = false
		s.runMutex.Unlock()
	}()

	// O faturamento do dia 1 cobre sempre o mês fechado anterior
	period := utils.PreviousPeriod(time.Now())

	logrus.WithField("period", period).Info("Iniciando faturamento mensal para todos os revendedores ativos")

	sellers, err := s.userRepo.ListActiveSellers()
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar lista de revendedores para faturamento mensal")
		return
	}

	if len(sellers) == 0 {
		logrus.Info("Nenhum revendedor ativo encontrado para faturamento mensal")
		return
	}

	issued := 0
	existing := 0
	failed := 0

	for _, seller := range sellers {
		allocation, err := s.allocator.GenerateOrGet(context.Background(), seller.ID, period)
		if err != nil {
			failed++
			logrus.WithError(err).WithFields(logrus.Fields{
				"seller_id": seller.ID,
				"period":    period,
			}).Error("Erro ao alocar fatura fiscal do revendedor")
			continue
		}

		if allocation.IsExisting {
			existing++
		} else {
			issued++
			logrus.WithFields(logrus.Fields{
				"seller_id":      seller.ID,
				"period":         period,
				"invoice_number": allocation.InvoiceNumber,
			}).Info("Fatura fiscal alocada para o revendedor")
		}

		// Aguardar antes do próximo revendedor para não saturar o banco
		time.Sleep(time.Duration(s.config.RequestDelaySeconds) * time.Second)
	}

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration": duration.String(),
		"period":   period,
		"sellers":  len(sellers),
		"issued":   issued,
		"existing": existing,
		"failed":   failed,
	}).Info("Faturamento mensal concluído")

	s.lastRunCompletedAt = time.Now()
}

// TriggerManualSync inicia manualmente o faturamento do mês anterior
func (s *MonthlyInvoiceRunService) TriggerManualSync() {
	s.runMutex.Lock()
	if s.runRunning {
		s.runMutex.Unlock()
		logrus.Info("Faturamento mensal já em andamento, ignorando solicitação manual")
		return
	}
	s.runMutex.Unlock()

	logrus.Info("Iniciando faturamento mensal manual")
	go s.runMonthlyInvoices()
}

// GetStatus retorna o status atual do faturamento
func (s *MonthlyInvoiceRunService) GetStatus() map[string]any {
	s.runMutex.Lock()
	defer s.runMutex.Unlock()

	return map[string]any{
		"run_running":           s.runRunning,
		"run_cron":              s.config.CronSchedule,
		"run_enabled":           s.config.RunEnabled,
		"last_run_started_at":   s.lastRunStartedAt,
		"last_run_completed_at": s.lastRunCompletedAt,
	}
}
