package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/telavenir/telecom-crm-api/infrastructure/database/postgres"
	"github.com/telavenir/telecom-crm-api/infrastructure/integrator/geogouv"
	"github.com/telavenir/telecom-crm-api/infrastructure/integrator/geogouv/geogouvclient"
	"github.com/telavenir/telecom-crm-api/infrastructure/repository"
	"github.com/telavenir/telecom-crm-api/internal/api"
	"github.com/telavenir/telecom-crm-api/internal/config"
	"github.com/telavenir/telecom-crm-api/internal/scheduler"
	"github.com/telavenir/telecom-crm-api/internal/usecases/authenticating"
	"github.com/telavenir/telecom-crm-api/internal/usecases/clienting"
	"github.com/telavenir/telecom-crm-api/internal/usecases/commissioning"
	"github.com/telavenir/telecom-crm-api/internal/usecases/invoicing"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	clientRepo := repository.NewClientRepository(pgConn)
	saleEventRepo := repository.NewSaleEventRepository(pgConn)
	fiscalInvoiceRepo := repository.NewFiscalInvoiceRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	geoGouvClient := geogouvclient.NewClient(cfg)
	geoGouvIntegrator := geogouv.New(cfg, geoGouvClient)

	// Tabelas de referência do CVD em vigor, versionadas pela configuração
	commissionTables, err := commissioning.TablesForVersion(cfg.Commission.TableVersion)
	if err != nil {
		logrus.WithError(err).Fatal("Versão de tabela de comissionamento inválida")
	}
	tableSet := commissioning.NewTableSet(commissionTables)
	logrus.WithField("table_version", commissionTables.Version).Info("Tabelas de comissionamento carregadas")

	commissionService := commissioning.NewService(tableSet, saleEventRepo)
	invoiceService := invoicing.NewService(fiscalInvoiceRepo, commissionService)
	clientService := clienting.NewService(clientRepo, saleEventRepo, commissionService)

	// Inicializa o agendador de faturamento mensal
	monthlyInvoiceRunService := scheduler.NewMonthlyInvoiceRunService(
		userRepo,
		invoiceService,
		cfg,
	)

	// Inicia o agendador em background
	if err := monthlyInvoiceRunService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de faturamento mensal")
	} else {
		logrus.Info("Agendador de faturamento mensal iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		commissionService,
		invoiceService,
		clientService,
		geoGouvIntegrator,
		authenticator,
		monthlyInvoiceRunService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
