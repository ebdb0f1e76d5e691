package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/price-monitor-api/infrastructure/integrator/gemini"
	"github.com/vfg2006/price-monitor-api/infrastructure/integrator/gemini/geminiclient"
	"github.com/vfg2006/price-monitor-api/infrastructure/integrator/scraper"
	"github.com/vfg2006/price-monitor-api/infrastructure/repository"
	"github.com/vfg2006/price-monitor-api/internal/api"
	"github.com/vfg2006/price-monitor-api/internal/config"
	"github.com/vfg2006/price-monitor-api/internal/scheduler"
	"github.com/vfg2006/price-monitor-api/internal/usecases/advising"
	"github.com/vfg2006/price-monitor-api/internal/usecases/authenticating"
	"github.com/vfg2006/price-monitor-api/internal/usecases/monitoring"
	"github.com/vfg2006/price-monitor-api/internal/usecases/pricing"
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

	// Monta o catálogo em memória com os históricos sintéticos
	catalogRepo, err := repository.NewCatalogRepository(
		repository.DefaultShops(),
		repository.DefaultManagers(),
		repository.DefaultProducts(),
		cfg.Catalog.HistoryDays,
	)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao montar o catálogo de produtos")
	}
	logrus.WithField("history_days", cfg.Catalog.HistoryDays).Info("Catálogo de produtos montado com sucesso")

	authenticator, err := authenticating.NewService(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao inicializar o serviço de autenticação")
	}

	geminiClient := geminiclient.NewClient(cfg)
	geminiIntegrator := gemini.New(cfg, geminiClient)

	scraperService := scraper.New(catalogRepo)

	monitoringService := monitoring.NewService(catalogRepo)
	pricingService := pricing.NewService(catalogRepo, scraperService)
	advisingService := advising.NewService(cfg, catalogRepo, monitoringService, geminiIntegrator)

	// Inicializa o agendador de re-coleta dos SKUs rastreados
	trackedSkuRefreshService := scheduler.NewTrackedSkuRefreshService(
		monitoringService,
		pricingService,
		cfg,
	)

	// Inicia o agendador em background
	if err := trackedSkuRefreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de re-coleta de SKUs rastreados")
	} else {
		logrus.Info("Agendador de re-coleta de SKUs rastreados iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		catalogRepo,
		monitoringService,
		pricingService,
		advisingService,
		authenticator,
		trackedSkuRefreshService,
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
