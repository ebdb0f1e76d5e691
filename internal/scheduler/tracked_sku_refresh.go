package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/price-monitor-api/internal/config"
	"github.com/vfg2006/price-monitor-api/internal/usecases/monitoring"
	"github.com/vfg2006/price-monitor-api/internal/usecases/pricing"
)

// TrackedSkuRefreshConfig representa a configuração do agendador de re-coleta
// dos SKUs rastreados
type TrackedSkuRefreshConfig struct {
	CronSchedule        string
	RequestDelaySeconds int
	RefreshEnabled      bool
}

// TrackedSkuRefreshService gerencia o agendamento e execução da re-coleta
// periódica de preço e posição de todos os SKUs rastreados
type TrackedSkuRefreshService struct {
	scheduler          *gocron.Scheduler
	config             TrackedSkuRefreshConfig
	appConfig          *config.Config
	monitoringService  monitoring.MonitoringService
	pricingService     pricing.PricingService
	refreshRunning     bool
	refreshMutex       sync.Mutex
	lastRunStartedAt   time.Time
	lastRunCompletedAt time.Time
}

// NewTrackedSkuRefreshService cria uma nova instância do serviço de re-coleta
func NewTrackedSkuRefreshService(
	monitoringService monitoring.MonitoringService,
	pricingService pricing.PricingService,
	appConfig *config.Config,
) *TrackedSkuRefreshService {
	// Criar a configuração com base na config global
	refreshConfig := TrackedSkuRefreshConfig{
		CronSchedule:        appConfig.TrackedSkuRefresh.CronSchedule,
		RequestDelaySeconds: appConfig.TrackedSkuRefresh.RequestDelaySeconds,
		RefreshEnabled:      appConfig.TrackedSkuRefresh.Enabled,
	}

	// Criar o agendador
	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":         refreshConfig.CronSchedule,
		"request_delay_seconds": refreshConfig.RequestDelaySeconds,
		"refresh_enabled":       refreshConfig.RefreshEnabled,
	}).Info("Configuração do agendador de re-coleta de SKUs carregada")

	return &TrackedSkuRefreshService{
		scheduler:         scheduler,
		config:            refreshConfig,
		appConfig:         appConfig,
		monitoringService: monitoringService,
		pricingService:    pricingService,
		refreshRunning:    false,
	}
}

// Start inicia o agendador
func (s *TrackedSkuRefreshService) Start(ctx context.Context) error {
	if !s.config.RefreshEnabled {
		logrus.Info("Re-coleta agendada de SKUs desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de re-coleta de SKUs rastreados")

	// Agendar a re-coleta
	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.refreshAllTrackedSkus()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar re-coleta de SKUs rastreados: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de re-coleta de SKUs rastreados")
		s.scheduler.Stop()
	}()

	return nil
}

// refreshAllTrackedSkus re-coleta preço e posição de todos os SKUs rastreados
func (s *TrackedSkuRefreshService) refreshAllTrackedSkus() {
	s.refreshMutex.Lock()
	if s.refreshRunning {
		s.refreshMutex.Unlock()
		logrus.Info("Re-coleta de SKUs já em andamento, ignorando")
		return
	}
	s.refreshRunning = true
	s.refreshMutex.Unlock()

	startTime := time.Now()
	s.lastRunStartedAt = startTime

	defer func() {
		s.refreshMutex.Lock()
		s.refreshRunning = false
		s.refreshMutex.Unlock()
	}()

	trackedProducts := s.monitoringService.TrackedProducts()
	if len(trackedProducts) == 0 {
		logrus.Info("Nenhum SKU rastreado para re-coleta")
		return
	}

	logrus.WithField("skus", len(trackedProducts)).Info("Iniciando re-coleta de todos os SKUs rastreados")

	refreshed := 0
	for _, product := range trackedProducts {
		response, err := s.pricingService.RefreshSku(product.ID)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"sku":   product.ID,
				"error": err.Error(),
			}).Error("Erro na re-coleta do SKU")
			continue
		}

		refreshed++
		logrus.WithFields(logrus.Fields{
			"sku":      response.Sku,
			"price":    response.Price.Price,
			"position": response.Position.Position,
		}).Info("SKU re-coletado com sucesso")

		// Aguardar antes da próxima requisição para simular o ritmo de coleta
		time.Sleep(time.Duration(s.config.RequestDelaySeconds) * time.Second)
	}

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration":  duration.String(),
		"skus":      len(trackedProducts),
		"refreshed": refreshed,
	}).Info("Re-coleta de SKUs rastreados concluída")

	s.lastRunCompletedAt = time.Now()
}

// TriggerManualRefresh inicia manualmente uma re-coleta de todos os SKUs rastreados
func (s *TrackedSkuRefreshService) TriggerManualRefresh() {
	s.refreshMutex.Lock()
	if s.refreshRunning {
		s.refreshMutex.Unlock()
		logrus.Info("Re-coleta de SKUs já em andamento, ignorando solicitação manual")
		return
	}
	s.refreshMutex.Unlock()

	logrus.Info("Iniciando re-coleta manual de SKUs rastreados")
	go s.refreshAllTrackedSkus()
}

// GetStatus retorna o status atual do agendador
func (s *TrackedSkuRefreshService) GetStatus() map[string]any {
	return map[string]any{
		"refresh_enabled":       s.config.RefreshEnabled,
		"refresh_cron":          s.config.CronSchedule,
		"request_delay_s":       s.config.RequestDelaySeconds,
		"last_run_started_at":   s.lastRunStartedAt,
		"last_run_completed_at": s.lastRunCompletedAt,
	}
}
