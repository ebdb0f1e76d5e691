package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/price-monitor-api/infrastructure/integrator/scraper"
	"github.com/vfg2006/price-monitor-api/infrastructure/integrator/scraper/mocks"
	"github.com/vfg2006/price-monitor-api/infrastructure/repository"
	"github.com/vfg2006/price-monitor-api/internal/config"
	"github.com/vfg2006/price-monitor-api/internal/domain"
	"github.com/vfg2006/price-monitor-api/internal/usecases/monitoring"
	"github.com/vfg2006/price-monitor-api/internal/usecases/pricing"
	"go.uber.org/mock/gomock"
)

func newRefreshService(t *testing.T, scraperService scraper.MarketplaceScraper, enabled bool) (*TrackedSkuRefreshService, monitoring.MonitoringService) {
	t.Helper()

	catalog, err := repository.NewCatalogRepository(
		repository.DefaultShops(),
		repository.DefaultManagers(),
		repository.DefaultProducts(),
		30,
	)
	require.NoError(t, err)

	monitoringService := monitoring.NewService(catalog)
	pricingService := pricing.NewService(catalog, scraperService)

	cfg := &config.Config{
		TrackedSkuRefresh: config.TrackedSkuRefresh{
			CronSchedule:        "0 7 * * *",
			RequestDelaySeconds: 0,
			Enabled:             enabled,
		},
	}

	return NewTrackedSkuRefreshService(monitoringService, pricingService, cfg), monitoringService
}

func TestTrackedSkuRefreshService_refreshAllTrackedSkus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Re-coleta todos os SKUs rastreados", func(t *testing.T) {
		mockScraper := mocks.NewMockMarketplaceScraper(ctrl)

		today := time.Now().Format(time.DateOnly)
		mockScraper.EXPECT().
			ScrapeProduct(gomock.Any()).
			DoAndReturn(func(sku string) (*scraper.ScrapedData, error) {
				return &scraper.ScrapedData{
					Price:    domain.PricePoint{Date: today, Price: 42.00},
					Position: domain.PositionPoint{Date: today, Position: 7},
				}, nil
			}).
			Times(4)

		service, monitoringService := newRefreshService(t, mockScraper, true)

		service.refreshAllTrackedSkus()

		for _, product := range monitoringService.TrackedProducts() {
			assert.Equal(t, 42.00, product.CurrentPrice, "SKU %s", product.ID)
			assert.Equal(t, 7, product.LastPositionPoint().Position, "SKU %s", product.ID)
		}

		status := service.GetStatus()
		assert.False(t, status["last_run_completed_at"].(time.Time).IsZero())
	})

	t.Run("Falha em um SKU não interrompe os demais", func(t *testing.T) {
		mockScraper := mocks.NewMockMarketplaceScraper(ctrl)

		today := time.Now().Format(time.DateOnly)
		first := mockScraper.EXPECT().
			ScrapeProduct("B08H93ZRK9").
			Return(nil, errors.New("timeout"))

		mockScraper.EXPECT().
			ScrapeProduct(gomock.Any()).
			Return(&scraper.ScrapedData{
				Price:    domain.PricePoint{Date: today, Price: 99.90},
				Position: domain.PositionPoint{Date: today, Position: 3},
			}, nil).
			Times(3).
			After(first)

		service, monitoringService := newRefreshService(t, mockScraper, true)

		service.refreshAllTrackedSkus()

		products := monitoringService.TrackedProducts()
		assert.NotEqual(t, 99.90, products[0].CurrentPrice)
		assert.Equal(t, 99.90, products[1].CurrentPrice)
	})
}

func TestTrackedSkuRefreshService_Start(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Desabilitado por configuração não agenda nada", func(t *testing.T) {
		service, _ := newRefreshService(t, mocks.NewMockMarketplaceScraper(ctrl), false)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		require.NoError(t, service.Start(ctx))
	})

	t.Run("Habilitado agenda e para com o cancelamento do contexto", func(t *testing.T) {
		service, _ := newRefreshService(t, mocks.NewMockMarketplaceScraper(ctrl), true)

		ctx, cancel := context.WithCancel(context.Background())

		require.NoError(t, service.Start(ctx))
		cancel()
	})
}
