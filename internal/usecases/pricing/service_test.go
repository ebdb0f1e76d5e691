package pricing

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/price-monitor-api/infrastructure/integrator/scraper"
	"github.com/vfg2006/price-monitor-api/infrastructure/integrator/scraper/mocks"
	"github.com/vfg2006/price-monitor-api/infrastructure/repository"
	"github.com/vfg2006/price-monitor-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newTestCatalog(t *testing.T) repository.CatalogRepository {
	t.Helper()

	catalog, err := repository.NewCatalogRepository(
		repository.DefaultShops(),
		repository.DefaultManagers(),
		repository.DefaultProducts(),
		30,
	)
	require.NoError(t, err)

	return catalog
}

func TestService_EditPrice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Registra novo preço datado de hoje e sincroniza o preço corrente", func(t *testing.T) {
		catalog := newTestCatalog(t)
		service := NewService(catalog, mocks.NewMockMarketplaceScraper(ctrl))

		product, err := service.EditPrice("B08H93ZRK9", 57.891)
		require.NoError(t, err)

		today := time.Now().Format(time.DateOnly)
		last := product.LastPricePoint()
		require.NotNil(t, last)
		assert.Equal(t, today, last.Date)
		assert.Equal(t, 57.89, last.Price)
		assert.Equal(t, 57.89, product.CurrentPrice)
	})

	t.Run("Duas edições no mesmo dia não duplicam a data no histórico", func(t *testing.T) {
		catalog := newTestCatalog(t)
		service := NewService(catalog, mocks.NewMockMarketplaceScraper(ctrl))

		first, err := service.EditPrice("B08H93ZRK9", 55.00)
		require.NoError(t, err)
		sizeAfterFirst := len(first.PriceHistory)

		second, err := service.EditPrice("B08H93ZRK9", 60.00)
		require.NoError(t, err)

		assert.Len(t, second.PriceHistory, sizeAfterFirst)
		assert.Equal(t, 60.00, second.CurrentPrice)
	})

	t.Run("Preço não positivo é rejeitado", func(t *testing.T) {
		catalog := newTestCatalog(t)
		service := NewService(catalog, mocks.NewMockMarketplaceScraper(ctrl))

		_, err := service.EditPrice("B08H93ZRK9", 0)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidPrice)

		_, err = service.EditPrice("B08H93ZRK9", -10)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidPrice)
	})

	t.Run("SKU inexistente reporta not-found", func(t *testing.T) {
		catalog := newTestCatalog(t)
		service := NewService(catalog, mocks.NewMockMarketplaceScraper(ctrl))

		_, err := service.EditPrice("B000000000", 20.00)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrSkuNotFound)
	})
}

func TestService_RefreshSku(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	today := time.Now().Format(time.DateOnly)

	t.Run("Aplica os pontos coletados ao catálogo", func(t *testing.T) {
		catalog := newTestCatalog(t)
		mockScraper := mocks.NewMockMarketplaceScraper(ctrl)

		mockScraper.EXPECT().
			ScrapeProduct("B08H93ZRK9").
			Return(&scraper.ScrapedData{
				Price:    domain.PricePoint{Date: today, Price: 52.37},
				Position: domain.PositionPoint{Date: today, Position: 11},
			}, nil)

		service := NewService(catalog, mockScraper)

		resp, err := service.RefreshSku("B08H93ZRK9")
		require.NoError(t, err)

		assert.Equal(t, "B08H93ZRK9", resp.Sku)
		assert.Equal(t, 52.37, resp.Price.Price)
		assert.Equal(t, 11, resp.Position.Position)

		product := catalog.GetProductByID("B08H93ZRK9")
		require.NotNil(t, product)
		assert.Equal(t, 52.37, product.CurrentPrice)
		assert.Equal(t, today, product.LastPricePoint().Date)
		assert.Equal(t, 11, product.LastPositionPoint().Position)
	})

	t.Run("SKU desconhecido na coleta reporta not-found", func(t *testing.T) {
		catalog := newTestCatalog(t)
		mockScraper := mocks.NewMockMarketplaceScraper(ctrl)

		mockScraper.EXPECT().
			ScrapeProduct("B000000000").
			Return(nil, scraper.ErrProductNotFound)

		service := NewService(catalog, mockScraper)

		_, err := service.RefreshSku("B000000000")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrSkuNotFound)
	})

	t.Run("Falha genérica da coleta reporta erro de serviço externo", func(t *testing.T) {
		catalog := newTestCatalog(t)
		mockScraper := mocks.NewMockMarketplaceScraper(ctrl)

		mockScraper.EXPECT().
			ScrapeProduct("B08H93ZRK9").
			Return(nil, errors.New("timeout"))

		service := NewService(catalog, mockScraper)

		_, err := service.RefreshSku("B08H93ZRK9")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrScrapeFailed)
	})

	t.Run("Coleta real respeita o piso de preço e os limites de posição", func(t *testing.T) {
		catalog := newTestCatalog(t)
		service := NewService(catalog, scraper.New(catalog))

		resp, err := service.RefreshSku("B08H93ZRK9")
		require.NoError(t, err)

		assert.GreaterOrEqual(t, resp.Price.Price, 10.0)
		assert.GreaterOrEqual(t, resp.Position.Position, 1)
		assert.LessOrEqual(t, resp.Position.Position, 100)
		assert.Equal(t, today, resp.Price.Date)
		assert.Equal(t, today, resp.Position.Date)
	})
}
