package scraper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/price-monitor-api/infrastructure/repository"
)

func newTestCatalog(t *testing.T, historyDays int) repository.CatalogRepository {
	t.Helper()

	catalog, err := repository.NewCatalogRepository(
		repository.DefaultShops(),
		repository.DefaultManagers(),
		repository.DefaultProducts(),
		historyDays,
	)
	require.NoError(t, err)

	return catalog
}

func TestService_ScrapeProduct(t *testing.T) {
	t.Run("Gera novos pontos datados de hoje dentro dos limites", func(t *testing.T) {
		service := New(newTestCatalog(t, 30))

		today := time.Now().Format(time.DateOnly)

		// A coleta é aleatória sem seed; o contrato garante apenas os limites
		for i := 0; i < 20; i++ {
			data, err := service.ScrapeProduct("B08H93ZRK9")
			require.NoError(t, err)

			assert.Equal(t, today, data.Price.Date)
			assert.Equal(t, today, data.Position.Date)
			assert.GreaterOrEqual(t, data.Price.Price, 10.0)
			assert.GreaterOrEqual(t, data.Position.Position, 1)
			assert.LessOrEqual(t, data.Position.Position, 100)
		}
	})

	t.Run("Novo preço deriva do último ponto conhecido", func(t *testing.T) {
		catalog := newTestCatalog(t, 30)
		service := New(catalog)

		last := catalog.GetProductByID("B09B8V2T6C").LastPricePoint()
		require.NotNil(t, last)

		data, err := service.ScrapeProduct("B09B8V2T6C")
		require.NoError(t, err)

		// Variação máxima de 2.5% sobre o último preço
		assert.InDelta(t, last.Price, data.Price.Price, last.Price*0.025+0.01)
	})

	t.Run("SKU inexistente reporta not-found", func(t *testing.T) {
		service := New(newTestCatalog(t, 30))

		_, err := service.ScrapeProduct("B000000000")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrProductNotFound)
	})

	t.Run("Produto sem histórico reporta not-found", func(t *testing.T) {
		service := New(newTestCatalog(t, 0))

		_, err := service.ScrapeProduct("B08H93ZRK9")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrProductNotFound)
	})
}
