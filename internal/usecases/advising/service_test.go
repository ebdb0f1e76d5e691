package advising

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/price-monitor-api/infrastructure/integrator/gemini/mocks"
	"github.com/vfg2006/price-monitor-api/infrastructure/repository"
	"github.com/vfg2006/price-monitor-api/internal/config"
	"github.com/vfg2006/price-monitor-api/internal/domain"
	"github.com/vfg2006/price-monitor-api/internal/usecases/monitoring"
	"go.uber.org/mock/gomock"
)

func newTestDeps(t *testing.T) (repository.CatalogRepository, monitoring.MonitoringService) {
	t.Helper()

	catalog, err := repository.NewCatalogRepository(
		repository.DefaultShops(),
		repository.DefaultManagers(),
		repository.DefaultProducts(),
		30,
	)
	require.NoError(t, err)

	return catalog, monitoring.NewService(catalog)
}

func configuredConfig() *config.Config {
	return &config.Config{
		Gemini: config.Gemini{APIKey: "test-key"},
	}
}

func TestService_RecommendedActions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Encaminha produto e comparações ao advisor", func(t *testing.T) {
		catalog, monitoringService := newTestDeps(t)

		_, err := monitoringService.AddComparisonSku("B07Y2P3Y9W")
		require.NoError(t, err)

		expected := []domain.RecommendedAction{
			{Category: domain.ActionCategoryPrice, Title: "Ajuste de preço", Description: "Reduza para competir"},
		}

		mockAdvisor := mocks.NewMockAdvisor(ctrl)
		mockAdvisor.EXPECT().
			RecommendActions(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, mainProduct *domain.Product, comparisons []*domain.Product) ([]domain.RecommendedAction, error) {
				assert.Equal(t, "B08H93ZRK9", mainProduct.ID)
				require.Len(t, comparisons, 1)
				assert.Equal(t, "B07Y2P3Y9W", comparisons[0].ID)
				return expected, nil
			})

		service := NewService(configuredConfig(), catalog, monitoringService, mockAdvisor)

		actions, err := service.RecommendedActions(context.Background(), "B08H93ZRK9")
		require.NoError(t, err)
		assert.Equal(t, expected, actions)
	})

	t.Run("O próprio SKU não entra na lista de comparações", func(t *testing.T) {
		catalog, monitoringService := newTestDeps(t)

		// B08P2H5L7G está na comparação e também é o SKU consultado
		_, err := monitoringService.AddComparisonSku("B08P2H5L7G")
		require.NoError(t, err)

		mockAdvisor := mocks.NewMockAdvisor(ctrl)
		mockAdvisor.EXPECT().
			RecommendActions(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *domain.Product, comparisons []*domain.Product) ([]domain.RecommendedAction, error) {
				assert.Empty(t, comparisons)
				return []domain.RecommendedAction{{Category: domain.ActionCategorySales, Title: "Promoção", Description: "Crie uma promoção"}}, nil
			})

		service := NewService(configuredConfig(), catalog, monitoringService, mockAdvisor)

		_, err = service.RecommendedActions(context.Background(), "B08P2H5L7G")
		require.NoError(t, err)
	})

	t.Run("Sem chave de API configurada reporta serviço não configurado", func(t *testing.T) {
		catalog, monitoringService := newTestDeps(t)

		service := NewService(&config.Config{}, catalog, monitoringService, mocks.NewMockAdvisor(ctrl))

		_, err := service.RecommendedActions(context.Background(), "B08H93ZRK9")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrAdvisorNotConfigured)
	})

	t.Run("SKU inexistente reporta not-found", func(t *testing.T) {
		catalog, monitoringService := newTestDeps(t)

		service := NewService(configuredConfig(), catalog, monitoringService, mocks.NewMockAdvisor(ctrl))

		_, err := service.RecommendedActions(context.Background(), "B000000000")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrSkuNotFound)
	})

	t.Run("Falha do advisor vira erro amigável de indisponibilidade", func(t *testing.T) {
		catalog, monitoringService := newTestDeps(t)

		mockAdvisor := mocks.NewMockAdvisor(ctrl)
		mockAdvisor.EXPECT().
			RecommendActions(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("quota exceeded"))

		service := NewService(configuredConfig(), catalog, monitoringService, mockAdvisor)

		_, err := service.RecommendedActions(context.Background(), "B08H93ZRK9")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrAdvisorUnavailable)
	})
}

func TestService_PriceDropPrediction(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Encaminha o histórico de preços completo ao advisor", func(t *testing.T) {
		catalog, monitoringService := newTestDeps(t)

		expected := &domain.PricePrediction{WillPriceDrop: true, Confidence: 0.7, Reason: "Tendência de queda"}

		mockAdvisor := mocks.NewMockAdvisor(ctrl)
		mockAdvisor.EXPECT().
			PredictPriceDrop(gomock.Any(), "B08H93ZRK9", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, history []domain.PricePoint) (*domain.PricePrediction, error) {
				assert.Len(t, history, 30)
				return expected, nil
			})

		service := NewService(configuredConfig(), catalog, monitoringService, mockAdvisor)

		prediction, err := service.PriceDropPrediction(context.Background(), "B08H93ZRK9")
		require.NoError(t, err)
		assert.Equal(t, expected, prediction)
	})

	t.Run("Sem chave de API configurada reporta serviço não configurado", func(t *testing.T) {
		catalog, monitoringService := newTestDeps(t)

		service := NewService(&config.Config{}, catalog, monitoringService, mocks.NewMockAdvisor(ctrl))

		_, err := service.PriceDropPrediction(context.Background(), "B08H93ZRK9")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrAdvisorNotConfigured)
	})

	t.Run("Falha do advisor vira erro amigável de indisponibilidade", func(t *testing.T) {
		catalog, monitoringService := newTestDeps(t)

		mockAdvisor := mocks.NewMockAdvisor(ctrl)
		mockAdvisor.EXPECT().
			PredictPriceDrop(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("quota exceeded"))

		service := NewService(configuredConfig(), catalog, monitoringService, mockAdvisor)

		_, err := service.PriceDropPrediction(context.Background(), "B08H93ZRK9")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrAdvisorUnavailable)
	})
}
