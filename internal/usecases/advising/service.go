package advising

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/price-monitor-api/infrastructure/integrator/gemini"
	"github.com/vfg2006/price-monitor-api/infrastructure/repository"
	"github.com/vfg2006/price-monitor-api/internal/config"
	"github.com/vfg2006/price-monitor-api/internal/domain"
	"github.com/vfg2006/price-monitor-api/internal/usecases/monitoring"
	"github.com/vfg2006/price-monitor-api/pkg/apiErrors"
)

// AdvisingService é a fachada sobre o serviço de IA: monta as entradas a
// partir do estado do catálogo e degrada com erro amigável quando o serviço
// está indisponível ou não configurado. Sem retry, sem timeout próprio e sem
// cache: cada chamada é disparada sob demanda e aguardada.
type AdvisingService interface {
	RecommendedActions(ctx context.Context, sku string) ([]domain.RecommendedAction, error)
	PriceDropPrediction(ctx context.Context, sku string) (*domain.PricePrediction, error)
}

type Service struct {
	cfg               *config.Config
	catalog           repository.CatalogRepository
	monitoringService monitoring.MonitoringService
	advisor           gemini.Advisor
}

func NewService(
	cfg *config.Config,
	catalog repository.CatalogRepository,
	monitoringService monitoring.MonitoringService,
	advisor gemini.Advisor,
) AdvisingService {
	return &Service{
		cfg:               cfg,
		catalog:           catalog,
		monitoringService: monitoringService,
		advisor:           advisor,
	}
}

// RecommendedActions gera recomendações de ação para o SKU usando o conjunto
// de comparação corrente como contexto de concorrência
func (s *Service) RecommendedActions(ctx context.Context, sku string) ([]domain.RecommendedAction, error) {
	product := s.catalog.GetProductByID(sku)
	if product == nil {
		return nil, NewAdvisingError(ErrSkuNotFound, apiErrors.ErrSkuNotFound, sku, fmt.Sprintf("Não foi possível encontrar dados do produto para o SKU %s", sku))
	}

	if s.cfg.Gemini.APIKey == "" {
		return nil, NewAdvisingError(ErrAdvisorNotConfigured, apiErrors.ErrExternalService, sku, "A chave de API do Gemini não está configurada")
	}

	// O próprio produto nunca entra na lista de concorrentes
	snapshot := s.monitoringService.Snapshot()
	comparisons := make([]*domain.Product, 0, len(snapshot.ComparisonProducts))
	for _, comparison := range snapshot.ComparisonProducts {
		if comparison.ID != sku {
			comparisons = append(comparisons, comparison)
		}
	}

	actions, err := s.advisor.RecommendActions(ctx, product, comparisons)
	if err != nil {
		logrus.WithError(err).WithField("sku", sku).Error("Erro ao gerar recomendações")
		return nil, NewAdvisingError(ErrAdvisorUnavailable, apiErrors.ErrExternalService, sku, "Não foi possível gerar recomendações. Por favor, tente novamente mais tarde")
	}

	return actions, nil
}

// PriceDropPrediction gera a previsão de queda de preço para o SKU a partir
// do histórico de preços completo
func (s *Service) PriceDropPrediction(ctx context.Context, sku string) (*domain.PricePrediction, error) {
	product := s.catalog.GetProductByID(sku)
	if product == nil {
		return nil, NewAdvisingError(ErrSkuNotFound, apiErrors.ErrSkuNotFound, sku, fmt.Sprintf("Não foi possível encontrar dados do produto para o SKU %s", sku))
	}

	if s.cfg.Gemini.APIKey == "" {
		return nil, NewAdvisingError(ErrAdvisorNotConfigured, apiErrors.ErrExternalService, sku, "A chave de API do Gemini não está configurada")
	}

	prediction, err := s.advisor.PredictPriceDrop(ctx, sku, product.PriceHistory)
	if err != nil {
		logrus.WithError(err).WithField("sku", sku).Error("Erro ao gerar previsão de preço")
		return nil, NewAdvisingError(ErrAdvisorUnavailable, apiErrors.ErrExternalService, sku, "Não foi possível obter a previsão de preços. Por favor, tente novamente mais tarde")
	}

	return prediction, nil
}
