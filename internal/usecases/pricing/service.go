package pricing

import (
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/price-monitor-api/infrastructure/integrator/scraper"
	"github.com/vfg2006/price-monitor-api/infrastructure/repository"
	"github.com/vfg2006/price-monitor-api/internal/domain"
	"github.com/vfg2006/price-monitor-api/pkg/apiErrors"
	"github.com/vfg2006/price-monitor-api/pkg/utils"
)

// PricingService cobre as mutações de preço do catálogo: edição manual e
// re-coleta simulada do marketplace
type PricingService interface {
	EditPrice(sku string, newPrice float64) (*domain.Product, error)
	RefreshSku(sku string) (*domain.RefreshSkuResponse, error)
}

type Service struct {
	catalog        repository.CatalogRepository
	scraperService scraper.MarketplaceScraper
}

func NewService(catalog repository.CatalogRepository, scraperService scraper.MarketplaceScraper) PricingService {
	return &Service{
		catalog:        catalog,
		scraperService: scraperService,
	}
}

// EditPrice registra um novo preço para o SKU datado de hoje. Se a última
// entrada do histórico já for de hoje, o valor é substituído em vez de gerar
// data duplicada. CurrentPrice sempre reflete a última entrada.
func (s *Service) EditPrice(sku string, newPrice float64) (*domain.Product, error) {
	if newPrice <= 0 {
		return nil, NewPricingError(ErrInvalidPrice, apiErrors.ErrInvalidPrice, sku, fmt.Sprintf("Preço inválido: %.2f", newPrice))
	}

	product := s.catalog.GetProductByID(sku)
	if product == nil {
		return nil, NewPricingError(ErrSkuNotFound, apiErrors.ErrSkuNotFound, sku, fmt.Sprintf("Não foi possível encontrar dados do produto para o SKU %s", sku))
	}

	point := domain.PricePoint{
		Date:  time.Now().Format(time.DateOnly),
		Price: utils.RoundWithTwoDecimalPlace(newPrice),
	}

	s.catalog.UpsertPricePoint(sku, point)

	logrus.WithFields(logrus.Fields{
		"sku":   sku,
		"price": point.Price,
	}).Info("Preço do produto atualizado")

	return s.catalog.GetProductByID(sku), nil
}

// RefreshSku dispara a re-coleta simulada do marketplace e aplica os novos
// pontos de preço e posição ao catálogo, ambos datados de hoje
func (s *Service) RefreshSku(sku string) (*domain.RefreshSkuResponse, error) {
	data, err := s.scraperService.ScrapeProduct(sku)
	if err != nil {
		if errors.Is(err, scraper.ErrProductNotFound) {
			return nil, NewPricingError(ErrSkuNotFound, apiErrors.ErrSkuNotFound, sku, fmt.Sprintf("Não foi possível encontrar dados do produto para o SKU %s", sku))
		}

		logrus.WithError(err).WithField("sku", sku).Error("Erro na coleta simulada do marketplace")
		return nil, NewPricingError(ErrScrapeFailed, apiErrors.ErrExternalService, sku, "Falha ao coletar dados do marketplace")
	}

	s.catalog.UpsertPricePoint(sku, data.Price)
	s.catalog.UpsertPositionPoint(sku, data.Position)

	logrus.WithFields(logrus.Fields{
		"sku":      sku,
		"price":    data.Price.Price,
		"position": data.Position.Position,
	}).Info("Dados do SKU atualizados pela coleta")

	return &domain.RefreshSkuResponse{
		Sku:      sku,
		Price:    data.Price,
		Position: data.Position,
	}, nil
}
