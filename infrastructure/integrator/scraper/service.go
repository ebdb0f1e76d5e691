package scraper

import (
	"errors"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/price-monitor-api/infrastructure/repository"
	"github.com/vfg2006/price-monitor-api/internal/domain"
	"github.com/vfg2006/price-monitor-api/internal/simulation"
	"github.com/vfg2006/price-monitor-api/pkg/utils"
)

// ErrProductNotFound indica que o SKU não existe no catálogo
var ErrProductNotFound = errors.New("product not found for scraping")

// ScrapedData é o resultado de uma coleta: o preço e a posição mais recentes
// encontrados no marketplace, ambos datados de hoje.
type ScrapedData struct {
	Price    domain.PricePoint    `json:"price"`
	Position domain.PositionPoint `json:"position"`
}

// MarketplaceScraper simula a coleta de dados frescos de um marketplace. Em
// uma aplicação real este integrador faria chamadas à API do marketplace.
type MarketplaceScraper interface {
	ScrapeProduct(sku string) (*ScrapedData, error)
}

type Service struct {
	catalog repository.CatalogRepository
}

func New(catalog repository.CatalogRepository) MarketplaceScraper {
	return &Service{catalog: catalog}
}

// ScrapeProduct gera um novo ponto de preço e de posição para o SKU a partir
// dos últimos valores conhecidos. Diferente da geração inicial de histórico,
// a coleta usa aleatoriedade sem seed: cada chamada varia.
func (s *Service) ScrapeProduct(sku string) (*ScrapedData, error) {
	logrus.WithField("sku", sku).Debug("Coletando dados do marketplace")

	product := s.catalog.GetProductByID(sku)
	if product == nil {
		logrus.WithField("sku", sku).Warn("SKU não encontrado para coleta")
		return nil, ErrProductNotFound
	}

	lastPrice := product.LastPricePoint()
	lastPosition := product.LastPositionPoint()
	if lastPrice == nil || lastPosition == nil {
		return nil, ErrProductNotFound
	}

	// O mesmo fator aleatório alimenta preço e posição
	randomFactor := rand.Float64() - 0.5

	newPrice := utils.RoundWithTwoDecimalPlace(lastPrice.Price * (1 + randomFactor*0.05))
	if newPrice < simulation.PriceFloor {
		newPrice = simulation.PriceFloor
	}

	newPosition := simulation.ClampPosition(int(float64(lastPosition.Position) + randomFactor*4 + 0.5))

	today := time.Now().Format(time.DateOnly)

	data := &ScrapedData{
		Price:    domain.PricePoint{Date: today, Price: newPrice},
		Position: domain.PositionPoint{Date: today, Position: newPosition},
	}

	logrus.WithFields(logrus.Fields{
		"sku":      sku,
		"price":    data.Price.Price,
		"position": data.Position.Position,
	}).Debug("Novos dados coletados")

	return data, nil
}
