package repository

import (
	"sync"

	"github.com/vfg2006/price-monitor-api/internal/domain"
	"github.com/vfg2006/price-monitor-api/internal/simulation"
)

// CatalogRepository é o acesso ao catálogo em memória. O catálogo inteiro é
// materializado uma única vez na inicialização; depois disso só sofre as
// mutações das operações do dashboard. Não há persistência além do processo.
type CatalogRepository interface {
	GetProductByID(sku string) *domain.Product
	ListProducts() []*domain.Product
	ListManagedProducts() []*domain.Product

	ListShops() []*domain.Shop
	GetShopByID(shopID string) *domain.Shop
	AddShop(shop *domain.Shop)

	ListManagers() []*domain.Manager
	ListManagersByShop(shopID string) []*domain.Manager
	GetManagerByID(managerID string) *domain.Manager
	AddManager(manager *domain.Manager)

	SetProductManager(sku string, managerID *string) bool
	UpsertPricePoint(sku string, point domain.PricePoint) bool
	UpsertPositionPoint(sku string, point domain.PositionPoint) bool
}

type catalogRepository struct {
	mu       sync.RWMutex
	products []*domain.Product
	shops    []*domain.Shop
	managers []*domain.Manager
	bySku    map[string]*domain.Product
}

// NewCatalogRepository monta o catálogo a partir dos descritores estáticos,
// gerando para cada produto um histórico de preços e de posições com
// `historyDays` dias, usando o próprio SKU como seed. Dois catálogos montados
// com os mesmos descritores são idênticos byte a byte.
func NewCatalogRepository(
	shops []*domain.Shop,
	managers []*domain.Manager,
	descriptors []ProductDescriptor,
	historyDays int,
) (CatalogRepository, error) {
	repo := &catalogRepository{
		shops:    shops,
		managers: managers,
		products: make([]*domain.Product, 0, len(descriptors)),
		bySku:    make(map[string]*domain.Product, len(descriptors)),
	}

	for _, desc := range descriptors {
		priceHistory, err := simulation.PriceHistory(desc.BasePrice, historyDays, desc.ID)
		if err != nil {
			return nil, err
		}

		positionHistory, err := simulation.PositionHistory(desc.BasePosition, historyDays, desc.ID)
		if err != nil {
			return nil, err
		}

		product := &domain.Product{
			ID:              desc.ID,
			Name:            desc.Name,
			ImageURL:        desc.ImageURL,
			ManagerID:       desc.ManagerID,
			ShopID:          desc.ShopID,
			Marketplace:     desc.Marketplace,
			Rating:          desc.Rating,
			Reviews:         desc.Reviews,
			Features:        desc.Features,
			PriceHistory:    priceHistory,
			PositionHistory: positionHistory,
			Notifications:   desc.Notifications,
			CompetitorSkus:  desc.CompetitorSkus,
		}

		// Produtos de concorrentes nunca têm manager
		if product.IsCompetitor() {
			product.ManagerID = nil
		}

		if last := product.LastPricePoint(); last != nil {
			product.CurrentPrice = last.Price
		}

		repo.products = append(repo.products, product)
		repo.bySku[product.ID] = product
	}

	return repo, nil
}

func (c *catalogRepository) GetProductByID(sku string) *domain.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.bySku[sku]
}

func (c *catalogRepository) ListProducts() []*domain.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()

	products := make([]*domain.Product, len(c.products))
	copy(products, c.products)

	return products
}

// ListManagedProducts retorna os produtos pertencentes a alguma loja
// monitorada, excluindo os de concorrentes
func (c *catalogRepository) ListManagedProducts() []*domain.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()

	managed := make([]*domain.Product, 0, len(c.products))
	for _, product := range c.products {
		if !product.IsCompetitor() {
			managed = append(managed, product)
		}
	}

	return managed
}

func (c *catalogRepository) ListShops() []*domain.Shop {
	c.mu.RLock()
	defer c.mu.RUnlock()

	shops := make([]*domain.Shop, len(c.shops))
	copy(shops, c.shops)

	return shops
}

func (c *catalogRepository) GetShopByID(shopID string) *domain.Shop {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, shop := range c.shops {
		if shop.ID == shopID {
			return shop
		}
	}

	return nil
}

func (c *catalogRepository) AddShop(shop *domain.Shop) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.shops = append(c.shops, shop)
}

func (c *catalogRepository) ListManagers() []*domain.Manager {
	c.mu.RLock()
	defer c.mu.RUnlock()

	managers := make([]*domain.Manager, len(c.managers))
	copy(managers, c.managers)

	return managers
}

func (c *catalogRepository) ListManagersByShop(shopID string) []*domain.Manager {
	c.mu.RLock()
	defer c.mu.RUnlock()

	managers := make([]*domain.Manager, 0, len(c.managers))
	for _, manager := range c.managers {
		if manager.ShopID == shopID {
			managers = append(managers, manager)
		}
	}

	return managers
}

func (c *catalogRepository) GetManagerByID(managerID string) *domain.Manager {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, manager := range c.managers {
		if manager.ID == managerID {
			return manager
		}
	}

	return nil
}

func (c *catalogRepository) AddManager(manager *domain.Manager) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.managers = append(c.managers, manager)
}

// SetProductManager define ou limpa o manager de um produto. Retorna false se
// o SKU não existe no catálogo.
func (c *catalogRepository) SetProductManager(sku string, managerID *string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	product, ok := c.bySku[sku]
	if !ok {
		return false
	}

	product.ManagerID = managerID
	return true
}

// UpsertPricePoint insere um ponto no histórico de preços. Se a última entrada
// tiver a mesma data, o valor é substituído em vez de duplicar a data.
// CurrentPrice é sempre re-sincronizado com a última entrada.
func (c *catalogRepository) UpsertPricePoint(sku string, point domain.PricePoint) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	product, ok := c.bySku[sku]
	if !ok {
		return false
	}

	if last := product.LastPricePoint(); last != nil && last.Date == point.Date {
		last.Price = point.Price
	} else {
		product.PriceHistory = append(product.PriceHistory, point)
	}

	product.CurrentPrice = product.LastPricePoint().Price
	return true
}

// UpsertPositionPoint insere um ponto no histórico de posições com a mesma
// regra de uma entrada por data
func (c *catalogRepository) UpsertPositionPoint(sku string, point domain.PositionPoint) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	product, ok := c.bySku[sku]
	if !ok {
		return false
	}

	if last := product.LastPositionPoint(); last != nil && last.Date == point.Date {
		last.Position = point.Position
	} else {
		product.PositionHistory = append(product.PositionHistory, point)
	}

	return true
}
