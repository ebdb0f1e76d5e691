package monitoring

import (
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/price-monitor-api/infrastructure/repository"
	"github.com/vfg2006/price-monitor-api/internal/domain"
	"github.com/vfg2006/price-monitor-api/pkg/apiErrors"
	"github.com/vfg2006/price-monitor-api/pkg/utils"
)

// MonitoringService mantém o estado do dashboard: o conjunto de SKUs
// rastreados, o conjunto de comparação e a seleção corrente de loja, manager e
// produto principal. Todas as operações são síncronas e executam sob um único
// mutex: uma mutação por vez, sem intercalação (última escrita vence).
type MonitoringService interface {
	Snapshot() *domain.DashboardSnapshot

	SelectShop(shopID string) (*domain.DashboardSnapshot, error)
	SelectManager(managerID string) (*domain.DashboardSnapshot, error)
	SelectSku(sku string) (*domain.DashboardSnapshot, error)

	TrackSku(sku string) (*domain.Product, error)
	UntrackSku(sku string) error
	TrackedProducts() []*domain.Product

	AddComparisonSku(sku string) (*domain.Product, error)
	RemoveComparisonSku(sku string)

	ListShops() []*domain.Shop
	AddShop(name string) (*domain.Shop, error)
	ManagersForSelectedShop() []*domain.Manager
	AddManager(name, avatarURL string) (*domain.Manager, error)
	AssignManager(sku string, managerID *string) error
}

type Service struct {
	catalog repository.CatalogRepository

	mu                sync.Mutex
	trackedSkus       []string
	trackedSet        map[string]struct{}
	comparisonSkus    []string
	selectedShopID    string
	selectedManagerID string
	selectedSkuID     *string
}

// NewService cria o serviço de monitoramento com o estado inicial do
// dashboard: todos os produtos gerenciados rastreados, filtros em "all" e o
// primeiro produto rastreado selecionado.
func NewService(catalog repository.CatalogRepository) MonitoringService {
	s := &Service{
		catalog:           catalog,
		trackedSet:        make(map[string]struct{}),
		selectedShopID:    domain.FilterAll,
		selectedManagerID: domain.FilterAll,
	}

	for _, product := range catalog.ListManagedProducts() {
		s.trackedSkus = append(s.trackedSkus, product.ID)
		s.trackedSet[product.ID] = struct{}{}
	}

	s.reselectFirstLocked()

	return s
}

// Snapshot retorna a visão corrente da seleção
func (s *Service) Snapshot() *domain.DashboardSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshotLocked()
}

// SelectShop troca o filtro de loja. A troca sempre reseta o filtro de manager
// para "all" e re-seleciona o primeiro produto rastreado que atende ao filtro.
func (s *Service) SelectShop(shopID string) (*domain.DashboardSnapshot, error) {
	if shopID != domain.FilterAll && s.catalog.GetShopByID(shopID) == nil {
		return nil, NewMonitoringError(ErrShopNotFound, apiErrors.ErrSkuNotFound, fmt.Sprintf("Loja %s não encontrada", shopID))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.selectedShopID = shopID
	s.selectedManagerID = domain.FilterAll
	s.reselectFirstLocked()

	return s.snapshotLocked(), nil
}

// SelectManager troca o filtro de manager e re-seleciona o primeiro produto
// rastreado que atende aos filtros
func (s *Service) SelectManager(managerID string) (*domain.DashboardSnapshot, error) {
	if managerID != domain.FilterAll {
		manager := s.catalog.GetManagerByID(managerID)
		if manager == nil {
			return nil, NewMonitoringError(ErrManagerNotFound, apiErrors.ErrSkuNotFound, fmt.Sprintf("Manager %s não encontrado", managerID))
		}

		s.mu.Lock()
		shopID := s.selectedShopID
		s.mu.Unlock()

		// Com uma loja concreta escolhida, o manager precisa pertencer a ela
		if shopID != domain.FilterAll && manager.ShopID != shopID {
			return nil, NewMonitoringError(ErrManagerWrongShop, apiErrors.ErrSkuConflict, "Este manager pertence a outra loja")
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.selectedManagerID = managerID
	s.reselectFirstLocked()

	return s.snapshotLocked(), nil
}

// SelectSku troca o produto principal selecionado. O SKU precisa estar
// rastreado e atender aos filtros ativos.
func (s *Service) SelectSku(sku string) (*domain.DashboardSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, tracked := s.trackedSet[sku]; !tracked {
		return nil, NewMonitoringErrorWithSku(ErrSkuNotTracked, apiErrors.ErrSkuNotFound, sku, fmt.Sprintf("O SKU %s não está na lista de rastreados", sku))
	}

	product := s.catalog.GetProductByID(sku)
	if product == nil || !s.matchesFiltersLocked(product) {
		return nil, NewMonitoringErrorWithSku(ErrSkuWrongShop, apiErrors.ErrSkuConflict, sku, "Este SKU não atende aos filtros ativos")
	}

	s.selectedSkuID = &sku

	return s.snapshotLocked(), nil
}

// TrackSku adiciona um produto do catálogo ao conjunto de rastreados. Reporta
// conflito sem mutar o estado quando o SKU já é rastreado ou não atende aos
// filtros ativos, e not-found quando não existe no catálogo.
func (s *Service) TrackSku(sku string) (*domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, tracked := s.trackedSet[sku]; tracked {
		return nil, NewMonitoringErrorWithSku(ErrSkuAlreadyTracked, apiErrors.ErrSkuConflict, sku, fmt.Sprintf("O produto com SKU %s já está na sua lista", sku))
	}

	product := s.catalog.GetProductByID(sku)
	if product == nil {
		return nil, NewMonitoringErrorWithSku(ErrSkuNotFound, apiErrors.ErrSkuNotFound, sku, fmt.Sprintf("Não foi possível encontrar dados do produto para o SKU %s", sku))
	}

	if s.selectedShopID != domain.FilterAll && product.ShopID != s.selectedShopID {
		return nil, NewMonitoringErrorWithSku(ErrSkuWrongShop, apiErrors.ErrSkuConflict, sku, "Este SKU pertence a outra loja")
	}

	if s.selectedManagerID != domain.FilterAll &&
		(product.ManagerID == nil || *product.ManagerID != s.selectedManagerID) {
		return nil, NewMonitoringErrorWithSku(ErrSkuWrongManager, apiErrors.ErrSkuConflict, sku, "Este SKU pertence a outro manager")
	}

	s.trackedSkus = append(s.trackedSkus, sku)
	s.trackedSet[sku] = struct{}{}

	logrus.WithField("sku", sku).Info("SKU adicionado à lista de rastreados")

	return product, nil
}

// UntrackSku remove o SKU do conjunto de rastreados e do conjunto de
// comparação. Se o SKU removido era o selecionado, a seleção cai para o
// primeiro produto restante que atende aos filtros ativos, ou para nenhum.
func (s *Service) UntrackSku(sku string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, tracked := s.trackedSet[sku]; !tracked {
		return NewMonitoringErrorWithSku(ErrSkuNotTracked, apiErrors.ErrSkuNotFound, sku, fmt.Sprintf("O SKU %s não está na lista de rastreados", sku))
	}

	delete(s.trackedSet, sku)
	s.trackedSkus = removeSku(s.trackedSkus, sku)
	s.comparisonSkus = removeSku(s.comparisonSkus, sku)

	if s.selectedSkuID != nil && *s.selectedSkuID == sku {
		s.reselectFirstLocked()
	}

	logrus.WithField("sku", sku).Info("SKU removido da lista de rastreados")

	return nil
}

// TrackedProducts retorna todos os produtos rastreados, sem aplicar filtros.
// Usado pela re-coleta agendada.
func (s *Service) TrackedProducts() []*domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	products := make([]*domain.Product, 0, len(s.trackedSkus))
	for _, sku := range s.trackedSkus {
		if product := s.catalog.GetProductByID(sku); product != nil {
			products = append(products, product)
		}
	}

	return products
}

// AddComparisonSku adiciona um produto do catálogo ao conjunto de comparação.
// O produto principal não pode ser comparado consigo mesmo.
func (s *Service) AddComparisonSku(sku string) (*domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.selectedSkuID != nil && *s.selectedSkuID == sku {
		return nil, NewMonitoringErrorWithSku(ErrSkuIsMainProduct, apiErrors.ErrSkuConflict, sku, "Este produto já está selecionado como principal")
	}

	for _, existing := range s.comparisonSkus {
		if existing == sku {
			return nil, NewMonitoringErrorWithSku(ErrSkuAlreadyInComparison, apiErrors.ErrSkuConflict, sku, fmt.Sprintf("O produto com SKU %s já está na tabela de comparação", sku))
		}
	}

	product := s.catalog.GetProductByID(sku)
	if product == nil {
		return nil, NewMonitoringErrorWithSku(ErrSkuNotFound, apiErrors.ErrSkuNotFound, sku, fmt.Sprintf("Não foi possível encontrar dados do produto para o SKU %s", sku))
	}

	s.comparisonSkus = append(s.comparisonSkus, sku)

	return product, nil
}

// RemoveComparisonSku remove o SKU do conjunto de comparação. Remoção de um
// SKU ausente não é erro.
func (s *Service) RemoveComparisonSku(sku string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.comparisonSkus = removeSku(s.comparisonSkus, sku)
}

func (s *Service) ListShops() []*domain.Shop {
	return s.catalog.ListShops()
}

// AddShop cria uma nova loja com identificador único
func (s *Service) AddShop(name string) (*domain.Shop, error) {
	if name == "" {
		return nil, NewMonitoringError(ErrNameRequired, apiErrors.ErrMissingRequiredData, "O nome da loja é obrigatório")
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, NewMonitoringError(ErrGenerateID, apiErrors.ErrInternalServer, "Falha ao gerar identificador único para a loja")
	}

	shop := &domain.Shop{
		ID:   fmt.Sprintf("shop-%s", id),
		Name: name,
	}

	s.catalog.AddShop(shop)

	logrus.WithFields(logrus.Fields{"shop_id": shop.ID, "name": shop.Name}).Info("Loja adicionada")

	return shop, nil
}

// ManagersForSelectedShop lista os managers da loja do filtro ativo, ou todos
// quando o filtro é "all"
func (s *Service) ManagersForSelectedShop() []*domain.Manager {
	s.mu.Lock()
	shopID := s.selectedShopID
	s.mu.Unlock()

	if shopID == domain.FilterAll {
		return s.catalog.ListManagers()
	}

	return s.catalog.ListManagersByShop(shopID)
}

// AddManager cria um novo manager vinculado à loja atualmente selecionada
func (s *Service) AddManager(name, avatarURL string) (*domain.Manager, error) {
	if name == "" {
		return nil, NewMonitoringError(ErrNameRequired, apiErrors.ErrMissingRequiredData, "O nome do manager é obrigatório")
	}

	s.mu.Lock()
	shopID := s.selectedShopID
	s.mu.Unlock()

	if shopID == domain.FilterAll {
		return nil, NewMonitoringError(ErrShopNotSelected, apiErrors.ErrInvalidRequest, "Selecione uma loja antes de adicionar um manager")
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, NewMonitoringError(ErrGenerateID, apiErrors.ErrInternalServer, "Falha ao gerar identificador único para o manager")
	}

	manager := &domain.Manager{
		ID:        fmt.Sprintf("manager-%s", id),
		Name:      name,
		AvatarURL: avatarURL,
		ShopID:    shopID,
	}

	s.catalog.AddManager(manager)

	logrus.WithFields(logrus.Fields{"manager_id": manager.ID, "shop_id": shopID}).Info("Manager adicionado")

	return manager, nil
}

// AssignManager define ou limpa o manager de um produto. O manager precisa
// existir e pertencer à mesma loja do produto.
func (s *Service) AssignManager(sku string, managerID *string) error {
	product := s.catalog.GetProductByID(sku)
	if product == nil {
		return NewMonitoringErrorWithSku(ErrSkuNotFound, apiErrors.ErrSkuNotFound, sku, fmt.Sprintf("Não foi possível encontrar dados do produto para o SKU %s", sku))
	}

	if managerID != nil {
		manager := s.catalog.GetManagerByID(*managerID)
		if manager == nil {
			return NewMonitoringError(ErrManagerNotFound, apiErrors.ErrSkuNotFound, fmt.Sprintf("Manager %s não encontrado", *managerID))
		}

		if manager.ShopID != product.ShopID {
			return NewMonitoringErrorWithSku(ErrManagerWrongShop, apiErrors.ErrSkuConflict, sku, "O manager pertence a outra loja")
		}
	}

	s.catalog.SetProductManager(sku, managerID)

	return nil
}

// matchesFiltersLocked verifica se o produto atende aos filtros ativos de loja
// e manager. Chamar com o mutex adquirido.
func (s *Service) matchesFiltersLocked(product *domain.Product) bool {
	if s.selectedShopID != domain.FilterAll && product.ShopID != s.selectedShopID {
		return false
	}

	if s.selectedManagerID != domain.FilterAll {
		if product.ManagerID == nil || *product.ManagerID != s.selectedManagerID {
			return false
		}
	}

	return true
}

// filteredTrackedLocked retorna os produtos rastreados que atendem aos filtros
// ativos, na ordem de rastreamento. Chamar com o mutex adquirido.
func (s *Service) filteredTrackedLocked() []*domain.Product {
	products := make([]*domain.Product, 0, len(s.trackedSkus))
	for _, sku := range s.trackedSkus {
		product := s.catalog.GetProductByID(sku)
		if product != nil && s.matchesFiltersLocked(product) {
			products = append(products, product)
		}
	}

	return products
}

// reselectFirstLocked escolhe deterministicamente o primeiro produto rastreado
// que atende aos filtros ativos, ou nenhum. Chamar com o mutex adquirido.
func (s *Service) reselectFirstLocked() {
	filtered := s.filteredTrackedLocked()
	if len(filtered) == 0 {
		s.selectedSkuID = nil
		return
	}

	id := filtered[0].ID
	s.selectedSkuID = &id
}

func (s *Service) snapshotLocked() *domain.DashboardSnapshot {
	snapshot := &domain.DashboardSnapshot{
		SelectedShopID:     s.selectedShopID,
		SelectedManagerID:  s.selectedManagerID,
		SelectedSkuID:      s.selectedSkuID,
		TrackedProducts:    s.filteredTrackedLocked(),
		ComparisonProducts: make([]*domain.Product, 0, len(s.comparisonSkus)),
	}

	if s.selectedSkuID != nil {
		snapshot.MainProduct = s.catalog.GetProductByID(*s.selectedSkuID)
	}

	for _, sku := range s.comparisonSkus {
		if product := s.catalog.GetProductByID(sku); product != nil {
			snapshot.ComparisonProducts = append(snapshot.ComparisonProducts, product)
		}
	}

	return snapshot
}

func removeSku(skus []string, sku string) []string {
	result := skus[:0]
	for _, existing := range skus {
		if existing != sku {
			result = append(result, existing)
		}
	}

	return result
}
