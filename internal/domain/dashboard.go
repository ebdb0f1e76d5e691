package domain

// FilterAll é o valor sentinela dos filtros de loja e manager
const FilterAll = "all"

// DashboardSnapshot é a visão corrente da seleção: filtros ativos, produtos
// rastreados que atendem aos filtros, produto principal e conjunto de comparação.
type DashboardSnapshot struct {
	SelectedShopID     string     `json:"selected_shop_id"`
	SelectedManagerID  string     `json:"selected_manager_id"`
	SelectedSkuID      *string    `json:"selected_sku_id"`
	TrackedProducts    []*Product `json:"tracked_products"`
	MainProduct        *Product   `json:"main_product"`
	ComparisonProducts []*Product `json:"comparison_products"`
}

type TrackSkuRequest struct {
	Sku string `json:"sku"`
}

type ComparisonRequest struct {
	Sku string `json:"sku"`
}

type SelectShopRequest struct {
	ShopID string `json:"shop_id"`
}

type SelectManagerRequest struct {
	ManagerID string `json:"manager_id"`
}

type SelectSkuRequest struct {
	Sku string `json:"sku"`
}

type AddShopRequest struct {
	Name string `json:"name"`
}

type AddManagerRequest struct {
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
}

// AssignManagerRequest define ou limpa o manager de um produto.
// ManagerID nulo remove a atribuição.
type AssignManagerRequest struct {
	ManagerID *string `json:"manager_id"`
}

type EditPriceRequest struct {
	Price float64 `json:"price"`
}

// RefreshSkuResponse é o resultado de uma re-coleta simulada
type RefreshSkuResponse struct {
	Sku      string        `json:"sku"`
	Price    PricePoint    `json:"price"`
	Position PositionPoint `json:"position"`
}
