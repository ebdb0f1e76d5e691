package domain

// CompetitorShopID marca produtos que não pertencem a nenhuma loja monitorada.
// Esses produtos existem no catálogo apenas para comparação.
const CompetitorShopID = "competitor"

// PricePoint representa o preço de um produto em um dia de calendário.
// Cada série tem no máximo uma entrada por data.
type PricePoint struct {
	Date  string  `json:"date"`
	Price float64 `json:"price"`
}

// PositionPoint representa a posição do produto no ranking do marketplace
// em um dia de calendário (1 = melhor posição, 100 = pior).
type PositionPoint struct {
	Date     string `json:"date"`
	Position int    `json:"position"`
}

// Product é a unidade monitorada do catálogo, identificada pelo SKU.
type Product struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	ImageURL        string          `json:"image_url"`
	ManagerID       *string         `json:"manager_id"`
	ShopID          string          `json:"shop_id"`
	Marketplace     string          `json:"marketplace"`
	Rating          float64         `json:"rating"`
	Reviews         int             `json:"reviews"`
	Features        []string        `json:"features"`
	PriceHistory    []PricePoint    `json:"price_history"`
	PositionHistory []PositionPoint `json:"position_history"`
	Notifications   int             `json:"notifications"`
	CurrentPrice    float64         `json:"current_price"`
	CompetitorSkus  []string        `json:"competitor_skus"`
}

// IsCompetitor indica se o produto pertence a um concorrente
func (p *Product) IsCompetitor() bool {
	return p.ShopID == CompetitorShopID
}

// LastPricePoint retorna a última entrada do histórico de preços ou nil
func (p *Product) LastPricePoint() *PricePoint {
	if len(p.PriceHistory) == 0 {
		return nil
	}
	return &p.PriceHistory[len(p.PriceHistory)-1]
}

// LastPositionPoint retorna a última entrada do histórico de posições ou nil
func (p *Product) LastPositionPoint() *PositionPoint {
	if len(p.PositionHistory) == 0 {
		return nil
	}
	return &p.PositionHistory[len(p.PositionHistory)-1]
}
