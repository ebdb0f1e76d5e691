package domain

// Categorias possíveis para uma ação recomendada
const (
	ActionCategoryPrice    = "price"
	ActionCategoryStrategy = "strategy"
	ActionCategorySales    = "sales"
)

// RecommendedAction é uma recomendação textual gerada pelo serviço de IA
// a partir do produto principal e dos produtos em comparação.
type RecommendedAction struct {
	Category    string `json:"category"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// PricePrediction é a previsão de queda de preço gerada pelo serviço de IA
type PricePrediction struct {
	WillPriceDrop bool    `json:"will_price_drop"`
	Confidence    float64 `json:"confidence"`
	Reason        string  `json:"reason"`
}
