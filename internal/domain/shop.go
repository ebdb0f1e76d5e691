package domain

// Shop é uma loja monitorada pelo dashboard
type Shop struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Manager é o responsável por um subconjunto de produtos de uma loja.
// Cada manager pertence a exatamente uma loja.
type Manager struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
	ShopID    string `json:"shop_id"`
}
