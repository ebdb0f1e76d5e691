package repository

import "github.com/vfg2006/price-monitor-api/internal/domain"

// ProductDescriptor é o descritor estático de um produto do catálogo. O
// histórico de preços e posições não faz parte do descritor: é gerado na
// montagem do catálogo a partir de BasePrice/BasePosition com o SKU como seed.
type ProductDescriptor struct {
	ID             string
	Name           string
	ImageURL       string
	ManagerID      *string
	ShopID         string
	Marketplace    string
	Rating         float64
	Reviews        int
	Features       []string
	Notifications  int
	BasePrice      float64
	BasePosition   int
	CompetitorSkus []string
}

const placeholderImage = "https://placehold.co/100x100.png"

func managerRef(id string) *string {
	return &id
}

// DefaultShops retorna as lojas monitoradas do catálogo de demonstração
func DefaultShops() []*domain.Shop {
	return []*domain.Shop{
		{ID: "shop-1", Name: "Conecta Som"},
		{ID: "shop-2", Name: "Casa Inteligente"},
	}
}

// DefaultManagers retorna os managers do catálogo de demonstração
func DefaultManagers() []*domain.Manager {
	return []*domain.Manager{
		{ID: "manager-1", Name: "Ana Oliveira", AvatarURL: "https://placehold.co/40x40.png", ShopID: "shop-1"},
		{ID: "manager-2", Name: "Pedro Martins", AvatarURL: "https://placehold.co/40x40.png", ShopID: "shop-1"},
		{ID: "manager-3", Name: "Maria Duarte", AvatarURL: "https://placehold.co/40x40.png", ShopID: "shop-2"},
	}
}

// DefaultProducts retorna os descritores do catálogo de demonstração: os
// produtos das lojas monitoradas e os produtos de concorrentes usados nas
// comparações.
func DefaultProducts() []ProductDescriptor {
	return []ProductDescriptor{
		{
			ID:             "B08H93ZRK9",
			Name:           "Echo Dot (4ª geração)",
			ImageURL:       placeholderImage,
			ManagerID:      managerRef("manager-1"),
			ShopID:         "shop-1",
			Marketplace:    "Nossa loja",
			Rating:         4.7,
			Reviews:        782341,
			Features:       []string{"Caixa de som inteligente", "Com Alexa integrada", "Cor preta", "Design compacto"},
			Notifications:  2,
			BasePrice:      49.99,
			BasePosition:   3,
			CompetitorSkus: []string{"B07XJ8C8F7", "B09J29QDP9"},
		},
		{
			ID:             "B08P2H5L7G",
			Name:           "Google Nest Hub (2ª geração)",
			ImageURL:       placeholderImage,
			ManagerID:      managerRef("manager-1"),
			ShopID:         "shop-1",
			Marketplace:    "Nossa loja",
			Rating:         4.6,
			Reviews:        12543,
			Features:       []string{"Display inteligente", "Google Assistente", "Cor giz", "Análise de sono"},
			Notifications:  0,
			BasePrice:      99.99,
			BasePosition:   7,
			CompetitorSkus: []string{"B08F26C7R1"},
		},
		{
			ID:             "B09B8V2T6C",
			Name:           "Sony WH-1000XM5",
			ImageURL:       placeholderImage,
			ManagerID:      managerRef("manager-2"),
			ShopID:         "shop-1",
			Marketplace:    "Nossa loja",
			Rating:         4.8,
			Reviews:        15234,
			Features:       []string{"Cancelamento de ruído", "30 horas de bateria", "Hi-Res Audio", "Multipoint"},
			Notifications:  1,
			BasePrice:      399.99,
			BasePosition:   2,
			CompetitorSkus: []string{"B07Y2P3Y9W"},
		},
		{
			ID:             "B09J29QDP9",
			Name:           "Apple HomePod mini",
			ImageURL:       placeholderImage,
			ManagerID:      managerRef("manager-3"),
			ShopID:         "shop-2",
			Marketplace:    "Loja Apple",
			Rating:         4.8,
			Reviews:        45678,
			Features:       []string{"Som 360 graus", "Integração com Siri", "Cor cinza-espacial", "Intercomunicador"},
			Notifications:  0,
			BasePrice:      99.00,
			BasePosition:   5,
			CompetitorSkus: []string{"B08H93ZRK9", "B07XJ8C8F7"},
		},
		{
			ID:            "B07Y2P3Y9W",
			Name:          "Sonos One (Gen 2)",
			ImageURL:      placeholderImage,
			ShopID:        domain.CompetitorShopID,
			Marketplace:   "Sonos.com",
			Rating:        4.7,
			Reviews:       23456,
			Features:      []string{"Controle por voz", "Som encorpado", "Resistente à umidade", "Apple AirPlay 2"},
			Notifications: 5,
			BasePrice:     219.00,
			BasePosition:  9,
		},
		{
			ID:            "B07XJ8C8F7",
			Name:          "Bose Home Speaker 500",
			ImageURL:      placeholderImage,
			ShopID:        domain.CompetitorShopID,
			Marketplace:   "Amazon",
			Rating:        4.5,
			Reviews:       15987,
			Features:      []string{"Som estéreo", "Alexa embutida", "Display LCD", "Bluetooth"},
			Notifications: 0,
			BasePrice:     299.00,
			BasePosition:  11,
		},
		{
			ID:            "B08F26C7R1",
			Name:          "Amazon Echo Show 10 (3ª geração)",
			ImageURL:      placeholderImage,
			ShopID:        domain.CompetitorShopID,
			Marketplace:   "Best Buy",
			Rating:        4.7,
			Reviews:       32109,
			Features:      []string{"Display HD", "Acompanha o movimento", "Alexa", "Câmera de 13 MP"},
			Notifications: 1,
			BasePrice:     249.99,
			BasePosition:  6,
		},
	}
}
