package simulation

import (
	"fmt"
	"time"

	"github.com/vfg2006/price-monitor-api/internal/domain"
	"github.com/vfg2006/price-monitor-api/pkg/utils"
)

// Piso de preço: nenhum ponto gerado fica abaixo deste valor
const PriceFloor = 10.0

// Limites da posição no ranking do marketplace
const (
	MinPosition = 1
	MaxPosition = 100
)

// PriceHistory gera uma série sintética de preços cobrindo `days` dias de
// calendário consecutivos terminando hoje, do mais antigo para o mais recente.
//
// O passeio aleatório parte de basePrice e aplica, a cada dia, um ruído
// proporcional ao preço base (±2,5%). A cada 30 dias há uma queda sazonal
// multiplicativa (fator em [0.90, 0.95)) e a cada 15 dias uma alta sazonal
// (fator em [1.02, 1.03)), ambas consumindo o mesmo fluxo do PRNG que o ruído.
// Cada ponto é limitado ao piso e arredondado para 2 casas decimais.
//
// A mesma tripla (basePrice, days, seed) produz sempre a mesma série.
func PriceHistory(basePrice float64, days int, seed string) ([]domain.PricePoint, error) {
	if basePrice <= 0 {
		return nil, fmt.Errorf("preço base inválido: %.2f", basePrice)
	}

	if days <= 0 {
		return []domain.PricePoint{}, nil
	}

	random := NewSeededRand(seed)
	now := time.Now()

	history := make([]domain.PricePoint, 0, days)
	price := basePrice

	for i := days - 1; i >= 0; i-- {
		date := now.AddDate(0, 0, -i)

		price += (random() - 0.5) * (basePrice * 0.05)

		// Queda pseudo-sazonal a cada 30 dias (exceto no dia mais recente)
		if i%30 == 0 && i > 0 {
			price *= 0.90 + random()*0.05
		}

		// Alta pseudo-sazonal a cada 15 dias
		if i%15 == 0 {
			price *= 1.02 + random()*0.01
		}

		history = append(history, domain.PricePoint{
			Date:  date.Format(time.DateOnly),
			Price: max(PriceFloor, utils.RoundWithTwoDecimalPlace(price)),
		})
	}

	return history, nil
}

// PositionHistory gera uma série sintética de posições de ranking com o mesmo
// formato do histórico de preços, porém sem os termos sazonais: apenas o
// passeio aleatório proporcional à posição base, limitado a [1, 100].
func PositionHistory(basePosition int, days int, seed string) ([]domain.PositionPoint, error) {
	if basePosition < MinPosition || basePosition > MaxPosition {
		return nil, fmt.Errorf("posição base inválida: %d", basePosition)
	}

	if days <= 0 {
		return []domain.PositionPoint{}, nil
	}

	random := NewSeededRand(seed)
	now := time.Now()

	history := make([]domain.PositionPoint, 0, days)
	position := float64(basePosition)

	for i := days - 1; i >= 0; i-- {
		date := now.AddDate(0, 0, -i)

		position += (random() - 0.5) * (float64(basePosition) * 0.05)

		history = append(history, domain.PositionPoint{
			Date:     date.Format(time.DateOnly),
			Position: ClampPosition(int(position + 0.5)),
		})
	}

	return history, nil
}

// ClampPosition limita uma posição ao intervalo válido do ranking
func ClampPosition(position int) int {
	if position < MinPosition {
		return MinPosition
	}
	if position > MaxPosition {
		return MaxPosition
	}
	return position
}
