package simulation

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceHistory(t *testing.T) {
	t.Run("Cenário de exemplo: 90 dias terminando hoje", func(t *testing.T) {
		history, err := PriceHistory(49.99, 90, "B08H93ZRK9")
		require.NoError(t, err)
		require.Len(t, history, 90)

		// Datas contíguas, em ordem crescente, terminando hoje
		today := time.Now().Format(time.DateOnly)
		assert.Equal(t, today, history[len(history)-1].Date)

		for i := 1; i < len(history); i++ {
			prev, err := time.Parse(time.DateOnly, history[i-1].Date)
			require.NoError(t, err)

			assert.Equal(t, prev.AddDate(0, 0, 1).Format(time.DateOnly), history[i].Date)
		}

		// Piso e arredondamento em 2 casas decimais
		for _, point := range history {
			assert.GreaterOrEqual(t, point.Price, PriceFloor)

			cents := point.Price * 100
			assert.InDelta(t, math.Round(cents), cents, 1e-9, "preço não arredondado: %v", point.Price)
		}
	})

	t.Run("Mesma seed gera séries idênticas", func(t *testing.T) {
		first, err := PriceHistory(219.00, 365, "B07Y2P3Y9W")
		require.NoError(t, err)

		second, err := PriceHistory(219.00, 365, "B07Y2P3Y9W")
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("Seeds diferentes geram séries diferentes", func(t *testing.T) {
		first, err := PriceHistory(99.99, 90, "B08P2H5L7G")
		require.NoError(t, err)

		second, err := PriceHistory(99.99, 90, "B09J29QDP9")
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
	})

	t.Run("Quantidade de dias não positiva gera série vazia", func(t *testing.T) {
		history, err := PriceHistory(49.99, 0, "B08H93ZRK9")
		require.NoError(t, err)
		assert.Empty(t, history)

		history, err = PriceHistory(49.99, -10, "B08H93ZRK9")
		require.NoError(t, err)
		assert.Empty(t, history)
	})

	t.Run("Preço base não positivo é rejeitado", func(t *testing.T) {
		_, err := PriceHistory(0, 90, "B08H93ZRK9")
		assert.Error(t, err)

		_, err = PriceHistory(-49.99, 90, "B08H93ZRK9")
		assert.Error(t, err)
	})
}

func TestPositionHistory(t *testing.T) {
	t.Run("Posições sempre dentro do intervalo do ranking", func(t *testing.T) {
		history, err := PositionHistory(3, 365, "B09B8V2T6C")
		require.NoError(t, err)
		require.Len(t, history, 365)

		for _, point := range history {
			assert.GreaterOrEqual(t, point.Position, MinPosition)
			assert.LessOrEqual(t, point.Position, MaxPosition)
		}
	})

	t.Run("Mesma seed gera séries idênticas", func(t *testing.T) {
		first, err := PositionHistory(12, 90, "B08F26C7R1")
		require.NoError(t, err)

		second, err := PositionHistory(12, 90, "B08F26C7R1")
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("Posição base fora do intervalo é rejeitada", func(t *testing.T) {
		_, err := PositionHistory(0, 90, "B08H93ZRK9")
		assert.Error(t, err)

		_, err = PositionHistory(101, 90, "B08H93ZRK9")
		assert.Error(t, err)
	})

	t.Run("Quantidade de dias não positiva gera série vazia", func(t *testing.T) {
		history, err := PositionHistory(5, 0, "B08H93ZRK9")
		require.NoError(t, err)
		assert.Empty(t, history)
	})
}

func TestClampPosition(t *testing.T) {
	assert.Equal(t, MinPosition, ClampPosition(-3))
	assert.Equal(t, MinPosition, ClampPosition(0))
	assert.Equal(t, 42, ClampPosition(42))
	assert.Equal(t, MaxPosition, ClampPosition(250))
}
