package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/price-monitor-api/infrastructure/integrator/gemini/geminiclient"
	"github.com/vfg2006/price-monitor-api/internal/config"
	"github.com/vfg2006/price-monitor-api/internal/domain"
	"github.com/vfg2006/price-monitor-api/pkg/utils"
)

// Advisor é o contrato do serviço de IA generativa consumido pelo dashboard:
// recomendações de ação sobre um produto e previsão de queda de preço.
type Advisor interface {
	RecommendActions(ctx context.Context, mainProduct *domain.Product, comparisonProducts []*domain.Product) ([]domain.RecommendedAction, error)
	PredictPriceDrop(ctx context.Context, sku string, priceHistory []domain.PricePoint) (*domain.PricePrediction, error)
}

type GeminiIntegrator struct {
	cfg    *config.Config
	client geminiclient.Client
}

func New(cfg *config.Config, client geminiclient.Client) Advisor {
	return &GeminiIntegrator{
		cfg:    cfg,
		client: client,
	}
}

const recommendActionsSystemPrompt = `You are a marketing and sales expert for e-commerce. Your goal is to provide actionable recommendations to a product manager.
Analyze the main product and compare it with the competitor products provided.
Based on the data, provide 3-4 specific, actionable recommendations.
Respond ONLY with a JSON array, where each element has this exact structure:
{"category": "<price|strategy|sales>", "title": "<short, catchy title>", "description": "<detailed description of the action and why it is suggested>"}

- 'price': recommendations related to changing the price.
- 'strategy': recommendations related to product features, marketing, or positioning.
- 'sales': recommendations related to boosting sales through promotions or bundles.

Focus on concrete advice. For example, instead of "Lower the price", say "Consider lowering the price to $XX.XX to be more competitive with [Competitor Name]".`

// RecommendActions monta o prompt com o produto principal e os concorrentes em
// comparação e interpreta a lista de recomendações devolvida pelo modelo
func (g *GeminiIntegrator) RecommendActions(
	ctx context.Context,
	mainProduct *domain.Product,
	comparisonProducts []*domain.Product,
) ([]domain.RecommendedAction, error) {
	var prompt strings.Builder

	prompt.WriteString("Main Product:\n")
	writeProductBlock(&prompt, mainProduct)

	prompt.WriteString("\nCompetitor Products:\n")
	if len(comparisonProducts) == 0 {
		prompt.WriteString("No competitor products to compare.\n")
	}
	for _, product := range comparisonProducts {
		writeProductBlock(&prompt, product)
	}

	raw, err := g.client.GenerateContent(ctx, recommendActionsSystemPrompt, prompt.String())
	if err != nil {
		return nil, err
	}

	var actions []domain.RecommendedAction
	if err := json.Unmarshal([]byte(raw), &actions); err != nil {
		logrus.WithError(err).Error("Resposta de recomendações do Gemini fora do formato esperado")
		return nil, fmt.Errorf("invalid recommendations payload: %w", err)
	}

	if len(actions) == 0 {
		return nil, errors.New("gemini returned an empty recommendation list")
	}

	for _, action := range actions {
		switch action.Category {
		case domain.ActionCategoryPrice, domain.ActionCategoryStrategy, domain.ActionCategorySales:
		default:
			logrus.WithField("category", action.Category).Warn("Categoria de recomendação desconhecida")
		}
	}

	logrus.WithField("quantity", len(actions)).Debug("Recomendações recebidas: ", utils.PrettyJson(actions))

	return actions, nil
}

const predictPriceDropSystemPrompt = `You are a price prediction expert. Analyze the historical price data and predict whether the price of the product will drop in the near future.
Consider factors such as seasonality, trends, and price volatility.
Respond ONLY with a JSON object with this exact structure:
{"will_price_drop": <boolean>, "confidence": <number between 0 and 1>, "reason": "<reason for the prediction>"}`

// PredictPriceDrop envia o histórico de preços do SKU ao modelo e interpreta a
// previsão de queda
func (g *GeminiIntegrator) PredictPriceDrop(
	ctx context.Context,
	sku string,
	priceHistory []domain.PricePoint,
) (*domain.PricePrediction, error) {
	var prompt strings.Builder

	prompt.WriteString("Historical Price Data:\n")
	for _, point := range priceHistory {
		fmt.Fprintf(&prompt, "- Date: %s, Price: %.2f\n", point.Date, point.Price)
	}
	fmt.Fprintf(&prompt, "\nSKU: %s\n", sku)

	raw, err := g.client.GenerateContent(ctx, predictPriceDropSystemPrompt, prompt.String())
	if err != nil {
		return nil, err
	}

	var prediction domain.PricePrediction
	if err := json.Unmarshal([]byte(raw), &prediction); err != nil {
		logrus.WithError(err).Error("Resposta de previsão do Gemini fora do formato esperado")
		return nil, fmt.Errorf("invalid prediction payload: %w", err)
	}

	// Confiança sempre em [0,1]
	if prediction.Confidence < 0 {
		prediction.Confidence = 0
	}
	if prediction.Confidence > 1 {
		prediction.Confidence = 1
	}

	return &prediction, nil
}

func writeProductBlock(b *strings.Builder, product *domain.Product) {
	fmt.Fprintf(b, "- Name: %s (%s)\n", product.Name, product.Marketplace)
	fmt.Fprintf(b, "  SKU: %s\n", product.ID)
	fmt.Fprintf(b, "  Rating: %.1f (%d reviews)\n", product.Rating, product.Reviews)
	if last := product.LastPricePoint(); last != nil {
		fmt.Fprintf(b, "  Current Price: $%.2f\n", last.Price)
	}
	fmt.Fprintf(b, "  Features: %s\n", strings.Join(product.Features, ", "))
}
