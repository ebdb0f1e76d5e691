package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/price-monitor-api/internal/usecases/advising"
	"github.com/vfg2006/price-monitor-api/pkg/apiErrors"
)

// GetRecommendations gera recomendações de ação de IA para o produto,
// comparando-o com o conjunto de comparação corrente
func GetRecommendations(service advising.AdvisingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetRecommendations")

		sku := httprouter.ParamsFromContext(r.Context()).ByName("sku")
		if sku == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "SKU é obrigatório", nil)
			return
		}

		actions, err := service.RecommendedActions(r.Context(), sku)
		if err != nil {
			handleAdvisingError(w, err, "Erro ao gerar recomendações")
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(actions); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// GetPricePrediction gera a previsão de queda de preço de IA para o produto a
// partir do seu histórico de preços
func GetPricePrediction(service advising.AdvisingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetPricePrediction")

		sku := httprouter.ParamsFromContext(r.Context()).ByName("sku")
		if sku == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "SKU é obrigatório", nil)
			return
		}

		prediction, err := service.PriceDropPrediction(r.Context(), sku)
		if err != nil {
			handleAdvisingError(w, err, "Erro ao gerar previsão de preço")
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(prediction); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// handleAdvisingError trata erros do serviço de recomendações e retorna a
// resposta apropriada
func handleAdvisingError(w http.ResponseWriter, err error, fallbackMsg string) {
	logrus.Error(err)

	// Verificar se é um AdvisingError para obter o código específico do erro
	var advErr *advising.AdvisingError
	if errors.As(err, &advErr) {
		apiErrors.WriteError(w, advErr.Code, advErr.Error(), nil)
		return
	}

	// Caso não seja um AdvisingError específico, verificar erros comuns
	switch {
	case errors.Is(err, advising.ErrSkuNotFound):
		apiErrors.WriteError(w, apiErrors.ErrSkuNotFound, "SKU não encontrado no catálogo", nil)

	case errors.Is(err, advising.ErrAdvisorNotConfigured), errors.Is(err, advising.ErrAdvisorUnavailable):
		apiErrors.WriteError(w, apiErrors.ErrExternalService, "Serviço de IA indisponível", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallbackMsg, nil)
	}
}
