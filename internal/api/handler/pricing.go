package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/price-monitor-api/internal/domain"
	"github.com/vfg2006/price-monitor-api/internal/usecases/pricing"
	"github.com/vfg2006/price-monitor-api/pkg/apiErrors"
)

// EditPrice registra manualmente um novo preço para o produto, datado de hoje
func EditPrice(service pricing.PricingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - EditPrice")

		sku := httprouter.ParamsFromContext(r.Context()).ByName("sku")
		if sku == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "SKU é obrigatório", nil)
			return
		}

		var req domain.EditPriceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		product, err := service.EditPrice(sku, req.Price)
		if err != nil {
			handlePricingError(w, err, "Erro ao atualizar preço do produto")
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(product); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// RefreshSku dispara a re-coleta simulada do marketplace para o SKU e retorna
// os novos pontos de preço e posição
func RefreshSku(service pricing.PricingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RefreshSku")

		sku := httprouter.ParamsFromContext(r.Context()).ByName("sku")
		if sku == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "SKU é obrigatório", nil)
			return
		}

		resp, err := service.RefreshSku(sku)
		if err != nil {
			handlePricingError(w, err, "Erro ao atualizar dados do SKU")
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(resp); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// handlePricingError trata erros do serviço de preços e retorna a resposta apropriada
func handlePricingError(w http.ResponseWriter, err error, fallbackMsg string) {
	logrus.Error(err)

	// Verificar se é um PricingError para obter o código específico do erro
	var pricingErr *pricing.PricingError
	if errors.As(err, &pricingErr) {
		apiErrors.WriteError(w, pricingErr.Code, pricingErr.Error(), nil)
		return
	}

	// Caso não seja um PricingError específico, verificar erros comuns
	switch {
	case errors.Is(err, pricing.ErrSkuNotFound):
		apiErrors.WriteError(w, apiErrors.ErrSkuNotFound, "SKU não encontrado no catálogo", nil)

	case errors.Is(err, pricing.ErrInvalidPrice):
		apiErrors.WriteError(w, apiErrors.ErrInvalidPrice, "Preço deve ser um valor positivo", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallbackMsg, nil)
	}
}
