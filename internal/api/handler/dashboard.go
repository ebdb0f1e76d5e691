package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/price-monitor-api/internal/domain"
	"github.com/vfg2006/price-monitor-api/internal/usecases/monitoring"
	"github.com/vfg2006/price-monitor-api/pkg/apiErrors"
)

// GetDashboard retorna a visão corrente da seleção: filtros ativos, produtos
// rastreados filtrados, produto principal e conjunto de comparação
func GetDashboard(service monitoring.MonitoringService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		snapshot := service.Snapshot()

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(snapshot); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func SelectShop(service monitoring.MonitoringService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req domain.SelectShopRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if req.ShopID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da loja é obrigatório", nil)
			return
		}

		snapshot, err := service.SelectShop(req.ShopID)
		if err != nil {
			handleMonitoringError(w, err, "Erro ao selecionar loja")
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(snapshot); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func SelectManager(service monitoring.MonitoringService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req domain.SelectManagerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if req.ManagerID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do manager é obrigatório", nil)
			return
		}

		snapshot, err := service.SelectManager(req.ManagerID)
		if err != nil {
			handleMonitoringError(w, err, "Erro ao selecionar manager")
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(snapshot); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func SelectSku(service monitoring.MonitoringService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req domain.SelectSkuRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if req.Sku == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "SKU é obrigatório", nil)
			return
		}

		snapshot, err := service.SelectSku(req.Sku)
		if err != nil {
			handleMonitoringError(w, err, "Erro ao selecionar produto")
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(snapshot); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// TrackSku adiciona um SKU do catálogo ao conjunto de produtos rastreados
func TrackSku(service monitoring.MonitoringService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - TrackSku")

		var req domain.TrackSkuRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if req.Sku == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "SKU é obrigatório", nil)
			return
		}

		product, err := service.TrackSku(req.Sku)
		if err != nil {
			handleMonitoringError(w, err, "Erro ao rastrear SKU")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)

		if err := json.NewEncoder(w).Encode(product); err != nil {
			logrus.Error(err)
		}
	})
}

// UntrackSku remove um SKU do conjunto de produtos rastreados
func UntrackSku(service monitoring.MonitoringService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sku := httprouter.ParamsFromContext(r.Context()).ByName("sku")
		if sku == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "SKU é obrigatório", nil)
			return
		}

		if err := service.UntrackSku(sku); err != nil {
			handleMonitoringError(w, err, "Erro ao remover SKU do rastreamento")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

// AddComparisonSku adiciona um SKU rastreado ao conjunto de comparação
func AddComparisonSku(service monitoring.MonitoringService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req domain.ComparisonRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if req.Sku == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "SKU é obrigatório", nil)
			return
		}

		product, err := service.AddComparisonSku(req.Sku)
		if err != nil {
			handleMonitoringError(w, err, "Erro ao adicionar SKU à comparação")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)

		if err := json.NewEncoder(w).Encode(product); err != nil {
			logrus.Error(err)
		}
	})
}

// RemoveComparisonSku remove um SKU do conjunto de comparação. A operação é
// idempotente: remover um SKU ausente não é erro.
func RemoveComparisonSku(service monitoring.MonitoringService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sku := httprouter.ParamsFromContext(r.Context()).ByName("sku")
		if sku == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "SKU é obrigatório", nil)
			return
		}

		service.RemoveComparisonSku(sku)

		w.WriteHeader(http.StatusNoContent)
	})
}

// handleMonitoringError trata erros do serviço de monitoramento e retorna a
// resposta apropriada
func handleMonitoringError(w http.ResponseWriter, err error, fallbackMsg string) {
	logrus.Error(err)

	// Verificar se é um MonitoringError para obter o código específico do erro
	var monErr *monitoring.MonitoringError
	if errors.As(err, &monErr) {
		apiErrors.WriteError(w, monErr.Code, monErr.Error(), nil)
		return
	}

	// Caso não seja um MonitoringError específico, verificar erros comuns
	switch {
	case errors.Is(err, monitoring.ErrSkuNotFound):
		apiErrors.WriteError(w, apiErrors.ErrSkuNotFound, "SKU não encontrado no catálogo", nil)

	case errors.Is(err, monitoring.ErrSkuAlreadyTracked):
		apiErrors.WriteError(w, apiErrors.ErrSkuConflict, "SKU já está sendo rastreado", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallbackMsg, nil)
	}
}
