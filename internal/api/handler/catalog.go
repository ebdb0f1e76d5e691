package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/price-monitor-api/infrastructure/repository"
	"github.com/vfg2006/price-monitor-api/internal/domain"
	"github.com/vfg2006/price-monitor-api/internal/usecases/monitoring"
	"github.com/vfg2006/price-monitor-api/pkg/apiErrors"
)

// ListCatalogProducts retorna todos os produtos do catálogo, incluindo os de
// concorrentes, para alimentar a busca de SKUs do dashboard
func ListCatalogProducts(catalog repository.CatalogRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		products := catalog.ListProducts()

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(products); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func ListShops(service monitoring.MonitoringService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		shops := service.ListShops()

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(shops); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// AddShop cria uma nova loja com ID gerado pelo servidor
func AddShop(service monitoring.MonitoringService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - AddShop")

		var req domain.AddShopRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		shop, err := service.AddShop(req.Name)
		if err != nil {
			handleMonitoringError(w, err, "Erro ao criar loja")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)

		if err := json.NewEncoder(w).Encode(shop); err != nil {
			logrus.Error(err)
		}
	})
}

// ListManagers retorna os managers da loja selecionada (ou todos, quando o
// filtro de loja está em "all")
func ListManagers(service monitoring.MonitoringService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		managers := service.ManagersForSelectedShop()

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(managers); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// AddManager cria um novo manager vinculado à loja selecionada
func AddManager(service monitoring.MonitoringService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - AddManager")

		var req domain.AddManagerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		manager, err := service.AddManager(req.Name, req.AvatarURL)
		if err != nil {
			handleMonitoringError(w, err, "Erro ao criar manager")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)

		if err := json.NewEncoder(w).Encode(manager); err != nil {
			logrus.Error(err)
		}
	})
}

// AssignManager define ou remove o manager responsável por um produto
func AssignManager(service monitoring.MonitoringService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sku := httprouter.ParamsFromContext(r.Context()).ByName("sku")
		if sku == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "SKU é obrigatório", nil)
			return
		}

		var req domain.AssignManagerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if err := service.AssignManager(sku, req.ManagerID); err != nil {
			handleMonitoringError(w, err, "Erro ao atribuir manager ao produto")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
	})
}
