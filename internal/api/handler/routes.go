package handler

import (
	"net/http"

	"github.com/vfg2006/price-monitor-api/infrastructure/repository"
	"github.com/vfg2006/price-monitor-api/internal/api/handler/router"
	"github.com/vfg2006/price-monitor-api/internal/usecases/advising"
	"github.com/vfg2006/price-monitor-api/internal/usecases/authenticating"
	"github.com/vfg2006/price-monitor-api/internal/usecases/monitoring"
	"github.com/vfg2006/price-monitor-api/internal/usecases/pricing"
	"github.com/vfg2006/price-monitor-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Catalog(catalog repository.CatalogRepository, service monitoring.MonitoringService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/catalog/products",
			Method:      http.MethodGet,
			Handler:     ListCatalogProducts(catalog),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/shops",
			Method:      http.MethodGet,
			Handler:     ListShops(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/shops",
			Method:      http.MethodPost,
			Handler:     AddShop(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/managers",
			Method:      http.MethodGet,
			Handler:     ListManagers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/managers",
			Method:      http.MethodPost,
			Handler:     AddManager(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Dashboard(service monitoring.MonitoringService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/dashboard",
			Method:      http.MethodGet,
			Handler:     GetDashboard(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/selection/shop",
			Method:      http.MethodPut,
			Handler:     SelectShop(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/selection/manager",
			Method:      http.MethodPut,
			Handler:     SelectManager(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/selection/sku",
			Method:      http.MethodPut,
			Handler:     SelectSku(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Tracking(service monitoring.MonitoringService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/skus/track",
			Method:      http.MethodPost,
			Handler:     TrackSku(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/skus/:sku",
			Method:      http.MethodDelete,
			Handler:     UntrackSku(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/comparison",
			Method:      http.MethodPost,
			Handler:     AddComparisonSku(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/comparison/:sku",
			Method:      http.MethodDelete,
			Handler:     RemoveComparisonSku(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Products(monitoringService monitoring.MonitoringService, pricingService pricing.PricingService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/products/:sku/manager",
			Method:      http.MethodPut,
			Handler:     AssignManager(monitoringService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/products/:sku/price",
			Method:      http.MethodPut,
			Handler:     EditPrice(pricingService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/products/:sku/refresh",
			Method:      http.MethodPost,
			Handler:     RefreshSku(pricingService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Advising(service advising.AdvisingService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/products/:sku/recommendations",
			Method:      http.MethodPost,
			Handler:     GetRecommendations(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/products/:sku/price-prediction",
			Method:      http.MethodPost,
			Handler:     GetPricePrediction(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
