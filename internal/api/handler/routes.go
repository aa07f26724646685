package handler

import (
	"net/http"

	"github.com/estatecerenti/umkm-monitoring-api/infrastructure/repository"
	"github.com/estatecerenti/umkm-monitoring-api/internal/api/handler/router"
	"github.com/estatecerenti/umkm-monitoring-api/internal/usecases/authenticating"
	"github.com/estatecerenti/umkm-monitoring-api/internal/usecases/monitoring"
	"github.com/estatecerenti/umkm-monitoring-api/internal/usecases/prepost"
	"github.com/estatecerenti/umkm-monitoring-api/pkg/middleware"
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
		{
			Path:        "/v1/users/:id/generate-password",
			Method:      http.MethodPost,
			Handler:     GeneratePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id/change-password",
			Method:      http.MethodPost,
			Handler:     ChangePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func User(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodGet,
			Handler:     GetUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodPut,
			Handler:     UpdateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Monitoring(service monitoring.Monitorer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/mse/monitoring",
			Method:      http.MethodGet,
			Handler:     ListMonitoring(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/mse/monitoring/:id",
			Method:      http.MethodGet,
			Handler:     GetMonitoringDetail(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/mse/monitoring/:id/chart",
			Method:      http.MethodGet,
			Handler:     GetMonitoringChart(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/mse/monitoring/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteMonitoring(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrFieldOfficer()},
		},
		{
			Path:        "/v1/mse/records",
			Method:      http.MethodPost,
			Handler:     CreateRecord(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrFieldOfficer()},
		},
		{
			Path:        "/v1/mse/records/recalculate",
			Method:      http.MethodPost,
			Handler:     RecalculateRecord(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrFieldOfficer()},
		},
		{
			Path:        "/v1/mse/records/:id",
			Method:      http.MethodPut,
			Handler:     UpdateRecord(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrFieldOfficer()},
		},
		{
			Path:        "/v1/mse/records/:id/comparison",
			Method:      http.MethodPut,
			Handler:     AttachComparison(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrFieldOfficer()},
		},
	}
}

func Export(service monitoring.Monitorer, snapshots monitoring.SnapshotSource) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/mse/export/excel",
			Method:      http.MethodGet,
			Handler:     ExportExcel(snapshots),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/mse/monitoring/:id/export/pdf",
			Method:      http.MethodGet,
			Handler:     ExportMonitoringPDF(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Datasets(service prepost.DatasetManager) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/datasets",
			Method:      http.MethodGet,
			Handler:     ListDatasets(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/datasets",
			Method:      http.MethodPost,
			Handler:     CreateDataset(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrFieldOfficer()},
		},
		{
			Path:        "/v1/datasets/:id",
			Method:      http.MethodGet,
			Handler:     GetDataset(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/datasets/:id",
			Method:      http.MethodPut,
			Handler:     UpdateDataset(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrFieldOfficer()},
		},
		{
			Path:        "/v1/datasets/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteDataset(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrFieldOfficer()},
		},
	}
}

func ActivityLogs(logRepo repository.ActivityLogRepository) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/logs",
			Method:      http.MethodGet,
			Handler:     ListActivityLogs(logRepo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
