package handler

import (
	"net/http"

	"github.com/vfg2006/seller-metrics-api/infrastructure/ingestion"
	"github.com/vfg2006/seller-metrics-api/internal/api/handler/router"
	"github.com/vfg2006/seller-metrics-api/internal/usecases/reporting"
	"github.com/vfg2006/seller-metrics-api/pkg/metrics"
	"github.com/vfg2006/seller-metrics-api/pkg/middleware"
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

func Metrics() []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: metrics.Handler(),
		},
	}
}

// Datasets registra as rotas de consulta e upload; uploadMiddlewares rodam depois da checagem de Content-Type
func Datasets(
	service reporting.SnapshotService,
	reader ingestion.TableReader,
	maxUploadSize int64,
	uploadMiddlewares ...func(http.Handler) http.Handler,
) []router.Route {
	upload := append([]func(http.Handler) http.Handler{
		middleware.RequireContentType("multipart/form-data"),
	}, uploadMiddlewares...)

	return []router.Route{
		{
			Path:    "/v1/datasets",
			Method:  http.MethodGet,
			Handler: GetDatasets(service),
		},
		{
			Path:        "/v1/datasets",
			Method:      http.MethodPost,
			Handler:     UploadDatasets(service, reader, maxUploadSize),
			Middlewares: upload,
		},
	}
}

func Reports(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/reports/attrition",
			Method:  http.MethodGet,
			Handler: GetAttritionReport(service),
		},
		{
			Path:    "/v1/reports/efficiency",
			Method:  http.MethodGet,
			Handler: GetEfficiencyReport(service),
		},
		{
			Path:    "/v1/reports/delta",
			Method:  http.MethodGet,
			Handler: GetDeltaReport(service),
		},
		{
			Path:    "/v1/reports/summary",
			Method:  http.MethodGet,
			Handler: GetDragSummary(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
