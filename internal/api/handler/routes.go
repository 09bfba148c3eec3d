package handler

import (
	"net/http"

	"github.com/vfg2006/sales-analytics-api/internal/api/handler/router"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/analyzing"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/exporting"
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
			Path:    "/v1/token",
			Method:  http.MethodPost,
			Handler: IssueToken(service),
		},
	}
}

func Dataset(service analyzing.Analyzer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dataset/info",
			Method:  http.MethodGet,
			Handler: GetDatasetInfo(service),
		},
		{
			Path:    "/v1/dataset/dimensions",
			Method:  http.MethodGet,
			Handler: GetDatasetDimensions(service),
		},
	}
}

func Dashboard(service analyzing.Analyzer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard",
			Method:  http.MethodPost,
			Handler: ComputeDashboard(service),
		},
		{
			Path:    "/v1/dashboard/current",
			Method:  http.MethodGet,
			Handler: GetCurrentDashboard(service),
		},
	}
}

func Exports(analyzer analyzing.Analyzer, exporter exporting.Exporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/exports/csv",
			Method:  http.MethodPost,
			Handler: ExportCSV(analyzer, exporter),
		},
		{
			Path:    "/v1/exports/workbook",
			Method:  http.MethodPost,
			Handler: ExportWorkbook(analyzer, exporter),
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
