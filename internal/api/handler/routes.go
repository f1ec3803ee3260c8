package handler

import (
	"net/http"

	"github.com/vfg2006/business-advisor-api/internal/api/handler/router"
	"github.com/vfg2006/business-advisor-api/internal/usecases/analyzing"
	"github.com/vfg2006/business-advisor-api/internal/usecases/authenticating"
	"github.com/vfg2006/business-advisor-api/pkg/middleware"
)

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
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
	}
}

func Accounts(service analyzing.Analyzer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/accounts",
			Method:      http.MethodGet,
			Handler:     ListAccounts(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/accounts",
			Method:      http.MethodPost,
			Handler:     CreateAccount(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/accounts/:id/records",
			Method:      http.MethodPost,
			Handler:     ImportRecords(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Advisory(service analyzing.Analyzer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/advisory",
			Method:      http.MethodPost,
			Handler:     AnalyzeRecords(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/accounts/:id/advisory",
			Method:      http.MethodPost,
			Handler:     AnalyzeAccount(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/accounts/:id/advisory",
			Method:      http.MethodGet,
			Handler:     ListReports(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/accounts/:id/advisory/latest",
			Method:      http.MethodGet,
			Handler:     GetLatestReport(service),
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
			Path:        "/v1/cron/:type/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
