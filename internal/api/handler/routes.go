package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/growth-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/growth-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/growth-dashboard-api/internal/usecases/loading"
	"github.com/vfg2006/growth-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/growth-dashboard-api/pkg/middleware"
)

// Todas as respostas JSON dos handlers passam pelo json-iterator.
var json = jsoniter.ConfigCompatibleWithStandardLibrary

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
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: CreateUser(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
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
			Method:      http.MethodPut,
			Handler:     UpdateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Metrics(service reporting.SnapshotReporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/metrics/performance",
			Method:      http.MethodGet,
			Handler:     GetPerformanceSnapshot(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func DashboardSessions(sessions loading.Sessioner, reports reporting.SessionReporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/dashboard/sessions",
			Method:      http.MethodPost,
			Handler:     OpenSession(sessions),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/dashboard/sessions/:id/refresh",
			Method:      http.MethodPost,
			Handler:     RefreshSession(sessions),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/dashboard/sessions/:id",
			Method:      http.MethodDelete,
			Handler:     CloseSession(sessions),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/dashboard/sessions/:id/summary",
			Method:      http.MethodGet,
			Handler:     GetSessionSummary(reports),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/dashboard/sessions/:id/growth",
			Method:      http.MethodGet,
			Handler:     GetSessionGrowth(reports),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/dashboard/sessions/:id/customers",
			Method:      http.MethodGet,
			Handler:     GetSessionCustomers(reports),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/dashboard/sessions/:id/customers/export",
			Method:      http.MethodGet,
			Handler:     ExportSessionCustomers(reports),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}
