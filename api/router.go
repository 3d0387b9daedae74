package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	appMiddleware "github.com/prasetyowira/qrgen/api/middleware"
	"github.com/prasetyowira/qrgen/constant"
	appLogger "github.com/prasetyowira/qrgen/infrastructure/logger"
)

// QRHandler is the set of endpoints the router dispatches to
type QRHandler interface {
	Index(w http.ResponseWriter, r *http.Request)
	CreateQRCode(w http.ResponseWriter, r *http.Request)
	DownloadQRCode(w http.ResponseWriter, r *http.Request)
}

// Router represents the application router
type Router struct {
	handler QRHandler
	router  *chi.Mux
}

// NewRouter creates a new router
func NewRouter(handler QRHandler) *Router {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(appMiddleware.RequestLogger())
	r.Use(middleware.Recoverer)

	return &Router{
		handler: handler,
		router:  r,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() {
	appLogger.Info(constant.MsgSettingUpRoutes, appLogger.LoggerInfo{
		ContextFunction: constant.CtxRouter,
	})

	// Page
	r.router.Get(constant.RouteIndex, r.handler.Index)
	r.router.Post(constant.RouteIndex, r.handler.Index)

	// API
	r.router.Post(constant.RouteCreateQRCode, r.handler.CreateQRCode)
	r.router.Get(constant.RouteDownloadQRCode, r.handler.DownloadQRCode)

	// Healthcheck
	r.router.Get(constant.RouteHealthcheck, func(w http.ResponseWriter, r *http.Request) {
		appLogger.CtxDebug(r.Context(), constant.MsgHealthcheckRequest, appLogger.LoggerInfo{
			ContextFunction: constant.CtxRouter,
		})

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(constant.MsgHealthy))
	})
}

// ServeHTTP implements the http.Handler interface
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}
