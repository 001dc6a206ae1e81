package app

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"miniapp-studio/internal/handlers"
	"miniapp-studio/internal/log"
	"miniapp-studio/internal/metrics"
)

func (a *App) routes(metricMiddleware *metrics.Middleware) chi.Router {
	env := a.Env

	r := chi.NewRouter()
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		log.Logger(zap.L(), "http"),
		middleware.Recoverer,
		metricMiddleware.Handler,
	)

	// --- служебное ---
	r.Get("/health", env.HandleHealth)
	r.Handle("/metrics", promhttp.HandlerFor(a.registry, promhttp.HandlerOpts{}))
	r.Handle("/static/*", handlers.StaticHandler())

	// --- лендинг и калькулятор без JS ---
	r.Get("/", env.HandleLanding)
	r.Post("/estimator", env.HandleEstimatorForm)

	// --- API ---
	r.Route("/api", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   a.cfg.Service.CORSOrigins,
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Content-Type", "Authorization"},
			AllowCredentials: false,
			MaxAge:           300,
		}))

		r.Get("/pricing", env.HandlePricing)
		r.Get("/estimator", env.HandleEstimator)
		r.Post("/estimator/actions", env.HandleEstimatorAction)
		r.Post("/quote", env.HandleQuote)

		// настройки для администратора (бот для заявок)
		r.With(env.RequireAdmin).HandleFunc("/admin/settings", env.HandleAdminSettings)
	})

	return r
}
