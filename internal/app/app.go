package app

import (
	"context"
	"database/sql"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"miniapp-studio/internal/config"
	"miniapp-studio/internal/domain"
	"miniapp-studio/internal/handlers"
	"miniapp-studio/internal/metrics"
	"miniapp-studio/internal/session"
)

const gracefulShutdownTimeout = 5 * time.Second

type App struct {
	cfg      *config.Config
	router   chi.Router
	registry *prometheus.Registry
	Env      *handlers.Env
}

// New собирает приложение. db может быть nil — тогда прайс встроенный, настройки только из конфига.
func New(ctx context.Context, cfg *config.Config, db *sql.DB) (*App, error) {
	// 1. Прайс: по умолчанию из кода
	pricing := domain.DefaultPricing()

	if db != nil {
		// 2. Схема + засев прайса, если таблица пустая
		if err := Migrate(ctx, db); err != nil {
			return nil, err
		}

		// 3. Прайс из БД, дальше он не меняется до рестарта
		p, err := loadPricing(ctx, db)
		if err != nil {
			return nil, err
		}
		pricing = p
	}
	if err := pricing.Validate(); err != nil {
		return nil, err
	}

	env := &handlers.Env{
		DB:                 db,
		Pricing:            pricing,
		Landing:            domain.DefaultLanding(cfg.Service.ContactURL),
		Sessions:           session.New(cfg.Service.SessionCapacity, cfg.Service.SessionTTL),
		ContactURL:         cfg.Service.ContactURL,
		TelegramAPIBaseURL: cfg.Telegram.APIBaseURL,
		HTTPClient:         &http.Client{Timeout: 15 * time.Second},
		AdminUser:          cfg.Service.Admin.User,
		AdminPasswordHash:  cfg.Service.Admin.PasswordHash,
		CookieSecure:       cfg.Service.CookieSecure,
	}
	env.SetTelegram(cfg.Telegram.BotToken, cfg.Telegram.ChatID)

	// 4. Настройки бота из БД поверх конфига
	if err := env.LoadSettings(ctx); err != nil {
		return nil, err
	}

	registry := prometheus.NewRegistry()
	metricMiddleware := metrics.NewMiddleware("miniapp_studio")
	collectors := append(metrics.Collectors(), metricMiddleware.Collectors()...)
	collectors = append(collectors, metrics.NewSessionsGauge(env.Sessions.Len))
	for _, c := range collectors {
		if err := registry.Register(c); err != nil {
			return nil, err
		}
	}

	a := &App{
		cfg:      cfg,
		registry: registry,
		Env:      env,
	}
	a.router = a.routes(metricMiddleware)

	zap.S().Named("app").Infow("app initialized",
		"database", db != nil,
		"total_default", pricing.Total(domain.NewSelection()),
	)
	return a, nil
}

func (a *App) Router() http.Handler {
	return a.router
}

// Run слушает адрес из конфига до отмены ctx
func (a *App) Run(ctx context.Context) error {
	listener, err := newListener(a.cfg.Service.Address)
	if err != nil {
		return err
	}
	return a.Serve(ctx, listener)
}

func (a *App) Serve(ctx context.Context, listener net.Listener) error {
	srv := http.Server{Handler: a.router, ReadHeaderTimeout: 10 * time.Second}

	go func() {
		<-ctx.Done()
		zap.S().Named("app").Infof("Shutdown signal received: %s", ctx.Err())
		ctxTimeout, cancel := context.WithTimeout(context.Background(), gracefulShutdownTimeout)
		defer cancel()

		srv.SetKeepAlivesEnabled(false)
		_ = srv.Shutdown(ctxTimeout)
		zap.S().Named("app").Info("server terminated")
	}()

	zap.S().Named("app").Infof("Listening on %s...", listener.Addr().String())
	if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) && !errors.Is(err, net.ErrClosed) {
		return err
	}
	return nil
}

func newListener(address string) (net.Listener, error) {
	if address == "" {
		address = "localhost:0"
	}
	return net.Listen("tcp", address)
}
