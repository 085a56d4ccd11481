// Package app contains the application setup for OrderDesk.
package app

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/omnomnom-foods/orderdesk/internal/config"
	"github.com/omnomnom-foods/orderdesk/internal/notify"
	"github.com/omnomnom-foods/orderdesk/internal/service"
	"github.com/omnomnom-foods/orderdesk/internal/store"
	"github.com/omnomnom-foods/orderdesk/internal/transport/web"
	"github.com/omnomnom-foods/orderdesk/pkg/server"
)

type Dependencies struct {
	OrderService service.OrderService
	Renderer     web.Renderer
	Logger       *slog.Logger
}

func SetupDependencies(dbPool *pgxpool.Pool, cfg *config.Config, logger *slog.Logger) (*Dependencies, error) {
	renderer, err := web.NewTemplateRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to set up renderer: %w", err)
	}

	dispatcher := notify.NewMessageBirdDispatcher(cfg.SMS.AccessKey, logger)
	orderService := service.NewService(store.NewPgStore(dbPool), dispatcher, cfg.SMS.Originator)

	return &Dependencies{
		OrderService: orderService,
		Renderer:     renderer,
		Logger:       logger,
	}, nil
}

// SetupHttpHandler initializes the HTTP routes for the OrderDesk application.
// Used by E2E tests to set up the handler without binding a listener.
func SetupHttpHandler(deps *Dependencies) http.Handler {
	mux := server.NewChiRouter(deps.Logger)
	wireRoutes(mux, deps)
	return mux
}

// wireRoutes sets up the HTTP routes for the OrderDesk application.
func wireRoutes(mux *chi.Mux, deps *Dependencies) {
	handler := web.NewHandler(deps.OrderService, deps.Renderer, deps.Logger)
	handler.RegisterRoutes(mux)
}

// SetupHttpServer creates and configures an HTTP server for the OrderDesk application.
func SetupHttpServer(deps *Dependencies, cfg *config.Config) *http.Server {
	mux := SetupHttpHandler(deps)

	httpCfg := server.HTTPConfig{
		Port:           cfg.HTTPServer.Port,
		MaxHeaderBytes: cfg.HTTPServer.MaxHeaderBytes,
		ReadTimeout:    cfg.HTTPServer.Timeout.Read,
		WriteTimeout:   cfg.HTTPServer.Timeout.Write,
		IdleTimeout:    cfg.HTTPServer.Timeout.Idle,
		ReadHeader:     cfg.HTTPServer.Timeout.ReadHeader,
	}

	return server.NewHTTPServer(httpCfg, mux)
}
