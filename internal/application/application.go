package application

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/psds-microservice/office-manager/internal/assistant"
	"github.com/psds-microservice/office-manager/internal/config"
	"github.com/psds-microservice/office-manager/internal/database"
	"github.com/psds-microservice/office-manager/internal/handler"
	"github.com/psds-microservice/office-manager/internal/metrics"
	"github.com/psds-microservice/office-manager/internal/router"
	"github.com/psds-microservice/office-manager/internal/service"
	"gorm.io/gorm"
)

// NewHandler wires services, handlers and the router over db.
// The store handle and the responder are passed in so tests get isolated instances.
func NewHandler(db *gorm.DB, responder assistant.Responder, reg *prometheus.Registry, rec metrics.Recorder, log *slog.Logger) http.Handler {
	tickets := service.NewTicketService(db)
	tasks := service.NewTaskService(db)
	leads := service.NewLeadService(db)
	users := service.NewUserService(db)
	reports := service.NewReportService(tasks, tickets, leads)

	return router.New(router.Deps{
		AI:       handler.NewAIHandler(responder, log),
		Auth:     handler.NewAuthHandler(users, log),
		Tickets:  handler.NewTicketHandler(tickets, rec, log),
		Tasks:    handler.NewTaskHandler(tasks, rec, log),
		Leads:    handler.NewLeadHandler(leads, rec, log),
		Reports:  handler.NewReportHandler(reports, log),
		Tools:    handler.NewToolsHandler(log),
		Ping:     func(ctx context.Context) error { return database.Ping(ctx, db) },
		Metrics:  metrics.Handler(reg),
		Recorder: rec,
		Log:      log,
	})
}

// API приложение: HTTP-сервер поверх хранилища.
type API struct {
	cfg     *config.Config
	db      *gorm.DB
	httpSrv *http.Server
	log     *slog.Logger
}

// NewAPI opens the database, creates the schema and seed, and builds the server.
func NewAPI(ctx context.Context, cfg *config.Config, log *slog.Logger) (*API, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	db, err := database.Open(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("database: %w", err)
	}
	if err := database.Init(ctx, db, log); err != nil {
		_ = database.Close(db)
		return nil, fmt.Errorf("database init: %w", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	rec := metrics.NewCollector(reg)

	responder := assistant.NewClient(assistant.Options{
		APIKey:  cfg.OpenAI.APIKey,
		BaseURL: cfg.OpenAI.BaseURL,
		Model:   cfg.OpenAI.Model,
		Timeout: cfg.OpenAI.Timeout,
	}, log, rec)
	if cfg.OpenAI.APIKey == "" {
		log.Info("OPENAI_API_KEY not set, text responses use the built-in fallback")
	}

	httpSrv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           NewHandler(db, responder, reg, rec, log),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	return &API{cfg: cfg, db: db, httpSrv: httpSrv, log: log}, nil
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func (a *API) Run(ctx context.Context) error {
	host := a.cfg.AppHost
	if host == "0.0.0.0" {
		host = "localhost"
	}
	base := "http://" + host + ":" + a.cfg.HTTPPort
	a.log.Info("HTTP server listening", "addr", a.httpSrv.Addr)
	a.log.Info("endpoints", "swagger", base+"/swagger", "health", base+"/health", "metrics", base+"/metrics")

	errCh := make(chan error, 1)
	go func() {
		if err := a.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		_ = database.Close(a.db)
		if err != nil {
			return fmt.Errorf("http: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := a.httpSrv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	if err := database.Close(a.db); err != nil {
		return fmt.Errorf("database close: %w", err)
	}
	a.log.Info("server stopped")
	return nil
}
