package http

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"

	"catalog/internal/config"
	"catalog/internal/http/apierr"
	"catalog/internal/http/metric"
	"catalog/internal/http/middleware"
	"catalog/internal/http/swagger"
	"catalog/internal/service"
)

var tracer = otel.Tracer("internal/http")

const greeting = "Welcome to the Product Catalog API"

// Service represents the HTTP service.
type Service struct {
	cfg     config.HTTP
	auth    config.Auth
	logger  *slog.Logger
	metrics *metric.Metrics

	productSvc service.ProductService
}

type CleanupFunc func(ctx context.Context) error

func New(
	cfg config.HTTP,
	auth config.Auth,
	log *slog.Logger,
	productSvc service.ProductService,
) *Service {
	return &Service{
		cfg:        cfg,
		auth:       auth,
		logger:     log.With(slog.String("service", "http")),
		metrics:    metric.New(),
		productSvc: productSvc,
	}
}

func (s *Service) Run(ctx context.Context) (CleanupFunc, error) {
	return s.RunWithServer(ctx, s.Router())
}

func (s *Service) RunWithServer(ctx context.Context, handler http.Handler) (CleanupFunc, error) {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.cfg.Port),
		Handler:           handler,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 16, // 64 KB
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			panic(err)
		}
	}()

	return func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		return srv.Shutdown(ctx)
	}, nil
}

// Router assembles the middleware pipeline and routes. Exposed separately
// from Run so tests can drive the full stack through httptest.
func (s *Service) Router() http.Handler {
	r := chi.NewRouter()
	s.registerMiddlewares(r)

	if s.cfg.Swagger {
		swagger.Register(r)
	}

	s.registerHandlers(r)

	return r
}

func (s *Service) registerMiddlewares(r chi.Router) {
	r.Use(
		middleware.Recoverer(s.logger),
		middleware.Trace(tracer),
		middleware.Metrics(s.metrics),
		middleware.CorrelationID(),
		middleware.Cors(),
		middleware.Logging(s.logger),
	)
}

func (s *Service) registerHandlers(r chi.Router) {
	h := newProductHandler(s.logger, s.productSvc)

	r.Get("/", s.handleGreeting)

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.APIKeyAuth(s.auth.APIKey, s.handleResponseError))

		r.Get("/products", s.handle(h.listProducts))
		r.Post("/products", s.handle(h.createProduct))
		r.Get("/products/{id}", s.handle(h.getProduct))
		r.Put("/products/{id}", s.handle(h.replaceProduct))
		r.Delete("/products/{id}", s.handle(h.deleteProduct))
	})

	r.Handle(middleware.MetricsPath, promhttp.HandlerFor(s.metrics.Gatherer(), promhttp.HandlerOpts{
		ErrorLog: log.Default(),
	}))
}

// handlerFunc is a route handler that signals failure instead of writing an
// error response itself; the dispatcher below is the single error writer.
type handlerFunc func(w http.ResponseWriter, r *http.Request) error

func (s *Service) handle(fn handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			s.handleResponseError(w, r, err)
		}
	}
}

func (s *Service) handleGreeting(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	//nolint:errcheck
	w.Write([]byte(greeting))
}

func (s *Service) handleResponseError(w http.ResponseWriter, r *http.Request, err error) {
	res := apierr.New(err)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(res.StatusCode)

	logLevel := slog.LevelInfo
	if res.StatusCode >= 500 {
		logLevel = slog.LevelError
	} else if res.StatusCode >= 400 {
		logLevel = slog.LevelWarn
	}
	s.logger.Log(r.Context(), logLevel, "http response error", slog.Any("error", err))

	if err := json.NewEncoder(w).Encode(res); err != nil {
		s.logger.ErrorContext(r.Context(), "error encoding error response",
			slog.Any("error", err))
	}
}
