// Package http exposes card rendering and translation as a small JSON API.
package http

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ku222/AdaptiveCardBuilder/internal/cardfile"
	"github.com/ku222/AdaptiveCardBuilder/internal/logging"
	"github.com/ku222/AdaptiveCardBuilder/pkg/card"
	"github.com/ku222/AdaptiveCardBuilder/pkg/observability"
	"github.com/ku222/AdaptiveCardBuilder/pkg/ports"
	"github.com/ku222/AdaptiveCardBuilder/pkg/translate"
)

const maxBodyBytes = 1 << 20

// Server handles the card API endpoints.
type Server struct {
	translator ports.Translator
	engine     *translate.Engine
	logger     *slog.Logger
	registry   *prometheus.Registry
}

// Option configures the Server.
type Option func(*Server)

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewHandler creates the HTTP handler. translator may be nil, in which case
// the translate endpoint reports 503.
func NewHandler(translator ports.Translator, opts ...Option) http.Handler {
	s := &Server{
		translator: translator,
		logger:     logging.NewNop(),
		registry:   prometheus.NewRegistry(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.registry.MustRegister(collectors.NewGoCollector())
	if translator != nil {
		metrics := observability.NewMetrics(s.registry)
		s.engine = translate.New(translator,
			translate.WithLogger(s.logger),
			translate.WithMetrics(metrics),
		)
	}

	r := chi.NewRouter()
	r.Get("/healthz", s.health)
	r.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	r.Post("/v1/cards/render", s.render)
	r.Post("/v1/cards/translate", s.translate)
	return r
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

// render builds the posted definition (YAML or JSON) and returns card JSON.
func (s *Server) render(w http.ResponseWriter, r *http.Request) {
	c, ok := s.buildCard(w, r)
	if !ok {
		return
	}
	s.writeCard(w, c)
}

// translate builds the posted definition, translates it into the language
// given by the "to" query parameter, and returns the translated card JSON.
func (s *Server) translate(w http.ResponseWriter, r *http.Request) {
	if s.engine == nil {
		http.Error(w, "no translator configured", http.StatusServiceUnavailable)
		return
	}
	toLang := r.URL.Query().Get("to")
	if toLang == "" {
		http.Error(w, "missing 'to' query parameter", http.StatusBadRequest)
		return
	}

	c, ok := s.buildCard(w, r)
	if !ok {
		return
	}

	if err := s.engine.Apply(r.Context(), c, toLang); err != nil {
		var batchErr *translate.BatchError
		switch {
		case errors.Is(err, translate.ErrUnsupportedLanguage):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.As(err, &batchErr):
			s.logger.Error("translation partially failed", "err", err)
			http.Error(w, err.Error(), http.StatusBadGateway)
		default:
			http.Error(w, fmt.Sprintf("translate error: %v", err), http.StatusInternalServerError)
		}
		return
	}
	s.writeCard(w, c)
}

func (s *Server) buildCard(w http.ResponseWriter, r *http.Request) (*card.Card, bool) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		http.Error(w, "reading request body", http.StatusBadRequest)
		return nil, false
	}
	def, err := cardfile.Parse(body)
	if err != nil {
		http.Error(w, fmt.Sprintf("invalid card definition: %v", err), http.StatusBadRequest)
		return nil, false
	}
	c, err := def.Build()
	if err != nil {
		http.Error(w, fmt.Sprintf("cannot build card: %v", err), http.StatusUnprocessableEntity)
		return nil, false
	}
	return c, true
}

func (s *Server) writeCard(w http.ResponseWriter, c *card.Card) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(c); err != nil {
		s.logger.Error("encoding card response", "err", err)
	}
}
