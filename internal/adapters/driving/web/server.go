// Package web serves the search & ask page over HTTP.
//
// The page is rendered on the server with html/template; every value that
// comes from the backend is escaped for its context. Forms post back to the
// server, which runs the operation through the page controller and renders
// the resulting page state.
package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/custodia-labs/papers/internal/core/ports/driving"
	"github.com/custodia-labs/papers/internal/logger"
)

// Config holds the HTTP settings of the page server.
type Config struct {
	// Addr is the listen address, host:port.
	Addr string

	// RateLimit is the sustained number of operations per second.
	// Zero or less disables rate limiting.
	RateLimit float64

	// RateBurst is the number of operations allowed at once.
	RateBurst int
}

// form holds the last submitted values so the page re-renders them.
type form struct {
	query      string
	maxResults string
	question   string
}

// Server is the web page server.
type Server struct {
	ports *Ports

	mu      sync.Mutex
	config  Config
	limiter *limiter
	page    driving.PageController
	health  driving.HealthService
	form    form
}

// NewServer creates a page server. It builds the first page controller and
// health service right away so configuration errors surface before listening.
func NewServer(ports *Ports, cfg Config) (*Server, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("validating ports: %w", err)
	}

	page, err := ports.NewPage()
	if err != nil {
		return nil, fmt.Errorf("creating page: %w", err)
	}

	health, err := ports.health()
	if err != nil {
		return nil, fmt.Errorf("creating health service: %w", err)
	}

	return &Server{
		ports:   ports,
		config:  cfg,
		limiter: newLimiter(cfg.RateLimit, cfg.RateBurst),
		page:    page,
		health:  health,
	}, nil
}

// Reload rebuilds the page controller and the health service from the
// current configuration and applies a changed rate limit. The previous page
// state is dropped. On error nothing is replaced.
func (s *Server) Reload() error {
	page, err := s.ports.NewPage()
	if err != nil {
		return fmt.Errorf("reloading page: %w", err)
	}
	health, err := s.ports.health()
	if err != nil {
		return fmt.Errorf("reloading health service: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	perSecond, burst := s.ports.rate(s.config)
	if perSecond != s.config.RateLimit || burst != s.config.RateBurst {
		s.config.RateLimit, s.config.RateBurst = perSecond, burst
		s.limiter = newLimiter(perSecond, burst)
		logger.Debug("rate limit now %g/s burst %d", perSecond, burst)
	}
	s.page = page
	s.health = health
	s.form = form{}
	logger.Info("page reloaded from configuration")
	return nil
}

// Handler returns the router serving the page.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleIndex)
	r.Get("/healthz", s.handleHealthz)
	r.Get("/api/health", s.handleBackendHealth)

	r.Group(func(r chi.Router) {
		r.Use(s.rateLimit)
		r.Post("/search", s.handleSearch)
		r.Post("/ask", s.handleAsk)
	})

	return r
}

// Run serves the page on the configured address.
// It blocks until the context is cancelled or an error occurs.
func (s *Server) Run(ctx context.Context) error {
	addr := s.addr()
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		httpServer.Shutdown(shutdownCtx) //nolint:errcheck
	}()

	logger.Info("serving page on http://%s", addr)
	err := httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// current returns the page controller and the remembered form values.
func (s *Server) current() (driving.PageController, form) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.page, s.form
}

func (s *Server) addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.config.Addr
}

// allow takes a token from the current rate limiter.
func (s *Server) allow() bool {
	s.mu.Lock()
	l := s.limiter
	s.mu.Unlock()
	return l.allow()
}

func (s *Server) currentHealth() driving.HealthService {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.health
}

func (s *Server) remember(update func(f *form)) driving.PageController {
	s.mu.Lock()
	defer s.mu.Unlock()
	update(&s.form)
	return s.page
}
