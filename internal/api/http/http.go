package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/render"

	"github.com/Vaishnavi639/DailyDashboard/internal/dependency"
	"github.com/Vaishnavi639/DailyDashboard/internal/report"
)

// Config is the configuration for the http server
type Config struct {
	Port           string   `mapstructure:"port"`
	Address        string   `mapstructure:"address"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Server is the http server
type Server struct {
	hs       *http.Server
	c        *Config
	svc      *report.Service
	repo     dependency.Repository
	contacts dependency.Contacts
	done     chan struct{}
}

// New creates a new server
func New(config *Config, svc *report.Service, repo dependency.Repository, contacts dependency.Contacts) *Server {
	return &Server{
		c:        config,
		svc:      svc,
		repo:     repo,
		contacts: contacts,
		done:     make(chan struct{}),
	}
}

// Done returns a channel that is closed when the http server exits.
func (s *Server) Done() <-chan struct{} {
	return s.done
}

func (s *Server) router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(render.SetContentType(render.ContentTypeJSON))

	allowedOrigins := s.c.AllowedOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{http.MethodHead, http.MethodGet, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
	}))

	r.Get("/", s.handleRoot)
	r.Route("/api", func(r chi.Router) {
		r.Get("/daily-metrics", s.handleDailyMetrics)
		r.Get("/daily-orders", s.handleDailyOrders)
		r.Get("/weekly-flyer-performance", s.handleWeeklyFlyerPerformance)
		r.Get("/debug-templates", s.handleDebugTemplates)
		r.Get("/test-channel-mapping", s.handleTestChannelMapping)
		r.Get("/health", s.handleHealth)
	})

	return r
}

// Start starts the server. It returns once the listener goroutine is
// running; Done reports when the server exits.
func (s *Server) Start(ctx context.Context) error {
	listenerAddr := fmt.Sprintf("%s:%s", s.c.Address, s.c.Port)
	s.hs = &http.Server{
		Addr:    listenerAddr,
		Handler: s.router(),
	}

	go func() {
		slog.Default().InfoContext(ctx, fmt.Sprintf("daily-dashboard new listener on: http://%v", listenerAddr))
		err := s.hs.ListenAndServe()
		if err == http.ErrServerClosed {
			slog.Default().InfoContext(ctx, "http server returned")
		} else {
			slog.Default().ErrorContext(ctx, "http server exited with an error",
				slog.String("err", err.Error()),
			)
		}
		close(s.done)
	}()

	return nil
}

// Stop shuts the server down gracefully.
func (s *Server) Stop(ctx context.Context) error {
	if s.hs == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return s.hs.Shutdown(ctx)
}
