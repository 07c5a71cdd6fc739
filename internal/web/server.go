package web

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"io"
	"net/http"
	"time"

	"charm.land/log/v2"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/abhisek/quizbank/internal/bank"
	"github.com/abhisek/quizbank/internal/form"
	"github.com/abhisek/quizbank/internal/quiz"
)

// CookieName holds the browser's session id.
const CookieName = "quizbank_session"

//go:embed templates/*.html
var templateFS embed.FS

var templateFuncs = template.FuncMap{
	"grade": form.FormatGrade,
}

// Options configures the web host.
type Options struct {
	Bank   *bank.Bank
	Size   int
	Logger *log.Logger
	Rand   quiz.Rand
	// MaxSessions caps the browser sessions kept in memory; 0 selects
	// DefaultMaxSessions.
	MaxSessions int
}

// Server serves the quiz as an HTML form.
type Server struct {
	store  *Store
	tmpl   *template.Template
	logger *log.Logger
}

// NewServer builds a Server over a loaded bank.
func NewServer(opts Options) (*Server, error) {
	if opts.Bank == nil {
		return nil, errors.New("web: bank is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	tmpl, err := template.New("").Funcs(templateFuncs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	stateOpts := []quiz.Option{quiz.WithLogger(logger)}
	if opts.Rand != nil {
		stateOpts = append(stateOpts, quiz.WithRand(opts.Rand))
	}
	store, err := NewStore(opts.Bank, opts.Size, opts.MaxSessions, stateOpts...)
	if err != nil {
		return nil, err
	}
	store.onEvict = func(id string) {
		logger.Debug("browser session evicted", "id", id)
	}
	return &Server{
		store:  store,
		tmpl:   tmpl,
		logger: logger,
	}, nil
}

// Handler returns the routed HTTP handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestLogger(requestLogFormatter{logger: s.logger}))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.healthz)
	r.Get("/", s.index)
	r.Post("/answer", s.answer)
	r.Post("/submit", s.submit)
	r.Post("/reset", s.reset)
	r.Get("/report.json", s.reportJSON)

	return r
}

// Serve listens on addr until ctx is done, then shuts down gracefully.
func Serve(ctx context.Context, addr string, handler http.Handler, logger *log.Logger) error {
	if ctx == nil {
		return errors.New("web: context is nil")
	}
	if addr == "" {
		return errors.New("web: addr is required")
	}

	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()
	logger.Info("listening", "addr", addr)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
		err := <-errCh
		if errors.Is(err, http.ErrServerClosed) || err == nil {
			logger.Info("server stopped")
			return nil
		}
		return err
	}
}
