package server

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pulse-ui/pulse/internal/config"
	"github.com/pulse-ui/pulse/pkg/dom"
	"github.com/pulse-ui/pulse/pkg/mount"
	"github.com/pulse-ui/pulse/pkg/scope"
)

// Server hosts Pulse sessions over HTTP and WebSocket.
type Server struct {
	cfg      *config.Config
	view     View
	sessions *SessionManager
	upgrader websocket.Upgrader
	logger   *slog.Logger
	metrics  *metrics
	tracer   tracer

	readTimeout time.Duration
	httpServer  *http.Server
	assets      http.Handler
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) { s.logger = logger }
}

// WithAssetHandler mounts a handler under /_pulse/assets/.
func WithAssetHandler(h http.Handler) Option {
	return func(s *Server) { s.assets = h }
}

// New creates a server that renders view for each session.
func New(cfg *config.Config, view View, opts ...Option) *Server {
	if cfg == nil {
		cfg = config.New()
	}

	s := &Server{
		cfg:     cfg,
		view:    view,
		logger:  slog.Default().With("component", "server"),
		metrics: sharedMetrics(),
		tracer:  newTracer(cfg.Tracing.Enabled),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.readTimeout = 60 * time.Second
	if d, err := time.ParseDuration(cfg.Server.ReadTimeout); err == nil {
		s.readTimeout = d
	}

	s.sessions = newSessionManager(cfg.ResumeWindow(), cfg.Session.MaxSessions, s.logger, s.metrics)
	s.upgrader = websocket.Upgrader{
		ReadBufferSize:  4096,
		WriteBufferSize: 4096,
		CheckOrigin:     s.checkOrigin,
	}
	return s
}

// Sessions returns the session manager.
func (s *Server) Sessions() *SessionManager {
	return s.sessions
}

// checkOrigin accepts same-host origins plus anything listed in
// server.allowedOrigins.
func (s *Server) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	if strings.EqualFold(u.Host, r.Host) {
		return true
	}
	for _, allowed := range s.cfg.Server.AllowedOrigins {
		if allowed == "*" || strings.EqualFold(allowed, origin) {
			return true
		}
	}
	return false
}

// Handler returns the full route tree for mounting in external routers.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Get("/_pulse/ws", s.handleWebSocket)
	r.Get("/_pulse/client.js", s.serveClient)
	if s.assets != nil {
		r.Mount("/_pulse/assets", http.StripPrefix("/_pulse/assets", s.assets))
	}
	if s.cfg.Metrics.Enabled {
		r.Handle(s.cfg.Metrics.Path, promhttp.Handler())
	}
	if s.cfg.Static.Dir != "" {
		fs := http.FileServer(http.Dir(s.cfg.Static.Dir))
		r.Handle(s.cfg.Static.Prefix+"*", http.StripPrefix(s.cfg.Static.Prefix, fs))
	}
	r.Get("/*", s.handlePage)
	return r
}

// handlePage renders the view once into a throwaway document and serves
// the HTML. The live session starts when the client connects over
// WebSocket and replaces this placeholder render.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	html, err := s.renderPage()
	if err != nil {
		s.logger.Error("page render failed", "path", r.URL.Path, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(html))
}

func (s *Server) renderPage() (string, error) {
	doc := dom.NewDocument()
	root := doc.CreateElement("div")
	root.SetAttribute("id", "app")

	sc := scope.New()
	defer sc.Close()

	if err := mount.Run(doc, root, sc, mount.Component(s.view)); err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	if s.cfg.Name != "" {
		b.WriteString("<title>")
		b.WriteString(s.cfg.Name)
		b.WriteString("</title>\n")
	}
	b.WriteString("</head>\n<body>\n")
	b.WriteString(dom.OuterHTML(root))
	b.WriteString("\n<script src=\"/_pulse/client.js\" defer></script>\n</body>\n</html>\n")
	return b.String(), nil
}

// Start runs the HTTP server until the context is cancelled or a
// SIGINT/SIGTERM arrives, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:              s.cfg.Addr(),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", s.cfg.Addr())
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sig)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	case <-sig:
		s.logger.Info("shutdown signal received")
	}
	return s.Shutdown()
}

// Shutdown closes every session and stops the HTTP server.
func (s *Server) Shutdown() error {
	s.sessions.Shutdown()

	if s.httpServer == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}
