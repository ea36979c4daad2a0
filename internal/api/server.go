package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MikeSquared-Agency/parley/internal/config"
	"github.com/MikeSquared-Agency/parley/internal/conversations"
)

// ConversationLoader returns the current Conversation Store.
type ConversationLoader interface {
	Load(ctx context.Context) (conversations.Store, error)
}

// Pages renders the main page and serves its assets.
type Pages interface {
	RenderIndex(w io.Writer) error
	Static() http.Handler
}

type Server struct {
	router     *chi.Mux
	httpServer *http.Server
	listener   net.Listener
	loader     ConversationLoader
	pages      Pages
	logger     *slog.Logger
}

func NewServer(cfg config.Config, loader ConversationLoader, pages Pages, logger *slog.Logger) *Server {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	s := &Server{
		router: router,
		loader: loader,
		pages:  pages,
		logger: logger,
	}
	s.httpServer = &http.Server{
		Addr:              net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	router.Get("/", s.index)
	router.Get("/health", s.health)
	router.Get("/api/conversations", s.listConversations)
	router.Handle("/static/*", http.StripPrefix("/static/", pages.Static()))

	return s
}

// Addr returns the bound address once Listen has succeeded, the configured
// address before that.
func (s *Server) Addr() string {
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.httpServer.Addr
}

// Listen binds the configured address without serving yet.
func (s *Server) Listen() error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.httpServer.Addr, err)
	}
	s.listener = ln
	return nil
}

// Start serves on the listener, binding first if Listen was not called. It
// blocks until the server stops and returns nil after Shutdown.
func (s *Server) Start() error {
	if s.listener == nil {
		if err := s.Listen(); err != nil {
			return err
		}
	}
	s.logger.Info("API server starting", "addr", s.Addr())
	if err := s.httpServer.Serve(s.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.pages.RenderIndex(w); err != nil {
		s.logger.ErrorContext(r.Context(), "failed to render index", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.Encode(v)
}
