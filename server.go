package smscodec

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server is the HTTP front end to our encoders, it's what a UI talks to
type Server interface {
	Config() *Config
	Router() chi.Router

	Start() error
	Stop() error
}

// NewServer creates a new Server for the passed in configuration. The server will have to be started
// afterwards, which is when configuration options are checked.
func NewServer(config *Config) Server {
	router := chi.NewRouter()
	router.Use(middleware.StripSlashes)
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Timeout(30 * time.Second))
	router.Use(logRequests)

	s := &server{
		config:    config,
		router:    router,
		waitGroup: &sync.WaitGroup{},
	}

	// wire up our pages
	router.NotFound(s.handle404)
	router.MethodNotAllowed(s.handle405)
	router.Get("/", s.handleIndex)

	s.addRoute(http.MethodPost, "/encode", "encode text to hex", s.handleEncode)
	s.addRoute(http.MethodPost, "/decode", "decode hex to text", s.handleDecode)
	s.addRoute(http.MethodPost, "/analyze", "recommend an encoding and find unsupported characters", s.handleAnalyze)
	s.addRoute(http.MethodPost, "/segments", "plan and split a message into segments", s.handleSegments)
	s.addRoute(http.MethodPost, "/verify/prepare", "build verification requests for a message", s.handlePrepare)

	return s
}

type server struct {
	config *Config

	httpServer *http.Server
	router     *chi.Mux
	routes     []string

	waitGroup *sync.WaitGroup
}

func (s *server) Config() *Config    { return s.config }
func (s *server) Router() chi.Router { return s.router }

// Start starts the Server listening for incoming requests
func (s *server) Start() error {
	if err := s.config.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// configure timeouts on our server
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", s.config.Address, s.config.Port),
		Handler:      s.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	log := slog.With("comp", "server")

	// and start serving HTTP
	s.waitGroup.Add(1)
	go func() {
		defer s.waitGroup.Done()

		err := s.httpServer.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Error("error listening", "state", "stopping", "error", err)
		}
	}()

	log.Info("server listening", "port", s.config.Port, "state", "started", "version", s.config.Version)
	return nil
}

// Stop stops the server, returning only after the listener has shut down
func (s *server) Stop() error {
	log := slog.With("comp", "server")
	log.Info("stopping server", "state", "stopping")

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(context.Background()); err != nil {
			log.Error("error shutting down server", "state", "stopping", "error", err)
		}
	}

	s.waitGroup.Wait()

	log.Info("server stopped", "state", "stopped")
	return nil
}

func (s *server) addRoute(method, pattern, description string, handler http.HandlerFunc) {
	s.router.Method(method, pattern, handler)
	s.routes = append(s.routes, fmt.Sprintf("%-16s - %s %s", pattern, method, description))
}

func (s *server) handleIndex(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	buf.WriteString(splash)
	buf.WriteString(s.config.Version)
	buf.WriteString("\n\n")
	buf.WriteString(strings.Join(s.routes, "\n"))
	buf.WriteString("\n")

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write(buf.Bytes())
}

func (s *server) handle404(w http.ResponseWriter, r *http.Request) {
	writeErrorMessages(w, http.StatusNotFound, "not_found", fmt.Sprintf("not found: %s", r.URL.String()))
}

func (s *server) handle405(w http.ResponseWriter, r *http.Request) {
	writeErrorMessages(w, http.StatusMethodNotAllowed, "method_not_allowed", fmt.Sprintf("method not allowed: %s", r.Method))
}

// logRequests logs every request we handle along with how long it took
func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		slog.Info("request handled",
			"comp", "server",
			"method", r.Method,
			"url", r.URL.String(),
			"status", ww.Status(),
			"elapsed_ms", time.Since(start).Milliseconds(),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

var splash = `
 ____  __  __ ____     ____          _
/ ___||  \/  / ___|   / ___|___   __| | ___  ___
\___ \| |\/| \___ \  | |   / _ \ / _' |/ _ \/ __|
 ___) | |  | |___) | | |__| (_) | (_| |  __/ (__
|____/|_|  |_|____/   \____\___/ \__,_|\___|\___|
`
