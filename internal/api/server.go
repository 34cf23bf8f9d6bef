package api

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/xtding233/ticket-odds/internal/economy"
)

const maxBodyBytes = 1 << 16

// EngineSource hands out the engine to use for one request. *game.Live implements it.
type EngineSource interface {
	Engine() *economy.Engine
	Profile() string
	Version() string
}

// Static serves one fixed engine.
type Static struct {
	E    *economy.Engine
	Name string
}

func (s Static) Engine() *economy.Engine { return s.E }
func (s Static) Profile() string         { return s.Name }
func (s Static) Version() string         { return "" }

// Server handles HTTP requests
type Server struct {
	src EngineSource
	log *slog.Logger
}

// NewServer creates a new API server
func NewServer(src EngineSource, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{src: src, log: log}
}

// Routes sets up the HTTP routes with middleware
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequest)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(10 * time.Second))

	r.Get("/health", s.handleHealth)
	r.Get("/config", s.handleConfig)

	r.Post("/calculate", s.handleCalculate)
	r.Post("/max_failures", s.handleMaxFailures)
	r.Post("/plan", s.handlePlan)

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, errorResp{Err: "method not allowed"})
	})
	return r
}

func (s *Server) logRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.log.Debug("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

type errorResp struct {
	Err string `json:"error"`
}

// writeJSON writes a JSON response with proper headers
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// decode reads a JSON body into dst; an empty body leaves dst untouched.
func decode(w http.ResponseWriter, r *http.Request, dst any) error {
	if r.Body == nil {
		return nil
	}
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(dst)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
