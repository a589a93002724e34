// Package server exposes the phonetic encoders over HTTP: a health
// probe, an encode endpoint, and a name-match endpoint. The encoders
// themselves are pure functions, so the handler carries no state
// beyond its options and every request is independent.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"github.com/sbromberger/arcoder/encoder"
	"github.com/sbromberger/arcoder/internal/config"
	"github.com/sbromberger/arcoder/normalize"
)

// ParseLogLevel converts a case-insensitive level string to slog.Level.
// An empty string returns slog.LevelInfo. Unknown strings return an error.
func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q (want debug|info|warn|error)", s)
	}
}

// ---------------------------------------------------------------------------
// Functional options
// ---------------------------------------------------------------------------

type options struct {
	defaultEncoder string
	foldMarks      bool
	maxNameBytes   int
	logger         *slog.Logger
}

func defaultOptions() options {
	return options{
		defaultEncoder: "arcoder",
		foldMarks:      false,
		maxNameBytes:   1024,
		logger:         slog.Default(),
	}
}

// Option configures the HTTP handler.
type Option func(*options)

// WithDefaultEncoder sets the encoder used when a request names none.
func WithDefaultEncoder(name string) Option {
	return func(o *options) { o.defaultEncoder = name }
}

// WithFoldMarks strips combining marks from names before encoding.
func WithFoldMarks(fold bool) Option {
	return func(o *options) { o.foldMarks = fold }
}

// WithMaxNameBytes sets the maximum accepted name length in bytes.
func WithMaxNameBytes(n int) Option {
	return func(o *options) { o.maxNameBytes = n }
}

// WithLogger sets the slog.Logger used for request logging.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// ---------------------------------------------------------------------------
// handler
// ---------------------------------------------------------------------------

// handler holds the options needed to serve HTTP requests.
type handler struct {
	opts options
	log  *slog.Logger
}

// NewHandler returns an http.Handler serving GET /health,
// POST /v1/encode, and POST /v1/match.
func NewHandler(optFns ...Option) http.Handler {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	h := &handler{opts: opts, log: opts.logger}

	mux := http.NewServeMux()
	mux.HandleFunc("/health", h.handleHealth)
	mux.HandleFunc("/v1/encode", h.handleEncode)
	mux.HandleFunc("/v1/match", h.handleMatch)
	return mux
}

func buildVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func (h *handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":   "ok",
		"version":  buildVersion(),
		"encoders": encoder.Names(),
	})
}

type encodeRequest struct {
	Name      string `json:"name"`
	Encoder   string `json:"encoder,omitempty"`
	FoldMarks *bool  `json:"fold_marks,omitempty"`
}

type encodeResponse struct {
	Encoder string   `json:"encoder"`
	Name    string   `json:"name"`
	Codes   []string `json:"codes"`
}

func (h *handler) handleEncode(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req encodeRequest
	if !h.decode(w, r, &req) {
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name field is required")
		return
	}
	if len(req.Name) > h.opts.maxNameBytes {
		writeError(w, http.StatusRequestEntityTooLarge,
			fmt.Sprintf("name exceeds maximum size of %d bytes", h.opts.maxNameBytes))
		return
	}

	encName, enc, ok := h.resolveEncoder(w, req.Encoder)
	if !ok {
		return
	}

	start := time.Now()
	codes := enc.Encode(h.prepare(req.Name, req.FoldMarks))

	h.log.InfoContext(r.Context(), "name encoded",
		slog.String("encoder", encName),
		slog.Int("name_len", len(req.Name)),
		slog.Int("codes", len(codes)),
		slog.Int64("duration_us", time.Since(start).Microseconds()),
	)

	writeJSON(w, http.StatusOK, encodeResponse{
		Encoder: encName,
		Name:    req.Name,
		Codes:   codes,
	})
}

type matchRequest struct {
	A         string `json:"a"`
	B         string `json:"b"`
	Encoder   string `json:"encoder,omitempty"`
	FoldMarks *bool  `json:"fold_marks,omitempty"`
}

type matchResponse struct {
	Encoder string `json:"encoder"`
	A       string `json:"a"`
	B       string `json:"b"`
	Match   bool   `json:"match"`
}

func (h *handler) handleMatch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req matchRequest
	if !h.decode(w, r, &req) {
		return
	}
	if req.A == "" || req.B == "" {
		writeError(w, http.StatusBadRequest, "a and b fields are required")
		return
	}
	if len(req.A) > h.opts.maxNameBytes || len(req.B) > h.opts.maxNameBytes {
		writeError(w, http.StatusRequestEntityTooLarge,
			fmt.Sprintf("name exceeds maximum size of %d bytes", h.opts.maxNameBytes))
		return
	}

	encName, enc, ok := h.resolveEncoder(w, req.Encoder)
	if !ok {
		return
	}

	start := time.Now()
	match := encoder.Equivalent(enc,
		h.prepare(req.A, req.FoldMarks),
		h.prepare(req.B, req.FoldMarks))

	h.log.InfoContext(r.Context(), "names compared",
		slog.String("encoder", encName),
		slog.Bool("match", match),
		slog.Int64("duration_us", time.Since(start).Microseconds()),
	)

	writeJSON(w, http.StatusOK, matchResponse{
		Encoder: encName,
		A:       req.A,
		B:       req.B,
		Match:   match,
	})
}

// decode parses the JSON request body into v, writing a 400 on failure.
func (h *handler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if r.Body == nil {
		writeError(w, http.StatusBadRequest, "request body is required")
		return false
	}
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return false
	}
	return true
}

// resolveEncoder maps the request's encoder name (or the configured
// default) to an implementation, writing a 400 for unknown names.
func (h *handler) resolveEncoder(w http.ResponseWriter, name string) (string, encoder.Encoder, bool) {
	if name == "" {
		name = h.opts.defaultEncoder
	}
	enc, err := encoder.ByName(name)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return "", nil, false
	}
	return strings.ToLower(name), enc, true
}

// prepare applies the opt-in mark folding before encoding. A request
// field overrides the server-wide setting.
func (h *handler) prepare(name string, fold *bool) string {
	folding := h.opts.foldMarks
	if fold != nil {
		folding = *fold
	}
	if folding {
		return normalize.StripMarks(name)
	}
	return name
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// ---------------------------------------------------------------------------
// Server — wires the handler into net/http.Server with graceful shutdown
// ---------------------------------------------------------------------------

// Server wires the HTTP handler into a net/http.Server.
type Server struct {
	cfg             config.Config
	shutdownTimeout time.Duration
}

func New(cfg config.Config) *Server {
	return &Server{
		cfg:             cfg,
		shutdownTimeout: 10 * time.Second,
	}
}

// WithShutdownTimeout overrides the graceful-shutdown drain period.
func (s *Server) WithShutdownTimeout(d time.Duration) *Server {
	s.shutdownTimeout = d
	return s
}

// Start serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Start(ctx context.Context) error {
	h := NewHandler(
		WithDefaultEncoder(s.cfg.Encoder),
		WithFoldMarks(s.cfg.FoldMarks),
		WithMaxNameBytes(s.cfg.Server.MaxNameBytes),
	)

	httpServer := &http.Server{
		Addr:              s.cfg.Server.ListenAddr,
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return fmt.Errorf("http listen: %w", err)
	}
}
