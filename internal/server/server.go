package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/iwvelando/quickcalc/pkg/calc"
	"github.com/iwvelando/quickcalc/pkg/validation"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// RequestIDHeader carries the per-request correlation ID.
const RequestIDHeader = "X-Request-ID"

// maxRequestIDLength caps client-supplied request IDs; a UUID is 36.
const maxRequestIDLength = 64

type requestIDKey struct{}

// routes bounds the path label on the latency histogram.
var routes = map[string]bool{
	"/api/tip":        true,
	"/api/discount":   true,
	"/api/percentage": true,
	"/api/bmi":        true,
	"/api/version":    true,
	"/healthz":        true,
	"/metrics":        true,
}

type handler struct {
	logger         *zap.Logger
	maxRequestSize int64
	defaults       requestDefaults
	version        string
	metrics        *metrics
}

// NewHandler constructs the HTTP handler that serves the calculator API.
// cfg supplies the body limit and the defaults for omitted request fields;
// nil means DefaultConfig.
func NewHandler(logger *zap.Logger, cfg *Config, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{
		logger:         logger,
		maxRequestSize: cfg.RequestSizeBytes(),
		defaults:       cfg.requestDefaults(),
		version:        trimmedVersion,
		metrics:        newMetrics(),
	}

	mux := http.NewServeMux()

	mux.HandleFunc("/api/tip", h.handleTip)
	mux.HandleFunc("/api/discount", h.handleDiscount)
	mux.HandleFunc("/api/percentage", h.handlePercentage)
	mux.HandleFunc("/api/bmi", h.handleBMI)

	mux.HandleFunc("/api/version", h.handleVersion)
	mux.HandleFunc("/healthz", h.handleHealth)
	mux.Handle("/metrics", promhttp.HandlerFor(h.metrics.registry, promhttp.HandlerOpts{}))

	return h.withRequestID(mux)
}

func (h *handler) handleTip(w http.ResponseWriter, r *http.Request) {
	var req calc.TipRequest
	if !h.decode(w, r, &req, "server.handleTip") {
		return
	}
	if req.TipPercent == nil {
		req.TipPercent = h.defaults.tipPercent
	}
	if req.PeopleCount == nil {
		req.PeopleCount = h.defaults.people
	}
	h.respondResult(w, r, "tip", req.Compute())
}

func (h *handler) handleDiscount(w http.ResponseWriter, r *http.Request) {
	var req calc.DiscountRequest
	if !h.decode(w, r, &req, "server.handleDiscount") {
		return
	}
	h.respondResult(w, r, "discount", req.Compute())
}

func (h *handler) handlePercentage(w http.ResponseWriter, r *http.Request) {
	const op = "server.handlePercentage"
	var req calc.PercentageRequest
	if !h.decode(w, r, &req, op) {
		return
	}

	mode, err := validation.ValidateMode(string(req.Mode))
	if err != nil {
		h.respondErrorWithOp(w, r, http.StatusBadRequest, err.Error(), op)
		return
	}
	req.Mode = mode

	result := req.Compute()
	if !result.Defined {
		h.metrics.undefined.WithLabelValues(string(mode)).Inc()
	}
	h.respondResult(w, r, "percentage", result)
}

func (h *handler) handleBMI(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleBMI"
	var req calc.BMIRequest
	if !h.decode(w, r, &req, op) {
		return
	}

	if req.UnitSystem == "" {
		req.UnitSystem = h.defaults.units
	} else {
		units, err := validation.ValidateUnitSystem(string(req.UnitSystem))
		if err != nil {
			h.respondErrorWithOp(w, r, http.StatusBadRequest, err.Error(), op)
			return
		}
		req.UnitSystem = units
	}

	h.respondResult(w, r, "bmi", req.Compute())
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// decode reads a JSON request body into dst. It writes the error response
// and returns false when the request cannot be used.
func (h *handler) decode(w http.ResponseWriter, r *http.Request, dst interface{}, op string) bool {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return false
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxRequestSize)
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	if err := dec.Decode(dst); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondErrorWithOp(w, r, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request exceeds limit of %d bytes", h.maxRequestSize), op)
			return false
		}
		h.respondErrorWithOp(w, r, http.StatusBadRequest, fmt.Sprintf("failed to decode request: %v", err), op)
		return false
	}
	return true
}

func (h *handler) respondResult(w http.ResponseWriter, r *http.Request, kind string, result interface{}) {
	h.metrics.calculations.WithLabelValues(kind).Inc()
	h.requestLogger(r).Debug("calculation served",
		zap.String("op", "server.respondResult"),
		zap.String("kind", kind),
		zap.Any("result", result),
	)
	h.writeJSON(w, http.StatusOK, result)
}

func (h *handler) respondErrorWithOp(w http.ResponseWriter, r *http.Request, status int, msg string, op string) {
	h.requestLogger(r).Error("calculation request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}

func (h *handler) requestLogger(r *http.Request) *zap.Logger {
	if id, ok := r.Context().Value(requestIDKey{}).(string); ok {
		return h.logger.With(zap.String("request_id", id))
	}
	return h.logger
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(status int) {
	s.status = status
	s.ResponseWriter.WriteHeader(status)
}

// withRequestID tags every request with an ID, records its latency and logs
// the outcome.
func (h *handler) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		id := strings.TrimSpace(r.Header.Get(RequestIDHeader))
		if !validRequestID(id) {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)
		r = r.WithContext(context.WithValue(r.Context(), requestIDKey{}, id))

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		elapsed := time.Since(start)
		path := r.URL.Path
		if !routes[path] {
			path = "other"
		}
		h.metrics.duration.WithLabelValues(path).Observe(elapsed.Seconds())
		h.logger.Info("request handled",
			zap.String("op", "server.withRequestID"),
			zap.String("request_id", id),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", elapsed),
		)
	})
}

// validRequestID accepts short IDs made of letters, digits, '.', '_' and '-'.
func validRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLength {
		return false
	}
	for _, c := range id {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '.', c == '_', c == '-':
		default:
			return false
		}
	}
	return true
}
