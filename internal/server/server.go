// Package server exposes the local calculation engine over the JSON wire
// contract so remote gateways and the CLI can share one service.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/goliatone/go-vesselcalc/pkg/form"
	"github.com/goliatone/go-vesselcalc/pkg/gateway"
	"github.com/goliatone/go-vesselcalc/pkg/taxonomy"
)

// Route paths relative to the base path.
const (
	RouteCalculate = "/calculate"
	RouteCatalog   = "/catalog"
	RouteOpenAPI   = "/openapi.yaml"
	RouteHealth    = "/healthz"
)

// StatusError carries the HTTP status for a failed request.
type StatusError struct {
	Code int
	Err  error
}

func (e StatusError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return http.StatusText(e.Code)
}

func (e StatusError) Unwrap() error { return e.Err }

func (e StatusError) StatusCode() int {
	if e.Code <= 0 {
		return http.StatusInternalServerError
	}
	return e.Code
}

type catalogResponse struct {
	Data []taxonomy.Entry `json:"data"`
}

// Server routes calculation service requests.
type Server struct {
	router chi.Router
	opts   Options
}

// New builds the service router.
func New(fns ...OptionFn) *Server {
	s := &Server{
		router: chi.NewRouter(),
		opts:   NewOptions(fns...),
	}
	s.routes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// CalculateURL returns the calculate endpoint under baseURL.
func (s *Server) CalculateURL(baseURL string) string {
	return strings.TrimRight(baseURL, "/") + mountPath(s.opts.BasePath, RouteCalculate)
}

func (s *Server) routes() {
	s.router.Use(s.requestLogger)

	s.router.Get(RouteHealth, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	s.router.Route(mountPath(s.opts.BasePath, "/"), func(r chi.Router) {
		r.Post(RouteCalculate, s.handleCalculate)
		r.Get(RouteCatalog, s.handleCatalog)
		if s.opts.Contract != nil {
			r.Get(RouteOpenAPI, s.handleOpenAPI)
		}
	})
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", requestID)

		next.ServeHTTP(w, r)

		s.opts.Logger.Debug("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("request_id", requestID),
			zap.Duration("dur", time.Since(start)),
			zap.String("remote", r.RemoteAddr),
		)
	})
}

func (s *Server) handleCalculate(w http.ResponseWriter, r *http.Request) {
	req, err := s.decodeRequest(w, r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	res, err := s.opts.Engine.Calculate(r.Context(), req)
	if err != nil {
		var calcErr *gateway.CalculationError
		if errors.As(err, &calcErr) && calcErr.Kind == gateway.KindRejected {
			s.opts.Logger.Info("calculation rejected",
				zap.String("vessel_type", req.VesselType),
				zap.String("sub_type", req.SubType),
				zap.String("message", calcErr.Message),
			)
			writeJSON(w, http.StatusOK, gateway.Response{Status: "error", Message: calcErr.Message})
			return
		}
		s.writeError(w, StatusError{Code: http.StatusServiceUnavailable, Err: err})
		return
	}

	writeJSON(w, http.StatusOK, gateway.Response{Status: gateway.StatusSuccess, Results: &res})
}

func (s *Server) decodeRequest(w http.ResponseWriter, r *http.Request) (form.Request, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.opts.MaxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return form.Request{}, StatusError{Code: http.StatusRequestEntityTooLarge, Err: err}
		}
		return form.Request{}, StatusError{Code: http.StatusBadRequest, Err: err}
	}

	var payload any
	if err := json.Unmarshal(body, &payload); err != nil {
		return form.Request{}, StatusError{Code: http.StatusBadRequest, Err: fmt.Errorf("invalid JSON: %w", err)}
	}
	if s.opts.Contract != nil {
		if err := s.opts.Contract.ValidateRequest(payload); err != nil {
			return form.Request{}, StatusError{Code: http.StatusBadRequest, Err: err}
		}
	}

	var req form.Request
	if err := json.Unmarshal(body, &req); err != nil {
		return form.Request{}, StatusError{Code: http.StatusBadRequest, Err: fmt.Errorf("invalid request: %w", err)}
	}
	return req, nil
}

func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalogResponse{Data: s.opts.Catalog.Entries()})
}

func (s *Server) handleOpenAPI(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(s.opts.Contract.Document())
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	code := http.StatusInternalServerError
	var statusErr StatusError
	if errors.As(err, &statusErr) {
		code = statusErr.StatusCode()
	}
	if code >= http.StatusInternalServerError {
		s.opts.Logger.Error("request failed", zap.Int("status", code), zap.Error(err))
	} else {
		s.opts.Logger.Debug("request rejected", zap.Int("status", code), zap.Error(err))
	}
	writeJSON(w, code, gateway.Response{Status: "error", Message: err.Error()})
}

func writeJSON(w http.ResponseWriter, code int, value any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(value)
}

func mountPath(basePath, routePath string) string {
	basePath = strings.TrimSpace(basePath)
	routePath = strings.TrimSpace(routePath)

	if routePath == "" {
		routePath = "/"
	}
	if !strings.HasPrefix(routePath, "/") {
		routePath = "/" + routePath
	}

	if basePath == "" || basePath == "/" {
		return routePath
	}
	if !strings.HasPrefix(basePath, "/") {
		basePath = "/" + basePath
	}
	basePath = strings.TrimRight(basePath, "/")
	if routePath == "/" {
		return basePath
	}
	return basePath + routePath
}
