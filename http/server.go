package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/fwojciec/carcheck"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ShutdownTimeout is how long Run waits for in-flight requests on shutdown.
const ShutdownTimeout = 5 * time.Second

// Server exposes a carcheck.LookupService as a JSON API.
type Server struct {
	router   chi.Router
	lookups  carcheck.LookupService
	gatherer prometheus.Gatherer
	logger   *slog.Logger
}

// ServerOption configures a Server.
type ServerOption func(*Server)

// WithMetrics serves the gatherer's metrics at /metrics.
func WithMetrics(g prometheus.Gatherer) ServerOption {
	return func(s *Server) {
		s.gatherer = g
	}
}

// WithLogger sets the logger for internal errors. Defaults to discarding.
func WithLogger(l *slog.Logger) ServerOption {
	return func(s *Server) {
		s.logger = l
	}
}

// NewServer creates a new Server.
func NewServer(lookups carcheck.LookupService, opts ...ServerOption) *Server {
	s := &Server{
		lookups: lookups,
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/lookup/{registration}", s.handleLookup)
	r.Route("/records", func(r chi.Router) {
		r.Get("/", s.handleListRecords)
		r.Get("/{id}/share", s.handleShareRecord)
		r.Delete("/{id}", s.handleDeleteRecord)
	})
	if s.gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	}

	s.router = r
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Run serves on addr until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

// lookupResponse is the JSON body returned by GET /lookup/{registration}.
type lookupResponse struct {
	*carcheck.LookupResult
	Message string `json:"message"`
}

func (s *Server) handleLookup(w http.ResponseWriter, r *http.Request) {
	registration := chi.URLParam(r, "registration")

	result, err := s.lookups.Lookup(r.Context(), registration)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, lookupResponse{
		LookupResult: result,
		Message:      result.Message(registration),
	})
}

func (s *Server) handleListRecords(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter, err := recordFilter(q)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	// The free-text match runs in memory, so pagination must follow it.
	match := q.Get("match")
	storeFilter := filter
	if match != "" {
		storeFilter = carcheck.RecordFilter{Query: filter.Query}
	}

	records, err := s.lookups.ListSaved(r.Context(), storeFilter)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if match != "" {
		records = carcheck.PageRecords(carcheck.FilterRecords(records, match), filter.Offset, filter.Limit)
	}
	if records == nil {
		records = []*carcheck.Record{}
	}

	s.writeJSON(w, http.StatusOK, records)
}

func (s *Server) handleShareRecord(w http.ResponseWriter, r *http.Request) {
	id, err := recordID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	text, err := s.lookups.Share(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(text))
}

func (s *Server) handleDeleteRecord(w http.ResponseWriter, r *http.Request) {
	id, err := recordID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	if err := s.lookups.Remove(r.Context(), id); err != nil {
		s.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// recordFilter reads the q, limit and offset query parameters.
func recordFilter(q url.Values) (carcheck.RecordFilter, error) {
	filter := carcheck.RecordFilter{Query: q.Get("q")}
	for name, dst := range map[string]*int{"limit": &filter.Limit, "offset": &filter.Offset} {
		v := q.Get(name)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return carcheck.RecordFilter{}, carcheck.Errorf(carcheck.EINVALID, "invalid %s %q", name, v)
		}
		*dst = n
	}
	return filter, nil
}

func recordID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, carcheck.Errorf(carcheck.EINVALID, "invalid record id %q", chi.URLParam(r, "id"))
	}
	return id, nil
}

// errorStatus maps application error codes to HTTP status codes.
var errorStatus = map[string]int{
	carcheck.ECONFLICT:    http.StatusConflict,
	carcheck.EINVALID:     http.StatusBadRequest,
	carcheck.ENOTFOUND:    http.StatusNotFound,
	carcheck.EUNAVAILABLE: http.StatusBadGateway,
	carcheck.EINTERNAL:    http.StatusInternalServerError,
}

// ErrorStatusCode returns the HTTP status code for an error.
func ErrorStatusCode(err error) int {
	if status, ok := errorStatus[carcheck.ErrorCode(err)]; ok {
		return status
	}
	return http.StatusInternalServerError
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := carcheck.ErrorCode(err)
	if code == carcheck.EINTERNAL {
		s.logger.ErrorContext(r.Context(), "request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"err", err,
		)
	}

	s.writeJSON(w, ErrorStatusCode(err), map[string]string{
		"code":  code,
		"error": carcheck.ErrorMessage(err),
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encoding response", "err", err)
	}
}
