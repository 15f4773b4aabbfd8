package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strings"
	"time"

	"stockmonitor-service/internal/application"
	"stockmonitor-service/internal/domain"
	"stockmonitor-service/internal/infrastructure/logx"

	"go.uber.org/zap"
)

type Server struct {
	svc  *application.MonitoringService
	idem application.IdempotencyStore
	ping func(ctx context.Context) error
}

func NewServer(svc *application.MonitoringService) *Server {
	return &Server{svc: svc, idem: application.NoopIdempotency{}}
}

// SetReadyCheck sets the function /readyz calls.
func (s *Server) SetReadyCheck(fn func(ctx context.Context) error) { s.ping = fn }

func (s *Server) SetIdempotency(store application.IdempotencyStore) {
	if store != nil {
		s.idem = store
	}
}

type quoteRecordDTO struct {
	Symbol        string    `json:"symbol"`
	Open          float64   `json:"o"`
	High          float64   `json:"h"`
	Low           float64   `json:"l"`
	Close         float64   `json:"c"`
	PreviousClose float64   `json:"pc"`
	FetchedAt     time.Time `json:"fetchedAt"`
}

func toDTO(r domain.QuoteRecord) quoteRecordDTO {
	return quoteRecordDTO{
		Symbol:        r.Symbol.String(),
		Open:          r.Open.InexactFloat64(),
		High:          r.High.InexactFloat64(),
		Low:           r.Low.InexactFloat64(),
		Close:         r.Close.InexactFloat64(),
		PreviousClose: r.PreviousClose.InexactFloat64(),
		FetchedAt:     r.FetchedAt.UTC(),
	}
}

type startResponse struct {
	Message string `json:"message"`
	Symbol  string `json:"symbol"`
}

type monitorDTO struct {
	Symbol     string    `json:"symbol"`
	IntervalMs int64     `json:"intervalMs"`
	StartedAt  time.Time `json:"startedAt"`
}

func (s *Server) StartMonitoring(w http.ResponseWriter, r *http.Request) {
	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body == nil {
		badRequest(w, "Invalid input")
		return
	}
	symbol, ok := body["symbol"].(string)
	if !ok || strings.TrimSpace(symbol) == "" {
		badRequest(w, "Invalid input")
		return
	}
	minutes, okM := wholeNumber(body, "minutes")
	seconds, okS := wholeNumber(body, "seconds")
	if !okM || !okS {
		badRequest(w, "Invalid input")
		return
	}
	interval, err := domain.IntervalFrom(minutes, seconds)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	job, err := s.svc.StartMonitoring(r.Context(), symbol, interval)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, startResponse{Message: "Monitoring started", Symbol: job.Symbol.String()})
}

func (s *Server) GetHistory(w http.ResponseWriter, r *http.Request) {
	records, err := s.svc.GetHistory(r.Context(), r.URL.Query().Get("symbol"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			badRequest(w, "Symbol required")
			return
		}
		s.fail(w, r, err)
		return
	}
	out := make([]quoteRecordDTO, 0, len(records))
	for _, rec := range records {
		out = append(out, toDTO(rec))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) Refresh(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Symbol any `json:"symbol"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		badRequest(w, "Invalid symbol")
		return
	}
	symbol, ok := body.Symbol.(string)
	if !ok {
		badRequest(w, "Invalid symbol")
		return
	}
	rec, err := s.svc.Refresh(r.Context(), symbol)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			badRequest(w, "Invalid symbol")
			return
		}
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toDTO(rec))
}

func (s *Server) ListMonitors(w http.ResponseWriter, r *http.Request) {
	jobs := s.svc.ListMonitors(r.Context())
	out := make([]monitorDTO, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, monitorDTO{
			Symbol:     j.Symbol.String(),
			IntervalMs: j.Interval.Milliseconds(),
			StartedAt:  j.StartedAt.UTC(),
		})
	}
	writeJSON(w, http.StatusOK, out)
}

// wholeNumber reads an optional non-negative JSON integer; absent means 0.
func wholeNumber(body map[string]any, key string) (int64, bool) {
	v, present := body[key]
	if !present {
		return 0, true
	}
	f, ok := v.(float64)
	if !ok || f < 0 || f != math.Trunc(f) || f > math.MaxInt32 {
		return 0, false
	}
	return int64(f), true
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInterval):
		badRequest(w, "Interval must be > 0")
	case errors.Is(err, domain.ErrInvalidInput):
		badRequest(w, "Invalid input")
	case errors.Is(err, application.ErrConflict):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		notFound(w)
	default:
		logx.WithFields(r.Context()).Error("request failed", zap.String("path", r.URL.Path), zap.Error(err))
		internalError(w, err)
	}
}

type errorBody struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorBody{Error: msg})
}

func badRequest(w http.ResponseWriter, msg string) {
	writeError(w, http.StatusBadRequest, msg)
}

func notFound(w http.ResponseWriter) {
	writeError(w, http.StatusNotFound, "Not found")
}

func internalError(w http.ResponseWriter, err error) {
	writeError(w, http.StatusInternalServerError, err.Error())
}
