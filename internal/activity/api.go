package activity

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/briangreenhill/extrack/internal/observability"
)

// View is the JSON shape of a tracked activity.
type View struct {
	ID              string  `json:"id"`
	Type            string  `json:"type"`
	Date            string  `json:"date"`
	DurationMinutes int     `json:"duration_minutes"`
	DistanceMiles   float64 `json:"distance_miles"`
	SpeedMph        float64 `json:"speed_mph"`
	PaceMinPerMile  float64 `json:"pace_min_per_mile"`
	Summary         string  `json:"summary"`
}

func NewView(e Entry) View {
	m := e.Activity.Metrics().Rounded()
	return View{
		ID:              e.ID,
		Type:            e.Activity.Kind().String(),
		Date:            e.Activity.Date().Format("2006-01-02"),
		DurationMinutes: e.Activity.DurationMinutes(),
		DistanceMiles:   m.DistanceMiles,
		SpeedMph:        m.SpeedMph,
		PaceMinPerMile:  m.PaceMinPerMile,
		Summary:         e.Activity.Summary(),
	}
}

func NewAPI(logger *slog.Logger, activityService *Service) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("GET /activities", handleListActivities(logger, activityService))
	mux.Handle("GET /activities/{id}", handleGetActivity(logger, activityService))
	mux.Handle("GET /activities/{id}/summary", handleGetSummary(logger, activityService))
	mux.Handle("GET /health", handleHealth())
	mux.Handle("GET /metrics", promhttp.Handler())

	return mux
}

func handleHealth() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
}

func handleListActivities(logger *slog.Logger, activityService *Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var kind Kind
		if t := r.URL.Query().Get("type"); t != "" {
			k, err := ParseKind(t)
			if err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			kind = k
		}

		entries, err := activityService.List(r.Context())
		if err != nil {
			logger.Error("Error listing activities", slog.Any("error", err))
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		views := make([]View, 0, len(entries))
		for _, e := range entries {
			if kind != "" && e.Activity.Kind() != kind {
				continue
			}
			views = append(views, NewView(e))
			observability.RecordSummaryRendered(e.Activity.Kind().String())
		}

		writeJSON(w, logger, views)
	})
}

func handleGetActivity(logger *slog.Logger, activityService *Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		entry, ok := findEntry(w, r, logger, activityService)
		if !ok {
			return
		}

		observability.RecordSummaryRendered(entry.Activity.Kind().String())
		writeJSON(w, logger, NewView(entry))
	})
}

func handleGetSummary(logger *slog.Logger, activityService *Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		entry, ok := findEntry(w, r, logger, activityService)
		if !ok {
			return
		}

		observability.RecordSummaryRendered(entry.Activity.Kind().String())
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(entry.Activity.Summary() + "\n")); err != nil {
			logger.Error("Error writing summary", slog.Any("error", err))
		}
	})
}

func findEntry(w http.ResponseWriter, r *http.Request, logger *slog.Logger, activityService *Service) (Entry, bool) {
	id := r.PathValue("id")
	entry, err := activityService.Find(r.Context(), id)
	if errors.Is(err, ErrActivityNotFound) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return Entry{}, false
	}
	if err != nil {
		logger.Error("Error getting activity", slog.String("id", id), slog.Any("error", err))
		w.WriteHeader(http.StatusInternalServerError)
		return Entry{}, false
	}
	return entry, true
}

func writeJSON(w http.ResponseWriter, logger *slog.Logger, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		logger.Error("Error encoding response", slog.Any("error", err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		logger.Error("Error writing response", slog.Any("error", err))
	}
}
