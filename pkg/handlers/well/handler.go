package well

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/de-tools/decline-curve/pkg/export/chart"
	"github.com/de-tools/decline-curve/pkg/models/api"
	"github.com/de-tools/decline-curve/pkg/models/domain"
	"github.com/de-tools/decline-curve/pkg/services/decline"
	"github.com/de-tools/decline-curve/pkg/services/wells"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

type Handler struct {
	wells wells.Explorer
}

func NewHandler(explorer wells.Explorer) *Handler {
	return &Handler{wells: explorer}
}

func (h *Handler) ListWells(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	list, err := h.wells.ListWells(ctx)
	if err != nil {
		http.Error(w, "failed to list wells", http.StatusInternalServerError)
		return
	}

	response := make([]api.Well, 0, len(list))
	for _, well := range list {
		response = append(response, api.Well{Name: well.Name})
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error().Err(err).Msg("failed to encode wells")
	}
}

func (h *Handler) GetForecast(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	profile, years, ok := h.resolveCase(w, r)
	if !ok {
		return
	}

	fc, err := decline.Forecast(profile.Params, years)
	if err != nil {
		writeDeclineError(w, err)
		return
	}

	response := api.ForecastResponse{
		Well:     profile.Well.Name,
		Years:    years,
		Qlim:     fc.Qlim,
		TlimDays: fc.Tlim,
		Daily:    fc.Daily,
		Monthly:  fc.Monthly,
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error().Err(err).Str("well", profile.Well.Name).Msg("failed to encode forecast")
	}
}

func (h *Handler) GetCumulative(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	profile, years, ok := h.resolveCase(w, r)
	if !ok {
		return
	}

	month := years * decline.MonthsPerYear
	if q := r.URL.Query().Get("month"); q != "" {
		var err error
		month, err = strconv.Atoi(q)
		if err != nil {
			http.Error(w, "month must be an integer", http.StatusBadRequest)
			return
		}
	}

	volume, err := decline.Cumulative(profile.Params, month)
	if err != nil {
		writeDeclineError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	response := api.CumulativeResponse{Well: profile.Well.Name, Month: month, Volume: volume}
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error().Err(err).Str("well", profile.Well.Name).Msg("failed to encode cumulative")
	}
}

func (h *Handler) GetChart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	profile, years, ok := h.resolveCase(w, r)
	if !ok {
		return
	}

	fc, err := decline.Forecast(profile.Params, years)
	if err != nil {
		writeDeclineError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := chart.Render(w, "Arps Forecast: "+profile.Well.Name, fc.Monthly); err != nil {
		logger.Error().Err(err).Str("well", profile.Well.Name).Msg("failed to render chart")
	}
}

// resolveCase loads the profile for the {well} route parameter and applies an
// optional ?years= override. On failure it writes the response itself and
// returns ok=false.
func (h *Handler) resolveCase(w http.ResponseWriter, r *http.Request) (domain.WellProfile, int, bool) {
	ctx := r.Context()
	name := chi.URLParam(r, "well")

	profile, err := h.wells.GetProfile(ctx, domain.Well{Name: name})
	if err != nil {
		http.Error(w, "well not found", http.StatusNotFound)
		return domain.WellProfile{}, 0, false
	}

	years := profile.Years
	if q := r.URL.Query().Get("years"); q != "" {
		years, err = strconv.Atoi(q)
		if err != nil {
			http.Error(w, "years must be an integer", http.StatusBadRequest)
			return domain.WellProfile{}, 0, false
		}
	}

	return profile, years, true
}

func writeDeclineError(w http.ResponseWriter, err error) {
	if errors.Is(err, decline.ErrInvalidParameter) || errors.Is(err, decline.ErrInvalidArgument) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	http.Error(w, "forecast failed", http.StatusInternalServerError)
}
