package httptransport

import (
	"errors"
	"net/http"

	appresults "turfbook/internal/app/results"

	"github.com/go-chi/chi/v5"
)

type ResultsHandlers struct {
	resultsSvc *appresults.Service
}

func NewResultsHandlers(resultsSvc *appresults.Service) *ResultsHandlers {
	return &ResultsHandlers{resultsSvc: resultsSvc}
}

func (h *ResultsHandlers) UnresultedRaces() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp, err := h.resultsSvc.UnresultedRaces(r.Context())
		if err != nil {
			WriteHTTPError(w, http.StatusInternalServerError, "internal_error")
			return
		}
		WriteJSON(w, resp)
	}
}

func (h *ResultsHandlers) CreateRace() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req appresults.CreateRaceRequest
		if !DecodeJSON(w, r, &req) {
			return
		}
		resp, err := h.resultsSvc.CreateRace(r.Context(), req)
		if err != nil {
			if errors.Is(err, appresults.ErrInvalidRequest) {
				WriteHTTPError(w, http.StatusBadRequest, "invalid_request")
				return
			}
			WriteHTTPError(w, http.StatusInternalServerError, "internal_error")
			return
		}
		WriteJSON(w, resp)
	}
}

func (h *ResultsHandlers) AssignResults() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raceID := chi.URLParam(r, "race_id")
		resp, err := h.resultsSvc.AssignResults(r.Context(), raceID)
		if err != nil {
			switch {
			case errors.Is(err, appresults.ErrInvalidRequest):
				WriteHTTPError(w, http.StatusBadRequest, "invalid_request")
			case errors.Is(err, appresults.ErrNoUnresultedHorses):
				WriteHTTPError(w, http.StatusConflict, "no_unresulted_horses")
			default:
				WriteHTTPError(w, http.StatusInternalServerError, "internal_error")
			}
			return
		}
		WriteJSON(w, resp)
	}
}
