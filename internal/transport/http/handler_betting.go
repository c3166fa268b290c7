package httptransport

import (
	"errors"
	"net/http"

	appbetting "turfbook/internal/app/betting"

	"github.com/go-chi/chi/v5"
)

type BettingHandlers struct {
	bettingSvc *appbetting.Service
}

func NewBettingHandlers(bettingSvc *appbetting.Service) *BettingHandlers {
	return &BettingHandlers{bettingSvc: bettingSvc}
}

func (h *BettingHandlers) PlaceBet() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := UserFromContext(r.Context())
		if !ok {
			WriteHTTPError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		var req appbetting.PlaceBetRequest
		if !DecodeJSON(w, r, &req) {
			return
		}
		resp, err := h.bettingSvc.PlaceBet(r.Context(), user.ID, req)
		if err != nil {
			switch {
			case errors.Is(err, appbetting.ErrInvalidRequest), errors.Is(err, appbetting.ErrInvalidAmount):
				WriteHTTPError(w, http.StatusBadRequest, "invalid_amount")
			case errors.Is(err, appbetting.ErrInsufficientBalance):
				WriteHTTPError(w, http.StatusBadRequest, "insufficient_balance")
			case errors.Is(err, appbetting.ErrHorseNotFound):
				WriteHTTPError(w, http.StatusNotFound, "horse_not_found")
			default:
				WriteHTTPError(w, http.StatusInternalServerError, "internal_error")
			}
			return
		}
		WriteJSON(w, resp)
	}
}

func (h *BettingHandlers) UserBets() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := UserFromContext(r.Context())
		if !ok {
			WriteHTTPError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		resp, err := h.bettingSvc.UserBets(r.Context(), user.ID)
		if err != nil {
			WriteHTTPError(w, http.StatusInternalServerError, "internal_error")
			return
		}
		WriteJSON(w, resp)
	}
}

func (h *BettingHandlers) Races() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp, err := h.bettingSvc.Races(r.Context())
		if err != nil {
			WriteHTTPError(w, http.StatusInternalServerError, "internal_error")
			return
		}
		WriteJSON(w, resp)
	}
}

func (h *BettingHandlers) RaceInfo() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raceID := chi.URLParam(r, "race_id")
		resp, err := h.bettingSvc.RaceInfo(r.Context(), raceID)
		if err != nil {
			switch {
			case errors.Is(err, appbetting.ErrInvalidRequest):
				WriteHTTPError(w, http.StatusBadRequest, "invalid_request")
			case errors.Is(err, appbetting.ErrRaceNotFound):
				WriteHTTPError(w, http.StatusNotFound, "race_not_found")
			default:
				WriteHTTPError(w, http.StatusInternalServerError, "internal_error")
			}
			return
		}
		WriteJSON(w, resp)
	}
}
