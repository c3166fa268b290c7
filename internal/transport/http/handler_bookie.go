package httptransport

import (
	"errors"
	"net/http"

	appbookie "turfbook/internal/app/bookie"

	"github.com/go-chi/chi/v5"
)

type BookieHandlers struct {
	bookieSvc *appbookie.Service
}

func NewBookieHandlers(bookieSvc *appbookie.Service) *BookieHandlers {
	return &BookieHandlers{bookieSvc: bookieSvc}
}

func (h *BookieHandlers) UnviewedBets() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp, err := h.bookieSvc.UnviewedBets(r.Context())
		if err != nil {
			WriteHTTPError(w, http.StatusInternalServerError, "internal_error")
			return
		}
		WriteJSON(w, resp)
	}
}

func (h *BookieHandlers) Accept() http.HandlerFunc {
	return h.transition(func(r *http.Request, betID string) (*appbookie.TransitionResponse, error) {
		return h.bookieSvc.Accept(r.Context(), betID)
	})
}

func (h *BookieHandlers) Decline() http.HandlerFunc {
	return h.transition(func(r *http.Request, betID string) (*appbookie.TransitionResponse, error) {
		return h.bookieSvc.Decline(r.Context(), betID)
	})
}

func (h *BookieHandlers) Determine() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		betID := chi.URLParam(r, "bet_id")
		var req appbookie.DetermineRequest
		if !DecodeJSON(w, r, &req) {
			return
		}
		resp, err := h.bookieSvc.Determine(r.Context(), betID, req)
		if err != nil {
			writeBookieError(w, err)
			return
		}
		WriteJSON(w, resp)
	}
}

func (h *BookieHandlers) Pay() http.HandlerFunc {
	return h.transition(func(r *http.Request, betID string) (*appbookie.TransitionResponse, error) {
		return h.bookieSvc.Pay(r.Context(), betID)
	})
}

func (h *BookieHandlers) transition(op func(*http.Request, string) (*appbookie.TransitionResponse, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		betID := chi.URLParam(r, "bet_id")
		resp, err := op(r, betID)
		if err != nil {
			writeBookieError(w, err)
			return
		}
		WriteJSON(w, resp)
	}
}

func writeBookieError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, appbookie.ErrInvalidRequest):
		WriteHTTPError(w, http.StatusBadRequest, "invalid_request")
	case errors.Is(err, appbookie.ErrWrongState):
		WriteHTTPError(w, http.StatusConflict, "wrong_state")
	default:
		WriteHTTPError(w, http.StatusInternalServerError, "internal_error")
	}
}
