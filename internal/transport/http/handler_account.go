package httptransport

import (
	"errors"
	"net/http"

	appaccount "turfbook/internal/app/account"
)

type AccountHandlers struct {
	accountSvc *appaccount.Service
}

func NewAccountHandlers(accountSvc *appaccount.Service) *AccountHandlers {
	return &AccountHandlers{accountSvc: accountSvc}
}

func (h *AccountHandlers) Register() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req appaccount.RegisterRequest
		if !DecodeJSON(w, r, &req) {
			return
		}
		resp, err := h.accountSvc.Register(r.Context(), req)
		if err != nil {
			switch {
			case errors.Is(err, appaccount.ErrInvalidRequest):
				WriteHTTPError(w, http.StatusBadRequest, "invalid_request")
			case errors.Is(err, appaccount.ErrEmailTaken):
				WriteHTTPError(w, http.StatusConflict, "email_taken")
			default:
				WriteHTTPError(w, http.StatusInternalServerError, "internal_error")
			}
			return
		}
		WriteJSON(w, resp)
	}
}

func (h *AccountHandlers) Login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req appaccount.LoginRequest
		if !DecodeJSON(w, r, &req) {
			return
		}
		resp, err := h.accountSvc.Login(r.Context(), req)
		if err != nil {
			switch {
			case errors.Is(err, appaccount.ErrInvalidRequest):
				WriteHTTPError(w, http.StatusBadRequest, "invalid_request")
			case errors.Is(err, appaccount.ErrUserNotFound), errors.Is(err, appaccount.ErrBadCredentials):
				WriteHTTPError(w, http.StatusUnauthorized, "bad_credentials")
			default:
				WriteHTTPError(w, http.StatusInternalServerError, "internal_error")
			}
			return
		}
		WriteJSON(w, resp)
	}
}

func (h *AccountHandlers) Logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, ok := SessionTokenFromContext(r.Context())
		if !ok {
			WriteHTTPError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		if err := h.accountSvc.Logout(r.Context(), token); err != nil {
			WriteHTTPError(w, http.StatusInternalServerError, "internal_error")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func (h *AccountHandlers) Me() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := UserFromContext(r.Context())
		if !ok {
			WriteHTTPError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		resp, err := h.accountSvc.Profile(r.Context(), user.ID)
		if err != nil {
			WriteHTTPError(w, http.StatusInternalServerError, "internal_error")
			return
		}
		WriteJSON(w, resp)
	}
}

func (h *AccountHandlers) Recharge() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := UserFromContext(r.Context())
		if !ok {
			WriteHTTPError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		resp, err := h.accountSvc.Recharge(r.Context(), user.ID)
		if err != nil {
			WriteHTTPError(w, http.StatusInternalServerError, "internal_error")
			return
		}
		WriteJSON(w, resp)
	}
}
