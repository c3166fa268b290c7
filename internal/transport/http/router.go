package httptransport

import (
	"net/http"
	"time"

	appaccount "turfbook/internal/app/account"
	appbetting "turfbook/internal/app/betting"
	appbookie "turfbook/internal/app/bookie"
	appresults "turfbook/internal/app/results"
	"turfbook/internal/config"
	"turfbook/internal/ledger"
	"turfbook/internal/store"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(st *store.Store, led *ledger.Ledger, cfg config.ServerConfig) *chi.Mux {
	accountSvc := appaccount.NewService(st, cfg.RechargeAmount, time.Duration(cfg.SessionTTLMinutes)*time.Minute)
	bettingSvc := appbetting.NewService(st, led)
	bookieSvc := appbookie.NewService(st, led)
	resultsSvc := appresults.NewService(st, led)

	accountHandlers := NewAccountHandlers(accountSvc)
	bettingHandlers := NewBettingHandlers(bettingSvc)
	bookieHandlers := NewBookieHandlers(bookieSvc)
	resultsHandlers := NewResultsHandlers(resultsSvc)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)

	r.With(APILogMiddleware()).Get("/healthz", healthHandler(st))

	r.Route("/api", func(r chi.Router) {
		r.Use(APILogMiddleware())

		r.Post("/register", accountHandlers.Register())
		r.Post("/login", accountHandlers.Login())

		r.Group(func(r chi.Router) {
			r.Use(SessionAuthMiddleware(st))

			r.Post("/logout", accountHandlers.Logout())
			r.Get("/me", accountHandlers.Me())
			r.Get("/races", bettingHandlers.Races())
			r.Get("/races/{race_id}", bettingHandlers.RaceInfo())

			r.Group(func(r chi.Router) {
				r.Use(RequireRole(store.RoleUser))
				r.Post("/bets", bettingHandlers.PlaceBet())
				r.Get("/bets", bettingHandlers.UserBets())
				r.Post("/recharge", accountHandlers.Recharge())
			})

			r.Group(func(r chi.Router) {
				r.Use(RequireRole(store.RoleBookmaker))
				r.Get("/bookie/bets", bookieHandlers.UnviewedBets())
				r.Post("/bookie/bets/{bet_id}/accept", bookieHandlers.Accept())
				r.Post("/bookie/bets/{bet_id}/decline", bookieHandlers.Decline())
				r.Post("/bookie/bets/{bet_id}/determine", bookieHandlers.Determine())
				r.Post("/bookie/bets/{bet_id}/pay", bookieHandlers.Pay())
			})

			r.Group(func(r chi.Router) {
				r.Use(RequireRole(store.RoleAdmin))
				r.Get("/admin/races/unresulted", resultsHandlers.UnresultedRaces())
				r.Post("/admin/races", resultsHandlers.CreateRace())
				r.Post("/admin/races/{race_id}/results", resultsHandlers.AssignResults())
			})
		})
	})

	return r
}

func healthHandler(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := st.Ping(r.Context()); err != nil {
			WriteHTTPError(w, http.StatusServiceUnavailable, "db_unreachable")
			return
		}
		WriteJSON(w, map[string]any{"ok": true})
	}
}
