package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"turfbook/internal/config"
	"turfbook/internal/ledger"
	"turfbook/internal/logging"
	"turfbook/internal/metrics"
	"turfbook/internal/store"
	httptransport "turfbook/internal/transport/http"

	"github.com/rs/zerolog/log"
)

func main() {
	logCfg, err := config.LoadLog()
	if err != nil {
		panic(err)
	}
	logging.Init(logCfg)
	cfg, err := config.LoadServer()
	if err != nil {
		log.Fatal().Err(err).Msg("load server config failed")
	}

	st, err := store.New(cfg.PostgresDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("store init failed")
	}
	defer st.Close()
	if err := st.Ping(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("db ping failed")
	}

	// Optional seed from env
	seedUser(st, "Race", "Admin", cfg.AdminEmail, cfg.AdminPassword, store.RoleAdmin)
	seedUser(st, "Book", "Maker", cfg.BookmakerEmail, cfg.BookmakerPassword, store.RoleBookmaker)

	led := ledger.New(st)
	metricsServer := metrics.StartServer(cfg.MetricsAddr, st.Ping)
	r := httptransport.NewRouter(st, led, cfg)

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		log.Info().Str("addr", cfg.HTTPAddr).Msg("http listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("http shutdown failed")
	}
	if err := metricsServer.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("metrics shutdown failed")
	}
	log.Info().Msg("server stopped")
}

func seedUser(st *store.Store, firstName, lastName, email, password, role string) {
	if email == "" || password == "" {
		return
	}
	if err := st.EnsureUser(context.Background(), firstName, lastName, email, password, role); err != nil {
		log.Fatal().Err(err).Str("email", email).Msg("seed user failed")
	}
	log.Info().Str("email", email).Str("role", role).Msg("seed user ensured")
}
