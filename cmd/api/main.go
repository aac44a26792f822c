package main

import (
	"database/sql"
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	"resabot/internal/adapters/gateway"
	server "resabot/internal/adapters/http_server"
	"resabot/internal/adapters/observability"
	redisad "resabot/internal/adapters/redis"
	"resabot/internal/app"
	"resabot/internal/domain"
	"resabot/internal/shared"
	mysqlrepo "resabot/internal/storage/mysql"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	// chat audit log is optional; an empty DSN disables it
	var logs domain.ChatLogRepository
	if cfg.MySQLDSN != "" {
		db, err := sql.Open("mysql", cfg.MySQLDSN)
		if err != nil {
			log.Fatal().Err(err).Msg("sql.Open failed")
		}
		if err := db.Ping(); err != nil {
			log.Fatal().Err(err).Msg("db.Ping failed")
		}
		log.Info().Msg("database connection ok")
		logs = mysqlrepo.New(db)
	}

	// deps
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	props := gateway.NewPropertyClient(cfg.PropertyBase, cfg.BackendRPS)
	resv := gateway.NewReservationClient(cfg.ReservationBase, cfg.BackendRPS)
	engine := app.NewEngine(props, resv, cache, cfg.CacheTTL)

	// http
	srv := server.New()
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{Engine: engine, Logs: logs})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("chatbot API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
