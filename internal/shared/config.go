package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv          string
	HTTPAddr        string
	MetricsAddr     string
	PropertyBase    string
	ReservationBase string
	MySQLDSN        string
	RedisAddr       string
	RedisDB         int
	RedisPass       string
	BackendRPS      int
	WarmWorkers     int
	CacheTTL        time.Duration
}

func Load() Config {
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	c := Config{
		AppEnv:          env("APP_ENV", "prod"),
		HTTPAddr:        env("HTTP_ADDR", ":8001"),
		MetricsAddr:     env("METRICS_ADDR", ":9100"),
		PropertyBase:    env("PROPERTY_SERVICE_URL", "http://localhost:3002"),
		ReservationBase: env("RESERVATION_SERVICE_URL", "http://localhost:3003"),
		MySQLDSN:        env("MYSQL_DSN", ""),
		RedisAddr:       env("REDIS_ADDR", "localhost:6379"),
		RedisPass:       env("REDIS_PASSWORD", ""),
		RedisDB:         atoi("REDIS_DB", 0),
		BackendRPS:      atoi("BACKEND_RPS", 10),
		WarmWorkers:     atoi("WARM_WORKERS", 8),
		CacheTTL:        time.Duration(atoi("CACHE_TTL_SECONDS", 60)) * time.Second,
	}
	if os.Getenv("PROPERTY_SERVICE_URL") == "" || os.Getenv("RESERVATION_SERVICE_URL") == "" {
		log.Warn().Msg("backend service URLs not set, using localhost defaults")
	}
	if c.MySQLDSN == "" {
		log.Warn().Msg("MYSQL_DSN is empty, chat audit log disabled")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
