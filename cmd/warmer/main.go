package main

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"resabot/internal/adapters/gateway"
	"resabot/internal/adapters/observability"
	redisad "resabot/internal/adapters/redis"
	"resabot/internal/shared"
)

// Pre-warms the redis cache so the first chat requests after a deploy do
// not all stampede the property service: stores the full listing under the
// engine's key, then each property detail, fetched with bounded concurrency.
func main() {
	ctx := context.Background()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv)

	log.Info().
		Str("base", cfg.PropertyBase).
		Int("workers", cfg.WarmWorkers).
		Msg("cache warmer starting")

	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	props := gateway.NewPropertyClient(cfg.PropertyBase, cfg.BackendRPS)

	listing := props.FetchAll(ctx)
	if len(listing) == 0 {
		log.Warn().Msg("no properties returned, nothing to warm")
		return
	}
	if err := cache.Set(ctx, "properties:all", listing, cfg.CacheTTL); err != nil {
		log.Fatal().Err(err).Msg("cache set failed")
	}
	log.Info().Int("count", len(listing)).Msg("listing cached")

	sem := semaphore.NewWeighted(int64(cfg.WarmWorkers))
	var wg sync.WaitGroup

	for _, p := range listing {
		id := p.ID

		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func(propertyID string) {
			defer wg.Done()
			defer sem.Release(1)

			prop, ok := props.Fetch(ctx, propertyID)
			if !ok {
				log.Warn().Str("id", propertyID).Msg("warm fetch failed")
				return
			}
			if err := cache.Set(ctx, "property:"+propertyID, prop, cfg.CacheTTL); err != nil {
				log.Warn().Str("id", propertyID).Err(err).Msg("warm set failed")
				return
			}
			log.Info().Str("id", propertyID).Msg("warm ok")
		}(id)
	}

	wg.Wait()
	log.Info().Msg("warm completed")
}
