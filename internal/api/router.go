// WhenTo - Collaborative event calendar for self-hosted environments
// Copyright (C) 2025 WhenTo Contributors
// SPDX-License-Identifier: BSL-1.1

package api

import (
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"

	"github.com/eventsched/pkg/cache"
	"github.com/eventsched/pkg/middleware"
	"github.com/eventsched/eventsched/internal/config"
)

// NewRouter assembles the full HTTP surface: the core scheduling endpoint,
// the ICS export, the NLP collaborators, and a health check - behind the
// same middleware chain the rest of the service uses.
func NewRouter(cfg *config.Config, redisClient *redis.Client) chi.Router {
	cacheInstance := cache.NewRedisCache(redisClient)
	handler := NewHandler(cfg, cacheInstance)
	rateLimiter := middleware.NewRateLimiter(redisClient)

	r := chi.NewRouter()

	r.Use(chiMiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.LimitRequestSize(1 * 1024 * 1024))
	r.Use(middleware.CORS(cfg.CORSOrigins))

	r.Get("/health", handler.Health)

	r.Post("/schedule-event", handler.ScheduleEvent)
	r.Post("/schedule-event.ics", handler.ScheduleEventICS)

	r.Group(func(r chi.Router) {
		r.With(rateLimiter.Limit(middleware.RateLimitConfig{
			Requests: 30,
			Window:   time.Minute,
			KeyFunc:  middleware.CombinedKeyFunc,
		})).Post("/parse-brief", handler.ParseBrief)

		r.With(rateLimiter.Limit(middleware.RateLimitConfig{
			Requests: 30,
			Window:   time.Minute,
			KeyFunc:  middleware.CombinedKeyFunc,
		})).Post("/nlp/entities", handler.NLPEntities)
	})

	return r
}
