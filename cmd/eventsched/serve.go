// WhenTo - Collaborative event calendar for self-hosted environments
// Copyright (C) 2025 WhenTo Contributors
// SPDX-License-Identifier: BSL-1.1

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/eventsched/pkg/logger"
	"github.com/eventsched/pkg/redisconn"
	"github.com/eventsched/eventsched/internal/api"
	"github.com/eventsched/eventsched/internal/config"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP scheduling service",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve()
		},
	}
}

func serve() error {
	cfg := config.Load()

	log := logger.New(cfg.LogLevel, "json")
	logger.SetDefault(log)

	log.Info("starting event scheduler", "port", cfg.Port, "env", cfg.AppEnv)

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		client, err := redisconn.Connect(ctx, cfg.RedisURL)
		cancel()
		if err != nil {
			log.Warn("failed to connect to redis - running without cache and rate limiting", "error", err)
		} else {
			redisClient = client
			defer redisconn.Close(redisClient)
			log.Info("connected to redis - brief cache and rate limiting enabled")
		}
	}

	router := api.NewRouter(cfg, redisClient)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	return nil
}
