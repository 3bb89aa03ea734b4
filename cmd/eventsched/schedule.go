// WhenTo - Collaborative event calendar for self-hosted environments
// Copyright (C) 2025 WhenTo Contributors
// SPDX-License-Identifier: BSL-1.1

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/eventsched/eventsched/internal/api"
	"github.com/eventsched/eventsched/internal/config"
	"github.com/eventsched/eventsched/internal/scheduler"
)

func scheduleCmd() *cobra.Command {
	var requestFile string

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Solve a single schedule request from a JSON file and print the result",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSchedule(cmd.Context(), requestFile)
		},
	}

	cmd.Flags().StringVarP(&requestFile, "file", "f", "", "Path to a JSON schedule request")
	cmd.MarkFlagRequired("file")

	return cmd
}

func runSchedule(ctx context.Context, requestFile string) error {
	data, err := os.ReadFile(requestFile)
	if err != nil {
		return fmt.Errorf("failed to read request file: %w", err)
	}

	var dto api.ScheduleRequestDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return fmt.Errorf("failed to parse request JSON: %w", err)
	}

	cfg := config.Load()

	req, err := dto.ToDomain(cfg.DefaultGapMinutes)
	if err != nil {
		return fmt.Errorf("invalid request: %w", err)
	}

	resp := scheduler.Schedule(ctx, req, cfg.SolverTimeBudget)

	out, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal response: %w", err)
	}

	fmt.Println(string(out))

	if !resp.Success {
		os.Exit(1)
	}
	return nil
}
