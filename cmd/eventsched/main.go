// WhenTo - Collaborative event calendar for self-hosted environments
// Copyright (C) 2025 WhenTo Contributors
// SPDX-License-Identifier: BSL-1.1

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var Version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:     "eventsched",
		Short:   "Event Scheduler - constraint-based session scheduling",
		Version: Version,
		Long: `Event Scheduler

Assigns event sessions to rooms and start times using a constraint-
programming solver. No two co-located sessions overlap, no speaker is
double-booked, and whole-venue sessions exclude against everything else.

Usage:
  1. Run as an HTTP service: eventsched serve
  2. Solve a single request file: eventsched schedule -f request.json`,
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(scheduleCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
