// WhenTo - Collaborative event calendar for self-hosted environments
// Copyright (C) 2025 WhenTo Contributors
// SPDX-License-Identifier: BSL-1.1

package scheduler

import (
	"context"
	"time"

	"github.com/google/or-tools/ortools/sat/go/cpmodel"
)

// Failure messages returned verbatim to callers.
const (
	MsgNoSessions    = "No sessions to schedule"
	MsgNoRooms       = "No rooms available for scheduling"
	MsgInvalidWindow = "Invalid date range or no time slots available"
)

// DefaultSolverBudget is the wall-clock cap applied when the caller does
// not override it.
const DefaultSolverBudget = 30 * time.Second

// Schedule is the pure function at the center of this system: given a
// declarative request, it returns a concrete schedule or a failure
// message. It shares no mutable state across calls and never returns a
// partial result - either every session gets a StartTime, or none do.
//
// budget overrides the solver's wall-clock cap; pass <= 0 to use
// DefaultSolverBudget.
//
// ctx governs the solve call only: an already-cancelled or later-cancelled
// ctx unblocks Schedule as soon as the cancellation is observed, without
// waiting out the rest of budget. Pass context.Background() for callers
// with no outer deadline of their own.
func Schedule(ctx context.Context, req Request, budget time.Duration) Response {
	if budget <= 0 {
		budget = DefaultSolverBudget
	}

	if len(req.Sessions) == 0 {
		return failure(MsgNoSessions)
	}
	if len(req.Rooms) == 0 {
		return failure(MsgNoRooms)
	}

	slots := generateTimeSlots(req)
	if len(slots) == 0 {
		return failure(MsgInvalidWindow)
	}

	p := preprocess(req)

	builder := cpmodel.NewCpModelBuilder()
	v := buildIntervalVars(builder, len(slots), p)
	emitConstraints(v, req, p)
	buildObjective(v, req)

	result, err := solve(ctx, v, budget)
	if err != nil {
		return failure("Error generating schedule: " + err.Error())
	}
	if !result.ok {
		return failure(result.failureMsg)
	}

	return Response{
		Success:     true,
		Assignments: extractAssignments(req, slots, result.starts),
	}
}

func failure(message string) Response {
	return Response{
		Success:     false,
		Message:     message,
		Assignments: []Assignment{},
	}
}
