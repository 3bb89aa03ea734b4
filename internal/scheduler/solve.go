// WhenTo - Collaborative event calendar for self-hosted environments
// Copyright (C) 2025 WhenTo Contributors
// SPDX-License-Identifier: BSL-1.1

package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/google/or-tools/ortools/sat/go/cpmodel"
	cmpb "github.com/google/or-tools/ortools/sat/proto/cpmodel"
	sppb "github.com/google/or-tools/ortools/sat/proto/satparameters"
)

// solveResult is the outcome of invoking the solver: either a full set of
// decoded start slots, or a failure message ready to surface to the caller.
type solveResult struct {
	ok         bool
	starts     []int64
	failureMsg string
}

// solveOutcome pairs a solve call's return values for passage over a
// channel.
type solveOutcome struct {
	result solveResult
	err    error
}

// solve invokes CP-SAT with a wall-clock budget. Only OPTIMAL and FEASIBLE
// are treated as success; every other terminal status produces a failure
// message embedding the numeric status, and no partial assignments are
// ever returned.
//
// CP-SAT's own solve call has no cancellation hook, so it always runs to
// completion on its own goroutine; solve races that goroutine against
// ctx.Done() and returns as soon as either finishes. A ctx cancellation
// unblocks the caller but leaves the solver goroutine to finish on its own
// and its result discarded.
func solve(ctx context.Context, v cpVars, budget time.Duration) (solveResult, error) {
	model, err := v.builder.Model()
	if err != nil {
		return solveResult{}, fmt.Errorf("failed to instantiate CP model: %w", err)
	}

	params := &sppb.SatParameters{
		MaxTimeInSeconds: floatPtr(budget.Seconds()),
	}

	done := make(chan solveOutcome, 1)
	go func() {
		response, err := cpmodel.SolveCpModelWithParameters(model, params)
		if err != nil {
			done <- solveOutcome{err: fmt.Errorf("failed to solve model: %w", err)}
			return
		}

		status := response.GetStatus()
		if status != cmpb.CpSolverStatus_OPTIMAL && status != cmpb.CpSolverStatus_FEASIBLE {
			done <- solveOutcome{result: solveResult{
				ok:         false,
				failureMsg: fmt.Sprintf("Could not find a feasible schedule. Status: %d", int32(status)),
			}}
			return
		}

		starts := make([]int64, len(v.start))
		for i, s := range v.start {
			starts[i] = cpmodel.SolutionIntegerValue(response, s)
		}
		done <- solveOutcome{result: solveResult{ok: true, starts: starts}}
	}()

	select {
	case outcome := <-done:
		return outcome.result, outcome.err
	case <-ctx.Done():
		return solveResult{}, ctx.Err()
	}
}

func floatPtr(f float64) *float64 { return &f }

// extractAssignments decodes solver output back into the request's own
// ordering: session order is preserved, RoomID passes through unchanged,
// and a start index outside the slot horizon yields a nil StartTime
// rather than panicking.
func extractAssignments(req Request, slots []timeSlot, starts []int64) []Assignment {
	assignments := make([]Assignment, len(req.Sessions))

	for i, s := range req.Sessions {
		assignments[i] = Assignment{SessionID: s.ID, RoomID: s.RoomID}

		idx := int(starts[i])
		if idx < 0 || idx >= len(slots) {
			continue
		}
		at := slots[idx].at
		assignments[i].StartTime = &at
	}

	return assignments
}
