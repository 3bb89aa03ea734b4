// WhenTo - Collaborative event calendar for self-hosted environments
// Copyright (C) 2025 WhenTo Contributors
// SPDX-License-Identifier: BSL-1.1

package scheduler

import (
	"strings"

	"github.com/google/or-tools/ortools/sat/go/cpmodel"
)

// cpVars holds every decision variable the constraint layer and the
// objective builder need. It is owned entirely by one Schedule call and
// discarded once that call returns - there is no global solver state.
type cpVars struct {
	builder  *cpmodel.CpModelBuilder
	horizon  int
	start    []cpmodel.IntVar
	interval []cpmodel.IntervalVar
}

// buildIntervalVars allocates one start variable and one fixed-size
// interval variable per session, bounded to the slot horizon.
func buildIntervalVars(builder *cpmodel.CpModelBuilder, horizon int, p preprocessed) cpVars {
	n := len(p.durationSlots)
	v := cpVars{
		builder:  builder,
		horizon:  horizon,
		start:    make([]cpmodel.IntVar, n),
		interval: make([]cpmodel.IntervalVar, n),
	}

	domain := cpmodel.NewDomain(0, int64(horizon-1))
	for i := 0; i < n; i++ {
		v.start[i] = builder.NewIntVarFromDomain(domain)
		v.interval[i] = builder.NewFixedSizeIntervalVar(v.start[i], int64(p.durationSlots[i]))
	}

	return v
}

// extendedInterval synthesizes, on demand, an interval of size
// durationSlots[i]+gapSlots anchored at start[i]. Extended intervals are
// built fresh per constraint group, never cached or reused.
func (v cpVars) extendedInterval(i int, p preprocessed) cpmodel.IntervalVar {
	size := int64(p.durationSlots[i] + p.gapSlots)
	return v.builder.NewFixedSizeIntervalVar(v.start[i], size)
}

// emitConstraints posts room no-overlap, speaker no-overlap, whole-venue
// exclusion (both the homogeneous whole-venue no-overlap and the
// heterogeneous pairwise disjunction against every roomed session), and
// the temporal horizon bound.
func emitConstraints(v cpVars, req Request, p preprocessed) {
	n := len(req.Sessions)

	emitRoomNoOverlap(v, req, p)
	emitSpeakerNoOverlap(v, req, p)
	emitWholeVenueExclusion(v, p)
	emitTemporalBounds(v, p, n)
}

// emitRoomNoOverlap posts one no-overlap constraint per room, over
// extended (gap-aware) intervals when a gap is configured, base intervals
// otherwise. Empty groups emit nothing.
func emitRoomNoOverlap(v cpVars, req Request, p preprocessed) {
	byRoom := make(map[int][]int)
	for i := range req.Sessions {
		if p.roomIndex[i] == noRoom {
			continue
		}
		byRoom[p.roomIndex[i]] = append(byRoom[p.roomIndex[i]], i)
	}

	for _, members := range byRoom {
		if len(members) == 0 {
			continue
		}
		intervals := make([]cpmodel.IntervalVar, len(members))
		for k, i := range members {
			if p.gapSlots > 0 {
				intervals[k] = v.extendedInterval(i, p)
			} else {
				intervals[k] = v.interval[i]
			}
		}
		v.builder.AddNoOverlap(intervals...)
	}
}

// emitSpeakerNoOverlap groups sessions by trimmed, non-empty, exact-case
// speaker name; groups of size >= 2 get a no-overlap constraint over base
// intervals. Speaker conflicts never carry gap time.
func emitSpeakerNoOverlap(v cpVars, req Request, p preprocessed) {
	bySpeaker := make(map[string][]int)
	for i, s := range req.Sessions {
		if isBlank(s.Speaker) {
			continue
		}
		speaker := strings.TrimSpace(s.Speaker)
		bySpeaker[speaker] = append(bySpeaker[speaker], i)
	}

	for _, members := range bySpeaker {
		if len(members) < 2 {
			continue
		}
		intervals := make([]cpmodel.IntervalVar, len(members))
		for k, i := range members {
			intervals[k] = v.interval[i]
		}
		v.builder.AddNoOverlap(intervals...)
	}
}

// emitWholeVenueExclusion handles whole-venue sessions, which cannot be
// captured by a single no-overlap against a heterogeneous pool of roomed
// sessions: each (whole-venue, roomed) pair gets an explicit disjunctive
// encoding via two indicator booleans.
func emitWholeVenueExclusion(v cpVars, p preprocessed) {
	var wholeVenue, roomed []int
	for i := range p.roomIndex {
		if p.roomIndex[i] == noRoom {
			wholeVenue = append(wholeVenue, i)
		} else {
			roomed = append(roomed, i)
		}
	}

	if len(wholeVenue) >= 2 {
		intervals := make([]cpmodel.IntervalVar, len(wholeVenue))
		for k, i := range wholeVenue {
			intervals[k] = v.extendedInterval(i, p)
		}
		v.builder.AddNoOverlap(intervals...)
	}

	for _, i := range wholeVenue {
		for _, j := range roomed {
			emitPairwiseDisjunction(v, p, i, j)
		}
	}
}

// emitPairwiseDisjunction posts:
//
//	start[j] >= start[i] + durationSlots[i] + gapSlots   OR
//	start[i] >= start[j] + durationSlots[j] + gapSlots
//
// encoded as two reified inequalities joined by a boolean-or.
func emitPairwiseDisjunction(v cpVars, p preprocessed, i, j int) {
	iBeforeJ := v.builder.NewBoolVar()
	jBeforeI := v.builder.NewBoolVar()

	iEndWithGap := cpmodel.NewLinearExpr().AddTerm(v.start[i], 1).AddConstant(int64(p.durationSlots[i] + p.gapSlots))
	jEndWithGap := cpmodel.NewLinearExpr().AddTerm(v.start[j], 1).AddConstant(int64(p.durationSlots[j] + p.gapSlots))

	v.builder.AddGreaterOrEqual(v.start[j], iEndWithGap).OnlyEnforceIf(iBeforeJ)
	v.builder.AddGreaterOrEqual(v.start[i], jEndWithGap).OnlyEnforceIf(jBeforeI)
	v.builder.AddBoolOr(iBeforeJ, jBeforeI)
}

// emitTemporalBounds requires every interval to end at or before the slot
// horizon.
func emitTemporalBounds(v cpVars, p preprocessed, n int) {
	for i := 0; i < n; i++ {
		end := cpmodel.NewLinearExpr().AddTerm(v.start[i], 1).AddConstant(int64(p.durationSlots[i]))
		v.builder.AddLessOrEqual(end, cpmodel.NewConstant(int64(v.horizon)))
	}
}

// buildObjective minimizes the latest start slot, and declares (but never
// folds into the minimized expression) per-topic absolute-difference hint
// variables.
func buildObjective(v cpVars, req Request) {
	maxSlot := v.builder.NewIntVarFromDomain(cpmodel.NewDomain(0, int64(v.horizon-1)))
	for i := range v.start {
		v.builder.AddLessOrEqual(v.start[i], maxSlot)
	}
	v.builder.Minimize(maxSlot)

	declareTopicHints(v, req)
}

// declareTopicHints introduces diff[i,j] = |start[i] - start[j]| for every
// same-topic pair with i < j. These variables influence branching among
// makespan-optimal solutions without being part of the minimized
// expression.
func declareTopicHints(v cpVars, req Request) {
	n := len(req.Sessions)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if req.Sessions[i].Topic == "" || req.Sessions[i].Topic != req.Sessions[j].Topic {
				continue
			}
			diff := v.builder.NewIntVarFromDomain(cpmodel.NewDomain(0, int64(v.horizon)))
			delta := cpmodel.NewLinearExpr().AddTerm(v.start[i], 1).AddTerm(v.start[j], -1)
			v.builder.AddAbsEquality(diff, delta)
		}
	}
}
