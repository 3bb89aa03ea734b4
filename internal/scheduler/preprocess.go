// WhenTo - Collaborative event calendar for self-hosted environments
// Copyright (C) 2025 WhenTo Contributors
// SPDX-License-Identifier: BSL-1.1

package scheduler

// noRoom marks a session as whole-venue: it has no room index, and
// occupies the entire venue instead of one resource.
const noRoom = -1

// preprocessed holds the per-session derived quantities the rest of the
// pipeline needs: duration and room index are computed once up front so
// every later stage works with slot-indexed integers, never minutes or
// request-level room IDs.
type preprocessed struct {
	durationSlots []int // one per session, ceil(durationMin / SlotMinutes), >= 1
	roomIndex     []int // one per session, index into req.Rooms or noRoom
	gapSlots      int
}

// preprocess derives duration-in-slots and room-index for every session,
// and the gap-in-slots shared by every resource-exclusion constraint.
//
// A RoomID that does not match any room in req.Rooms is treated as
// whole-venue (noRoom).
func preprocess(req Request) preprocessed {
	roomByID := make(map[int]int, len(req.Rooms))
	for i, r := range req.Rooms {
		roomByID[r.ID] = i
	}

	p := preprocessed{
		durationSlots: make([]int, len(req.Sessions)),
		roomIndex:     make([]int, len(req.Sessions)),
	}

	for i, s := range req.Sessions {
		p.durationSlots[i] = ceilDiv(s.DurationMin, SlotMinutes)
		if p.durationSlots[i] < 1 {
			p.durationSlots[i] = 1
		}

		if s.RoomID == nil {
			p.roomIndex[i] = noRoom
			continue
		}
		if idx, ok := roomByID[*s.RoomID]; ok {
			p.roomIndex[i] = idx
		} else {
			p.roomIndex[i] = noRoom
		}
	}

	gap := parseGapMinutes(req.GapMinutes)
	if gap > 0 {
		p.gapSlots = ceilDiv(gap, SlotMinutes)
	}

	return p
}

func ceilDiv(a, b int) int {
	if a <= 0 {
		return 0
	}
	return (a + b - 1) / b
}
