// WhenTo - Collaborative event calendar for self-hosted environments
// Copyright (C) 2025 WhenTo Contributors
// SPDX-License-Identifier: BSL-1.1

package export

import (
	"strings"
	"testing"
	"time"

	"github.com/eventsched/eventsched/internal/scheduler"
)

func intPtr(i int) *int { return &i }

func TestToICS_FailedResponse(t *testing.T) {
	_, err := ToICS(scheduler.Response{Success: false}, Meta{})
	if err != ErrNothingToExport {
		t.Fatalf("expected ErrNothingToExport, got %v", err)
	}
}

func TestToICS_EmptyAssignments(t *testing.T) {
	_, err := ToICS(scheduler.Response{Success: true}, Meta{})
	if err != ErrNothingToExport {
		t.Fatalf("expected ErrNothingToExport, got %v", err)
	}
}

func TestToICS_RendersEvents(t *testing.T) {
	start := time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC)
	resp := scheduler.Response{
		Success: true,
		Assignments: []scheduler.Assignment{
			{SessionID: 1, RoomID: intPtr(1), StartTime: &start},
		},
	}
	meta := Meta{
		EventName: "Tech Summit",
		Domain:    "example.com",
		Sessions: map[int]SessionMeta{
			1: {Title: "Opening Keynote", Speaker: "Ada Lovelace", DurationMin: 60},
		},
		Rooms: map[int]string{1: "Hall A"},
	}

	out, err := ToICS(resp, meta)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(out, "BEGIN:VCALENDAR") || !strings.Contains(out, "END:VCALENDAR") {
		t.Error("expected a well-formed VCALENDAR wrapper")
	}
	if !strings.Contains(out, "SUMMARY:Opening Keynote") {
		t.Errorf("expected summary in output, got:\n%s", out)
	}
	if !strings.Contains(out, "DTSTART:20260315T090000") {
		t.Errorf("expected DTSTART in output, got:\n%s", out)
	}
	if !strings.Contains(out, "DTEND:20260315T100000") {
		t.Errorf("expected DTEND one hour later, got:\n%s", out)
	}
	if !strings.Contains(out, "LOCATION:Hall A") {
		t.Errorf("expected location, got:\n%s", out)
	}
	if !strings.Contains(out, "\r\n") {
		t.Error("expected CRLF line endings per RFC 5545")
	}
}

func TestToICS_WholeVenueSessionHasNoLocation(t *testing.T) {
	start := time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC)
	resp := scheduler.Response{
		Success: true,
		Assignments: []scheduler.Assignment{
			{SessionID: 2, StartTime: &start},
		},
	}
	meta := Meta{
		Sessions: map[int]SessionMeta{2: {Title: "Plenary", DurationMin: 30}},
	}

	out, err := ToICS(resp, meta)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(out, "LOCATION:") {
		t.Errorf("expected no location for a whole-venue session, got:\n%s", out)
	}
	if !strings.Contains(out, "Room: whole venue") {
		t.Errorf("expected description to note whole venue, got:\n%s", out)
	}
}
