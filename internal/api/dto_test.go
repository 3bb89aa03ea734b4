// WhenTo - Collaborative event calendar for self-hosted environments
// Copyright (C) 2025 WhenTo Contributors
// SPDX-License-Identifier: BSL-1.1

package api_test

import (
	"testing"

	"github.com/eventsched/eventsched/internal/api"
)

func TestScheduleRequestDTO_ToDomain_ParsesDates(t *testing.T) {
	dto := api.ScheduleRequestDTO{
		EventID:   1,
		StartDate: "2026-03-15",
		EndDate:   "2026-03-16",
		Rooms:     []api.RoomDTO{{ID: 1, Name: "A", Capacity: 10}},
		Sessions:  []api.SessionDTO{{ID: 1, Title: "X", DurationMin: 30}},
	}

	req, err := dto.ToDomain(0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.StartDate.Format("2006-01-02") != "2026-03-15" {
		t.Errorf("unexpected start date: %v", req.StartDate)
	}
	if req.EndDate.Format("2006-01-02") != "2026-03-16" {
		t.Errorf("unexpected end date: %v", req.EndDate)
	}
}

func TestScheduleRequestDTO_ToDomain_MalformedStartDateErrors(t *testing.T) {
	dto := api.ScheduleRequestDTO{
		StartDate: "March 15th",
		EndDate:   "2026-03-16",
	}

	if _, err := dto.ToDomain(0); err == nil {
		t.Fatal("expected an error for a malformed startDate")
	}
}

func TestScheduleRequestDTO_ToDomain_MalformedStartTimeFallsBackToNil(t *testing.T) {
	dto := api.ScheduleRequestDTO{
		StartDate: "2026-03-15",
		EndDate:   "2026-03-15",
		StartTime: "not-a-time",
	}

	req, err := dto.ToDomain(0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.StartTime != nil {
		t.Errorf("expected StartTime to fall back to nil, got %v", req.StartTime)
	}
}

func TestScheduleRequestDTO_ToDomain_ParsesClockStartTime(t *testing.T) {
	dto := api.ScheduleRequestDTO{
		StartDate: "2026-03-15",
		EndDate:   "2026-03-15",
		StartTime: "10:30",
	}

	req, err := dto.ToDomain(0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.StartTime == nil {
		t.Fatal("expected a parsed StartTime")
	}
	if req.StartTime.Hour() != 10 || req.StartTime.Minute() != 30 {
		t.Errorf("unexpected start time: %v", req.StartTime)
	}
}

func TestScheduleRequestDTO_ToDomain_AppliesDefaultGapMinutesWhenOmitted(t *testing.T) {
	dto := api.ScheduleRequestDTO{
		StartDate: "2026-03-15",
		EndDate:   "2026-03-15",
	}

	req, err := dto.ToDomain(15)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.GapMinutes != 15 {
		t.Errorf("expected default gap 15, got %d", req.GapMinutes)
	}
}

func TestScheduleRequestDTO_ToDomain_ExplicitGapMinutesOverridesDefault(t *testing.T) {
	gap := 5
	dto := api.ScheduleRequestDTO{
		StartDate:  "2026-03-15",
		EndDate:    "2026-03-15",
		GapMinutes: &gap,
	}

	req, err := dto.ToDomain(15)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.GapMinutes != 5 {
		t.Errorf("expected explicit gap 5, got %d", req.GapMinutes)
	}
}

func TestScheduleRequestDTO_ToDomain_PreservesWholeVenueSessions(t *testing.T) {
	dto := api.ScheduleRequestDTO{
		StartDate: "2026-03-15",
		EndDate:   "2026-03-15",
		Rooms:     []api.RoomDTO{{ID: 1, Name: "A", Capacity: 10}},
		Sessions:  []api.SessionDTO{{ID: 1, Title: "Plenary", DurationMin: 30}},
	}

	req, err := dto.ToDomain(0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Sessions[0].RoomID != nil {
		t.Errorf("expected nil RoomID for a whole-venue session, got %v", req.Sessions[0].RoomID)
	}
}
