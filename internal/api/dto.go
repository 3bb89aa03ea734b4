// WhenTo - Collaborative event calendar for self-hosted environments
// Copyright (C) 2025 WhenTo Contributors
// SPDX-License-Identifier: BSL-1.1

package api

import (
	"time"

	"github.com/eventsched/eventsched/internal/scheduler"
)

// RoomDTO mirrors scheduler.Room on the wire.
type RoomDTO struct {
	ID       int    `json:"id" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Capacity int    `json:"capacity" validate:"gte=0"`
}

// SessionDTO mirrors scheduler.Session on the wire. RoomID absent means
// whole-venue, exactly as in the domain type.
type SessionDTO struct {
	ID          int    `json:"id" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Speaker     string `json:"speaker,omitempty"`
	DurationMin int    `json:"durationMin" validate:"gt=0"`
	Topic       string `json:"topic"`
	Capacity    int    `json:"capacity" validate:"gte=0"`
	RoomID      *int   `json:"roomId,omitempty"`
}

// ScheduleRequestDTO is the wire schema for the core scheduling endpoint:
// dates and times travel as strings, not as time.Time, so malformed input
// can be handled per-field instead of failing JSON decode outright.
type ScheduleRequestDTO struct {
	EventID      int          `json:"eventId" validate:"required"`
	StartDate    string       `json:"startDate" validate:"required"`
	EndDate      string       `json:"endDate" validate:"required"`
	StartTime    string       `json:"startTime,omitempty"`
	GapMinutes   *int         `json:"gapMinutes,omitempty" validate:"omitempty,gte=0"`
	Sessions     []SessionDTO `json:"sessions" validate:"required,min=1,dive"`
	Rooms        []RoomDTO    `json:"rooms" validate:"required,min=1,dive"`
	Timezone     string       `json:"timezone,omitempty"`
	SkipHolidays bool         `json:"skipHolidays,omitempty"`
}

const dateLayout = "2006-01-02"

// ToDomain converts the wire DTO into scheduler.Request. StartDate and
// EndDate are parsed strictly - a malformed value is a caller error. An
// unparseable StartTime falls back silently to nil (scheduler.Schedule then
// defaults to 09:00). defaultGapMinutes fills GapMinutes when the request
// omits it.
func (dto ScheduleRequestDTO) ToDomain(defaultGapMinutes int) (scheduler.Request, error) {
	startDate, err := time.Parse(dateLayout, dto.StartDate)
	if err != nil {
		return scheduler.Request{}, &FieldError{Field: "startDate", Message: "must be in YYYY-MM-DD format"}
	}

	endDate, err := time.Parse(dateLayout, dto.EndDate)
	if err != nil {
		return scheduler.Request{}, &FieldError{Field: "endDate", Message: "must be in YYYY-MM-DD format"}
	}

	gapMinutes := defaultGapMinutes
	if dto.GapMinutes != nil {
		gapMinutes = *dto.GapMinutes
	}

	req := scheduler.Request{
		EventID:      dto.EventID,
		StartDate:    startDate,
		EndDate:      endDate,
		GapMinutes:   gapMinutes,
		Sessions:     make([]scheduler.Session, len(dto.Sessions)),
		Rooms:        make([]scheduler.Room, len(dto.Rooms)),
		Timezone:     dto.Timezone,
		SkipHolidays: dto.SkipHolidays,
	}

	if dto.StartTime != "" {
		if parsed, err := parseClockTime(dto.StartTime); err == nil {
			req.StartTime = &parsed
		}
	}

	for i, s := range dto.Sessions {
		req.Sessions[i] = scheduler.Session{
			ID:          s.ID,
			Title:       s.Title,
			Speaker:     s.Speaker,
			DurationMin: s.DurationMin,
			Topic:       s.Topic,
			Capacity:    s.Capacity,
			RoomID:      s.RoomID,
		}
	}
	for i, r := range dto.Rooms {
		req.Rooms[i] = scheduler.Room{ID: r.ID, Name: r.Name, Capacity: r.Capacity}
	}

	return req, nil
}

// parseClockTime accepts "15:04" or full RFC3339, matching the two shapes
// an event-brief tool is likely to send.
func parseClockTime(value string) (time.Time, error) {
	if t, err := time.Parse("15:04", value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}

// FieldError reports a single malformed-field condition caught during DTO
// conversion, ahead of struct-level validation.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// ScheduleResponseDTO is the flat wire schema for the core scheduling
// endpoint - deliberately not wrapped in the generic {success,data,error}
// envelope the rest of the service uses, since this shape is a hard
// external contract.
type ScheduleResponseDTO struct {
	Success     bool                   `json:"success"`
	Message     string                 `json:"message,omitempty"`
	Assignments []scheduler.Assignment `json:"assignments"`
}

func toResponseDTO(resp scheduler.Response) ScheduleResponseDTO {
	return ScheduleResponseDTO{
		Success:     resp.Success,
		Message:     resp.Message,
		Assignments: resp.Assignments,
	}
}

// BriefRequestDTO is the request body for /parse-brief and /nlp/entities.
type BriefRequestDTO struct {
	Text string `json:"text" validate:"required"`
}

// HealthResponseDTO matches the original_source health endpoint's shape.
type HealthResponseDTO struct {
	Status string `json:"status"`
	Model  string `json:"model"`
}
