// WhenTo - Collaborative event calendar for self-hosted environments
// Copyright (C) 2025 WhenTo Contributors
// SPDX-License-Identifier: BSL-1.1

// Package export renders a computed schedule as an iCalendar document. It is
// a pure transform of data the scheduler already produced - it reads no
// store and writes none, so it does not touch the "no persistence of
// scheduling results" constraint on the scheduler itself.
package export

import (
	"errors"
	"fmt"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/eventsched/eventsched/internal/scheduler"
)

var ErrNothingToExport = errors.New("schedule has no assignments to export")

// Meta carries the event-level context the scheduler's Response doesn't
// itself hold - session titles, speakers and room names, keyed by ID, plus
// naming for the calendar feed.
type Meta struct {
	EventName string
	Domain    string
	Sessions  map[int]SessionMeta
	Rooms     map[int]string
}

type SessionMeta struct {
	Title       string
	Speaker     string
	DurationMin int
}

// ToICS renders a successful scheduler.Response as an RFC 5545 iCalendar
// document using floating local time, mirroring the calendar feed's
// existing time representation: one VEVENT per assignment, ordered as the
// assignments appear in the response.
func ToICS(resp scheduler.Response, meta Meta) (string, error) {
	if !resp.Success || len(resp.Assignments) == 0 {
		return "", ErrNothingToExport
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//WhenTo//Event Scheduler//EN")
	if meta.EventName != "" {
		cal.SetName(meta.EventName)
		cal.SetXWRCalName(meta.EventName)
	}

	for i, a := range resp.Assignments {
		addEvent(cal, i, a, meta)
	}

	icsContent := cal.Serialize()
	icsContent = strings.ReplaceAll(icsContent, "\n", "\r\n")

	return icsContent, nil
}

func addEvent(cal *ics.Calendar, index int, a scheduler.Assignment, meta Meta) {
	sessionMeta := meta.Sessions[a.SessionID]

	vevent := cal.AddEvent(eventUID(index, a, meta.Domain))
	vevent.SetDtStampTime(time.Now())
	vevent.SetStatus(ics.ObjectStatusConfirmed)

	summary := sessionMeta.Title
	if summary == "" {
		summary = fmt.Sprintf("Session %d", a.SessionID)
	}
	vevent.SetSummary(summary)

	if desc := buildDescription(a, sessionMeta, meta); desc != "" {
		vevent.SetDescription(desc)
	}

	if roomName := roomName(a.RoomID, meta.Rooms); roomName != "" {
		vevent.SetLocation(roomName)
	}

	if a.StartTime == nil {
		return
	}

	start := *a.StartTime
	duration := time.Duration(sessionMeta.DurationMin) * time.Minute
	if duration <= 0 {
		duration = time.Duration(scheduler.SlotMinutes) * time.Minute
	}
	end := start.Add(duration)

	vevent.AddProperty(ics.ComponentProperty("DTSTART"), start.Format("20060102T150405"))
	vevent.AddProperty(ics.ComponentProperty("DTEND"), end.Format("20060102T150405"))
}

func buildDescription(a scheduler.Assignment, meta SessionMeta, full Meta) string {
	var b strings.Builder
	if meta.Speaker != "" {
		b.WriteString("Speaker: " + meta.Speaker + "\n")
	}
	if roomName := roomName(a.RoomID, full.Rooms); roomName != "" {
		b.WriteString("Room: " + roomName + "\n")
	} else {
		b.WriteString("Room: whole venue\n")
	}
	return strings.TrimSpace(b.String())
}

func roomName(roomID *int, rooms map[int]string) string {
	if roomID == nil {
		return ""
	}
	return rooms[*roomID]
}

func eventUID(index int, a scheduler.Assignment, domain string) string {
	if domain == "" {
		domain = "eventsched.local"
	}
	return fmt.Sprintf("session-%d-%d@%s", a.SessionID, index, domain)
}
