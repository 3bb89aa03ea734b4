// WhenTo - Collaborative event calendar for self-hosted environments
// Copyright (C) 2025 WhenTo Contributors
// SPDX-License-Identifier: BSL-1.1

package scheduler

import (
	"strings"
	"time"

	"github.com/eventsched/pkg/datevalidation"
)

const defaultStartHour = 9
const defaultStartMinute = 0

// generateTimeSlots discretizes [req.StartDate, req.EndDate] into fixed
// SlotMinutes buckets within the daily window [startTime, 17:00], one
// calendar day at a time. It never returns an error: a nil StartTime
// means 09:00, a StartTime later than 17:00 yields no slots for any day,
// and an empty result is a legitimate outcome the caller must check for.
func generateTimeSlots(req Request) []timeSlot {
	hour, minute := defaultStartHour, defaultStartMinute
	if req.StartTime != nil {
		hour, minute = req.StartTime.Hour(), req.StartTime.Minute()
	}
	dailyStart := hour*60 + minute

	countryCode := ""
	if req.SkipHolidays && req.Timezone != "" {
		countryCode = datevalidation.GetCountryFromTimezone(req.Timezone)
	}

	var slots []timeSlot

	startDay := truncateToDate(req.StartDate)
	endDay := truncateToDate(req.EndDate)

	for day := startDay; !day.After(endDay); day = day.AddDate(0, 0, 1) {
		if countryCode != "" && datevalidation.IsHoliday(day, countryCode) {
			continue
		}

		for minutesOfDay := dailyStart; minutesOfDay <= DailyWindowEnd; minutesOfDay += SlotMinutes {
			slots = append(slots, timeSlot{at: time.Date(
				day.Year(), day.Month(), day.Day(),
				minutesOfDay/60, minutesOfDay%60, 0, 0,
				day.Location(),
			)})
		}
	}

	return slots
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// parseGapMinutes clamps a negative gap to zero.
func parseGapMinutes(gapMinutes int) int {
	if gapMinutes < 0 {
		return 0
	}
	return gapMinutes
}

// isBlank reports whether a speaker name is empty once whitespace is
// trimmed: an absent or whitespace-only speaker gets no speaker
// conflict constraint for that session.
func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
