// WhenTo - Collaborative event calendar for self-hosted environments
// Copyright (C) 2025 WhenTo Contributors
// SPDX-License-Identifier: BSL-1.1

// Package datevalidation resolves an IANA timezone to a country code and
// checks whether a date is a public holiday in that country, backing the
// scheduler's optional holiday-skipping day loop.
package datevalidation

import (
	"strings"
	"time"

	"github.com/go-playground/tz"
	holidays "github.com/omidnikrah/go-holidays"
)

// GetCountryFromTimezone converts an IANA zone name (e.g. "Asia/Colombo")
// to its ISO country code, or "" if no country claims that zone.
func GetCountryFromTimezone(timezone string) string {
	for _, country := range tz.GetCountries() {
		for _, zone := range country.Zones {
			if zone.Name == timezone {
				return strings.ToUpper(country.Code)
			}
		}
	}
	return ""
}

// IsHoliday reports whether date is a public holiday in countryCode.
func IsHoliday(date time.Time, countryCode string) bool {
	return holidays.IsHoliday(countryCode, date)
}
