// WhenTo - Collaborative event calendar for self-hosted environments
// Copyright (C) 2025 WhenTo Contributors
// SPDX-License-Identifier: BSL-1.1

package brief

import "testing"

func hasEntity(entities []Entity, text, label string) bool {
	for _, e := range entities {
		if e.Text == text && e.Label == label {
			return true
		}
	}
	return false
}

func TestExtractEntities_Date(t *testing.T) {
	entities := ExtractEntities("The event is scheduled for March 15, 2026 in Colombo.")
	if !hasEntity(entities, "March 15, 2026", LabelDate) {
		t.Errorf("expected a DATE entity, got %+v", entities)
	}
}

func TestExtractEntities_Money(t *testing.T) {
	entities := ExtractEntities("The sponsorship package costs LKR 500000 total.")
	if !hasEntity(entities, "LKR 500000", LabelMoney) {
		t.Errorf("expected a MONEY entity, got %+v", entities)
	}
}

func TestExtractEntities_Quantity(t *testing.T) {
	entities := ExtractEntities("We are expecting 300 attendees across 4 tracks.")
	if !hasEntity(entities, "300 attendees", LabelQuantity) {
		t.Errorf("expected a QUANTITY entity for attendees, got %+v", entities)
	}
	if !hasEntity(entities, "4 tracks", LabelQuantity) {
		t.Errorf("expected a QUANTITY entity for tracks, got %+v", entities)
	}
}

func TestExtractEntities_Organization(t *testing.T) {
	entities := ExtractEntities("Sponsored by Ceylon Tech Foundation and Acme Corp.")
	if !hasEntity(entities, "Ceylon Tech Foundation", LabelOrg) {
		t.Errorf("expected an ORG entity, got %+v", entities)
	}
}

func TestExtractEntities_NoMatches(t *testing.T) {
	entities := ExtractEntities("hello there")
	if len(entities) != 0 {
		t.Errorf("expected no entities, got %+v", entities)
	}
}

func TestExtractEntities_OrderedByPosition(t *testing.T) {
	entities := ExtractEntities("On 2026-03-15 we expect 200 guests.")
	if len(entities) < 2 {
		t.Fatalf("expected at least 2 entities, got %+v", entities)
	}
	if entities[0].Label != LabelDate {
		t.Errorf("expected DATE entity first, got %+v", entities[0])
	}
}
