// WhenTo - Collaborative event calendar for self-hosted environments
// Copyright (C) 2025 WhenTo Contributors
// SPDX-License-Identifier: BSL-1.1

package brief

import "testing"

func TestParseBrief_TitleFromEventKeyword(t *testing.T) {
	res := ParseBrief("A tech summit for the region. It will be held in Colombo.")
	if res.Title == nil {
		t.Fatal("expected a title to be extracted")
	}
	if *res.Title != "tech summit for the region" {
		t.Errorf("unexpected title: %q", *res.Title)
	}
}

func TestParseBrief_TitleFallbackToShortSentence(t *testing.T) {
	res := ParseBrief("Annual developer gathering. Lots of talks and food.")
	if res.Title == nil {
		t.Fatal("expected a fallback title")
	}
}

func TestParseBrief_Audience(t *testing.T) {
	res := ParseBrief("We expect around 250 attendees to join us this year.")
	if res.EstimatedAudience == nil || *res.EstimatedAudience != 250 {
		t.Fatalf("expected audience 250, got %v", res.EstimatedAudience)
	}
}

func TestParseBrief_BudgetWithKSuffix(t *testing.T) {
	res := ParseBrief("Our budget is 250k LKR for the whole event.")
	if res.BudgetLkr == nil || *res.BudgetLkr != 250000 {
		t.Fatalf("expected budget 250000, got %v", res.BudgetLkr)
	}
}

func TestParseBrief_BudgetWithMillionSuffix(t *testing.T) {
	res := ParseBrief("We have set aside 1.5 million LKR as budget.")
	if res.BudgetLkr == nil || *res.BudgetLkr != 1500000 {
		t.Fatalf("expected budget 1500000, got %v", res.BudgetLkr)
	}
}

func TestParseBrief_BudgetWithThousandSuffix(t *testing.T) {
	res := ParseBrief("The cost is 40 thousand for catering alone.")
	if res.BudgetLkr == nil || *res.BudgetLkr != 40000 {
		t.Fatalf("expected budget 40000, got %v", res.BudgetLkr)
	}
}

func TestParseBrief_TracksFromDigit(t *testing.T) {
	res := ParseBrief("The conference will run across 3 tracks simultaneously.")
	if res.Tracks == nil || *res.Tracks != 3 {
		t.Fatalf("expected 3 tracks, got %v", res.Tracks)
	}
}

func TestParseBrief_TracksFromWrittenNumber(t *testing.T) {
	res := ParseBrief("We are organizing two track sessions this time.")
	if res.Tracks == nil || *res.Tracks != 2 {
		t.Fatalf("expected 2 tracks, got %v", res.Tracks)
	}
}

func TestParseBrief_NoMatchesReturnsNils(t *testing.T) {
	res := ParseBrief("hi")
	if res.EstimatedAudience != nil || res.BudgetLkr != nil || res.Tracks != nil {
		t.Errorf("expected all fields nil for unparseable input, got %+v", res)
	}
}
