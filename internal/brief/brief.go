// WhenTo - Collaborative event calendar for self-hosted environments
// Copyright (C) 2025 WhenTo Contributors
// SPDX-License-Identifier: BSL-1.1

// Package brief implements best-effort natural-language extraction for
// /parse-brief and /nlp/entities: regex and proximity heuristics,
// reimplemented natively with no NLP model dependency. The
// entity tagger in entities.go is a deliberately reduced stand-in for
// spaCy's NER model (no Go library in the example pack offers an
// equivalent, see DESIGN.md).
package brief

import (
	"regexp"
	"strconv"
	"strings"
)

// Result is the structured extraction returned by ParseBrief.
type Result struct {
	Title             *string `json:"title"`
	EstimatedAudience *int    `json:"estimatedAudience"`
	BudgetLkr         *int    `json:"budgetLkr"`
	Tracks            *int    `json:"tracks"`
}

var eventKeywords = []string{
	"summit", "conference", "workshop", "seminar", "meetup", "event", "festival", "expo", "exhibition",
}

var titlePrefixes = []string{"a ", "an ", "the ", "this ", "that ", "our ", "my "}

var sentenceSplit = regexp.MustCompile(`(?:[.!?]+\s+|\n+)`)

// ParseBrief extracts a best-effort title, estimated audience, budget (in
// LKR) and track count from free text, mirroring the original Python
// service's regex-and-proximity heuristics.
func ParseBrief(text string) Result {
	sentences := splitSentences(text)
	low := strings.ToLower(text)

	return Result{
		Title:             extractTitle(sentences),
		EstimatedAudience: extractAudience(text, low),
		BudgetLkr:         extractBudget(low),
		Tracks:            extractTracks(low),
	}
}

func splitSentences(text string) []string {
	parts := sentenceSplit.Split(text, -1)
	sentences := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			sentences = append(sentences, p)
		}
	}
	return sentences
}

func extractTitle(sentences []string) *string {
	limit := len(sentences)
	if limit > 3 {
		limit = 3
	}

	for _, sent := range sentences[:limit] {
		low := strings.ToLower(sent)
		for _, kw := range eventKeywords {
			if strings.Contains(low, kw) {
				title := stripTitlePrefix(sent)
				title = capWords(title, 12)
				return &title
			}
		}
	}

	limit = len(sentences)
	if limit > 2 {
		limit = 2
	}
	for _, sent := range sentences[:limit] {
		wordCount := len(strings.Fields(sent))
		if wordCount <= 12 && len(sent) > 10 {
			title := stripTitlePrefix(sent)
			return &title
		}
	}

	return nil
}

func stripTitlePrefix(s string) string {
	low := strings.ToLower(s)
	for _, prefix := range titlePrefixes {
		if strings.HasPrefix(low, prefix) {
			return strings.TrimSpace(s[len(prefix):])
		}
	}
	return strings.TrimSpace(s)
}

func capWords(s string, max int) string {
	if len(s) <= 80 {
		return s
	}
	words := strings.Fields(s)
	if len(words) > max {
		words = words[:max]
	}
	return strings.Join(words, " ")
}

var audiencePattern = regexp.MustCompile(`\b(\d{1,6}(?:,\d{3})*)\s*(?:people|attendees?|participants?|guests?|delegates?|visitors?)\b`)
var numberPattern = regexp.MustCompile(`\b(\d{1,6}(?:,\d{3})*)\b`)
var audienceWords = []string{"people", "attendees", "attendee", "participants", "participant", "guests", "guest", "delegates", "visitors"}

func extractAudience(text, low string) *int {
	if m := audiencePattern.FindStringSubmatch(low); m != nil {
		if n, err := strconv.Atoi(strings.ReplaceAll(m[1], ",", "")); err == nil {
			return &n
		}
	}
	return extractNumberWithContext(text, numberPattern, audienceWords, 1)
}

// extractNumberWithContext finds a number whose surrounding 50-character
// window contains one of contextWords within 30 characters of the match,
// mirroring the Python service's extract_number_with_context helper.
func extractNumberWithContext(text string, pattern *regexp.Regexp, contextWords []string, multiplier int) *int {
	for _, m := range pattern.FindAllStringSubmatchIndex(text, -1) {
		numStr := strings.ReplaceAll(text[m[2]:m[3]], ",", "")
		num, err := strconv.Atoi(numStr)
		if err != nil {
			continue
		}

		start := m[0] - 50
		if start < 0 {
			start = 0
		}
		end := m[1] + 50
		if end > len(text) {
			end = len(text)
		}
		context := strings.ToLower(text[start:end])
		numPosInContext := m[0] - start

		for _, word := range contextWords {
			wordPos := strings.Index(context, word)
			if wordPos == -1 {
				continue
			}
			if abs(wordPos-numPosInContext) < 30 {
				result := num * multiplier
				return &result
			}
		}
	}
	return nil
}

var budgetPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b(\d{1,6}(?:,\d{3})*(?:\.\d+)?)\s*million\s*(?:lkr|rs|rupees?)?\b`),
	regexp.MustCompile(`\b(\d{1,6}(?:,\d{3})*(?:\.\d+)?)\s*k\s*(?:lkr|rs|rupees?)?\b`),
	regexp.MustCompile(`\b(\d{1,6}(?:,\d{3})*(?:\.\d+)?)\s*(?:thousand|k)\s*(?:lkr|rs|rupees?)?\b`),
	regexp.MustCompile(`budget[:\s]+(?:of\s+)?(?:lkr|rs|rupees?)?\s*(\d{1,6}(?:,\d{3})*(?:\.\d+)?)\s*(?:k|thousand|million)?`),
	regexp.MustCompile(`(?:lkr|rs|rupees?)\s*(\d{1,6}(?:,\d{3})*(?:\.\d+)?)\s*(?:k|thousand|million)?`),
}

var budgetKeywords = []string{"budget", "cost", "price"}

func extractBudget(low string) *int {
	for _, pattern := range budgetPatterns {
		loc := pattern.FindStringSubmatchIndex(low)
		if loc == nil {
			continue
		}
		numStr := strings.ReplaceAll(low[loc[2]:loc[3]], ",", "")
		val, err := strconv.ParseFloat(numStr, 64)
		if err != nil {
			continue
		}

		ctxStart := loc[0] - 10
		if ctxStart < 0 {
			ctxStart = 0
		}
		ctxEnd := loc[1] + 10
		if ctxEnd > len(low) {
			ctxEnd = len(low)
		}
		matchContext := low[ctxStart:ctxEnd]

		budget := scaleBudget(val, matchContext)
		return &budget
	}

	budget := extractNumberWithContext(low, numberPattern, []string{"budget", "cost", "price", "spending", "expense"}, 1)
	if budget == nil {
		return nil
	}

	for _, keyword := range budgetKeywords {
		keywordPos := strings.Index(low, keyword)
		if keywordPos == -1 {
			continue
		}
		if scaled, ok := scaleNearKeyword(low, keywordPos, *budget); ok {
			return &scaled
		}
	}
	return budget
}

func scaleBudget(val float64, context string) int {
	switch {
	case strings.Contains(context, "million"):
		return int(val * 1000000)
	case strings.Contains(context, "k") || strings.Contains(context, "thousand"):
		return int(val * 1000)
	default:
		return int(val)
	}
}

func scaleNearKeyword(low string, keywordPos, value int) (int, bool) {
	millionPos := indexWithin(low, "million", keywordPos, keywordPos+60)
	if millionPos != -1 {
		return value * 1000000, true
	}
	kPos := indexWithin(low, "k", keywordPos, keywordPos+50)
	thousandPos := indexWithin(low, "thousand", keywordPos, keywordPos+60)
	if kPos != -1 || thousandPos != -1 {
		return value * 1000, true
	}
	return value, false
}

func indexWithin(s, substr string, from, to int) int {
	if from < 0 {
		from = 0
	}
	if to > len(s) {
		to = len(s)
	}
	if from >= to {
		return -1
	}
	idx := strings.Index(s[from:to], substr)
	if idx == -1 {
		return -1
	}
	return from + idx
}

var trackPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b(\d+)\s*tracks?\b`),
	regexp.MustCompile(`\b(\d+)\s*sessions?\b`),
	regexp.MustCompile(`\b(\d+)\s*streams?\b`),
	regexp.MustCompile(`track[s]?\s*(?:of\s+)?(\d+)`),
	regexp.MustCompile(`session[s]?\s*(?:of\s+)?(\d+)`),
}

var writtenNumbers = []struct {
	word string
	n    int
}{
	{"one", 1}, {"two", 2}, {"three", 3}, {"four", 4}, {"five", 5},
	{"six", 6}, {"seven", 7}, {"eight", 8}, {"nine", 9}, {"ten", 10},
}

func extractTracks(low string) *int {
	for _, pattern := range trackPatterns {
		if m := pattern.FindStringSubmatch(low); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil {
				return &n
			}
		}
	}

	for _, wn := range writtenNumbers {
		if strings.Contains(low, wn.word+" track") || strings.Contains(low, wn.word+" session") {
			n := wn.n
			return &n
		}
	}
	return nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
