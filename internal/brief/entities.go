// WhenTo - Collaborative event calendar for self-hosted environments
// Copyright (C) 2025 WhenTo Contributors
// SPDX-License-Identifier: BSL-1.1

package brief

import (
	"regexp"
	"strings"
)

// Entity is one labeled span, matching the shape of a spaCy doc.ents entry
// ({text, label}). No Go library in the example pack offers a pretrained
// NER model, so ExtractEntities is a deliberately reduced-fidelity,
// rule-based stand-in: it recognizes the entity classes that matter to an
// event brief - dates, money amounts, counted quantities, and
// organization names ending in a known suffix - rather than the full
// general-purpose tag set a spaCy model would return.
type Entity struct {
	Text  string `json:"text"`
	Label string `json:"label"`
}

const (
	LabelDate     = "DATE"
	LabelMoney    = "MONEY"
	LabelQuantity = "QUANTITY"
	LabelOrg      = "ORG"
)

var monthNames = `January|February|March|April|May|June|July|August|September|October|November|December`

var entityPatterns = []struct {
	label   string
	pattern *regexp.Regexp
}{
	{LabelDate, regexp.MustCompile(`\b(?:` + monthNames + `)\s+\d{1,2}(?:st|nd|rd|th)?(?:,?\s+\d{4})?\b`)},
	{LabelDate, regexp.MustCompile(`\b\d{1,2}(?:st|nd|rd|th)?\s+(?:` + monthNames + `)(?:\s+\d{4})?\b`)},
	{LabelDate, regexp.MustCompile(`\b\d{4}-\d{2}-\d{2}\b`)},
	{LabelMoney, regexp.MustCompile(`\b(?:LKR|Rs\.?|rupees?)\s*\d[\d,]*(?:\.\d+)?\s*(?:million|k|thousand)?\b`)},
	{LabelMoney, regexp.MustCompile(`\b\d[\d,]*(?:\.\d+)?\s*(?:million|thousand|k)\s*(?:LKR|Rs\.?|rupees?)\b`)},
	{LabelQuantity, regexp.MustCompile(`\b\d[\d,]*\s*(?:people|attendees?|participants?|guests?|delegates?|visitors?|tracks?|sessions?|streams?)\b`)},
}

var orgSuffixes = regexp.MustCompile(`\b([A-Z][\w&.]*(?:\s+[A-Z][\w&.]*){0,3}\s+(?:Inc|Ltd|LLC|Corp|Foundation|University|Institute|Society|Association))\b`)

// ExtractEntities scans text for dates, money amounts, counted quantities,
// and organization-like capitalized phrases, in that precedence order, with
// overlapping spans resolved in favor of the earlier pattern. Order within
// the result follows position in the source text.
func ExtractEntities(text string) []Entity {
	var spans []span

	for _, p := range entityPatterns {
		for _, loc := range p.pattern.FindAllStringIndex(text, -1) {
			spans = append(spans, span{
				start: loc[0], end: loc[1],
				entity: Entity{Text: strings.TrimSpace(text[loc[0]:loc[1]]), Label: p.label},
			})
		}
	}
	for _, loc := range orgSuffixes.FindAllStringIndex(text, -1) {
		spans = append(spans, span{
			start: loc[0], end: loc[1],
			entity: Entity{Text: strings.TrimSpace(text[loc[0]:loc[1]]), Label: LabelOrg},
		})
	}

	spans = dropOverlaps(spans)

	entities := make([]Entity, len(spans))
	for i, s := range spans {
		entities[i] = s.entity
	}
	return entities
}

// span is one candidate entity match and its byte range in the source text.
type span struct {
	start, end int
	entity     Entity
}

func dropOverlaps(spans []span) []span {
	for i := 0; i < len(spans); i++ {
		for j := i + 1; j < len(spans); j++ {
			if spans[i].start < spans[j].end && spans[j].start < spans[i].end {
				spans = append(spans[:j], spans[j+1:]...)
				j--
			}
		}
	}

	for i := 1; i < len(spans); i++ {
		for k := i; k > 0 && spans[k].start < spans[k-1].start; k-- {
			spans[k], spans[k-1] = spans[k-1], spans[k]
		}
	}

	return spans
}
