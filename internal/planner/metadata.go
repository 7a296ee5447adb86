package planner

import (
	"regexp"
	"slices"
	"strings"
)

var (
	rePriority = regexp.MustCompile(`(?i)\$(critical|high|medium|low)\b`)
	reCategory = regexp.MustCompile(`(?i)%(office|personal|family|travel|health|finance|general)\b`)
	reTag      = regexp.MustCompile(`#(\w+)`)
	reQuadrant = regexp.MustCompile(`(?i)\bQ([1-4])\b`)
)

// markerChars start the trailing metadata section of a line.
const markerChars = "@$%#"

type metadata struct {
	title    string
	priority Priority
	category Category
	tags     []string // sorted, unique, lowercase
	quadrant Quadrant
}

// extractMetadata reads priority, category, tags, quadrant and title from text.
// It does not depend on date or time resolution.
func extractMetadata(text string) metadata {
	meta := metadata{
		title:    extractTitle(text),
		priority: DefaultPriority,
		category: DefaultCategory,
		tags:     extractTags(text),
	}

	if m := rePriority.FindStringSubmatch(text); m != nil {
		if p, ok := ParsePriority(m[1]); ok {
			meta.priority = p
		}
	}
	if m := reCategory.FindStringSubmatch(text); m != nil {
		if c, ok := ParseCategory(m[1]); ok {
			meta.category = c
		}
	}
	if m := reQuadrant.FindStringSubmatch(text); m != nil {
		meta.quadrant, _ = ParseQuadrant("Q" + m[1])
	}

	return meta
}

func extractTags(text string) []string {
	matches := reTag.FindAllStringSubmatch(text, -1)
	tags := make([]string, 0, len(matches))
	for _, m := range matches {
		tags = append(tags, strings.ToLower(m[1]))
	}
	slices.Sort(tags)
	return slices.Compact(tags)
}

// extractTitle cuts text at the first marker character or quadrant token.
func extractTitle(text string) string {
	cut := strings.IndexAny(text, markerChars)
	if loc := reQuadrant.FindStringIndex(text); loc != nil && (cut < 0 || loc[0] < cut) {
		cut = loc[0]
	}
	if cut >= 0 {
		text = text[:cut]
	}
	return strings.TrimSpace(text)
}
