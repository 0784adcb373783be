// Package highlight implements naive regex-based syntax highlighting.
//
// A Highlighter is an immutable, ordered table of (pattern, style) rules
// compiled once at startup. It is applied to one line at a time and keeps no
// cross-line state; multi-line constructs (e.g. unterminated triple-quoted
// strings) are not tracked. Spans from different rules may overlap: consumers
// paint spans in table order so a later-registered rule wins on overlap.
package highlight

import (
	"regexp"
)

// Rule pairs a compiled pattern with the theme style name it paints.
type Rule struct {
	Pattern *regexp.Regexp
	Style   string
}

// Span is one concrete match instance on a line. Offsets are byte-based.
type Span struct {
	Start  int // Byte offset of the match within the line
	Length int // Byte length of the match
	Style  string
}

// End returns the exclusive byte offset past the span.
func (s Span) End() int { return s.Start + s.Length }

// Highlighter holds the fixed rule table for one language.
type Highlighter struct {
	rules []Rule
}

// New creates a highlighter from an ordered rule table.
func New(rules []Rule) *Highlighter {
	return &Highlighter{rules: rules}
}

// Rules exposes the rule table (read-only by convention).
func (h *Highlighter) Rules() []Rule {
	return h.rules
}

// SpansForLine scans one line and returns every rule match as a span.
// Each pattern is matched repeatedly, advancing past each match, until no
// match remains, so multiple occurrences per line are all reported. Spans
// appear grouped in rule registration order.
func (h *Highlighter) SpansForLine(line []byte) []Span {
	if len(line) == 0 {
		return nil
	}
	var spans []Span
	for _, rule := range h.rules {
		offset := 0
		for offset <= len(line) {
			loc := rule.Pattern.FindIndex(line[offset:])
			if loc == nil {
				break
			}
			start := offset + loc[0]
			length := loc[1] - loc[0]
			if length > 0 {
				spans = append(spans, Span{Start: start, Length: length, Style: rule.Style})
				offset = start + length
			} else {
				offset = start + 1 // Never loop on an empty match
			}
		}
	}
	return spans
}

// StyleAt resolves the winning style for a byte offset given the spans of a
// line: the last span in table order covering the offset wins.
func StyleAt(spans []Span, offset int) (string, bool) {
	style := ""
	found := false
	for _, s := range spans {
		if offset >= s.Start && offset < s.End() {
			style = s.Style
			found = true
		}
	}
	return style, found
}
