package highlight

import (
	"regexp"
	"strings"
	"testing"
)

func spansForStyle(spans []Span, style string) []Span {
	var out []Span
	for _, s := range spans {
		if s.Style == style {
			out = append(out, s)
		}
	}
	return out
}

func TestSpansForLineKeywordOccurrences(t *testing.T) {
	h := NewPython()
	line := []byte("for x in items: return x")

	got := spansForStyle(h.SpansForLine(line), StyleKeyword)

	want := []Span{
		{Start: 0, Length: 3, Style: StyleKeyword},  // for
		{Start: 6, Length: 2, Style: StyleKeyword},  // in
		{Start: 16, Length: 6, Style: StyleKeyword}, // return
	}
	if len(got) != len(want) {
		t.Fatalf("keyword spans = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("span[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestSpansForLineKeywordNeedsWordBoundary(t *testing.T) {
	h := NewPython()
	// "formula" contains "for" but must not match
	spans := spansForStyle(h.SpansForLine([]byte("formula = classify(x)")), StyleKeyword)
	if len(spans) != 0 {
		t.Fatalf("expected no keyword spans inside identifiers, got %v", spans)
	}
}

func TestSpansForLineStringAndComment(t *testing.T) {
	h := NewPython()
	line := []byte(`print("hi") # note`)
	spans := h.SpansForLine(line)

	strSpans := spansForStyle(spans, StyleString)
	if len(strSpans) != 1 || strSpans[0].Start != 6 || strSpans[0].Length != 4 {
		t.Fatalf("string spans = %v, want one span at 6 len 4", strSpans)
	}

	comSpans := spansForStyle(spans, StyleComment)
	if len(comSpans) != 1 || comSpans[0].Start != 12 || comSpans[0].End() != len(line) {
		t.Fatalf("comment spans = %v, want one span [12,%d)", comSpans, len(line))
	}
}

func TestSpansForLineNumbers(t *testing.T) {
	h := NewPython()
	tests := []struct {
		line  string
		want  int // number span count
		first Span
	}{
		{"x = 42", 1, Span{Start: 4, Length: 2, Style: StyleNumber}},
		{"pi = 3.14", 1, Span{Start: 5, Length: 4, Style: StyleNumber}},
		{"a, b = 1, 200", 2, Span{Start: 7, Length: 1, Style: StyleNumber}},
		{"name = value", 0, Span{}},
	}
	for _, tt := range tests {
		got := spansForStyle(h.SpansForLine([]byte(tt.line)), StyleNumber)
		if len(got) != tt.want {
			t.Errorf("%q: number span count = %d, want %d (%v)", tt.line, len(got), tt.want, got)
			continue
		}
		if tt.want > 0 && got[0] != tt.first {
			t.Errorf("%q: first number span = %+v, want %+v", tt.line, got[0], tt.first)
		}
	}
}

func TestSpansForLineDefinitionNames(t *testing.T) {
	h := NewPython()
	line := []byte("def main():")
	defSpans := spansForStyle(h.SpansForLine(line), StyleDefinition)
	if len(defSpans) != 1 {
		t.Fatalf("definition spans = %v, want exactly one", defSpans)
	}
	if got := string(line[defSpans[0].Start:defSpans[0].End()]); got != "def main" {
		t.Errorf("definition span text = %q, want %q", got, "def main")
	}
}

func TestStyleAtLaterRuleWinsOnOverlap(t *testing.T) {
	h := NewPython()

	// Keyword inside a comment: the comment rule is registered later, so it
	// wins for every offset the comment covers.
	line := []byte("# for loop below")
	spans := h.SpansForLine(line)
	forOffset := 2 // "for" starts at byte 2
	style, ok := StyleAt(spans, forOffset)
	if !ok || style != StyleComment {
		t.Errorf("StyleAt(%d) = %q, %v; want %q", forOffset, style, ok, StyleComment)
	}

	// "def name" overlaps the def keyword; definition is registered later.
	line = []byte("def compute():")
	spans = h.SpansForLine(line)
	style, ok = StyleAt(spans, 0)
	if !ok || style != StyleDefinition {
		t.Errorf("StyleAt(0) = %q, %v; want %q", style, ok, StyleDefinition)
	}
}

func TestStyleAtOutsideAnySpan(t *testing.T) {
	h := NewPython()
	spans := h.SpansForLine([]byte("x = y"))
	if style, ok := StyleAt(spans, 0); ok {
		t.Errorf("StyleAt(0) = %q, want no style for plain identifier", style)
	}
}

func TestSpansForLineEmptyAndPlain(t *testing.T) {
	h := NewPython()
	if spans := h.SpansForLine(nil); spans != nil {
		t.Errorf("SpansForLine(nil) = %v, want nil", spans)
	}
	if spans := h.SpansForLine([]byte("plain text")); len(spans) != 0 {
		t.Errorf("SpansForLine(plain) = %v, want none", spans)
	}
}

func TestSpansForLineEmptyMatchCannotLoop(t *testing.T) {
	// A rule that can match the empty string must still terminate.
	h := New([]Rule{{Pattern: regexp.MustCompile(`x*`), Style: "test"}})
	spans := h.SpansForLine([]byte("axa"))
	for _, s := range spans {
		if s.Length == 0 {
			t.Fatalf("got zero-length span %+v", s)
		}
	}
}

func TestSpansForLineLongLine(t *testing.T) {
	h := NewPython()
	line := []byte(strings.Repeat("if x: ", 500))
	spans := spansForStyle(h.SpansForLine(line), StyleKeyword)
	if len(spans) != 500 {
		t.Fatalf("keyword span count = %d, want 500", len(spans))
	}
}
