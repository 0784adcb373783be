// internal/highlight/python.go
package highlight

import (
	"regexp"
	"strings"
)

// Style names referenced by the rule table. Themes map these to colors.
const (
	StyleKeyword    = "keyword"
	StyleComment    = "comment"
	StyleString     = "string"
	StyleNumber     = "number"
	StyleDefinition = "definition"
)

// pythonKeywords is the fixed keyword set highlighted by the first rule.
var pythonKeywords = []string{
	"def", "class", "import", "from", "as", "return", "if", "elif", "else",
	"while", "for", "break", "continue", "try", "except", "finally",
	"raise", "with", "lambda", "yield",
}

// NewPython builds the Python rule table. Registration order doubles as
// overlap precedence (later wins): keywords, comments, strings, numbers,
// def/class definition names.
func NewPython() *Highlighter {
	keywordPattern := `\b(?:` + strings.Join(pythonKeywords, "|") + `)\b`

	return New([]Rule{
		{Pattern: regexp.MustCompile(keywordPattern), Style: StyleKeyword},
		{Pattern: regexp.MustCompile(`#.*`), Style: StyleComment},
		{Pattern: regexp.MustCompile(`"[^"]*"|'[^']*'`), Style: StyleString},
		{Pattern: regexp.MustCompile(`\b\d+(\.\d*)?\b`), Style: StyleNumber},
		{Pattern: regexp.MustCompile(`\b(?:def|class)\s+\w+`), Style: StyleDefinition},
	})
}
