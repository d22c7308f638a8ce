// Package template tokenizes story templates into literal and marker tokens.
// Parsing is deliberately lenient: malformed marker syntax passes through as
// literal text and is reported as a diagnostic, never as an error.
package template

import (
	"regexp"
	"strings"

	"github.com/storyport/storyport/internal/model"
)

// Token is either a literal run of text (Key empty) or a marker reference.
type Token struct {
	Literal string
	Key     string
	Suffix  string
}

// IsMarker reports whether the token references a marker.
func (t Token) IsMarker() bool {
	return t.Key != ""
}

// Paragraph is the ordered token list of one paragraph.
type Paragraph []Token

var (
	paragraphRe = regexp.MustCompile(`\n[ \t]*\n+`)
	markerRe    = regexp.MustCompile(`\{\{([A-Za-z0-9_.-]+)(?::([A-Za-z0-9_.-]+))?\}\}`)
)

// Parse splits text on blank lines into paragraphs and tokenizes each one
// independently, preserving order. Paragraph boundaries become explicit
// structure for the normalizer.
func Parse(text string, diags *model.Diagnostics) []Paragraph {
	var out []Paragraph
	for _, block := range paragraphRe.Split(text, -1) {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		out = append(out, tokenize(block, diags))
	}
	return out
}

// tokenize splits one paragraph into literal and marker tokens.
func tokenize(text string, diags *model.Diagnostics) Paragraph {
	var tokens Paragraph
	literal := func(s string) {
		if s == "" {
			return
		}
		if strings.Contains(s, "{{") || strings.Contains(s, "}}") {
			diags.Add(model.DiagWarning, "parser", "",
				"unbalanced marker syntax passed through as literal text: %q", snippet(s))
		}
		tokens = append(tokens, Token{Literal: s})
	}
	last := 0
	for _, loc := range markerRe.FindAllStringSubmatchIndex(text, -1) {
		literal(text[last:loc[0]])
		tok := Token{Key: text[loc[2]:loc[3]]}
		if loc[4] >= 0 {
			tok.Suffix = text[loc[4]:loc[5]]
		}
		tokens = append(tokens, tok)
		last = loc[1]
	}
	literal(text[last:])
	return tokens
}

func snippet(s string) string {
	if i := strings.Index(s, "{{"); i >= 0 {
		s = s[i:]
	}
	if len(s) > 40 {
		s = s[:40] + "…"
	}
	return s
}
