package normalize

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Whitespace trims a string and collapses internal runs of whitespace into
// single spaces.
func Whitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Name converts an author name into the canonical "Last, First" form used by
// scholarly metadata records.
//
// Both "John Smith" and "Smith, John" inputs are accepted. Bare initials are
// dotted and joined ("J B" becomes "J.B."), full given names are kept
// verbatim, and family names that arrive fully upper- or lowercased are
// title-cased. Mixed-case family names such as "McDonald" are preserved.
func Name(s string) string {
	s = Whitespace(s)
	if s == "" {
		return ""
	}

	var family, given string
	if i := strings.Index(s, ","); i >= 0 {
		family = strings.TrimSpace(s[:i])
		given = strings.TrimSpace(s[i+1:])
	} else {
		parts := strings.Fields(s)
		family = parts[len(parts)-1]
		given = strings.Join(parts[:len(parts)-1], " ")
	}

	family = titleWord(family)
	given = formatGiven(given)

	if given == "" {
		return family
	}
	return family + ", " + given
}

// titleWord title-cases a word only when it carries no case information of
// its own (all upper or all lower).
func titleWord(w string) string {
	if w == strings.ToUpper(w) || w == strings.ToLower(w) {
		// A cases.Caser is stateful, so one is created per call rather
		// than shared.
		return cases.Title(language.Und).String(strings.ToLower(w))
	}
	return w
}

// formatGiven normalizes the given-names part: consecutive initials are
// dotted and joined, full names pass through separated by single spaces.
func formatGiven(s string) string {
	if s == "" {
		return ""
	}

	tokens := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == '.'
	})

	var (
		out      []string
		initials strings.Builder
	)
	flush := func() {
		if initials.Len() > 0 {
			out = append(out, initials.String())
			initials.Reset()
		}
	}
	for _, tok := range tokens {
		if isInitial(tok) {
			initials.WriteString(strings.ToUpper(tok))
			initials.WriteString(".")
			continue
		}
		flush()
		out = append(out, titleWord(tok))
	}
	flush()

	return strings.Join(out, " ")
}

func isInitial(tok string) bool {
	if len(tok) != 1 {
		return false
	}
	c := tok[0]
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}
