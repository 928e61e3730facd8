package normalize

import (
	"errors"
	"time"
)

// ErrInvalidDate is returned when a date string matches none of the
// recognized layouts.
var ErrInvalidDate = errors.New("unrecognized date")

// Metadata sources deliver dates at varying precision; each precision keeps
// its own canonical layout so no fake precision is invented.
var dateLayouts = []struct {
	in  []string
	out string
}{
	{
		in:  []string{"2006-01-02", "2006-1-2", "2006/01/02", "2 January 2006", "January 2, 2006", "Jan 2, 2006"},
		out: "2006-01-02",
	},
	{
		in:  []string{"2006-01", "2006-1", "2006/01", "January 2006", "Jan 2006"},
		out: "2006-01",
	},
	{
		in:  []string{"2006"},
		out: "2006",
	},
}

// Date canonicalizes a date string, preserving its precision: full dates
// become "2006-01-02", year-month dates "2006-01", bare years "2006".
func Date(s string) (string, error) {
	s = Whitespace(s)
	if s == "" {
		return "", ErrInvalidDate
	}

	for _, group := range dateLayouts {
		for _, layout := range group.in {
			t, err := time.Parse(layout, s)
			if err != nil {
				continue
			}
			return t.Format(group.out), nil
		}
	}
	return "", ErrInvalidDate
}
