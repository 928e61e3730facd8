package schema

import (
	"fmt"
	"strings"
)

// DocString renders a human-readable listing of the field and its allowed
// values with their documentation, in declared order. The output is
// deterministic and suitable for user-facing documentation or error hints.
func (f *FieldSpec) DocString() string {
	var b strings.Builder

	if f.title != "" {
		fmt.Fprintf(&b, "%s (%s)", f.title, f.name)
	} else {
		b.WriteString(f.name)
	}
	fmt.Fprintf(&b, ": %s", f.ftype)
	if f.minLength > 0 {
		fmt.Fprintf(&b, ", minimum length %d", f.minLength)
	}
	b.WriteString("\n")

	for _, v := range f.allowed {
		if doc := f.docs[v]; doc != "" {
			fmt.Fprintf(&b, "  %s: %s\n", v, doc)
		} else {
			fmt.Fprintf(&b, "  %s\n", v)
		}
	}

	return b.String()
}
