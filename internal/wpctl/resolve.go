package wpctl

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Resolve returns the first object whose name contains query
// (case-insensitive) or whose id equals query exactly. Order decides between
// multiple matches. Surrounding whitespace in query is ignored and an empty
// query matches nothing.
func Resolve(query string, objs []Object) (Object, bool) {
	query = strings.TrimSpace(query)
	if query == "" {
		return Object{}, false
	}
	lower := cases.Lower(language.Und)
	needle := lower.String(query)
	for _, obj := range objs {
		if strings.Contains(lower.String(obj.Name), needle) || obj.ID == query {
			return obj, true
		}
	}
	return Object{}, false
}

// NormalizeQuery returns the trimmed, lower-cased form of query used in
// user-facing messages.
func NormalizeQuery(query string) string {
	return cases.Lower(language.Und).String(strings.TrimSpace(query))
}
