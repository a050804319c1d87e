package filter

import "strings"

// Tagged is a record carrying a tag list.
type Tagged interface {
	Tags() []string
}

// Searchable is a record exposing the text fields free-text search looks at.
type Searchable interface {
	SearchText() (title, description string, tags []string)
}

// ByTag returns the records whose tags contain tag exactly. An empty tag means
// no active filter and yields a copy of records.
func ByTag[T Tagged](records []T, tag string) []T {
	out := make([]T, 0, len(records))
	for _, r := range records {
		if tag == "" || hasTag(r.Tags(), tag) {
			out = append(out, r)
		}
	}
	return out
}

func hasTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}

// BySubstring returns the records whose title, description or any tag
// contains query, ignoring case. A blank query matches everything.
func BySubstring[T Searchable](records []T, query string) []T {
	q := strings.ToLower(strings.TrimSpace(query))

	out := make([]T, 0, len(records))
	for _, r := range records {
		if q == "" || matchesText(r, q) {
			out = append(out, r)
		}
	}
	return out
}

func matchesText(r Searchable, q string) bool {
	title, description, tags := r.SearchText()
	if strings.Contains(strings.ToLower(title), q) || strings.Contains(strings.ToLower(description), q) {
		return true
	}
	for _, t := range tags {
		if strings.Contains(strings.ToLower(t), q) {
			return true
		}
	}
	return false
}
