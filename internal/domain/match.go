package domain

import "strings"

// Matches reports whether a hotel satisfies a free-text query and a minimum
// guest capacity. An empty or whitespace query matches every hotel on the
// text dimension; guests <= 0 means "no capacity constraint". The text match
// is a case-insensitive substring over name and location.
func Matches(h Hotel, query string, guests int) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	matchText := q == "" ||
		strings.Contains(strings.ToLower(h.Name), q) ||
		strings.Contains(strings.ToLower(h.Location), q)
	if !matchText {
		return false
	}
	if guests <= 0 {
		return true
	}
	for _, r := range h.Rooms {
		if r.Capacity >= guests {
			return true
		}
	}
	return false
}
