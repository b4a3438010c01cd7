package repository

import "strings"

// escapeLike neutralizes LIKE metacharacters in user-supplied search text so
// a search for "100%" matches literally.
func escapeLike(raw string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(raw)
}

// likePattern builds the ILIKE pattern for case-insensitive substring search.
func likePattern(raw string) string {
	return "%" + escapeLike(strings.TrimSpace(raw)) + "%"
}
