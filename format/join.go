package format

import "strings"

// AndJoin joins items with commas and a final "and": "a, b and c".
func AndJoin(items []string) string {
	return Join(items, ",", "and")
}

// Join joins items with separator and places copula before the last item:
//
//	Join([]string{"a", "b", "c", "d"}, ";", "und") // "a; b; c und d"
func Join(items []string, separator, copula string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	}

	last := len(items) - 1

	return strings.Join(items[:last], separator+" ") + " " + copula + " " + items[last]
}
