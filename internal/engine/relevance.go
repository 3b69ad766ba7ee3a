package engine

import "strings"

// Token-match weights. Exact cuisine and tag matches outrank substring
// hits in the item name because free text like "biryani" or "thai" names
// intent far more reliably than a partial name overlap.
const (
	cuisineMatchWeight    = 1.0
	tagMatchWeight        = 0.8
	restaurantMatchWeight = 0.6
	nameMatchWeight       = 0.4
)

func tokenize(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !((r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'))
	})
}

// queryScore rates token overlap between the free-text query and the
// item's metadata, in [0,1]. Zero means no token matched anything.
func queryScore(query string, cuisine, name, restaurant string, tags []string) float64 {
	tokens := tokenize(query)
	if len(tokens) == 0 {
		return 0
	}

	cuisineTokens := tokenize(cuisine)
	restTokens := tokenize(restaurant)
	lowerName := strings.ToLower(name)
	tagSet := make(map[string]bool, len(tags))
	for _, t := range tags {
		for _, tok := range tokenize(t) {
			tagSet[tok] = true
		}
	}

	var sum float64
	for _, tok := range tokens {
		switch {
		case containsToken(cuisineTokens, tok):
			sum += cuisineMatchWeight
		case tagSet[tok]:
			sum += tagMatchWeight
		case containsToken(restTokens, tok):
			sum += restaurantMatchWeight
		case strings.Contains(lowerName, tok):
			sum += nameMatchWeight
		}
	}
	return sum / float64(len(tokens))
}

// locationScore rates a free-text place against the item's serviceable
// zone, in [0,1]. Advisory only: a zero never excludes an item, it just
// down-weights it, because free-text place names are unreliable.
func locationScore(location, zone string) float64 {
	loc := strings.ToLower(strings.TrimSpace(location))
	z := strings.ToLower(strings.TrimSpace(zone))
	switch {
	case loc == "" || z == "":
		return 0
	case loc == z:
		return 1.0
	case strings.Contains(z, loc) || strings.Contains(loc, z):
		return 0.7
	default:
		return 0
	}
}

func containsToken(tokens []string, tok string) bool {
	for _, t := range tokens {
		if t == tok {
			return true
		}
	}
	return false
}
