package catalog

import (
	"strings"
)

// Resolve maps free text to the single best-matching product.
//
// Pass 1 scans the catalog in load order and returns the first product whose
// lowercased name contains the query as a substring. Pass 2 only runs when
// pass 1 finds nothing: it scores every product by bidirectional word
// containment and returns the strictly highest scorer, with ties broken by
// load order (first seen wins). Empty or whitespace-only queries never match.
func (s *Store) Resolve(query string) (Product, bool) {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return Product{}, false
	}

	// Direct substring match first
	for _, p := range s.products {
		if strings.Contains(strings.ToLower(p.Name), query) {
			return p, true
		}
	}

	// Fuzzy pass: token overlap scoring
	var best Product
	bestScore := 0
	for _, p := range s.products {
		score := tokenOverlapScore(query, strings.ToLower(p.Name))
		if score > bestScore {
			best = p
			bestScore = score
		}
	}

	if bestScore > 0 {
		return best, true
	}
	return Product{}, false
}

// tokenOverlapScore counts (query word, name word) pairs where either word
// contains the other. Containment is deliberately bidirectional, so a very
// short query word like "a" scores against almost any name word; that
// matches the catalog's historical matching behavior and is kept as is.
func tokenOverlapScore(query, name string) int {
	queryWords := strings.Fields(query)
	nameWords := strings.Fields(name)

	score := 0
	for _, qw := range queryWords {
		for _, nw := range nameWords {
			if strings.Contains(nw, qw) || strings.Contains(qw, nw) {
				score++
			}
		}
	}
	return score
}
