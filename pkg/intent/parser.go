// FILE: pkg/intent/parser.go
// PURPOSE: Strip trigger phrases and lead-ins so the remaining text can be
// resolved against the catalog

package intent

import (
	"regexp"
	"strings"
)

// stripRules are applied in order; each removes its pattern from the text.
// Longer phrases come first so "buy now" is removed before "buy" matches.
var (
	buyStripRules = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\bbuy now\b`),
		regexp.MustCompile(`(?i)\bbuy this\b`),
		regexp.MustCompile(`(?i)\bpurchase\b`),
		regexp.MustCompile(`(?i)\bbuy\b`),
	}

	cartStripRules = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\badd to cart\b`),
		regexp.MustCompile(`(?i)\badd item\b`),
		regexp.MustCompile(`(?i)\badd\b`),
		regexp.MustCompile(`(?i)\bto cart\b`),
	}

	// leadInPatterns extract the product term from "price of apple" style
	// queries. First capturing pattern wins.
	leadInPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:price of|cost of|how much)\s+(.+)`),
		regexp.MustCompile(`(?i)(?:stock of|stock|available)\s+(.+)`),
		regexp.MustCompile(`(?i)(?:show me|find|search for)\s+(.+)`),
	}
)

// StripBuyPhrases removes buy-now trigger tokens from msg, leaving the
// product term. "buy now mango" -> "mango".
func StripBuyPhrases(msg string) string {
	return applyStripRules(msg, buyStripRules)
}

// StripCartPhrases removes add-to-cart trigger tokens from msg.
// "add mango to cart" -> "mango".
func StripCartPhrases(msg string) string {
	return applyStripRules(msg, cartStripRules)
}

func applyStripRules(msg string, stripRules []*regexp.Regexp) string {
	for _, r := range stripRules {
		msg = r.ReplaceAllString(msg, " ")
	}
	return strings.Join(strings.Fields(msg), " ")
}

// ExtractQueryTerm pulls the product term out of a price/stock/search query.
// It reports false when no lead-in pattern captures anything.
func ExtractQueryTerm(msg string) (string, bool) {
	for _, p := range leadInPatterns {
		if m := p.FindStringSubmatch(msg); m != nil {
			term := strings.TrimSpace(m[1])
			if term != "" {
				return term, true
			}
		}
	}
	return "", false
}
