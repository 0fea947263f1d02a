package suggest

import (
	"strings"
	"unicode"
)

// Normalize folds an identifier for fuzzy matching: CamelCase tokens are joined,
// lowercased and stripped of separators.
func Normalize(s string) string {
	return strings.ToLower(strings.Join(Tokenize(s), ""))
}

// Tokenize splits a CamelCase, camelCase or snake_case identifier into tokens.
//
//   - "OrderID" -> ["Order", "ID"]
//   - "XMLParser" -> ["XML", "Parser"]
//   - "zip_code" -> ["zip", "code"]
func Tokenize(s string) []string {
	var (
		tokens  []string
		current strings.Builder
	)

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if isSeparator(r) {
			flush()
			continue
		}

		if i > 0 && startsToken(runes, i) {
			flush()
		}

		current.WriteRune(r)
	}

	flush()

	return tokens
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' ' || r == '.'
}

// startsToken reports whether runes[i] begins a new CamelCase token.
func startsToken(runes []rune, i int) bool {
	r, prev := runes[i], runes[i-1]
	if !unicode.IsUpper(r) {
		return false
	}

	// "orderID": lower to upper.
	if !unicode.IsUpper(prev) && !isSeparator(prev) {
		return true
	}

	// "XMLParser": last upper of an acronym followed by lower.
	return unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1])
}
