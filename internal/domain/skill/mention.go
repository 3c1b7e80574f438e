package skill

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

type mention struct {
	start int
	end   int
}

// findMentions returns every occurrence of term in text that is not glued to a
// word character on either side. Both arguments are expected lower-cased.
// Terms ending in symbols ("c++", "c#") still need a non-word neighbour, so "java"
// never matches inside "javascript".
func findMentions(text, term string) []mention {
	if term == "" || len(term) > len(text) {
		return nil
	}

	var out []mention
	from := 0
	for from <= len(text)-len(term) {
		i := strings.Index(text[from:], term)
		if i < 0 {
			break
		}
		start := from + i
		end := start + len(term)

		if boundaryBefore(text, start) && boundaryAfter(text, end) {
			out = append(out, mention{start: start, end: end})
			from = end
			continue
		}
		_, size := utf8.DecodeRuneInString(text[start:])
		from = start + size
	}
	return out
}

func boundaryBefore(text string, i int) bool {
	if i == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(text[:i])
	return !isWordRune(r)
}

func boundaryAfter(text string, i int) bool {
	if i >= len(text) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(text[i:])
	return !isWordRune(r)
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// window returns the text within radius bytes around m, widened to rune
// boundaries.
func window(text string, m mention, radius int) string {
	lo := m.start - radius
	if lo < 0 {
		lo = 0
	}
	hi := m.end + radius
	if hi > len(text) {
		hi = len(text)
	}
	for lo > 0 && !utf8.RuneStart(text[lo]) {
		lo--
	}
	for hi < len(text) && !utf8.RuneStart(text[hi]) {
		hi++
	}
	return text[lo:hi]
}
