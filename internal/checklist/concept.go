package checklist

import "strings"

// Korean particles stripped from the tail of a token when deriving concept
// surface forms. Fixed list; matching stays an approximate heuristic.
var trailingParticles = []string{
	"했는지", "하는지", "인지", "되는지",
	"을", "를", "이", "가", "은", "는", "와", "과", "의", "에", "로", "도",
}

// SurfaceForms extracts the searchable surface forms of one checklist
// item: quoted substrings, parenthetical substrings, and particle-stripped
// word stems of two or more runes.
func SurfaceForms(item string) []string {
	var forms []string

	forms = append(forms, delimited(item, "\"", "\"")...)
	forms = append(forms, delimited(item, "'", "'")...)
	forms = append(forms, delimited(item, "‘", "’")...)
	forms = append(forms, delimited(item, "“", "”")...)
	forms = append(forms, delimited(item, "(", ")")...)

	for _, token := range strings.Fields(item) {
		stem := stripParticle(strings.Trim(token, ".,?!:;\"'()“”‘’"))
		if len([]rune(stem)) >= 2 {
			forms = append(forms, stem)
		}
	}

	return forms
}

// ContainsConcept reports whether any surface form of the item appears in
// the text, case-insensitively. This is the single pure matching function
// behind all checklist scoring; call sites never inspect surface forms
// themselves.
func ContainsConcept(text, item string) bool {
	haystack := strings.ToLower(text)
	for _, form := range SurfaceForms(item) {
		if form == "" {
			continue
		}
		if strings.Contains(haystack, strings.ToLower(form)) {
			return true
		}
	}
	return false
}

// delimited returns all substrings enclosed by the given open/close pair.
func delimited(s, open, close string) []string {
	var out []string
	for {
		start := strings.Index(s, open)
		if start < 0 {
			return out
		}
		rest := s[start+len(open):]
		end := strings.Index(rest, close)
		if end < 0 {
			return out
		}
		if inner := strings.TrimSpace(rest[:end]); inner != "" {
			out = append(out, inner)
		}
		s = rest[end+len(close):]
	}
}

func stripParticle(token string) string {
	for _, particle := range trailingParticles {
		if strings.HasSuffix(token, particle) && token != particle {
			return strings.TrimSuffix(token, particle)
		}
	}
	return token
}
