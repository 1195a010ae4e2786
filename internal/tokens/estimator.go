// Package tokens provides the approximate token estimator, the per-level
// budget governor applied before any external model call, and append-only
// usage accounting for offline tuning.
package tokens

import "math"

// Characters per approximate token. Hangul is denser than Latin text under
// common tokenizers, so it gets the smaller divisor. The estimate is
// intentionally conservative: the final sum is rounded up.
const (
	hangulCharsPerToken = 2.5
	otherCharsPerToken  = 4.0
)

// Estimate converts text into an approximate token count. Hangul syllables
// and jamo count at one token per 2.5 characters, everything else at one
// per 4, summed and rounded up.
func Estimate(text string) int {
	if text == "" {
		return 0
	}
	var hangul, other int
	for _, r := range text {
		if isHangul(r) {
			hangul++
		} else {
			other++
		}
	}
	return int(math.Ceil(float64(hangul)/hangulCharsPerToken + float64(other)/otherCharsPerToken))
}

func isHangul(r rune) bool {
	switch {
	case r >= 0xAC00 && r <= 0xD7A3: // syllables
		return true
	case r >= 0x1100 && r <= 0x11FF: // jamo
		return true
	case r >= 0x3130 && r <= 0x318F: // compatibility jamo
		return true
	}
	return false
}
