// Package strutil holds string helpers and a few general utilities.
package strutil

import (
	"math"
	"math/rand/v2"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// CapitalizeFirst upper-cases the first rune of s.
func CapitalizeFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// IsPalindrome compares s with its reverse after lower-casing and dropping
// everything except ASCII letters and digits.
func IsPalindrome(s string) bool {
	cleaned := make([]byte, 0, len(s))
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			cleaned = append(cleaned, byte(r))
		}
	}
	for i, j := 0, len(cleaned)-1; i < j; i, j = i+1, j-1 {
		if cleaned[i] != cleaned[j] {
			return false
		}
	}
	return true
}

// Reverse reverses s rune by rune, so multi-byte characters stay intact.
func Reverse(s string) string {
	runes := []rune(s)
	slices.Reverse(runes)
	return string(runes)
}

// CountCharacters counts how often each rune occurs in s.
func CountCharacters(s string) map[rune]int {
	counts := make(map[rune]int)
	for _, r := range s {
		counts[r]++
	}
	return counts
}

// RandomInt returns an integer in [lo, hi], both inclusive. Reversed bounds
// are swapped. A nil rng uses the global source. Any range works, including
// [math.MinInt, math.MaxInt].
func RandomInt(rng *rand.Rand, lo, hi int) int {
	if lo > hi {
		lo, hi = hi, lo
	}
	u64, u64N := rand.Uint64, rand.Uint64N
	if rng != nil {
		u64, u64N = rng.Uint64, rng.Uint64N
	}

	// The span is computed in uint64, where hi-lo cannot overflow.
	span := uint64(hi) - uint64(lo)
	if span == math.MaxUint64 {
		return int(u64())
	}
	return lo + int(u64N(span+1))
}
