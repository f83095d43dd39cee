// Package sliceutil holds small generic helpers over slices.
//
// Every helper returns a new slice and leaves its input untouched.
package sliceutil

import (
	"cmp"
	"errors"
	"math/rand/v2"
	"slices"

	"golang.org/x/exp/constraints"
)

// ErrInvalidSize is returned by Chunk for a size below 1.
var ErrInvalidSize = errors.New("sliceutil: chunk size must be positive")

// Number is any integer or floating point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Chunk splits s into consecutive pieces of at most size elements.
// The last piece may be shorter.
func Chunk[T any](s []T, size int) ([][]T, error) {
	if size < 1 {
		return nil, ErrInvalidSize
	}
	n := len(s) / size
	if len(s)%size != 0 {
		n++
	}
	chunks := make([][]T, 0, n)
	for i := 0; i < len(s); i += size {
		end := min(i+size, len(s))
		chunks = append(chunks, slices.Clone(s[i:end]))
	}
	return chunks, nil
}

// Flatten joins one level of nesting.
func Flatten[T any](s [][]T) []T {
	n := 0
	for _, inner := range s {
		n += len(inner)
	}
	out := make([]T, 0, n)
	for _, inner := range s {
		out = append(out, inner...)
	}
	return out
}

// FlattenDeep flattens arbitrarily nested []any values.
func FlattenDeep(s []any) []any {
	out := make([]any, 0, len(s))
	for _, v := range s {
		if inner, ok := v.([]any); ok {
			out = append(out, FlattenDeep(inner)...)
			continue
		}
		out = append(out, v)
	}
	return out
}

// Unique drops repeated values, keeping the first occurrence of each.
func Unique[T comparable](s []T) []T {
	seen := make(map[T]struct{}, len(s))
	out := make([]T, 0, len(s))
	for _, v := range s {
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// Shuffle returns a Fisher-Yates shuffled copy of s. A nil rng uses the
// global source.
func Shuffle[T any](s []T, rng *rand.Rand) []T {
	out := slices.Clone(s)
	intN := rand.IntN
	if rng != nil {
		intN = rng.IntN
	}
	for i := len(out) - 1; i > 0; i-- {
		j := intN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// SortBy returns a copy of s stably sorted by key.
func SortBy[T any, K cmp.Ordered](s []T, key func(T) K) []T {
	out := slices.Clone(s)
	slices.SortStableFunc(out, func(a, b T) int {
		return cmp.Compare(key(a), key(b))
	})
	return out
}

// GroupBy buckets s by key, preserving order inside each bucket.
func GroupBy[T any, K comparable](s []T, key func(T) K) map[K][]T {
	groups := make(map[K][]T)
	for _, v := range s {
		k := key(v)
		groups[k] = append(groups[k], v)
	}
	return groups
}

// FilterEven keeps the even integers.
func FilterEven[T constraints.Integer](s []T) []T {
	out := make([]T, 0, len(s)/2)
	for _, v := range s {
		if v%2 == 0 {
			out = append(out, v)
		}
	}
	return out
}

func Sum[T Number](s []T) T {
	var total T
	for _, v := range s {
		total += v
	}
	return total
}

// Average returns 0 for an empty slice.
func Average[T Number](s []T) float64 {
	if len(s) == 0 {
		return 0
	}
	return float64(Sum(s)) / float64(len(s))
}

// Max reports the largest element; ok is false for an empty slice.
func Max[T cmp.Ordered](s []T) (v T, ok bool) {
	if len(s) == 0 {
		return v, false
	}
	return slices.Max(s), true
}

// Min reports the smallest element; ok is false for an empty slice.
func Min[T cmp.Ordered](s []T) (v T, ok bool) {
	if len(s) == 0 {
		return v, false
	}
	return slices.Min(s), true
}
