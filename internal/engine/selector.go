// Package engine implements the contextualization core: deterministic
// selection, population scaling, place hierarchy resolution, comparable
// event matching, and normalization into renderer-agnostic segments.
//
// Everything in this package is pure computation over immutable inputs plus
// one short-lived resolution cache per request. No I/O, no locking.
package engine

import (
	"errors"
	"hash/fnv"
	"strings"
)

// ErrEmptyPool is returned when a selection has no candidates. Callers are
// expected to avoid it through the documented fallback chains.
var ErrEmptyPool = errors.New("empty candidate pool")

// seedVersion pins the seed→selection mapping. Regenerated share images must
// be pixel-stable across processes and languages, so any change to the hash,
// the modulus, or the seed layout requires bumping this version.
const seedVersion = "v1"

// selectorModulus reduces the 64-bit hash to [0,1). 2^32 keeps the reduction
// exact in float64 arithmetic.
const selectorModulus = 1 << 32

// Seed builds a selection seed from its parts. The usual layout is
// (storyID, markerKey, countryCode); callers append narrower parts when one
// marker key makes several picks (e.g. city vs. facility).
func Seed(parts ...string) string {
	return seedVersion + ":" + strings.Join(parts, ":")
}

// Fraction hashes a seed to a reproducible value in [0,1) using FNV-1a.
func Fraction(seed string) float64 {
	h := fnv.New64a()
	h.Write([]byte(seed))
	return float64(h.Sum64()%selectorModulus) / float64(selectorModulus)
}

// PickIndex returns a deterministic index in [0,n).
func PickIndex(seed string, n int) int {
	return int(Fraction(seed) * float64(n))
}

// Pick deterministically selects one item. Same seed, same item, forever.
func Pick(seed string, items []string) (string, error) {
	if len(items) == 0 {
		return "", ErrEmptyPool
	}
	return items[PickIndex(seed, len(items))], nil
}
