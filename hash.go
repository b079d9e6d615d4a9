package recordgen

import (
	"math"
	"time"
)

// FNV-1a parameters for the 64-bit fold.
const (
	offset64 = 14695981039346656037
	prime64  = 1099511628211
)

// Hash is the accumulator used by generated Hash methods. Values are folded
// in field declaration order, which is the same sequence the generated Equal
// method compares, so equal records always produce equal hashes.
type Hash uint64

// NewHash returns the initial fold value. A record with no fields hashes to
// exactly this constant.
func NewHash() Hash {
	return Hash(offset64)
}

// Uint64 folds a raw 64-bit word into the hash.
func (h Hash) Uint64(v uint64) Hash {
	for i := 0; i < 8; i++ {
		h ^= Hash(v & 0xff)
		h *= prime64
		v >>= 8
	}
	return h
}

// Int64 folds a signed 64-bit value into the hash.
func (h Hash) Int64(v int64) Hash {
	return h.Uint64(uint64(v))
}

// Bool folds a boolean into the hash.
func (h Hash) Bool(v bool) Hash {
	if v {
		return h.Uint64(1)
	}
	return h.Uint64(0)
}

// Float64 folds a float into the hash. Negative zero is normalized to
// positive zero first: 0.0 == -0.0 under equality, so both must fold to the
// same value.
func (h Hash) Float64(v float64) Hash {
	if v == 0 {
		v = 0
	}
	return h.Uint64(math.Float64bits(v))
}

// String folds a string into the hash, length-prefixed so that adjacent
// string fields cannot alias each other.
func (h Hash) String(s string) Hash {
	h = h.Uint64(uint64(len(s)))
	for i := 0; i < len(s); i++ {
		h ^= Hash(s[i])
		h *= prime64
	}
	return h
}

// Bytes folds a byte slice into the hash, length-prefixed like String.
func (h Hash) Bytes(b []byte) Hash {
	h = h.Uint64(uint64(len(b)))
	for _, c := range b {
		h ^= Hash(c)
		h *= prime64
	}
	return h
}

// Time folds a time instant into the hash. Only the absolute instant is
// folded, matching time.Time.Equal which ignores location and monotonic
// readings.
func (h Hash) Time(t time.Time) Hash {
	return h.Int64(t.Unix()).Int64(int64(t.Nanosecond()))
}

// Sum returns the folded value.
func (h Hash) Sum() uint64 {
	return uint64(h)
}
