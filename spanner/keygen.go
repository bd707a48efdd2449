package spanner

import (
	"encoding/binary"
	"math/rand/v2"

	"github.com/google/uuid"
)

// KeyGenerator produces primary key values for tables whose keys are not
// supplied by the caller. Spanner has no auto-increment, and monotonically
// increasing keys concentrate writes on a single split, so keys are drawn
// at random from the non-negative INT64 range.
type KeyGenerator interface {
	Generate() uint64
}

// RandomKeyGenerator draws uniform 63-bit keys from the shared math/rand/v2
// source, which is safe for concurrent use. It holds no state: uniqueness
// comes from the size of the key space, and the primary key constraint
// catches the rare collision.
type RandomKeyGenerator struct{}

// NewRandomKeyGenerator creates a random key generator.
func NewRandomKeyGenerator() *RandomKeyGenerator {
	return &RandomKeyGenerator{}
}

// Generate returns a uniform value in [0, 2^63).
func (*RandomKeyGenerator) Generate() uint64 {
	return rand.Uint64() >> 1
}

// UUIDKeyGenerator derives 63-bit keys from random UUIDs, for callers that
// already standardize on UUID-sourced identifiers.
type UUIDKeyGenerator struct{}

// NewUUIDKeyGenerator creates a UUID-backed key generator.
func NewUUIDKeyGenerator() *UUIDKeyGenerator {
	return &UUIDKeyGenerator{}
}

// Generate returns the first eight bytes of a random UUID, masked to 63 bits.
func (*UUIDKeyGenerator) Generate() uint64 {
	id := uuid.New()
	return binary.BigEndian.Uint64(id[:8]) >> 1
}
