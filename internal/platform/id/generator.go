package id

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator creates opaque IDs suitable for external references.
type Generator interface {
	NewID() string
}

type UUIDGenerator struct{}

func NewUUIDGenerator() UUIDGenerator {
	return UUIDGenerator{}
}

func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}

// Sequence yields prefix-1, prefix-2, ... and is safe for concurrent use.
// Tests use it for predictable receipts.
type Sequence struct {
	prefix string
	next   atomic.Uint64
}

func NewSequence(prefix string) *Sequence {
	return &Sequence{prefix: prefix}
}

func (s *Sequence) NewID() string {
	return s.prefix + "-" + strconv.FormatUint(s.next.Add(1), 10)
}
