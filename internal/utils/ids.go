package utils

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// IDGenerator produces record identifiers with a type prefix
type IDGenerator interface {
	NewID(prefix string) string
}

// UUIDGenerator generates ids of the form prefix_<uuid>
type UUIDGenerator struct{}

// NewID implements IDGenerator
func (UUIDGenerator) NewID(prefix string) string {
	return fmt.Sprintf("%s_%s", prefix, uuid.NewString())
}

// SequenceGenerator generates ids of the form prefix_<n> from a monotonic counter
type SequenceGenerator struct {
	next atomic.Int64
}

// NewSequenceGenerator creates a generator whose first id ends in start
func NewSequenceGenerator(start int64) *SequenceGenerator {
	g := &SequenceGenerator{}
	g.next.Store(start - 1)
	return g
}

// NewID implements IDGenerator
func (g *SequenceGenerator) NewID(prefix string) string {
	return fmt.Sprintf("%s_%d", prefix, g.next.Add(1))
}
