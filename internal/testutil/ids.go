package testutil

import "fmt"

// SequentialIDs generates predictable batch identifiers for tests.
//
// The first call to Next returns "<prefix>-0001", then "<prefix>-0002", and
// so on. If prefix is empty, "test-batch" is used.
type SequentialIDs struct {
	prefix string
	n      int
}

// NewSequentialIDs creates a generator with the given prefix.
func NewSequentialIDs(prefix string) *SequentialIDs {
	if prefix == "" {
		prefix = "test-batch"
	}
	return &SequentialIDs{prefix: prefix}
}

// Next returns the next identifier.
func (g *SequentialIDs) Next() string {
	g.n++
	return fmt.Sprintf("%s-%04d", g.prefix, g.n)
}
