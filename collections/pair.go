package collections

import "fmt"

// Pair is one own property of a keyed value, as produced by [Pairs] and
// consumed by [ObjectFromPairs].
type Pair struct {
	Key   string
	Value any
}

// String returns a human-readable representation: "(key, value)".
func (p Pair) String() string {
	return fmt.Sprintf("(%s, %v)", p.Key, p.Value)
}
