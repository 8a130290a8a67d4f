package probemap

import "iter"

// Set is a string set over the open-addressing table. It stores no values;
// membership is the whole contract. Same growth and tombstone behavior as
// Map, same single-goroutine ownership.
type Set struct {
	m Map[struct{}]
}

// NewSet returns a set whose capacity is the closest prime at or above the
// requested capacity.
func NewSet(capacity int, opts ...Option) *Set {
	var s Set
	s.m.init(capacity, resolveOptions(opts).hashFunc)

	return &s
}

// Put adds a key to the set. Adding a present key is a no-op.
func (s *Set) Put(key string) {
	s.m.Put(key, struct{}{})
}

// Has reports whether key is in the set.
func (s *Set) Has(key string) bool {
	return s.m.ContainsKey(key)
}

// Delete removes a key and reports whether it was present.
func (s *Set) Delete(key string) bool {
	return s.m.Remove(key)
}

// Len returns the number of members.
func (s *Set) Len() int {
	return s.m.Size()
}

// Clear empties the set, keeping the current capacity.
func (s *Set) Clear() {
	s.m.Clear()
}

// All returns a lazy iterator over the members in slot-index order.
func (s *Set) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		for key := range s.m.All() {
			if !yield(key) {
				return
			}
		}
	}
}
