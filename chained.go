package probemap

import "iter"

type chainNode[V any] struct {
	key   string
	value V
	next  *chainNode[V]
}

// ChainedMap carries the same contract as Map but resolves collisions with a
// singly linked list per bucket instead of probing. Chains tolerate crowding
// that probe sequences cannot, so growth triggers at a load factor of 1.0
// rather than 0.5.
// Not safe for concurrent use.
type ChainedMap[V any] struct {
	buckets  []*chainNode[V]
	capacity int
	size     int

	hashFunc HashFunc

	emptyV V
}

// NewChained returns a separate-chaining map whose capacity is the closest
// prime at or above the requested capacity.
func NewChained[V any](capacity int, opts ...Option) *ChainedMap[V] {
	m := &ChainedMap[V]{hashFunc: resolveOptions(opts).hashFunc}
	m.capacity = NextPrime(capacity)
	m.buckets = make([]*chainNode[V], m.capacity)

	return m
}

func (m *ChainedMap[V]) home(key string) int {
	return int(m.hashFunc(key) % uint64(m.capacity))
}

func (m *ChainedMap[V]) lookup(key string) *chainNode[V] {
	for n := m.buckets[m.home(key)]; n != nil; n = n.next {
		if n.key == key {
			return n
		}
	}

	return nil
}

// Put adds a key/value pair, overwriting the value if the key is present.
func (m *ChainedMap[V]) Put(key string, value V) {
	if m.size >= m.capacity {
		m.Resize(2 * m.capacity)
	}

	if n := m.lookup(key); n != nil {
		n.value = value
		return
	}

	idx := m.home(key)
	m.buckets[idx] = &chainNode[V]{key: key, value: value, next: m.buckets[idx]}
	m.size++
}

// Get returns the value stored under key, or (zero, false) if absent.
func (m *ChainedMap[V]) Get(key string) (V, bool) {
	if m.size == 0 {
		return m.emptyV, false
	}

	if n := m.lookup(key); n != nil {
		return n.value, true
	}

	return m.emptyV, false
}

// ContainsKey reports whether key is in the map.
func (m *ChainedMap[V]) ContainsKey(key string) bool {
	if m.size == 0 {
		return false
	}

	return m.lookup(key) != nil
}

// Remove unlinks key from its bucket and reports whether it was present.
func (m *ChainedMap[V]) Remove(key string) bool {
	idx := m.home(key)

	var prev *chainNode[V]
	for n := m.buckets[idx]; n != nil; n = n.next {
		if n.key == key {
			if prev == nil {
				m.buckets[idx] = n.next
			} else {
				prev.next = n.next
			}
			m.size--

			return true
		}

		prev = n
	}

	return false
}

// Resize rebuilds the buckets at the given capacity, bumped to the next prime
// if needed, and reinserts every entry. A target below 1 is silently refused;
// a target that would leave the load factor above 1 keeps doubling first.
func (m *ChainedMap[V]) Resize(newCapacity int) {
	if newCapacity < 1 {
		return
	}

	if !IsPrime(newCapacity) {
		newCapacity = NextPrime(newCapacity)
	}

	for m.size > newCapacity {
		newCapacity = NextPrime(2 * newCapacity)
	}

	old := m.buckets
	m.capacity = newCapacity
	m.buckets = make([]*chainNode[V], newCapacity)
	m.size = 0

	// Reinsertion recomputes every bucket index under the new modulus. The
	// pre-insert load check cannot fire mid-migration since everything fits
	// at or under a load factor of 1.
	for _, head := range old {
		for n := head; n != nil; n = n.next {
			m.Put(n.key, n.value)
		}
	}
}

// TableLoad returns the current load factor, size over capacity.
func (m *ChainedMap[V]) TableLoad() float64 {
	return float64(m.size) / float64(m.capacity)
}

// EmptyBuckets returns the number of buckets holding no entries.
func (m *ChainedMap[V]) EmptyBuckets() int {
	empty := 0

	for _, head := range m.buckets {
		if head == nil {
			empty++
		}
	}

	return empty
}

// Size returns the number of entries.
func (m *ChainedMap[V]) Size() int {
	return m.size
}

// Capacity returns the number of buckets. Always prime.
func (m *ChainedMap[V]) Capacity() int {
	return m.capacity
}

// KeysAndValues returns every pair in bucket order, walking each chain from
// its head.
func (m *ChainedMap[V]) KeysAndValues() []Entry[V] {
	entries := make([]Entry[V], 0, m.size)

	for _, head := range m.buckets {
		for n := head; n != nil; n = n.next {
			entries = append(entries, Entry[V]{Key: n.key, Value: n.value})
		}
	}

	return entries
}

// Clear drops every bucket, keeping the current capacity.
func (m *ChainedMap[V]) Clear() {
	m.buckets = make([]*chainNode[V], m.capacity)
	m.size = 0
}

// All returns a lazy iterator over the entries in bucket order. Mutating the
// map during iteration is unsupported.
func (m *ChainedMap[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		for _, head := range m.buckets {
			for n := head; n != nil; n = n.next {
				if !yield(n.key, n.value) {
					return
				}
			}
		}
	}
}

// Stats returns a snapshot of the map's bookkeeping. A chained map never
// leaves tombstones.
func (m *ChainedMap[V]) Stats() Stats {
	return Stats{
		Size:         m.size,
		Capacity:     m.capacity,
		EmptyBuckets: m.EmptyBuckets(),
		Load:         float64(m.size) / float64(m.capacity),
	}
}
