package probemap

import "iter"

// Map is a hash map with string keys built on open addressing with quadratic
// probing. Capacity is always prime; the table doubles (to the next prime)
// whenever the load factor has reached 0.5 before an insert, which bounds
// every probe chain. Deletes leave tombstones, reclaimed by later inserts and
// dropped wholesale on the next rehash.
// Map is not safe for concurrent use; callers sharing one across goroutines
// must bring their own lock.
type Map[V any] struct {
	table[V]
}

type options struct {
	hashFunc HashFunc
}

// Option configures a map at construction time.
type Option func(o *options)

// WithHashFunc overrides the default hash function.
func WithHashFunc(f HashFunc) Option {
	return func(o *options) {
		o.hashFunc = f
	}
}

func resolveOptions(opts []Option) options {
	o := options{hashFunc: DefaultHashFunc}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// New returns a map whose capacity is the closest prime at or above the
// requested capacity.
func New[V any](capacity int, opts ...Option) *Map[V] {
	var m Map[V]
	m.init(capacity, resolveOptions(opts).hashFunc)

	return &m
}

// Put adds a key/value pair, overwriting the value if the key is present.
func (m *Map[V]) Put(key string, value V) {
	// Doubling happens before the probe once size/capacity reaches 1/2, so
	// the pre-insert load factor never exceeds 0.5.
	if 2*m.size >= m.capacity {
		m.rehash(2 * m.capacity)
	}

	m.insert(key, value)
}

// Get returns the value stored under key, or (zero, false) if absent.
func (m *Map[V]) Get(key string) (V, bool) {
	return m.get(key)
}

// ContainsKey reports whether key is in the map.
func (m *Map[V]) ContainsKey(key string) bool {
	_, ok := m.get(key)
	return ok
}

// Remove deletes key and reports whether it was present. Removing an absent
// key is a no-op.
func (m *Map[V]) Remove(key string) bool {
	return m.delete(key)
}

// Resize rebuilds the table at the given capacity, bumped to the next prime
// if needed, and reinserts every live entry. A target below the current size
// is silently refused.
func (m *Map[V]) Resize(newCapacity int) {
	m.rehash(newCapacity)
}

// TableLoad returns the current load factor, size over capacity.
func (m *Map[V]) TableLoad() float64 {
	return float64(m.size) / float64(m.capacity)
}

// EmptyBuckets returns capacity minus size. Tombstoned slots hold no live
// value but are deliberately not counted as empty.
func (m *Map[V]) EmptyBuckets() int {
	return m.capacity - m.size
}

// Size returns the number of live entries.
func (m *Map[V]) Size() int {
	return m.size
}

// Capacity returns the number of slots in the backing table. Always prime.
func (m *Map[V]) Capacity() int {
	return m.capacity
}

// KeysAndValues returns every live pair in slot-index order. The order is a
// property of the current capacity and changes after a resize.
func (m *Map[V]) KeysAndValues() []Entry[V] {
	return m.keysAndValues()
}

// Clear replaces the table with an all-empty one of the current capacity.
func (m *Map[V]) Clear() {
	m.reset(m.capacity)
}

// All returns a lazy iterator over the live entries in slot-index order.
// Mutating the map during iteration is unsupported.
func (m *Map[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		for i := range m.slots {
			if m.slots[i].state != slotFull {
				continue
			}

			if !yield(m.slots[i].key, m.slots[i].value) {
				return
			}
		}
	}
}

// Stats returns a snapshot of the map's bookkeeping.
func (m *Map[V]) Stats() Stats {
	return Stats{
		Size:         m.size,
		Capacity:     m.capacity,
		Tombstones:   m.tombstones(),
		EmptyBuckets: m.capacity - m.size,
		Load:         float64(m.size) / float64(m.capacity),
	}
}

// Interface is the contract shared by the open-addressing and the
// separate-chaining backends. The collision strategy is picked at
// construction (New or NewChained); program against this type when it
// should stay swappable.
type Interface[V any] interface {
	Put(key string, value V)
	Get(key string) (V, bool)
	ContainsKey(key string) bool
	Remove(key string) bool
	Resize(newCapacity int)
	TableLoad() float64
	EmptyBuckets() int
	Size() int
	Capacity() int
	KeysAndValues() []Entry[V]
	Clear()
	All() iter.Seq2[string, V]
}

var (
	_ Interface[int] = (*Map[int])(nil)
	_ Interface[int] = (*ChainedMap[int])(nil)
)
