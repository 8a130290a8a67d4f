package probemap

// table is the open-addressing core. Every entry lives directly in one flat
// slice of slots; collisions resolve by quadratic probing and deletes leave
// tombstones behind so probe chains running through them stay intact.
type table[V any] struct {
	slots    []slot[V]
	capacity int
	size     int

	hashFunc HashFunc

	emptyV V
}

func (t *table[V]) init(capacity int, hashFunc HashFunc) {
	t.hashFunc = hashFunc
	t.reset(NextPrime(capacity))
}

// reset swaps in a fresh all-empty table of exactly the given capacity.
func (t *table[V]) reset(capacity int) {
	t.capacity = capacity
	t.slots = make([]slot[V], capacity)
	t.size = 0
}

// home returns the probe start index for a key under the current capacity.
func (t *table[V]) home(key string) int {
	return int(t.hashFunc(key) % uint64(t.capacity))
}

// insert places or updates a key without consulting the load factor. Rehash
// migration comes through here directly, so reinsertion into the already-sized
// new table cannot trigger a second growth. Reports whether the key landed;
// false means the whole probe cycle held live entries of other keys, which a
// pre-insert load factor under 0.5 rules out.
//
// Successive offsets 2i+1 walk the quadratic sequence
// home, home+1, home+4, home+9, ... mod capacity.
func (t *table[V]) insert(key string, value V) bool {
	var (
		idx = t.home(key)

		target    int
		foundSlot bool
	)

	for probe := 0; probe < t.capacity; probe++ {
		s := &t.slots[idx]

		switch s.state {
		case slotEmpty:
			// Nothing past an empty slot, so the key is proven absent.
			if !foundSlot {
				target = idx
			}

			t.slots[target] = slot[V]{state: slotFull, key: key, value: value}
			t.size++

			return true
		case slotDeleted:
			// Reclaimable, but the key may still live further along the
			// chain. Cache the first vacancy and keep probing.
			if !foundSlot {
				target = idx
				foundSlot = true
			}
		case slotFull:
			if s.key == key {
				s.value = value
				return true
			}
		}

		idx = (idx + 2*probe + 1) % t.capacity
	}

	if foundSlot {
		t.slots[target] = slot[V]{state: slotFull, key: key, value: value}
		t.size++

		return true
	}

	return false
}

func (t *table[V]) get(key string) (V, bool) {
	if t.size == 0 {
		return t.emptyV, false
	}

	idx := t.home(key)

	for probe := 0; probe < t.capacity; probe++ {
		s := &t.slots[idx]

		switch s.state {
		case slotEmpty:
			// Termination: an empty slot proves the key was never placed
			// further along this chain. Tombstones keep the walk going.
			return t.emptyV, false
		case slotFull:
			if s.key == key {
				return s.value, true
			}
		}

		idx = (idx + 2*probe + 1) % t.capacity
	}

	return t.emptyV, false
}

func (t *table[V]) delete(key string) bool {
	if t.size == 0 {
		return false
	}

	idx := t.home(key)

	for probe := 0; probe < t.capacity; probe++ {
		s := &t.slots[idx]

		switch s.state {
		case slotEmpty:
			return false
		case slotFull:
			if s.key == key {
				// Mark as deleted in place to preserve the probe chains of
				// keys that collided past this slot.
				*s = slot[V]{state: slotDeleted}
				t.size--

				return true
			}
		}

		idx = (idx + 2*probe + 1) % t.capacity
	}

	return false
}

// rehash replaces the backing slice with a prime-capacity one and reinserts
// every live entry. Refuses to shrink below the current size.
func (t *table[V]) rehash(newCapacity int) {
	if newCapacity < t.size {
		return
	}

	if !IsPrime(newCapacity) {
		newCapacity = NextPrime(newCapacity)
	}

	old := t.slots

	// Reinsertion recomputes every home index: the hashes are stable but the
	// modulus changed.
	for {
		t.reset(newCapacity)

		migrated := true
		for i := range old {
			if old[i].state == slotFull && !t.insert(old[i].key, old[i].value) {
				migrated = false
				break
			}
		}

		if migrated {
			return
		}

		// A probe cycle found no vacancy at this tight capacity. Quadratic
		// probing only guarantees one below half load, so double and migrate
		// again rather than lose the entry.
		newCapacity = NextPrime(2 * newCapacity)
	}
}

// keysAndValues exports the live pairs in slot-index order.
func (t *table[V]) keysAndValues() []Entry[V] {
	entries := make([]Entry[V], 0, t.size)

	for i := range t.slots {
		if t.slots[i].state == slotFull {
			entries = append(entries, Entry[V]{Key: t.slots[i].key, Value: t.slots[i].value})
		}
	}

	return entries
}

func (t *table[V]) tombstones() int {
	n := 0

	for i := range t.slots {
		if t.slots[i].state == slotDeleted {
			n++
		}
	}

	return n
}
