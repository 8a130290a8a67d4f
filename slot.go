package probemap

const (
	slotEmpty uint8 = iota
	slotDeleted
	slotFull
)

// slot is one position in the backing table. The state tag keeps the three
// cases (never used / tombstone / live) mutually exclusive: a tombstone never
// carries a live pair.
type slot[V any] struct {
	state uint8
	key   string
	value V
}

// Entry is a single key/value pair as exported by KeysAndValues.
type Entry[V any] struct {
	Key   string
	Value V
}
