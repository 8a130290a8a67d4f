package probemap

// Stats is a point-in-time snapshot of a map's bookkeeping.
type Stats struct {
	Size         int
	Capacity     int
	Tombstones   int
	EmptyBuckets int
	Load         float64
}
