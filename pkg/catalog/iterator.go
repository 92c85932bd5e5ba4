package catalog

// Iterator walks catalog entries in ascending ID order.
type Iterator struct {
	current int
	keys    []int64
	table   map[int64]Entry
}

// Value returns the current entry. Next must have returned true before.
func (r *Iterator) Value() Entry {
	return r.table[r.keys[r.current]]
}

func (r *Iterator) ID() int64 {
	return r.keys[r.current]
}

// Next advances to the following entry and reports whether there is one.
func (r *Iterator) Next() bool {
	r.current++
	return r.current < len(r.keys)
}
