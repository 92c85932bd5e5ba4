// Package coverage answers whether a code falls inside the consolidated
// cover of a catalog.
package coverage

import (
	"fmt"
	"sort"
	"sync"

	"github.com/henderiw/shipzone/pkg/source"
	"github.com/henderiw/shipzone/pkg/zone"
)

// Index holds the consolidated cover of a catalog. An Index is safe for
// concurrent use.
type Index struct {
	m            *sync.RWMutex
	src          source.RangeSource
	consolidator *zone.Consolidator
	loaded       bool
	ranges       []zone.Range
}

// New consolidates rr right away.
func New(rr []zone.Range, opts ...zone.Option) (*Index, error) {
	ranges, err := zone.NewConsolidator(opts...).Consolidate(rr)
	if err != nil {
		return nil, err
	}
	return &Index{
		m:      new(sync.RWMutex),
		loaded: true,
		ranges: ranges,
	}, nil
}

// FromSource returns an Index that reads and consolidates src on first use.
// A failed load is not cached, the next query tries again.
func FromSource(src source.RangeSource, opts ...zone.Option) *Index {
	return &Index{
		m:            new(sync.RWMutex),
		src:          src,
		consolidator: zone.NewConsolidator(opts...),
	}
}

func (r *Index) consolidated() ([]zone.Range, error) {
	r.m.RLock()
	if r.loaded {
		defer r.m.RUnlock()
		return r.ranges, nil
	}
	r.m.RUnlock()

	r.m.Lock()
	defer r.m.Unlock()
	// another caller may have loaded it in between
	if r.loaded {
		return r.ranges, nil
	}
	raw, err := r.src.Ranges()
	if err != nil {
		return nil, err
	}
	ranges, err := r.consolidator.Consolidate(raw)
	if err != nil {
		return nil, err
	}
	r.ranges, r.loaded = ranges, true
	return r.ranges, nil
}

// Ranges returns a copy of the consolidated cover.
func (r *Index) Ranges() ([]zone.Range, error) {
	rr, err := r.consolidated()
	if err != nil {
		return nil, err
	}
	return append([]zone.Range{}, rr...), nil
}

// Covers returns whether c lies inside the consolidated cover.
func (r *Index) Covers(c zone.Code) (bool, error) {
	if c.IsZero() {
		return false, fmt.Errorf("membership query without a code: %w", zone.ErrPrecondition)
	}
	rr, err := r.consolidated()
	if err != nil {
		return false, err
	}
	return Membership(c, rr), nil
}

// CoversValue validates v as a code and calls Covers.
func (r *Index) CoversValue(v int) (bool, error) {
	c, err := zone.NewCode(v)
	if err != nil {
		return false, err
	}
	return r.Covers(c)
}

// Membership returns whether c lies in one of rr. rr must be sorted and
// disjoint, as returned by Consolidate.
func Membership(c zone.Code, rr []zone.Range) bool {
	// first range starting after c
	i := sort.Search(len(rr), func(i int) bool {
		return c.Less(rr[i].Lower())
	})
	return i > 0 && rr[i-1].Contains(c)
}
