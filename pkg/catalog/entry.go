package catalog

import (
	"fmt"

	"github.com/henderiw/shipzone/pkg/zone"
	"k8s.io/apimachinery/pkg/labels"
)

// Entry is one raw shipping zone of a catalog.
type Entry interface {
	ID() int64
	Range() zone.Range
	Labels() labels.Set
	String() string
}

type entry struct {
	id     int64
	rng    zone.Range
	labels labels.Set
}

type Entries []Entry

func (r entry) ID() int64          { return r.id }
func (r entry) Range() zone.Range  { return r.rng }
func (r entry) Labels() labels.Set { return r.labels }
func (r entry) String() string {
	return fmt.Sprintf("id: %d, range: %s, labels: %s", r.id, r.rng, r.labels.String())
}

func NewEntry(id int64, r zone.Range, l labels.Set) Entry {
	return entry{
		id:     id,
		rng:    r,
		labels: l,
	}
}

// Ranges returns the ranges of the entries in their current order.
func (r Entries) Ranges() []zone.Range {
	rr := make([]zone.Range, 0, len(r))
	for _, e := range r {
		rr = append(rr, e.Range())
	}
	return rr
}
