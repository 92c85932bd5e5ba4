package catalog

import (
	"errors"
	"fmt"
	"sort"

	"github.com/henderiw/shipzone/pkg/zone"
	"k8s.io/apimachinery/pkg/labels"
)

// Catalog is an immutable set of raw shipping zones keyed by entry ID.
type Catalog interface {
	Get(id int64) (Entry, error)
	Has(id int64) bool
	Count() int

	Iterate() *Iterator

	GetAll() Entries
	GetByLabel(selector labels.Selector) Entries

	// Ranges returns the ranges of all entries sorted by lower then upper
	// bound.
	Ranges() []zone.Range
}

// ValidationFn is an additional check applied to every entry.
type ValidationFn func(e Entry) error

// New builds a catalog from entries. Invalid entries are left out and their
// errors are joined in the returned error, the catalog holds the rest.
func New(entries Entries, v ValidationFn) (Catalog, error) {
	r := &catalog{
		table:      make(map[int64]Entry, len(entries)),
		validateFn: v,
	}

	var errm error
	for _, e := range entries {
		if err := r.add(e); err != nil {
			errm = errors.Join(errm, err)
		}
	}
	r.keys = make([]int64, 0, len(r.table))
	for id := range r.table {
		r.keys = append(r.keys, id)
	}
	sort.Slice(r.keys, func(i, j int) bool {
		return r.keys[i] < r.keys[j]
	})
	return r, errm
}

type catalog struct {
	table      map[int64]Entry
	keys       []int64
	validateFn ValidationFn
}

func (r *catalog) validate(e Entry) error {
	if e == nil {
		return fmt.Errorf("entry is nil")
	}
	if !e.Range().IsValid() {
		return fmt.Errorf("entry %d has an invalid range %s: %w", e.ID(), e.Range(), zone.ErrValidation)
	}
	if r.validateFn != nil {
		if err := r.validateFn(e); err != nil {
			return fmt.Errorf("entry %d: %w", e.ID(), err)
		}
	}
	return nil
}

func (r *catalog) add(e Entry) error {
	if err := r.validate(e); err != nil {
		return err
	}
	if r.Has(e.ID()) {
		return fmt.Errorf("entry %d already exists", e.ID())
	}
	r.table[e.ID()] = e
	return nil
}

func (r *catalog) Get(id int64) (Entry, error) {
	e, ok := r.table[id]
	if !ok {
		return nil, fmt.Errorf("no match found for: %v", id)
	}
	return e, nil
}

func (r *catalog) Has(id int64) bool {
	_, ok := r.table[id]
	return ok
}

func (r *catalog) Count() int {
	return len(r.table)
}

func (r *catalog) Iterate() *Iterator {
	return &Iterator{current: -1, keys: r.keys, table: r.table}
}

func (r *catalog) GetAll() Entries {
	entries := make(Entries, 0, len(r.table))

	iter := r.Iterate()
	for iter.Next() {
		entries = append(entries, iter.Value())
	}
	return entries
}

func (r *catalog) GetByLabel(selector labels.Selector) Entries {
	entries := Entries{}

	iter := r.Iterate()
	for iter.Next() {
		if selector.Matches(iter.Value().Labels()) {
			entries = append(entries, iter.Value())
		}
	}
	return entries
}

func (r *catalog) Ranges() []zone.Range {
	rr := r.GetAll().Ranges()
	sort.Slice(rr, func(i, j int) bool { return rr[i].Less(rr[j]) })
	return rr
}
