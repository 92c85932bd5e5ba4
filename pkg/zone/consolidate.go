package zone

import (
	"fmt"
	"sort"
)

// EmptyPolicy decides what consolidating an empty catalog yields.
type EmptyPolicy int

const (
	// EmptyAsEmpty returns an empty list for an empty catalog.
	EmptyAsEmpty EmptyPolicy = iota
	// EmptyAsError returns ErrEmptyCatalog for an empty catalog.
	EmptyAsError
)

func (p EmptyPolicy) String() string {
	switch p {
	case EmptyAsEmpty:
		return "empty"
	case EmptyAsError:
		return "error"
	}
	return fmt.Sprintf("EmptyPolicy(%d)", int(p))
}

func ParseEmptyPolicy(s string) (EmptyPolicy, error) {
	switch s {
	case "", "empty":
		return EmptyAsEmpty, nil
	case "error":
		return EmptyAsError, nil
	}
	return EmptyAsEmpty, fmt.Errorf("unknown empty catalog policy %q, expected \"empty\" or \"error\"", s)
}

type Option func(*Consolidator)

func WithEmptyPolicy(p EmptyPolicy) Option {
	return func(c *Consolidator) {
		c.emptyPolicy = p
	}
}

// Consolidator reduces a list of ranges to the minimal sorted list of
// disjoint ranges with the same union.
type Consolidator struct {
	emptyPolicy EmptyPolicy
}

func NewConsolidator(opts ...Option) *Consolidator {
	c := &Consolidator{}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *Consolidator) EmptyPolicy() EmptyPolicy { return c.emptyPolicy }

// Consolidate uses the default consolidator, where an empty input yields an
// empty result.
func Consolidate(rr []Range) ([]Range, error) {
	return NewConsolidator().Consolidate(rr)
}

// Consolidate returns the minimal sorted list of pairwise disjoint ranges
// covering rr. The input slice is not modified.
func (c *Consolidator) Consolidate(rr []Range) ([]Range, error) {
	if len(rr) == 0 {
		if c.emptyPolicy == EmptyAsError {
			return nil, ErrEmptyCatalog
		}
		return []Range{}, nil
	}
	for i, r := range rr {
		if !r.IsValid() {
			return nil, ValidationError{
				Field:  fmt.Sprintf("range[%d] lower", i),
				Value:  r.lower.value,
				Reason: "range was not built with NewRange or RangeFrom",
			}
		}
	}

	sorted := make([]Range, len(rr))
	copy(sorted, rr)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Less(sorted[j]) })

	out := make([]Range, 1, len(sorted))
	out[0] = sorted[0]
	for _, r := range sorted[1:] {
		prev := &out[len(out)-1]
		if !prev.IsMergeableWith(r) {
			// No shared code, r starts a new range.
			//
			//   prev       r
			// l------u  l-----u
			out = append(out, r)
			continue
		}
		// r overlaps prev, shares its upper bound or sits inside it.
		//
		//   prev          prev
		// l------u     l--------u
		//     l-----u    l----u
		//        r          r
		merged, err := prev.Merge(r)
		if err != nil {
			return nil, err
		}
		*prev = merged
	}
	return out, nil
}
