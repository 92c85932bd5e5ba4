// Package source supplies raw catalog ranges to the consolidation core.
package source

import (
	"github.com/henderiw/shipzone/pkg/zone"
)

// RangeSource supplies the raw, unsorted ranges of a catalog.
type RangeSource interface {
	Ranges() ([]zone.Range, error)
}

// Static is a RangeSource over an in-memory list.
type Static []zone.Range

func (s Static) Ranges() ([]zone.Range, error) {
	return append([]zone.Range{}, s...), nil
}

var (
	_ RangeSource = Static{}
	_ RangeSource = (*File)(nil)
)
