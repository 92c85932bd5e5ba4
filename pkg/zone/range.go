package zone

import (
	"fmt"
	"strings"
)

// Range is an inclusive interval of codes, Lower <= Upper.
type Range struct {
	lower Code
	upper Code
}

// NewRange validates both bounds as codes and returns the range between them.
func NewRange(lower, upper int) (Range, error) {
	lo, err := NewCode(lower)
	if err != nil {
		return Range{}, err
	}
	hi, err := NewCode(upper)
	if err != nil {
		return Range{}, err
	}
	return RangeFrom(lo, hi)
}

func RangeFrom(lower, upper Code) (Range, error) {
	if lower.IsZero() || upper.IsZero() {
		return Range{}, ValidationError{
			Field:  "range bound",
			Value:  0,
			Reason: "code is not set",
		}
	}
	if upper.Less(lower) {
		return Range{}, ValidationError{
			Field:  "range lower",
			Value:  lower.value,
			Reason: fmt.Sprintf("greater than upper %d", upper.value),
		}
	}
	return Range{lower: lower, upper: upper}, nil
}

// MustRange is like NewRange but panics on invalid bounds.
func MustRange(lower, upper int) Range {
	r, err := NewRange(lower, upper)
	if err != nil {
		panic(err)
	}
	return r
}

// ParseRange parses a range written as "lower-upper".
func ParseRange(s string) (Range, error) {
	h := strings.IndexByte(s, '-')
	if h == -1 {
		return Range{}, fmt.Errorf("no hyphen in range %q: %w", s, ErrValidation)
	}
	lo, err := ParseCode(strings.TrimSpace(s[:h]))
	if err != nil {
		return Range{}, fmt.Errorf("invalid lower code in range %q: %w", s, err)
	}
	hi, err := ParseCode(strings.TrimSpace(s[h+1:]))
	if err != nil {
		return Range{}, fmt.Errorf("invalid upper code in range %q: %w", s, err)
	}
	return RangeFrom(lo, hi)
}

// Lower returns the lower bound of r.
func (r Range) Lower() Code { return r.lower }

// Upper returns the upper bound of r.
func (r Range) Upper() Code { return r.upper }

func (r Range) String() string {
	return fmt.Sprintf("%d-%d", r.lower.value, r.upper.value)
}

// IsValid reports whether r was built through NewRange or RangeFrom.
func (r Range) IsValid() bool {
	return !r.lower.IsZero() && !r.upper.IsZero() && !r.upper.Less(r.lower)
}

// Contains returns whether c lies within r, bounds included.
func (r Range) Contains(c Code) bool {
	return !c.Less(r.lower) && !r.upper.Less(c)
}

// IsMergeableWith returns whether r and other share at least one code.
// Ranges that only sit next to each other, like 10001-10005 and
// 10006-10010, are not mergeable.
func (r Range) IsMergeableWith(other Range) bool {
	if r == other {
		return true
	}
	return r.Contains(other.lower) || r.Contains(other.upper) ||
		other.Contains(r.lower) || other.Contains(r.upper)
}

// Merge returns the smallest range covering both r and other.
func (r Range) Merge(other Range) (Range, error) {
	if !r.IsMergeableWith(other) {
		return Range{}, InvalidOperationError{Op: "merge", A: r, B: other}
	}
	return Range{
		lower: Code{value: min(r.lower.value, other.lower.value)},
		upper: Code{value: max(r.upper.value, other.upper.value)},
	}, nil
}

// Compare orders ranges by lower bound, then by upper bound.
func (r Range) Compare(other Range) int {
	if cmp := r.lower.Compare(other.lower); cmp != 0 {
		return cmp
	}
	return r.upper.Compare(other.upper)
}

func (r Range) Less(other Range) bool { return r.Compare(other) < 0 }
