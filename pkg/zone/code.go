package zone

import (
	"fmt"
	"strconv"
)

const (
	MinCode = 10000
	MaxCode = 99999
)

// Code is a five digit shipping code. The zero value is not a valid code and
// is treated as "no code".
type Code struct {
	value int
}

func NewCode(v int) (Code, error) {
	if v < MinCode || v > MaxCode {
		return Code{}, ValidationError{
			Field:  "code",
			Value:  v,
			Reason: fmt.Sprintf("must be a five digit code between %d and %d", MinCode, MaxCode),
		}
	}
	return Code{value: v}, nil
}

// MustCode is like NewCode but panics on an invalid value.
func MustCode(v int) Code {
	c, err := NewCode(v)
	if err != nil {
		panic(err)
	}
	return c
}

func ParseCode(s string) (Code, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return Code{}, fmt.Errorf("invalid code %q: %w", s, ErrValidation)
	}
	return NewCode(v)
}

func (c Code) Value() int { return c.value }

func (c Code) IsZero() bool { return c.value == 0 }

// Compare returns -1, 0 or +1 when c is less than, equal to or greater than c2.
func (c Code) Compare(c2 Code) int {
	switch {
	case c.value < c2.value:
		return -1
	case c.value > c2.value:
		return 1
	}
	return 0
}

func (c Code) Less(c2 Code) bool { return c.value < c2.value }

func (c Code) String() string { return strconv.Itoa(c.value) }
