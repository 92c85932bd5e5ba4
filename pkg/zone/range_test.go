package zone

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRange(t *testing.T) {
	cases := map[string]struct {
		lower       int
		upper       int
		expectedErr bool
	}{
		"Normal":         {lower: 94200, upper: 94299},
		"Singleton":      {lower: 10000, upper: 10000},
		"FullDomain":     {lower: MinCode, upper: MaxCode},
		"LowerAboveUp":   {lower: 10001, upper: 10000, expectedErr: true},
		"InvalidLower":   {lower: 9999, upper: 10000, expectedErr: true},
		"InvalidUpper":   {lower: 10000, upper: 100000, expectedErr: true},
		"BothOutOfRange": {lower: 1, upper: 10, expectedErr: true},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			r, err := NewRange(tc.lower, tc.upper)
			if tc.expectedErr {
				assert.ErrorIs(t, err, ErrValidation)
				assert.False(t, r.IsValid())
				return
			}
			require.NoError(t, err)
			assert.True(t, r.IsValid())
			assert.Equal(t, tc.lower, r.Lower().Value())
			assert.Equal(t, tc.upper, r.Upper().Value())
		})
	}
}

func TestRangeFrom(t *testing.T) {
	r, err := RangeFrom(MustCode(94133), MustCode(94133))
	require.NoError(t, err)
	assert.Equal(t, "94133-94133", r.String())

	_, err = RangeFrom(Code{}, MustCode(94133))
	assert.ErrorIs(t, err, ErrValidation)

	_, err = RangeFrom(MustCode(94134), MustCode(94133))
	var verr ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, 94134, verr.Value)
}

func TestParseRange(t *testing.T) {
	cases := map[string]struct {
		s           string
		expected    Range
		expectedErr bool
	}{
		"Normal":    {s: "94200-94299", expected: MustRange(94200, 94299)},
		"Spaces":    {s: "94200 - 94299", expected: MustRange(94200, 94299)},
		"Singleton": {s: "94133-94133", expected: MustRange(94133, 94133)},
		"NoHyphen":  {s: "94133", expectedErr: true},
		"Reversed":  {s: "94299-94200", expectedErr: true},
		"NotNumber": {s: "a-b", expectedErr: true},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			r, err := ParseRange(tc.s)
			if tc.expectedErr {
				assert.ErrorIs(t, err, ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, r)
		})
	}
}

func TestContains(t *testing.T) {
	r := MustRange(94200, 94299)
	cases := map[string]struct {
		code     int
		expected bool
	}{
		"Lower":  {code: 94200, expected: true},
		"Upper":  {code: 94299, expected: true},
		"Inside": {code: 94250, expected: true},
		"Before": {code: 94199, expected: false},
		"After":  {code: 94300, expected: false},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, r.Contains(MustCode(tc.code)))
		})
	}
}

func TestIsMergeableWith(t *testing.T) {
	cases := map[string]struct {
		a        Range
		b        Range
		expected bool
	}{
		"Equal":          {a: MustRange(10001, 10005), b: MustRange(10001, 10005), expected: true},
		"PartialOverlap": {a: MustRange(10001, 10010), b: MustRange(10005, 10015), expected: true},
		"Nested":         {a: MustRange(10001, 10020), b: MustRange(10005, 10010), expected: true},
		"SharedBoundary": {a: MustRange(10001, 10005), b: MustRange(10005, 10010), expected: true},
		"Adjacent":       {a: MustRange(10001, 10005), b: MustRange(10006, 10010), expected: false},
		"Disjoint":       {a: MustRange(10001, 10005), b: MustRange(10100, 10200), expected: false},
		"SingletonIn":    {a: MustRange(10001, 10005), b: MustRange(10003, 10003), expected: true},
		"SingletonOut":   {a: MustRange(10001, 10005), b: MustRange(10007, 10007), expected: false},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.a.IsMergeableWith(tc.b))
			assert.Equal(t, tc.expected, tc.b.IsMergeableWith(tc.a))
		})
	}
}

func TestMerge(t *testing.T) {
	cases := map[string]struct {
		a           Range
		b           Range
		expected    Range
		expectedErr bool
	}{
		"Equal":          {a: MustRange(10001, 10005), b: MustRange(10001, 10005), expected: MustRange(10001, 10005)},
		"PartialOverlap": {a: MustRange(94200, 94299), b: MustRange(94226, 94399), expected: MustRange(94200, 94399)},
		"Nested":         {a: MustRange(10001, 10020), b: MustRange(10005, 10010), expected: MustRange(10001, 10020)},
		"SharedBoundary": {a: MustRange(10001, 10005), b: MustRange(10005, 10010), expected: MustRange(10001, 10010)},
		"Adjacent":       {a: MustRange(10001, 10005), b: MustRange(10006, 10010), expectedErr: true},
		"Disjoint":       {a: MustRange(94133, 94133), b: MustRange(94200, 94299), expectedErr: true},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			ab, err := tc.a.Merge(tc.b)
			if tc.expectedErr {
				assert.ErrorIs(t, err, ErrInvalidOperation)
				var operr InvalidOperationError
				require.ErrorAs(t, err, &operr)
				assert.Equal(t, tc.a, operr.A)
				return
			}
			require.NoError(t, err)
			ba, err := tc.b.Merge(tc.a)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, ab)
			assert.Equal(t, ab, ba)
		})
	}
}

func TestCompare(t *testing.T) {
	a := MustRange(94200, 94299)
	b := MustRange(94200, 94399)
	c := MustRange(94226, 94299)

	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, b.Compare(a))
	assert.Equal(t, 0, a.Compare(a))
	assert.True(t, b.Less(c))
	assert.False(t, c.Less(a))
}

func randomRange(rnd *rand.Rand, span int) Range {
	lo := MinCode + rnd.Intn(span)
	hi := lo + rnd.Intn(span/4+1)
	return MustRange(lo, hi)
}

func TestMergeProperties(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	for i := 0; i < 2000; i++ {
		a, b := randomRange(rnd, 200), randomRange(rnd, 200)

		require.Equal(t, a.IsMergeableWith(b), b.IsMergeableWith(a), "symmetry %s %s", a, b)

		aa, err := a.Merge(a)
		require.NoError(t, err)
		require.Equal(t, a, aa, "idempotence %s", a)

		if !a.IsMergeableWith(b) {
			continue
		}
		ab, err := a.Merge(b)
		require.NoError(t, err)
		ba, err := b.Merge(a)
		require.NoError(t, err)
		require.Equal(t, ab, ba, "commutativity %s %s", a, b)
		require.True(t, ab.Contains(a.Lower()) && ab.Contains(a.Upper()))
		require.True(t, ab.Contains(b.Lower()) && ab.Contains(b.Upper()))
	}
}

func TestInvalidOperationErrorMessage(t *testing.T) {
	_, err := MustRange(94133, 94133).Merge(MustRange(94200, 94299))
	assert.EqualError(t, err, "cannot merge 94133-94133 with 94200-94299: ranges do not overlap")
	assert.False(t, errors.Is(err, ErrValidation))
}
