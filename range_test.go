package comb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepeatZeroOrMore(t *testing.T) {
	digit := Next[byte]().Decide(isASCIIDigit)

	tests := []struct {
		name    string
		input   string
		want    string
		wantEnd int
	}{
		{name: "no match at all", input: "abc", want: "", wantEnd: 0},
		{name: "some matches", input: "2134HD", want: "2134", wantEnd: 4},
		{name: "everything matches", input: "2134", want: "2134", wantEnd: 4},
		{name: "empty input", input: "", want: "", wantEnd: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, end, err := digit.Repeat(ZeroOrMore()).ParseAt([]byte(tt.input), 0)
			require.NoError(t, err)
			assert.Equal(t, []byte(tt.want), []byte(out))
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}

func TestRepeatOneOrMore(t *testing.T) {
	digit := Next[byte]().Decide(isASCIIDigit)

	out, end, err := digit.Repeat(OneOrMore()).ParseAt([]byte("19a"), 0)
	require.NoError(t, err)
	assert.Equal(t, []byte("19"), out)
	assert.Equal(t, 2, end)

	// fails iff zero matches occur
	_, end, err = digit.Repeat(OneOrMore()).ParseAt([]byte("a19"), 0)
	assert.ErrorIs(t, err, ErrIncomplete)
	assert.Equal(t, 0, end)
}

func TestRepeatAtLeast(t *testing.T) {
	digit := Next[byte]().Decide(isASCIIDigit)

	// an unbounded upper bound does not excuse missing the minimum
	_, _, err := digit.Repeat(AtLeast(3)).ParseAt([]byte("12x"), 0)
	assert.ErrorIs(t, err, ErrIncomplete)

	out, end, err := digit.Repeat(AtLeast(3)).ParseAt([]byte("123x"), 0)
	require.NoError(t, err)
	assert.Len(t, out, 3)
	assert.Equal(t, 3, end)
}

func TestRepeatAtMost(t *testing.T) {
	anyByte := Next[byte]()

	t.Run("stops at the bound without another attempt", func(t *testing.T) {
		out, end, err := anyByte.Repeat(AtMost(1)).ParseAt([]byte("Hello"), 0)
		require.NoError(t, err)
		assert.Equal(t, []byte("H"), out)
		assert.Equal(t, 1, end)
	})

	t.Run("first-attempt failure is an empty success", func(t *testing.T) {
		out, end, err := anyByte.Repeat(AtMost(3)).ParseAt([]byte(""), 0)
		require.NoError(t, err)
		assert.Empty(t, out)
		assert.Equal(t, 0, end)
	})

	t.Run("running out below a bounded count is a hard failure", func(t *testing.T) {
		_, end, err := anyByte.Repeat(AtMost(3)).ParseAt([]byte("ab"), 0)
		assert.ErrorIs(t, err, ErrIncomplete)
		assert.Equal(t, 0, end)
	})
}

func TestRepeatExactly(t *testing.T) {
	digit := Next[byte]().Decide(isASCIIDigit)

	out, end, err := digit.Repeat(Exactly(3)).ParseAt([]byte("12345"), 0)
	require.NoError(t, err)
	assert.Equal(t, []byte("123"), out)
	assert.Equal(t, 3, end)

	_, _, err = digit.Repeat(Exactly(3)).ParseAt([]byte("12x"), 0)
	assert.ErrorIs(t, err, ErrIncomplete)

	t.Run("exactly zero consumes nothing", func(t *testing.T) {
		out, end, err := digit.Repeat(Exactly(0)).ParseAt([]byte("123"), 0)
		require.NoError(t, err)
		assert.Empty(t, out)
		assert.Equal(t, 0, end)
	})
}

func TestRepeatBetween(t *testing.T) {
	digit := Next[byte]().Decide(isASCIIDigit)

	out, end, err := digit.Repeat(Between(1, 3)).ParseAt([]byte("12345"), 0)
	require.NoError(t, err)
	assert.Equal(t, []byte("123"), out)
	assert.Equal(t, 3, end)
}

// An inclusive upper bound stops only once the count passes N, so it permits
// one match beyond it. The exported helpers construct exclusive upper bounds;
// this pins the documented behavior for hand-built ranges.
func TestRepeatIncludedUpperBound(t *testing.T) {
	anyByte := Next[byte]()
	r := Range{Min: Include(0), Max: Include(2)}

	out, end, err := anyByte.Repeat(r).ParseAt([]byte("abcdef"), 0)
	require.NoError(t, err)
	assert.Len(t, out, 3)
	assert.Equal(t, 3, end)
}

// An unbounded lower bound does not get the first-attempt short circuit; a
// bounded upper bound then turns the failure into ErrIncomplete.
func TestRepeatUnboundedLowerBoundedUpper(t *testing.T) {
	digit := Next[byte]().Decide(isASCIIDigit)
	r := Range{Min: NoBound(), Max: Exclude(1)}

	_, _, err := digit.Repeat(r).ParseAt([]byte("x"), 0)
	assert.ErrorIs(t, err, ErrIncomplete)

	out, end, err := digit.Repeat(r).ParseAt([]byte("12"), 0)
	require.NoError(t, err)
	assert.Equal(t, []byte("1"), out)
	assert.Equal(t, 1, end)
}

func TestRepeatAny(t *testing.T) {
	digit := Next[byte]().Decide(isASCIIDigit)

	out, end, err := digit.Repeat(Any()).ParseAt([]byte("42x"), 0)
	require.NoError(t, err)
	assert.Equal(t, []byte("42"), out)
	assert.Equal(t, 2, end)

	// fully unconstrained, so zero matches still succeed
	out, end, err = digit.Repeat(Any()).ParseAt([]byte("x"), 0)
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Equal(t, 0, end)
}

func TestBoundHelpers(t *testing.T) {
	tests := []struct {
		name  string
		r     Range
		min   Bound
		max   Bound
	}{
		{name: "zero or more", r: ZeroOrMore(), min: Include(0), max: NoBound()},
		{name: "one or more", r: OneOrMore(), min: Include(1), max: NoBound()},
		{name: "at least", r: AtLeast(4), min: Include(4), max: NoBound()},
		{name: "at most", r: AtMost(4), min: Include(0), max: Exclude(4)},
		{name: "between", r: Between(2, 5), min: Include(2), max: Exclude(5)},
		{name: "exactly", r: Exactly(2), min: Include(2), max: Exclude(2)},
		{name: "any", r: Any(), min: NoBound(), max: NoBound()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.min, tt.r.Min)
			assert.Equal(t, tt.max, tt.r.Max)
		})
	}
}
