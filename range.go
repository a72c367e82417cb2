package comb

// BoundKind tags the three forms a repetition limit can take.
type BoundKind int

const (
	BoundUnbounded BoundKind = iota // no limit
	BoundIncluded                   // limit N, inclusive
	BoundExcluded                   // limit N, exclusive
)

// Bound is one end of a repetition count constraint.
//
// As an upper bound it limits how many times Repeat attempts the inner
// parser: iteration stops once the match count reaches an Excluded bound or
// passes an Included one. As a lower bound it states the minimum count a
// repetition must collect before an inner failure can still count as success.
type Bound struct {
	Kind BoundKind
	N    int
}

// Include returns an inclusive bound at n.
func Include(n int) Bound { return Bound{Kind: BoundIncluded, N: n} }

// Exclude returns an exclusive bound at n.
func Exclude(n int) Bound { return Bound{Kind: BoundExcluded, N: n} }

// NoBound returns the unbounded end.
func NoBound() Bound { return Bound{Kind: BoundUnbounded} }

// stop reports whether a repetition holding count matches must not attempt
// another one under this upper bound.
func (b Bound) stop(count int) bool {
	switch b.Kind {
	case BoundExcluded:
		return count >= b.N
	case BoundIncluded:
		return count > b.N
	default:
		return false
	}
}

// satisfied reports whether count matches meet this lower bound.
func (b Bound) satisfied(count int) bool {
	switch b.Kind {
	case BoundIncluded:
		return count >= b.N
	case BoundExcluded:
		return count > b.N
	default:
		return true
	}
}

// Range is a repetition count constraint passed to Parser.Repeat. Construct
// one with the helpers below, or assemble bounds directly for unusual limits.
type Range struct {
	Min Bound
	Max Bound
}

// permitsZero reports whether the lower bound explicitly admits an empty
// repetition. Only an inclusive zero minimum short-circuits a failure on the
// very first attempt; an unbounded minimum does not.
func (r Range) permitsZero() bool {
	return r.Min.Kind == BoundIncluded && r.Min.N == 0
}

// ZeroOrMore matches any number of times, including none.
func ZeroOrMore() Range { return Range{Min: Include(0), Max: NoBound()} }

// OneOrMore matches at least once.
func OneOrMore() Range { return Range{Min: Include(1), Max: NoBound()} }

// AtLeast matches n or more times.
func AtLeast(n int) Range { return Range{Min: Include(n), Max: NoBound()} }

// AtMost matches between zero and n times.
func AtMost(n int) Range { return Range{Min: Include(0), Max: Exclude(n)} }

// Between matches between m and n times, both inclusive.
func Between(m, n int) Range { return Range{Min: Include(m), Max: Exclude(n)} }

// Exactly matches precisely n times.
func Exactly(n int) Range { return Range{Min: Include(n), Max: Exclude(n)} }

// Any places no constraint on the count at either end.
func Any() Range { return Range{Min: NoBound(), Max: NoBound()} }
