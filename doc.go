/*
Package comb is a small parser-combinator engine: an algebra of composable
parsing functions over an indexed input slice, generic over both the element
type and the output type.

# Overview

A Parser[I, O] wraps a pure function from (input slice, start offset) to a
typed output and an end offset, or an error. Grammars are built by combining
a handful of primitive matchers with combinators for sequencing, alternation,
repetition, mapping, and conversion, instead of hand-writing a recursive
descent parser per rule. Input is a fully materialized random-access slice;
the engine does not stream.

# Primitives

  - Epsilon: always succeeds, consumes nothing
  - Next: consumes exactly one element
  - Sym: consumes one element equal to a given value
  - Seq: consumes a fixed run of elements, atomically

# Combinators

Transformations that keep the element type are methods; those that introduce
a new output type are free functions, since Go methods cannot add type
parameters:

  - Map, Convert: transform the output (Convert may fail)
  - Decide: filter a successful match through a predicate
  - Collect: replace the output with the consumed sub-slice of the input
  - Opt: zero-or-one, never fails
  - Repeat: greedy range-bounded repetition
  - And, Left, Right: sequencing keeping both, the left, or the right output
  - Or: ordered alternation, retrying from the original offset
  - Trace: observe successful matches without changing semantics
  - Expect: wrap failures with a name and position

# Failure and backtracking

Every failure is a returned error value, never a panic. ErrIncomplete is the
generic "did not match here"; ExpectError and CustomError carry a message, a
position, and a causal inner error for layered diagnostics. A failed parser
never counts input as consumed: Or re-runs its alternative from the original
start offset, and a failed sequence leaves the caller at its own start.

# Usage Example

A floating-point literal parser over bytes:

	digit := comb.Next[byte]().Decide(func(b byte) bool { return b >= '0' && b <= '9' })
	nonZero := digit.Decide(func(b byte) bool { return b != '0' })

	integer := comb.Left(nonZero, digit.Repeat(comb.ZeroOrMore())).Or(comb.Sym[byte]('0'))
	fraction := comb.Left(comb.Sym[byte]('.'), digit.Repeat(comb.OneOrMore()))

	number := comb.Convert(
		comb.And(integer, fraction.Opt()).Collect(),
		func(text []byte) (float64, error) { return strconv.ParseFloat(string(text), 64) },
	)

	value, err := number.Parse([]byte("22134HD")) // 22134.0, "HD" unconsumed

Parsers are immutable and reusable; the same value may serve any number of
independent parses, concurrently if desired, since nothing is mutated after
construction. Deeply recursive grammars are the caller's responsibility:
there is no recursion guard.
*/
package comb
