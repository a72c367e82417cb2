package comb

// parseFunc is the function every parser wraps: match input at start, return
// the typed output and the offset just past the consumed span.
type parseFunc[I, O any] func(input []I, start int) (O, int, error)

// Parser matches a prefix of an input slice beginning at some offset and
// produces a typed output. A Parser is immutable once constructed, owns its
// closed-over sub-parsers, and may be reused across independent parses,
// including concurrently, as long as the input itself is not mutated.
type Parser[I, O any] struct {
	apply parseFunc[I, O]
}

func newParser[I, O any](apply parseFunc[I, O]) Parser[I, O] {
	return Parser[I, O]{apply: apply}
}

// Parse runs the parser against input from offset 0 and returns the output,
// discarding the end offset. Trailing unconsumed input is not an error.
func (p Parser[I, O]) Parse(input []I) (O, error) {
	out, _, err := p.apply(input, 0)
	return out, err
}

// ParseAt runs the parser from an arbitrary start offset and additionally
// returns the end offset, for consumers that lex incrementally. On failure
// the returned offset is the original start; callers must not treat any
// input as consumed.
func (p Parser[I, O]) ParseAt(input []I, start int) (O, int, error) {
	return p.apply(input, start)
}

// Epsilon succeeds unconditionally without consuming input. It is the unit
// of sequencing and the base case for repetition.
func Epsilon[I any]() Parser[I, struct{}] {
	return newParser(func(_ []I, start int) (struct{}, int, error) {
		return struct{}{}, start, nil
	})
}

// Next consumes exactly one element, whatever it is. It fails with
// ErrIncomplete at end of input.
func Next[I any]() Parser[I, I] {
	return newParser(func(input []I, start int) (I, int, error) {
		if start >= len(input) {
			var zero I
			return zero, start, ErrIncomplete
		}
		return input[start], start + 1, nil
	})
}

// Sym consumes one element equal to want. It fails with ErrIncomplete on
// mismatch or end of input.
func Sym[I comparable](want I) Parser[I, I] {
	return newParser(func(input []I, start int) (I, int, error) {
		if start >= len(input) || input[start] != want {
			var zero I
			return zero, start, ErrIncomplete
		}
		return input[start], start + 1, nil
	})
}

// Seq consumes a run of elements equal to want, element by element. The
// match is atomic: any mismatch fails with ErrIncomplete and nothing counts
// as consumed. The output is the pattern slice itself, not a view of the
// input; use Collect to recover the input-derived span.
func Seq[I comparable](want []I) Parser[I, []I] {
	return newParser(func(input []I, start int) ([]I, int, error) {
		if start+len(want) > len(input) {
			return nil, start, ErrIncomplete
		}
		for i := range want {
			if input[start+i] != want[i] {
				return nil, start, ErrIncomplete
			}
		}
		return want, start + len(want), nil
	})
}

// Map transforms the output of p with fn on success. Failures propagate
// unchanged.
func Map[I, O, U any](p Parser[I, O], fn func(O) U) Parser[I, U] {
	return newParser(func(input []I, start int) (U, int, error) {
		out, end, err := p.apply(input, start)
		if err != nil {
			var zero U
			return zero, start, err
		}
		return fn(out), end, nil
	})
}

// Convert transforms the output of p with a fallible fn. A conversion
// failure is reported as a bare ErrIncomplete; the conversion error itself
// is discarded. Wrap with Expect to keep positional context.
func Convert[I, O, U any](p Parser[I, O], fn func(O) (U, error)) Parser[I, U] {
	return newParser(func(input []I, start int) (U, int, error) {
		out, end, err := p.apply(input, start)
		if err != nil {
			var zero U
			return zero, start, err
		}
		converted, err := fn(out)
		if err != nil {
			var zero U
			return zero, start, ErrIncomplete
		}
		return converted, end, nil
	})
}

// Decide filters a successful match through pred. A false verdict turns the
// match into a bare ErrIncomplete, as if the inner parser had not matched.
// The check runs after the match, so it sees the fully produced output.
func (p Parser[I, O]) Decide(pred func(O) bool) Parser[I, O] {
	return newParser(func(input []I, start int) (O, int, error) {
		out, end, err := p.apply(input, start)
		if err != nil {
			var zero O
			return zero, start, ErrIncomplete
		}
		if !pred(out) {
			var zero O
			return zero, start, ErrIncomplete
		}
		return out, end, nil
	})
}

// Collect discards the typed output and instead returns the sub-slice of the
// input that p consumed. The result aliases the caller's input and is only
// valid while that slice is.
func (p Parser[I, O]) Collect() Parser[I, []I] {
	return newParser(func(input []I, start int) ([]I, int, error) {
		_, end, err := p.apply(input, start)
		if err != nil {
			return nil, start, err
		}
		return input[start:end], end, nil
	})
}

// Opt makes p optional: on failure it succeeds with None at the original
// offset, consuming nothing. Opt never fails.
func (p Parser[I, O]) Opt() Parser[I, Option[O]] {
	return newParser(func(input []I, start int) (Option[O], int, error) {
		out, end, err := p.apply(input, start)
		if err != nil {
			return None[O](), start, nil
		}
		return Some(out), end, nil
	})
}

// Repeat applies p greedily, left to right, collecting outputs until p fails
// or the upper bound of r stops iteration.
//
// An inclusive-zero lower bound turns a failure on the very first attempt
// into an empty success at the start offset. When p fails after that, an
// unbounded upper bound yields the matches collected so far provided the
// lower bound is satisfied; a bounded upper bound makes any such failure a
// hard ErrIncomplete, since the repetition ran out of matches before
// reaching its required count.
func (p Parser[I, O]) Repeat(r Range) Parser[I, []O] {
	return newParser(func(input []I, start int) ([]O, int, error) {
		var (
			out   []O
			count int
		)
		pos := start
		for !r.Max.stop(count) {
			next, end, err := p.apply(input, pos)
			if err != nil {
				if count == 0 && r.permitsZero() {
					return nil, start, nil
				}
				if r.Max.Kind == BoundUnbounded && r.Min.satisfied(count) {
					return out, pos, nil
				}
				return nil, start, ErrIncomplete
			}
			out = append(out, next)
			pos = end
			count++
		}
		return out, pos, nil
	})
}

// Trace invokes observe with the output and the consumed span on every
// success, then passes the result through unchanged. Failures propagate
// without invoking observe. Trace has no effect on parse semantics.
func (p Parser[I, O]) Trace(observe func(out O, start, end int)) Parser[I, O] {
	return newParser(func(input []I, start int) (O, int, error) {
		out, end, err := p.apply(input, start)
		if err != nil {
			var zero O
			return zero, start, err
		}
		observe(out, start, end)
		return out, end, nil
	})
}

// Or tries p and, if it fails, tries q from the same start offset. First
// match wins; there is no longest-match tie-break. The result of a failing
// p is discarded entirely, so (p.Or(q)) behaves exactly like q whenever p
// fails.
func (p Parser[I, O]) Or(q Parser[I, O]) Parser[I, O] {
	return newParser(func(input []I, start int) (O, int, error) {
		out, end, err := p.apply(input, start)
		if err == nil {
			return out, end, nil
		}
		return q.apply(input, start)
	})
}

// Expect names the construct p matches. On failure the inner error is
// wrapped in an ExpectError carrying the start position, giving grammar
// authors a place to attach the diagnostics the primitives omit.
func (p Parser[I, O]) Expect(message string) Parser[I, O] {
	return newParser(func(input []I, start int) (O, int, error) {
		out, end, err := p.apply(input, start)
		if err != nil {
			var zero O
			return zero, start, &ExpectError{Message: message, Position: start, Inner: err}
		}
		return out, end, nil
	})
}

// And sequences two parsers and keeps both outputs: b runs from a's end
// offset, and the pair is produced at b's end offset. Either failure fails
// the whole sequence; a is not re-tried once b has started.
func And[I, A, B any](a Parser[I, A], b Parser[I, B]) Parser[I, Pair[A, B]] {
	return newParser(func(input []I, start int) (Pair[A, B], int, error) {
		first, mid, err := a.apply(input, start)
		if err != nil {
			var zero Pair[A, B]
			return zero, start, err
		}
		second, end, err := b.apply(input, mid)
		if err != nil {
			var zero Pair[A, B]
			return zero, start, err
		}
		return Pair[A, B]{First: first, Second: second}, end, nil
	})
}

// Left sequences a then b and keeps a's output at b's end offset. Use it to
// consume and discard a mandatory trailing token.
func Left[I, A, B any](a Parser[I, A], b Parser[I, B]) Parser[I, A] {
	return Map(And(a, b), func(p Pair[A, B]) A { return p.First })
}

// Right sequences a then b and keeps b's output at b's end offset. Use it to
// discard a mandatory prefix.
func Right[I, A, B any](a Parser[I, A], b Parser[I, B]) Parser[I, B] {
	return Map(And(a, b), func(p Pair[A, B]) B { return p.Second })
}

// Pair carries the two outputs of And.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Option carries the present-or-absent output of Opt.
type Option[O any] struct {
	value O
	ok    bool
}

// Some wraps a present value.
func Some[O any](v O) Option[O] { return Option[O]{value: v, ok: true} }

// None is the absent value.
func None[O any]() Option[O] { return Option[O]{} }

// Get returns the value and whether it is present.
func (o Option[O]) Get() (O, bool) { return o.value, o.ok }

// IsSome reports whether a value is present.
func (o Option[O]) IsSome() bool { return o.ok }
