// Package lexer builds concrete byte-level token parsers on top of the comb
// engine: floating-point and integer literals, identifiers, and a small
// whitespace-skipping token stream over all of them.
package lexer

import (
	"fmt"
	"strconv"

	"github.com/gnoswap-labs/comb"
)

// TokenKind classifies the tokens Tokenize produces.
type TokenKind int

const (
	TokenNumber TokenKind = iota
	TokenIdentifier
)

func (k TokenKind) String() string {
	switch k {
	case TokenNumber:
		return "number"
	case TokenIdentifier:
		return "identifier"
	default:
		return "unknown"
	}
}

// Token is a single lexed token with its kind, raw text, and the starting
// position in the original input.
type Token struct {
	Kind     TokenKind `json:"kind"`
	Text     string    `json:"text"`
	Position int       `json:"position"`
}

// Lexer bundles the token parsers. The zero value is not usable; construct
// with New. A Lexer is immutable and safe for concurrent use.
type Lexer struct {
	// Number parses a floating-point literal: an integer part (a non-zero
	// digit followed by any digits, or a bare zero) with an optional
	// fraction (a dot followed by at least one digit).
	Number comb.Parser[byte, float64]

	// Integer parses a plain run of one or more digits.
	Integer comb.Parser[byte, int64]

	// Identifier parses a letter, underscore, or dollar sign followed by
	// any run of alphanumerics, underscores, or dollar signs.
	Identifier comb.Parser[byte, string]

	// numberText matches the same span as Number but keeps the raw text,
	// for token-stream output.
	numberText comb.Parser[byte, []byte]
}

// New constructs the token parsers.
func New() *Lexer {
	digit := comb.Next[byte]().Decide(isDigit)
	nonZero := comb.Next[byte]().Decide(func(b byte) bool { return isDigit(b) && b != '0' })

	// A leading zero is only ever a bare zero: "0123" lexes as 0 then 123.
	integerPart := comb.Left(nonZero, digit.Repeat(comb.ZeroOrMore())).Or(comb.Sym[byte]('0'))
	fraction := comb.Left(comb.Sym[byte]('.'), digit.Repeat(comb.OneOrMore()))

	numberText := comb.And(integerPart, fraction.Opt()).Collect()
	number := comb.Convert(numberText, func(text []byte) (float64, error) {
		return strconv.ParseFloat(string(text), 64)
	})

	integer := comb.Convert(digit.Repeat(comb.OneOrMore()).Collect(), func(text []byte) (int64, error) {
		return strconv.ParseInt(string(text), 10, 64)
	})

	head := comb.Next[byte]().Decide(func(b byte) bool { return isIdentByte(b) && !isDigit(b) })
	tail := comb.Next[byte]().Decide(isIdentByte).Repeat(comb.ZeroOrMore())
	identifier := comb.Map(comb.And(head, tail).Collect(), func(text []byte) string {
		return string(text)
	})

	return &Lexer{
		Number:     number,
		Integer:    integer,
		Identifier: identifier,
		numberText: numberText,
	}
}

// Tokenize scans input left to right, skipping whitespace and emitting a
// token per number or identifier. A byte that starts neither yields a
// CustomError carrying its position; tokens lexed up to that point are
// still returned.
func (l *Lexer) Tokenize(input []byte) ([]Token, error) {
	var tokens []Token
	pos := 0
	for pos < len(input) {
		if isSpace(input[pos]) {
			pos++
			continue
		}
		if text, end, err := l.numberText.ParseAt(input, pos); err == nil {
			tokens = append(tokens, Token{Kind: TokenNumber, Text: string(text), Position: pos})
			pos = end
			continue
		}
		if name, end, err := l.Identifier.ParseAt(input, pos); err == nil {
			tokens = append(tokens, Token{Kind: TokenIdentifier, Text: name, Position: pos})
			pos = end
			continue
		}
		return tokens, &comb.CustomError{
			Message:  fmt.Sprintf("unexpected byte %q", input[pos]),
			Position: pos,
			Inner:    comb.ErrIncomplete,
		}
	}
	return tokens, nil
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isIdentByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || isDigit(b) || b == '_' || b == '$'
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}
