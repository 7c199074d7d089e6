// Package syntax classifies single lines of source text into tokens for
// highlighting. It knows one fixed C-like grammar and keeps no state
// between calls.
package syntax

// Kind is the lexical class of a token.
type Kind int

const (
	Identifier Kind = iota
	Keyword
	Literal
	Operator
	Punctuator
	Comment
	Other
)

var kindNames = [...]string{
	Identifier: "identifier",
	Keyword:    "keyword",
	Literal:    "literal",
	Operator:   "operator",
	Punctuator: "punctuator",
	Comment:    "comment",
	Other:      "other",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Kinds lists every kind in declaration order.
func Kinds() []Kind {
	return []Kind{Identifier, Keyword, Literal, Operator, Punctuator, Comment, Other}
}

// Token is a classified run of a line. Leading whitespace is part of Text.
type Token struct {
	Text string
	Kind Kind
}

// Join concatenates token texts back into the line they came from.
func Join(tokens []Token) string {
	n := 0
	for _, t := range tokens {
		n += len(t.Text)
	}
	b := make([]byte, 0, n)
	for _, t := range tokens {
		b = append(b, t.Text...)
	}
	return string(b)
}
