package syntax

// Tokenize splits line into tokens. The language hint is accepted for
// callers that know the file type but does not change the grammar.
//
// Whitespace is never a token of its own: it is glued onto the front of
// the following token. Whitespace at the end of the line is appended to
// the last token, and a line made only of whitespace becomes a single
// Other token. Joining the texts of the result always gives back line.
func Tokenize(line, lang string) []Token {
	_ = lang
	var tokens []Token
	pending := 0 // start of the whitespace run not yet attached
	for i := 0; i < len(line); {
		if isSpace(line[i]) {
			i++
			continue
		}
		kind, n := classify(line[i:])
		tokens = append(tokens, Token{Text: line[pending : i+n], Kind: kind})
		i += n
		pending = i
	}
	if pending < len(line) {
		if len(tokens) == 0 {
			return []Token{{Text: line, Kind: Other}}
		}
		tokens[len(tokens)-1].Text += line[pending:]
	}
	return tokens
}

// classify returns the kind and byte length of the token at the start of
// text. The order of the checks decides ambiguous prefixes such as "//"
// against "/".
func classify(text string) (Kind, int) {
	if n := readComment(text); n > 0 {
		return Comment, n
	}
	if n := readOperator(text); n > 0 {
		return Operator, n
	}
	if n := readLiteral(text); n > 0 {
		return Literal, n
	}
	if n := readKeyword(text); n > 0 {
		return Keyword, n
	}
	if n := readIdentifier(text); n > 0 {
		return Identifier, n
	}
	if n := readPunctuator(text); n > 0 {
		return Punctuator, n
	}
	return Other, len(text)
}

func readComment(text string) int {
	if len(text) >= 2 && text[0] == '/' && text[1] == '/' {
		return len(text)
	}
	return 0
}

func readOperator(text string) int {
	for n := min(maxOperatorLen, len(text)); n > 0; n-- {
		if _, ok := operators[text[:n]]; ok {
			return n
		}
	}
	return 0
}

func readLiteral(text string) int {
	if n := readNumber(text); n > 0 {
		return n
	}
	return readQuoted(text)
}

func readNumber(text string) int {
	n := 0
	for n < len(text) && (isDigit(text[n]) || text[n] == '.') {
		n++
	}
	return n
}

func readQuoted(text string) int {
	if len(text) == 0 || (text[0] != '"' && text[0] != '\'') {
		return 0
	}
	quote := text[0]
	for i := 1; i < len(text); i++ {
		switch text[i] {
		case quote:
			return i + 1
		case '\\':
			i++
		}
	}
	return len(text)
}

func readKeyword(text string) int {
	for n := min(maxKeywordLen, len(text)); n > 0; n-- {
		if _, ok := keywords[text[:n]]; ok && wordEnds(text, n) {
			return n
		}
	}
	return 0
}

func readIdentifier(text string) int {
	n := 0
	for n < len(text) && isAlpha(text[n]) {
		n++
	}
	return n
}

func readPunctuator(text string) int {
	if _, ok := punctuators[text[:1]]; ok {
		return 1
	}
	return 0
}

// wordEnds reports whether a word ending at n is not glued to another
// letter. Digits and '_' end a word.
func wordEnds(text string, n int) bool {
	return n >= len(text) || !isAlpha(text[n])
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isAlpha(c byte) bool { return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' }
