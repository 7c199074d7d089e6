package syntax

// FromKinds builds tokens for line from a kind per byte, as produced by a
// grammar-aware classifier. Bytes past the end of kinds are Other.
// Maximal runs of non-space bytes with the same kind become one token and
// whitespace is glued the same way Tokenize glues it.
func FromKinds(line string, kinds []Kind) []Token {
	kindAt := func(i int) Kind {
		if i < len(kinds) {
			return kinds[i]
		}
		return Other
	}
	var tokens []Token
	pending := 0
	for i := 0; i < len(line); {
		if isSpace(line[i]) {
			i++
			continue
		}
		k := kindAt(i)
		j := i + 1
		for j < len(line) && !isSpace(line[j]) && kindAt(j) == k {
			j++
		}
		tokens = append(tokens, Token{Text: line[pending:j], Kind: k})
		i = j
		pending = j
	}
	if pending < len(line) {
		if len(tokens) == 0 {
			return []Token{{Text: line, Kind: Other}}
		}
		tokens[len(tokens)-1].Text += line[pending:]
	}
	return tokens
}
