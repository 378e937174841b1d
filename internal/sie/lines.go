package sie

import (
	"strings"
	"unicode"
)

// SplitLines splits SIE text into lines. Lines end in CRLF in a conforming
// export; a bare LF is accepted as well. Index i holds source line i+1.
func SplitLines(text string) []string {
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// Tokenize splits a line on spaces. Text inside a pair of double quotes is
// kept verbatim as one token with the quotes removed; \" inside quotes is a
// literal quote and "" is an empty token.
func Tokenize(s string) []string {
	var tokens []string
	var acc strings.Builder
	inQuote := false
	pending := false // acc holds a token, possibly empty ("")

	flush := func() {
		if pending {
			tokens = append(tokens, acc.String())
		}
		acc.Reset()
		pending = false
	}

	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		c := runes[i]
		switch {
		case inQuote && c == '\\' && i+1 < len(runes) && runes[i+1] == '"':
			acc.WriteRune('"')
			i++
		case c == '"':
			inQuote = !inQuote
			pending = true
		case !inQuote && unicode.IsSpace(c):
			flush()
		default:
			acc.WriteRune(c)
			pending = true
		}
	}
	flush()
	return tokens
}

// directive returns the remainder of line after "#name" when line is that
// directive, i.e. "#name" is followed by whitespace or the end of the line.
func directive(line, name string) (string, bool) {
	prefix := "#" + name
	if !strings.HasPrefix(line, prefix) {
		return "", false
	}
	rest := line[len(prefix):]
	if rest == "" {
		return "", true
	}
	if rest[0] != ' ' && rest[0] != '\t' {
		return "", false
	}
	return rest[1:], true
}

// Lookup returns the tokenized remainder of the first line that is the
// directive name, or an empty slice when no line matches. Name may contain
// leading arguments, e.g. "SRU 3000".
func Lookup(lines []string, name string) []string {
	for _, line := range lines {
		if rest, ok := directive(line, name); ok {
			return nonNil(Tokenize(rest))
		}
	}
	return []string{}
}

// Match is a directive line found by LookupAll.
type Match struct {
	Line   int // 1-based source line
	Tokens []string
}

// LookupAll returns the tokenized remainder of every line that is the
// directive name, in order.
func LookupAll(lines []string, name string) []Match {
	var matches []Match
	for i, line := range lines {
		if rest, ok := directive(line, name); ok {
			matches = append(matches, Match{Line: i + 1, Tokens: nonNil(Tokenize(rest))})
		}
	}
	return matches
}

func nonNil(tokens []string) []string {
	if tokens == nil {
		return []string{}
	}
	return tokens
}
