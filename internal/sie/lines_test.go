package sie

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitLines(t *testing.T) {
	assert.Equal(t, []string{"#A 1", "#B 2"}, SplitLines("#A 1\r\n#B 2\r\n"))
	assert.Equal(t, []string{"#A 1", "#B 2"}, SplitLines("#A 1\n#B 2"))
	assert.Equal(t, []string{"#A 1", "", "#B 2"}, SplitLines("#A 1\r\n\r\n#B 2\r\n"))
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{`A "B C" D`, []string{"A", "B C", "D"}},
		{`0 20230101 20231231`, []string{"0", "20230101", "20231231"}},
		{`1930 "Företagskonto"`, []string{"1930", "Företagskonto"}},
		{`"Exempel AB"`, []string{"Exempel AB"}},
		{`A  B`, []string{"A", "B"}},
		{`A "" B`, []string{"A", "", "B"}},
		{`"say \"hi\"" x`, []string{`say "hi"`, "x"}},
		{`1930 {} 1250.00`, []string{"1930", "{}", "1250.00"}},
		{"", nil},
		{"   ", nil},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Tokenize(tt.in), "Tokenize(%q)", tt.in)
	}
}

func TestLookup(t *testing.T) {
	lines := []string{
		"#FLAGGA 0",
		`#FNAMN "Exempel AB"`,
		"#ORGNR 556677-8899",
		"#SRU 30001 7411",
		"#SRU 3000 7410",
	}

	assert.Equal(t, []string{"Exempel AB"}, Lookup(lines, "FNAMN"))
	assert.Equal(t, []string{"556677-8899"}, Lookup(lines, "ORGNR"))
	assert.Equal(t, []string{"7410"}, Lookup(lines, "SRU 3000"))
	assert.Equal(t, []string{}, Lookup(lines, "RAR"))
	assert.NotNil(t, Lookup(lines, "RAR"))
}

func TestLookupRequiresWordBoundary(t *testing.T) {
	lines := []string{"#KONTOTYP 1930 T", "#KONTO 1930 Bank"}
	assert.Equal(t, []string{"1930", "Bank"}, Lookup(lines, "KONTO"))
}

func TestLookupBareDirective(t *testing.T) {
	assert.Equal(t, []string{}, Lookup([]string{"#FNAMN"}, "FNAMN"))
}

func TestLookupAll(t *testing.T) {
	lines := []string{
		"#RAR -1 20220101 20221231",
		"#FNAMN X",
		"#RAR 0 20230101 20231231",
	}
	got := LookupAll(lines, "RAR")
	assert.Equal(t, []Match{
		{Line: 1, Tokens: []string{"-1", "20220101", "20221231"}},
		{Line: 3, Tokens: []string{"0", "20230101", "20231231"}},
	}, got)

	assert.Empty(t, LookupAll(lines, "KONTO"))
}
