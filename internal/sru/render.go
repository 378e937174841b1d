package sru

import (
	"fmt"
	"strings"
	"time"

	"github.com/cleared-dev/sietosru/internal/model"
)

// TimestampFormat is the date and time layout of #IDENTITET and #SKAPAD.
const TimestampFormat = "20060102 150405"

// SystemInfo is the #SYSTEMINFO text of every form.
const SystemInfo = "Testad på https://www1.skatteverket.se/fv/fv_web/systemval.do?produkt=SRU"

// Line terminators.
const (
	CRLF = "\r\n"
	LF   = "\n"
)

// LineEnding maps a config name ("crlf", "lf") to a line terminator.
// An empty name selects CRLF.
func LineEnding(name string) (string, error) {
	switch strings.ToLower(name) {
	case "", "crlf":
		return CRLF, nil
	case "lf":
		return LF, nil
	default:
		return "", fmt.Errorf("unknown line ending %q (want crlf or lf)", name)
	}
}

// Header returns the six lines that open every form.
func Header(formID string, l *model.Ledger, generatedAt time.Time) []string {
	return []string{
		"#BLANKETT " + formID,
		fmt.Sprintf("#IDENTITET %s %s", l.Company.SRUIdentity(), generatedAt.Format(TimestampFormat)),
		"#NAMN " + l.Company.Name,
		"#SYSTEMINFO " + SystemInfo,
		fmt.Sprintf("#UPPGIFT %d %s", CodeFiscalStart, l.StartDate),
		fmt.Sprintf("#UPPGIFT %d %s", CodeFiscalEnd, l.EndDate),
	}
}

// Render writes a form: header, entries ordered by code, #BLANKETTSLUT.
func Render(formID string, l *model.Ledger, entries []Entry, generatedAt time.Time, lineEnding string) string {
	lines := Header(formID, l, generatedAt)
	for _, e := range sortEntries(entries) {
		lines = append(lines, e.String())
	}
	lines = append(lines, "#BLANKETTSLUT")
	return strings.Join(lines, lineEnding)
}
