package sru

import (
	"fmt"
	"strings"
	"time"

	"github.com/cleared-dev/sietosru/internal/model"
)

// File names of a submission.
const (
	InfoFileName       = "INFO.sru"
	BlanketterFileName = "BLANKETTER.sru"
)

// RenderInfo writes the INFO.sru block describing the delivery and the
// submitting company.
func RenderInfo(l *model.Ledger, program string, generatedAt time.Time, lineEnding string) string {
	lines := []string{
		"#DATABESKRIVNING_START",
		"#PRODUKT SRU",
		"#SKAPAD " + generatedAt.Format(TimestampFormat),
		"#PROGRAM " + program,
		"#FILNAMN " + strings.ToUpper(BlanketterFileName),
		"#DATABESKRIVNING_SLUT",
		"#MEDIELEV_START",
		"#ORGNR " + l.Company.SRUIdentity(),
		"#NAMN " + l.Company.Name,
		fmt.Sprintf("#POSTNR %d", l.Company.PostalCode),
		"#POSTORT " + l.Company.PostalAddress,
		"#MEDIELEV_SLUT",
	}
	return strings.Join(lines, lineEnding)
}
