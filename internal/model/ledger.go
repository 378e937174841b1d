package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// SRUOrgPrefix is prepended to the org number in #IDENTITET and #ORGNR.
const SRUOrgPrefix = "16"

// CompanyInfo identifies the reporting company.
// PostalCode and PostalAddress are not part of an SIE export.
type CompanyInfo struct {
	Name          string
	OrgNr         string // digits only
	PostalCode    int
	PostalAddress string
}

// SRUIdentity returns the org number as written in SRU files: "16" + digits.
func (c CompanyInfo) SRUIdentity() string {
	return SRUOrgPrefix + c.OrgNr
}

// Balance is an amount booked on an account for the current fiscal year.
type Balance struct {
	Account Account
	Amount  decimal.Decimal
}

// Ledger is the subset of an SIE export needed for the tax forms.
// It is built once by the parser and never modified.
type Ledger struct {
	Company        CompanyInfo
	StartDate      string // yyyymmdd
	EndDate        string // yyyymmdd
	Accounts       []Account
	EndingBalances []Balance // #UB 0
	Results        []Balance // #RES 0
}

// FiscalYear returns the four-digit year the fiscal period starts in.
func (l *Ledger) FiscalYear() string {
	if len(l.StartDate) < 4 {
		return l.StartDate
	}
	return l.StartDate[:4]
}

// NormalizeOrgNr strips separators from an org number ("556677-8899" -> "5566778899").
func NormalizeOrgNr(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '-' || r == ' ' {
			return -1
		}
		return r
	}, s)
}
