// Package sie parses the subset of an SIE export needed to fill in the
// INK2 tax forms: company identity, fiscal year, account to SRU mapping and
// current-year closing and result balances.
package sie

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/sietosru/internal/accounts"
	"github.com/cleared-dev/sietosru/internal/charset"
	"github.com/cleared-dev/sietosru/internal/model"
)

// Directive names.
const (
	DirCompanyName = "FNAMN"
	DirOrgNr       = "ORGNR"
	DirFiscalYear  = "RAR"
	DirAccount     = "KONTO"
	DirSRU         = "SRU"
	DirEndBalance  = "UB"
	DirResult      = "RES"
)

// currentYear is the year offset of the fiscal year being reported.
const currentYear = "0"

// Token positions in a balance line, "#UB 0 1930 1234.50" with '#' removed.
const (
	colBalanceYear    = 1
	colBalanceAccount = 2
	colBalanceAmount  = 3
)

// Token positions in "#RAR 0 20230101 20231231" after the directive.
const (
	colRarYear  = 0
	colRarStart = 1
	colRarEnd   = 2
)

var dateRE = regexp.MustCompile(`^\d{8}$`)

// ParseReader decodes r with the named charset and parses it.
func ParseReader(r io.Reader, encoding string, postalCode int, postalAddress string) (*model.Ledger, error) {
	text, err := charset.Decode(r, encoding)
	if err != nil {
		return nil, fmt.Errorf("reading SIE: %w", err)
	}
	return Parse(text, postalCode, postalAddress)
}

// Parse builds a Ledger from SIE text. Postal code and address are not part
// of an SIE export and are supplied by the caller. Any missing or malformed
// required field is returned as a *model.ParseError.
func Parse(text string, postalCode int, postalAddress string) (*model.Ledger, error) {
	lines := SplitLines(text)

	company, err := parseCompany(lines)
	if err != nil {
		return nil, err
	}
	company.PostalCode = postalCode
	company.PostalAddress = postalAddress

	start, end, err := parseFiscalYear(lines)
	if err != nil {
		return nil, err
	}

	accts, err := parseAccounts(lines)
	if err != nil {
		return nil, err
	}
	chart := accounts.NewService(accts)

	ending, err := parseBalances(lines, DirEndBalance, chart)
	if err != nil {
		return nil, err
	}
	results, err := parseBalances(lines, DirResult, chart)
	if err != nil {
		return nil, err
	}

	return &model.Ledger{
		Company:        company,
		StartDate:      start,
		EndDate:        end,
		Accounts:       accts,
		EndingBalances: ending,
		Results:        results,
	}, nil
}

func parseCompany(lines []string) (model.CompanyInfo, error) {
	name := Lookup(lines, DirCompanyName)
	if len(name) == 0 || name[0] == "" {
		return model.CompanyInfo{}, &model.ParseError{Directive: DirCompanyName, Reason: "company name missing"}
	}
	orgNr := Lookup(lines, DirOrgNr)
	if len(orgNr) == 0 || orgNr[0] == "" {
		return model.CompanyInfo{}, &model.ParseError{Directive: DirOrgNr, Reason: "organization number missing"}
	}
	return model.CompanyInfo{
		Name:  name[0],
		OrgNr: model.NormalizeOrgNr(orgNr[0]),
	}, nil
}

func parseFiscalYear(lines []string) (start, end string, err error) {
	for _, m := range LookupAll(lines, DirFiscalYear) {
		if len(m.Tokens) == 0 || m.Tokens[colRarYear] != currentYear {
			continue
		}
		if len(m.Tokens) <= colRarEnd {
			return "", "", &model.ParseError{Directive: DirFiscalYear, Line: m.Line, Reason: "expected start and end date"}
		}
		start, end = m.Tokens[colRarStart], m.Tokens[colRarEnd]
		if !dateRE.MatchString(start) || !dateRE.MatchString(end) {
			return "", "", &model.ParseError{
				Directive: DirFiscalYear,
				Line:      m.Line,
				Reason:    fmt.Sprintf("dates %q and %q are not yyyymmdd", start, end),
			}
		}
		return start, end, nil
	}
	return "", "", &model.ParseError{Directive: DirFiscalYear, Reason: "current fiscal year (0) missing"}
}

// parseAccounts returns every #KONTO that has an #SRU mapping, in file order.
func parseAccounts(lines []string) ([]model.Account, error) {
	codes, err := parseSRUCodes(lines)
	if err != nil {
		return nil, err
	}

	var accts []model.Account
	for _, m := range LookupAll(lines, DirAccount) {
		if len(m.Tokens) == 0 {
			return nil, &model.ParseError{Directive: DirAccount, Line: m.Line, Reason: "account number missing"}
		}
		number, err := strconv.Atoi(m.Tokens[0])
		if err != nil {
			return nil, &model.ParseError{Directive: DirAccount, Line: m.Line, Reason: "invalid account number", Err: err}
		}
		code, ok := codes[number]
		if !ok {
			continue
		}
		var name string
		if len(m.Tokens) > 1 {
			name = m.Tokens[1]
		}
		accts = append(accts, model.Account{Number: number, SRU: code, Name: name})
	}
	return accts, nil
}

// parseSRUCodes maps account number to SRU code. The first #SRU line for
// an account wins.
func parseSRUCodes(lines []string) (map[int]int, error) {
	codes := make(map[int]int)
	for _, m := range LookupAll(lines, DirSRU) {
		if len(m.Tokens) < 2 {
			return nil, &model.ParseError{Directive: DirSRU, Line: m.Line, Reason: "expected account and SRU code"}
		}
		number, err := strconv.Atoi(m.Tokens[0])
		if err != nil {
			return nil, &model.ParseError{Directive: DirSRU, Line: m.Line, Reason: "invalid account number", Err: err}
		}
		code, err := strconv.Atoi(m.Tokens[1])
		if err != nil {
			return nil, &model.ParseError{Directive: DirSRU, Line: m.Line, Reason: "invalid SRU code", Err: err}
		}
		if _, seen := codes[number]; !seen {
			codes[number] = code
		}
	}
	return codes, nil
}

// parseBalances collects the current-year lines of a balance directive
// (#UB or #RES) in file order.
func parseBalances(lines []string, dir string, chart *accounts.Service) ([]model.Balance, error) {
	var balances []model.Balance
	for i, line := range lines {
		if _, ok := directive(line, dir); !ok {
			continue
		}
		tokens := Tokenize(strings.TrimPrefix(line, "#"))
		if len(tokens) <= colBalanceYear || tokens[colBalanceYear] != currentYear {
			continue
		}
		b, err := parseBalance(tokens, chart)
		if err != nil {
			err.Directive = dir
			err.Line = i + 1
			return nil, err
		}
		balances = append(balances, b)
	}
	return balances, nil
}

func parseBalance(tokens []string, chart *accounts.Service) (model.Balance, *model.ParseError) {
	if len(tokens) <= colBalanceAmount {
		return model.Balance{}, &model.ParseError{Reason: "expected account and amount"}
	}
	number, err := strconv.Atoi(tokens[colBalanceAccount])
	if err != nil {
		return model.Balance{}, &model.ParseError{Reason: "invalid account number", Err: err}
	}
	acct, ok := chart.Get(number)
	if !ok {
		return model.Balance{}, &model.ParseError{Reason: fmt.Sprintf("account %d has no SRU mapping", number)}
	}
	amount, err := decimal.NewFromString(tokens[colBalanceAmount])
	if err != nil {
		return model.Balance{}, &model.ParseError{Reason: fmt.Sprintf("invalid amount %q", tokens[colBalanceAmount]), Err: err}
	}
	return model.Balance{Account: acct, Amount: amount}, nil
}
