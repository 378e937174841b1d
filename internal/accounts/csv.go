package accounts

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cleared-dev/sietosru/internal/model"
)

// Header is the CSV header written by WriteAccounts.
const Header = "account,sru,name"

const (
	numFields = 3
	colNumber = 0
	colSRU    = 1
	colName   = 2
)

// WriteAccounts writes the account to SRU-code mapping as CSV.
func WriteAccounts(w io.Writer, accounts []model.Account) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, acct := range accounts {
		if err := cw.Write(MarshalAccount(acct)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// MarshalAccount converts an Account to a CSV row.
func MarshalAccount(acct model.Account) []string {
	row := make([]string, numFields)
	row[colNumber] = strconv.Itoa(acct.Number)
	row[colSRU] = strconv.Itoa(acct.SRU)
	row[colName] = acct.Name
	return row
}
