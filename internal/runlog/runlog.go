// Package runlog keeps an append-only CSV record of every submission
// written to an output directory.
package runlog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// FileName is the log file written in the output root.
const FileName = "sru-log.csv"

// Header is the CSV header for sru-log.csv.
const Header = "timestamp,source,org_nr,fiscal_year,forms,entries,output_dir"

const (
	numFields     = 7
	colTimestamp  = 0
	colSource     = 1
	colOrgNr      = 2
	colFiscalYear = 3
	colForms      = 4
	colEntries    = 5
	colOutputDir  = 6
)

// Entry is one row in the conversion log.
type Entry struct {
	Timestamp  time.Time
	Source     string // SIE file path
	OrgNr      string // SRU identity, "16" + digits
	FiscalYear string
	Forms      []string // form identifiers, e.g. INK2R-2017P4
	Entries    int      // #UPPGIFT lines across all forms
	OutputDir  string
}

// MarshalEntry converts an Entry to a CSV row.
func MarshalEntry(e Entry) []string {
	row := make([]string, numFields)
	row[colTimestamp] = e.Timestamp.Format(time.RFC3339)
	row[colSource] = e.Source
	row[colOrgNr] = e.OrgNr
	row[colFiscalYear] = e.FiscalYear
	row[colForms] = strings.Join(e.Forms, ";")
	row[colEntries] = strconv.Itoa(e.Entries)
	row[colOutputDir] = e.OutputDir
	return row
}

// UnmarshalEntry converts a CSV row to an Entry.
func UnmarshalEntry(record []string) (Entry, error) {
	if len(record) != numFields {
		return Entry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	ts, err := time.Parse(time.RFC3339, record[colTimestamp])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing timestamp %q: %w", record[colTimestamp], err)
	}

	n, err := strconv.Atoi(record[colEntries])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing entries %q: %w", record[colEntries], err)
	}

	var forms []string
	if record[colForms] != "" {
		forms = strings.Split(record[colForms], ";")
	}

	return Entry{
		Timestamp:  ts,
		Source:     record[colSource],
		OrgNr:      record[colOrgNr],
		FiscalYear: record[colFiscalYear],
		Forms:      forms,
		Entries:    n,
		OutputDir:  record[colOutputDir],
	}, nil
}

// Append writes entries to <root>/sru-log.csv, creating the file and header if needed.
func Append(root string, entries []Entry) error {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return fmt.Errorf("creating log dir: %w", err)
	}

	path := filepath.Join(root, FileName)
	needsHeader := false
	if _, err := os.Stat(path); os.IsNotExist(err) {
		needsHeader = true
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening conversion log: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)

	if needsHeader {
		if err := cw.Write(strings.Split(Header, ",")); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	for i, e := range entries {
		if err := cw.Write(MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing entry %d: %w", i, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// Read returns all entries from <root>/sru-log.csv.
// Returns an empty slice if the file does not exist.
func Read(root string) ([]Entry, error) {
	path := filepath.Join(root, FileName)
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening conversion log: %w", err)
	}
	defer f.Close()

	return readEntries(f)
}

func readEntries(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading conversion log CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var entries []Entry
	for i, rec := range records[1:] {
		e, err := UnmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
