package sru

import "github.com/cleared-dev/sietosru/internal/model"

// INK2R returns the balance sheet and income statement entries: every
// non-zero SRU code of the closing balances followed by those of the
// result balances. A loss on the year's result line is reported as a
// positive amount on the loss line.
func INK2R(l *model.Ledger) ([]Entry, error) {
	sums := append(Aggregate(l.EndingBalances), Aggregate(l.Results)...)

	entries := make([]Entry, 0, len(sums))
	for _, s := range sums {
		value := RoundToInt(s.Amount)
		if s.Code == CodeINK2RProfit && value < 0 {
			entries = append(entries, IntEntry(CodeINK2RLoss, -value))
			continue
		}
		entries = append(entries, IntEntry(s.Code, value))
	}
	return entries, nil
}
