package sru

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/sietosru/internal/model"
)

// Sum is the total of all balances reported on one SRU code.
type Sum struct {
	Code   int
	Amount decimal.Decimal
}

// Aggregate groups balances by their account's SRU code and sums each
// group. Balances that are exactly zero are dropped before grouping, so a
// code only appears if at least one of its balances is non-zero. The result
// is ordered by code.
func Aggregate(balances []model.Balance) []Sum {
	totals := make(map[int]decimal.Decimal)
	var codes []int
	for _, b := range balances {
		if b.Amount.IsZero() {
			continue
		}
		code := b.Account.SRU
		total, seen := totals[code]
		if !seen {
			codes = append(codes, code)
			total = decimal.Zero
		}
		totals[code] = total.Add(b.Amount)
	}
	sort.Ints(codes)

	sums := make([]Sum, len(codes))
	for i, code := range codes {
		sums[i] = Sum{Code: code, Amount: totals[code]}
	}
	return sums
}

// RoundToInt rounds to a whole number of kronor, half to even.
func RoundToInt(amount decimal.Decimal) int64 {
	return amount.RoundBank(0).IntPart()
}

// SignFlip encodes a signed total as one of two non-negative codes:
// pos for value >= 0, neg with the negated value otherwise.
func SignFlip(pos, neg int, value int64) Entry {
	if value < 0 {
		return IntEntry(neg, -value)
	}
	return IntEntry(pos, value)
}

// OptionalAmount is a rounded amount that may be absent.
type OptionalAmount struct {
	Value int64
	Valid bool
}

// ResultPosts are the result balances that affect taxable income.
type ResultPosts struct {
	Result       int64 // year's result, SRU 7450
	Tax          int64 // income tax, SRU 7528, zero when not booked
	InterestCost OptionalAmount
	TaxExempt    OptionalAmount
}

// Total returns the sum of all present posts.
func (p ResultPosts) Total() int64 {
	total := p.Result + p.Tax
	if p.InterestCost.Valid {
		total += p.InterestCost.Value
	}
	if p.TaxExempt.Valid {
		total += p.TaxExempt.Value
	}
	return total
}

// ResultPostsFrom picks the result-affecting posts out of the ledger's
// result balances. A ledger without a year's result (SRU 7450) cannot be
// reported and yields a *model.ParseError.
func ResultPostsFrom(l *model.Ledger) (ResultPosts, error) {
	result, ok := sumWhere(l.Results, func(a model.Account) bool { return a.SRU == CodeYearResult })
	if !ok {
		return ResultPosts{}, &model.ParseError{
			Directive: "RES",
			Reason:    fmt.Sprintf("no result balance on SRU code %d", CodeYearResult),
		}
	}
	tax, _ := sumWhere(l.Results, func(a model.Account) bool { return a.SRU == CodeIncomeTax })
	interest, hasInterest := sumWhere(l.Results, func(a model.Account) bool { return a.Number == AccountTaxInterestCost })
	exempt, hasExempt := sumWhere(l.Results, func(a model.Account) bool { return a.Number == AccountTaxExemptIncome })

	return ResultPosts{
		Result:       RoundToInt(result),
		Tax:          RoundToInt(tax),
		InterestCost: OptionalAmount{Value: RoundToInt(interest), Valid: hasInterest},
		TaxExempt:    OptionalAmount{Value: RoundToInt(exempt), Valid: hasExempt},
	}, nil
}

// sumWhere sums the balances whose account matches and reports whether any did.
func sumWhere(balances []model.Balance, match func(model.Account) bool) (decimal.Decimal, bool) {
	total := decimal.Zero
	found := false
	for _, b := range balances {
		if match(b.Account) {
			total = total.Add(b.Amount)
			found = true
		}
	}
	return total, found
}

// sortEntries orders entries by code, keeping the relative order of equal codes.
func sortEntries(entries []Entry) []Entry {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Code < sorted[j].Code })
	return sorted
}
