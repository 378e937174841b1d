package sru

import "github.com/cleared-dev/sietosru/internal/model"

// INK2S returns the tax adjustment entries: the book result and the posts
// added back or deducted from it, the resulting surplus or deficit, and the
// two attestation answers.
func INK2S(l *model.Ledger) ([]Entry, error) {
	posts, err := ResultPostsFrom(l)
	if err != nil {
		return nil, err
	}

	entries := []Entry{
		SignFlip(CodeINK2SProfit, CodeINK2SLoss, posts.Result),
		IntEntry(CodeINK2STax, posts.Tax),
	}
	if posts.InterestCost.Valid {
		entries = append(entries, IntEntry(CodeINK2SInterestCost, posts.InterestCost.Value))
	}
	if posts.TaxExempt.Valid {
		entries = append(entries, IntEntry(CodeINK2STaxExemptIncome, posts.TaxExempt.Value))
	}
	return append(entries,
		SignFlip(CodeINK2SSurplus, CodeINK2SDeficit, posts.Total()),
		// No accountant assisted with the annual report.
		Entry{Code: CodeINK2SAccountantAssisted, Value: Flag(FlagYes)},
		// The annual report has not been audited.
		Entry{Code: CodeINK2SAudited, Value: Flag(FlagYes)},
	), nil
}
