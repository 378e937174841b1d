package sru

import "github.com/cleared-dev/sietosru/internal/model"

// INK2 returns the main return's entries: taxable surplus or deficit.
func INK2(l *model.Ledger) ([]Entry, error) {
	posts, err := ResultPostsFrom(l)
	if err != nil {
		return nil, err
	}
	return []Entry{SignFlip(CodeINK2Surplus, CodeINK2Deficit, posts.Total())}, nil
}
