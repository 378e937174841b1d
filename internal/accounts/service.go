package accounts

import (
	"sort"

	"github.com/cleared-dev/sietosru/internal/model"
)

// Service provides in-memory lookup over the SRU-mapped accounts of a ledger.
type Service struct {
	accounts []model.Account
	byNumber map[int]model.Account
}

// NewService creates a Service from a slice of accounts.
// A later duplicate account number replaces an earlier one in lookups.
func NewService(accounts []model.Account) *Service {
	byNumber := make(map[int]model.Account, len(accounts))
	for _, a := range accounts {
		byNumber[a.Number] = a
	}
	return &Service{accounts: accounts, byNumber: byNumber}
}

// Get returns an account by number.
func (s *Service) Get(number int) (model.Account, bool) {
	a, ok := s.byNumber[number]
	return a, ok
}

// SRUCodes returns the distinct SRU codes in ascending order.
func (s *Service) SRUCodes() []int {
	seen := make(map[int]bool)
	var codes []int
	for _, a := range s.accounts {
		if !seen[a.SRU] {
			seen[a.SRU] = true
			codes = append(codes, a.SRU)
		}
	}
	sort.Ints(codes)
	return codes
}
