package accounts

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cleared-dev/sietosru/internal/model"
)

func testChart() []model.Account {
	return []model.Account{
		{Number: 1930, SRU: 7281, Name: "Företagskonto"},
		{Number: 2081, SRU: 7301, Name: "Aktiekapital"},
		{Number: 3001, SRU: 7410, Name: "Försäljning inom Sverige, 25 % moms"},
		{Number: 3041, SRU: 7410, Name: "Försäljning tjänst inom Sverige, 25 % moms"},
		{Number: 8999, SRU: 7450, Name: "Årets resultat"},
	}
}

func TestGet(t *testing.T) {
	svc := NewService(testChart())

	acct, ok := svc.Get(8999)
	assert.True(t, ok)
	assert.Equal(t, "Årets resultat", acct.Name)
	assert.Equal(t, 7450, acct.SRU)

	_, ok = svc.Get(9999)
	assert.False(t, ok)
}

func TestSRUCodes(t *testing.T) {
	svc := NewService(testChart())
	assert.Equal(t, []int{7281, 7301, 7410, 7450}, svc.SRUCodes())
}

func TestDuplicateNumberLastWins(t *testing.T) {
	svc := NewService([]model.Account{
		{Number: 3000, SRU: 7410, Name: "first"},
		{Number: 3000, SRU: 7411, Name: "second"},
	})
	acct, ok := svc.Get(3000)
	assert.True(t, ok)
	assert.Equal(t, "second", acct.Name)
}
