package sru

import (
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/sietosru/internal/model"
)

func bal(number, sru int, amount string) model.Balance {
	return model.Balance{
		Account: model.Account{Number: number, SRU: sru},
		Amount:  decimal.RequireFromString(amount),
	}
}

// minimalLedger is one result account on 7450 with a loss of 1000.
func minimalLedger() *model.Ledger {
	return &model.Ledger{
		Company:   model.CompanyInfo{Name: "Test AB", OrgNr: "5566778899", PostalCode: 11122, PostalAddress: "Stockholm"},
		StartDate: "20230101",
		EndDate:   "20231231",
		Accounts:  []model.Account{{Number: 3000, SRU: 7450, Name: "Försäljning"}},
		Results:   []model.Balance{bal(3000, 7450, "-1000.00")},
	}
}

// fullLedger mirrors internal/sie/testdata/bokio.se.
func fullLedger() *model.Ledger {
	return &model.Ledger{
		Company:   model.CompanyInfo{Name: "Exempel Åkeri AB", OrgNr: "5566778899", PostalCode: 11122, PostalAddress: "Stockholm"},
		StartDate: "20230101",
		EndDate:   "20231231",
		EndingBalances: []model.Balance{
			bal(1930, 7281, "70225.00"),
			bal(2081, 7301, "-25000.00"),
			bal(2099, 7302, "-37225.00"),
			bal(2440, 7365, "-8000.00"),
		},
		Results: []model.Balance{
			bal(3001, 7410, "-150000.00"),
			bal(4010, 7511, "105000.00"),
			bal(6570, 7515, "1765.50"),
			bal(8314, 7416, "-2.50"),
			bal(8423, 7522, "12.00"),
			bal(8910, 7528, "6000.00"),
			bal(8999, 7450, "37225.00"),
		},
	}
}
