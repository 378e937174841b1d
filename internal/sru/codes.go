package sru

// SRU codes (tax-form line identifiers) used by the INK2 form set.
const (
	CodeFiscalStart = 7011
	CodeFiscalEnd   = 7012

	// Result-account codes as mapped in the chart of accounts.
	CodeYearResult = 7450
	CodeIncomeTax  = 7528

	// INK2
	CodeINK2Surplus = 7104
	CodeINK2Deficit = 7114

	// INK2R
	CodeINK2RProfit = 7450
	CodeINK2RLoss   = 7550

	// INK2S
	CodeINK2SProfit             = 7650
	CodeINK2SLoss               = 7750
	CodeINK2STax                = 7651
	CodeINK2SInterestCost       = 7653
	CodeINK2STaxExemptIncome    = 7754
	CodeINK2SSurplus            = 7670
	CodeINK2SDeficit            = 7770
	CodeINK2SAccountantAssisted = 8041
	CodeINK2SAudited            = 8045
)

// Accounts picked out of the result balances by number rather than SRU code.
const (
	AccountTaxInterestCost = 8423
	AccountTaxExemptIncome = 8314
)

// FlagYes is the flag value for a checked box.
const FlagYes = "X"
