package models

// Fund identifies one of the three per-user money buckets.
type Fund string

const (
	FundBalance Fund = "balance"
	FundDebt    Fund = "debt_fund"
	FundSavings Fund = "savings_fund"
)

// Valid reports whether f is one of the three known funds.
func (f Fund) Valid() bool {
	switch f {
	case FundBalance, FundDebt, FundSavings:
		return true
	}
	return false
}

// TransferType distinguishes user-initiated transfers from the ones the
// distribution engine journals automatically.
type TransferType string

const (
	TransferManual    TransferType = "manual"
	TransferAutomatic TransferType = "automatic"
)

// DebtStrategy selects the ordering used when listing open debts.
type DebtStrategy string

const (
	StrategySnowball  DebtStrategy = "snowball"  // smallest remaining first
	StrategyAvalanche DebtStrategy = "avalanche" // largest total first
)
