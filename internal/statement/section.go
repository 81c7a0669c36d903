package statement

import "strings"

// sectionState tracks which sub-region of a sectioned ledger the line loop
// is currently inside. The line syntax alone does not carry the sign of an
// amount; the enclosing section does.
type sectionState int

const (
	sectionNeutral sectionState = iota
	sectionDeposits
	sectionWithdrawals
)

func (s sectionState) String() string {
	switch s {
	case sectionDeposits:
		return "deposits"
	case sectionWithdrawals:
		return "withdrawals"
	default:
		return "neutral"
	}
}

// transition returns the state after observing line, and whether the line
// is itself a section marker. Marker lines are consumed and never matched
// as transactions.
func (s sectionState) transition(line string) (sectionState, bool) {
	upper := strings.ToUpper(line)

	if strings.Contains(upper, "DEPOSITS AND ADDITIONS") {
		return sectionDeposits, true
	}
	if strings.Contains(upper, "ELECTRONIC WITHDRAWALS") || strings.Contains(upper, "WITHDRAWALS") {
		return sectionWithdrawals, true
	}
	// Savings sub-statements and balance summary lines end the current
	// section without starting a new one.
	if strings.Contains(upper, "CHASE SAVINGS") ||
		strings.Contains(line, "Beginning Balance") ||
		strings.Contains(line, "Ending Balance") {
		return sectionNeutral, false
	}

	return s, false
}

// inTransactionSection reports whether transaction lines may be matched.
func (s sectionState) inTransactionSection() bool {
	return s == sectionDeposits || s == sectionWithdrawals
}
