package models

// Transaction types derived from the amount sign.
const (
	TypeIncome  = "Income"
	TypeExpense = "Expense"
)

// Canonical bank labels for the supported statement formats.
const (
	BankCapitalOne    = "Capital One"
	BankChase         = "Chase"
	BankBankOfAmerica = "Bank of America"
	BankWellsFargo    = "Wells Fargo"
	BankUnknown       = "Unknown"
)

// CategoryOther is assigned when no keyword rule matches a description.
const CategoryOther = "Other"

// File permissions used at the CSV boundary.
const (
	PermissionDirectory  = 0750
	PermissionReportFile = 0644
)
