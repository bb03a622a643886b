package model

import "github.com/shopspring/decimal"

// Incoming is one row of a bulk import (CSV parse or backup decode) before
// it has been admitted to the record set. Numeric and date fields are
// already typed; anything that failed to parse is left at its zero value
// and caught by reconciliation, so raw string maps never cross into the
// core.
type Incoming struct {
	AccountHolder     string            `json:"accountHolder"`
	Bank              string            `json:"bank"`
	Amount            decimal.Decimal   `json:"amount"`
	Duration          int               `json:"duration"`
	DurationUnit      DurationUnit      `json:"durationUnit"`
	Rate              decimal.Decimal   `json:"rate"`
	StartDate         Date              `json:"startDate"`
	MaturityDate      Date              `json:"maturityDate"` // optional; zero means derive
	CertificateStatus CertificateStatus `json:"certificateStatus"`
	Notes             string            `json:"notes"`
}
