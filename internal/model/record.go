package model

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DurationUnit is the unit of an FD term.
type DurationUnit string

const (
	UnitMonths DurationUnit = "Months"
	UnitYears  DurationUnit = "Years"
	// UnitDays only appears in ad hoc calculator input, never on stored records.
	UnitDays DurationUnit = "Days"
)

// ParseDurationUnit normalizes a unit string. Anything unrecognized falls
// back to months, matching the import defaults.
func ParseDurationUnit(s string) DurationUnit {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "years", "year", "y":
		return UnitYears
	case "days", "day", "d":
		return UnitDays
	default:
		return UnitMonths
	}
}

// CertificateStatus tracks whether the paper certificate is in hand.
type CertificateStatus string

const (
	CertificateNotObtained CertificateStatus = "Not Obtained"
	CertificateObtained    CertificateStatus = "Obtained"
	CertificateDigital     CertificateStatus = "Digital"
)

// Record is a single fixed-deposit investment.
type Record struct {
	ID                string            `json:"id"`
	AccountHolder     string            `json:"accountHolder"`
	Bank              string            `json:"bank"`
	Amount            decimal.Decimal   `json:"amount"`
	Duration          int               `json:"duration"`
	DurationUnit      DurationUnit      `json:"durationUnit"`
	Rate              decimal.Decimal   `json:"rate"` // annual nominal percent
	StartDate         Date              `json:"startDate"`
	MaturityDate      Date              `json:"maturityDate"` // authoritative once set; zero means derive
	CertificateStatus CertificateStatus `json:"certificateStatus"`
	Notes             string            `json:"notes,omitempty"`
	CreatedAt         time.Time         `json:"createdAt"`
	UpdatedAt         time.Time         `json:"updatedAt,omitzero"`
}

// DurationMonths returns the term length in months.
func (r Record) DurationMonths() int {
	if r.DurationUnit == UnitYears {
		return r.Duration * 12
	}
	return r.Duration
}

// NormalizeName canonicalizes a holder or bank name for identity matching.
// Only identity fields get this treatment; notes and certificate status
// always compare byte-exact.
func NormalizeName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// SameIdentity reports whether two records denote the same real-world
// deposit: holder and bank (normalized), principal, and start date.
// Rate, duration, notes, and certificate status are not part of identity.
func (r Record) SameIdentity(o Record) bool {
	return NormalizeName(r.AccountHolder) == NormalizeName(o.AccountHolder) &&
		NormalizeName(r.Bank) == NormalizeName(o.Bank) &&
		r.Amount.Equal(o.Amount) &&
		r.StartDate == o.StartDate
}

// AsIncoming converts a stored record back into an import row, used when a
// backup file is reconciled against the current record set.
func (r Record) AsIncoming() Incoming {
	return Incoming{
		AccountHolder:     r.AccountHolder,
		Bank:              r.Bank,
		Amount:            r.Amount,
		Duration:          r.Duration,
		DurationUnit:      r.DurationUnit,
		Rate:              r.Rate,
		StartDate:         r.StartDate,
		MaturityDate:      r.MaturityDate,
		CertificateStatus: r.CertificateStatus,
		Notes:             r.Notes,
	}
}
