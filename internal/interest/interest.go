// Package interest computes simple and compound interest for fixed
// deposits. All functions are pure and total over validated input; the
// record service and import reconciler are responsible for rejecting
// out-of-range amounts and rates before they get here.
package interest

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/fdkeep-dev/fdkeep/internal/model"
)

// QuarterlyCompoundings is the compounding frequency applied to every
// stored record. Dashboard totals, analytics, and exports all use it so the
// figures reconcile across views.
const QuarterlyCompoundings = 4

var (
	hundred = decimal.NewFromInt(100)
	twelve  = decimal.NewFromInt(12)
)

// Simple returns the simple interest on principal at ratePercent per annum
// over a term of months. Months may be fractional.
func Simple(principal, ratePercent decimal.Decimal, months float64) decimal.Decimal {
	years := decimal.NewFromFloat(months).Div(twelve)
	return principal.Mul(ratePercent).Mul(years).Div(hundred)
}

// Compound returns the compound interest on principal at ratePercent per
// annum over a term of months, compounding compoundingsPerYear times a
// year. A frequency of 0 is the "at maturity" sentinel and delegates to
// Simple. The number of compounding periods need not be whole; odd month
// counts produce fractional periods.
func Compound(principal, ratePercent decimal.Decimal, months float64, compoundingsPerYear int) decimal.Decimal {
	if compoundingsPerYear == 0 {
		return Simple(principal, ratePercent, months)
	}

	periodRate := ratePercent.InexactFloat64() / (float64(compoundingsPerYear) * 100)
	periods := float64(compoundingsPerYear) * months / 12
	factor := math.Pow(1+periodRate, periods)
	return principal.Mul(decimal.NewFromFloat(factor)).Sub(principal)
}

// ForRecord returns the interest a record earns over its full term,
// compounded quarterly.
func ForRecord(r model.Record) decimal.Decimal {
	return Compound(r.Amount, r.Rate, float64(r.DurationMonths()), QuarterlyCompoundings)
}

// MaturityValue returns principal plus interest for a record.
func MaturityValue(r model.Record) decimal.Decimal {
	return r.Amount.Add(ForRecord(r))
}
