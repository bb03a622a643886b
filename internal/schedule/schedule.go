// Package schedule holds the calendar math for fixed deposits: maturity
// dates, days remaining, and per-record status. It is pure; callers inject
// "now" so everything is reproducible in tests.
package schedule

import (
	"math"
	"time"

	"github.com/fdkeep-dev/fdkeep/internal/model"
)

// Status classifies a record by how close it is to maturity.
type Status string

const (
	StatusActive       Status = "Active"
	StatusExpiringSoon Status = "Expiring Soon"
	StatusMatured      Status = "Matured"
)

// Two independent nearness windows exist and must not be merged:
// ExpiringSoonDays drives the per-record status badge, while
// UpcomingWindowDays drives the dashboard's "upcoming maturities" list.
const (
	ExpiringSoonDays   = 15
	UpcomingWindowDays = 30
)

// MaturityDate adds the term to the start date using calendar-aware
// arithmetic. Day-of-month overflow normalizes forward (2024-01-31 plus one
// month is 2024-03-02); see model.Date.AddMonths.
func MaturityDate(start model.Date, duration int, unit model.DurationUnit) model.Date {
	if unit == model.UnitYears {
		return start.AddYears(duration)
	}
	return start.AddMonths(duration)
}

// EffectiveMaturity returns the record's stored maturity date, deriving it
// from the term only when it was never explicitly set.
func EffectiveMaturity(r model.Record) model.Date {
	if !r.MaturityDate.IsZero() {
		return r.MaturityDate
	}
	return MaturityDate(r.StartDate, r.Duration, r.DurationUnit)
}

// DaysRemaining returns ceil((maturity - now) / 24h). Negative means the
// deposit has matured.
func DaysRemaining(maturity model.Date, now time.Time) int {
	diff := maturity.Time().Sub(now)
	return int(math.Ceil(diff.Hours() / 24))
}

// Classify maps days remaining onto a record status. The boundary days 0
// and 15 both count as expiring soon.
func Classify(daysRemaining int) Status {
	switch {
	case daysRemaining < 0:
		return StatusMatured
	case daysRemaining <= ExpiringSoonDays:
		return StatusExpiringSoon
	default:
		return StatusActive
	}
}

// StatusOf classifies a record relative to now.
func StatusOf(r model.Record, now time.Time) Status {
	return Classify(DaysRemaining(EffectiveMaturity(r), now))
}
