// Package report aggregates record sets into the figures the dashboard
// and analytics commands print. Everything takes an explicit now.
package report

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fdkeep-dev/fdkeep/internal/interest"
	"github.com/fdkeep-dev/fdkeep/internal/model"
	"github.com/fdkeep-dev/fdkeep/internal/schedule"
)

// Summary is the portfolio-level rollup shown on the dashboard.
type Summary struct {
	TotalInvestment   decimal.Decimal
	TotalInterest     decimal.Decimal
	ActiveCount       int
	ExpiringSoonCount int
	MaturedCount      int
	AverageRate       decimal.Decimal
}

// TotalValue returns investment plus projected interest.
func (s Summary) TotalValue() decimal.Decimal {
	return s.TotalInvestment.Add(s.TotalInterest)
}

// Summarize rolls up all records. Interest is the full-term projection for
// every record, matured or not; the dashboard shows what the portfolio is
// worth at maturity, not an accrual to date. The expiring-soon count uses
// the 30-day dashboard window, not the 15-day record badge.
func Summarize(records []model.Record, now time.Time) Summary {
	var s Summary
	for _, r := range records {
		s.TotalInvestment = s.TotalInvestment.Add(r.Amount)
		s.TotalInterest = s.TotalInterest.Add(interest.ForRecord(r))

		days := schedule.DaysRemaining(schedule.EffectiveMaturity(r), now)
		switch {
		case days < 0:
			s.MaturedCount++
		case days <= schedule.UpcomingWindowDays:
			s.ActiveCount++
			s.ExpiringSoonCount++
		default:
			s.ActiveCount++
		}
		s.AverageRate = s.AverageRate.Add(r.Rate)
	}
	if len(records) > 0 {
		s.AverageRate = s.AverageRate.Div(decimal.NewFromInt(int64(len(records)))).Round(2)
	}
	return s
}

// Maturity is one row of the upcoming-maturities list.
type Maturity struct {
	Record        model.Record
	MaturityDate  model.Date
	DaysRemaining int
}

// Upcoming returns records maturing within the dashboard window, soonest
// first. Day 0 (maturing today) is included; already-matured records are
// not.
func Upcoming(records []model.Record, now time.Time) []Maturity {
	var out []Maturity
	for _, r := range records {
		m := schedule.EffectiveMaturity(r)
		days := schedule.DaysRemaining(m, now)
		if days < 0 || days > schedule.UpcomingWindowDays {
			continue
		}
		out = append(out, Maturity{Record: r, MaturityDate: m, DaysRemaining: days})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DaysRemaining < out[j].DaysRemaining
	})
	return out
}

// Group is one bucket of a breakdown.
type Group struct {
	Name      string
	Count     int
	Principal decimal.Decimal
	Interest  decimal.Decimal
}

// ByBank groups records per bank, largest principal first.
func ByBank(records []model.Record) []Group {
	return groupBy(records, func(r model.Record) string { return r.Bank })
}

// ByHolder groups records per account holder, largest principal first.
func ByHolder(records []model.Record) []Group {
	return groupBy(records, func(r model.Record) string { return r.AccountHolder })
}

func groupBy(records []model.Record, key func(model.Record) string) []Group {
	idx := map[string]int{}
	var out []Group
	for _, r := range records {
		k := key(r)
		i, ok := idx[k]
		if !ok {
			i = len(out)
			idx[k] = i
			out = append(out, Group{Name: k})
		}
		out[i].Count++
		out[i].Principal = out[i].Principal.Add(r.Amount)
		out[i].Interest = out[i].Interest.Add(interest.ForRecord(r))
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Principal.GreaterThan(out[j].Principal)
	})
	return out
}
