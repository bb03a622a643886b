package report

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fdkeep-dev/fdkeep/internal/model"
)

var testNow = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

func fd(holder, bank string, amount int64, rate string, start, maturity string) model.Record {
	return model.Record{
		AccountHolder: holder,
		Bank:          bank,
		Amount:        decimal.NewFromInt(amount),
		Rate:          decimal.RequireFromString(rate),
		Duration:      12,
		DurationUnit:  model.UnitMonths,
		StartDate:     model.MustParseDate(start),
		MaturityDate:  model.MustParseDate(maturity),
	}
}

func TestSummarize(t *testing.T) {
	records := []model.Record{
		fd("Ram", "Nabil Bank", 100000, "9.25", "2023-07-15", "2024-07-15"),  // active
		fd("Sita", "Global IME", 200000, "9.75", "2023-06-15", "2024-06-15"), // within 30 days
		fd("Ram", "NIBL", 50000, "8.50", "2023-05-01", "2024-05-01"),         // matured
	}

	s := Summarize(records, testNow)

	assert.True(t, s.TotalInvestment.Equal(decimal.NewFromInt(350000)),
		"total investment %s", s.TotalInvestment)
	assert.Equal(t, 2, s.ActiveCount)
	assert.Equal(t, 1, s.ExpiringSoonCount)
	assert.Equal(t, 1, s.MaturedCount)
	// (9.25 + 9.75 + 8.50) / 3
	assert.Equal(t, "9.17", s.AverageRate.StringFixed(2))
	assert.True(t, s.TotalInterest.GreaterThan(decimal.Zero))
	assert.True(t, s.TotalValue().GreaterThan(s.TotalInvestment))
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil, testNow)
	assert.True(t, s.TotalInvestment.IsZero())
	assert.True(t, s.AverageRate.IsZero())
	assert.Equal(t, 0, s.ActiveCount)
}

func TestUpcomingWindowAndOrder(t *testing.T) {
	records := []model.Record{
		fd("A", "Nabil Bank", 1, "9", "2023-07-01", "2024-06-20"), // 19 days
		fd("B", "Nabil Bank", 1, "9", "2023-07-01", "2024-06-05"), // 4 days
		fd("C", "Nabil Bank", 1, "9", "2023-07-01", "2024-06-01"), // today
		fd("D", "Nabil Bank", 1, "9", "2023-07-01", "2024-08-01"), // beyond window
		fd("E", "Nabil Bank", 1, "9", "2023-05-01", "2024-05-20"), // already matured
	}

	up := Upcoming(records, testNow)

	require.Len(t, up, 3)
	assert.Equal(t, "C", up[0].Record.AccountHolder)
	assert.Equal(t, "B", up[1].Record.AccountHolder)
	assert.Equal(t, "A", up[2].Record.AccountHolder)
	assert.Equal(t, 0, up[0].DaysRemaining)
}

func TestByBank(t *testing.T) {
	records := []model.Record{
		fd("Ram", "Nabil Bank", 100000, "9.25", "2024-01-01", "2025-01-01"),
		fd("Sita", "Global IME", 300000, "9.50", "2024-01-01", "2025-01-01"),
		fd("Ram", "Nabil Bank", 50000, "9.00", "2024-01-01", "2025-01-01"),
	}

	groups := ByBank(records)

	require.Len(t, groups, 2)
	assert.Equal(t, "Global IME", groups[0].Name)
	assert.Equal(t, "Nabil Bank", groups[1].Name)
	assert.Equal(t, 2, groups[1].Count)
	assert.True(t, groups[1].Principal.Equal(decimal.NewFromInt(150000)))
}

func TestByHolder(t *testing.T) {
	records := []model.Record{
		fd("Ram", "Nabil Bank", 100000, "9.25", "2024-01-01", "2025-01-01"),
		fd("Sita", "Global IME", 40000, "9.50", "2024-01-01", "2025-01-01"),
	}

	groups := ByHolder(records)

	require.Len(t, groups, 2)
	assert.Equal(t, "Ram", groups[0].Name)
	assert.Equal(t, 1, groups[1].Count)
}
