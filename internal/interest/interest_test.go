package interest

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/fdkeep-dev/fdkeep/internal/model"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestSimple(t *testing.T) {
	// 100000 at 9.25% for 12 months = 9250.
	got := Simple(dec("100000"), dec("9.25"), 12)
	assert.True(t, got.Equal(dec("9250")), "got %s", got)

	// Half a year at 6% on 50000 = 1500.
	got = Simple(dec("50000"), dec("6"), 6)
	assert.True(t, got.Equal(dec("1500")), "got %s", got)

	// Zero rate earns nothing.
	assert.True(t, Simple(dec("100000"), dec("0"), 12).IsZero())
}

func TestCompound_Quarterly(t *testing.T) {
	// 100000 at 9.25% for 12 months, quarterly:
	// 100000 * (1 + 0.093125/4)^4 - 100000
	got := Compound(dec("100000"), dec("9.25"), 12, 4)
	assert.InDelta(t, 9575.93, got.InexactFloat64(), 0.5)
}

func TestCompound_FractionalPeriods(t *testing.T) {
	// 7 months at quarterly compounding is 7/3 periods; must not truncate.
	got := Compound(dec("100000"), dec("9"), 7, 4)
	exactQuarters := Compound(dec("100000"), dec("9"), 6, 4)
	assert.Greater(t, got.InexactFloat64(), exactQuarters.InexactFloat64())
}

func TestCompound_ZeroFrequencySentinel(t *testing.T) {
	cases := []struct {
		principal, rate string
		months          float64
	}{
		{"100000", "9.25", 12},
		{"50000", "0", 6},
		{"25000", "11", 7},
		{"1000000", "8.5", 36},
	}
	for _, c := range cases {
		simple := Simple(dec(c.principal), dec(c.rate), c.months)
		compound := Compound(dec(c.principal), dec(c.rate), c.months, 0)
		assert.True(t, compound.Equal(simple), "p=%s r=%s m=%v", c.principal, c.rate, c.months)
	}
}

func TestCompound_NeverBelowSimple(t *testing.T) {
	// Compounding only beats simple interest from one full period onward;
	// below one period (f*m/12 < 1) the inequality reverses, so terms that
	// short stay out of the grid. See TestCompound_BelowOnePeriod.
	principals := []string{"1000", "100000", "2500000"}
	rates := []string{"0", "3", "9.25", "15"}
	months := []float64{1, 6, 12, 13, 36}
	freqs := []int{1, 2, 4, 12}

	for _, p := range principals {
		for _, r := range rates {
			for _, m := range months {
				for _, f := range freqs {
					if float64(f)*m/12 < 1 {
						continue
					}
					name := fmt.Sprintf("p=%s r=%s m=%v f=%d", p, r, m, f)
					simple := Simple(dec(p), dec(r), m).InexactFloat64()
					compound := Compound(dec(p), dec(r), m, f).InexactFloat64()
					assert.GreaterOrEqual(t, compound+1e-6, simple, name)
					if r == "0" {
						assert.InDelta(t, simple, compound, 1e-6, name)
					}
				}
			}
		}
	}
}

func TestCompound_BelowOnePeriod(t *testing.T) {
	// One month at annual compounding is 1/12 of a period. The formula
	// still applies fractionally and lands below simple interest, which is
	// how the product has always computed short odd terms.
	simple := Simple(dec("2500000"), dec("15"), 1).InexactFloat64()
	compound := Compound(dec("2500000"), dec("15"), 1, 1).InexactFloat64()
	assert.Less(t, compound, simple)
	assert.Positive(t, compound)
}

func TestForRecord_UsesQuarterly(t *testing.T) {
	r := model.Record{
		Amount:       dec("100000"),
		Rate:         dec("9.25"),
		Duration:     1,
		DurationUnit: model.UnitYears,
	}
	want := Compound(dec("100000"), dec("9.25"), 12, QuarterlyCompoundings)
	assert.True(t, ForRecord(r).Equal(want))
	assert.True(t, MaturityValue(r).Equal(r.Amount.Add(want)))
}
