// Package extract pulls FD fields out of free text, typically the OCR
// output of a deposit certificate. The result is a draft for the user to
// confirm, never something saved directly.
package extract

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fdkeep-dev/fdkeep/internal/banks"
	"github.com/fdkeep-dev/fdkeep/internal/model"
)

// Draft holds whatever fields could be recognized. Zero values mean "not
// detected"; Confidence is a rough 0-100 score of how much was found.
type Draft struct {
	Bank         string
	Amount       decimal.Decimal
	Rate         decimal.Decimal
	StartDate    model.Date
	MaturityDate model.Date
	Duration     int
	DurationUnit model.DurationUnit
	Confidence   int
}

// Plausibility bounds for recognized values. Amounts below a thousand
// rupees or rates outside 3-20% are far more likely to be OCR noise than
// real FD terms.
const (
	minAmount = 1_000
	maxAmount = 100_000_000
	minRate   = 3
	maxRate   = 20
)

const lakh = 100_000

var amountPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:NRs|Rs|NPR)\s*\.?\s*([0-9,]+(?:\.[0-9]{1,2})?)`),
	regexp.MustCompile(`(?i)([0-9,]+(?:\.[0-9]{1,2})?)\s*(?:NRs|Rs|NPR)`),
	regexp.MustCompile(`(?i)(?:Amount|Principal|Deposit)[:\s]*(?:NRs|Rs|NPR)?[.\s]*([0-9,]+(?:\.[0-9]{1,2})?)`),
	regexp.MustCompile(`(?i)([0-9]+(?:\.[0-9]+)?)\s*lakhs?`),
	regexp.MustCompile(`\b([1-9][0-9]{4,8})\b`),
}

var ratePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:Rate|Interest)[:\s]*([0-9]+\.?[0-9]*)\s*%`),
	regexp.MustCompile(`(?i)at\s+([0-9]+\.?[0-9]*)\s*%`),
	regexp.MustCompile(`([0-9]+\.?[0-9]*)\s*%`),
}

var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d{4})[/-](\d{1,2})[/-](\d{1,2})`),
	regexp.MustCompile(`(\d{1,2})[/-](\d{1,2})[/-](\d{4})`),
}

var durationPattern = regexp.MustCompile(`(?i)(\d+)\s*(months?|years?)`)

// FromText scans certificate text for FD fields.
func FromText(text string) Draft {
	d := Draft{
		Bank:         banks.DetectName(text),
		Amount:       findAmount(text),
		Rate:         findRate(text),
		DurationUnit: model.UnitMonths,
	}

	dates := findDates(text)
	if len(dates) >= 1 {
		d.StartDate = dates[0]
	}
	if len(dates) >= 2 {
		d.MaturityDate = dates[1]
	}

	if m := durationPattern.FindStringSubmatch(text); m != nil {
		n, _ := strconv.Atoi(m[1])
		d.Duration = n
		if strings.HasPrefix(strings.ToLower(m[2]), "year") {
			d.DurationUnit = model.UnitYears
		}
	} else if !d.StartDate.IsZero() && !d.MaturityDate.IsZero() {
		// Approximate the term from the date span, 30 days to a month.
		days := d.MaturityDate.Time().Sub(d.StartDate.Time()).Hours() / 24
		d.Duration = int(math.Ceil(days / 30))
	}

	d.Confidence = confidence(d)
	return d
}

func findAmount(text string) decimal.Decimal {
	for _, p := range amountPatterns {
		for _, m := range p.FindAllStringSubmatch(text, -1) {
			raw := strings.ReplaceAll(m[1], ",", "")
			v, err := decimal.NewFromString(raw)
			if err != nil {
				continue
			}
			if strings.Contains(strings.ToLower(m[0]), "lakh") {
				v = v.Mul(decimal.NewFromInt(lakh))
			}
			f := v.InexactFloat64()
			if f >= minAmount && f <= maxAmount {
				return v
			}
		}
	}
	return decimal.Decimal{}
}

func findRate(text string) decimal.Decimal {
	for _, p := range ratePatterns {
		for _, m := range p.FindAllStringSubmatch(text, -1) {
			v, err := decimal.NewFromString(m[1])
			if err != nil {
				continue
			}
			f := v.InexactFloat64()
			if f >= minRate && f <= maxRate {
				return v
			}
		}
	}
	return decimal.Decimal{}
}

// findDates collects dates in reading order, accepting both YYYY-MM-DD and
// DD/MM/YYYY shapes with - or / separators.
func findDates(text string) []model.Date {
	var out []model.Date
	seen := make(map[model.Date]bool)

	for _, p := range datePatterns {
		for _, m := range p.FindAllStringSubmatch(text, -1) {
			var year, month, day int
			if len(m[1]) == 4 {
				year, _ = strconv.Atoi(m[1])
				month, _ = strconv.Atoi(m[2])
				day, _ = strconv.Atoi(m[3])
			} else {
				day, _ = strconv.Atoi(m[1])
				month, _ = strconv.Atoi(m[2])
				year, _ = strconv.Atoi(m[3])
			}
			if month < 1 || month > 12 || day < 1 || day > 31 {
				continue
			}
			d := model.NewDate(year, time.Month(month), day)
			if !seen[d] {
				seen[d] = true
				out = append(out, d)
			}
		}
	}
	return out
}

func confidence(d Draft) int {
	score := 0
	if d.Bank != "" {
		score += 25
	}
	if !d.Amount.IsZero() {
		score += 25
	}
	if !d.Rate.IsZero() {
		score += 25
	}
	if !d.StartDate.IsZero() {
		score += 15
	}
	if d.Duration > 0 {
		score += 10
	}
	return score
}

// Warnings lists what a user should double-check before accepting a draft.
func Warnings(d Draft) []string {
	var out []string
	if d.Bank == "" {
		out = append(out, "bank name not detected")
	}
	if d.Amount.IsZero() {
		out = append(out, "amount not detected")
	}
	if d.Rate.IsZero() {
		out = append(out, "interest rate not detected")
	}
	if d.StartDate.IsZero() {
		out = append(out, "start date not detected")
	}
	if d.Bank != "" && !d.Rate.IsZero() {
		if typical, ok := banks.TypicalRate(d.Bank); ok {
			spread := d.Rate.Sub(typical).Abs()
			if spread.GreaterThan(decimal.NewFromInt(2)) {
				out = append(out, fmt.Sprintf("rate %s%% is far from %s's typical %s%%", d.Rate, d.Bank, typical))
			}
		}
	}
	return out
}
