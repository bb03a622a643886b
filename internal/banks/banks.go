// Package banks carries the built-in Nepali commercial bank data: the
// autocomplete list, published FD rate slabs, and the name-detection
// patterns used when reading certificate text.
package banks

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var database = []string{
	"Nepal Bank Limited",
	"Rastriya Banijya Bank",
	"Agriculture Development Bank",
	"Nabil Bank Limited",
	"Nepal Investment Bank Limited",
	"Standard Chartered Bank Nepal",
	"Himalayan Bank Limited",
	"Nepal SBI Bank Limited",
	"Nepal Bangladesh Bank Limited",
	"Everest Bank Limited",
	"Kumari Bank Limited",
	"Laxmi Sunrise Bank Limited",
	"Citizens Bank International Limited",
	"Prime Commercial Bank Limited",
	"Sunrise Bank Limited",
	"Century Commercial Bank Limited",
	"Sanima Bank Limited",
	"Machhapuchchhre Bank Limited",
	"NIC Asia Bank Limited",
	"Global IME Bank Limited",
	"NMB Bank Limited",
	"Prabhu Bank Limited",
	"Siddhartha Bank Limited",
	"Bank of Kathmandu Limited",
	"Civil Bank Limited",
	"Nepal Credit and Commerce Bank Limited",
}

// All returns the built-in bank list.
func All() []string {
	return append([]string(nil), database...)
}

// IsKnown reports whether name is in the built-in list (exact match).
func IsKnown(name string) bool {
	for _, b := range database {
		if b == name {
			return true
		}
	}
	return false
}

// RateSlab is one published duration/rate tier.
type RateSlab struct {
	DurationMonths int
	Rate           decimal.Decimal
	MinAmount      decimal.Decimal
}

// Published holds the rate slabs we track for a bank.
type Published struct {
	Bank  string
	Slabs []RateSlab
}

func slab(months int, rate string, minAmount int64) RateSlab {
	r, _ := decimal.NewFromString(rate)
	return RateSlab{DurationMonths: months, Rate: r, MinAmount: decimal.NewFromInt(minAmount)}
}

// PublishedRates returns the tracked rate tables.
func PublishedRates() []Published {
	return []Published{
		{Bank: "Nabil Bank Limited", Slabs: []RateSlab{
			slab(6, "7.75", 25000),
			slab(12, "9.25", 25000),
			slab(24, "9.75", 25000),
		}},
		{Bank: "Nepal Investment Bank Limited", Slabs: []RateSlab{
			slab(6, "8.0", 25000),
			slab(12, "9.5", 25000),
			slab(24, "10.0", 25000),
		}},
		{Bank: "Global IME Bank Limited", Slabs: []RateSlab{
			slab(6, "8.0", 25000),
			slab(12, "9.5", 25000),
			slab(24, "10.0", 25000),
		}},
	}
}

// SuggestRate returns the published rate for an exact bank and term match
// where the amount clears the slab minimum.
func SuggestRate(bank string, months int, amount decimal.Decimal) (decimal.Decimal, bool) {
	for _, p := range PublishedRates() {
		if p.Bank != bank {
			continue
		}
		for _, s := range p.Slabs {
			if s.DurationMonths == months && amount.GreaterThanOrEqual(s.MinAmount) {
				return s.Rate, true
			}
		}
	}
	return decimal.Decimal{}, false
}

// TypicalRate returns the average of a bank's published slabs, the figure
// shown as a ballpark when no slab matches exactly.
func TypicalRate(bank string) (decimal.Decimal, bool) {
	for _, p := range PublishedRates() {
		if p.Bank != bank || len(p.Slabs) == 0 {
			continue
		}
		sum := decimal.Zero
		for _, s := range p.Slabs {
			sum = sum.Add(s.Rate)
		}
		return sum.Div(decimal.NewFromInt(int64(len(p.Slabs)))).Round(2), true
	}
	return decimal.Decimal{}, false
}

type namePattern struct {
	name string
	re   *regexp.Regexp
}

var namePatterns = []namePattern{
	{"Nepal Bank Limited", regexp.MustCompile(`(?i)nepal\s*bank`)},
	{"Rastriya Banijya Bank", regexp.MustCompile(`(?i)rastriya\s*banijya|rbb`)},
	{"Agriculture Development Bank", regexp.MustCompile(`(?i)agriculture\s*development|adbl?`)},
	{"Nabil Bank Limited", regexp.MustCompile(`(?i)nabil`)},
	{"Nepal Investment Bank Limited", regexp.MustCompile(`(?i)nepal\s*investment|nibl`)},
	{"Standard Chartered Bank Nepal", regexp.MustCompile(`(?i)standard\s*chartered|scbnl`)},
	{"Himalayan Bank Limited", regexp.MustCompile(`(?i)himalayan\s*bank|hbl`)},
	{"Nepal SBI Bank Limited", regexp.MustCompile(`(?i)nepal\s*sbi|nsbi`)},
	{"Everest Bank Limited", regexp.MustCompile(`(?i)everest\s*bank|ebl`)},
	{"Kumari Bank Limited", regexp.MustCompile(`(?i)kumari`)},
	{"NIC Asia Bank Limited", regexp.MustCompile(`(?i)nic\s*asia|nicasia`)},
	{"Global IME Bank Limited", regexp.MustCompile(`(?i)global\s*ime|gibl`)},
	{"NMB Bank Limited", regexp.MustCompile(`(?i)nmb\s*bank`)},
	{"Prabhu Bank Limited", regexp.MustCompile(`(?i)prabhu`)},
	{"Siddhartha Bank Limited", regexp.MustCompile(`(?i)siddhartha|sbl`)},
	{"Sanima Bank Limited", regexp.MustCompile(`(?i)sanima`)},
}

// DetectName finds a bank name in free text. Specific patterns run first;
// when none hit, a word-overlap pass against the full list catches noisy
// OCR output. Returns "" when nothing matches.
func DetectName(text string) string {
	// Longer, more specific names first so "Nepal Investment Bank"
	// doesn't fall through to "Nepal Bank Limited".
	for _, p := range namePatterns {
		if p.name == "Nepal Bank Limited" {
			continue
		}
		if p.re.MatchString(text) {
			return p.name
		}
	}
	for _, p := range namePatterns {
		if p.re.MatchString(text) {
			return p.name
		}
	}

	words := strings.Fields(strings.ToLower(text))
	for _, bank := range database {
		bankWords := strings.Fields(strings.ToLower(bank))
		significant, matched := 0, 0
		for _, bw := range bankWords {
			if len(bw) < 3 {
				continue
			}
			significant++
			for _, w := range words {
				if strings.Contains(w, bw) || strings.Contains(bw, w) {
					matched++
					break
				}
			}
		}
		if significant > 0 && matched*2 >= significant {
			return bank
		}
	}
	return ""
}
