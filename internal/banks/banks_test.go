package banks

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAll(t *testing.T) {
	list := All()
	assert.Len(t, list, 26)
	assert.Contains(t, list, "Nabil Bank Limited")

	// Callers get a copy.
	list[0] = "mutated"
	assert.NotEqual(t, "mutated", All()[0])
}

func TestSuggestRate(t *testing.T) {
	rate, ok := SuggestRate("Nabil Bank Limited", 12, decimal.NewFromInt(100000))
	require.True(t, ok)
	assert.Equal(t, "9.25", rate.String())

	// Below the slab minimum.
	_, ok = SuggestRate("Nabil Bank Limited", 12, decimal.NewFromInt(10000))
	assert.False(t, ok)

	// No slab for this term.
	_, ok = SuggestRate("Nabil Bank Limited", 9, decimal.NewFromInt(100000))
	assert.False(t, ok)

	_, ok = SuggestRate("Unknown Bank", 12, decimal.NewFromInt(100000))
	assert.False(t, ok)
}

func TestTypicalRate(t *testing.T) {
	rate, ok := TypicalRate("Nabil Bank Limited")
	require.True(t, ok)
	// (7.75 + 9.25 + 9.75) / 3
	assert.Equal(t, "8.92", rate.String())

	_, ok = TypicalRate("Unknown Bank")
	assert.False(t, ok)
}

func TestDetectName(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"NABIL BANK LIMITED Fixed Deposit Receipt", "Nabil Bank Limited"},
		{"certificate issued by nic asia", "NIC Asia Bank Limited"},
		{"NEPAL INVESTMENT BANK fixed deposit", "Nepal Investment Bank Limited"},
		{"nepal bank ltd branch office", "Nepal Bank Limited"},
		{"global ime deposit certificate", "Global IME Bank Limited"},
		{"completely unrelated text", ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, DetectName(c.text), c.text)
	}
}

func TestDetectName_FuzzyFallback(t *testing.T) {
	// No pattern covers Machhapuchchhre; the word-overlap pass should.
	got := DetectName("machhapuchchhre bank fd receipt")
	assert.Equal(t, "Machhapuchchhre Bank Limited", got)
}
