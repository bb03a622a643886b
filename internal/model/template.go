package model

import "github.com/shopspring/decimal"

// Template is a saved bank/term/rate preset applied when entering a new FD.
type Template struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Bank         string          `json:"bank"`
	Duration     int             `json:"duration"`
	DurationUnit DurationUnit    `json:"durationUnit"`
	Rate         decimal.Decimal `json:"rate"`
}

// Settings is the user-tunable portion of the vault envelope.
type Settings struct {
	CurrencySymbol string `json:"currencySymbol"`
}

// DefaultSettings returns the Nepal-edition defaults.
func DefaultSettings() Settings {
	return Settings{CurrencySymbol: "NRs"}
}
