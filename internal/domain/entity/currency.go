package entity

import (
	"maps"
	"slices"

	"github.com/shopspring/decimal"
)

// CurrencyCode is an ISO 4217 code such as "EUR". Codes are not validated.
type CurrencyCode string

// RateTable maps a currency to its multiplier relative to the base currency.
type RateTable map[CurrencyCode]decimal.Decimal

// Rate returns the multiplier for code, or 1 when the table does not know it.
func (t RateTable) Rate(code CurrencyCode) decimal.Decimal {
	if rate, ok := t[code]; ok {
		return rate
	}

	return decimal.NewFromInt(1)
}

// Merge copies every entry of fetched into t, overwriting matching codes and
// keeping the rest.
func (t RateTable) Merge(fetched RateTable) {
	maps.Copy(t, fetched)
}

// Codes returns the known codes in sorted order.
func (t RateTable) Codes() []CurrencyCode {
	return slices.Sorted(maps.Keys(t))
}

// Clone returns an independent copy of t.
func (t RateTable) Clone() RateTable {
	if t == nil {
		return RateTable{}
	}

	return maps.Clone(t)
}

// CurrencyState is the shopper's display currency plus the known rates.
// Rates[Base] is always 1.
type CurrencyState struct {
	Base     CurrencyCode `json:"base"`
	Selected CurrencyCode `json:"selected"`
	Rates    RateTable    `json:"rates"`
}

// NewCurrencyState seeds a state from a fallback table.
func NewCurrencyState(base, selected CurrencyCode, fallback RateTable) CurrencyState {
	state := CurrencyState{
		Base:     base,
		Selected: selected,
		Rates:    fallback.Clone(),
	}
	state.Rates[base] = decimal.NewFromInt(1)

	return state
}

// MergeRates merges fetched into the table and re-pins the base rate.
func (s *CurrencyState) MergeRates(fetched RateTable) {
	if s.Rates == nil {
		s.Rates = RateTable{}
	}
	s.Rates.Merge(fetched)
	s.Rates[s.Base] = decimal.NewFromInt(1)
}

// Convert turns a base-currency amount into the selected currency.
func (s *CurrencyState) Convert(amount decimal.Decimal) decimal.Decimal {
	return amount.Mul(s.Rates.Rate(s.Selected))
}

// Clone returns a copy with an independent rate table.
func (s *CurrencyState) Clone() CurrencyState {
	return CurrencyState{
		Base:     s.Base,
		Selected: s.Selected,
		Rates:    s.Rates.Clone(),
	}
}
