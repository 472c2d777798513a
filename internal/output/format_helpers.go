package output

import (
	"time"

	"github.com/rpgo/sekfmt/pkg/currency"
	"github.com/rpgo/sekfmt/pkg/decimal"
)

// FormatCurrency formats an amount as a sv-SE krona string, e.g. "1 234,50 kr".
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatCurrency(amount currency.Amounter) string { return currency.Format(amount.Amount()) }

// FormatAmount formats money as a plain two-decimal amount for machine-readable outputs.
func FormatAmount(amount decimal.Money) string { return amount.String() }

// FormatDate formats a date as YYYY-MM-DD.
func FormatDate(t time.Time) string { return t.Format("2006-01-02") }
