// Package currency renders amounts as Swedish krona strings the way a
// browser does for the sv-SE locale, e.g. "1 234,50 kr".
//
// The locale and currency are fixed when the package is loaded. All
// functions are safe for concurrent use.
package currency

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
	iso "golang.org/x/text/currency"
	"golang.org/x/text/language"
)

var (
	// ErrNonFinite is returned for NaN and infinite float inputs.
	ErrNonFinite = errors.New("amount is not a finite number")
	// ErrNotNumeric is returned by FormatValue for values that are not numbers.
	ErrNotNumeric = errors.New("amount is not numeric")
)

// symbols holds the number symbols of a locale.
type symbols struct {
	decimal     string
	group       string
	groupSize   int
	minus       string
	currency    string
	symbolAfter bool
	symbolSep   string
}

// CLDR sv: grouping and the symbol gap use NO-BREAK SPACE, negatives use MINUS SIGN.
var swedish = symbols{
	decimal:     ",",
	group:       "\u00a0",
	groupSize:   3,
	minus:       "\u2212",
	currency:    "kr",
	symbolAfter: true,
	symbolSep:   "\u00a0",
}

// Formatter pairs a locale with an ISO currency. It is immutable.
type Formatter struct {
	locale language.Tag
	unit   iso.Unit
	scale  int32
	sym    symbols
}

func newFormatter(locale language.Tag, unit iso.Unit, sym symbols) *Formatter {
	scale, _ := iso.Standard.Rounding(unit)
	return &Formatter{
		locale: locale,
		unit:   unit,
		scale:  int32(scale),
		sym:    sym,
	}
}

var std = newFormatter(language.MustParse("sv-SE"), iso.SEK, swedish)

// Default returns the package formatter (sv-SE, SEK).
func Default() *Formatter { return std }

// Locale returns the locale the formatter is bound to.
func (f *Formatter) Locale() language.Tag { return f.locale }

// Currency returns the ISO currency the formatter is bound to.
func (f *Formatter) Currency() iso.Unit { return f.unit }

// Scale returns the number of minor-unit digits rendered.
func (f *Formatter) Scale() int32 { return f.scale }

// Round rounds amount half away from zero to the currency's minor unit.
// Amounts too small to reach half a minor unit become zero without
// rescaling their coefficient.
func (f *Formatter) Round(amount decimal.Decimal) decimal.Decimal {
	if amount.IsZero() || magnitude(amount) <= -int(f.scale)-1 {
		return decimal.Zero
	}
	return amount.Round(f.scale)
}

// Format renders amount rounded to the currency's minor unit. Amounts
// that round to zero carry no sign. Format expects amounts within float64
// range; check untrusted input with Validate or use FormatValue.
func (f *Formatter) Format(amount decimal.Decimal) string {
	rounded := f.Round(amount)
	digits := rounded.Abs().StringFixed(f.scale)
	whole, frac, _ := strings.Cut(digits, ".")

	var b strings.Builder
	if !f.sym.symbolAfter {
		b.WriteString(f.sym.currency)
		b.WriteString(f.sym.symbolSep)
	}
	if rounded.IsNegative() {
		b.WriteString(f.sym.minus)
	}
	b.WriteString(group(whole, f.sym.group, f.sym.groupSize))
	if frac != "" {
		b.WriteString(f.sym.decimal)
		b.WriteString(frac)
	}
	if f.sym.symbolAfter {
		b.WriteString(f.sym.symbolSep)
		b.WriteString(f.sym.currency)
	}
	return b.String()
}

// FormatFloat formats a float64 amount. NaN and ±Inf are rejected with
// ErrNonFinite instead of being rendered.
func (f *Formatter) FormatFloat(amount float64) (string, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return "", fmt.Errorf("%w: %v", ErrNonFinite, amount)
	}
	return f.Format(decimal.NewFromFloat(amount)), nil
}

// maxFinite is the largest magnitude a float64 can hold.
var maxFinite = decimal.NewFromFloat(math.MaxFloat64)

// magnitude returns m such that 10^(m-1) <= |d| < 10^m for non-zero d.
func magnitude(d decimal.Decimal) int {
	digits := len(d.Coefficient().Text(10))
	if d.Sign() < 0 {
		digits--
	}
	return int(d.Exponent()) + digits
}

// Validate reports ErrNonFinite for amounts at or beyond the float64
// range, which a float input would already have overflowed to infinity.
func Validate(amount decimal.Decimal) error {
	if amount.IsZero() {
		return nil
	}
	m := magnitude(amount)
	if m > 309 || (m == 309 && amount.Abs().GreaterThanOrEqual(maxFinite)) {
		return fmt.Errorf("%w: magnitude 1e%d exceeds float64 range", ErrNonFinite, m-1)
	}
	return nil
}

// group inserts sep between every size digits counted from the right.
func group(digits, sep string, size int) string {
	if size <= 0 || len(digits) <= size {
		return digits
	}
	head := len(digits) % size
	if head == 0 {
		head = size
	}
	var b strings.Builder
	b.Grow(len(digits) + (len(digits)/size)*len(sep))
	b.WriteString(digits[:head])
	for i := head; i < len(digits); i += size {
		b.WriteString(sep)
		b.WriteString(digits[i : i+size])
	}
	return b.String()
}

// FormatCurrency formats amount as a sv-SE krona string.
func FormatCurrency(amount float64) (string, error) { return std.FormatFloat(amount) }

// Format formats an exact decimal amount as a sv-SE krona string.
func Format(amount decimal.Decimal) string { return std.Format(amount) }
