package currency

import (
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// Amounter is implemented by value types that carry a decimal amount.
type Amounter interface {
	Amount() decimal.Decimal
}

// FormatValue formats any Go numeric value, a decimal.Decimal, an Amounter
// or a numeric string. Other values return ErrNotNumeric; decimals and
// strings beyond float64 range return ErrNonFinite.
func FormatValue(v any) (string, error) { return std.FormatValue(v) }

// FormatValue is the Formatter method behind the package-level FormatValue.
func (f *Formatter) FormatValue(v any) (string, error) {
	switch n := v.(type) {
	case decimal.Decimal:
		return f.formatChecked(n)
	case *decimal.Decimal:
		if n == nil {
			return "", fmt.Errorf("%w: nil decimal", ErrNotNumeric)
		}
		return f.formatChecked(*n)
	case Amounter:
		return f.formatChecked(n.Amount())
	case float64:
		return f.FormatFloat(n)
	case float32:
		if math.IsNaN(float64(n)) || math.IsInf(float64(n), 0) {
			return "", fmt.Errorf("%w: %v", ErrNonFinite, n)
		}
		return f.Format(decimal.NewFromFloat32(n)), nil
	case int:
		return f.Format(decimal.NewFromInt(int64(n))), nil
	case int8:
		return f.Format(decimal.NewFromInt(int64(n))), nil
	case int16:
		return f.Format(decimal.NewFromInt(int64(n))), nil
	case int32:
		return f.Format(decimal.NewFromInt(int64(n))), nil
	case int64:
		return f.Format(decimal.NewFromInt(n)), nil
	case uint:
		return f.Format(fromUint(uint64(n))), nil
	case uint8:
		return f.Format(fromUint(uint64(n))), nil
	case uint16:
		return f.Format(fromUint(uint64(n))), nil
	case uint32:
		return f.Format(fromUint(uint64(n))), nil
	case uint64:
		return f.Format(fromUint(n)), nil
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(n))
		if err != nil {
			return "", fmt.Errorf("%w: %q", ErrNotNumeric, n)
		}
		return f.formatChecked(d)
	default:
		return "", fmt.Errorf("%w: %T", ErrNotNumeric, v)
	}
}

func (f *Formatter) formatChecked(d decimal.Decimal) (string, error) {
	if err := Validate(d); err != nil {
		return "", err
	}
	return f.Format(d), nil
}

func fromUint(n uint64) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(n), 0)
}

// FuncMap exposes format_currency to html/template and text/template.
//
//	tmpl.Funcs(currency.FuncMap())
//	{{ .Balance | format_currency }}
func FuncMap() map[string]any {
	return map[string]any{
		"format_currency": FormatValue,
	}
}
