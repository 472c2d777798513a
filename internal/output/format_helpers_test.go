package output

import (
	"testing"
	"time"

	"github.com/rpgo/sekfmt/pkg/decimal"
)

func TestFormatCurrency(t *testing.T) {
	v := decimal.NewMoney(1234.567)
	got := FormatCurrency(v)
	want := "1\u00a0234,57\u00a0kr"
	if got != want {
		t.Errorf("FormatCurrency(%v) = %q, want %q", v, got, want)
	}
}

func TestFormatAmount(t *testing.T) {
	v := decimal.NewMoney(-12.3456)
	got := FormatAmount(v)
	want := "-12.35"
	if got != want {
		t.Errorf("FormatAmount(%v) = %q, want %q", v, got, want)
	}
}

func TestFormatDate(t *testing.T) {
	got := FormatDate(time.Date(2019, 3, 4, 15, 0, 0, 0, time.UTC))
	if got != "2019-03-04" {
		t.Errorf("FormatDate = %q", got)
	}
}
