package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/rpgo/sekfmt/internal/domain"
)

// CSVFormatter writes one row per account plus a trailing total row.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(s *domain.Statement) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"AccountID", "Type", "Created", "Balance", "BalanceFormatted"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, a := range sortedAccounts(s) {
		row := []string{
			strconv.Itoa(a.ID),
			string(a.AccountType),
			FormatDate(a.Created),
			FormatAmount(a.Balance),
			FormatCurrency(a.Balance),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	total := s.TotalBalance()
	if err := w.Write([]string{"TOTAL", "", "", FormatAmount(total), FormatCurrency(total)}); err != nil {
		return nil, err
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
