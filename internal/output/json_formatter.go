package output

import (
	"encoding/json"
	"time"

	"github.com/rpgo/sekfmt/internal/domain"
	"github.com/rpgo/sekfmt/pkg/currency"
	"github.com/rpgo/sekfmt/pkg/decimal"
)

// JSONFormatter serializes the statement as pretty-printed JSON. Every
// amount carries both the plain decimal and the localized string.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

type jsonAmount struct {
	Amount    string `json:"amount"`
	Formatted string `json:"formatted"`
}

type jsonAccount struct {
	ID          int                `json:"id"`
	AccountType domain.AccountType `json:"account_type"`
	Created     string             `json:"created"`
	Balance     jsonAmount         `json:"balance"`
	Label       string             `json:"label"`
}

type jsonStatement struct {
	Customer    domain.Customer `json:"customer"`
	GeneratedAt *time.Time      `json:"generated_at,omitempty"`
	Locale      string          `json:"locale"`
	Currency    string          `json:"currency"`
	Accounts    []jsonAccount   `json:"accounts"`
	Total       jsonAmount      `json:"total"`
}

func newJSONAmount(m decimal.Money) jsonAmount {
	return jsonAmount{Amount: FormatAmount(m), Formatted: FormatCurrency(m)}
}

func (j JSONFormatter) Format(s *domain.Statement) ([]byte, error) {
	f := currency.Default()
	out := jsonStatement{
		Customer: s.Customer,
		Locale:   f.Locale().String(),
		Currency: f.Currency().String(),
		Accounts: make([]jsonAccount, 0, len(s.Accounts)),
		Total:    newJSONAmount(s.TotalBalance()),
	}
	if !s.GeneratedAt.IsZero() {
		t := s.GeneratedAt
		out.GeneratedAt = &t
	}
	for _, a := range sortedAccounts(s) {
		out.Accounts = append(out.Accounts, jsonAccount{
			ID:          a.ID,
			AccountType: a.AccountType,
			Created:     FormatDate(a.Created),
			Balance:     newJSONAmount(a.Balance),
			Label:       AccountLabel(a),
		})
	}
	return json.MarshalIndent(out, "", "  ")
}
