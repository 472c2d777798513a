package output

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/rpgo/sekfmt/internal/domain"
)

// ConsoleFormatter prints a plain-text statement, accounts ordered by id.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(s *domain.Statement) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "ACCOUNT STATEMENT")
	fmt.Fprintln(&buf, "=================")
	fmt.Fprintf(&buf, "Customer: %s (%d)\n", s.Customer.FullName(), s.Customer.ID)
	if !s.GeneratedAt.IsZero() {
		fmt.Fprintf(&buf, "Generated: %s\n", FormatDate(s.GeneratedAt))
	}
	fmt.Fprintln(&buf)

	accounts := sortedAccounts(s)
	for _, a := range accounts {
		fmt.Fprintf(&buf, "%d  %-8s  opened %s  %s\n", a.ID, a.AccountType, FormatDate(a.Created), FormatCurrency(a.Balance))
	}
	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "Total (%d accounts): %s\n", len(accounts), FormatCurrency(s.TotalBalance()))
	return buf.Bytes(), nil
}

func sortedAccounts(s *domain.Statement) []domain.Account {
	accounts := append([]domain.Account(nil), s.Accounts...)
	sort.Slice(accounts, func(i, j int) bool { return accounts[i].ID < accounts[j].ID })
	return accounts
}
