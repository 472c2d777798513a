package output

import (
	"fmt"

	"github.com/rpgo/sekfmt/internal/domain"
)

// Choice is a (value, label) pair for an account select field.
type Choice struct {
	Value int
	Label string
}

// AccountLabel renders "<id>: current balance: <balance>".
func AccountLabel(a domain.Account) string {
	return fmt.Sprintf("%d: current balance: %s", a.ID, FormatCurrency(a.Balance))
}

// AccountChoices returns one choice per account, in input order.
func AccountChoices(accounts []domain.Account) []Choice {
	choices := make([]Choice, 0, len(accounts))
	for _, a := range accounts {
		choices = append(choices, Choice{Value: a.ID, Label: AccountLabel(a)})
	}
	return choices
}
