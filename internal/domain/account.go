package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/rpgo/sekfmt/pkg/decimal"
)

// AccountType is the kind of bank account
type AccountType string

const (
	AccountPersonal AccountType = "Personal"
	AccountChecking AccountType = "Checking"
	AccountSavings  AccountType = "Savings"
)

// ParseAccountType matches s case-insensitively against the known account types
func ParseAccountType(s string) (AccountType, error) {
	for _, t := range []AccountType{AccountPersonal, AccountChecking, AccountSavings} {
		if strings.EqualFold(s, string(t)) {
			return t, nil
		}
	}
	return "", fmt.Errorf("%q is not a valid account type", s)
}

// Customer identifies the owner of a set of accounts
type Customer struct {
	ID        int    `yaml:"id" json:"id"`
	FirstName string `yaml:"first_name" json:"first_name"`
	LastName  string `yaml:"last_name" json:"last_name"`
	Country   string `yaml:"country,omitempty" json:"country,omitempty"`
}

// FullName returns "First Last"
func (c Customer) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

// Account is a single bank account with its current balance in SEK
type Account struct {
	ID          int           `yaml:"id" json:"id"`
	AccountType AccountType   `yaml:"account_type" json:"account_type"`
	Created     time.Time     `yaml:"created" json:"created"`
	Balance     decimal.Money `yaml:"balance" json:"balance"`
}

// Statement is a customer's accounts as of GeneratedAt
type Statement struct {
	Customer    Customer  `yaml:"customer" json:"customer"`
	GeneratedAt time.Time `yaml:"generated_at,omitempty" json:"generated_at"`
	Accounts    []Account `yaml:"accounts" json:"accounts"`
}

// TotalBalance sums the balances of all accounts
func (s *Statement) TotalBalance() decimal.Money {
	balances := make([]decimal.Money, 0, len(s.Accounts))
	for _, a := range s.Accounts {
		balances = append(balances, a.Balance)
	}
	return decimal.Sum(balances...)
}

// FindAccount returns the account with the given id
func (s *Statement) FindAccount(id int) (Account, bool) {
	for _, a := range s.Accounts {
		if a.ID == id {
			return a, true
		}
	}
	return Account{}, false
}
