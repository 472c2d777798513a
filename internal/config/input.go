package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rpgo/sekfmt/internal/domain"
	"github.com/rpgo/sekfmt/internal/logging"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// ErrInvalidStatement wraps every statement validation failure.
var ErrInvalidStatement = errors.New("invalid statement")

// maxBalance is the first magnitude a NUMERIC(15,2) balance column cannot hold.
var maxBalance = decimal.New(1, 13)

// InputParser handles parsing of statement files
type InputParser struct {
	Logger logging.Logger
}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{Logger: logging.NopLogger{}}
}

// LoadFromFile loads a statement from a YAML or JSON file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Statement, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	ip.logger().Debugf("read %d bytes from %s", len(data), filename)
	return ip.Load(bytes.NewReader(data))
}

// Load decodes and validates a statement from r
func (ip *InputParser) Load(r io.Reader) (*domain.Statement, error) {
	var statement domain.Statement
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&statement); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidStatement)
		}
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateStatement(&statement); err != nil {
		return nil, fmt.Errorf("statement validation failed: %w", err)
	}

	ip.logger().Debugf("loaded statement for customer %d with %d accounts", statement.Customer.ID, len(statement.Accounts))
	return &statement, nil
}

// ValidateStatement validates a loaded statement and normalizes account types
func (ip *InputParser) ValidateStatement(s *domain.Statement) error {
	if s.Customer.ID <= 0 {
		return fmt.Errorf("%w: customer id must be positive", ErrInvalidStatement)
	}
	if len(s.Accounts) == 0 {
		return fmt.Errorf("%w: no accounts provided", ErrInvalidStatement)
	}

	seen := make(map[int]bool, len(s.Accounts))
	for i := range s.Accounts {
		a := &s.Accounts[i]
		if err := ip.validateAccount(a); err != nil {
			return fmt.Errorf("account %d: %w", i, err)
		}
		if seen[a.ID] {
			return fmt.Errorf("%w: duplicate account id %d", ErrInvalidStatement, a.ID)
		}
		seen[a.ID] = true
	}
	return nil
}

// validateAccount validates a single account
func (ip *InputParser) validateAccount(a *domain.Account) error {
	if a.ID <= 0 {
		return fmt.Errorf("%w: account id must be positive", ErrInvalidStatement)
	}
	t, err := domain.ParseAccountType(string(a.AccountType))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidStatement, err)
	}
	a.AccountType = t
	if a.Created.IsZero() {
		return fmt.Errorf("%w: created date is required", ErrInvalidStatement)
	}
	if err := a.Balance.Validate(); err != nil {
		return fmt.Errorf("%w: balance: %v", ErrInvalidStatement, err)
	}
	if !a.Balance.IsWholeOre() {
		return fmt.Errorf("%w: balance has more than two decimals", ErrInvalidStatement)
	}
	if a.Balance.Abs().GreaterThanOrEqual(maxBalance) {
		return fmt.Errorf("%w: balance %s out of range", ErrInvalidStatement, a.Balance)
	}
	return nil
}

func (ip *InputParser) logger() logging.Logger {
	if ip.Logger == nil {
		return logging.NopLogger{}
	}
	return ip.Logger
}
