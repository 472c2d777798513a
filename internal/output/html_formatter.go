package output

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/rpgo/sekfmt/internal/domain"
	"github.com/rpgo/sekfmt/pkg/currency"
	"github.com/rpgo/sekfmt/pkg/decimal"
)

// HTMLFormatter produces a standalone HTML statement.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/statement.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("statement").
	Funcs(currency.FuncMap()).
	Funcs(template.FuncMap{"date": FormatDate}).
	Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(s *domain.Statement) ([]byte, error) {
	var buf bytes.Buffer
	data := struct {
		*domain.Statement
		Accounts []domain.Account
		Total    decimal.Money
	}{s, sortedAccounts(s), s.TotalBalance()}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
