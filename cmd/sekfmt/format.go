package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/rpgo/sekfmt/pkg/currency"
	"github.com/spf13/cobra"
)

func newFormatCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "format [amount...]",
		Short: "Format each amount, or each line of stdin when no amounts are given",
		Example: `  sekfmt format -- 1234.5 -42
  echo 1e6 | sekfmt format`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) > 0 {
				for _, arg := range args {
					if err := formatLine(out, arg); err != nil {
						return err
					}
				}
				a.log.Debugf("formatted %d amounts from arguments", len(args))
				return nil
			}

			n, err := formatLines(cmd.InOrStdin(), out)
			if err != nil {
				return err
			}
			a.log.Debugf("formatted %d amounts from stdin", n)
			return nil
		},
	}
}

func formatLines(r io.Reader, w io.Writer) (int, error) {
	n, lineNo := 0, 0
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if err := formatLine(w, line); err != nil {
			return n, fmt.Errorf("line %d: %w", lineNo, err)
		}
		n++
	}
	return n, sc.Err()
}

func formatLine(w io.Writer, amount string) error {
	s, err := currency.FormatValue(amount)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, s)
	return err
}
