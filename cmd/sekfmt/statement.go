package main

import (
	"fmt"

	"github.com/rpgo/sekfmt/internal/config"
	"github.com/rpgo/sekfmt/internal/output"
	"github.com/spf13/cobra"
)

func newStatementCmd(a *app) *cobra.Command {
	var (
		file    string
		format  string
		saveDir string
		choices bool
		account int
	)

	cmd := &cobra.Command{
		Use:   "statement",
		Short: "Render a customer's account statement",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			parser := config.NewInputParser()
			parser.Logger = a.log
			s, err := parser.LoadFromFile(file)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("account") {
				acct, ok := s.FindAccount(account)
				if !ok {
					return fmt.Errorf("account %d not found for customer %d", account, s.Customer.ID)
				}
				fmt.Fprintln(cmd.OutOrStdout(), output.AccountLabel(acct))
				return nil
			}

			if choices {
				for _, c := range output.AccountChoices(s.Accounts) {
					fmt.Fprintln(cmd.OutOrStdout(), c.Label)
				}
				return nil
			}

			if format == "" {
				format = a.settings.Output
			}
			if saveDir != "" {
				f := output.GetFormatterByName(format)
				if f == nil {
					return fmt.Errorf("%w: %q", output.ErrUnsupportedFormat, format)
				}
				name, err := output.WriteFormatted(f, s, saveDir)
				if err != nil {
					return err
				}
				a.log.Infof("statement written to %s", name)
				fmt.Fprintln(cmd.OutOrStdout(), name)
				return nil
			}
			a.log.Debugf("rendering statement for customer %d as %s", s.Customer.ID, format)
			return output.GenerateReport(cmd.OutOrStdout(), s, format)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "statement YAML file")
	cmd.Flags().StringVarP(&format, "output", "o", "", "output format: console, csv, json, html (default from SEKFMT_OUTPUT)")
	cmd.Flags().StringVar(&saveDir, "save-dir", "", "write a timestamped report file into this directory instead of stdout")
	cmd.Flags().BoolVar(&choices, "choices", false, "print account selection labels only")
	cmd.Flags().IntVar(&account, "account", 0, "print the selection label of a single account")
	cmd.MarkFlagsMutuallyExclusive("account", "choices")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
