package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/sietosru/internal/accounts"
	"github.com/cleared-dev/sietosru/internal/sie"
)

func newAccountsCommand(global *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "accounts <sie-file>",
		Short: "List the accounts that carry an SRU code, as CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, global)
			if err != nil {
				return err
			}

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening SIE file: %w", err)
			}
			defer f.Close()

			ledger, err := sie.ParseReader(f, cfg.Input.Encoding, cfg.Company.PostalCode, cfg.Company.PostalAddress)
			if err != nil {
				return fmt.Errorf("parsing %s: %w", args[0], err)
			}

			newLogger(cmd.ErrOrStderr(), global.verbose).Debug("listing accounts",
				"accounts", len(ledger.Accounts),
				"sru_codes", len(accounts.NewService(ledger.Accounts).SRUCodes()))

			return accounts.WriteAccounts(cmd.OutOrStdout(), ledger.Accounts)
		},
	}
}
