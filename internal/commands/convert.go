package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/sietosru/internal/buildinfo"
	"github.com/cleared-dev/sietosru/internal/config"
	"github.com/cleared-dev/sietosru/internal/console"
	"github.com/cleared-dev/sietosru/internal/output"
	"github.com/cleared-dev/sietosru/internal/runlog"
	"github.com/cleared-dev/sietosru/internal/sie"
	"github.com/cleared-dev/sietosru/internal/sru"
)

type convertOptions struct {
	outDir string
	dryRun bool
	quiet  bool
}

func newConvertCommand(global *globalOptions) *cobra.Command {
	var opts convertOptions

	cmd := &cobra.Command{
		Use:   "convert <sie-file> [postal-code] [postal-address]",
		Short: "Convert an SIE export to INFO.sru and BLANKETTER.sru",
		Long: `Reads an SIE export and writes the SRU files for INK2, INK2R and INK2S
into <out>/<fiscal year>/. Postal code and address are not part of an SIE
export; pass them as arguments or set company.postal_code and
company.postal_address in the config file.`,
		Args: cobra.RangeArgs(1, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, global)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("out") {
				cfg.Output.Dir = opts.outDir
			}
			logger := newLogger(cmd.ErrOrStderr(), global.verbose)
			return runConvert(cmd.OutOrStdout(), logger, cfg, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.outDir, "out", "o", ".", "output root; files go to <out>/<fiscal year>/")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "render and print without writing files")
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "do not print the rendered files")

	return cmd
}

func runConvert(out io.Writer, logger *slog.Logger, cfg *config.Config, args []string, opts convertOptions) error {
	siePath := args[0]
	if len(args) > 1 {
		code, err := parsePostalCode(args[1])
		if err != nil {
			return err
		}
		cfg.Company.PostalCode = code
	}
	if len(args) > 2 {
		cfg.Company.PostalAddress = args[2]
	}
	if cfg.Company.PostalCode == 0 {
		return fmt.Errorf("postal code required: pass it as an argument or set company.postal_code")
	}
	if cfg.Company.PostalAddress == "" {
		return fmt.Errorf("postal address required: pass it as an argument or set company.postal_address")
	}

	lineEnding, err := sru.LineEnding(cfg.Output.LineEnding)
	if err != nil {
		return err
	}

	f, err := os.Open(siePath)
	if err != nil {
		return fmt.Errorf("opening SIE file: %w", err)
	}
	defer f.Close()

	ledger, err := sie.ParseReader(f, cfg.Input.Encoding, cfg.Company.PostalCode, cfg.Company.PostalAddress)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", siePath, err)
	}
	logger.Debug("parsed ledger",
		"company", ledger.Company.Name,
		"fiscal_year", ledger.FiscalYear(),
		"accounts", len(ledger.Accounts),
		"ending_balances", len(ledger.EndingBalances),
		"results", len(ledger.Results))

	sub, err := sru.Build(ledger, sru.Options{
		Forms:       cfg.FormIDs(),
		Program:     buildinfo.Program,
		GeneratedAt: time.Now(),
		LineEnding:  lineEnding,
	})
	if err != nil {
		return fmt.Errorf("building forms: %w", err)
	}
	for _, form := range sub.Forms {
		logger.Debug("built form", "form", form.ID, "entries", len(form.Entries))
	}

	if !opts.quiet {
		console.Echo(out, sub)
	}
	if opts.dryRun {
		logger.Debug("dry run, nothing written")
		return nil
	}

	res, err := output.Write(cfg.Output.Dir, sub, cfg.Output.Encoding)
	if err != nil {
		return fmt.Errorf("writing submission: %w", err)
	}
	logger.Debug("wrote submission", "dir", res.Dir, "bytes", res.BytesTotal)

	if cfg.Output.Log {
		if err := runlog.Append(cfg.Output.Dir, []runlog.Entry{logEntry(siePath, ledger.Company.SRUIdentity(), sub, res.Dir)}); err != nil {
			logger.Warn("failed to write conversion log", "error", err)
		}
	}

	console.Success(out, "wrote %s and %s", res.InfoPath, res.FormsPath)
	return nil
}

// parsePostalCode accepts "11122" and the common "111 22" form.
func parsePostalCode(s string) (int, error) {
	code, err := strconv.Atoi(strings.ReplaceAll(s, " ", ""))
	if err != nil || code <= 0 {
		return 0, fmt.Errorf("invalid postal code %q", s)
	}
	return code, nil
}

func logEntry(source, orgNr string, sub *sru.Submission, dir string) runlog.Entry {
	e := runlog.Entry{
		Timestamp:  time.Now(),
		Source:     filepath.Clean(source),
		OrgNr:      orgNr,
		FiscalYear: sub.FiscalYear,
		OutputDir:  dir,
	}
	for _, form := range sub.Forms {
		e.Forms = append(e.Forms, form.ID)
		e.Entries += len(form.Entries)
	}
	return e
}
