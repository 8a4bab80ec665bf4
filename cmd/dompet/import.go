package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Veraticus/dompet/internal/cli"
	"github.com/Veraticus/dompet/internal/importer"
	"github.com/Veraticus/dompet/internal/ledger"
	"github.com/Veraticus/dompet/internal/model"
	"github.com/Veraticus/dompet/internal/ofx"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

// fileParser turns one statement file into records plus a one-line report.
type fileParser func(ctx context.Context, r io.Reader) ([]model.Transaction, string, error)

func (a *app) importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import bank statement exports",
		Long: `Import transactions from bank statement files. Imported rows are added
after the existing transactions in file order and categorized from their
descriptions.`,
	}

	cmd.AddCommand(a.importCSVCmd())
	cmd.AddCommand(a.importOFXCmd())

	return cmd
}

func (a *app) importCSVCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "csv <file>...",
		Short: "Import delimited statement exports",
		Long: `Import comma or semicolon separated statement exports. The first line is a
header. Data rows need at least ten columns: date in column 3, description in
column 7, debit in column 9 and credit in column 10.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parser := importer.NewParser(importer.WithClock(a.now))
			parse := func(_ context.Context, r io.Reader) ([]model.Transaction, string, error) {
				data, err := io.ReadAll(r)
				if err != nil {
					return nil, "", fmt.Errorf("failed to read statement: %w", err)
				}
				res := parser.ParseWithStats(string(data))
				report := fmt.Sprintf("%d of %d rows (%d short, %d without amount, %d bad date)",
					res.Imported, res.Rows, res.SkippedShort, res.SkippedZero, res.SkippedBadDate)
				return res.Transactions, report, nil
			}
			return a.runImport(cmd, args, parse, dryRun)
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "show what would be imported without saving")

	return cmd
}

func (a *app) importOFXCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "ofx <file>...",
		Short: "Import OFX/QFX statements",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parser := ofx.NewParser(ofx.WithClock(a.now))
			parse := func(ctx context.Context, r io.Reader) ([]model.Transaction, string, error) {
				res, err := parser.Parse(ctx, r)
				if err != nil {
					return nil, "", err
				}
				report := fmt.Sprintf("%d transactions from %d accounts (%d zero amount)",
					len(res.Transactions), len(res.Accounts), res.Skipped)
				return res.Transactions, report, nil
			}
			return a.runImport(cmd, args, parse, dryRun)
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "show what would be imported without saving")

	return cmd
}

func (a *app) runImport(cmd *cobra.Command, files []string, parse fileParser, dryRun bool) error {
	out := cmd.OutOrStdout()

	handler := cli.NewInterruptHandler(cmd.ErrOrStderr(), "Files imported so far are kept.")
	ctx, stop := handler.HandleInterrupts(cmd.Context())
	defer stop()

	store, cleanup, err := a.openLedger(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	var bar *progressbar.ProgressBar
	if len(files) > 1 {
		bar = newImportBar(cmd.ErrOrStderr(), len(files))
	}

	var total int
	var preview []model.Transaction
	for _, path := range files {
		if ctx.Err() != nil {
			break
		}

		records, report, err := importFile(ctx, path, parse)
		if err != nil {
			return err
		}

		if !dryRun {
			if _, err := store.AppendImported(ctx, records); err != nil {
				return fmt.Errorf("failed to save %s: %w", path, err)
			}
		} else {
			preview = append(preview, records...)
		}
		total += len(records)

		fmt.Fprintln(out, cli.FormatInfo(fmt.Sprintf("%s: %s", filepath.Base(path), report)))
		if bar != nil {
			if err := bar.Add(1); err != nil {
				slog.Warn("failed to update progress bar", "error", err)
			}
		}
	}

	if dryRun {
		if len(preview) > 0 {
			if err := writeHistory(cmd, preview); err != nil {
				return err
			}
		}
		_, err = fmt.Fprintln(out, cli.FormatWarning(fmt.Sprintf("Dry run: %d transactions not saved.", total)))
		return err
	}

	if handler.WasInterrupted() {
		return ctx.Err()
	}
	return reportImport(out, store, total)
}

func importFile(ctx context.Context, path string, parse fileParser) ([]model.Transaction, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			slog.Warn("failed to close file", "path", path, "error", err)
		}
	}()

	records, report, err := parse(ctx, f)
	if err != nil {
		return nil, "", fmt.Errorf("failed to import %s: %w", path, err)
	}
	slog.Debug("parsed statement", "path", path, "records", len(records))
	return records, report, nil
}

func reportImport(out io.Writer, store *ledger.Store, total int) error {
	_, err := fmt.Fprintln(out, cli.FormatSuccess(fmt.Sprintf("Imported %d transactions (%d stored).", total, store.Len())))
	return err
}

func newImportBar(w io.Writer, files int) *progressbar.ProgressBar {
	return progressbar.NewOptions(files,
		progressbar.OptionSetWriter(w),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(30),
		progressbar.OptionSetDescription("[cyan][bold]Importing files...[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			if _, err := fmt.Fprintln(w); err != nil {
				slog.Warn("failed to write newline after progress bar", "error", err)
			}
		}),
	)
}
