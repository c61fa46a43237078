package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/AbdurRehmanNiyazi/AusgabeAnalyst/internal/export"
)

func newExportCommand(dir *string, verbose *bool) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export transactions and summaries to an XLSX workbook",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := openProject(*dir, *verbose)
			if err != nil {
				return err
			}
			return runExport(p, out)
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "output file (default exports/expenses_<date>.xlsx)")

	return cmd
}

func runExport(p *project, out string) error {
	txns, err := p.store().LoadAll()
	if err != nil {
		return err
	}

	if out == "" {
		out = filepath.Join(p.root, "exports", fmt.Sprintf("expenses_%s.xlsx", time.Now().Format("20060102")))
	}
	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return fmt.Errorf("creating export dir: %w", err)
	}

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	defer f.Close()

	if err := export.WriteXLSX(f, txns); err != nil {
		return err
	}

	p.log.Debug().Int("transactions", len(txns)).Str("file", out).Msg("exported workbook")
	fmt.Printf("Exported %d transactions to %s\n", len(txns), out)
	return nil
}
