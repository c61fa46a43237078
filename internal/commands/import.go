package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/AbdurRehmanNiyazi/AusgabeAnalyst/internal/ingestlog"
	"github.com/AbdurRehmanNiyazi/AusgabeAnalyst/internal/statement"
)

func newImportCommand(dir *string, verbose *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "import [file...]",
		Short: "Ingest statement text files (default: scan import/)",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := openProject(*dir, *verbose)
			if err != nil {
				return err
			}
			return runImport(p, args)
		},
	}
}

func runImport(p *project, args []string) error {
	parser, err := p.parser()
	if err != nil {
		return err
	}
	categorizer, err := p.categorizer()
	if err != nil {
		return err
	}
	svc := p.store()

	files, fromImportDir, err := resolveImportFiles(p, args)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Println("Nothing to import.")
		return nil
	}

	for _, file := range files {
		p.log.Debug().Str("file", file.Name).Int64("size", file.Size).Msg("parsing statement")

		data, err := os.ReadFile(file.Path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", file.Name, err)
		}

		// A statement is atomic: any parse error aborts this document and
		// nothing from it reaches the store.
		stmt, err := parser.Parse(string(data))
		if err != nil {
			return fmt.Errorf("parsing %s: %w", file.Name, err)
		}
		if !stmt.BalancesReconcile() {
			p.log.Warn().Str("file", file.Name).Msg("opening + transactions != closing balance")
		}

		txns := categorizer.CategorizeBatch(stmt.Transactions)

		result, err := svc.Merge(txns)
		if err != nil {
			return fmt.Errorf("merging %s: %w", file.Name, err)
		}

		hash, err := p.commit(fmt.Sprintf("import: %s (%d new, %d duplicate)", file.Name, result.Accepted, result.Duplicates))
		if err != nil {
			return err
		}

		if err := ingestlog.Append(p.root, []ingestlog.Entry{{
			Timestamp:  time.Now(),
			Source:     file.Name,
			Accepted:   result.Accepted,
			Duplicates: result.Duplicates,
			CommitHash: hash,
		}}); err != nil {
			return err
		}

		if fromImportDir {
			if err := statement.MarkProcessed(p.root, file.Name); err != nil {
				return err
			}
		}

		fmt.Printf("%s: %d imported, %d duplicates skipped\n", file.Name, result.Accepted, result.Duplicates)
	}

	return nil
}

// resolveImportFiles turns explicit arguments into FileInfos, or scans the
// project import directory when no arguments are given.
func resolveImportFiles(p *project, args []string) ([]statement.FileInfo, bool, error) {
	if len(args) == 0 {
		files, err := statement.Scan(p.root)
		return files, true, err
	}

	var files []statement.FileInfo
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, false, fmt.Errorf("stat %s: %w", arg, err)
		}
		files = append(files, statement.FileInfo{
			Name: filepath.Base(arg),
			Path: arg,
			Size: info.Size(),
		})
	}
	return files, false, nil
}
