// Package commands wires the CLI command tree.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AbdurRehmanNiyazi/AusgabeAnalyst/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var dir string
	var verbose bool

	rootCmd := &cobra.Command{
		Use:     "ausgabe",
		Short:   "Bank statement expense analyzer",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&dir, "dir", ".", "project directory")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newImportCommand(&dir, &verbose))
	rootCmd.AddCommand(newReportCommand(&dir, &verbose))
	rootCmd.AddCommand(newExportCommand(&dir, &verbose))
	rootCmd.AddCommand(newCategoriesCommand(&dir, &verbose))
	rootCmd.AddCommand(newRecategorizeCommand(&dir, &verbose))
	rootCmd.AddCommand(newClearCommand(&dir, &verbose))

	return rootCmd
}
