package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newClearCommand(dir *string, verbose *bool) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete ALL stored transactions",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				return fmt.Errorf("refusing to clear without --force")
			}
			p, err := openProject(*dir, *verbose)
			if err != nil {
				return err
			}
			if err := p.store().ClearAll(); err != nil {
				return err
			}
			if _, err := p.commit("clear: all transactions removed"); err != nil {
				return err
			}
			fmt.Println("All transactions cleared.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "confirm irreversible deletion")

	return cmd
}
