package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AbdurRehmanNiyazi/AusgabeAnalyst/internal/categorize"
)

func newCategoriesCommand(dir *string, verbose *bool) *cobra.Command {
	categoriesCmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage categorization rules",
	}

	categoriesCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List categories in priority order",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := openProject(*dir, *verbose)
			if err != nil {
				return err
			}
			cfg, err := categorize.LoadConfig(p.categoriesPath())
			if err != nil {
				return err
			}
			for i, rule := range cfg.Categories {
				fmt.Printf("%2d. %s (%d keywords)\n", i+1, rule.Name, len(rule.Keywords))
			}
			fmt.Printf("    default: %s\n", cfg.DefaultCategory)
			return nil
		},
	})

	categoriesCmd.AddCommand(&cobra.Command{
		Use:   "add-keyword <category> <keyword>",
		Short: "Add a keyword to a category (new categories get lowest priority)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := openProject(*dir, *verbose)
			if err != nil {
				return err
			}
			cfg, err := categorize.LoadConfig(p.categoriesPath())
			if err != nil {
				return err
			}
			cfg = cfg.WithKeyword(args[0], args[1])
			if err := categorize.SaveConfig(p.categoriesPath(), cfg); err != nil {
				return err
			}
			if _, err := p.commit(fmt.Sprintf("categories: add %q to %s", args[1], args[0])); err != nil {
				return err
			}
			fmt.Printf("Added %q to %s\n", args[1], args[0])
			return nil
		},
	})

	return categoriesCmd
}

func newRecategorizeCommand(dir *string, verbose *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "recategorize",
		Short: "Reapply the current rules to all stored transactions",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := openProject(*dir, *verbose)
			if err != nil {
				return err
			}
			categorizer, err := p.categorizer()
			if err != nil {
				return err
			}
			changed, err := p.store().Recategorize(categorizer.Categorize)
			if err != nil {
				return err
			}
			if changed > 0 {
				if _, err := p.commit(fmt.Sprintf("recategorize: %d transactions updated", changed)); err != nil {
					return err
				}
			}
			fmt.Printf("Recategorized %d transactions\n", changed)
			return nil
		},
	}
}
