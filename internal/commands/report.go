package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newReportCommand(dir *string, verbose *bool) *cobra.Command {
	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Aggregate views over the stored transactions",
	}

	reportCmd.AddCommand(&cobra.Command{
		Use:   "summary",
		Short: "Overall income, expenses and net",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := openProject(*dir, *verbose)
			if err != nil {
				return err
			}
			return runReportSummary(p)
		},
	})

	reportCmd.AddCommand(&cobra.Command{
		Use:   "monthly",
		Short: "Per-month income, expenses and net",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := openProject(*dir, *verbose)
			if err != nil {
				return err
			}
			return runReportMonthly(p)
		},
	})

	reportCmd.AddCommand(&cobra.Command{
		Use:   "categories",
		Short: "Per-category expense totals",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := openProject(*dir, *verbose)
			if err != nil {
				return err
			}
			return runReportCategories(p)
		},
	})

	return reportCmd
}

func runReportSummary(p *project) error {
	s, err := p.store().SummaryStatistics()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Transactions:\t%d\n", s.TotalTransactions)
	fmt.Fprintf(w, "Total income:\t%s\n", s.TotalIncome.StringFixed(2))
	fmt.Fprintf(w, "Total expenses:\t%s\n", s.TotalExpenses.StringFixed(2))
	fmt.Fprintf(w, "Net savings:\t%s\n", s.NetSavings.StringFixed(2))
	fmt.Fprintf(w, "Balance:\t%s\n", s.CurrentBalance.StringFixed(2))
	if !s.From.IsZero() {
		fmt.Fprintf(w, "Date range:\t%s to %s\n", s.From.Format("2006-01-02"), s.To.Format("2006-01-02"))
	}
	return w.Flush()
}

func runReportMonthly(p *project) error {
	buckets, err := p.store().MonthlySummary()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "MONTH\tINCOME\tEXPENSES\tNET\tCOUNT")
	for _, b := range buckets {
		fmt.Fprintf(w, "%04d-%02d\t%s\t%s\t%s\t%d\n",
			b.Year, b.Month,
			b.Income.StringFixed(2), b.Expenses.StringFixed(2), b.Net.StringFixed(2),
			b.Count)
	}
	return w.Flush()
}

func runReportCategories(p *project) error {
	buckets, err := p.store().CategorySummary()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CATEGORY\tTOTAL\tCOUNT")
	for _, b := range buckets {
		fmt.Fprintf(w, "%s\t%s\t%d\n", b.Category, b.Total.StringFixed(2), b.Count)
	}
	return w.Flush()
}
