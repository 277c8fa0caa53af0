package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/bagdasarian/freetime-finder/internal/domain"
)

func newPlansCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plans",
		Short: "Показать тарифы и их ограничения",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printPlans(cmd.OutOrStdout())
		},
	}
}

func printPlans(out io.Writer) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "TIER\tWINDOW DAYS\tMIN SLOT\tMAX MEMBERS\tAUTO SEARCH")
	for _, tier := range domain.Tiers() {
		p, _ := domain.PolicyFor(tier)
		fmt.Fprintf(tw, "%s\t%d\t%d min\t%d\t%t\n", tier, p.SearchWindowDays, p.MinSlotDurationMinutes, p.MaxMembers, p.AllowAutoSearch)
	}
	return tw.Flush()
}
