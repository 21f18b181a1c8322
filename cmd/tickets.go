package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/AlexanderBarlow/catering-any/internal/analytics"
	"github.com/AlexanderBarlow/catering-any/internal/auth"
	"github.com/AlexanderBarlow/catering-any/internal/store"

	"github.com/spf13/cobra"
)

var ticketsCmd = &cobra.Command{
	Use:   "tickets",
	Short: "Operations view: ticket stats, duration histogram, late orders",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		app, err := newApp(ctx)
		cobra.CheckErr(err)
		defer app.Close()
		cobra.CheckErr(app.requireRole(auth.CanViewDashboard, "view operations"))

		ticketStore := store.NewTicketStore(app.src)
		cobra.CheckErr(ticketStore.Load(ctx))

		tickets := ticketStore.Tickets()
		stats := analytics.SummarizeTickets(tickets)

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintf(w, "Total\t%d\n", stats.Total)
		fmt.Fprintf(w, "Completed\t%d\n", stats.Completed)
		fmt.Fprintf(w, "Active\t%d\n", stats.Active)
		fmt.Fprintf(w, "Cancelled\t%d (%.1f%%)\n", stats.Cancelled, stats.CancelledRate)
		fmt.Fprintf(w, "Avg Duration\t%.1f min\n", stats.AvgDurationMins)
		fmt.Fprintf(w, "On-Time Rate\t%.1f%%\n", stats.OnTimeRate)
		fmt.Fprintf(w, "Revenue\t%s\n", analytics.Money(stats.RevenueTotal))
		w.Flush()

		fmt.Println("\nDuration (completed)")
		for _, b := range stats.Histogram {
			fmt.Printf("  %-7s %s %d\n", b.Label, strings.Repeat("#", b.Count), b.Count)
		}

		late := analytics.LateTickets(tickets)
		fmt.Printf("\nLate orders (%d)\n", len(late))
		for _, t := range late {
			over := t.DurationMins - t.PromisedMins
			fmt.Printf("  %-22s promised %dm, took %dm (+%dm)  %s\n",
				t.Customer, t.PromisedMins, t.DurationMins, over, analytics.MoneyExact(t.Revenue))
		}

		fmt.Println("\nAlerts")
		for _, a := range stats.Alerts {
			fmt.Printf("  [%s] %s\n", a.Level, a.Text)
		}
	},
}

func init() {
	rootCmd.AddCommand(ticketsCmd)
}
