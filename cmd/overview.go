package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/AlexanderBarlow/catering-any/internal/analytics"
	"github.com/AlexanderBarlow/catering-any/internal/auth"
	"github.com/AlexanderBarlow/catering-any/internal/models"
	"github.com/AlexanderBarlow/catering-any/internal/store"

	"github.com/spf13/cobra"
)

var overviewRange string

var overviewCmd = &cobra.Command{
	Use:   "overview",
	Short: "KPI dashboard: revenue, ticket time, margin, alerts",
	Run:   runOverview,
}

func init() {
	overviewCmd.Flags().StringVar(&overviewRange, "range", "7d", "Reporting range: 1d, 7d, 30d or ytd")
	rootCmd.AddCommand(overviewCmd)
}

func runOverview(cmd *cobra.Command, args []string) {
	ctx := context.Background()
	app, err := newApp(ctx)
	cobra.CheckErr(err)
	defer app.Close()
	cobra.CheckErr(app.requireRole(auth.CanViewDashboard, "view the dashboard"))

	cutoff, err := rangeCutoff(overviewRange, time.Now())
	cobra.CheckErr(err)

	ticketStore := store.NewTicketStore(app.src)
	cobra.CheckErr(ticketStore.Load(ctx))
	itemStore := store.NewItemStore(app.src, app.rec)
	cobra.CheckErr(itemStore.Load(ctx))

	var inRange []models.Ticket
	for _, t := range ticketStore.Tickets() {
		if !t.CreatedAt.Before(cutoff) {
			inRange = append(inRange, t)
		}
	}

	stats := analytics.SummarizeTickets(inRange)
	sorted := analytics.FilterItems(itemStore.Items(), analytics.ItemFilter{Category: analytics.CategoryAll})
	summary := analytics.SummarizeItems(sorted)

	if user, ok := app.sessions.User(); ok {
		fmt.Printf("Dashboard for %s (%s)\n\n", user.Name, user.Role)
	} else {
		fmt.Printf("Dashboard (%s data)\n\n", app.cfg.Source)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Revenue (%s)\t%s\n", overviewRange, analytics.Money(stats.RevenueTotal))
	fmt.Fprintf(w, "Tickets (%s)\t%d\n", overviewRange, stats.Total)
	fmt.Fprintf(w, "Avg Ticket Time\t%.0f min\n", stats.AvgDurationMins)
	fmt.Fprintf(w, "On-Time Rate\t%.1f%%\n", stats.OnTimeRate)
	fmt.Fprintf(w, "Estimated Margin\t%.1f%%\n", summary.AvgMarginPercent)
	w.Flush()

	fmt.Println("\nTop Items")
	for _, it := range analytics.TopItems(sorted, 5) {
		fmt.Printf("  %-28s %4d sold  %s\n", it.Name, it.QtySold, analytics.Money(it.PeriodRevenue()))
	}

	fmt.Println("\nAlerts")
	for _, a := range stats.Alerts {
		fmt.Printf("  [%s] %s\n", a.Level, a.Text)
	}
}

func rangeCutoff(r string, now time.Time) (time.Time, error) {
	switch r {
	case "1d":
		return now.AddDate(0, 0, -1), nil
	case "7d":
		return now.AddDate(0, 0, -7), nil
	case "30d":
		return now.AddDate(0, 0, -30), nil
	case "ytd":
		return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location()), nil
	}
	return time.Time{}, fmt.Errorf("unknown range %q (want 1d, 7d, 30d or ytd)", r)
}
