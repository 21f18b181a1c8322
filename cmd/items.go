package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/AlexanderBarlow/catering-any/internal/analytics"
	"github.com/AlexanderBarlow/catering-any/internal/auth"
	"github.com/AlexanderBarlow/catering-any/internal/store"

	"github.com/spf13/cobra"
)

var (
	itemSearch     string
	itemCategory   string
	itemActiveOnly bool

	itemName    string
	itemPrice   string
	itemCost    string
	itemQty     string
	itemDisable bool
)

var itemsCmd = &cobra.Command{
	Use:   "items",
	Short: "Catalog view: filtered items with period revenue and margins",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		app, err := newApp(ctx)
		cobra.CheckErr(err)
		defer app.Close()

		itemStore := store.NewItemStore(app.src, app.rec)
		cobra.CheckErr(itemStore.Load(ctx))

		filter := analytics.ItemFilter{
			Search:     itemSearch,
			Category:   itemCategory,
			ActiveOnly: itemActiveOnly,
		}
		filtered := analytics.FilterItems(itemStore.Items(), filter)
		summary := analytics.SummarizeItems(filtered)

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tCATEGORY\tACTIVE\tPRICE\tSOLD\tREVENUE\tMARGIN")
		for _, it := range filtered {
			margin := analytics.MarginPercent(it.Price, it.Cost)
			fmt.Fprintf(w, "%s\t%s\t%t\t%s\t%d\t%s\t%.1f%% (%s)\n",
				it.Name, it.Category, it.Active,
				analytics.MoneyExact(it.Price), it.QtySold,
				analytics.Money(it.PeriodRevenue()),
				margin, analytics.MarginBand(margin))
		}
		w.Flush()

		fmt.Printf("\nRevenue %s   Cost %s   Profit %s   Avg Margin %.1f%%\n",
			analytics.Money(summary.Revenue), analytics.Money(summary.Cost),
			analytics.Money(summary.Profit), summary.AvgMarginPercent)
	},
}

var itemsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a catalog item",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		app, err := newApp(ctx)
		cobra.CheckErr(err)
		defer app.Close()
		cobra.CheckErr(app.requireRole(auth.CanEditCatalog, "edit the catalog"))

		itemStore := store.NewItemStore(app.src, app.rec)
		cobra.CheckErr(itemStore.Load(ctx))

		created, err := itemStore.Add(ctx, store.ItemForm{
			Name:     itemName,
			Category: itemCategory,
			Active:   !itemDisable,
			Price:    itemPrice,
			Cost:     itemCost,
			QtySold:  itemQty,
		})
		cobra.CheckErr(err)
		fmt.Printf("Created %q (%s) at %s\n", created.Name, created.ID, analytics.MoneyExact(created.Price))
	},
}

var itemsEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a catalog item in place",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		app, err := newApp(ctx)
		cobra.CheckErr(err)
		defer app.Close()
		cobra.CheckErr(app.requireRole(auth.CanEditCatalog, "edit the catalog"))

		itemStore := store.NewItemStore(app.src, app.rec)
		cobra.CheckErr(itemStore.Load(ctx))

		updated, err := itemStore.Edit(ctx, args[0], store.ItemForm{
			Name:     itemName,
			Category: itemCategory,
			Active:   !itemDisable,
			Price:    itemPrice,
			Cost:     itemCost,
			QtySold:  itemQty,
		})
		cobra.CheckErr(err)
		fmt.Printf("Updated %q\n", updated.Name)
	},
}

var itemsRemoveCmd = &cobra.Command{
	Use:   "remove <id-or-name>",
	Short: "Remove a catalog item by identifier or exact name",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		app, err := newApp(ctx)
		cobra.CheckErr(err)
		defer app.Close()
		cobra.CheckErr(app.requireRole(auth.CanEditCatalog, "edit the catalog"))

		itemStore := store.NewItemStore(app.src, app.rec)
		cobra.CheckErr(itemStore.Load(ctx))

		id := args[0]
		name := id
		if it, ok := itemStore.FindByName(args[0]); ok {
			id = it.ID
			name = it.Name
		}
		cobra.CheckErr(itemStore.Remove(ctx, id))
		fmt.Printf("Removed %q\n", name)
	},
}

func init() {
	itemsCmd.PersistentFlags().StringVar(&itemSearch, "search", "", "Name substring filter")
	itemsCmd.PersistentFlags().StringVar(&itemCategory, "category", analytics.CategoryAll, "Category filter, or All")
	itemsCmd.Flags().BoolVar(&itemActiveOnly, "active-only", false, "Only show active items")

	for _, c := range []*cobra.Command{itemsAddCmd, itemsEditCmd} {
		c.Flags().StringVar(&itemName, "name", "", "Item name")
		c.Flags().StringVar(&itemPrice, "price", "", "Unit price, e.g. 12.50")
		c.Flags().StringVar(&itemCost, "cost", "", "Unit cost, e.g. 4.10")
		c.Flags().StringVar(&itemQty, "qty", "0", "Quantity sold this period")
		c.Flags().BoolVar(&itemDisable, "disabled", false, "Create or leave the item inactive")
	}

	itemsCmd.AddCommand(itemsAddCmd, itemsEditCmd, itemsRemoveCmd)
	rootCmd.AddCommand(itemsCmd)
}
