package cmd

import (
	"context"
	"fmt"

	"github.com/AlexanderBarlow/catering-any/internal/report"
	"github.com/AlexanderBarlow/catering-any/internal/store"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	exportFormat      string
	exportPath        string
	exportDestination string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export ticket and catalog reports (csv, json or parquet)",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		app, err := newApp(ctx)
		cobra.CheckErr(err)
		defer app.Close()

		exp, err := report.NewExporter(ctx, app.cfg)
		cobra.CheckErr(err)

		ticketStore := store.NewTicketStore(app.src)
		cobra.CheckErr(ticketStore.Load(ctx))
		itemStore := store.NewItemStore(app.src, app.rec)
		cobra.CheckErr(itemStore.Load(ctx))

		cobra.CheckErr(exp.Export(ctx, ticketStore.Tickets(), itemStore.Items()))
		fmt.Println("Export complete")
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "", "Output format: csv, json or parquet")
	exportCmd.Flags().StringVar(&exportPath, "path", "", "Local output directory")
	exportCmd.Flags().StringVar(&exportDestination, "destination", "", "Destination: local or s3")
	viper.BindPFlag("output_format", exportCmd.Flags().Lookup("format"))
	viper.BindPFlag("output_path", exportCmd.Flags().Lookup("path"))
	viper.BindPFlag("output_destination", exportCmd.Flags().Lookup("destination"))
	rootCmd.AddCommand(exportCmd)
}
