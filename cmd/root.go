package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/AlexanderBarlow/catering-any/internal/api"
	"github.com/AlexanderBarlow/catering-any/internal/audit"
	"github.com/AlexanderBarlow/catering-any/internal/auth"
	"github.com/AlexanderBarlow/catering-any/internal/models"
	"github.com/AlexanderBarlow/catering-any/internal/source"
	"github.com/AlexanderBarlow/catering-any/internal/store"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "catering-any",
	Short: "Analytics and ops dashboard for catering operations",
	Long: `catering-any renders the catering analytics dashboards in the terminal:
KPI overview, operations ticket tracking, catalog management and user
administration, backed by generated fixtures, the live REST API or a
read-only reporting replica.`,
	Run: func(cmd *cobra.Command, args []string) {
		runOverview(cmd, args)
	},
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.catering-any.yaml)")

	rootCmd.PersistentFlags().String("source", "mock", "Data source: mock, rest or postgres")
	rootCmd.PersistentFlags().String("api-base", "", "Base URL of the catering API (rest source)")
	rootCmd.PersistentFlags().String("postgres-dsn", "", "DSN of the reporting replica (postgres source)")
	rootCmd.PersistentFlags().Int("seed", 42, "Random seed for the mock source")
	rootCmd.PersistentFlags().Bool("kafka-enabled", false, "Publish audit events to Kafka")
	rootCmd.PersistentFlags().String("kafka-broker-list", "localhost:9092", "Kafka broker list for audit events")

	viper.BindPFlag("source", rootCmd.PersistentFlags().Lookup("source"))
	viper.BindPFlag("api_base", rootCmd.PersistentFlags().Lookup("api-base"))
	viper.BindPFlag("postgres_dsn", rootCmd.PersistentFlags().Lookup("postgres-dsn"))
	viper.BindPFlag("seed", rootCmd.PersistentFlags().Lookup("seed"))
	viper.BindPFlag("kafka_enabled", rootCmd.PersistentFlags().Lookup("kafka-enabled"))
	viper.BindPFlag("kafka_broker_list", rootCmd.PersistentFlags().Lookup("kafka-broker-list"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}
	viper.AutomaticEnv()
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// app bundles everything a subcommand needs: config, the session, the
// API client, the selected data source and the audit publisher. The
// session is loaded once here and injected; nothing reaches for global
// state.
type app struct {
	cfg      *models.Config
	sessions *auth.SessionStore
	client   *api.Client
	src      store.Source
	rec      *audit.Publisher
}

func newApp(ctx context.Context) (*app, error) {
	cfg, err := models.LoadConfig(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	sessions := auth.NewSessionStore(cfg.SessionFile)
	// Missing session is fine for mock and postgres sources.
	sessions.Load()

	var client *api.Client
	if cfg.APIBase != "" {
		client = api.NewClient(cfg.APIBase, sessions)
	}

	src, err := source.FromConfig(ctx, cfg, client)
	if err != nil {
		return nil, err
	}

	actor := ""
	if user, ok := sessions.User(); ok {
		actor = user.Email
	}
	rec, err := audit.NewPublisher(cfg, actor)
	if err != nil {
		return nil, err
	}

	return &app{cfg: cfg, sessions: sessions, client: client, src: src, rec: rec}, nil
}

func (a *app) Close() {
	if err := a.rec.Close(); err != nil {
		fmt.Fprintln(os.Stderr, "closing audit publisher:", err)
	}
	if pg, ok := a.src.(*source.Postgres); ok {
		pg.Close()
	}
}

// requireRole refuses a command when a session exists and its role
// fails the predicate. Without a session (mock or replica sources)
// there is nothing to gate on.
func (a *app) requireRole(allowed func(string) bool, action string) error {
	user, ok := a.sessions.User()
	if !ok {
		return nil
	}
	if !allowed(user.Role) {
		return fmt.Errorf("your role (%s) cannot %s", user.Role, action)
	}
	return nil
}
