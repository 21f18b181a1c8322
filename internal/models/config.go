package models

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type CloudStorageConfig struct {
	Provider   string `mapstructure:"provider"`
	BucketName string `mapstructure:"bucket_name"`
	Region     string `mapstructure:"region"`
}

type Config struct {
	// Data source selection: "mock", "rest" or "postgres".
	Source string `mapstructure:"source"`

	// REST source
	APIBase     string `mapstructure:"api_base"`
	SessionFile string `mapstructure:"session_file"`

	// Mock source
	Seed         int       `mapstructure:"seed"`
	MockTickets  int       `mapstructure:"mock_tickets"`
	MockItems    int       `mapstructure:"mock_items"`
	MockUsers    int       `mapstructure:"mock_users"`
	ReportPeriod time.Time `mapstructure:"report_period"`

	// Postgres reporting replica
	PostgresDSN string `mapstructure:"postgres_dsn"`

	// Audit event stream
	KafkaEnabled    bool   `mapstructure:"kafka_enabled"`
	KafkaBrokerList string `mapstructure:"kafka_broker_list"`
	AuditTopic      string `mapstructure:"audit_topic"`

	// Report export
	OutputFormat      string             `mapstructure:"output_format"` // csv, json or parquet
	OutputPath        string             `mapstructure:"output_path"`
	OutputFolder      string             `mapstructure:"output_folder"`
	OutputDestination string             `mapstructure:"output_destination"` // local or cloud
	CloudStorage      CloudStorageConfig `mapstructure:"cloud_storage"`
}

// LoadConfig initializes and reads the configuration using Viper.
func LoadConfig(cfgFile string) (*Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.SetConfigName(".catering-any")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv()

	viper.SetDefault("source", "mock")
	viper.SetDefault("seed", 42)
	viper.SetDefault("mock_tickets", 60)
	viper.SetDefault("mock_items", 24)
	viper.SetDefault("mock_users", 12)
	viper.SetDefault("session_file", defaultSessionFile())
	viper.SetDefault("audit_topic", "catering_audit")
	viper.SetDefault("kafka_broker_list", "localhost:9092")
	viper.SetDefault("output_format", "csv")
	viper.SetDefault("output_path", "reports")
	viper.SetDefault("output_folder", time.Now().Format("2006-01-02"))
	viper.SetDefault("output_destination", "local")

	// Missing config file is fine, everything has a default.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && cfgFile != "" {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	decoderConfigOption := viper.DecoderConfigOption(func(config *mapstructure.DecoderConfig) {
		config.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			config.DecodeHook,
			mapstructure.StringToTimeHookFunc(time.RFC3339),
		)
	})
	if err := viper.Unmarshal(&config, decoderConfigOption); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	return &config, nil
}

func defaultSessionFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".catering-any-session.json"
	}
	return filepath.Join(dir, "catering-any", "session.json")
}
