package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"stocklens"
	"stocklens/config"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootFlags struct {
	configPath string
	outputDir  string
	logLevel   string
	logFormat  string
	noCharts   bool
}

var rootCmd = &cobra.Command{
	Use:   "stocklens",
	Short: "Inventory statistics, vector analytics, and chart reports",
	Long: "Stocklens analyzes classroom inventory data: descriptive statistics\n" +
		"over stock records, vector geometry and probabilities over labeled\n" +
		"attribute vectors, and categorical grouping, exported as CSV reports\n" +
		"and chart images.",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&rootFlags.configPath, "config", "", "Path to YAML config file")
	pf.StringVar(&rootFlags.outputDir, "output", "", "Output directory (overrides config)")
	pf.StringVar(&rootFlags.logLevel, "log-level", "", "Log level: debug|info|warn|error")
	pf.StringVar(&rootFlags.logFormat, "log-format", "", "Log format: text|json")
	pf.BoolVar(&rootFlags.noCharts, "no-charts", false, "Skip chart rendering")

	rootCmd.AddCommand(numericCmd)
	rootCmd.AddCommand(vectorCmd)
	rootCmd.AddCommand(categoryCmd)
	rootCmd.AddCommand(allCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.Version = version
}

// loadConfig merges the config file with the root flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(rootFlags.configPath)
	if err != nil {
		return cfg, err
	}
	if rootFlags.outputDir != "" {
		cfg.OutputDir = rootFlags.outputDir
	}
	if rootFlags.logLevel != "" {
		cfg.LogLevel = rootFlags.logLevel
	}
	if rootFlags.logFormat != "" {
		cfg.LogFormat = rootFlags.logFormat
	}
	if rootFlags.noCharts {
		cfg.Charts = false
	}
	return cfg, cfg.Validate()
}

func newLogger(cfg config.Config) *stocklens.Logger {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	if cfg.LogFormat == "json" {
		return stocklens.NewJSONLogger(level)
	}
	return stocklens.NewTextLogger(level)
}

// newSession builds the session shared by every subcommand.
func newSession(mutate func(*config.Config)) (*stocklens.Session, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	if mutate != nil {
		mutate(&cfg)
	}
	return stocklens.NewSession(cfg, newLogger(cfg)), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
