package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/litescript/ls-starfield/internal/catalog"
	"github.com/litescript/ls-starfield/internal/config"
	"github.com/litescript/ls-starfield/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:          "starfield",
	Short:        "Interactive 3D star catalog",
	Long:         "Starfield renders the nearest stars in 3D, with pick selection, name search, and an animated camera.",
	SilenceUsage: true,
	RunE:         runTUI,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default .starfield.toml)")
	flags.String("log-level", "", "log level (debug, info, warn, error)")
	flags.String("catalog", "", "TOML star catalog (default: built-in)")
	flags.String("mode", "", "rendering mode (classic, instanced)")

	_ = viper.BindPFlag("log_level", flags.Lookup("log-level"))
	_ = viper.BindPFlag("catalog_path", flags.Lookup("catalog"))
	_ = viper.BindPFlag("mode", flags.Lookup("mode"))
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".starfield")
		viper.SetConfigType("toml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("STARFIELD")
	viper.AutomaticEnv()

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()
}

// openLogger returns the configured logger and a function releasing its
// file. Without a log file, quiet discards output; the TUI owns the screen.
func openLogger(cfg config.Config, quiet bool) (*logging.Logger, func(), error) {
	level := logging.ParseLevel(cfg.LogLevel)
	if cfg.LogFile == "" {
		if quiet {
			return logging.Discard(), func() {}, nil
		}
		return logging.New(level), func() {}, nil
	}

	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return logging.NewWithWriter(level, f), func() { f.Close() }, nil
}

// loadCatalog fills a store from the configured file, or the built-in stars.
func loadCatalog(cfg config.Config, logger *logging.Logger) (*catalog.Store, error) {
	store := catalog.NewStore()
	if cfg.CatalogPath == "" {
		store.Load(catalog.DefaultStars())
		logger.Debug("using built-in catalog (%d stars)", store.Len())
		return store, nil
	}

	stars, err := catalog.LoadFile(cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	store.Load(stars)
	logger.Info("loaded %d stars from %s", store.Len(), cfg.CatalogPath)
	return store, nil
}
