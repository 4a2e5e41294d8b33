package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/litescript/ls-starfield/internal/catalog"
	"github.com/litescript/ls-starfield/internal/config"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Write the active catalog as TOML",
	Long:  "Write the active catalog (built-in or --catalog) as a TOML star file with cartesian positions. Writes to stdout when no file is given or the file is \"-\".",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger, closeLog, err := openLogger(cfg, false)
	if err != nil {
		return err
	}
	defer closeLog()

	store, err := loadCatalog(cfg, logger)
	if err != nil {
		return err
	}

	data, err := catalog.Marshal(store.AllStars())
	if err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}

	if len(args) == 0 || args[0] == "-" {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(args[0], data, 0o644); err != nil {
		return fmt.Errorf("write catalog: %w", err)
	}
	logger.Info("wrote %d stars to %s", store.Len(), args[0])
	return nil
}
