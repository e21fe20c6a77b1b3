package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mamadbah2/dairy/internal/config"
	"github.com/mamadbah2/dairy/internal/domain/models"
	"github.com/mamadbah2/dairy/internal/render"
	"github.com/mamadbah2/dairy/internal/repository/sample"
	"github.com/mamadbah2/dairy/pkg/logger"
)

// app carries what every subcommand needs once configuration is loaded.
type app struct {
	cfg    *config.Config
	tables models.Tables
	logger *zap.Logger
	repo   sample.Repository
}

func newRootCmd() *cobra.Command {
	a := &app{repo: sample.NewMemoryRepository()}

	var (
		envFile string
		format  string
		charts  bool
	)

	rootCmd := &cobra.Command{
		Use:   "dairy",
		Short: "Dairy farm yield, emission, cost and fertilizer reports",
		Long: `dairy runs small aggregation reports over a sample dairy farm:

  - report:      pen allocation, milk yield, greenhouse gas emissions, feed cost
  - breakdown:   milk yield by breed and feed type
  - fertilizer:  fertilizer output by breed and food type
  - weekly-cost: weekly feeding cost of the herd
  - demo:        all of the above

Configuration comes from DAIRY_* environment variables, optionally loaded
from an env file:
    DAIRY_LOG_LEVEL      debug/info/warn/error (default info)
    DAIRY_LOG_FORMAT     json/console (default console)
    DAIRY_OUTPUT_FORMAT  text/yaml (default text)
    DAIRY_CHARTS         render terminal charts (default false)
    DAIRY_SOIL_SIZE      fertilizer soil size (default 1000)
    DAIRY_TABLES_FILE    YAML file overriding the cost and emission tables`,
		Version:      Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(envFile)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			if cmd.Flags().Changed("format") {
				cfg.Output.Format = format
			}
			if cmd.Flags().Changed("charts") {
				cfg.Output.Charts = charts
			}
			if cmd.Flags().Changed("soil-size") {
				size, err := cmd.Flags().GetFloat64("soil-size")
				if err != nil {
					return err
				}
				if size <= 0 {
					return fmt.Errorf("--soil-size must be greater than 0, got %v", size)
				}
				cfg.Fertilizer.SoilSize = size
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			tables, err := config.LoadTables(cfg.TablesFile)
			if err != nil {
				return err
			}

			baseLogger, err := logger.New(cfg.Log.Level, cfg.Log.Format)
			if err != nil {
				return err
			}

			a.cfg = cfg
			a.tables = tables
			a.logger = baseLogger
			a.logger.Debug("configuration loaded",
				zap.String("output", cfg.Output.Format),
				zap.Bool("charts", cfg.Output.Charts),
				zap.String("tables_file", cfg.TablesFile))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "",
		"env file to load before reading DAIRY_* variables (default: ./.env)")
	rootCmd.PersistentFlags().StringVar(&format, "format", "text",
		"output format: text or yaml (overrides DAIRY_OUTPUT_FORMAT)")
	rootCmd.PersistentFlags().BoolVar(&charts, "charts", false,
		"render terminal charts after text output (overrides DAIRY_CHARTS)")

	rootCmd.AddCommand(newReportCmd(a))
	rootCmd.AddCommand(newBreakdownCmd(a))
	rootCmd.AddCommand(newFertilizerCmd(a))
	rootCmd.AddCommand(newWeeklyCostCmd(a))
	rootCmd.AddCommand(newDemoCmd(a))

	return rootCmd
}

// emit writes value as YAML or the pre-rendered text, depending on the
// configured output format.
func (a *app) emit(w io.Writer, value any, text string) error {
	if a.cfg.Output.Format == "yaml" {
		out, err := render.YAML(value)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, out)
		return err
	}

	_, err := io.WriteString(w, text)
	return err
}

// chartsEnabled reports whether charts should follow the text output.
func (a *app) chartsEnabled() bool {
	return a.cfg.Output.Charts && a.cfg.Output.Format == "text"
}

// named returns a component logger derived from the base logger.
func (a *app) named(component string) *zap.Logger {
	return logger.Named(a.logger, component)
}
