package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"etherion/internal/config"
	"etherion/internal/logging"
)

// app carries flag values and per-run state shared by the subcommands.
type app struct {
	configPath    string
	cadence       string
	outDir        string
	schemaVersion string
	csv           bool
	skeleton      bool
	verbose       bool

	cfg    *config.Config
	logger *zap.Logger
	now    func() time.Time
}

func newRootCmd() *cobra.Command {
	return newRootCmdFor(&app{now: time.Now})
}

func newRootCmdFor(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "eosgen",
		Short: "Deterministic fixture generator for the EtherionOS dashboard",
		Long: `eosgen writes board.json, stages.json and sensors.json for a fictitious
market dashboard. Every number is derived from SHA-256 of the project or
layer name and the cadence, so the same cadence always yields the same
documents (only updated_at changes).

Cadence: daily, tplus3 (or t+3), weekly. Anything else behaves as daily.

Run without a subcommand to generate.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
		RunE: a.runGenerate,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML config file (missing file is ignored)")
	pf.StringVarP(&a.cadence, "cadence", "c", "daily", "cadence: daily | tplus3 | weekly")
	pf.StringVarP(&a.outDir, "out", "o", "output", "output directory")
	pf.StringVar(&a.schemaVersion, "schema-version", "1.3.x", "schema_version written to board.json")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")

	addGenerateFlags(root, a)
	root.AddCommand(newGenerateCmd(a), newShowCmd(a), newConfigCmd(a))
	return root
}

// setup resolves config (defaults < file < env < flags) and builds the logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	f := cmd.Flags()
	if f.Changed("cadence") {
		cfg.Cadence = a.cadence
	}
	if f.Changed("out") {
		cfg.OutputDir = a.outDir
	}
	if f.Changed("schema-version") {
		cfg.SchemaVersion = a.schemaVersion
	}
	if f.Changed("csv") {
		cfg.CSV = a.csv
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger, err := logging.New(cfg.Logging.Level, a.verbose)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logging.WithRun(logger)

	if c := cfg.ParsedCadence(); !c.Known() {
		a.logger.Warn("unknown cadence, using daily band", zap.String("cadence", cfg.Cadence))
	}
	return nil
}
