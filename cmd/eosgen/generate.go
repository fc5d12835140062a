package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"etherion/internal/fixtures"
	"etherion/internal/market"
	"etherion/internal/sensors"
	"etherion/internal/types"
)

func addGenerateFlags(cmd *cobra.Command, a *app) {
	cmd.Flags().BoolVar(&a.csv, "csv", false, "also write board.csv")
	cmd.Flags().BoolVar(&a.skeleton, "skeleton", false, "write empty-collection fixtures")
}

func newGenerateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write board.json, stages.json and sensors.json",
		Args:  cobra.NoArgs,
		RunE:  a.runGenerate,
	}
	addGenerateFlags(cmd, a)
	return cmd
}

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the documents for a cadence without writing files",
		Args:  cobra.NoArgs,
		RunE:  a.runShow,
	}
}

func (a *app) snapshot() fixtures.Snapshot {
	c := a.cfg.ParsedCadence()
	if a.skeleton {
		return fixtures.Skeleton(c, a.cfg.SchemaVersion, a.now())
	}
	return fixtures.Generate(c, a.cfg.SchemaVersion, a.now())
}

func (a *app) runGenerate(cmd *cobra.Command, args []string) error {
	snap := a.snapshot()
	a.logger.Info("generating fixtures",
		zap.String("cadence", a.cfg.Cadence),
		zap.String("out", a.cfg.OutputDir),
		zap.Bool("skeleton", a.skeleton))

	paths, err := fixtures.Write(cmd.Context(), a.cfg.OutputDir, snap, fixtures.WriteOptions{CSV: a.cfg.CSV}, a.logger)
	if err != nil {
		a.logger.Error("write failed", zap.Error(err))
		return err
	}

	out := cmd.OutOrStdout()
	printBoard(out, snap.Board)
	fmt.Fprintf(out, "[ok] wrote %d files to %s | cadence=%s | updated_at=%s\n",
		len(paths), a.cfg.OutputDir, a.cfg.Cadence, snap.Board.UpdatedAt)
	return nil
}

func (a *app) runShow(cmd *cobra.Command, args []string) error {
	snap := a.snapshot()
	out := cmd.OutOrStdout()

	printBoard(out, snap.Board)
	fmt.Fprintln(out)
	for _, item := range snap.Board.Items {
		fmt.Fprintf(out, "%-8s %s\n", item.Project, market.FormatAgents(item.Agents))
	}

	fmt.Fprintln(out, "\nStages")
	for _, st := range types.Stages {
		fmt.Fprintf(out, "  %s: %s\n", st, strings.Join(snap.Stages.Stages[st].Pool, ", "))
	}
	fmt.Fprintf(out, "  watchlist: [%s] fake_start=%d\n", strings.Join(snap.Stages.Watchlist, ", "), snap.Stages.FakeStart)

	fmt.Fprintln(out, "\nSensors")
	for _, l := range snap.Sensors.Layers {
		fmt.Fprintf(out, "  %-13s q=%.3f %s\n", l.Layer, float64(l.Quality), formatProbes(l.Probes))
	}
	return nil
}

func printBoard(w io.Writer, b market.Board) {
	fmt.Fprintln(w, market.FormatHeader(b.SchemaVersion, b.Cadence, b.MarketRegime))
	fmt.Fprintln(w, market.TableHead)
	fmt.Fprintln(w, strings.Repeat("-", len(market.TableHead)+8))
	for _, it := range b.Items {
		fmt.Fprintln(w, market.FormatRow(it))
	}
}

func formatProbes(ps []sensors.Reading) string {
	parts := make([]string, 0, len(ps))
	for _, p := range ps {
		if p.K == "depth_usd" {
			if v, ok := p.V.(int); ok {
				parts = append(parts, fmt.Sprintf("%s=$%s", p.K, market.HumanUSD(float64(v))))
				continue
			}
		}
		parts = append(parts, fmt.Sprintf("%s=%v", p.K, p.V))
	}
	return strings.Join(parts, " ")
}
