// Command elctl is a small cobra-based driver for the exclusion-logic engine (spec §12.2),
// grounded on cmd/nerd/main.go's root-command + persistent-flags + zap-logger-init pattern. It
// consumes structured YAML IR rather than the dotted surface syntax, since parsing that syntax is
// explicitly out of scope (spec §1).
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jgrey4296/elgo/internal/config"
	"github.com/jgrey4296/elgo/internal/logging"
	"github.com/jgrey4296/elgo/internal/replay"
	"github.com/jgrey4296/elgo/pkg/engine"
)

var (
	verbose    bool
	configPath string
	logger     *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "elctl",
	Short: "elctl drives an exclusion-logic engine from structured YAML fact documents",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := "info"
		if verbose {
			level = "debug"
		}
		l, err := logging.New(level, "text")
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var replayCmd = &cobra.Command{
	Use:   "replay <file.yaml>",
	Short: "assert/retract every fact in a YAML document in order, printing each result",
	Args:  cobra.ExactArgs(1),
	RunE:  runReplay,
}

var statsCmd = &cobra.Command{
	Use:   "stats <file.yaml>",
	Short: "replay a YAML document then print engine stats",
	Args:  cobra.ExactArgs(1),
	RunE:  runStats,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to engine config YAML")
	rootCmd.AddCommand(replayCmd, statsCmd)
}

func buildEngine() (*engine.Engine, error) {
	cfg := config.DefaultConfig()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	return engine.New(cfg, logger), nil
}

func runReplay(cmd *cobra.Command, args []string) error {
	eng, err := buildEngine()
	if err != nil {
		return err
	}
	doc, err := replay.LoadFile(args[0])
	if err != nil {
		return err
	}
	facts, err := doc.ToFacts()
	if err != nil {
		return err
	}
	for i, f := range facts {
		result := eng.Dispatch(f)
		fmt.Fprintf(cmd.OutOrStdout(), "[%d] ok=%v nodes=%d\n", i, result.Ok, len(result.Nodes))
	}
	return nil
}

func runStats(cmd *cobra.Command, args []string) error {
	eng, err := buildEngine()
	if err != nil {
		return err
	}
	doc, err := replay.LoadFile(args[0])
	if err != nil {
		return err
	}
	facts, err := doc.ToFacts()
	if err != nil {
		return err
	}
	for _, f := range facts {
		eng.Dispatch(f)
	}
	stats, err := eng.Stats()
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "nodes=%d maxDepth=%d leaves=%d rules=%d history=%d\n",
		stats.NodeCount, stats.MaxDepth, stats.LeafCount, stats.RuleCount, stats.HistoryLen)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
