package main

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"MiniStock/internal/config"
	"MiniStock/internal/inventory"
	"MiniStock/internal/menu"
	"MiniStock/pkg/kit"
)

const service = "inventory"

// version is set at build time via -ldflags.
var version = "dev"

type rootFlags struct {
	configPath string
	logLevel   string
	logOutput  string
	currency   string
	stats      bool
}

func newRootCmd() *cobra.Command {
	var flags rootFlags

	cmd := &cobra.Command{
		Use:           "inventory",
		Short:         "Interactive in-memory product inventory",
		Long:          "inventory runs a text menu to add, remove, update, search and list\nproduct records held in memory for the duration of the session.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRoot(cmd, flags)
		},
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		Version: version,
	}

	f := cmd.Flags()
	f.StringVar(&flags.configPath, "config", "", "YAML config file (default $"+config.EnvPath+")")
	f.StringVar(&flags.logLevel, "log-level", "", "log level: debug, info, warn, error")
	f.StringVar(&flags.logOutput, "log-output", "", "log destination: stderr, stdout or a file path")
	f.StringVar(&flags.currency, "currency", "", "currency symbol shown before prices")
	f.BoolVar(&flags.stats, "stats", false, "print an operation summary on exit")

	return cmd
}

func runRoot(cmd *cobra.Command, flags rootFlags) error {
	cfg, err := loadConfig(cmd, flags)
	if err != nil {
		return err
	}

	log, err := kit.NewLogger(service, kit.LogOptions{
		Level:     cfg.LogLevel,
		Output:    cfg.LogOutput,
		SessionID: uuid.NewString(),
	})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	reg := prometheus.NewRegistry()
	store := inventory.NewInstrumented(inventory.NewStore(), log, kit.NewMetrics(reg))

	s := &menu.Session{
		Store:    store,
		In:       cmd.InOrStdin(),
		Out:      cmd.OutOrStdout(),
		Log:      log,
		Currency: cfg.Currency,
	}

	if err := kit.RunUntilSignal(cmd.Context(), s.Run, log); err != nil {
		log.Error("session failed", zap.Error(err))
		return err
	}

	if cfg.Stats {
		return printStats(cmd.OutOrStdout(), reg)
	}
	return nil
}

// loadConfig passes explicitly set flags to config.Load as the top layer.
func loadConfig(cmd *cobra.Command, flags rootFlags) (config.Config, error) {
	var o config.Overrides

	f := cmd.Flags()
	if f.Changed("log-level") {
		o.LogLevel = &flags.logLevel
	}
	if f.Changed("log-output") {
		o.LogOutput = &flags.logOutput
	}
	if f.Changed("currency") {
		o.Currency = &flags.currency
	}
	if f.Changed("stats") {
		o.Stats = &flags.stats
	}
	return config.Load(flags.configPath, o)
}

func printStats(w io.Writer, g prometheus.Gatherer) error {
	counts, err := kit.OperationCounts(g)
	if err != nil {
		return fmt.Errorf("gather stats: %w", err)
	}
	if len(counts) == 0 {
		fmt.Fprintln(w, "No operations recorded.")
		return nil
	}

	t := kit.NewTable("Operation", "Outcome", "Count")
	for _, c := range counts {
		t.Row(c.Op, c.Outcome, c.Count)
	}
	t.AlignRight(3)
	fmt.Fprintln(w, t.String())
	return nil
}
