package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"doom-fire/internal/app"
	"doom-fire/internal/config"
	"doom-fire/internal/term"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	configFile string
	logLevel   string
	logFile    string
	overrides  map[string]string
)

func main() {
	cfg := config.DefaultConfig()

	rootCmd := &cobra.Command{
		Use:           "doomfire",
		Short:         "interactive doom fire effect",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig(cmd.Flags(), cfg)
		},
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to this file instead of stderr")
	rootCmd.PersistentFlags().StringToStringVar(&overrides, "set", nil, "fire settings as key=value (w, h, seed, tps, radius, falloff)")
	cfg.Bind(rootCmd.PersistentFlags())

	windowCmd := &cobra.Command{
		Use:   "window",
		Short: "open the fire in a window",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, closeLog, err := newLogger(os.Stderr)
			if err != nil {
				return err
			}
			defer closeLog()
			return app.Run(cfg, logger)
		},
	}

	termCmd := &cobra.Command{
		Use:   "term",
		Short: "run the fire in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			// stderr shares the tty with the screen.
			logger, closeLog, err := newLogger(io.Discard)
			if err != nil {
				return err
			}
			defer closeLog()
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()
			return term.Run(ctx, cfg, logger)
		},
	}

	rootCmd.AddCommand(windowCmd, termCmd, newRecordCmd(cfg), newProfileCmd(cfg), newConfigCmd(cfg))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// loadConfig replaces cfg with the --config file, if any, and reapplies the
// flags given on the command line so they win over the file. --set pairs
// are applied last.
func loadConfig(fs *pflag.FlagSet, cfg *config.Config) error {
	if configFile != "" {
		changed := map[string]string{}
		fs.Visit(func(f *pflag.Flag) {
			if f.Name != "set" {
				changed[f.Name] = f.Value.String()
			}
		})

		loaded, err := config.Load(configFile)
		if err != nil {
			return err
		}
		*cfg = *loaded
		for name, value := range changed {
			if err := fs.Set(name, value); err != nil {
				return err
			}
		}
	}
	cfg.Fire = cfg.Fire.Apply(overrides)
	return cfg.Validate()
}

// newLogger builds a text logger at --log-level writing to --log-file, or
// to fallback when no file is set.
func newLogger(fallback io.Writer) (*slog.Logger, func(), error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(logLevel)); err != nil {
		return nil, nil, fmt.Errorf("log level: %w", err)
	}
	w, closer := fallback, func() {}
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, err
		}
		w, closer = f, func() { f.Close() }
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), closer, nil
}
