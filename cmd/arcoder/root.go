package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/sbromberger/arcoder/internal/config"
	"github.com/sbromberger/arcoder/internal/server"
)

var (
	cfgFile   string
	activeCfg config.Config
)

func NewRootCmd() *cobra.Command {
	defaults := config.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "arcoder",
		Short: "Phonetic encoding and matching for transliterated Arabic names",
		Long: `arcoder converts transliterated Arabic personal names into canonical
phonetic codes so that differently spelled renderings of the same name
("Mohammed", "Muhamad", "Mohamed") can be compared for equivalence.

Two encoders are available: "arcoder" produces the set of plausible
renderings of a name; "holmes" produces a single normalized rendering.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			loaded, err := config.Load(config.LoadOptions{
				Cmd:        cmd,
				ConfigFile: cfgFile,
				Defaults:   defaults,
			})
			if err != nil {
				return err
			}
			activeCfg = loaded
			setupLogger(loaded.LogLevel)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Optional config file (yaml|toml|json)")
	config.RegisterFlags(cmd.PersistentFlags(), defaults)

	cmd.AddCommand(newEncodeCmd())
	cmd.AddCommand(newMatchCmd())
	cmd.AddCommand(newServeCmd())

	return cmd
}

// setupLogger configures the process-wide slog default logger.
func setupLogger(levelStr string) {
	lvl, err := server.ParseLogLevel(levelStr)
	if err != nil {
		lvl = slog.LevelInfo
	}
	h := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(h))
}
