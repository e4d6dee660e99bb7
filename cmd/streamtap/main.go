package main

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/streamtap/internal/app"
	"github.com/bft-labs/streamtap/internal/cliconfig"
	"github.com/bft-labs/streamtap/internal/journal"
	"github.com/bft-labs/streamtap/pkg/log"
)

const helpDescription = `
Tap a directory's filesystem event stream with pause/resume control.

Highlights:
  - Pause and resume delivery without tearing the tap down (SIGUSR1/SIGUSR2).
  - Nothing is buffered while paused; resuming attaches a fresh watcher.
  - Optional SQLite journal of every forwarded event and state change.
  - Configure via file ($HOME/.streamtap/config.toml), STREAMTAP_* env, or flags.
`

var exampleUsage = strings.TrimSpace(`
  streamtap --watch-dir /var/log/myapp
  streamtap --watch-dir . --ops create,write --max-event-rate 20
  streamtap --watch-dir . --journal ~/.streamtap/journal.db
  streamtap log --journal ~/.streamtap/journal.db -n 50
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	root := &cobra.Command{
		Use:     "streamtap",
		Short:   "Tap a directory's filesystem event stream with pause/resume control",
		Long:    strings.TrimSpace(helpDescription),
		Example: exampleUsage,
		Version: fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Load config file first (default $HOME/.streamtap/config.toml),
			// then env, then flag overrides.
			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}

			// Build set of changed flags
			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			if cfgFile != "" && cliconfig.FileExists(cfgFile) {
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				if err := cliconfig.ApplyFileConfig(&cfg, fc, changed); err != nil {
					return err
				}
			}

			if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
				return err
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			zerolog.SetGlobalLevel(zerolog.InfoLevel)
			if cfg.Debug {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}

			logger := log.NewZerologAdapter()
			session := app.NewSession(cfg, logger, os.Stdout)
			return session.Run(context.Background())
		},
	}

	root.Flags().StringVar(&cfgPath, "config", "", "path to TOML config file")
	root.Flags().StringVar(&cfg.WatchDir, "watch-dir", cfg.WatchDir, "directory to tap for filesystem events")
	root.Flags().StringVar(&cfg.JournalPath, "journal", cfg.JournalPath, "SQLite journal database (empty disables journaling)")
	root.Flags().StringVar(&cfg.Ops, "ops", cfg.Ops, "comma-separated operations to deliver (create,write,remove,rename,chmod)")
	root.Flags().Float64Var(&cfg.MaxEventRate, "max-event-rate", cfg.MaxEventRate, "cap forwarded events per second (0 = unlimited)")
	root.Flags().IntVar(&cfg.RateBurst, "rate-burst", cfg.RateBurst, "burst budget for the event rate cap")
	root.Flags().BoolVar(&cfg.Quiet, "quiet", cfg.Quiet, "do not print events to stdout")
	root.Flags().BoolVar(&cfg.Debug, "debug", cfg.Debug, "enable debug logging")
	root.Flags().BoolVar(&cfg.Once, "once", cfg.Once, "exit when the stream terminates")

	root.AddCommand(newLogCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newLogCmd() *cobra.Command {
	var journalPath string
	var limit int

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Print recent journal entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			if journalPath == "" {
				journalPath = os.Getenv("STREAMTAP_JOURNAL_PATH")
			}
			if journalPath == "" {
				return fmt.Errorf("journal path is required")
			}

			jnl, err := journal.Open(journalPath, "")
			if err != nil {
				return err
			}
			defer jnl.Close()

			entries, err := jnl.Recent(limit)
			if err != nil {
				return err
			}
			for _, e := range entries {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %-9s %-8s %s\n",
					e.At.Local().Format("2006-01-02 15:04:05"), e.Kind, shortSession(e.Session), e.Detail)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&journalPath, "journal", "", "SQLite journal database to read")
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "maximum entries to print")
	return cmd
}

func shortSession(s string) string {
	if len(s) > 8 {
		return s[:8]
	}
	return s
}
