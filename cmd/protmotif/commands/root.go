package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"protmotif/internal/app"
	"protmotif/internal/client"
	"protmotif/internal/services/analysis"
)

const remoteTimeout = 30 * time.Second

var (
	configPath string
	cfg        app.Config
	logger     *log.Logger
	closeLog   = func() error { return nil }
)

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	v := viper.New()

	root := &cobra.Command{
		Use:          "protmotif",
		Short:        "Protein fragment analysis: structure prediction and motif scanning",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.LoadConfig(v, configPath)
			if err != nil {
				return err
			}
			cfg = c
			logger, closeLog = app.NewLogger(cfg.Log, cmd.ErrOrStderr())
			logger.Debug("loaded config", "data_dir", cfg.DataDir, "driver", cfg.Database.Driver)
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return closeLog()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "config file (default ./protmotif.yaml or ~/.protmotif/protmotif.yaml)")
	flags.String("server", "", "server base URL for remote commands (e.g. http://localhost:3000)")
	flags.String("user", "", "user ID sent as X-User-ID")
	flags.String("log-level", "", "log level: debug, info, warn or error")
	_ = v.BindPFlag("client.server", flags.Lookup("server"))
	_ = v.BindPFlag("client.user", flags.Lookup("user"))
	_ = v.BindPFlag("log.level", flags.Lookup("log-level"))

	root.AddCommand(
		analyzeCmd(),
		structureCmd(),
		motifsCmd(),
		userCmd(),
		exportCmd(),
		submitCmd(),
		listCmd(),
		getCmd(),
		fragmentsCmd(),
		sequenceCmd(),
		deleteCmd(),
	)
	return root
}

// analyzer returns the offline analysis service under the ad-hoc ceiling.
func analyzer() *analysis.Service {
	return analysis.New(cfg.Limits.MaxProteinLength, nil)
}

// withWire opens the database for the duration of fn.
func withWire(fn func(w *app.Wire) error) error {
	w, err := app.NewWire(cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := w.Close(); err != nil {
			logger.Warn("close database", "err", err)
		}
	}()
	return fn(w)
}

// remote returns an API client, failing early when no user is configured.
func remote(cmd *cobra.Command) (*client.HTTP, context.Context, context.CancelFunc, error) {
	if cfg.Client.User == "" {
		return nil, nil, nil, fmt.Errorf("no user configured; pass --user or set %s_CLIENT_USER", app.EnvPrefix)
	}
	ctx, cancel := context.WithTimeout(cmd.Context(), remoteTimeout)
	return app.Remote(cfg.Client), ctx, cancel, nil
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
