// Package cli wires the gatsp commands.
package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/gatsp/internal/config"
	"github.com/katalvlaran/gatsp/internal/logging"
)

// globals holds the persistent flags shared by every subcommand.
type globals struct {
	configPath string
	logLevel   string
	logFormat  string
}

// NewRootCommand builds the gatsp command tree.
func NewRootCommand() *cobra.Command {
	g := &globals{}
	root := &cobra.Command{
		Use:           "gatsp",
		Short:         "Genetic travelling-salesman optimizer over cost graphs",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	pf := root.PersistentFlags()
	pf.StringVar(&g.configPath, "config", "", "YAML configuration file")
	pf.StringVar(&g.logLevel, "log-level", "", "override log level (debug, info, warn, error)")
	pf.StringVar(&g.logFormat, "log-format", "", "override log format (json, console)")

	root.AddCommand(
		newSolveCommand(g),
		newGenerateCommand(g),
		newHistoryCommand(g),
	)

	return root
}

// load resolves the configuration and builds the logger.
func (g *globals) load() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(g.configPath)
	if err != nil {
		return nil, nil, err
	}
	if g.logLevel != "" {
		cfg.Log.Level = g.logLevel
	}
	if g.logFormat != "" {
		cfg.Log.Format = g.logFormat
	}
	if err = cfg.Validate(); err != nil {
		return nil, nil, err
	}
	log, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, nil, err
	}

	return cfg, log, nil
}
