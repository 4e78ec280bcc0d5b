package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/dshills/nighttype/internal/config"
)

var version = "0.1.0"

const toolName = "nighttype"

// app carries the state shared by all commands.
type app struct {
	cfgPath string
	verbose bool

	cfg    *config.Config
	log    *zap.Logger
	stdout io.Writer
}

func newApp() *app {
	return &app{log: zap.NewNop(), stdout: os.Stdout}
}

// setup builds the logger and loads the config file.
func (a *app) setup() error {
	zc := zap.NewProductionConfig()
	if a.verbose {
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := zc.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.log = logger

	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return exitError(3, "failed to load config: %v", err)
	}
	a.cfg = cfg
	a.log.Debug("config loaded", zap.String("file", cfg.File))
	return nil
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           toolName,
		Short:         "Find your night personality type and share it as a card",
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
	}
	root.PersistentFlags().StringVar(&a.cfgPath, "config", "", "Config file (default: ./nighttype.yaml or ~/.config/nighttype/nighttype.yaml)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Log processing steps to stderr")

	root.AddCommand(
		newQuizCmd(a),
		newScoreCmd(a),
		newTypesCmd(a),
		newShowCmd(a),
		newCompatCmd(a),
		newMatchesCmd(a),
		newCardCmd(a),
		newGalleryCmd(a),
		newShareCmd(a),
	)
	return root
}

func main() {
	if err := newRootCmd(newApp()).Execute(); err != nil {
		var ee *exitErr
		if errors.As(err, &ee) {
			fmt.Fprintln(os.Stderr, ee.msg)
			os.Exit(ee.code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
