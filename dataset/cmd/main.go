package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/visionex-project/textblocks/dataset/impl"
	"github.com/visionex-project/textblocks/pkg/env"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// State shared by every command, filled in before the command runs.
type options struct {
	verbose    bool
	configFile string

	logger *log.Logger
	// Defaults overlaid with the config file and TEXTBLOCKS_* variables. Flags are applied per command.
	config impl.Config
}

func newRootCommand() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "textblocks",
		Short:         "Generate word-wrapped text-block images for OCR training",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load()
		},
	}
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&opts.configFile, "config", "", "TOML file with generator settings")

	root.AddCommand(newGenerateCommand(opts))
	root.AddCommand(newFontsCommand(opts))
	root.AddCommand(newAuditCommand(opts))
	return root
}

func (o *options) load() error {
	level := log.InfoLevel
	if o.verbose {
		level = log.DebugLevel
	}
	o.logger = newLogger(os.Stderr, level)

	// A missing .env file is fine; variables may come from the environment itself.
	env.Load()

	o.config = impl.DefaultConfig()
	if o.configFile != "" {
		if err := impl.LoadConfigFile(o.configFile, &o.config); err != nil {
			return err
		}
	}
	o.config.ApplyEnv()
	return nil
}
