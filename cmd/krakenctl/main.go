package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/logrusorgru/aurora"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/lemconn/krakenlink"
	"github.com/lemconn/krakenlink/internal/config"
	"github.com/lemconn/krakenlink/kraken"
)

// app 命令共享的状态，在 PersistentPreRunE 中初始化
type app struct {
	cfgFile string
	envFile string
	output  string
	debug   bool

	cfg     *config.Config
	logger  *logrus.Logger
	client  *kraken.Client
	printer *printer
}

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, aurora.Red(fmt.Sprintf("error: %v", err)))
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:               "krakenctl",
		Short:             "Command line client for the Kraken REST API",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is ./config.yaml)")
	root.PersistentFlags().StringVar(&a.envFile, "env-file", "", "env file (default is ./.env if present)")
	root.PersistentFlags().StringVarP(&a.output, "output", "o", "", "output format: json, yaml or text")
	root.PersistentFlags().BoolVar(&a.debug, "debug", false, "log requests and responses")

	root.AddCommand(a.marketCommands()...)
	root.AddCommand(a.accountCommands()...)
	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.cfgFile, a.envFile)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("output") {
		cfg.Output.Format = a.output
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	if a.debug {
		cfg.Kraken.Debug = true
	}

	logger := cfg.NewLogger()
	logger.SetOutput(cmd.ErrOrStderr())

	if err := cfg.LoadSecrets(cmd.Context(), logger); err != nil {
		return err
	}

	client, err := krakenlink.NewClient(cfg.ClientOptions(logger)...)
	if err != nil {
		return fmt.Errorf("create client: %w", err)
	}

	a.cfg = cfg
	a.logger = logger
	a.client = client
	a.printer = newPrinter(cmd.OutOrStdout(), cfg.Output.Format, cfg.Output.Color)
	return nil
}
