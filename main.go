package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	configPath    string
	installPrefix string
	installReset  bool
	flagValues    overrides

	mainCmd = &cobra.Command{
		Use:           "irmode",
		Short:         "Two-button infrared mode controller",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	runCmd = &cobra.Command{
		Use:   "run",
		Short: "Run the mode controller until interrupted",
		RunE:  runController,
	}
	scanCmd = &cobra.Command{
		Use:   "scan",
		Short: "Send frame variants one per action button press",
		RunE:  runScan,
	}
	installCmd = &cobra.Command{
		Use:   "install",
		Short: "Install the binary, systemd unit and default config",
		RunE:  runInstall,
	}
)

// setup loads the config, applies flag overrides and builds the logger.
func setup(cmd *cobra.Command) (Config, *log.Logger, io.Closer, error) {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return Config{}, nil, nil, err
	}
	flagValues.apply(cmd.Flags(), &cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, nil, nil, err
	}
	logger, closer, err := newLogger(cfg)
	if err != nil {
		return Config{}, nil, nil, err
	}
	return cfg, logger, closer, nil
}

func runController(cmd *cobra.Command, args []string) error {
	cfg, logger, closer, err := setup(cmd)
	if err != nil {
		return err
	}
	defer closer.Close()

	if err := initGPIO(); err != nil {
		return fmt.Errorf("init GPIO: %w", err)
	}
	inputs, err := openInputs(logger, cfg.ModePin, cfg.ActionPin)
	if err != nil {
		return err
	}

	tx := NewIRTransmitter(cfg.CommandDir, cfg.Device, cfg.IRCtl, logger.WithField("Component", "ir"))
	modes := NewModeRegistry(
		NewAutoMode(tx, logger, cfg.AutoSequence, cfg.AutoInterval()),
		NewManualMode(tx, logger, cfg.ManualActive, cfg.ManualOff),
	)
	for _, m := range modes.All() {
		d := Describe(m)
		logger.WithFields(log.Fields{
			"Mode":     d.Name,
			"Commands": d.Sequence,
		}).Debugln("mode registered")
	}

	loop := NewControlLoop(cfg.Loop(), inputs, modes, logger.WithField("Component", "loop"))
	return loop.Run(cmd.Context())
}

func runScan(cmd *cobra.Command, args []string) error {
	cfg, logger, closer, err := setup(cmd)
	if err != nil {
		return err
	}
	defer closer.Close()

	if err := initGPIO(); err != nil {
		return fmt.Errorf("init GPIO: %w", err)
	}
	inputs, err := openInputs(logger, cfg.ActionPin)
	if err != nil {
		return err
	}
	tx := NewIRTransmitter(cfg.CommandDir, cfg.Device, cfg.IRCtl, logger.WithField("Component", "ir"))
	s := NewScanner(cfg.Scan, inputs, cfg.ActionPin, tx, logger.WithField("Component", "scan"))
	n, err := s.Run(cmd.Context())
	logger.WithField("Sent", n).Infoln("scan finished")
	return err
}

func runInstall(cmd *cobra.Command, args []string) error {
	if err := install(installPrefix, configPath, installReset); err != nil {
		return fmt.Errorf("install: %w", err)
	}
	return nil
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	installCmd.Flags().BoolVar(&installReset, "reset", false, "Reset config to the default, even if a config file already exists")
	installCmd.Flags().StringVarP(&installPrefix, "prefix", "p", "", "Install prefix, default is /")
	mainCmd.PersistentFlags().StringVarP(&configPath, "config", "c", DefaultConfigPath, "Path to the configuration file")
	flagValues.register(mainCmd.PersistentFlags())
	mainCmd.AddCommand(runCmd, scanCmd, installCmd)

	if err := mainCmd.ExecuteContext(ctx); err != nil {
		cancel()
		log.Fatalln(err)
	}
}
