package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/oxygene76/boundedplane/pkg/utils"
)

var (
	cfgFile string
	verbose bool

	config *utils.Config
	logger = zap.NewNop()
)

func main() {
	err := newRootCmd().Execute()
	_ = logger.Sync()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "planectl",
		Short: "Bounded plane coordinate tool",
		Long: `Converts points between a bounded plane's local frame and the global
frame, and tests whether global points lie on the plane within its bounds.`,
		SilenceUsage:      true,
		PersistentPreRunE: initConfig,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.planectl/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(
		initCmd(),
		demoCmd(),
		toGlobalCmd(),
		toLocalCmd(),
		insideCmd(),
	)

	return rootCmd
}

func initConfig(cmd *cobra.Command, args []string) error {
	var err error
	config, err = utils.LoadConfig(cfgFile)
	if err != nil {
		return err
	}

	if err := initLogger(config.Log); err != nil {
		return err
	}

	logger.Debug("configuration loaded", zap.String("config", cfgFile))
	return nil
}

func initLogger(cfg utils.LogConfig) error {
	if verbose {
		cfg.Level = "debug"
	}

	var err error
	logger, err = utils.NewLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	return nil
}

func initCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		// init must work even when the existing config is broken, so it
		// only sets up logging
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initLogger(utils.DefaultConfig().Log)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			output, _ := cmd.Flags().GetString("output")
			if output == "" {
				var err error
				output, err = utils.DefaultConfigPath()
				if err != nil {
					return err
				}
			}

			if err := utils.SaveConfig(output, utils.DefaultConfig()); err != nil {
				return err
			}

			logger.Info("configuration saved", zap.String("path", output))
			fmt.Fprintf(cmd.OutOrStdout(), "Configuration saved to: %s\n", output)
			return nil
		},
	}

	cmd.Flags().StringP("output", "o", "", "destination path (default is $HOME/.planectl/config.yaml)")

	return cmd
}
