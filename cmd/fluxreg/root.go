package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/viant/fluxreg"
	"github.com/viant/fluxreg/internal/logger"
)

const envPrefix = "FLUXREG"

type app struct {
	viper   *viper.Viper
	cfgFile string
	config  *fluxreg.Config
}

func newRootCmd() *cobra.Command {
	a := &app{viper: viper.New()}
	rootCmd := &cobra.Command{
		Use:           "fluxreg",
		Short:         "Workflow definition registry",
		Long:          `Discovers *.workflows.yaml and *.workflow_groups.yaml files, validates them and prints the resulting registry.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initConfig(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&a.cfgFile, "config", "c", "", "config file (default: ./fluxreg.yaml when present)")
	flags.StringArrayP("definitions", "d", nil, "definition directory or file URL (repeatable)")
	flags.String("log-level", "", "log level: DEBUG, INFO, WARN, ERROR or DISABLED")
	_ = a.viper.BindPFlag("definitions", flags.Lookup("definitions"))
	_ = a.viper.BindPFlag("log.level", flags.Lookup("log-level"))

	rootCmd.AddCommand(
		a.listCmd(),
		a.categoriesCmd(),
		a.validateCmd(),
		a.showCmd(),
		a.watchCmd(),
	)
	return rootCmd
}

func (a *app) initConfig(cmd *cobra.Command) error {
	defaults := fluxreg.DefaultConfig()
	v := a.viper
	v.SetDefault("definitions", defaults.Definitions)
	v.SetDefault("strict", defaults.Strict)
	v.SetDefault("cache.ttl", defaults.Cache.TTL)
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("tracing.enabled", defaults.Tracing.Enabled)
	v.SetDefault("tracing.output", defaults.Tracing.Output)
	v.SetDefault("events.buffer", defaults.Events.Buffer)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if a.cfgFile != "" {
		v.SetConfigFile(a.cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("fluxreg")
		v.SetConfigType("yaml")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if a.cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("reading config: %w", err)
		}
	}

	config := &fluxreg.Config{}
	if err := v.Unmarshal(config); err != nil {
		return fmt.Errorf("decoding config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if err := logger.Init(config.Log.Level, cmd.ErrOrStderr()); err != nil {
		return err
	}
	a.config = config
	return nil
}

func (a *app) service() (*fluxreg.Service, error) {
	if len(a.config.Definitions) == 0 {
		return nil, fmt.Errorf("no definition locations configured, use --definitions or %s_DEFINITIONS", envPrefix)
	}
	return fluxreg.NewFromConfig(a.config)
}
