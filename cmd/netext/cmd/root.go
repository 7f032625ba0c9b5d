package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/netext/core/config"
	nxerrors "github.com/msto63/netext/core/errors"
	"github.com/msto63/netext/core/log"
)

// EnvPrefix prefixes environment overrides of configuration keys
const EnvPrefix = "NETEXT"

// app carries the state shared by all subcommands of one invocation
type app struct {
	cfgFile   string
	logLevel  string
	logFormat string

	cfg    *config.Config
	logger *log.Logger
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"log": map[string]interface{}{
			"level":  "warn",
			"format": "text",
		},
		"right": map[string]interface{}{
			"pad": "",
		},
		"vowels": map[string]interface{}{
			"color": false,
		},
	}
}

// NewRootCmd builds the netext command tree
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "netext",
		Short: "String helpers on the command line",
		Long: `netext exposes the stringx helpers as subcommands.

Commands:
  right          - last N characters, optionally left-padded
  remove-right   - strip a trailing value once
  ensure-prefix  - add a prefix unless present
  ensure-suffix  - add a suffix unless present
  replace        - replace several values in order
  remove         - remove several values in order
  format         - positional template formatting
  vowels         - count and highlight vowels

Settings are read from --config (TOML or YAML), or from netext.toml,
netext.yaml or netext.yml in the working directory or the user config
directory. Every key may be overridden
with NETEXT_* environment variables, e.g. NETEXT_LOG_LEVEL=debug.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (toml or yaml)")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "log format (json, text, console)")

	rootCmd.AddCommand(
		newRightCmd(a),
		newRemoveRightCmd(a),
		newEnsurePrefixCmd(a),
		newEnsureSuffixCmd(a),
		newReplaceCmd(a),
		newRemoveCmd(a),
		newFormatCmd(a),
		newVowelsCmd(a),
		newVersionCmd(),
	)
	return rootCmd
}

// Execute runs the root command against os.Args
func Execute() error {
	return NewRootCmd().Execute()
}

// setup loads --config, or the first netext.{toml,yaml,yml} found in the
// working or user config directory, and builds the logger. Flag values are
// written back into the configuration so every later reader sees one source.
// Environment overrides still take precedence over them.
func (a *app) setup(cmd *cobra.Command) error {
	var err error
	if a.cfgFile != "" {
		a.cfg, err = config.LoadWithOptions(a.cfgFile, config.LoadOptions{
			EnvPrefix: EnvPrefix,
			Defaults:  defaults(),
		})
	} else {
		options := config.DefaultDiscoveryOptions()
		options.EnvPrefix = EnvPrefix
		options.Defaults = defaults()
		a.cfg, err = config.Discover(options)
	}
	if err != nil {
		return err
	}

	level, err := log.ParseLevel(a.cfg.GetString("log.level"))
	if err != nil {
		return nxerrors.InvalidInput(nxerrors.ModuleCLI, "setup", a.cfg.GetString("log.level"), "log level")
	}
	format, err := log.ParseFormat(a.cfg.GetString("log.format"))
	if err != nil {
		return nxerrors.InvalidInput(nxerrors.ModuleCLI, "setup", a.cfg.GetString("log.format"), "log format")
	}

	a.attachLogger(log.NewWithConfig(log.Config{
		Level:  level,
		Format: format,
		Output: cmd.ErrOrStderr(),
		Name:   "netext",
	}))

	a.cfg.Subscribe(a.applyLogSetting)

	if a.logLevel != "" {
		if _, err := log.ParseLevel(a.logLevel); err != nil {
			return nxerrors.InvalidInput(nxerrors.ModuleCLI, "setup", a.logLevel, "log level")
		}
		a.cfg.Set("log.level", a.logLevel)
	}
	if a.logFormat != "" {
		if _, err := log.ParseFormat(a.logFormat); err != nil {
			return nxerrors.InvalidInput(nxerrors.ModuleCLI, "setup", a.logFormat, "log format")
		}
		a.cfg.Set("log.format", a.logFormat)
	}

	a.logger.Debug("command started", log.Fields{
		"command": cmd.Name(),
		"config":  a.cfg.String(),
	})
	return nil
}

// attachLogger makes logger the command logger and hands it to the
// configuration. The configuration keeps its own named clone, so it is
// attached again after every change.
func (a *app) attachLogger(logger *log.Logger) {
	a.logger = logger
	a.cfg.WithLogger(logger)
}

// applyLogSetting follows changes of log.level and log.format
func (a *app) applyLogSetting(_ any, key string) {
	switch key {
	case "log.level":
		if level, err := log.ParseLevel(a.cfg.GetString(key)); err == nil {
			a.logger.SetLevel(level)
			a.attachLogger(a.logger)
		}
	case "log.format":
		if format, err := log.ParseFormat(a.cfg.GetString(key)); err == nil {
			a.attachLogger(a.logger.WithFormat(format))
		}
	}
}

func printLine(cmd *cobra.Command, s string) {
	fmt.Fprintln(cmd.OutOrStdout(), s)
}
