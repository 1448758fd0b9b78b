package main

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app holds what every subcommand shares. Each root command owns its viper
// instance and logger so commands can be built repeatedly in tests.
type app struct {
	v       *viper.Viper
	log     *logrus.Logger
	out     io.Writer
	cfgFile string
}

func newRootCommand(out, errOut io.Writer) *cobra.Command {
	a := &app{v: viper.New(), log: logrus.New(), out: out}
	a.log.Out = errOut
	a.log.SetLevel(logrus.InfoLevel)

	root := &cobra.Command{
		Use:          "ged",
		Short:        "Graph edit distance between graph documents",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.loadConfig(cmd)
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default ./ged.yaml when present)")
	pf.BoolP("verbose", "v", false, "debug logging")

	root.AddCommand(
		a.distanceCommand(),
		a.isoCommand(),
		a.checkCommand(),
		a.randomCommand(),
	)

	return root
}

// loadConfig layers flags over GED_* env over the config file.
func (a *app) loadConfig(cmd *cobra.Command) error {
	a.v.SetEnvPrefix("ged")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
		if err := a.v.ReadInConfig(); err != nil {
			return errors.Wrap(err, "config")
		}
	} else {
		a.v.SetConfigName("ged")
		a.v.SetConfigType("yaml")
		a.v.AddConfigPath(".")
		if err := a.v.ReadInConfig(); err != nil {
			var missing viper.ConfigFileNotFoundError
			if !errors.As(err, &missing) {
				return errors.Wrap(err, "config")
			}
		}
	}
	if err := a.v.BindPFlags(cmd.Flags()); err != nil {
		return errors.Wrap(err, "flags")
	}
	if err := a.v.BindPFlags(cmd.InheritedFlags()); err != nil {
		return errors.Wrap(err, "flags")
	}
	if a.v.GetBool("verbose") {
		a.log.SetLevel(logrus.DebugLevel)
	}
	if f := a.v.ConfigFileUsed(); f != "" {
		a.log.WithField("file", f).Debug("config loaded")
	}

	return nil
}
