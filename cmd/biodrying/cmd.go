package main

import (
	"fmt"
	"strings"

	"biodrying"
	"biodrying/sweep"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

var log = logrus.New()

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	// Options are the configuration options available to biodrying.
	options = []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
	}{
		{
			name: "config",
			usage: `
              config specifies the configuration file location.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "log-level",
			usage: `
              log-level is one of panic, fatal, error, warn, info, debug or trace.`,
			defaultVal: "info",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "input",
			usage: `
              input specifies the scenario (YAML or JSON) to simulate. It may
              be a file path or an http(s) URL.`,
			shorthand:  "i",
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{runCmd.Flags(), sweepCmd.Flags()},
		},
		{
			name: "ambient",
			usage: `
              ambient optionally specifies a CSV file with an hourly ambient
              air profile (hour,ambient_temperature,relative_humidity) that
              replaces the constant ambient conditions of the scenario.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{runCmd.Flags(), sweepCmd.Flags()},
		},
		{
			name: "strict",
			usage: `
              strict rejects malformed or out-of-range scenario fields instead
              of replacing them with defaults.`,
			defaultVal: false,
			flagsets:   []*pflag.FlagSet{runCmd.Flags(), sweepCmd.Flags()},
		},
		{
			name: "output-dir",
			usage: `
              output-dir specifies the directory results are written to.`,
			shorthand:  "o",
			defaultVal: ".",
			flagsets:   []*pflag.FlagSet{runCmd.Flags(), sweepCmd.Flags()},
		},
		{
			name: "name",
			usage: `
              name labels the stored run. A name is generated when empty.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "xlsx",
			usage: `
              xlsx additionally stores the run parameters and results as a
              spreadsheet.`,
			defaultVal: false,
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "plots",
			usage: `
              plots additionally renders PNG charts of the results.`,
			defaultVal: false,
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "flow-min",
			usage: `
              flow-min is the lowest airflow of the sweep, m3/h.`,
			defaultVal: 10.0,
			flagsets:   []*pflag.FlagSet{sweepCmd.Flags()},
		},
		{
			name: "flow-max",
			usage: `
              flow-max is the highest airflow of the sweep, m3/h.`,
			defaultVal: 100.0,
			flagsets:   []*pflag.FlagSet{sweepCmd.Flags()},
		},
		{
			name: "flow-step",
			usage: `
              flow-step is the airflow increment of the sweep, m3/h.`,
			defaultVal: 10.0,
			flagsets:   []*pflag.FlagSet{sweepCmd.Flags()},
		},
		{
			name: "criterion",
			usage: `
              criterion selects the optimized quantity: max-temperature,
              solids-degraded, degradation-per-energy (higher is better),
              final-moisture (closest to 60 %) or final-cn-ratio (closest to 25).`,
			defaultVal: sweep.MaxTemperature.String(),
			flagsets:   []*pflag.FlagSet{sweepCmd.Flags()},
		},
		{
			name: "workers",
			usage: `
              workers bounds the number of simulations run at once. 0 uses
              one per CPU.`,
			defaultVal: 0,
			flagsets:   []*pflag.FlagSet{sweepCmd.Flags()},
		},
	}

	Cfg = viper.New()
	Cfg.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	Cfg.AutomaticEnv()
	Cfg.SetEnvPrefix("BIODRYING")

	for _, option := range options {
		for i, set := range option.flagsets {
			if i != 0 { // We don't want to create the same flag twice.
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			switch option.defaultVal.(type) {
			case string:
				if option.shorthand == "" {
					set.String(option.name, option.defaultVal.(string), option.usage)
				} else {
					set.StringP(option.name, option.shorthand, option.defaultVal.(string), option.usage)
				}
			case bool:
				if option.shorthand == "" {
					set.Bool(option.name, option.defaultVal.(bool), option.usage)
				} else {
					set.BoolP(option.name, option.shorthand, option.defaultVal.(bool), option.usage)
				}
			case int:
				if option.shorthand == "" {
					set.Int(option.name, option.defaultVal.(int), option.usage)
				} else {
					set.IntP(option.name, option.shorthand, option.defaultVal.(int), option.usage)
				}
			case float64:
				if option.shorthand == "" {
					set.Float64(option.name, option.defaultVal.(float64), option.usage)
				} else {
					set.Float64P(option.name, option.shorthand, option.defaultVal.(float64), option.usage)
				}
			default:
				panic("invalid argument type")
			}
			Cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}
}

func init() {
	// Link the commands together.
	Root.AddCommand(versionCmd)
	Root.AddCommand(runCmd)
	Root.AddCommand(sweepCmd)
}

// setConfig finds and reads in the configuration file, if there is one,
// and configures logging.
func setConfig(cmd *cobra.Command) error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(cfgpath)
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("biodrying: problem reading configuration file: %v", err)
		}
	}

	level, err := logrus.ParseLevel(Cfg.GetString("log-level"))
	if err != nil {
		return fmt.Errorf("biodrying: %v", err)
	}
	log.SetLevel(level)
	log.SetOutput(cmd.ErrOrStderr())
	log.Formatter = &logrus.TextFormatter{FullTimestamp: true}
	return nil
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "biodrying",
	Short: "An hour-by-hour aerobic bio-drying simulator.",
	Long: `biodrying simulates the temperature, moisture, solids and exhaust gas of an
aerobic bio-drying (composting) pile fed with one or more organic substrates.

Configuration can be changed by using a configuration file (and providing the
path to the file using the --config flag), by using command-line arguments,
or by setting environment variables in the format 'BIODRYING_var' where 'var'
is the name of the variable to be set.`,
	DisableAutoGenTag: true,
	SilenceUsage:      true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error { return setConfig(cmd) },
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of biodrying.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("biodrying v%s\n", biodrying.Version)
	},
	DisableAutoGenTag: true,
}

// runCmd runs one simulation and stores it.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one simulation.",
	Long: `run simulates the scenario given by --input and stores the result,
labelled with --name, as result CSV and optionally as spreadsheet and charts
in --output-dir.`,
	DisableAutoGenTag: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := run(
			cmd.Context(),
			Cfg.GetString("input"),
			Cfg.GetString("ambient"),
			Cfg.GetBool("strict"),
			Cfg.GetString("output-dir"),
			Cfg.GetString("name"),
			Cfg.GetBool("xlsx"),
			Cfg.GetBool("plots"),
		)
		return err
	},
}

// sweepCmd runs a sensitivity analysis over the airflow.
var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Find the best airflow for a scenario.",
	Long: `sweep simulates the scenario given by --input once for every airflow
from --flow-min to --flow-max in steps of --flow-step, writes the criterion
values to sweep.csv in --output-dir and reports the optimal airflow.`,
	DisableAutoGenTag: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := sweep.ParseCriterion(Cfg.GetString("criterion"))
		if err != nil {
			return err
		}
		_, err = runSweep(
			cmd.Context(),
			Cfg.GetString("input"),
			Cfg.GetString("ambient"),
			Cfg.GetBool("strict"),
			Cfg.GetString("output-dir"),
			Cfg.GetFloat64("flow-min"),
			Cfg.GetFloat64("flow-max"),
			Cfg.GetFloat64("flow-step"),
			c,
			Cfg.GetInt("workers"),
		)
		return err
	},
}
