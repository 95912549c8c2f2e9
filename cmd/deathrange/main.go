// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the deathrange CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/deathrange/internal/logging"
	"github.com/pdiddy/deathrange/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	// cfg is the effective configuration, loaded before every command.
	cfg = types.DefaultConfig()

	// log receives diagnostics such as unparsable dates.
	log = logging.NewNop()
)

// rootCmd is the base command for the deathrange CLI.
var rootCmd = &cobra.Command{
	Use:   "deathrange",
	Short: "List people in a GEDCOM file who died within a date range",
	Long: `deathrange reads individual records from a GEDCOM file and lists the
people whose death date falls inside an interval. The interval is given
directly with --start and --end, or taken from one person's own birth and
death dates with --person.

Dates are free text. Exact dates ("14 FEB 1879"), partial dates ("JAN 1983",
"1904"), ISO dates and qualified dates ("ABT 1850") are all accepted; each
is normalized with a fidelity marker recording how precise it really was.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := loadConfig()
		if err != nil {
			return err
		}
		cfg = loaded
		log = logging.New(cfg.Log, cmd.ErrOrStderr())
		if used := viper.ConfigFileUsed(); used != "" {
			log.Info("using config file", logging.String("path", used))
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = log.Sync()
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default: ./deathrange.yaml or ~/.config/deathrange/config.yaml)")
	flags.StringP("file", "f", "", "GEDCOM source file")
	flags.String("format", "", "output format: text, table, json or yaml")
	flags.String("log-level", "", "diagnostic level: debug, info, warn or error")
	flags.Int("current-year", 0, "latest year accepted as a bare modern year (0 = this year)")

	_ = viper.BindPFlag("source", flags.Lookup("file"))
	_ = viper.BindPFlag("query.format", flags.Lookup("format"))
	_ = viper.BindPFlag("log.level", flags.Lookup("log-level"))
	_ = viper.BindPFlag("query.current_year", flags.Lookup("current-year"))

	defaults := types.DefaultConfig()
	viper.SetDefault("query.format", string(defaults.Query.Format))
	viper.SetDefault("log.level", defaults.Log.Level)
	viper.SetDefault("log.development", defaults.Log.Development)
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("deathrange")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "deathrange"))
		}
	}

	viper.SetEnvPrefix("DEATHRANGE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil && cfgFile != "" {
		fmt.Fprintf(os.Stderr, "warning: reading config %s: %v\n", cfgFile, err)
	}
}

// loadConfig decodes the merged flag, env, file and default settings.
func loadConfig() (types.Config, error) {
	var c types.Config
	if err := viper.Unmarshal(&c); err != nil {
		return types.Config{}, fmt.Errorf("decoding configuration: %w", err)
	}
	if c.Query.Format == "" {
		c.Query.Format = types.OutputText
	}
	return c, nil
}

// currentYear returns the configured year bound, reading the clock only
// when none is set.
func currentYear(c types.Config) int {
	if c.Query.CurrentYear > 0 {
		return c.Query.CurrentYear
	}
	return time.Now().Year()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
