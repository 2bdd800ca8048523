// Package main is the orc command-line tool: it wires orc.Settings to cobra
// flags and an optional viper-loaded TOML config file, drives orc.Run, and
// renders the resulting []odrv.Report to stdout. Grounded on
// Manu343726-cucaracha/cmd/root.go's RootCmd/Execute/initConfig shape (a
// bare root command, cobra.OnInitialize wiring viper, a config-file flag
// falling back to a well-known name in the user's home directory).
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var (
	flagGracefulExit       bool
	flagMaxViolationCount  int
	flagLogLevel           string
	flagParallelProcessing bool
	flagSymbolIgnore       []string
	flagViolationReport    []string
	flagViolationIgnore    []string
	flagFilterRedundant    bool
	flagOutputFileMode     string
	flagNoColor            bool
)

var rootCmd = &cobra.Command{
	Use:   "orc <input>...",
	Short: "Detect One Definition Rule violations across Mach-O object files",
	Long: `orc parses the DWARF debug info embedded in Mach-O objects, fat
binaries, and BSD archives (including any of these nested inside one
another), and reports symbols whose surviving definitions disagree on a
fatal attribute — the post-compile, pre-link analysis a linker itself
never performs.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runScan,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default $HOME/.orc.toml)")

	rootCmd.Flags().BoolVar(&flagGracefulExit, "graceful-exit", false, "exit 0 even when ODRVs are found")
	rootCmd.Flags().IntVar(&flagMaxViolationCount, "max-violation-count", 0, "stop after N reports (0 = unbounded)")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "warning", "non-ODRV output verbosity: silent, warning, info, verbose")
	rootCmd.Flags().BoolVar(&flagParallelProcessing, "parallel-processing", true, "process inputs across a worker pool")
	rootCmd.Flags().StringSliceVar(&flagSymbolIgnore, "symbol-ignore", nil, "symbols to skip entirely")
	rootCmd.Flags().StringSliceVar(&flagViolationReport, "violation-report", nil, "whitelist of \"<tag>:<attr>\" categories")
	rootCmd.Flags().StringSliceVar(&flagViolationIgnore, "violation-ignore", nil, "blacklist of \"<tag>:<attr>\" categories")
	rootCmd.Flags().BoolVar(&flagFilterRedundant, "filter-redundant", true, "collapse chain entries with equal fatal-attribute hash")
	rootCmd.Flags().StringVar(&flagOutputFileMode, "output-file-mode", "text", "report serialization: text or json")
	rootCmd.Flags().BoolVar(&flagNoColor, "no-color", false, "disable colorized output even on a terminal")

	for _, name := range []string{
		"graceful-exit", "max-violation-count", "log-level", "parallel-processing",
		"symbol-ignore", "violation-report", "violation-ignore", "filter-redundant",
		"output-file-mode",
	} {
		_ = viper.BindPFlag(name, rootCmd.Flags().Lookup(name))
	}

	cobra.OnInitialize(initConfig)
}

// initConfig reads an optional TOML config file, mirroring cucaracha's
// cmd/root.go: an explicit --config path, or else a well-known dotfile in
// the user's home directory, and otherwise no config file at all (every
// option already has a flag default).
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("toml")
		viper.SetConfigName(".orc")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
