// sim runs the game without a window.
//
// Usage:
//
//	sim run                  - Play with the built-in autopilot
//	sim run --replay <file>  - Play back a recorded input script
//	sim run --record[=file]  - Record input (default name: replay_<time>.json)
//	sim verify <file>        - Replay a recording and check its final digest
//
// Global flags:
//
//	--seed <value>   - RNG seed (0 = random based on time)
//	--config <path>  - Game config YAML (default: built-in)
//	--verbose        - Log every wave and escape
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

type globalFlags struct {
	seed    int64
	config  string
	verbose bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:   "sim",
		Short: "Headless space shooter simulator",
		Long: `sim steps the space shooter without opening a window.

It uses the same rules as the game. A run with the same seed and the same
input always ends in the same state, which is printed as a digest.

Examples:
  sim run --seed 42 --ticks 3600
  sim run --seed 42 --record run.json
  sim run --replay run.json
  sim verify run.json`,
		SilenceUsage: true,
	}

	root.PersistentFlags().Int64Var(&flags.seed, "seed", 0, "RNG seed (0 = random based on time)")
	root.PersistentFlags().StringVar(&flags.config, "config", "", "Path to game config YAML")
	root.PersistentFlags().BoolVar(&flags.verbose, "verbose", false, "Log waves and escapes")

	root.AddCommand(newRunCmd(flags))
	root.AddCommand(newVerifyCmd(flags))
	return root
}

func newLogger(flags *globalFlags) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "sim",
	})
	if flags.verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}
