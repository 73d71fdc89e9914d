// pang is a terminal rendition of the Pang arcade game: pop the bouncing
// balls with a grappling hook before one lands on you.
//
// Usage:
//
//	pang                 - Play (same as pang play)
//	pang play            - Play a match
//	pang defaults        - Print the default configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: from config, 30)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--config <path>      - Load configuration from a YAML file
//	--log-file <path>    - Write logs to a file (default: discarded)
//	--log-level <level>  - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pang",
	Short: "Pang - pop bouncing balls in your terminal",
	Long: `Pang is a terminal version of the arcade classic. Balls drop from
the ceiling and bounce around the arena; fire your grappling hook to split
them into smaller balls until they vanish. One touch and the game is over.

Controls:
  Left/A, Right/D  - Walk
  Space            - Fire / start
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Examples:
  pang
  pang play --seed 42
  pang play --config ./my-pang.yaml --log-file pang.log --log-level debug
  pang defaults > ~/.pang/config.yaml`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (frames per second, 0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (empty = discard)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(defaultsCmd)
}
