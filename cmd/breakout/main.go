// breakout is a terminal Breakout game.
//
// Usage:
//
//	breakout list              - List available variants
//	breakout play [variant]    - Play a variant (default: breakout)
//	breakout menu              - Pick variants interactively
//	breakout serve             - Start SSH server for remote play
//	breakout scores <variant>  - Show high scores for a variant
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.breakout/scores.db)
//	--config <path>       - Custom breakout.yaml
//	--difficulty <name>   - easy, normal or hard
//	--layout <path>       - Brick layout YAML for the default variant
//	--log <path>          - Write debug logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLayout     string
	flagLogPath    string
)

var (
	logger     = log.New(io.Discard)
	logFile    *os.File
	difficulty config.DifficultyPreset
)

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "breakout",
	Short: "Breakout - bounce a ball, break the bricks",
	Long: `Breakout in your terminal.

Available commands:
  list     - Show all available variants
  play     - Play a variant directly
  menu     - Interactive variant picker
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  breakout play
  breakout play breakout_fortress --difficulty hard
  breakout play --layout ./arrow.yaml
  breakout menu
  breakout serve --ssh :2222
  breakout scores breakout_classic`,
	SilenceUsage:      true,
	PersistentPreRunE: setupGlobals,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.breakout/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom breakout.yaml")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLayout, "layout", "", "Brick layout YAML for the default variant")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write debug logs to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// setupGlobals applies the global flags to the game package before any
// variant is created.
func setupGlobals(_ *cobra.Command, _ []string) error {
	if flagLogPath != "" {
		f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		logFile = f
		logger = log.NewWithOptions(f, log.Options{
			ReportTimestamp: true,
			Level:           log.DebugLevel,
			Prefix:          "breakout",
		})
	}
	breakout.SetLogger(logger)

	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return err
	}
	difficulty = preset
	breakout.SetDifficultyPreset(preset)
	breakout.SetConfigPath(flagConfig)

	if flagLayout != "" {
		lf, err := config.LoadLayoutFile(flagLayout)
		if err != nil {
			return err
		}
		breakout.SetLayout(breakout.LayoutFromFile(lf))
		logger.Debug("custom layout", "id", lf.ID, "rows", len(lf.Rows))
	}
	return nil
}
