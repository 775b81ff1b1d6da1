package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zhubert/tally/internal/config"
	"github.com/zhubert/tally/internal/logger"
)

var skipConfirm bool

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove saved preferences and log files",
	Long: `Removes the config file (saved theme and first-run state) and the
debug log. It will prompt for confirmation before proceeding unless the
--yes flag is used.`,
	RunE: runClean,
}

func init() {
	cleanCmd.Flags().BoolVarP(&skipConfirm, "yes", "y", false, "Skip confirmation prompt")
	rootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, args []string) error {
	return runCleanWithReader(os.Stdin)
}

// runCleanWithReader allows injecting a reader for testing
func runCleanWithReader(input io.Reader) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	configExists := false
	if _, err := os.Stat(cfg.Path()); err == nil {
		configExists = true
	}

	if !configExists {
		fmt.Println("Nothing to clean.")
		// Logs may still exist even without a config file
		if cleared, _ := logger.ClearLogs(); cleared > 0 {
			fmt.Printf("Removed %d log file(s).\n", cleared)
		}
		return nil
	}

	fmt.Println("This will remove:")
	fmt.Printf("  - %s\n", cfg.Path())
	fmt.Printf("  - %s\n", logger.DefaultLogPath)

	if !skipConfirm {
		if !confirm(input, "Continue?") {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if err := os.Remove(cfg.Path()); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("error removing config: %w", err)
	}

	logsCleared, err := logger.ClearLogs()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: error clearing logs: %v\n", err)
	}

	fmt.Println()
	fmt.Println("Cleaned:")
	fmt.Println("  - preferences removed")
	if logsCleared > 0 {
		fmt.Printf("  - %d log file(s) removed\n", logsCleared)
	}

	return nil
}

// confirm prompts the user for y/n confirmation
func confirm(input io.Reader, prompt string) bool {
	reader := bufio.NewReader(input)
	fmt.Printf("%s [y/N]: ", prompt)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes"
}
