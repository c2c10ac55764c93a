package polyscan

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagJSON          bool
	flagSARIF         bool
	flagThreads       int
	flagFailOn        string
	flagNoColor       bool
	flagDebug         bool
	flagNoUpdateCheck bool
	flagSelfUpdate    bool

	version = "0.1.0"
)

// errFailOn signals that findings at or above the fail-on threshold exist.
// The scan itself succeeded; only the exit code differs.
var errFailOn = errors.New("findings at or above fail-on threshold")

// rootCmd is the base Cobra command for the polyscan CLI.
var rootCmd = &cobra.Command{
	Use:           "polyscan",
	Short:         "Pattern-based static scanner for multi-language source trees",
	Long:          "Polyscan walks a directory tree, classifies source files by language, applies a per-language rule catalog and reports findings by severity.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the polyscan CLI. It should be called by the main package.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, errFailOn) {
			os.Exit(1)
		}
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "emit JSON")
	rootCmd.PersistentFlags().BoolVar(&flagSARIF, "sarif", false, "emit SARIF 2.1.0")
	rootCmd.PersistentFlags().IntVar(&flagThreads, "threads", 0, "worker count (0 = GOMAXPROCS)")
	rootCmd.PersistentFlags().StringVar(&flagFailOn, "fail-on", "", "exit non-zero on findings at or above critical|high|medium|low")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colorized output")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "verbose debug logging")
	rootCmd.PersistentFlags().BoolVar(&flagNoUpdateCheck, "no-update-check", false, "disable update check")
	rootCmd.PersistentFlags().BoolVar(&flagSelfUpdate, "self-update", false, "update polyscan to the latest release")
}
