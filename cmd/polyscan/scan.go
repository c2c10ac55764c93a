package polyscan

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	term "golang.org/x/term"

	"github.com/polyscan/polyscan/internal/config"
	"github.com/polyscan/polyscan/internal/engine"
	"github.com/polyscan/polyscan/internal/logging"
	"github.com/polyscan/polyscan/internal/report"
	"github.com/polyscan/polyscan/internal/rules"
	"github.com/polyscan/polyscan/internal/types"
	"github.com/polyscan/polyscan/internal/update"
	"github.com/polyscan/polyscan/pkg/core"
)

var (
	flagPath            string
	flagInclude         string
	flagExclude         string
	flagMaxBytes        int64
	flagRules           string
	flagRecursive       bool
	flagDefaultExcludes bool
	flagNoSnippets      bool
)

func init() {
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan a directory tree for rule violations",
		RunE:  runScan,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().StringVarP(&flagPath, "path", "p", ".", "path to scan")
	cmd.Flags().StringVar(&flagInclude, "include", "", "comma-separated include globs")
	cmd.Flags().StringVar(&flagExclude, "exclude", "", "comma-separated exclude globs")
	cmd.Flags().Int64Var(&flagMaxBytes, "max-bytes", 1<<20, "skip files larger than this")
	cmd.Flags().StringVar(&flagRules, "rules", "", "path to a custom YAML rule catalog")
	cmd.Flags().BoolVar(&flagRecursive, "recursive", true, "descend into subdirectories")
	cmd.Flags().BoolVar(&flagDefaultExcludes, "default-excludes", true, "apply built-in exclude list (node_modules, vendor, generated files, etc.)")
	cmd.Flags().BoolVar(&flagNoSnippets, "no-snippets", false, "disable syntax-highlighted snippets in the report")
}

func runScan(cmd *cobra.Command, _ []string) error {
	abs, _ := filepath.Abs(flagPath)

	// Load configs: CLI > local > global
	var gcfg, lcfg config.FileConfig
	if c, err := config.LoadGlobal(); err == nil {
		gcfg = c
	}
	if c, err := config.LoadLocal(abs); err == nil {
		lcfg = c
	}

	log := logging.New(pickBool(flagDebug, lcfg.Debug, gcfg.Debug))
	defer func() { _ = log.Sync() }()

	cat, err := resolveCatalog(pickString(flagRules, lcfg.Rules, gcfg.Rules))
	if err != nil {
		return err
	}

	noColor := pickBool(flagNoColor, lcfg.NoColor, gcfg.NoColor)
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		noColor = true
	}

	failOn := pickString(flagFailOn, lcfg.FailOn, gcfg.FailOn)
	var failSev types.Severity
	if failOn != "" {
		failSev, err = types.ParseSeverity(failOn)
		if err != nil {
			return err
		}
	}

	cfg := engine.Config{
		Root:            abs,
		Recursive:       pickBoolDefault(cmd.Flags().Changed("recursive"), flagRecursive, lcfg.Recursive, gcfg.Recursive, true),
		IncludeGlobs:    pickString(flagInclude, lcfg.Include, gcfg.Include),
		ExcludeGlobs:    pickString(flagExclude, lcfg.Exclude, gcfg.Exclude),
		MaxBytes:        pickInt64Default(cmd.Flags().Changed("max-bytes"), flagMaxBytes, lcfg.MaxBytes, gcfg.MaxBytes, 1<<20),
		Threads:         pickInt(flagThreads, lcfg.Threads, gcfg.Threads),
		DefaultExcludes: pickBoolDefault(cmd.Flags().Changed("default-excludes"), flagDefaultExcludes, lcfg.DefaultExcludes, gcfg.DefaultExcludes, true),
		Catalog:         cat,
		Log:             log,
	}

	if !flagJSON && !flagSARIF {
		if !flagNoUpdateCheck {
			if latest, newer, _ := update.Check(version, false); newer && latest != "" {
				fmt.Fprintf(os.Stderr, "(new version available: v%s)  run 'polyscan --self-update' to upgrade\n", latest)
			}
		}
		if flagSelfUpdate {
			if reportSelfUpdate(os.Stderr, selfUpdate) {
				return nil
			}
		}
		fmt.Fprintf(os.Stderr, "Scanning %s with %d rules...\n", abs, cat.Len())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	started := time.Now()
	sum, err := engine.Scan(ctx, cfg)
	if err != nil {
		return fmt.Errorf("scan error: %w", err)
	}

	switch {
	case flagSARIF:
		if err := report.WriteSARIF(os.Stdout, sum, cat, version); err != nil {
			return fmt.Errorf("sarif error: %w", err)
		}
	case flagJSON:
		if err := core.MarshalSummary(os.Stdout, sum); err != nil {
			return err
		}
	default:
		report.PrintSummary(os.Stdout, sum, cat, report.PrintOptions{
			NoColor:  noColor,
			Snippets: !flagNoSnippets,
			Duration: time.Since(started),
		})
	}

	if failOn != "" && hasAtLeast(sum, failSev) {
		return errFailOn
	}
	return nil
}

func resolveCatalog(path string) (*rules.Catalog, error) {
	if path == "" {
		return rules.Builtin()
	}
	return rules.LoadFile(path)
}

func hasAtLeast(sum types.ScanSummary, min types.Severity) bool {
	for sev, n := range sum.CountsBySeverity {
		if n > 0 && sev.AtLeast(min) {
			return true
		}
	}
	return false
}
