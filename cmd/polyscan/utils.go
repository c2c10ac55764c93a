package polyscan

import (
	"fmt"
	"io"
	"runtime/debug"

	semver3 "github.com/blang/semver"
	semver "github.com/blang/semver/v4"
	"github.com/rhysd/go-github-selfupdate/selfupdate"
)

func selfUpdate() error {
	v := version
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" && len(v) == 0 {
				v = s.Value
			}
		}
	}
	ver, err := semver.ParseTolerant(v)
	if err != nil {
		ver = semver.MustParse("0.0.0")
	}
	latest, err := selfupdate.UpdateSelf(semver3.MustParse(ver.String()), "polyscan/polyscan")
	if err != nil {
		return err
	}
	_ = latest
	return nil
}

// reportSelfUpdate runs do and reports the outcome on w. It returns true
// when the binary was replaced and the current invocation should stop.
func reportSelfUpdate(w io.Writer, do func() error) bool {
	if err := do(); err != nil {
		fmt.Fprintf(w, "self-update failed: %v\n", err)
		return false
	}
	fmt.Fprintln(w, "updated to latest; re-run command")
	return true
}

func pickString(cli string, local, global *string) string {
	if cli != "" {
		return cli
	}
	if local != nil && *local != "" {
		return *local
	}
	if global != nil && *global != "" {
		return *global
	}
	return ""
}

func pickInt(cli int, local, global *int) int {
	if cli != 0 {
		return cli
	}
	if local != nil && *local != 0 {
		return *local
	}
	if global != nil && *global != 0 {
		return *global
	}
	return 0
}

// pickInt64Default falls back to def when neither the CLI nor a config file
// set the value. Needed for flags with a non-zero cobra default (max-bytes),
// where the flag value alone cannot tell "set" from "defaulted".
func pickInt64Default(cliSet bool, cli int64, local, global *int64, def int64) int64 {
	if cliSet {
		return cli
	}
	if local != nil && *local != 0 {
		return *local
	}
	if global != nil && *global != 0 {
		return *global
	}
	return def
}

func pickBool(cli bool, local, global *bool) bool {
	if cli {
		return true
	}
	if local != nil {
		return *local
	}
	if global != nil {
		return *global
	}
	return false
}

// pickBoolDefault is like pickBool but falls back to def when nothing set it.
// Needed for flags that default to true (e.g. recursive walking).
func pickBoolDefault(cliSet bool, cli bool, local, global *bool, def bool) bool {
	if cliSet {
		return cli
	}
	if local != nil {
		return *local
	}
	if global != nil {
		return *global
	}
	return def
}
