// Package core provides a small, stable facade over polyscan's internal
// engine for external integrations. It deliberately re-exports a narrow API
// surface so other tools can depend on a stable import path without reaching
// into internal packages.
//
// Example:
//
//	cfg := core.Config{Root: ".", Recursive: true, DefaultExcludes: true}
//	sum, err := core.Scan(context.Background(), cfg)
//	if err != nil { /* handle */ }
//	_ = core.MarshalSummary(os.Stdout, sum)
package core
