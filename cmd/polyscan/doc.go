// Package polyscan provides the command-line interface for the polyscan
// tool. It configures subcommands (scan, rules, languages), parses flags,
// and executes the selected command.
//
// Typical usage from a main package:
//
//	package main
//	import polyscan "github.com/polyscan/polyscan/cmd/polyscan"
//	func main() { polyscan.Execute() }
package polyscan
