package polyscan

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/polyscan/polyscan/internal/rules"
)

func init() {
	cmd := &cobra.Command{
		Use:   "rules [id]",
		Short: "List catalog rules, or describe one by id",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			cat, err := rules.Builtin()
			if err != nil {
				return err
			}
			if len(args) == 1 {
				return describeRule(cat, args[0])
			}
			for _, id := range cat.IDs() {
				r, _ := cat.Rule(id)
				fmt.Printf("%-18s %-10s %-8s %s\n", r.ID, r.Language, r.Severity, r.Title)
			}
			return nil
		},
	}
	rootCmd.AddCommand(cmd)
}

func describeRule(cat *rules.Catalog, id string) error {
	r, ok := cat.Rule(id)
	if !ok {
		return fmt.Errorf("unknown rule id %q", id)
	}
	fmt.Printf("id:          %s\n", r.ID)
	fmt.Printf("language:    %s\n", r.Language)
	fmt.Printf("severity:    %s\n", r.Severity)
	fmt.Printf("pattern:     %s (%s)\n", r.Pattern.Source(), r.Pattern.Kind())
	fmt.Printf("title:       %s\n", r.Title)
	if r.Description != "" {
		fmt.Printf("description: %s\n", r.Description)
	}
	if r.Remediation != "" {
		fmt.Printf("remediation: %s\n", r.Remediation)
	}
	return nil
}
