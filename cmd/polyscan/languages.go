package polyscan

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/polyscan/polyscan/internal/lang"
)

func init() {
	cmd := &cobra.Command{
		Use:   "languages",
		Short: "List supported languages and their extensions",
		Run: func(_ *cobra.Command, _ []string) {
			for _, l := range lang.Supported() {
				fmt.Printf("%-12s %s\n", l, strings.Join(lang.Extensions(l), " "))
			}
		},
	}
	rootCmd.AddCommand(cmd)
}
