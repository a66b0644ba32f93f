package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zjrosen/formatfield/internal/format"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List available formatting rules",
	Long:  `Display all formatting rules that can be chained in a field's rules setting.`,
	Run:   runRules,
}

func init() {
	rootCmd.AddCommand(rulesCmd)
}

func runRules(cmd *cobra.Command, args []string) {
	fmt.Println("Available formatting rules:")
	fmt.Println()

	kinds := format.KnownKinds()

	// Find max name length for alignment
	maxLen := 0
	for _, k := range kinds {
		if len(k) > maxLen {
			maxLen = len(k)
		}
	}

	for _, k := range kinds {
		fmt.Printf("  %-*s  %s\n", maxLen, k, format.Describe(k))
	}

	fmt.Println()
	fmt.Println("Chain rules with commas; they run left to right:")
	fmt.Println("  rules: snake,lower")
	fmt.Println()
	fmt.Println("The customregex rule needs a pattern:")
	fmt.Println("  rules: customregex")
	fmt.Println("  pattern: \"[A-Z]{0,3}\"")
}
