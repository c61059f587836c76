package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"taskrouter/internal/usage"

	"github.com/spf13/cobra"
)

// usageCmd prints accumulated token usage.
var usageCmd = &cobra.Command{
	Use:   "usage",
	Short: "Show accumulated token usage",
	RunE:  runUsage,
}

func runUsage(cmd *cobra.Command, args []string) error {
	tracker, err := usage.NewTracker(workspace)
	if err != nil {
		return err
	}

	stats := tracker.Stats()
	fmt.Printf("Total tokens: %d (in: %d, out: %d)\n\n", stats.Total.Total, stats.Total.Input, stats.Total.Output)

	printBreakdown("By domain", stats.ByDomain)
	printBreakdown("By operation", stats.ByOperation)
	printBreakdown("By model", stats.ByModel)
	return nil
}

func printBreakdown(title string, counts map[string]usage.TokenCounts) {
	if len(counts) == 0 {
		return
	}

	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fmt.Println(title + ":")
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "  NAME\tIN\tOUT\tTOTAL")
	for _, k := range keys {
		c := counts[k]
		fmt.Fprintf(w, "  %s\t%d\t%d\t%d\n", k, c.Input, c.Output, c.Total)
	}
	w.Flush()
	fmt.Println()
}
