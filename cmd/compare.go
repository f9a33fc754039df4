package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/nsxbet/slowql/pkg/reviewer"
)

var compareCmd = &cobra.Command{
	Use:   "compare <before.sql> <after.sql>",
	Short: "Compare the findings of a query and its rewrite",
	Long: `Analyze an original query and its optimized rewrite and report how
many findings the rewrite resolves.`,
	Args: cobra.ExactArgs(2),
	RunE: runCompare,
}

func init() {
	rootCmd.AddCommand(compareCmd)
	compareCmd.Flags().StringP("output", "o", "text", "output format (text, json)")
}

func runCompare(cmd *cobra.Command, args []string) error {
	setupLogger()

	before, err := os.ReadFile(args[0])
	if err != nil {
		return errors.Wrapf(err, "failed to read SQL file: %s", args[0])
	}
	after, err := os.ReadFile(args[1])
	if err != nil {
		return errors.Wrapf(err, "failed to read SQL file: %s", args[1])
	}

	cfg, err := loadConfiguration()
	if err != nil {
		return err
	}
	c, err := reviewer.New().WithConfigObject(cfg).Compare(cmd.Context(), string(before), string(after))
	if err != nil {
		return err
	}
	format, _ := cmd.Flags().GetString("output")
	return writeComparison(cmd.OutOrStdout(), c, format)
}

func writeComparison(w io.Writer, c *reviewer.Comparison, format string) error {
	switch strings.ToLower(format) {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(c)
	case "text", "":
		fmt.Fprintf(w, "Original issues:  %d\n", c.OriginalIssues)
		fmt.Fprintf(w, "Optimized issues: %d\n", c.OptimizedIssues)
		fmt.Fprintf(w, "Issues resolved:  %d\n", c.IssuesResolved)
		fmt.Fprintf(w, "Improvement:      %.1f%%\n", c.ImprovementPercentage)
		if len(c.RemainingIssues) > 0 {
			fmt.Fprintf(w, "Remaining:        %s\n", strings.Join(c.RemainingIssues, ", "))
		}
		return nil
	}
	return errors.Errorf("unsupported output format: %s", format)
}
