package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newTestcaseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "testcase",
		Short: "Inspect and manage generated test cases",
	}
	cmd.AddCommand(newTestcaseListCmd())
	cmd.AddCommand(newTestcaseApproveCmd())
	cmd.AddCommand(newTestcaseDeleteCmd())
	cmd.AddCommand(newTestcaseExportCmd())
	return cmd
}

func newTestcaseListCmd() *cobra.Command {
	var feature string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a feature's test cases",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, c, err := requireSession(cmd)
			if err != nil {
				return err
			}
			cases, err := c.ListTestCases(cmd.Context(), feature)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(cases) == 0 {
				_, _ = fmt.Fprintln(out, "No test cases yet")
				return nil
			}
			for _, tc := range cases {
				_, _ = keyColor.Fprintf(out, "%s", tc.ID)
				_, _ = fmt.Fprintf(out, "  [%s/%s] %s (%s, %d steps)\n", tc.Priority, tc.Status, tc.Title, tc.TestType, len(tc.Steps))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&feature, "feature", "", "Feature ID")
	_ = cmd.MarkFlagRequired("feature")
	return cmd
}

func newTestcaseApproveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "approve <testcase-id>",
		Short: "Approve a generated test case",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, c, err := requireSession(cmd)
			if err != nil {
				return err
			}
			tc, err := c.ApproveTestCase(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			_, _ = successColor.Fprintf(cmd.OutOrStdout(), "Approved %q (%s)\n", tc.Title, tc.Status)
			return nil
		},
	}
}

func newTestcaseDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <testcase-id>",
		Short: "Delete a test case",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, c, err := requireSession(cmd)
			if err != nil {
				return err
			}
			if err := c.DeleteTestCase(cmd.Context(), args[0]); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted test case %s\n", args[0])
			return nil
		},
	}
}

func newTestcaseExportCmd() *cobra.Command {
	var feature, outPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a feature's test cases to a YAML file",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, c, err := requireSession(cmd)
			if err != nil {
				return err
			}
			cases, err := c.ListTestCases(cmd.Context(), feature)
			if err != nil {
				return err
			}
			data, err := yaml.Marshal(cases)
			if err != nil {
				return err
			}
			if err := os.WriteFile(outPath, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", outPath, err)
			}
			_, _ = successColor.Fprintf(cmd.OutOrStdout(), "Exported %d test cases to %s\n", len(cases), outPath)
			return nil
		},
	}
	cmd.Flags().StringVar(&feature, "feature", "", "Feature ID")
	cmd.Flags().StringVar(&outPath, "out", "", "Output file path")
	_ = cmd.MarkFlagRequired("feature")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}
