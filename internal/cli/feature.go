package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ShankarTarento/AI-Powered-Test-Case-Generator/pkg/api"
	"github.com/ShankarTarento/AI-Powered-Test-Case-Generator/pkg/models"
)

func newFeatureCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "feature",
		Short: "Manage features and stories",
	}
	cmd.AddCommand(newFeatureListCmd())
	cmd.AddCommand(newFeatureCreateCmd())
	cmd.AddCommand(newFeatureUpdateCmd())
	cmd.AddCommand(newFeatureDeleteCmd())
	return cmd
}

func newFeatureListCmd() *cobra.Command {
	var project string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List features of a project",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, c, err := requireSession(cmd)
			if err != nil {
				return err
			}
			features, err := c.ListFeatures(cmd.Context(), project)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(features) == 0 {
				_, _ = fmt.Fprintln(out, "No features yet, sync from Jira or create one")
				return nil
			}
			for _, f := range features {
				_, _ = keyColor.Fprintf(out, "%s", f.ID)
				if f.JiraKey != "" {
					_, _ = fmt.Fprintf(out, "  %s", f.JiraKey)
				}
				_, _ = fmt.Fprintf(out, "  [%s] %s  (%d test cases)\n", f.JiraType, f.Name, f.TestCaseCount)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&project, "project", "", "Project ID")
	_ = cmd.MarkFlagRequired("project")
	return cmd
}

func newFeatureCreateCmd() *cobra.Command {
	var project, name, description, jiraType string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a feature manually",
		RunE: func(cmd *cobra.Command, args []string) error {
			switch jiraType {
			case models.JiraTypeEpic, models.JiraTypeStory, models.JiraTypeBug, models.JiraTypeTask:
			default:
				return fmt.Errorf("unknown issue type %q", jiraType)
			}
			_, c, err := requireSession(cmd)
			if err != nil {
				return err
			}
			f, err := c.CreateFeature(cmd.Context(), project, api.FeatureRequest{
				Name:        name,
				Description: description,
				JiraType:    jiraType,
			})
			if err != nil {
				return err
			}
			_, _ = successColor.Fprintf(cmd.OutOrStdout(), "Created %s %s (%s)\n", f.JiraType, f.Name, f.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&project, "project", "", "Project ID")
	cmd.Flags().StringVar(&name, "name", "", "Feature title")
	cmd.Flags().StringVar(&description, "description", "", "Feature description / user story")
	cmd.Flags().StringVar(&jiraType, "type", models.JiraTypeStory, "Issue type (epic, story, bug, task)")
	_ = cmd.MarkFlagRequired("project")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newFeatureUpdateCmd() *cobra.Command {
	var name, description string

	cmd := &cobra.Command{
		Use:   "update <feature-id>",
		Short: "Update a feature's details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" && description == "" {
				return errors.New("nothing to update, pass --name or --description")
			}
			_, c, err := requireSession(cmd)
			if err != nil {
				return err
			}
			f, err := c.UpdateFeature(cmd.Context(), args[0], api.FeatureRequest{
				Name:        name,
				Description: description,
			})
			if err != nil {
				return err
			}
			_, _ = successColor.Fprintf(cmd.OutOrStdout(), "Updated feature %s\n", f.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "New title")
	cmd.Flags().StringVar(&description, "description", "", "New description")
	return cmd
}

func newFeatureDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <feature-id>",
		Short: "Delete a feature and its test cases",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, c, err := requireSession(cmd)
			if err != nil {
				return err
			}
			if err := c.DeleteFeature(cmd.Context(), args[0]); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted feature %s\n", args[0])
			return nil
		},
	}
}
