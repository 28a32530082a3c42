package commands

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/portalcx/portalcx-go/pkg/portalcx"
	"github.com/spf13/cobra"
)

// NewStagesCommand creates the template stages command group.
func NewStagesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "stages",
		Aliases: []string{"stage"},
		Short:   "Manage template stages",
		Long:    "Create, list, and delete the stages of a template",
	}

	cmd.AddCommand(newStagesCreateCommand())
	cmd.AddCommand(newStagesListCommand())
	cmd.AddCommand(newStagesDeleteCommand())

	return cmd
}

func newStagesCreateCommand() *cobra.Command {
	var (
		stage      portalcx.TemplateStage
		buttonCopy string
		buttonURL  string
	)

	cmd := &cobra.Command{
		Use:   "create TEMPLATE_ID",
		Short: "Create a template stage",
		Long:  "Append a stage to a template. Stages are ordered by creation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stage.TemplateID = args[0]
			stage.StagePromptButtonCopy = optionalString(cmd, "button-copy", buttonCopy)
			stage.StagePromptButtonURL = optionalString(cmd, "button-url", buttonURL)

			err := stage.Validate()
			if err != nil {
				return err
			}

			pcx, err := createAuthenticatedClient()
			if err != nil {
				return err
			}

			result, err := pcx.CreateTemplateStage(context.Background(), &stage)
			if err != nil {
				return fmt.Errorf("failed to create stage: %w", err)
			}

			return outputResult(cmd.OutOrStdout(), result)
		},
	}

	cmd.Flags().StringVar(&stage.StageName, "name", "", "stage name")
	cmd.Flags().StringVar(&stage.StageDescription, "description", "", "stage description")
	cmd.Flags().StringVar(&buttonCopy, "button-copy", "", "prompt button text")
	cmd.Flags().StringVar(&buttonURL, "button-url", "", "prompt button URL")

	return cmd
}

func newStagesListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list TEMPLATE_ID",
		Short: "List template stages",
		Long:  "List the stages of a template in creation order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pcx, err := createAuthenticatedClient()
			if err != nil {
				return err
			}

			result, err := pcx.GetStagesByTemplate(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to list stages: %w", err)
			}

			stages, err := templateStagesFromResult(result)
			if err != nil {
				return err
			}

			return writeOutput(cmd.OutOrStdout(), stages, func(out io.Writer) error {
				return displayTemplateStagesTable(out, stages)
			})
		},
	}
}

func newStagesDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete TEMPLATE_STAGE_ID",
		Short: "Delete a template stage",
		Long:  "Delete a single stage from its template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stageID, err := parseID(args[0])
			if err != nil {
				return err
			}

			if !confirm(cmd, force, fmt.Sprintf("Really delete template stage %d?", stageID)) {
				return nil
			}

			pcx, err := createAuthenticatedClient()
			if err != nil {
				return err
			}

			result, err := pcx.DeleteTemplateStage(context.Background(), stageID)
			if err != nil {
				return fmt.Errorf("failed to delete stage: %w", err)
			}

			return outputResult(cmd.OutOrStdout(), result)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "force deletion without confirmation")

	return cmd
}

func displayTemplateStagesTable(out io.Writer, stages []portalcx.TemplateStageInfo) error {
	if len(stages) == 0 {
		_, _ = io.WriteString(out, "No stages found\n")

		return nil
	}

	table := tablewriter.NewWriter(out)
	table.Header("ID", "Name", "Description", "Button")

	for _, stage := range stages {
		_ = table.Append([]string{
			strconv.Itoa(stage.TemplateStageID),
			stage.StageName,
			stage.StageDescription,
			stage.StagePromptButtonCopy,
		})
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}
