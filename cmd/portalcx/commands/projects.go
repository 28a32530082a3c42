package commands

import (
	"context"
	"fmt"

	"github.com/portalcx/portalcx-go/pkg/portalcx"
	"github.com/spf13/cobra"
)

// NewProjectsCommand creates the projects command group.
func NewProjectsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "projects",
		Aliases: []string{"project", "proj"},
		Short:   "Manage projects",
		Long:    "Create and delete projects, and manage and complete their stages",
	}

	cmd.AddCommand(newProjectsCreateCommand())
	cmd.AddCommand(newProjectsDeleteCommand())
	cmd.AddCommand(newProjectsCompleteStageCommand())
	cmd.AddCommand(newProjectsCreateStageCommand())
	cmd.AddCommand(newProjectsListStagesCommand())
	cmd.AddCommand(newProjectsDeleteStageCommand())

	return cmd
}

func newProjectsCreateCommand() *cobra.Command {
	var (
		project   portalcx.Project
		address1  string
		address2  string
		city      string
		stateCode string
		zip       string
	)

	cmd := &cobra.Command{
		Use:   "create TEMPLATE_ID",
		Short: "Create a project",
		Long:  "Create a project from a template. The body encoding follows --project-encoding",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			project.TemplateID = args[0]
			project.AddressLine1 = optionalString(cmd, "address1", address1)
			project.AddressLine2 = optionalString(cmd, "address2", address2)
			project.City = optionalString(cmd, "city", city)
			project.StateCode = optionalString(cmd, "state", stateCode)
			project.Zip = optionalString(cmd, "zip", zip)

			err := project.Validate()
			if err != nil {
				return err
			}

			pcx, err := createAuthenticatedClient()
			if err != nil {
				return err
			}

			result, err := pcx.CreateProject(context.Background(), &project)
			if err != nil {
				return fmt.Errorf("failed to create project: %w", err)
			}

			if ref, refErr := portalcx.ProjectRefFromResult(result); refErr == nil {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Created project %d (portal %s)\n", ref.ProjectID, ref.PortalID)
			}

			return outputResult(cmd.OutOrStdout(), result)
		},
	}

	cmd.Flags().StringVar(&project.FirstName, "first-name", "", "customer first name")
	cmd.Flags().StringVar(&project.LastName, "last-name", "", "customer last name")
	cmd.Flags().StringVar(&project.Email, "email", "", "customer email")
	cmd.Flags().StringVar(&project.PhoneNumber, "phone", "", "customer phone number")
	cmd.Flags().StringVar(&address1, "address1", "", "address line 1")
	cmd.Flags().StringVar(&address2, "address2", "", "address line 2")
	cmd.Flags().StringVar(&city, "city", "", "city")
	cmd.Flags().StringVar(&stateCode, "state", "", "state code")
	cmd.Flags().StringVar(&zip, "zip", "", "zip code")
	cmd.Flags().BoolVar(&project.NotifyViaEmail, "notify-email", false, "notify the customer by email")
	cmd.Flags().BoolVar(&project.NotifyViaSMS, "notify-sms", false, "notify the customer by SMS")
	cmd.Flags().BoolVar(&project.CompleteFirstStage, "complete-first-stage", false, "complete the first stage on creation")
	cmd.Flags().IntVar(&project.CountryID, "country-id", 0, "country id")

	return cmd
}

func newProjectsDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete PROJECT_ID",
		Short: "Delete a project",
		Long:  "Delete a project by its integer id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID, err := parseID(args[0])
			if err != nil {
				return err
			}

			if !confirm(cmd, force, fmt.Sprintf("Really delete project %d?", projectID)) {
				return nil
			}

			pcx, err := createAuthenticatedClient()
			if err != nil {
				return err
			}

			result, err := pcx.DeleteProject(context.Background(), projectID)
			if err != nil {
				return fmt.Errorf("failed to delete project: %w", err)
			}

			return outputResult(cmd.OutOrStdout(), result)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "force deletion without confirmation")

	return cmd
}

func newProjectsCompleteStageCommand() *cobra.Command {
	var (
		projectID   int
		portalID    string
		label       string
		date        string
		notifyEmail bool
		notifySMS   bool
	)

	cmd := &cobra.Command{
		Use:   "complete-stage",
		Short: "Complete a project stage",
		Long:  "Mark a project stage as completed. Give exactly one of --project-id and --portal-id",
		RunE: func(cmd *cobra.Command, args []string) error {
			completedAt, err := parseCompletedAt(date)
			if err != nil {
				return err
			}

			completion, err := portalcx.NewStageCompletion(
				optionalInt(cmd, "project-id", projectID),
				optionalString(cmd, "portal-id", portalID),
				label,
				completedAt,
			)
			if err != nil {
				return err
			}

			completion.NotifyViaEmail = optionalBool(cmd, "notify-email", notifyEmail)
			completion.NotifyViaSMS = optionalBool(cmd, "notify-sms", notifySMS)

			pcx, err := createAuthenticatedClient()
			if err != nil {
				return err
			}

			result, err := pcx.CompleteProjectStage(context.Background(), completion)
			if err != nil {
				return fmt.Errorf("failed to complete stage: %w", err)
			}

			return outputResult(cmd.OutOrStdout(), result)
		},
	}

	cmd.Flags().IntVar(&projectID, "project-id", 0, "integer project id")
	cmd.Flags().StringVar(&portalID, "portal-id", "", "portal id")
	cmd.Flags().StringVar(&label, "label", "", "label of the completed stage")
	cmd.Flags().StringVar(&date, "date", "", "completion time in RFC 3339 (default now)")
	cmd.Flags().BoolVar(&notifyEmail, "notify-email", false, "notify the customer by email")
	cmd.Flags().BoolVar(&notifySMS, "notify-sms", false, "notify the customer by SMS")

	return cmd
}

func newProjectsCreateStageCommand() *cobra.Command {
	var (
		stage      portalcx.ProjectStage
		buttonCopy string
		buttonURL  string
	)

	cmd := &cobra.Command{
		Use:   "create-stage PROJECT_ID",
		Short: "Create a project stage",
		Long:  "Attach a stage directly to a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stage.ProjectID = args[0]
			stage.StagePromptButtonCopy = optionalString(cmd, "button-copy", buttonCopy)
			stage.StagePromptButtonURL = optionalString(cmd, "button-url", buttonURL)

			pcx, err := createAuthenticatedClient()
			if err != nil {
				return err
			}

			result, err := pcx.Projects().CreateStage(context.Background(), &stage)
			if err != nil {
				return fmt.Errorf("failed to create project stage: %w", err)
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

func newProjectsListStagesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list-stages PROJECT_ID",
		Short: "List project stages",
		Long:  "List the stages attached to a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pcx, err := createAuthenticatedClient()
			if err != nil {
				return err
			}

			result, err := pcx.Projects().ListStages(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to list project stages: %w", err)
			}

			return outputResult(cmd.OutOrStdout(), result)
		},
	}
}

func newProjectsDeleteStageCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete-stage PROJECT_STAGE_ID",
		Short: "Delete a project stage",
		Long:  "Delete a stage attached to a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stageID, err := parseID(args[0])
			if err != nil {
				return err
			}

			if !confirm(cmd, force, fmt.Sprintf("Really delete project stage %d?", stageID)) {
				return nil
			}

			pcx, err := createAuthenticatedClient()
			if err != nil {
				return err
			}

			result, err := pcx.Projects().DeleteStage(context.Background(), stageID)
			if err != nil {
				return fmt.Errorf("failed to delete project stage: %w", err)
			}

			return outputResult(cmd.OutOrStdout(), result)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "force deletion without confirmation")

	return cmd
}
