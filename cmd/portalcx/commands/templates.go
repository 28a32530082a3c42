package commands

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/portalcx/portalcx-go/internal/constants"
	"github.com/portalcx/portalcx-go/pkg/portalcx"
	"github.com/spf13/cobra"
)

// NewTemplatesCommand creates the templates command group.
func NewTemplatesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "templates",
		Aliases: []string{"template", "tpl"},
		Short:   "Manage templates",
		Long:    "Create and delete PortalCX project templates",
	}

	cmd.AddCommand(newTemplatesCreateCommand())
	cmd.AddCommand(newTemplatesDeleteCommand())

	return cmd
}

func newTemplatesCreateCommand() *cobra.Command {
	var (
		template  portalcx.Template
		color     string
		logo      string
		emailLogo string
		countryID int
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a template",
		Long:  "Create a new template and print its id",
		RunE: func(cmd *cobra.Command, args []string) error {
			template.Color = optionalString(cmd, "color", color)
			template.TemplateAppLogoUpload = optionalString(cmd, "logo", logo)
			template.EmailLogoUpload = optionalString(cmd, "email-logo", emailLogo)
			template.CountryID = optionalInt(cmd, "country-id", countryID)

			err := template.Validate()
			if err != nil {
				return err
			}

			pcx, err := createAuthenticatedClient()
			if err != nil {
				return err
			}

			result, err := pcx.CreateTemplate(context.Background(), &template)
			if err != nil {
				return fmt.Errorf("failed to create template: %w", err)
			}

			if templateID, idErr := portalcx.TemplateIDFromResult(result); idErr == nil {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Created template %s\n", templateID)
			}

			return outputResult(cmd.OutOrStdout(), result)
		},
	}

	cmd.Flags().StringVar(&template.Title, "title", "", "template title")
	cmd.Flags().StringVar(&template.CompanyName, "company", "", "company name")
	cmd.Flags().StringVar(&template.ContactEmail, "contact-email", "", "contact email")
	cmd.Flags().StringVar(&template.ContactPhone, "contact-phone", "", "contact phone")
	cmd.Flags().StringVar(&color, "color", "", "brand color, e.g. #FF5733")
	cmd.Flags().StringVar(&logo, "logo", "", "app logo reference")
	cmd.Flags().StringVar(&emailLogo, "email-logo", "", "email logo reference")
	cmd.Flags().BoolVar(&template.IsCustomerReferrals, "referrals", false, "enable customer referrals")
	cmd.Flags().IntVar(&countryID, "country-id", 0, "country id")

	return cmd
}

func newTemplatesDeleteCommand() *cobra.Command {
	var (
		force      bool
		withStages bool
	)

	cmd := &cobra.Command{
		Use:   "delete TEMPLATE_ID",
		Short: "Delete a template",
		Long:  "Delete a template, optionally deleting its stages first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			templateID := args[0]

			err := portalcx.ValidateTemplateID(templateID)
			if err != nil {
				return err
			}

			if !confirm(cmd, force, fmt.Sprintf("Really delete template %s?", templateID)) {
				return nil
			}

			pcx, err := createAuthenticatedClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			if withStages {
				err = deleteTemplateStages(ctx, pcx, templateID)
				if err != nil {
					return err
				}
			}

			result, err := pcx.DeleteTemplate(ctx, templateID)
			if err != nil {
				return fmt.Errorf("failed to delete template: %w", err)
			}

			return outputResult(cmd.OutOrStdout(), result)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "force deletion without confirmation")
	cmd.Flags().BoolVar(&withStages, "with-stages", false, "delete the template's stages first")

	return cmd
}

// deleteTemplateStages deletes every stage of a template and reports all
// failures together.
func deleteTemplateStages(ctx context.Context, pcx portalcx.Client, templateID string) error {
	result, err := pcx.GetStagesByTemplate(ctx, templateID)
	if err != nil {
		return fmt.Errorf("failed to list template stages: %w", err)
	}

	stages, err := templateStagesFromResult(result)
	if err != nil {
		return err
	}

	var errs *multierror.Error

	for _, stage := range stages {
		_, err := pcx.DeleteTemplateStage(ctx, stage.TemplateStageID)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("stage %d: %w", stage.TemplateStageID, err))
		}
	}

	if errs != nil {
		return fmt.Errorf("%w: %w", constants.ErrCascadeDeleteFailed, errs)
	}

	return nil
}

// templateStagesFromResult accepts both a bare list and an envelope around one.
func templateStagesFromResult(result *portalcx.Result) ([]portalcx.TemplateStageInfo, error) {
	var stages []portalcx.TemplateStageInfo

	if result.Map() == nil {
		err := result.Decode(&stages)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template stages: %w", err)
		}

		return stages, nil
	}

	envelope, err := result.Envelope()
	if err != nil {
		return nil, err
	}

	err = envelope.DecodeData(&stages)
	if err != nil {
		return nil, fmt.Errorf("failed to parse template stages: %w", err)
	}

	return stages, nil
}
