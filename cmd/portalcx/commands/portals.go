package commands

import (
	"context"
	"fmt"

	"github.com/portalcx/portalcx-go/pkg/portalcx"
	"github.com/spf13/cobra"
)

// NewPortalsCommand creates the portals command group.
func NewPortalsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "portals",
		Aliases: []string{"portal"},
		Short:   "Manage customer portals",
		Long:    "Create customer portals, attach customers, and move portals between stages",
	}

	cmd.AddCommand(newPortalsCreateCommand())
	cmd.AddCommand(newPortalsCreateCustomerCommand())
	cmd.AddCommand(newPortalsChangeStageCommand())

	return cmd
}

func newPortalsCreateCommand() *cobra.Command {
	var (
		request      portalcx.CustomerPortalRequest
		stageSpecs   []string
		address1     string
		address2     string
		city         string
		stateCode    string
		zip          string
		contactEmail string
		contactPhone string
		referrals    bool
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a customer portal",
		Long:  "Create a customer portal with its stages. Stages are given as NAME:LABEL[:DESCRIPTION] and ordered as listed",
		RunE: func(cmd *cobra.Command, args []string) error {
			stages, err := parsePortalStages(stageSpecs)
			if err != nil {
				return err
			}

			request.Stages = stages
			request.Address1 = optionalString(cmd, "address1", address1)
			request.Address2 = optionalString(cmd, "address2", address2)
			request.City = optionalString(cmd, "city", city)
			request.StateCode = optionalString(cmd, "state", stateCode)
			request.Zip = optionalString(cmd, "zip", zip)
			request.ProjectContactEmail = optionalString(cmd, "contact-email", contactEmail)
			request.ProjectContactPhone = optionalString(cmd, "contact-phone", contactPhone)
			request.EnableReferrals = optionalBool(cmd, "referrals", referrals)

			err = request.Validate()
			if err != nil {
				return err
			}

			pcx, err := createAuthenticatedClient()
			if err != nil {
				return err
			}

			result, err := pcx.CreateCustomerPortal(context.Background(), &request)
			if err != nil {
				return fmt.Errorf("failed to create customer portal: %w", err)
			}

			return outputResult(cmd.OutOrStdout(), result)
		},
	}

	cmd.Flags().StringVar(&request.CustomerEmail, "customer-email", "", "customer email")
	cmd.Flags().StringVar(&request.CustomerName, "customer-name", "", "customer name")
	cmd.Flags().StringVar(&request.CustomerPhone, "customer-phone", "", "customer phone")
	cmd.Flags().StringVar(&request.ProjectName, "project-name", "", "project name")
	cmd.Flags().StringArrayVar(&stageSpecs, "stage", nil, "stage as NAME:LABEL[:DESCRIPTION], repeatable")
	cmd.Flags().StringVar(&address1, "address1", "", "address line 1")
	cmd.Flags().StringVar(&address2, "address2", "", "address line 2")
	cmd.Flags().StringVar(&city, "city", "", "city")
	cmd.Flags().StringVar(&stateCode, "state", "", "state code")
	cmd.Flags().StringVar(&zip, "zip", "", "zip code")
	cmd.Flags().StringVar(&contactEmail, "contact-email", "", "project contact email")
	cmd.Flags().StringVar(&contactPhone, "contact-phone", "", "project contact phone")
	cmd.Flags().BoolVar(&referrals, "referrals", false, "enable referrals")

	return cmd
}

func newPortalsCreateCustomerCommand() *cobra.Command {
	var (
		customer  portalcx.PortalCustomer
		address   string
		city      string
		stateCode string
		zip       string
	)

	cmd := &cobra.Command{
		Use:   "create-customer PROJECT_ID",
		Short: "Attach a customer to a project",
		Long:  "Create a portal customer for an existing project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			customer.ProjectID = args[0]
			customer.Address = optionalString(cmd, "address", address)
			customer.City = optionalString(cmd, "city", city)
			customer.StateCode = optionalString(cmd, "state", stateCode)
			customer.Zip = optionalString(cmd, "zip", zip)

			pcx, err := createAuthenticatedClient()
			if err != nil {
				return err
			}

			result, err := pcx.Portals().CreateCustomer(context.Background(), &customer)
			if err != nil {
				return fmt.Errorf("failed to create portal customer: %w", err)
			}

			return outputResult(cmd.OutOrStdout(), result)
		},
	}

	cmd.Flags().StringVar(&customer.FirstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&customer.LastName, "last-name", "", "last name")
	cmd.Flags().StringVar(&customer.Email, "email", "", "email")
	cmd.Flags().StringVar(&customer.PhoneNumber, "phone", "", "phone number")
	cmd.Flags().StringVar(&address, "address", "", "address")
	cmd.Flags().StringVar(&city, "city", "", "city")
	cmd.Flags().StringVar(&stateCode, "state", "", "state code")
	cmd.Flags().StringVar(&zip, "zip", "", "zip code")
	cmd.Flags().BoolVar(&customer.NotifyViaEmail, "notify-email", false, "notify by email")
	cmd.Flags().BoolVar(&customer.NotifyViaSMS, "notify-sms", false, "notify by SMS")
	cmd.Flags().BoolVar(&customer.CompleteFirstStage, "complete-first-stage", false, "complete the first stage")
	cmd.Flags().IntVar(&customer.CountryID, "country-id", 0, "country id")

	return cmd
}

func newPortalsChangeStageCommand() *cobra.Command {
	var (
		stageID int
		label   string
		date    string
	)

	cmd := &cobra.Command{
		Use:   "change-stage PORTAL_ID",
		Short: "Move a portal to a completed stage",
		Long:  "Record a completed stage on a customer portal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			completedAt, err := parseCompletedAt(date)
			if err != nil {
				return err
			}

			change, err := portalcx.NewPortalStageChange(args[0], optionalInt(cmd, "stage-id", stageID), label, completedAt)
			if err != nil {
				return err
			}

			pcx, err := createAuthenticatedClient()
			if err != nil {
				return err
			}

			result, err := pcx.Portals().ChangeStage(context.Background(), change)
			if err != nil {
				return fmt.Errorf("failed to change portal stage: %w", err)
			}

			return outputResult(cmd.OutOrStdout(), result)
		},
	}

	cmd.Flags().IntVar(&stageID, "stage-id", 0, "stage id")
	cmd.Flags().StringVar(&label, "label", "", "stage label")
	cmd.Flags().StringVar(&date, "date", "", "completion time in RFC 3339 (default now)")

	return cmd
}
