package commands

import (
	"context"
	"fmt"

	"github.com/portalcx/portalcx-go/pkg/portalcx"
	"github.com/spf13/cobra"
)

// NewRegisterCommand creates the register command.
func NewRegisterCommand() *cobra.Command {
	var (
		request  portalcx.RegistrationRequest
		phone    string
		password string
	)

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a company account",
		Long:  "Register a new company account with the PortalCX API",
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				var err error

				password, err = promptPassword(cmd.OutOrStdout())
				if err != nil {
					return err
				}
			}

			request.Password = password
			request.Phone = optionalString(cmd, "phone", phone)

			err := request.Validate()
			if err != nil {
				return err
			}

			pcx, _, err := CreateClient()
			if err != nil {
				return err
			}

			result, err := pcx.Register(context.Background(), &request)
			if err != nil {
				return fmt.Errorf("registration failed: %w", err)
			}

			return outputResult(cmd.OutOrStdout(), result)
		},
	}

	cmd.Flags().StringVar(&request.Email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	cmd.Flags().StringVar(&request.FirstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&request.LastName, "last-name", "", "last name")
	cmd.Flags().StringVar(&request.CompanyName, "company", "", "company name")
	cmd.Flags().StringVar(&request.ContactPhone, "contact-phone", "", "company contact phone")
	cmd.Flags().StringVar(&phone, "phone", "", "personal phone")

	return cmd
}
