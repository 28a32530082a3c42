package commands

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/portalcx/portalcx-go/internal/constants"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

// NewLoginCommand creates the login command.
func NewLoginCommand() *cobra.Command {
	var (
		email    string
		password string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Login to PortalCX",
		Long:  "Authenticate with the PortalCX API and store the bearer token in the config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if email == "" {
				email = viper.GetString(constants.ConfigKeyEmail)
			}

			if email == "" {
				email = promptLine(cmd.InOrStdin(), cmd.OutOrStdout(), "Email: ")
			}

			if email == "" {
				return constants.ErrEmailRequired
			}

			if password == "" {
				password = viper.GetString(constants.ConfigKeyPassword)
			}

			if password == "" {
				var err error

				password, err = promptPassword(cmd.OutOrStdout())
				if err != nil {
					return err
				}
			}

			if password == "" {
				return constants.ErrPasswordRequired
			}

			pcx, session, err := CreateClient()
			if err != nil {
				return err
			}

			viper.Set(constants.ConfigKeyEmail, email)

			_, err = pcx.Login(context.Background(), email, password)
			if err != nil {
				return fmt.Errorf("login failed: %w", err)
			}

			err = session.PersistError()
			if err != nil {
				return fmt.Errorf("logged in but failed to save token: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Logged in to %s as %s\n", pcx.BaseURL(), email)

			return nil
		},
	}

	cmd.Flags().StringVarP(&email, "email", "e", "", "account email")
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password")

	return cmd
}

// NewLogoutCommand creates the logout command.
func NewLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Logout from PortalCX",
		Long:  "Remove the stored bearer token from the config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, session, err := CreateClient()
			if err != nil {
				return err
			}

			session.Clear()

			err = session.PersistError()
			if err != nil {
				return fmt.Errorf("failed to remove token: %w", err)
			}

			_, _ = io.WriteString(cmd.OutOrStdout(), "Logged out\n")

			return nil
		},
	}
}

func promptLine(in io.Reader, out io.Writer, prompt string) string {
	_, _ = io.WriteString(out, prompt)

	reader := bufio.NewReader(in)
	line, _ := reader.ReadString('\n')

	return strings.TrimSpace(line)
}

func promptPassword(out io.Writer) (string, error) {
	fd := int(os.Stdin.Fd()) //nolint:gosec // file descriptors fit in int

	if !term.IsTerminal(fd) {
		return "", constants.ErrPasswordRequired
	}

	_, _ = io.WriteString(out, "Password: ")

	bytePassword, err := term.ReadPassword(fd)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	_, _ = io.WriteString(out, "\n")

	return string(bytePassword), nil
}
