package commands

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/portalcx/portalcx-go/internal/client"
	"github.com/portalcx/portalcx-go/internal/constants"
	"github.com/portalcx/portalcx-go/pkg/portalcx"
	"github.com/spf13/cobra"
)

// optionalString returns a pointer to the flag value when the flag was given.
func optionalString(cmd *cobra.Command, name, value string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}

	return portalcx.Ptr(value)
}

// optionalBool returns a pointer to the flag value when the flag was given.
func optionalBool(cmd *cobra.Command, name string, value bool) *bool {
	if !cmd.Flags().Changed(name) {
		return nil
	}

	return portalcx.Ptr(value)
}

// optionalInt returns a pointer to the flag value when the flag was given.
func optionalInt(cmd *cobra.Command, name string, value int) *int {
	if !cmd.Flags().Changed(name) {
		return nil
	}

	return portalcx.Ptr(value)
}

func parseID(value string) (int, error) {
	id, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", constants.ErrInvalidInteger, value)
	}

	return id, nil
}

// parseCompletedAt parses an RFC 3339 timestamp; empty means now.
func parseCompletedAt(value string) (time.Time, error) {
	if value == "" {
		return time.Now().UTC(), nil
	}

	completedAt, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", constants.ErrInvalidDate, value)
	}

	return completedAt, nil
}

// parsePortalStages parses NAME:LABEL[:DESCRIPTION] specs in order.
func parsePortalStages(specs []string) ([]portalcx.PortalStage, error) {
	stages := make([]portalcx.PortalStage, 0, len(specs))

	for i, spec := range specs {
		parts := strings.SplitN(spec, ":", 3)
		if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
			return nil, fmt.Errorf("%w: %q", constants.ErrInvalidStageSpec, spec)
		}

		stage := portalcx.PortalStage{Name: parts[0], Label: parts[1], Order: i + 1}
		if len(parts) == 3 {
			stage.Description = parts[2]
		}

		stages = append(stages, stage)
	}

	return stages, nil
}

// confirm asks a yes/no question unless force is set.
func confirm(cmd *cobra.Command, force bool, question string) bool {
	if force {
		return true
	}

	answer := promptLine(cmd.InOrStdin(), cmd.OutOrStdout(), question+" (y/N): ")
	if answer != "y" && answer != "Y" {
		_, _ = io.WriteString(cmd.OutOrStdout(), "Cancelled\n")

		return false
	}

	return true
}

// createAuthenticatedClient creates a client and fails early without a stored token.
func createAuthenticatedClient() (*client.Client, error) {
	pcx, _, err := CreateClient()
	if err != nil {
		return nil, err
	}

	if pcx.Token() == "" {
		return nil, constants.ErrNotLoggedIn
	}

	return pcx, nil
}
