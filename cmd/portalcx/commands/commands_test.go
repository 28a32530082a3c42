package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTemplatesCommand(t *testing.T) {
	t.Parallel()

	cmd := NewTemplatesCommand()
	assert.Equal(t, "templates", cmd.Use)
	assert.Equal(t, []string{"template", "tpl"}, cmd.Aliases)
	assert.Len(t, cmd.Commands(), 2)

	create := findSubcommand(cmd, "create")
	assert.NotNil(t, create)

	for _, flagName := range []string{"title", "company", "contact-email", "contact-phone", "color", "logo", "email-logo", "referrals", "country-id"} {
		assert.NotNil(t, create.Flags().Lookup(flagName), "Flag %s should exist", flagName)
	}

	deleteCmd := findSubcommand(cmd, "delete")
	assert.NotNil(t, deleteCmd)
	assert.Equal(t, "delete TEMPLATE_ID", deleteCmd.Use)
	assert.NotNil(t, deleteCmd.Args)

	forceFlag := deleteCmd.Flags().Lookup("force")
	assert.NotNil(t, forceFlag)
	assert.Equal(t, "f", forceFlag.Shorthand)
	assert.Equal(t, "false", forceFlag.DefValue)
	assert.NotNil(t, deleteCmd.Flags().Lookup("with-stages"))
}

func TestNewStagesCommand(t *testing.T) {
	t.Parallel()

	cmd := NewStagesCommand()
	assert.Equal(t, "stages", cmd.Use)

	var commandNames []string
	for _, subcmd := range cmd.Commands() {
		commandNames = append(commandNames, subcmd.Name())
	}

	assert.ElementsMatch(t, []string{"create", "list", "delete"}, commandNames)
}

func TestNewProjectsCommand(t *testing.T) {
	t.Parallel()

	cmd := NewProjectsCommand()
	assert.Equal(t, "projects", cmd.Use)

	var commandNames []string
	for _, subcmd := range cmd.Commands() {
		commandNames = append(commandNames, subcmd.Name())
	}

	assert.ElementsMatch(t, []string{
		"create", "delete", "complete-stage", "create-stage", "list-stages", "delete-stage",
	}, commandNames)

	complete := findSubcommand(cmd, "complete-stage")
	for _, flagName := range []string{"project-id", "portal-id", "label", "date", "notify-email", "notify-sms"} {
		assert.NotNil(t, complete.Flags().Lookup(flagName), "Flag %s should exist", flagName)
	}
}

func TestNewPortalsCommand(t *testing.T) {
	t.Parallel()

	cmd := NewPortalsCommand()
	assert.Equal(t, "portals", cmd.Use)
	assert.Len(t, cmd.Commands(), 3)

	create := findSubcommand(cmd, "create")
	stageFlag := create.Flags().Lookup("stage")
	assert.NotNil(t, stageFlag)
	assert.Equal(t, "stringArray", stageFlag.Value.Type())
}

func TestNewConfigCommand(t *testing.T) {
	t.Parallel()

	cmd := NewConfigCommand()
	assert.Equal(t, "config", cmd.Use)
	assert.NotNil(t, findSubcommand(cmd, "show"))
	assert.NotNil(t, findSubcommand(cmd, "set"))
	assert.NotNil(t, findSubcommand(cmd, "unset"))
}

func TestNewLoginCommand(t *testing.T) {
	t.Parallel()

	cmd := NewLoginCommand()
	assert.Equal(t, "login", cmd.Use)

	emailFlag := cmd.Flags().Lookup("email")
	assert.NotNil(t, emailFlag)
	assert.Equal(t, "e", emailFlag.Shorthand)

	passwordFlag := cmd.Flags().Lookup("password")
	assert.NotNil(t, passwordFlag)
	assert.Equal(t, "p", passwordFlag.Shorthand)
}
