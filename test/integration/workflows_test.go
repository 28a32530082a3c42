//go:build integration

package integration

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPortalWorkflow_TemplateToCompletedStage runs login, template, stages,
// project and stage completion against a live API and cleans up afterwards.
func TestPortalWorkflow_TemplateToCompletedStage(t *testing.T) {
	config := LoadTestConfig()
	config.SkipIfMissingConfig(t)

	runner := NewCommandRunner(config, t)

	require.NoError(t, runner.Login())
	require.NotEmpty(t, runner.SavedToken())

	title := GenerateTestName("workflow-template")

	// 1. Create template
	var created map[string]interface{}
	runner.RunJSON(&created, "templates", "create",
		"--title", title,
		"--company", "Integration Co",
		"--contact-email", config.Email,
		"--contact-phone", "5550100",
	)

	templateID, _ := created["message"].(string)
	require.NotEmpty(t, templateID, "template id missing from %v", created)

	defer runner.Cleanup("templates", "delete", templateID, "--with-stages")

	// 2. Add stages in order
	for _, name := range []string{"Survey", "Install", "Inspect"} {
		_, stderr, err := runner.Run("stages", "create", templateID, "--name", name, "--description", name+" stage")
		require.NoError(t, err, "Failed to create stage %s: %s", name, stderr)
	}

	var stages []map[string]interface{}
	runner.RunJSON(&stages, "stages", "list", templateID)
	require.Len(t, stages, 3)
	assert.Equal(t, "Survey", stages[0]["stageName"])

	// 3. Create project
	var project map[string]interface{}
	runner.RunJSON(&project, "projects", "create", templateID,
		"--first-name", "Integration",
		"--last-name", "Customer",
		"--email", config.Email,
		"--phone", "5550101",
	)

	data, _ := project["data"].(map[string]interface{})
	if data == nil {
		data = project
	}

	projectID, ok := data["projectId"].(float64)
	require.True(t, ok, "project id missing from %v", project)

	defer runner.Cleanup("projects", "delete", strconv.Itoa(int(projectID)))

	// 4. Complete the first stage
	_, stderr, err := runner.Run("projects", "complete-stage",
		"--project-id", strconv.Itoa(int(projectID)),
		"--label", "Survey",
		"--date", time.Now().UTC().Format(time.RFC3339),
	)
	require.NoError(t, err, "Failed to complete stage: %s", stderr)
}

// TestPortalWorkflow_InvalidCredentials checks that a rejected login leaves
// no token behind.
func TestPortalWorkflow_InvalidCredentials(t *testing.T) {
	config := LoadTestConfig()
	config.SkipIfMissingConfig(t)

	bad := *config
	bad.Password = "definitely-not-the-password"

	runner := NewCommandRunner(&bad, t)

	_, stderr, err := runner.Run("login", "--email", config.Email)
	require.Error(t, err)
	assert.Contains(t, stderr, "login failed")
	assert.Empty(t, runner.SavedToken())
}
