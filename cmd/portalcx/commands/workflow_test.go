package commands

import (
	"encoding/json"
	"io"
	"net/http"
	"os"
	"testing"

	"github.com/portalcx/portalcx-go/internal/constants"
	"github.com/portalcx/portalcx-go/pkg/portalcx"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const (
	workflowToken      = "tok-123"
	workflowTemplateID = "3fa85f64-5717-4562-b3fc-2c963f66afa6"
)

func readSavedConfig(t *testing.T, configFile string) Config {
	t.Helper()

	data, err := os.ReadFile(configFile)
	require.NoError(t, err)

	var saved Config
	require.NoError(t, yaml.Unmarshal(data, &saved))

	return saved
}

func writeJSON(writer http.ResponseWriter, status int, body string) {
	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(status)
	_, _ = io.WriteString(writer, body)
}

func requireBearer(t *testing.T, request *http.Request) {
	t.Helper()

	assert.Equal(t, "Bearer "+workflowToken, request.Header.Get("Authorization"))
}

func TestLoginCommand_SavesToken(t *testing.T) {
	configFile := useTempConfig(t)

	server := newAPIServer(t, map[string]http.HandlerFunc{
		constants.APIPathLogin: func(writer http.ResponseWriter, request *http.Request) {
			var body map[string]string
			assert.NoError(t, json.NewDecoder(request.Body).Decode(&body))
			assert.Equal(t, "admin@example.com", body["email"])
			assert.Equal(t, "secret", body["password"])

			writeJSON(writer, http.StatusOK, `{"token":"`+workflowToken+`"}`)
		},
	})
	viper.Set(constants.ConfigKeyAPIBaseURL, server.URL)

	out, err := runCommand(t, NewLoginCommand(), "--email", "admin@example.com", "--password", "secret")
	require.NoError(t, err)
	assert.Contains(t, out, "Logged in to "+server.URL+" as admin@example.com")

	saved := readSavedConfig(t, configFile)
	assert.Equal(t, workflowToken, saved.Token)
	assert.Equal(t, "admin@example.com", saved.Email)
	assert.Equal(t, server.URL, saved.APIBaseURL)

	raw, err := os.ReadFile(configFile)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "secret")
}

func TestLoginCommand_Failure(t *testing.T) {
	configFile := useTempConfig(t)

	server := newAPIServer(t, map[string]http.HandlerFunc{
		constants.APIPathLogin: func(writer http.ResponseWriter, _ *http.Request) {
			writeJSON(writer, http.StatusUnauthorized, `{"errorMessage":"Invalid credentials"}`)
		},
	})
	viper.Set(constants.ConfigKeyAPIBaseURL, server.URL)

	_, err := runCommand(t, NewLoginCommand(), "-e", "admin@example.com", "-p", "wrong")
	require.Error(t, err)
	assert.True(t, portalcx.IsUnauthorized(err))
	assert.Contains(t, err.Error(), "Invalid credentials")

	_, statErr := os.Stat(configFile)
	assert.True(t, os.IsNotExist(statErr))
}

func TestLogoutCommand(t *testing.T) {
	configFile := useTempConfig(t)
	viper.Set(constants.ConfigKeyAPIBaseURL, "https://api.example.com")
	viper.Set(constants.ConfigKeyToken, workflowToken)

	out, err := runCommand(t, NewLogoutCommand())
	require.NoError(t, err)
	assert.Contains(t, out, "Logged out")
	assert.Empty(t, readSavedConfig(t, configFile).Token)
}

func TestTemplatesCreateCommand(t *testing.T) {
	useTempConfig(t)

	server := newAPIServer(t, map[string]http.HandlerFunc{
		constants.APIPathCreateTemplate: func(writer http.ResponseWriter, request *http.Request) {
			requireBearer(t, request)

			if !assert.NoError(t, request.ParseMultipartForm(1<<20)) {
				return
			}

			assert.Equal(t, "Solar Installation", request.FormValue("title"))
			assert.Equal(t, "#FF5733", request.FormValue("color"))
			assert.NotContains(t, request.MultipartForm.Value, "countryId")

			writeJSON(writer, http.StatusOK, `{"status":200,"message":"`+workflowTemplateID+`","data":null}`)
		},
	})
	viper.Set(constants.ConfigKeyAPIBaseURL, server.URL)
	viper.Set(constants.ConfigKeyToken, workflowToken)
	viper.Set(constants.ConfigKeyOutput, constants.FormatJSON)

	out, err := runCommand(t, NewTemplatesCommand(), "create",
		"--title", "Solar Installation",
		"--company", "Solar Co",
		"--contact-email", "pm@example.com",
		"--contact-phone", "1234567890",
		"--color", "#FF5733",
	)
	require.NoError(t, err)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &body))
	assert.Equal(t, workflowTemplateID, body["message"])
}

func TestTemplatesCreateCommand_NotLoggedIn(t *testing.T) {
	useTempConfig(t)
	viper.Set(constants.ConfigKeyAPIBaseURL, "https://api.example.com")

	_, err := runCommand(t, NewTemplatesCommand(), "create",
		"--title", "Solar Installation",
		"--company", "Solar Co",
		"--contact-email", "pm@example.com",
		"--contact-phone", "1234567890",
	)
	assert.ErrorIs(t, err, constants.ErrNotLoggedIn)
}

func TestTemplatesCreateCommand_Invalid(t *testing.T) {
	useTempConfig(t)

	_, err := runCommand(t, NewTemplatesCommand(), "create", "--title", "Solar Installation")
	require.Error(t, err)
	assert.Equal(t, portalcx.KindValidation, portalcx.KindOf(err))
}

func TestTemplatesDeleteCommand_WithStages(t *testing.T) {
	useTempConfig(t)

	var deletedStages []string

	templateDeleted := false

	server := newAPIServer(t, map[string]http.HandlerFunc{
		constants.APIPathGetStagesByTemplateID: func(writer http.ResponseWriter, request *http.Request) {
			requireBearer(t, request)
			assert.Equal(t, workflowTemplateID, request.URL.Query().Get(constants.QueryTemplateID))

			writeJSON(writer, http.StatusOK, `{"status":200,"message":"ok","data":[
				{"templateStageId":11,"templateId":"`+workflowTemplateID+`","stageName":"Survey"},
				{"templateStageId":12,"templateId":"`+workflowTemplateID+`","stageName":"Install"}
			]}`)
		},
		constants.APIPathDeleteTemplateStage: func(writer http.ResponseWriter, request *http.Request) {
			deletedStages = append(deletedStages, request.URL.Query().Get(constants.QueryTemplateStageID))
			_, _ = io.WriteString(writer, "Stage deleted")
		},
		constants.APIPathDeleteTemplate: func(writer http.ResponseWriter, _ *http.Request) {
			templateDeleted = true
			_, _ = io.WriteString(writer, "Template deleted")
		},
	})
	viper.Set(constants.ConfigKeyAPIBaseURL, server.URL)
	viper.Set(constants.ConfigKeyToken, workflowToken)

	out, err := runCommand(t, NewTemplatesCommand(), "delete", workflowTemplateID, "--force", "--with-stages")
	require.NoError(t, err)

	assert.Equal(t, []string{"11", "12"}, deletedStages)
	assert.True(t, templateDeleted)
	assert.Contains(t, out, "Template deleted")
}

func TestTemplatesDeleteCommand_CascadeFailure(t *testing.T) {
	useTempConfig(t)

	templateDeleted := false

	server := newAPIServer(t, map[string]http.HandlerFunc{
		constants.APIPathGetStagesByTemplateID: func(writer http.ResponseWriter, _ *http.Request) {
			writeJSON(writer, http.StatusOK, `[{"templateStageId":11},{"templateStageId":12}]`)
		},
		constants.APIPathDeleteTemplateStage: func(writer http.ResponseWriter, request *http.Request) {
			if request.URL.Query().Get(constants.QueryTemplateStageID) == "12" {
				writeJSON(writer, http.StatusInternalServerError, `{"errorMessage":"stage is locked"}`)

				return
			}

			_, _ = io.WriteString(writer, "Stage deleted")
		},
		constants.APIPathDeleteTemplate: func(writer http.ResponseWriter, _ *http.Request) {
			templateDeleted = true
			_, _ = io.WriteString(writer, "Template deleted")
		},
	})
	viper.Set(constants.ConfigKeyAPIBaseURL, server.URL)
	viper.Set(constants.ConfigKeyToken, workflowToken)

	_, err := runCommand(t, NewTemplatesCommand(), "delete", workflowTemplateID, "-f", "--with-stages")
	require.Error(t, err)
	assert.ErrorIs(t, err, constants.ErrCascadeDeleteFailed)
	assert.Contains(t, err.Error(), "stage 12")
	assert.Contains(t, err.Error(), "stage is locked")
	assert.Equal(t, 500, portalcx.StatusCode(err))
	assert.False(t, templateDeleted)
}

func TestTemplatesDeleteCommand_Cancelled(t *testing.T) {
	useTempConfig(t)

	out, err := runCommand(t, NewTemplatesCommand(), "delete", workflowTemplateID)
	require.NoError(t, err)
	assert.Contains(t, out, "Cancelled")
}

func TestProjectsCompleteStageCommand(t *testing.T) {
	useTempConfig(t)

	server := newAPIServer(t, map[string]http.HandlerFunc{
		constants.APIPathCompleteProjectStage: func(writer http.ResponseWriter, request *http.Request) {
			requireBearer(t, request)

			var body map[string]interface{}
			if !assert.NoError(t, json.NewDecoder(request.Body).Decode(&body)) {
				return
			}

			assert.InDelta(t, 42, body["projectId"], 0)
			assert.NotContains(t, body, "portalId")
			assert.NotContains(t, body, "notifyViaSMS")
			assert.Equal(t, "Installation", body["completedStageLabel"])
			assert.Equal(t, "2024-03-15T09:30:00Z", body["completedDate"])

			writeJSON(writer, http.StatusOK, `{"status":200,"message":"Stage completed","data":null}`)
		},
	})
	viper.Set(constants.ConfigKeyAPIBaseURL, server.URL)
	viper.Set(constants.ConfigKeyToken, workflowToken)

	out, err := runCommand(t, NewProjectsCommand(), "complete-stage",
		"--project-id", "42",
		"--label", "Installation",
		"--date", "2024-03-15T09:30:00Z",
	)
	require.NoError(t, err)
	assert.Contains(t, out, "Stage completed")
}

func TestProjectsCompleteStageCommand_Conflict(t *testing.T) {
	useTempConfig(t)

	_, err := runCommand(t, NewProjectsCommand(), "complete-stage",
		"--project-id", "42",
		"--portal-id", "9b2f6c3e-8d1a-4f7b-a1c2-3d4e5f607182",
		"--label", "Installation",
	)
	assert.ErrorIs(t, err, portalcx.ErrProjectOrPortalConflict)

	_, err = runCommand(t, NewProjectsCommand(), "complete-stage", "--label", "Installation")
	assert.ErrorIs(t, err, portalcx.ErrProjectOrPortalConflict)
}

func TestConfigSetAndShow(t *testing.T) {
	configFile := useTempConfig(t)

	_, err := runCommand(t, NewConfigCommand(), "set", constants.ConfigKeyAPIBaseURL, "https://api.example.com")
	require.NoError(t, err)

	_, err = runCommand(t, NewConfigCommand(), "set", constants.ConfigKeyProjectEncoding, "json")
	require.NoError(t, err)

	saved := readSavedConfig(t, configFile)
	assert.Equal(t, "https://api.example.com", saved.APIBaseURL)
	assert.Equal(t, "json", saved.ProjectEncoding)

	_, err = runCommand(t, NewConfigCommand(), "set", constants.ConfigKeyProjectEncoding, "xml")
	assert.ErrorIs(t, err, portalcx.ErrUnknownEncoding)

	_, err = runCommand(t, NewConfigCommand(), "set", "password", "secret")
	assert.ErrorIs(t, err, constants.ErrUnknownConfigKey)

	viper.Set(constants.ConfigKeyToken, "very-secret-token")

	out, err := runCommand(t, NewConfigCommand(), "show")
	require.NoError(t, err)
	assert.Contains(t, out, "https://api.example.com")
	assert.Contains(t, out, redacted)
	assert.NotContains(t, out, "very-secret-token")
}
