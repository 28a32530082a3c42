package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/portalcx/portalcx-go/pkg/portalcx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStagesClient_Create(t *testing.T) {
	t.Parallel()

	server, requests := newRecordingServer(t, http.StatusOK, `{"status":200,"message":"Stage created","data":null}`)
	stages := NewStagesClient(newTestHTTPClient(server.URL, nil))

	_, err := stages.Create(context.Background(), &portalcx.TemplateStage{
		TemplateID:       testTemplateID,
		StageName:        "Site Survey",
		StageDescription: "We inspect the roof",
	})
	require.NoError(t, err)

	recorded := assertSingleRequest(t, requests, http.MethodPost, "/api/Admin/Template/CreateStage")
	assert.Equal(t, "application/json", recorded.ContentType)
	assert.Equal(t, map[string]interface{}{
		"templateId":       testTemplateID,
		"stageName":        "Site Survey",
		"stageDescription": "We inspect the roof",
	}, recorded.JSON)
}

func TestStagesClient_ListByTemplate(t *testing.T) {
	t.Parallel()

	server, requests := newRecordingServer(t, http.StatusOK, `{"status":200,"message":"","data":[
		{"templateStageId":11,"templateId":"`+testTemplateID+`","stageName":"Site Survey","stageDescription":"d"},
		{"templateStageId":12,"templateId":"`+testTemplateID+`","stageName":"Permits","stageDescription":"d"}
	]}`)
	stages := NewStagesClient(newTestHTTPClient(server.URL, nil))

	result, err := stages.ListByTemplate(context.Background(), testTemplateID)
	require.NoError(t, err)

	recorded := assertSingleRequest(t, requests, http.MethodGet, "/api/Admin/Template/GetAllStagesByTemplateId")
	assert.Equal(t, []string{testTemplateID}, recorded.Query["templateId"])

	envelope, err := result.Envelope()
	require.NoError(t, err)

	var infos []portalcx.TemplateStageInfo

	require.NoError(t, envelope.DecodeData(&infos))
	require.Len(t, infos, 2)
	assert.Equal(t, 11, infos[0].TemplateStageID)
	assert.Equal(t, "Permits", infos[1].StageName)
}

func TestStagesClient_Delete(t *testing.T) {
	t.Parallel()

	server, requests := newRecordingServer(t, http.StatusOK, "Stage deleted")
	stages := NewStagesClient(newTestHTTPClient(server.URL, nil))

	result, err := stages.Delete(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, "Stage deleted", result.Text())

	recorded := assertSingleRequest(t, requests, http.MethodDelete, "/api/Admin/Template/DeleteStage")
	assert.Equal(t, []string{"42"}, recorded.Query["templateStageId"])
}
