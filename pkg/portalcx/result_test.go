package portalcx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResult_Accessors(t *testing.T) {
	text := &Result{StatusCode: 200, Value: "Project deleted successfully"}
	assert.True(t, text.IsText())
	assert.Equal(t, "Project deleted successfully", text.Text())
	assert.Nil(t, text.Map())

	_, err := text.Envelope()
	require.ErrorIs(t, err, ErrNotAnObject)

	object := &Result{StatusCode: 200, Value: map[string]any{"status": float64(200), "message": "ok"}}
	assert.False(t, object.IsText())
	assert.Empty(t, object.Text())
	assert.Equal(t, "ok", object.Map()["message"])
}

func TestResult_Envelope(t *testing.T) {
	result := &Result{Value: map[string]any{
		"status":  float64(200),
		"message": "Project created",
		"data": map[string]any{
			"projectId": float64(77),
			"portalId":  samplePortalID,
			"status":    float64(1),
			"projectStages": []any{
				map[string]any{"projectStageId": float64(5), "stageName": "Permits", "isCompleted": true},
			},
		},
	}}

	envelope, err := result.Envelope()
	require.NoError(t, err)
	assert.True(t, envelope.OK())
	assert.Equal(t, "Project created", envelope.Message)

	var detail ProjectDetail

	require.NoError(t, envelope.DecodeData(&detail))
	assert.Equal(t, 77, detail.ProjectID)
	assert.Equal(t, ProjectStatusCompleted, detail.Status)
	assert.Equal(t, map[string]int{"Permits": 5}, detail.StageIDsByName())
}

func TestTemplateIDFromResult(t *testing.T) {
	tests := []struct {
		name  string
		value any
	}{
		{"message", map[string]any{"status": float64(200), "message": sampleTemplateID, "data": nil}},
		{"data string", map[string]any{"status": float64(200), "message": "Created", "data": sampleTemplateID}},
		{"data object", map[string]any{"message": "Created", "data": map[string]any{"templateId": sampleTemplateID}}},
		{"text", sampleTemplateID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := TemplateIDFromResult(&Result{Value: tt.value})
			require.NoError(t, err)
			assert.Equal(t, sampleTemplateID, id.String())
		})
	}

	_, err := TemplateIDFromResult(&Result{Value: map[string]any{"message": "Created"}})
	require.ErrorIs(t, err, ErrTemplateIDMissing)
}

func TestProjectRefFromResult(t *testing.T) {
	top := &Result{Value: map[string]any{"projectId": float64(12), "portalId": samplePortalID}}

	ref, err := ProjectRefFromResult(top)
	require.NoError(t, err)
	assert.Equal(t, 12, ref.ProjectID)
	assert.Equal(t, samplePortalID, ref.PortalID.String())

	nested := &Result{Value: map[string]any{"data": map[string]any{"projectId": "13", "portalId": samplePortalID}}}

	ref, err = ProjectRefFromResult(nested)
	require.NoError(t, err)
	assert.Equal(t, 13, ref.ProjectID)

	_, err = ProjectRefFromResult(&Result{Value: "text"})
	require.ErrorIs(t, err, ErrProjectRefMissing)

	_, err = ProjectRefFromResult(&Result{Value: map[string]any{"projectId": float64(1), "portalId": "nope"}})
	require.Error(t, err)
}
