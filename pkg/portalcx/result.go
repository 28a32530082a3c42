package portalcx

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/mitchellh/mapstructure"
)

// Result is the normalized body of a successful call. Value holds the decoded
// JSON document, the raw body text when the body is not JSON (or when an
// endpoint asks for text), or an empty map when the body is empty.
type Result struct {
	StatusCode int
	Value      any
	Raw        []byte
}

// IsText reports whether the body was returned as raw text.
func (r *Result) IsText() bool {
	_, ok := r.Value.(string)

	return ok
}

// Text returns the raw text body, or "" when the body was JSON.
func (r *Result) Text() string {
	text, _ := r.Value.(string)

	return text
}

// Map returns the body as a JSON object, or nil when it is not one.
func (r *Result) Map() map[string]any {
	object, _ := r.Value.(map[string]any)

	return object
}

// Decode decodes the whole body into out using its json tags.
func (r *Result) Decode(out any) error {
	return decode(r.Value, out)
}

// Envelope is the {status, message, data} wrapper most endpoints use.
type Envelope struct {
	Status  int    `json:"status"  yaml:"status"`
	Message string `json:"message" yaml:"message"`
	Data    any    `json:"data"    yaml:"data"`
}

// Envelope decodes the body as an envelope.
func (r *Result) Envelope() (*Envelope, error) {
	if r.Map() == nil {
		return nil, ErrNotAnObject
	}

	var envelope Envelope

	err := decode(r.Value, &envelope)
	if err != nil {
		return nil, fmt.Errorf("parsing response envelope: %w", err)
	}

	return &envelope, nil
}

// DecodeData decodes the data member into out using its json tags.
func (e *Envelope) DecodeData(out any) error {
	return decode(e.Data, out)
}

// OK reports whether the envelope status is a success status.
func (e *Envelope) OK() bool {
	return e.Status >= 200 && e.Status < 300
}

func decode(input any, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return fmt.Errorf("creating decoder: %w", err)
	}

	err = decoder.Decode(input)
	if err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}

	return nil
}

// TemplateIDFromResult extracts the id of a newly created template. The API
// places it in the envelope message; data is checked as a fallback.
func TemplateIDFromResult(r *Result) (uuid.UUID, error) {
	candidates := []string{}

	if r.IsText() {
		candidates = append(candidates, r.Text())
	} else if envelope, err := r.Envelope(); err == nil {
		candidates = append(candidates, envelope.Message)

		switch data := envelope.Data.(type) {
		case string:
			candidates = append(candidates, data)
		case map[string]any:
			if id, ok := data["templateId"].(string); ok {
				candidates = append(candidates, id)
			}
		}
	}

	for _, candidate := range candidates {
		id, err := uuid.Parse(candidate)
		if err == nil {
			return id, nil
		}
	}

	return uuid.Nil, ErrTemplateIDMissing
}

// ProjectRef identifies a created project by both of its ids.
type ProjectRef struct {
	ProjectID int       `json:"projectId" yaml:"projectId"`
	PortalID  uuid.UUID `json:"portalId"  yaml:"portalId"`
}

// ProjectRefFromResult extracts the project and portal ids from a create
// project response, whether they sit at the top level or inside data.
func ProjectRefFromResult(r *Result) (*ProjectRef, error) {
	object := r.Map()
	if object == nil {
		return nil, ErrProjectRefMissing
	}

	if data, ok := object["data"].(map[string]any); ok {
		if _, found := data["projectId"]; found {
			object = data
		}
	}

	projectID, okProject := intValue(object["projectId"])
	portalText, okPortal := object["portalId"].(string)

	if !okProject || !okPortal {
		return nil, ErrProjectRefMissing
	}

	portalID, err := uuid.Parse(portalText)
	if err != nil {
		return nil, fmt.Errorf("parsing portal id: %w", err)
	}

	return &ProjectRef{ProjectID: projectID, PortalID: portalID}, nil
}

func intValue(value any) (int, bool) {
	switch number := value.(type) {
	case float64:
		return int(number), true
	case int:
		return number, true
	case string:
		parsed, err := strconv.Atoi(number)

		return parsed, err == nil
	default:
		return 0, false
	}
}

// TemplateStageInfo is one element of the stages listed for a template.
type TemplateStageInfo struct {
	TemplateStageID       int    `json:"templateStageId"       yaml:"templateStageId"`
	TemplateID            string `json:"templateId"            yaml:"templateId"`
	StageName             string `json:"stageName"             yaml:"stageName"`
	StageDescription      string `json:"stageDescription"      yaml:"stageDescription"`
	StagePromptButtonCopy string `json:"stagePromptButtonCopy" yaml:"stagePromptButtonCopy"`
	StagePromptButtonURL  string `json:"stagePromptButtonUrl"  yaml:"stagePromptButtonUrl"`
}

// ProjectStageInfo is one stage of a project detail.
type ProjectStageInfo struct {
	ProjectStageID   int    `json:"projectStageId"   yaml:"projectStageId"`
	ProjectID        int    `json:"projectId"        yaml:"projectId"`
	StageName        string `json:"stageName"        yaml:"stageName"`
	StageDescription string `json:"stageDescription" yaml:"stageDescription"`
	IsCompleted      bool   `json:"isCompleted"      yaml:"isCompleted"`
}

// ProjectStatus is the lifecycle state reported for a project.
type ProjectStatus int

// Project statuses as reported by the API.
const (
	ProjectStatusActive ProjectStatus = iota
	ProjectStatusCompleted
	ProjectStatusArchived
)

// ProjectDetail is the data member of project responses.
type ProjectDetail struct {
	ProjectID          int                 `json:"projectId"          yaml:"projectId"`
	PortalID           string              `json:"portalId"           yaml:"portalId"`
	Status             ProjectStatus       `json:"status"             yaml:"status"`
	FirstName          string              `json:"firstName"          yaml:"firstName"`
	LastName           string              `json:"lastName"           yaml:"lastName"`
	Phone              string              `json:"phone"              yaml:"phone"`
	Email              string              `json:"email"              yaml:"email"`
	NotifyViaEmail     bool                `json:"notifyViaEmail"     yaml:"notifyViaEmail"`
	NotifyViaSMS       bool                `json:"notifyViaSMS"       yaml:"notifyViaSMS"`
	CountryID          int                 `json:"countryId"          yaml:"countryId"`
	ProjectStages      []ProjectStageInfo  `json:"projectStages"      yaml:"projectStages"`
	ProjectSubscribers []ProjectSubscriber `json:"projectSubscribers" yaml:"projectSubscribers"`
}

// StageIDsByName maps stage names to their project stage ids.
func (d *ProjectDetail) StageIDsByName() map[string]int {
	ids := make(map[string]int, len(d.ProjectStages))
	for _, stage := range d.ProjectStages {
		ids[stage.StageName] = stage.ProjectStageID
	}

	return ids
}
