package portalcx

import (
	"encoding/json"
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Payload is implemented by every request model. The returned map carries
// required fields and only those optional fields the caller set; unset
// optional fields are absent rather than null.
type Payload interface {
	Payload() map[string]any
}

// Ptr returns a pointer to v. It is a convenience for setting optional fields.
func Ptr[T any](v T) *T {
	return &v
}

type fields map[string]any

func optional[T any](f fields, key string, value *T) {
	if value != nil {
		f[key] = *value
	}
}

func invalid(err error) error {
	if err == nil {
		return nil
	}

	return &ValidationError{Err: err}
}

// Credentials is the login request body.
type Credentials struct {
	Email    string `json:"email"    yaml:"email"`
	Password string `json:"password" yaml:"password"`
}

// Payload implements Payload.
func (c *Credentials) Payload() map[string]any {
	return fields{
		"email":    c.Email,
		"password": c.Password,
	}
}

// Validate checks the required fields.
func (c *Credentials) Validate() error {
	return invalid(validation.ValidateStruct(c,
		validation.Field(&c.Email, validation.Required, is.EmailFormat),
		validation.Field(&c.Password, validation.Required),
	))
}

// RegistrationRequest registers a new company account.
type RegistrationRequest struct {
	Email        string  `json:"email"           yaml:"email"`
	Password     string  `json:"password"        yaml:"password"`
	FirstName    string  `json:"firstName"       yaml:"firstName"`
	LastName     string  `json:"lastName"        yaml:"lastName"`
	CompanyName  string  `json:"companyName"     yaml:"companyName"`
	ContactPhone string  `json:"contactPhone"    yaml:"contactPhone"`
	Phone        *string `json:"phone,omitempty" yaml:"phone,omitempty"`
}

// Payload implements Payload.
func (r *RegistrationRequest) Payload() map[string]any {
	f := fields{
		"email":        r.Email,
		"password":     r.Password,
		"firstName":    r.FirstName,
		"lastName":     r.LastName,
		"companyName":  r.CompanyName,
		"contactPhone": r.ContactPhone,
	}
	optional(f, "phone", r.Phone)

	return f
}

// Validate checks the required fields.
func (r *RegistrationRequest) Validate() error {
	return invalid(validation.ValidateStruct(r,
		validation.Field(&r.Email, validation.Required, is.EmailFormat),
		validation.Field(&r.Password, validation.Required),
		validation.Field(&r.FirstName, validation.Required),
		validation.Field(&r.LastName, validation.Required),
		validation.Field(&r.CompanyName, validation.Required),
		validation.Field(&r.ContactPhone, validation.Required),
	))
}

// Template describes a reusable branding and contact configuration. The id
// is assigned by the API and returned in the response message.
type Template struct {
	TemplateID            *string `json:"templateId,omitempty"            yaml:"templateId,omitempty"`
	CompanyID             *int    `json:"companyId,omitempty"             yaml:"companyId,omitempty"`
	Title                 string  `json:"title"                           yaml:"title"`
	ContactEmail          string  `json:"contactEmail"                    yaml:"contactEmail"`
	ContactPhone          string  `json:"contactPhone"                    yaml:"contactPhone"`
	CompanyName           string  `json:"companyName"                     yaml:"companyName"`
	Color                 *string `json:"color,omitempty"                 yaml:"color,omitempty"`
	TemplateAppLogoUpload *string `json:"templateAppLogoUpload,omitempty" yaml:"templateAppLogoUpload,omitempty"`
	EmailLogoUpload       *string `json:"emailLogoUpload,omitempty"       yaml:"emailLogoUpload,omitempty"`
	IsCustomerReferrals   bool    `json:"isCustomerReferrals"             yaml:"isCustomerReferrals"`
	IsLogoUpdate          *bool   `json:"isLogoUpdate,omitempty"          yaml:"isLogoUpdate,omitempty"`
	IsEmailLogoUpdate     *bool   `json:"isEmailLogoUpdate,omitempty"     yaml:"isEmailLogoUpdate,omitempty"`
	CountryID             *int    `json:"countryId,omitempty"             yaml:"countryId,omitempty"`
}

// Payload implements Payload.
func (t *Template) Payload() map[string]any {
	f := fields{
		"title":               t.Title,
		"contactEmail":        t.ContactEmail,
		"contactPhone":        t.ContactPhone,
		"companyName":         t.CompanyName,
		"isCustomerReferrals": t.IsCustomerReferrals,
	}
	optional(f, "templateId", t.TemplateID)
	optional(f, "companyId", t.CompanyID)
	optional(f, "color", t.Color)
	optional(f, "templateAppLogoUpload", t.TemplateAppLogoUpload)
	optional(f, "emailLogoUpload", t.EmailLogoUpload)
	optional(f, "isLogoUpdate", t.IsLogoUpdate)
	optional(f, "isEmailLogoUpdate", t.IsEmailLogoUpdate)
	optional(f, "countryId", t.CountryID)

	return f
}

// Validate checks the required fields.
func (t *Template) Validate() error {
	return invalid(validation.ValidateStruct(t,
		validation.Field(&t.TemplateID, validation.NilOrNotEmpty, is.UUID),
		validation.Field(&t.Title, validation.Required),
		validation.Field(&t.ContactEmail, validation.Required, is.EmailFormat),
		validation.Field(&t.ContactPhone, validation.Required),
		validation.Field(&t.CompanyName, validation.Required),
	))
}

// TemplateStage is a named step of a template. Ordering is implied by the
// order in which stages are created.
type TemplateStage struct {
	TemplateStageID       *string `json:"templateStageId,omitempty"       yaml:"templateStageId,omitempty"`
	TemplateID            string  `json:"templateId"                      yaml:"templateId"`
	StageName             string  `json:"stageName"                       yaml:"stageName"`
	StageDescription      string  `json:"stageDescription"                yaml:"stageDescription"`
	StagePromptButtonCopy *string `json:"stagePromptButtonCopy,omitempty" yaml:"stagePromptButtonCopy,omitempty"`
	StagePromptButtonURL  *string `json:"stagePromptButtonUrl,omitempty"  yaml:"stagePromptButtonUrl,omitempty"`
}

// Payload implements Payload.
func (s *TemplateStage) Payload() map[string]any {
	f := fields{
		"templateId":       s.TemplateID,
		"stageName":        s.StageName,
		"stageDescription": s.StageDescription,
	}
	optional(f, "templateStageId", s.TemplateStageID)
	optional(f, "stagePromptButtonCopy", s.StagePromptButtonCopy)
	optional(f, "stagePromptButtonUrl", s.StagePromptButtonURL)

	return f
}

// Validate checks the required fields.
func (s *TemplateStage) Validate() error {
	return invalid(validation.ValidateStruct(s,
		validation.Field(&s.TemplateID, validation.Required, is.UUID),
		validation.Field(&s.StageName, validation.Required),
		validation.Field(&s.StagePromptButtonURL, validation.NilOrNotEmpty, is.URL),
	))
}

// ProjectSubscriber is an additional contact notified about a project.
type ProjectSubscriber struct {
	ProjectSubscriberID int    `json:"projectSubscriberId" yaml:"projectSubscriberId"`
	FirstName           string `json:"firstName"           yaml:"firstName"`
	LastName            string `json:"lastName"            yaml:"lastName"`
	Email               string `json:"email"               yaml:"email"`
	PhoneNumber         string `json:"phoneNumber"         yaml:"phoneNumber"`
	NotifyViaEmail      bool   `json:"notifyViaEmail"      yaml:"notifyViaEmail"`
	NotifyViaSMS        bool   `json:"notifyViaSMS"        yaml:"notifyViaSMS"`
	CountryID           int    `json:"countryId"           yaml:"countryId"`
}

// Payload implements Payload.
func (s *ProjectSubscriber) Payload() map[string]any {
	return fields{
		"projectSubscriberId": s.ProjectSubscriberID,
		"firstName":           s.FirstName,
		"lastName":            s.LastName,
		"email":               s.Email,
		"phoneNumber":         s.PhoneNumber,
		"notifyViaEmail":      s.NotifyViaEmail,
		"notifyViaSMS":        s.NotifyViaSMS,
		"countryId":           s.CountryID,
	}
}

// Project is created from a template. The API answers with both an integer
// project id and a UUID portal id.
type Project struct {
	ProjectID          *int                `json:"projectId,omitempty"          yaml:"projectId,omitempty"`
	TemplateID         string              `json:"templateId"                   yaml:"templateId"`
	FirstName          string              `json:"firstName"                    yaml:"firstName"`
	LastName           string              `json:"lastName"                     yaml:"lastName"`
	Email              string              `json:"email"                        yaml:"email"`
	PhoneNumber        string              `json:"phoneNumber"                  yaml:"phoneNumber"`
	AddressLine1       *string             `json:"addressLine1,omitempty"       yaml:"addressLine1,omitempty"`
	AddressLine2       *string             `json:"addressLine2,omitempty"       yaml:"addressLine2,omitempty"`
	City               *string             `json:"city,omitempty"               yaml:"city,omitempty"`
	StateCode          *string             `json:"stateCode,omitempty"          yaml:"stateCode,omitempty"`
	Zip                *string             `json:"zip,omitempty"                yaml:"zip,omitempty"`
	NotifyViaEmail     bool                `json:"notifyViaEmail"               yaml:"notifyViaEmail"`
	NotifyViaSMS       bool                `json:"notifyViaSMS"                 yaml:"notifyViaSMS"`
	CompleteFirstStage bool                `json:"completeFirstStage"           yaml:"completeFirstStage"`
	CountryID          int                 `json:"countryId"                    yaml:"countryId"`
	ProjectSubscribers []ProjectSubscriber `json:"projectSubscribers,omitempty" yaml:"projectSubscribers,omitempty"`
}

// Payload implements Payload.
func (p *Project) Payload() map[string]any {
	f := fields{
		"templateId":         p.TemplateID,
		"firstName":          p.FirstName,
		"lastName":           p.LastName,
		"email":              p.Email,
		"phoneNumber":        p.PhoneNumber,
		"notifyViaEmail":     p.NotifyViaEmail,
		"notifyViaSMS":       p.NotifyViaSMS,
		"completeFirstStage": p.CompleteFirstStage,
		"countryId":          p.CountryID,
	}
	optional(f, "projectId", p.ProjectID)
	optional(f, "addressLine1", p.AddressLine1)
	optional(f, "addressLine2", p.AddressLine2)
	optional(f, "city", p.City)
	optional(f, "stateCode", p.StateCode)
	optional(f, "zip", p.Zip)

	if p.ProjectSubscribers != nil {
		subscribers := make([]any, 0, len(p.ProjectSubscribers))
		for i := range p.ProjectSubscribers {
			subscribers = append(subscribers, p.ProjectSubscribers[i].Payload())
		}

		f["projectSubscribers"] = subscribers
	}

	return f
}

// Validate checks the required fields.
func (p *Project) Validate() error {
	return invalid(validation.ValidateStruct(p,
		validation.Field(&p.TemplateID, validation.Required, is.UUID),
		validation.Field(&p.FirstName, validation.Required),
		validation.Field(&p.LastName, validation.Required),
		validation.Field(&p.Email, validation.Required, is.EmailFormat),
		validation.Field(&p.PhoneNumber, validation.Required),
	))
}

// StageCompletion marks a project stage as completed. It references the
// project either by integer project id or by portal id, never both. Build it
// with NewStageCompletion or one of its typed shortcuts.
type StageCompletion struct {
	projectID *int
	portalID  *string

	CompletedStageLabel string
	CompletedDate       time.Time
	NotifyViaEmail      *bool
	NotifyViaSMS        *bool
}

// NewStageCompletion validates that exactly one of projectID and portalID is
// set and that the stage label is present.
func NewStageCompletion(projectID *int, portalID *string, label string, completedAt time.Time) (*StageCompletion, error) {
	if (projectID == nil) == (portalID == nil) {
		return nil, &ValidationError{Field: "projectId/portalId", Err: ErrProjectOrPortalConflict}
	}

	if portalID != nil {
		err := validation.Validate(*portalID, validation.Required)
		if err != nil {
			return nil, &ValidationError{Field: "portalId", Err: err}
		}
	}

	err := validation.Validate(label, validation.Required)
	if err != nil {
		return nil, &ValidationError{Field: "completedStageLabel", Err: err}
	}

	return &StageCompletion{
		projectID:           projectID,
		portalID:            portalID,
		CompletedStageLabel: label,
		CompletedDate:       completedAt,
	}, nil
}

// NewProjectStageCompletion references the project by its integer id.
func NewProjectStageCompletion(projectID int, label string, completedAt time.Time) (*StageCompletion, error) {
	return NewStageCompletion(&projectID, nil, label, completedAt)
}

// NewPortalStageCompletion references the project by its portal id.
func NewPortalStageCompletion(portalID string, label string, completedAt time.Time) (*StageCompletion, error) {
	return NewStageCompletion(nil, &portalID, label, completedAt)
}

// ProjectID returns the referenced project id, if any.
func (s *StageCompletion) ProjectID() (int, bool) {
	if s.projectID == nil {
		return 0, false
	}

	return *s.projectID, true
}

// PortalID returns the referenced portal id, if any.
func (s *StageCompletion) PortalID() (string, bool) {
	if s.portalID == nil {
		return "", false
	}

	return *s.portalID, true
}

// Validate re-checks the reference rule. It only fails for values that
// were not built through NewStageCompletion.
func (s *StageCompletion) Validate() error {
	if (s.projectID == nil) == (s.portalID == nil) {
		return &ValidationError{Field: "projectId/portalId", Err: ErrProjectOrPortalConflict}
	}

	return nil
}

// Payload implements Payload.
func (s *StageCompletion) Payload() map[string]any {
	f := fields{
		"completedStageLabel": s.CompletedStageLabel,
		"completedDate":       s.CompletedDate.Format(time.RFC3339),
	}
	optional(f, "projectId", s.projectID)
	optional(f, "portalId", s.portalID)
	optional(f, "notifyViaEmail", s.NotifyViaEmail)
	optional(f, "notifyViaSMS", s.NotifyViaSMS)

	return f
}

// MarshalJSON encodes the sparse payload.
func (s *StageCompletion) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Payload())
}

// PortalStage is one stage of a customer portal creation request.
type PortalStage struct {
	Name        string `json:"name"        yaml:"name"`
	Label       string `json:"label"       yaml:"label"`
	Description string `json:"description" yaml:"description"`
	Order       int    `json:"order"       yaml:"order"`
}

// CustomerPortalRequest creates a customer portal together with its stages.
type CustomerPortalRequest struct {
	CustomerEmail       string        `json:"customerEmail"                 yaml:"customerEmail"`
	CustomerName        string        `json:"customerName"                  yaml:"customerName"`
	CustomerPhone       string        `json:"customerPhone"                 yaml:"customerPhone"`
	ProjectName         string        `json:"projectName"                   yaml:"projectName"`
	Stages              []PortalStage `json:"stages"                        yaml:"stages"`
	Address1            *string       `json:"address1,omitempty"            yaml:"address1,omitempty"`
	Address2            *string       `json:"address2,omitempty"            yaml:"address2,omitempty"`
	City                *string       `json:"city,omitempty"                yaml:"city,omitempty"`
	StateCode           *string       `json:"stateCode,omitempty"           yaml:"stateCode,omitempty"`
	Zip                 *string       `json:"zip,omitempty"                 yaml:"zip,omitempty"`
	ProjectContactEmail *string       `json:"projectContactEmail,omitempty" yaml:"projectContactEmail,omitempty"`
	ProjectContactPhone *string       `json:"projectContactPhone,omitempty" yaml:"projectContactPhone,omitempty"`
	EnableReferrals     *bool         `json:"enableReferrals,omitempty"     yaml:"enableReferrals,omitempty"`
}

// Payload implements Payload.
func (r *CustomerPortalRequest) Payload() map[string]any {
	stages := make([]any, 0, len(r.Stages))
	for _, stage := range r.Stages {
		stages = append(stages, map[string]any{
			"name":        stage.Name,
			"label":       stage.Label,
			"description": stage.Description,
			"order":       stage.Order,
		})
	}

	f := fields{
		"customerEmail": r.CustomerEmail,
		"customerName":  r.CustomerName,
		"customerPhone": r.CustomerPhone,
		"projectName":   r.ProjectName,
		"stages":        stages,
	}
	optional(f, "address1", r.Address1)
	optional(f, "address2", r.Address2)
	optional(f, "city", r.City)
	optional(f, "stateCode", r.StateCode)
	optional(f, "zip", r.Zip)
	optional(f, "projectContactEmail", r.ProjectContactEmail)
	optional(f, "projectContactPhone", r.ProjectContactPhone)
	optional(f, "enableReferrals", r.EnableReferrals)

	return f
}

// Validate checks the required fields.
func (r *CustomerPortalRequest) Validate() error {
	return invalid(validation.ValidateStruct(r,
		validation.Field(&r.CustomerEmail, validation.Required, is.EmailFormat),
		validation.Field(&r.CustomerName, validation.Required),
		validation.Field(&r.CustomerPhone, validation.Required),
		validation.Field(&r.ProjectName, validation.Required),
		validation.Field(&r.Stages, validation.Required),
	))
}

// ProjectStage is a stage attached directly to a project rather than a template.
type ProjectStage struct {
	ProjectStageID        *int    `json:"projectStageId,omitempty"        yaml:"projectStageId,omitempty"`
	ProjectID             string  `json:"projectId"                       yaml:"projectId"`
	StageName             string  `json:"stageName"                       yaml:"stageName"`
	StageDescription      string  `json:"stageDescription"                yaml:"stageDescription"`
	StagePromptButtonCopy *string `json:"stagePromptButtonCopy,omitempty" yaml:"stagePromptButtonCopy,omitempty"`
	StagePromptButtonURL  *string `json:"stagePromptButtonUrl,omitempty"  yaml:"stagePromptButtonUrl,omitempty"`
}

// Payload implements Payload.
func (s *ProjectStage) Payload() map[string]any {
	f := fields{
		"projectId":        s.ProjectID,
		"stageName":        s.StageName,
		"stageDescription": s.StageDescription,
	}
	optional(f, "projectStageId", s.ProjectStageID)
	optional(f, "stagePromptButtonCopy", s.StagePromptButtonCopy)
	optional(f, "stagePromptButtonUrl", s.StagePromptButtonURL)

	return f
}

// PortalCustomer attaches a customer to an existing project.
type PortalCustomer struct {
	PortalCustomerID   *int    `json:"portalCustomerId,omitempty" yaml:"portalCustomerId,omitempty"`
	ProjectID          string  `json:"projectId"                  yaml:"projectId"`
	FirstName          string  `json:"firstName"                  yaml:"firstName"`
	LastName           string  `json:"lastName"                   yaml:"lastName"`
	Email              string  `json:"email"                      yaml:"email"`
	PhoneNumber        string  `json:"phoneNumber"                yaml:"phoneNumber"`
	Address            *string `json:"address,omitempty"          yaml:"address,omitempty"`
	City               *string `json:"city,omitempty"             yaml:"city,omitempty"`
	StateCode          *string `json:"stateCode,omitempty"        yaml:"stateCode,omitempty"`
	Zip                *string `json:"zip,omitempty"              yaml:"zip,omitempty"`
	NotifyViaEmail     bool    `json:"notifyViaEmail"             yaml:"notifyViaEmail"`
	NotifyViaSMS       bool    `json:"notifyViaSMS"               yaml:"notifyViaSMS"`
	CompleteFirstStage bool    `json:"completeFirstStage"         yaml:"completeFirstStage"`
	CountryID          int     `json:"countryId"                  yaml:"countryId"`
}

// Payload implements Payload.
func (c *PortalCustomer) Payload() map[string]any {
	f := fields{
		"projectId":          c.ProjectID,
		"firstName":          c.FirstName,
		"lastName":           c.LastName,
		"email":              c.Email,
		"phoneNumber":        c.PhoneNumber,
		"notifyViaEmail":     c.NotifyViaEmail,
		"notifyViaSMS":       c.NotifyViaSMS,
		"completeFirstStage": c.CompleteFirstStage,
		"countryId":          c.CountryID,
	}
	optional(f, "portalCustomerId", c.PortalCustomerID)
	optional(f, "address", c.Address)
	optional(f, "city", c.City)
	optional(f, "stateCode", c.StateCode)
	optional(f, "zip", c.Zip)

	return f
}

// PortalStageChange moves a portal to a completed stage.
type PortalStageChange struct {
	PortalID      string    `json:"portalId"          yaml:"portalId"`
	StageID       *int      `json:"stageId,omitempty" yaml:"stageId,omitempty"`
	DateCompleted time.Time `json:"dateCompleted"     yaml:"dateCompleted"`
	Label         string    `json:"label"             yaml:"label"`
}

// NewPortalStageChange validates the portal id and label.
func NewPortalStageChange(portalID string, stageID *int, label string, completedAt time.Time) (*PortalStageChange, error) {
	change := &PortalStageChange{
		PortalID:      portalID,
		StageID:       stageID,
		DateCompleted: completedAt,
		Label:         label,
	}

	err := validation.ValidateStruct(change,
		validation.Field(&change.PortalID, validation.Required),
		validation.Field(&change.Label, validation.Required),
	)
	if err != nil {
		return nil, &ValidationError{Err: err}
	}

	return change, nil
}

// Payload implements Payload.
func (c *PortalStageChange) Payload() map[string]any {
	f := fields{
		"portalId":      c.PortalID,
		"dateCompleted": c.DateCompleted.Format(time.RFC3339),
		"label":         c.Label,
	}
	optional(f, "stageId", c.StageID)

	return f
}

// ValidateTemplateID checks that id has UUID shape before it is placed in a
// request path or query.
func ValidateTemplateID(id string) error {
	err := validation.Validate(id, validation.Required, is.UUID)
	if err != nil {
		return &ValidationError{Field: "templateId", Err: fmt.Errorf("%w: %w", ErrInvalidTemplateID, err)}
	}

	return nil
}
