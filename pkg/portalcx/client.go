package portalcx

import (
	"context"
	"time"
)

// AuthClient covers /api/AuthManagement.
type AuthClient interface {
	Login(ctx context.Context, email, password string) (string, error)
	Register(ctx context.Context, request *RegistrationRequest) (*Result, error)
}

// TemplatesClient covers template creation and deletion.
type TemplatesClient interface {
	Create(ctx context.Context, template *Template) (*Result, error)
	Delete(ctx context.Context, templateID string) (*Result, error)
}

// StagesClient covers the stages of a template.
type StagesClient interface {
	Create(ctx context.Context, stage *TemplateStage) (*Result, error)
	ListByTemplate(ctx context.Context, templateID string) (*Result, error)
	Delete(ctx context.Context, templateStageID int) (*Result, error)
}

// ProjectsClient covers /api/Admin/Project.
type ProjectsClient interface {
	Create(ctx context.Context, project *Project) (*Result, error)
	Delete(ctx context.Context, projectID int) (*Result, error)
	CompleteStage(ctx context.Context, completion *StageCompletion) (*Result, error)
	CreateStage(ctx context.Context, stage *ProjectStage) (*Result, error)
	ListStages(ctx context.Context, projectID string) (*Result, error)
	DeleteStage(ctx context.Context, projectStageID int) (*Result, error)
}

// PortalsClient covers customer portals.
type PortalsClient interface {
	Create(ctx context.Context, request *CustomerPortalRequest) (*Result, error)
	CreateCustomer(ctx context.Context, customer *PortalCustomer) (*Result, error)
	ChangeStage(ctx context.Context, change *PortalStageChange) (*Result, error)
}

// ResourceClients provides access to all resource-specific clients.
type ResourceClients interface {
	Auth() AuthClient
	Templates() TemplatesClient
	Stages() StagesClient
	Projects() ProjectsClient
	Portals() PortalsClient
}

// Client is the single entry point. All resource clients share one
// credential: SetToken is observed by every one of them. Token mutation is
// not synchronized; callers sharing a Client across goroutines must
// serialize Login and SetToken themselves.
type Client interface {
	ResourceClients

	Token() string
	SetToken(token string)

	Login(ctx context.Context, email, password string) (string, error)
	Register(ctx context.Context, request *RegistrationRequest) (*Result, error)

	CreateTemplate(ctx context.Context, template *Template) (*Result, error)
	DeleteTemplate(ctx context.Context, templateID string) (*Result, error)

	CreateTemplateStage(ctx context.Context, stage *TemplateStage) (*Result, error)
	GetStagesByTemplate(ctx context.Context, templateID string) (*Result, error)
	DeleteTemplateStage(ctx context.Context, templateStageID int) (*Result, error)

	CreateProject(ctx context.Context, project *Project) (*Result, error)
	DeleteProject(ctx context.Context, projectID int) (*Result, error)
	CompleteProjectStage(ctx context.Context, completion *StageCompletion) (*Result, error)

	CreateCustomerPortal(ctx context.Context, request *CustomerPortalRequest) (*Result, error)
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// BodyEncoding selects how a request model is put on the wire.
type BodyEncoding string

const (
	// EncodingJSON sends an application/json body.
	EncodingJSON BodyEncoding = "json"
	// EncodingMultipart sends multipart/form-data fields.
	EncodingMultipart BodyEncoding = "multipart"
)

// ParseBodyEncoding parses "json" or "multipart".
func ParseBodyEncoding(value string) (BodyEncoding, error) {
	switch BodyEncoding(value) {
	case EncodingJSON:
		return EncodingJSON, nil
	case EncodingMultipart, "":
		return EncodingMultipart, nil
	default:
		return "", ErrUnknownEncoding
	}
}

// Config represents client configuration for building a Client.
//
// # Authentication
//
// AccessToken, when set, is used as the initial bearer token. Otherwise, if
// Email and Password are both set, pcxclient.New logs in once and keeps the
// returned token. With neither, requests are sent without authentication
// until Login or SetToken is called.
//
// # Timeouts and retries
//
// The client never retries. HTTPTimeout, when non-zero, bounds each request;
// otherwise only the transport defaults and the caller's context apply.
type Config struct {
	// BaseURL of the API, e.g. "https://api.portalcx.com".
	BaseURL string

	// AccessToken is an optional bearer token obtained earlier.
	AccessToken string
	// Email and Password are used for an initial login when AccessToken is empty.
	Email    string
	Password string

	// Logger receives structured logs. When nil an hclog logger at LogLevel is used.
	Logger Logger
	// LogLevel for the default logger ("trace", "debug", "info", "warn", "error").
	LogLevel string
	// Debug enables request and response logging.
	Debug bool
	// UserAgent overrides the default User-Agent header.
	UserAgent string
	// HTTPTimeout bounds a single request when non-zero.
	HTTPTimeout time.Duration

	// ProjectEncoding selects the body encoding of CreateProject. Template
	// creation is always multipart. Defaults to EncodingMultipart.
	ProjectEncoding BodyEncoding
}
