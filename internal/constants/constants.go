package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP defaults.
const (
	// DefaultUserAgent is sent when the caller does not override it.
	DefaultUserAgent = "portalcx-go/1.0"

	// DefaultLogLevel is the hclog level used when none is configured.
	DefaultLogLevel = "warn"

	// CLIHTTPTimeout bounds each request made by the CLI.
	CLIHTTPTimeout = 30 * time.Second
)

// HTTP status codes the API treats as success. Anything else, 201 included,
// is reported as a DomainError.
const (
	HTTPStatusOK        = 200
	HTTPStatusNoContent = 204
)

// Header names and values.
const (
	HeaderAuthorization = "Authorization"
	HeaderContentType   = "Content-Type"
	HeaderAccept        = "Accept"
	HeaderUserAgent     = "User-Agent"

	BearerPrefix    = "Bearer "
	ContentTypeJSON = "application/json"
)

// Response body handling.
const (
	// ErrorMessageField is the JSON key carrying the error text on failures.
	ErrorMessageField = "errorMessage"

	// UnknownErrorMessage is used when a JSON error body has no errorMessage.
	UnknownErrorMessage = "Unknown error"

	// DeletedMarker is the substring that makes delete endpoints return raw text.
	DeletedMarker = "deleted"

	// TokenField is the key holding the bearer token in the login response.
	TokenField = "token"
)

// Auth management paths.
const (
	APIPathLogin    = "/api/AuthManagement/Login"
	APIPathRegister = "/api/AuthManagement/Register"
)

// Template paths.
const (
	APIPathCreateTemplate        = "/api/Admin/Template/CreateTemplate"
	APIPathDeleteTemplate        = "/api/Admin/Template/DeleteTemplate"
	APIPathCreateTemplateStage   = "/api/Admin/Template/CreateStage"
	APIPathGetStagesByTemplateID = "/api/Admin/Template/GetAllStagesByTemplateId"
	APIPathDeleteTemplateStage   = "/api/Admin/Template/DeleteStage"
)

// Project paths.
const (
	APIPathCreateProject        = "/api/Admin/Project/CreateProject"
	APIPathDeleteProject        = "/api/Admin/Project/DeleteProject"
	APIPathCompleteProjectStage = "/api/Admin/Project/CompleteProjectStage"
	APIPathCreateProjectStage   = "/api/Admin/Project/CreateStage"
	APIPathGetStagesByProjectID = "/api/Admin/Project/GetAllStagesByProjectId"
	APIPathDeleteProjectStage   = "/api/Admin/Project/DeleteStage"
)

// Portal and customer paths.
const (
	APIPathCreateCustomerPortal = "/api/Customer/portal/create"
	APIPathCreatePortalCustomer = "/api/Admin/Customer/create"
	APIPathPortalStageChange    = "/api/Admin/Portal/StageChange"
)

// Query parameter names.
const (
	QueryTemplateID      = "templateId"
	QueryTemplateStageID = "templateStageId"
	QueryProjectID       = "projectId"
	QueryProjectStageID  = "projectStageId"
)

// CLI configuration.
const (
	// MinimumArgumentCount is the argument count for "config set KEY VALUE".
	MinimumArgumentCount = 2

	DefaultConfigDirName  = ".portalcx"
	DefaultConfigFileName = "config"
	DefaultConfigFileType = "yml"
	EnvPrefix             = "PORTALCX"

	ConfigKeyAPIBaseURL      = "api_base_url"
	ConfigKeyToken           = "token"
	ConfigKeyEmail           = "email"
	ConfigKeyPassword        = "password"
	ConfigKeyOutput          = "output"
	ConfigKeyVerbose         = "verbose"
	ConfigKeyLogLevel        = "log_level"
	ConfigKeyProjectEncoding = "project_encoding"
)

// Output formats.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)
