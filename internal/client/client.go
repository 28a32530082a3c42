package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/portalcx/portalcx-go/internal/auth"
	"github.com/portalcx/portalcx-go/internal/constants"
	"github.com/portalcx/portalcx-go/internal/http"
	"github.com/portalcx/portalcx-go/pkg/portalcx"
)

// Static errors for err113 compliance.
var (
	ErrNoSession = errors.New("no session configured")
)

// Client implements the portalcx.Client interface. Every resource client
// shares one http.Client, which reads the bearer token from one session.
type Client struct {
	httpClient *http.Client
	session    auth.Store
	baseURL    string
	logger     portalcx.Logger

	// Resource clients
	auth      *AuthClient
	templates *TemplatesClient
	stages    *StagesClient
	projects  *ProjectsClient
	portals   *PortalsClient
}

// createLogger returns config.Logger or an hclog-backed default.
func createLogger(config *portalcx.Config) portalcx.Logger {
	if config.Logger != nil {
		return config.Logger
	}

	level := config.LogLevel
	if level == "" {
		level = constants.DefaultLogLevel
	}

	return portalcx.NewHCLogger(nil, level)
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *portalcx.Config, logger portalcx.Logger) []http.Option {
	httpOpts := []http.Option{http.WithLogger(logger)}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.HTTPTimeout))
	}

	return httpOpts
}

// New creates a new PortalCX client. When config carries no access token
// but both email and password, it logs in once before returning.
func New(ctx context.Context, config *portalcx.Config) (*Client, error) {
	if config == nil {
		return nil, portalcx.ErrConfigRequired
	}

	client, err := NewWithSession(config, auth.NewSession(config.AccessToken))
	if err != nil {
		return nil, err
	}

	if config.AccessToken == "" && config.Email != "" && config.Password != "" {
		_, err = client.Login(ctx, config.Email, config.Password)
		if err != nil {
			return nil, fmt.Errorf("initial login: %w", err)
		}
	}

	return client, nil
}

// NewWithSession creates a new PortalCX client around a caller-provided
// session, such as a config-persisting one.
func NewWithSession(config *portalcx.Config, session auth.Store) (*Client, error) {
	if config == nil {
		return nil, portalcx.ErrConfigRequired
	}

	if config.BaseURL == "" {
		return nil, portalcx.ErrBaseURLRequired
	}

	if session == nil {
		return nil, ErrNoSession
	}

	encoding, err := portalcx.ParseBodyEncoding(string(config.ProjectEncoding))
	if err != nil {
		return nil, fmt.Errorf("project encoding %q: %w", config.ProjectEncoding, err)
	}

	logger := createLogger(config)
	httpClient := http.NewClient(config.BaseURL, session, createHTTPClientOptions(config, logger)...)

	client := &Client{
		httpClient: httpClient,
		session:    session,
		baseURL:    httpClient.BaseURL(),
		logger:     logger,
	}

	client.initializeResourceClients(encoding)

	return client, nil
}

func (c *Client) initializeResourceClients(encoding portalcx.BodyEncoding) {
	c.auth = NewAuthClient(c.httpClient, c.session)
	c.templates = NewTemplatesClient(c.httpClient)
	c.stages = NewStagesClient(c.httpClient)
	c.projects = NewProjectsClient(c.httpClient, encoding)
	c.portals = NewPortalsClient(c.httpClient)
}

// BaseURL returns the normalized base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Token implements portalcx.Client.Token.
func (c *Client) Token() string {
	return c.session.Credential()
}

// SetToken implements portalcx.Client.SetToken. The new token is used by
// every resource client from the next request on.
func (c *Client) SetToken(token string) {
	c.session.SetCredential(token)
}

// Login implements portalcx.Client.Login.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	c.logger.Info("Logging into PortalCX API", map[string]interface{}{"email": email})

	token, err := c.auth.login(ctx, email, password)
	if err != nil {
		return "", err
	}

	c.SetToken(token)
	c.logger.Info("Successfully logged into PortalCX API", nil)

	return token, nil
}

// Register implements portalcx.Client.Register.
func (c *Client) Register(ctx context.Context, request *portalcx.RegistrationRequest) (*portalcx.Result, error) {
	return c.auth.Register(ctx, request)
}

// CreateTemplate implements portalcx.Client.CreateTemplate.
func (c *Client) CreateTemplate(ctx context.Context, template *portalcx.Template) (*portalcx.Result, error) {
	return c.templates.Create(ctx, template)
}

// DeleteTemplate implements portalcx.Client.DeleteTemplate.
func (c *Client) DeleteTemplate(ctx context.Context, templateID string) (*portalcx.Result, error) {
	err := portalcx.ValidateTemplateID(templateID)
	if err != nil {
		return nil, err
	}

	return c.templates.Delete(ctx, templateID)
}

// CreateTemplateStage implements portalcx.Client.CreateTemplateStage.
func (c *Client) CreateTemplateStage(ctx context.Context, stage *portalcx.TemplateStage) (*portalcx.Result, error) {
	err := portalcx.ValidateTemplateID(stage.TemplateID)
	if err != nil {
		return nil, err
	}

	return c.stages.Create(ctx, stage)
}

// GetStagesByTemplate implements portalcx.Client.GetStagesByTemplate.
func (c *Client) GetStagesByTemplate(ctx context.Context, templateID string) (*portalcx.Result, error) {
	err := portalcx.ValidateTemplateID(templateID)
	if err != nil {
		return nil, err
	}

	return c.stages.ListByTemplate(ctx, templateID)
}

// DeleteTemplateStage implements portalcx.Client.DeleteTemplateStage.
func (c *Client) DeleteTemplateStage(ctx context.Context, templateStageID int) (*portalcx.Result, error) {
	return c.stages.Delete(ctx, templateStageID)
}

// CreateProject implements portalcx.Client.CreateProject.
func (c *Client) CreateProject(ctx context.Context, project *portalcx.Project) (*portalcx.Result, error) {
	return c.projects.Create(ctx, project)
}

// DeleteProject implements portalcx.Client.DeleteProject.
func (c *Client) DeleteProject(ctx context.Context, projectID int) (*portalcx.Result, error) {
	return c.projects.Delete(ctx, projectID)
}

// CompleteProjectStage implements portalcx.Client.CompleteProjectStage.
func (c *Client) CompleteProjectStage(ctx context.Context, completion *portalcx.StageCompletion) (*portalcx.Result, error) {
	return c.projects.CompleteStage(ctx, completion)
}

// CreateCustomerPortal implements portalcx.Client.CreateCustomerPortal.
func (c *Client) CreateCustomerPortal(ctx context.Context, request *portalcx.CustomerPortalRequest) (*portalcx.Result, error) {
	return c.portals.Create(ctx, request)
}

// Resource client accessors

// Auth implements portalcx.Client.Auth.
func (c *Client) Auth() portalcx.AuthClient {
	return c.auth
}

// Templates implements portalcx.Client.Templates.
func (c *Client) Templates() portalcx.TemplatesClient {
	return c.templates
}

// Stages implements portalcx.Client.Stages.
func (c *Client) Stages() portalcx.StagesClient {
	return c.stages
}

// Projects implements portalcx.Client.Projects.
func (c *Client) Projects() portalcx.ProjectsClient {
	return c.projects
}

// Portals implements portalcx.Client.Portals.
func (c *Client) Portals() portalcx.PortalsClient {
	return c.portals
}

var _ portalcx.Client = (*Client)(nil)
