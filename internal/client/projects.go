package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/portalcx/portalcx-go/internal/constants"
	"github.com/portalcx/portalcx-go/internal/http"
	"github.com/portalcx/portalcx-go/pkg/portalcx"
)

// ProjectsClient implements portalcx.ProjectsClient.
type ProjectsClient struct {
	httpClient *http.Client
	encoding   portalcx.BodyEncoding
}

// NewProjectsClient creates a new projects client. encoding selects how
// Create sends the project; an empty value means multipart.
func NewProjectsClient(httpClient *http.Client, encoding portalcx.BodyEncoding) *ProjectsClient {
	if encoding == "" {
		encoding = portalcx.EncodingMultipart
	}

	return &ProjectsClient{
		httpClient: httpClient,
		encoding:   encoding,
	}
}

// Create implements portalcx.ProjectsClient.Create.
func (c *ProjectsClient) Create(ctx context.Context, project *portalcx.Project) (*portalcx.Result, error) {
	var (
		result *portalcx.Result
		err    error
	)

	switch c.encoding {
	case portalcx.EncodingJSON:
		result, err = c.httpClient.Post(ctx, constants.APIPathCreateProject, project.Payload())
	case portalcx.EncodingMultipart:
		result, err = c.httpClient.PostForm(ctx, constants.APIPathCreateProject, project.Payload())
	default:
		return nil, fmt.Errorf("creating project: %w: %s", portalcx.ErrUnknownEncoding, c.encoding)
	}

	if err != nil {
		return nil, fmt.Errorf("creating project: %w", err)
	}

	return result, nil
}

// Delete implements portalcx.ProjectsClient.Delete.
func (c *ProjectsClient) Delete(ctx context.Context, projectID int) (*portalcx.Result, error) {
	query := url.Values{constants.QueryProjectID: []string{strconv.Itoa(projectID)}}

	result, err := c.httpClient.Delete(ctx, constants.APIPathDeleteProject, query)
	if err != nil {
		return nil, fmt.Errorf("deleting project: %w", err)
	}

	return result, nil
}

// CompleteStage implements portalcx.ProjectsClient.CompleteStage.
func (c *ProjectsClient) CompleteStage(ctx context.Context, completion *portalcx.StageCompletion) (*portalcx.Result, error) {
	err := completion.Validate()
	if err != nil {
		return nil, fmt.Errorf("completing project stage: %w", err)
	}

	result, err := c.httpClient.Post(ctx, constants.APIPathCompleteProjectStage, completion.Payload())
	if err != nil {
		return nil, fmt.Errorf("completing project stage: %w", err)
	}

	return result, nil
}

// CreateStage implements portalcx.ProjectsClient.CreateStage.
func (c *ProjectsClient) CreateStage(ctx context.Context, stage *portalcx.ProjectStage) (*portalcx.Result, error) {
	result, err := c.httpClient.Post(ctx, constants.APIPathCreateProjectStage, stage.Payload())
	if err != nil {
		return nil, fmt.Errorf("creating project stage: %w", err)
	}

	return result, nil
}

// ListStages implements portalcx.ProjectsClient.ListStages.
func (c *ProjectsClient) ListStages(ctx context.Context, projectID string) (*portalcx.Result, error) {
	query := url.Values{constants.QueryProjectID: []string{projectID}}

	result, err := c.httpClient.Get(ctx, constants.APIPathGetStagesByProjectID, query)
	if err != nil {
		return nil, fmt.Errorf("listing project stages: %w", err)
	}

	return result, nil
}

// DeleteStage implements portalcx.ProjectsClient.DeleteStage.
func (c *ProjectsClient) DeleteStage(ctx context.Context, projectStageID int) (*portalcx.Result, error) {
	query := url.Values{constants.QueryProjectStageID: []string{strconv.Itoa(projectStageID)}}

	result, err := c.httpClient.Delete(ctx, constants.APIPathDeleteProjectStage, query)
	if err != nil {
		return nil, fmt.Errorf("deleting project stage: %w", err)
	}

	return result, nil
}
