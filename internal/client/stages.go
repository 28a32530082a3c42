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

// StagesClient implements portalcx.StagesClient.
type StagesClient struct {
	httpClient *http.Client
}

// NewStagesClient creates a new template stages client.
func NewStagesClient(httpClient *http.Client) *StagesClient {
	return &StagesClient{
		httpClient: httpClient,
	}
}

// Create implements portalcx.StagesClient.Create.
func (c *StagesClient) Create(ctx context.Context, stage *portalcx.TemplateStage) (*portalcx.Result, error) {
	result, err := c.httpClient.Post(ctx, constants.APIPathCreateTemplateStage, stage.Payload())
	if err != nil {
		return nil, fmt.Errorf("creating template stage: %w", err)
	}

	return result, nil
}

// ListByTemplate implements portalcx.StagesClient.ListByTemplate.
func (c *StagesClient) ListByTemplate(ctx context.Context, templateID string) (*portalcx.Result, error) {
	query := url.Values{constants.QueryTemplateID: []string{templateID}}

	result, err := c.httpClient.Get(ctx, constants.APIPathGetStagesByTemplateID, query)
	if err != nil {
		return nil, fmt.Errorf("listing template stages: %w", err)
	}

	return result, nil
}

// Delete implements portalcx.StagesClient.Delete.
func (c *StagesClient) Delete(ctx context.Context, templateStageID int) (*portalcx.Result, error) {
	query := url.Values{constants.QueryTemplateStageID: []string{strconv.Itoa(templateStageID)}}

	result, err := c.httpClient.Delete(ctx, constants.APIPathDeleteTemplateStage, query)
	if err != nil {
		return nil, fmt.Errorf("deleting template stage: %w", err)
	}

	return result, nil
}
