package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/portalcx/portalcx-go/internal/constants"
	"github.com/portalcx/portalcx-go/internal/http"
	"github.com/portalcx/portalcx-go/pkg/portalcx"
)

// TemplatesClient implements portalcx.TemplatesClient.
type TemplatesClient struct {
	httpClient *http.Client
}

// NewTemplatesClient creates a new templates client.
func NewTemplatesClient(httpClient *http.Client) *TemplatesClient {
	return &TemplatesClient{
		httpClient: httpClient,
	}
}

// Create implements portalcx.TemplatesClient.Create. The template is sent as
// multipart/form-data; the new id comes back in the envelope message.
func (c *TemplatesClient) Create(ctx context.Context, template *portalcx.Template) (*portalcx.Result, error) {
	result, err := c.httpClient.PostForm(ctx, constants.APIPathCreateTemplate, template.Payload())
	if err != nil {
		return nil, fmt.Errorf("creating template: %w", err)
	}

	return result, nil
}

// Delete implements portalcx.TemplatesClient.Delete.
func (c *TemplatesClient) Delete(ctx context.Context, templateID string) (*portalcx.Result, error) {
	query := url.Values{constants.QueryTemplateID: []string{templateID}}

	result, err := c.httpClient.Delete(ctx, constants.APIPathDeleteTemplate, query)
	if err != nil {
		return nil, fmt.Errorf("deleting template: %w", err)
	}

	return result, nil
}
