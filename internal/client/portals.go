package client

import (
	"context"
	"fmt"

	"github.com/portalcx/portalcx-go/internal/constants"
	"github.com/portalcx/portalcx-go/internal/http"
	"github.com/portalcx/portalcx-go/pkg/portalcx"
)

// PortalsClient implements portalcx.PortalsClient.
type PortalsClient struct {
	httpClient *http.Client
}

// NewPortalsClient creates a new portals client.
func NewPortalsClient(httpClient *http.Client) *PortalsClient {
	return &PortalsClient{
		httpClient: httpClient,
	}
}

// Create implements portalcx.PortalsClient.Create.
func (c *PortalsClient) Create(ctx context.Context, request *portalcx.CustomerPortalRequest) (*portalcx.Result, error) {
	result, err := c.httpClient.Post(ctx, constants.APIPathCreateCustomerPortal, request.Payload())
	if err != nil {
		return nil, fmt.Errorf("creating customer portal: %w", err)
	}

	return result, nil
}

// CreateCustomer implements portalcx.PortalsClient.CreateCustomer.
func (c *PortalsClient) CreateCustomer(ctx context.Context, customer *portalcx.PortalCustomer) (*portalcx.Result, error) {
	result, err := c.httpClient.Post(ctx, constants.APIPathCreatePortalCustomer, customer.Payload())
	if err != nil {
		return nil, fmt.Errorf("creating portal customer: %w", err)
	}

	return result, nil
}

// ChangeStage implements portalcx.PortalsClient.ChangeStage.
func (c *PortalsClient) ChangeStage(ctx context.Context, change *portalcx.PortalStageChange) (*portalcx.Result, error) {
	result, err := c.httpClient.Post(ctx, constants.APIPathPortalStageChange, change.Payload())
	if err != nil {
		return nil, fmt.Errorf("changing portal stage: %w", err)
	}

	return result, nil
}
