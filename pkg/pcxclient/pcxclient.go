// Package pcxclient provides the main entry point for creating PortalCX API clients
package pcxclient

import (
	"context"
	"fmt"
	"strings"

	"github.com/portalcx/portalcx-go/internal/client"
	"github.com/portalcx/portalcx-go/pkg/portalcx"
)

// New creates a new PortalCX API client. A base URL without a scheme is
// assumed to be https. When the config carries email and password but no
// access token, New logs in before returning.
func New(ctx context.Context, config *portalcx.Config) (portalcx.Client, error) {
	if config == nil {
		return nil, portalcx.ErrConfigRequired
	}

	if config.BaseURL == "" {
		return nil, portalcx.ErrBaseURLRequired
	}

	normalized := *config
	normalized.BaseURL = NormalizeBaseURL(config.BaseURL)

	// Use the internal client implementation
	pcx, err := client.New(ctx, &normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return pcx, nil
}

// NormalizeBaseURL trims trailing slashes and defaults the scheme to https.
func NormalizeBaseURL(baseURL string) string {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "https://" + baseURL
	}

	return baseURL
}
