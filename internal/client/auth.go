package client

import (
	"context"
	"fmt"

	"github.com/portalcx/portalcx-go/internal/auth"
	"github.com/portalcx/portalcx-go/internal/constants"
	"github.com/portalcx/portalcx-go/internal/http"
	"github.com/portalcx/portalcx-go/pkg/portalcx"
)

// AuthClient implements portalcx.AuthClient.
type AuthClient struct {
	httpClient *http.Client
	session    auth.Store
}

// NewAuthClient creates a new auth client. Tokens obtained by Login are
// stored on session.
func NewAuthClient(httpClient *http.Client, session auth.Store) *AuthClient {
	return &AuthClient{
		httpClient: httpClient,
		session:    session,
	}
}

// Login implements portalcx.AuthClient.Login.
func (c *AuthClient) Login(ctx context.Context, email, password string) (string, error) {
	token, err := c.login(ctx, email, password)
	if err != nil {
		return "", err
	}

	if c.session != nil {
		c.session.SetCredential(token)
	}

	return token, nil
}

// login exchanges credentials for a token without storing it.
func (c *AuthClient) login(ctx context.Context, email, password string) (string, error) {
	credentials := &portalcx.Credentials{Email: email, Password: password}

	result, err := c.httpClient.Post(ctx, constants.APIPathLogin, credentials.Payload())
	if err != nil {
		return "", fmt.Errorf("logging in: %w", err)
	}

	return tokenFromResult(result)
}

// Register implements portalcx.AuthClient.Register.
func (c *AuthClient) Register(ctx context.Context, request *portalcx.RegistrationRequest) (*portalcx.Result, error) {
	result, err := c.httpClient.Post(ctx, constants.APIPathRegister, request.Payload())
	if err != nil {
		return nil, fmt.Errorf("registering user: %w", err)
	}

	return result, nil
}

func tokenFromResult(result *portalcx.Result) (string, error) {
	object := result.Map()

	if token, ok := object[constants.TokenField].(string); ok && token != "" {
		return token, nil
	}

	if data, ok := object["data"].(map[string]interface{}); ok {
		if token, ok := data[constants.TokenField].(string); ok && token != "" {
			return token, nil
		}
	}

	return "", portalcx.ErrTokenMissing
}
