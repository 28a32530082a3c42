package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/portalcx/portalcx-go/internal/auth"
	"github.com/portalcx/portalcx-go/pkg/portalcx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthClient_Login(t *testing.T) {
	t.Parallel()

	t.Run("stores token on session", func(t *testing.T) {
		t.Parallel()

		server, requests := newRecordingServer(t, http.StatusOK, `{"token":"T1","expiration":"2030-01-01"}`)
		session := auth.NewSession("")
		authClient := NewAuthClient(newTestHTTPClient(server.URL, session), session)

		token, err := authClient.Login(context.Background(), "admin@example.com", "secret")
		require.NoError(t, err)
		assert.Equal(t, "T1", token)
		assert.Equal(t, "T1", session.Credential())

		recorded := assertSingleRequest(t, requests, http.MethodPost, "/api/AuthManagement/Login")
		assert.Equal(t, "application/json", recorded.ContentType)
		assert.Equal(t, map[string]interface{}{"email": "admin@example.com", "password": "secret"}, recorded.JSON)
		assert.Empty(t, recorded.Authorization)
	})

	t.Run("token inside data", func(t *testing.T) {
		t.Parallel()

		server, _ := newRecordingServer(t, http.StatusOK, `{"status":200,"data":{"token":"T2"}}`)
		authClient := NewAuthClient(newTestHTTPClient(server.URL, nil), nil)

		token, err := authClient.Login(context.Background(), "admin@example.com", "secret")
		require.NoError(t, err)
		assert.Equal(t, "T2", token)
	})

	t.Run("missing token", func(t *testing.T) {
		t.Parallel()

		server, _ := newRecordingServer(t, http.StatusOK, `{"status":200}`)
		session := auth.NewSession("old")
		authClient := NewAuthClient(newTestHTTPClient(server.URL, session), session)

		_, err := authClient.Login(context.Background(), "admin@example.com", "secret")
		require.ErrorIs(t, err, portalcx.ErrTokenMissing)
		assert.Equal(t, "old", session.Credential())
	})

	t.Run("bad credentials", func(t *testing.T) {
		t.Parallel()

		server, _ := newRecordingServer(t, http.StatusUnauthorized, `{"errorMessage":"Invalid credentials"}`)
		authClient := NewAuthClient(newTestHTTPClient(server.URL, nil), nil)

		_, err := authClient.Login(context.Background(), "admin@example.com", "wrong")
		require.Error(t, err)
		assert.True(t, portalcx.IsUnauthorized(err))

		var apiErr *portalcx.DomainError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "Invalid credentials", apiErr.Message)
	})
}

func TestAuthClient_Register(t *testing.T) {
	t.Parallel()

	server, requests := newRecordingServer(t, http.StatusOK, `{"status":200,"message":"Registered"}`)
	authClient := NewAuthClient(newTestHTTPClient(server.URL, nil), nil)

	result, err := authClient.Register(context.Background(), &portalcx.RegistrationRequest{
		Email:        "owner@example.com",
		Password:     "secret",
		FirstName:    "Ada",
		LastName:     "Lovelace",
		CompanyName:  "Solar Co",
		ContactPhone: "5551234567",
	})
	require.NoError(t, err)

	envelope, err := result.Envelope()
	require.NoError(t, err)
	assert.Equal(t, "Registered", envelope.Message)

	recorded := assertSingleRequest(t, requests, http.MethodPost, "/api/AuthManagement/Register")
	assert.Equal(t, "Solar Co", recorded.JSON["companyName"])
	assert.NotContains(t, recorded.JSON, "phone")
}
