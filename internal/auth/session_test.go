package auth_test

import (
	"errors"
	"testing"

	"github.com/portalcx/portalcx-go/internal/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errDiskFull = errors.New("disk full")

type recordingPersister struct {
	baseURL string
	tokens  []string
	err     error
}

func (p *recordingPersister) UpdateToken(baseURL, token string) error {
	p.baseURL = baseURL
	p.tokens = append(p.tokens, token)

	return p.err
}

func TestSession(t *testing.T) {
	t.Parallel()

	session := auth.NewSession("")
	assert.Empty(t, session.Credential())

	session.SetCredential("T1")
	assert.Equal(t, "T1", session.Credential())

	session.SetCredential("T2")
	assert.Equal(t, "T2", session.Credential())

	session.Clear()
	assert.Empty(t, session.Credential())
}

func TestSession_Seeded(t *testing.T) {
	t.Parallel()

	var source auth.CredentialSource = auth.NewSession("seed")
	assert.Equal(t, "seed", source.Credential())
}

func TestConfigSession(t *testing.T) {
	t.Parallel()

	t.Run("persists every new token", func(t *testing.T) {
		t.Parallel()

		persister := &recordingPersister{}
		session := auth.NewConfigSession(persister, "https://api.portalcx.com", "initial")

		assert.Equal(t, "initial", session.Credential())
		assert.Empty(t, persister.tokens)

		session.SetCredential("T1")
		session.Clear()

		require.NoError(t, session.PersistError())
		assert.Equal(t, "https://api.portalcx.com", persister.baseURL)
		assert.Equal(t, []string{"T1", ""}, persister.tokens)
		assert.Empty(t, session.Credential())
	})

	t.Run("keeps token when persistence fails", func(t *testing.T) {
		t.Parallel()

		persister := &recordingPersister{err: errDiskFull}
		session := auth.NewConfigSession(persister, "https://api.portalcx.com", "")

		session.SetCredential("T1")

		assert.Equal(t, "T1", session.Credential())
		require.ErrorIs(t, session.PersistError(), errDiskFull)
	})

	t.Run("without persister", func(t *testing.T) {
		t.Parallel()

		session := auth.NewConfigSession(nil, "https://api.portalcx.com", "")
		session.SetCredential("T1")

		assert.Equal(t, "T1", session.Credential())
		require.ErrorIs(t, session.PersistError(), auth.ErrNoConfigPersister)
	})
}
