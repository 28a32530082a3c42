package auth

import (
	"errors"
	"fmt"
)

// Static errors for err113 compliance.
var (
	ErrNoConfigPersister = errors.New("no config persister configured")
)

// ConfigPersister defines the interface for persisting config changes.
type ConfigPersister interface {
	UpdateToken(baseURL, token string) error
}

// ConfigSession wraps Session and writes every new token to config so that
// later CLI invocations reuse it.
type ConfigSession struct {
	*Session

	configPersister ConfigPersister
	baseURL         string
	persistErr      error
}

// NewConfigSession creates a new config-persisting session.
func NewConfigSession(configPersister ConfigPersister, baseURL string, initialToken string) *ConfigSession {
	return &ConfigSession{
		Session:         NewSession(initialToken),
		configPersister: configPersister,
		baseURL:         baseURL,
	}
}

// SetCredential stores the token and persists it. A persistence failure does
// not undo the in-memory change; it is reported by PersistError.
func (s *ConfigSession) SetCredential(token string) {
	s.Session.SetCredential(token)
	s.persistErr = s.persist(token)
}

// Clear forgets the token and removes it from config.
func (s *ConfigSession) Clear() {
	s.SetCredential("")
}

// PersistError returns the error of the last persistence attempt, if any.
func (s *ConfigSession) PersistError() error {
	return s.persistErr
}

func (s *ConfigSession) persist(token string) error {
	if s.configPersister == nil {
		return ErrNoConfigPersister
	}

	err := s.configPersister.UpdateToken(s.baseURL, token)
	if err != nil {
		return fmt.Errorf("failed to update API token: %w", err)
	}

	return nil
}
