package auth

// CredentialSource supplies the bearer token attached to outgoing requests.
// An empty token means the request is sent without an Authorization header.
type CredentialSource interface {
	Credential() string
}

// Store is a CredentialSource whose token can be replaced.
type Store interface {
	CredentialSource
	SetCredential(token string)
}

// Session holds the bearer token shared by every resource client. It is not
// synchronized: concurrent SetCredential calls race with in-flight requests.
type Session struct {
	token string
}

// NewSession creates a session, optionally seeded with a token.
func NewSession(token string) *Session {
	return &Session{token: token}
}

// Credential returns the current token.
func (s *Session) Credential() string {
	return s.token
}

// SetCredential replaces the current token. Later requests observe it.
func (s *Session) SetCredential(token string) {
	s.token = token
}

// Clear forgets the current token.
func (s *Session) Clear() {
	s.token = ""
}
