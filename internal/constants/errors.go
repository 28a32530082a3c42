package constants

import "errors"

// Configuration errors.
var (
	ErrNoAPIBaseURL     = errors.New("no API base URL configured, use 'portalcx config set api_base_url URL' or PORTALCX_API_BASE_URL")
	ErrUnknownConfigKey = errors.New("unknown configuration key")
	ErrNotLoggedIn      = errors.New("not logged in, use 'portalcx login' first")
)

// Input errors.
var (
	ErrEmailRequired    = errors.New("email is required")
	ErrPasswordRequired = errors.New("password is required")
	ErrInvalidStageSpec = errors.New("stage must be given as NAME:LABEL[:DESCRIPTION]")
	ErrInvalidDate      = errors.New("date must be RFC 3339, e.g. 2024-03-15T09:30:00Z")
	ErrInvalidInteger   = errors.New("value must be an integer")
	ErrUnknownFormat    = errors.New("unknown output format")
)

// Operation errors.
var (
	ErrCascadeDeleteFailed = errors.New("cascade delete failed")
)
