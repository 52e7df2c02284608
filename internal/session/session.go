package session

import "warranty_hub/internal/domain/entities"

// Session identifies the dashboard caller for one request. It is built from
// the bearer token by the HTTP middleware and handed to collaborators
// explicitly; nothing reads it from package-level state.
type Session struct {
	Token     string
	AccountID string
	Name      string
	Role      entities.Role
}
