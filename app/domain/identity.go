package domain

import "github.com/google/uuid"

// Identity is the credential-holding principal managed by the external
// identity provider. This service only ever sees its id and email.
type Identity struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

// SessionToken is the opaque token returned by the identity provider
// after a successful authentication.
type SessionToken string

// AuthenticatedSession couples a live session token with the identity
// it belongs to.
type AuthenticatedSession struct {
	Token    SessionToken `json:"token"`
	Identity Identity     `json:"identity"`
}
