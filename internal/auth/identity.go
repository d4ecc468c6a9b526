package auth

import (
	"github.com/google/uuid"

	"securehub/internal/model"
)

// Identity is the authenticated caller attached to a request after the bearer
// token has been verified and the subject resolved against the user store. The
// admin flag is evaluated once here and reused for every gate on the request.
type Identity struct {
	ID       uuid.UUID
	Username string
	Email    string
	IsAdmin  bool
}

// NewIdentity builds an Identity from a stored user.
func NewIdentity(user *model.User) Identity {
	return Identity{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		IsAdmin:  user.IsAdmin,
	}
}

// Snapshot returns the denormalized copy embedded into articles and comments.
func (i Identity) Snapshot() model.UserSnapshot {
	return model.UserSnapshot{ID: i.ID, Username: i.Username}
}
