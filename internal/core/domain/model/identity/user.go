// Package identity holds the User entity and roles. Users are read-only for
// the ordering engine; it resolves the acting principal and notification
// recipients through them.
package identity

import (
	"errors"
	"strings"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

// User is an account of the ordering system.
type User struct {
	id          kernel.UUID
	username    string
	role        Role
	email       string
	displayName string
}

// NewUser creates a user. Email may be empty, in which case the user receives no notifications.
func NewUser(id kernel.UUID, username string, role Role, email string, displayName string) (*User, error) {
	u := &User{
		email:       strings.TrimSpace(email),
		displayName: strings.TrimSpace(displayName),
	}

	if err := errors.Join(
		u.setID(id),
		u.setUsername(username),
		role.Validate(),
	); err != nil {
		return nil, err
	}
	u.role = role

	return u, nil
}

func (u *User) ID() kernel.UUID { return u.id }
func (u *User) Username() string { return u.username }
func (u *User) Role() Role { return u.role }
func (u *User) Email() string { return u.email }
func (u *User) DisplayName() string { return u.displayName }

// HasEmail reports whether a notification can be addressed to the user.
func (u *User) HasEmail() bool {
	return u.email != ""
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setUsername(username string) error {
	if strings.TrimSpace(username) == "" {
		return errs.NewValueIsRequiredError("username")
	}
	u.username = strings.TrimSpace(username)
	return nil
}
