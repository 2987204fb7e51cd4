// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"
)

// User is the single record the service manages.
type User struct {
	ID           uint64    // Numeric primary key assigned by the store.
	Name         string    // Display name.
	Email        string    // Login identifier, intended to be unique.
	Address      string    // Free-form postal address.
	PasswordHash *string   // bcrypt digest; nil when no password was ever set.
	CreatedAt    time.Time // Timestamp of when this user was created.
	UpdatedAt    time.Time // Timestamp of the last modification.
}

// HasPassword reports whether a non-empty password hash is stored.
func (u *User) HasPassword() bool {
	return u != nil && u.PasswordHash != nil && *u.PasswordHash != ""
}

// Principal returns the claims that may be embedded in a token for this user.
func (u *User) Principal() Principal {
	return Principal{
		ID:      u.ID,
		Name:    u.Name,
		Email:   u.Email,
		Address: u.Address,
	}
}

// View returns the public representation of the user.
func (u *User) View() *UserView {
	return &UserView{
		ID:      u.ID,
		Name:    u.Name,
		Email:   u.Email,
		Address: u.Address,
	}
}

// ListItem returns the reduced projection used by the user listing.
func (u *User) ListItem() *UserListItem {
	return &UserListItem{
		Name:    u.Name,
		Email:   u.Email,
		Address: u.Address,
	}
}

// Principal is the authenticated identity carried by a bearer token.
// It never contains the password.
type Principal struct {
	ID      uint64 `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// UserView is the user as returned to clients.
type UserView struct {
	ID      uint64 `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// UserListItem is the projection returned by the listing endpoint.
type UserListItem struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
}
