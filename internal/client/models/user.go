// Package models defines the client-side mirror of server-held identity and
// event data for the VolunteerHub API.
package models

import "fmt"

// Role is the closed set of account roles known to the platform.
type Role string

const (
	RoleNGO        Role = "ngo"
	RoleIndividual Role = "individual"
	RoleAdmin      Role = "admin"
)

// ParseRole validates s against the closed role set.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleNGO, RoleIndividual, RoleAdmin:
		return Role(s), nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

// Address is the optional postal address attached to a user.
type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Country string `json:"country"`
}

// UserRecord is the authenticated identity mirrored from the server.
// Profile is a free-form extension map used for organization metadata.
type UserRecord struct {
	ID       string         `json:"id"`
	Email    string         `json:"email"`
	First    string         `json:"first"`
	Last     string         `json:"last"`
	Role     Role           `json:"role"`
	Verified bool           `json:"verified"`
	Avatar   string         `json:"avatar,omitempty"`
	Profile  map[string]any `json:"profile,omitempty"`
	Address  *Address       `json:"address,omitempty"`
}

// Clone returns a deep copy of the record. A nil receiver clones to nil.
func (u *UserRecord) Clone() *UserRecord {
	if u == nil {
		return nil
	}
	c := *u
	if u.Profile != nil {
		c.Profile = make(map[string]any, len(u.Profile))
		for k, v := range u.Profile {
			c.Profile[k] = v
		}
	}
	if u.Address != nil {
		a := *u.Address
		c.Address = &a
	}
	return &c
}
