// Package common defines shared constants and sentinel errors used across
// the VolunteerHub client layers. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// ErrUnauthenticated is raised locally, before any network call, when an
	// operation requires a stored credential and none is present.
	ErrUnauthenticated = errors.New("unauthenticated")
)
