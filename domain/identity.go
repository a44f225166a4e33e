// Package domain contains core concepts of the email store.
// This file defines the verified identity attached to a call.
package domain

// Identity is what the token verifier vouches for.
type Identity struct {
	UID   string
	Roles []string
}
