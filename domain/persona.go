// Package domain contains core concepts of the email store.
// This file defines Persona, the end-user record reachable by id or email.
package domain

// Persona is distinct from the raw authentication identity: UID links the two.
type Persona struct {
	ID    string
	UID   string
	Email string
	Name  string
}
