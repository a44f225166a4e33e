// Package domain contains core concepts of the email store.
// This file defines the Email document and its read state.
// Emails are immutable once stored, except for the Read flag.
package domain

import "time"

// Participant is an address with an optional display name, used in From and To.
type Participant struct {
	Address string `json:"address"`
	Name    string `json:"name,omitempty"`
}

// Email represents a stored message.
// Read only ever moves from false to true.
type Email struct {
	ID      string // assigned by the store
	From    []Participant
	To      []Participant
	Date    time.Time
	Subject string
	Content string
	Read    bool
}

// Draft is the caller supplied part of a new Email.
// ID and Read are never taken from the caller.
type Draft struct {
	From    []Participant
	To      []Participant
	Date    string
	Subject string
	Content string
}

// Recipients returns the addresses of the To participants.
func (e Email) Recipients() []string {
	addresses := make([]string, 0, len(e.To))
	for _, p := range e.To {
		addresses = append(addresses, p.Address)
	}
	return addresses
}
