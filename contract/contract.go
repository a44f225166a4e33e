//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"

	"persona-emails/domain"
)

// IPersonaDirectory resolves personas by id or by email address.
// Any failure, including an unknown persona, is returned as an error.
type IPersonaDirectory interface {
	LookupByID(ctx context.Context, personaID string) (domain.Persona, error)
	LookupByEmail(ctx context.Context, address string) (domain.Persona, error)
}

// ITokenVerifier checks a bearer credential and returns the identity it was issued for.
type ITokenVerifier interface {
	Verify(ctx context.Context, token string) (domain.Identity, error)
}
