package client

import (
	"context"
	"fmt"

	"persona-emails/api"
	"persona-emails/auth"
	"persona-emails/domain"
	"persona-emails/errors"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
)

// PersonaClient resolves personas through the remote persona service.
// Lookups are service to service calls and travel with the system origin.
type PersonaClient struct {
	client api.PersonaServiceClient
}

func NewPersonaClient(client api.PersonaServiceClient) *PersonaClient {
	return &PersonaClient{client: client}
}

// DialPersonaService opens a plaintext connection to the persona service.
// The caller owns the returned connection.
func DialPersonaService(addr string) (*PersonaClient, *grpc.ClientConn, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to dial persona service %s: %w", addr, err)
	}
	return NewPersonaClient(api.NewPersonaServiceClient(conn)), conn, nil
}

func (c *PersonaClient) LookupByID(ctx context.Context, personaID string) (domain.Persona, error) {
	res, err := c.client.Show(auth.SystemContext(ctx), &api.ShowPersonaRequest{ID: personaID})
	if err != nil {
		return domain.Persona{}, fromStatus(personaID, err)
	}
	return toPersona(res), nil
}

func (c *PersonaClient) LookupByEmail(ctx context.Context, address string) (domain.Persona, error) {
	res, err := c.client.FindByEmail(auth.SystemContext(ctx), &api.FindPersonaByEmailRequest{Email: address})
	if err != nil {
		return domain.Persona{}, fromStatus(address, err)
	}
	return toPersona(res), nil
}

func fromStatus(key string, err error) error {
	switch status.Code(err) {
	case codes.NotFound:
		return fmt.Errorf("%w: %s", errors.ErrPersonaNotFound, key)
	case codes.Unavailable, codes.DeadlineExceeded:
		return errors.Unavailable("persona lookup", err)
	default:
		return fmt.Errorf("persona lookup %s failed: %w", key, err)
	}
}

func toPersona(p *api.Persona) domain.Persona {
	return domain.Persona{ID: p.ID, UID: p.UID, Email: p.Email, Name: p.Name}
}
