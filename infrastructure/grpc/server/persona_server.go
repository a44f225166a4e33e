package server

import (
	"context"

	"persona-emails/api"
	"persona-emails/domain"
	"persona-emails/errors"
	"persona-emails/repositories"
)

// PersonaServer exposes the local persona repository as a directory to other services.
type PersonaServer struct {
	repository repositories.IPersonaRepository
}

func NewPersonaServer(repository repositories.IPersonaRepository) *PersonaServer {
	return &PersonaServer{repository: repository}
}

func (s *PersonaServer) Show(ctx context.Context, req *api.ShowPersonaRequest) (*api.Persona, error) {
	persona, err := s.repository.LookupByID(ctx, req.ID)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return toPersonaResponse(persona), nil
}

func (s *PersonaServer) FindByEmail(ctx context.Context, req *api.FindPersonaByEmailRequest) (*api.Persona, error) {
	persona, err := s.repository.LookupByEmail(ctx, req.Email)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return toPersonaResponse(persona), nil
}

func toPersonaResponse(p domain.Persona) *api.Persona {
	return &api.Persona{ID: p.ID, UID: p.UID, Email: p.Email, Name: p.Name}
}
