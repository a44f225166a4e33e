package server

import (
	"context"
	"log/slog"
	"time"

	"persona-emails/api"
	"persona-emails/domain"
	"persona-emails/errors"
	"persona-emails/services"

	"github.com/samber/lo"
)

type EmailServer struct {
	emailService services.IEmailService
	log          *slog.Logger
}

func NewEmailServer(log *slog.Logger, emailService services.IEmailService) *EmailServer {
	return &EmailServer{emailService: emailService, log: log}
}

// Create is only reachable by trusted internal callers, the service enforces it.
func (s *EmailServer) Create(ctx context.Context, req *api.CreateEmailRequest) (*api.CreateEmailResponse, error) {
	email, err := s.emailService.Create(ctx, domain.Draft{
		From:    toParticipants(req.From),
		To:      toParticipants(req.To),
		Date:    req.Date,
		Subject: req.Subject,
		Content: req.Content,
	})
	if err != nil {
		return nil, s.fail("create", err)
	}
	return &api.CreateEmailResponse{Email: toEmailResponse(email)}, nil
}

func (s *EmailServer) List(ctx context.Context, req *api.ListEmailsRequest) (*api.ListEmailsResponse, error) {
	emails, err := s.emailService.List(ctx, req.PersonaID)
	if err != nil {
		return nil, s.fail("list", err)
	}
	return &api.ListEmailsResponse{Emails: lo.Map(emails, func(e domain.Email, _ int) api.Email {
		return toEmailResponse(e)
	})}, nil
}

func (s *EmailServer) Show(ctx context.Context, req *api.ShowEmailRequest) (*api.ShowEmailResponse, error) {
	email, err := s.emailService.Show(ctx, req.ID)
	if err != nil {
		return nil, s.fail("show", err)
	}
	return &api.ShowEmailResponse{Email: toEmailResponse(email)}, nil
}

func (s *EmailServer) Delete(ctx context.Context, req *api.DeleteEmailRequest) (*api.DeleteEmailResponse, error) {
	if err := s.emailService.Delete(ctx, req.ID); err != nil {
		return nil, s.fail("delete", err)
	}
	return &api.DeleteEmailResponse{}, nil
}

func (s *EmailServer) fail(operation string, err error) error {
	if errors.IsRetryable(err) {
		s.log.Warn("Store unavailable", "operation", operation, "error", err)
	} else {
		s.log.Debug("Operation refused", "operation", operation, "error", err)
	}
	return errors.MapToGRPCError(err)
}

func toParticipants(participants []api.Participant) []domain.Participant {
	return lo.Map(participants, func(p api.Participant, _ int) domain.Participant {
		return domain.Participant{Address: p.Address, Name: p.Name}
	})
}

func fromParticipants(participants []domain.Participant) []api.Participant {
	return lo.Map(participants, func(p domain.Participant, _ int) api.Participant {
		return api.Participant{Address: p.Address, Name: p.Name}
	})
}

func toEmailResponse(e domain.Email) api.Email {
	return api.Email{
		ID:      e.ID,
		From:    fromParticipants(e.From),
		To:      fromParticipants(e.To),
		Date:    e.Date.UTC().Format(time.RFC3339Nano),
		Subject: e.Subject,
		Content: e.Content,
		Read:    e.Read,
	}
}
