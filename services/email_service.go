//go:generate go run go.uber.org/mock/mockgen -source=email_service.go -destination=../mocks/mock_email_service.go -package=mocks
package services

import (
	"context"
	"fmt"
	"log/slog"

	"persona-emails/auth"
	"persona-emails/contract"
	"persona-emails/domain"
	"persona-emails/errors"
	"persona-emails/repositories"
	"persona-emails/validation"

	"github.com/samber/lo"
	lop "github.com/samber/lo/parallel"
)

type IEmailService interface {
	Create(ctx context.Context, draft domain.Draft) (domain.Email, error)
	List(ctx context.Context, personaID string) ([]domain.Email, error)
	Show(ctx context.Context, id string) (domain.Email, error)
	Delete(ctx context.Context, id string) error
}

type EmailService struct {
	repository repositories.IEmailRepository
	directory  contract.IPersonaDirectory
	log        *slog.Logger
}

func NewEmailService(log *slog.Logger, repository repositories.IEmailRepository,
	directory contract.IPersonaDirectory) *EmailService {
	return &EmailService{repository: repository, directory: directory, log: log}
}

// Create stores a new email on behalf of a trusted internal caller.
// The returned email carries the store generated ID and is always unread.
func (s *EmailService) Create(ctx context.Context, draft domain.Draft) (domain.Email, error) {
	if !auth.IsSystem(ctx) {
		return domain.Email{}, fmt.Errorf("%w: emails can only be created from a system context", errors.ErrForbidden)
	}

	if err := validation.Validate(validation.DraftCandidate(draft)); err != nil {
		return domain.Email{}, err
	}
	date, err := validation.ParseDate(draft.Date)
	if err != nil {
		return domain.Email{}, errors.NewValidationError("date", errors.InvalidDate, "should be a valid date")
	}

	email := domain.Email{
		From:    draft.From,
		To:      draft.To,
		Date:    date,
		Subject: draft.Subject,
		Content: draft.Content,
		Read:    false,
	}
	id, err := s.repository.Insert(ctx, email)
	if err != nil {
		return domain.Email{}, err
	}
	email.ID = id

	s.log.Debug("Email created", "email_id", id, "recipients", len(email.To))
	return email, nil
}

// List returns every email addressed to the persona, most recent first.
func (s *EmailService) List(ctx context.Context, personaID string) ([]domain.Email, error) {
	persona, err := s.directory.LookupByID(ctx, personaID)
	if err != nil {
		s.log.Debug("Persona lookup failed", "persona_id", personaID, "error", err)
		return nil, fmt.Errorf("%w: %s", errors.ErrPersonaNotFound, personaID)
	}
	return s.repository.Find(ctx, repositories.Filter{Recipient: persona.Email}, repositories.NewestFirst)
}

// Show returns the email and marks it read the first time a recipient opens it.
func (s *EmailService) Show(ctx context.Context, id string) (domain.Email, error) {
	email, err := s.authorize(ctx, id)
	if err != nil {
		return domain.Email{}, err
	}
	if email.Read {
		return email, nil
	}

	// Two concurrent shows may both get here, marking read twice is harmless.
	if err := s.repository.MarkRead(ctx, id); err != nil {
		if errors.Is(err, errors.ErrNotFound) {
			return domain.Email{}, errors.NewEmailNotFound(id)
		}
		return domain.Email{}, err
	}
	email.Read = true
	return email, nil
}

// Delete removes the email after the same existence and permission check as Show.
func (s *EmailService) Delete(ctx context.Context, id string) error {
	if _, err := s.authorize(ctx, id); err != nil {
		return err
	}
	if err := s.repository.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, errors.ErrNotFound) {
			return errors.NewEmailNotFound(id)
		}
		return err
	}
	s.log.Debug("Email deleted", "email_id", id)
	return nil
}

// authorize loads the email and checks that one of its recipients is the caller.
// Absent and foreign emails produce errors that print the same.
func (s *EmailService) authorize(ctx context.Context, id string) (domain.Email, error) {
	email, err := s.repository.FindByID(ctx, id)
	if errors.Is(err, errors.ErrNotFound) {
		return domain.Email{}, errors.NewEmailNotFound(id)
	}
	if err != nil {
		return domain.Email{}, err
	}

	if !s.isRecipient(ctx, email) {
		return domain.Email{}, errors.NewEmailForbidden(id)
	}
	return email, nil
}

// isRecipient looks every recipient up in parallel. A failed lookup only
// means that recipient does not match, it never blocks the others.
func (s *EmailService) isRecipient(ctx context.Context, email domain.Email) bool {
	identity, ok := auth.IdentityFromContext(ctx)
	if !ok {
		return false
	}

	matches := lop.Map(email.Recipients(), func(address string, _ int) bool {
		persona, err := s.directory.LookupByEmail(ctx, address)
		if err != nil {
			s.log.Debug("Recipient lookup failed", "email_id", email.ID, "error", err)
			return false
		}
		return persona.UID == identity.UID
	})
	return lo.Contains(matches, true)
}
