// Package mailparse turns RFC 5322 messages into email drafts.
package mailparse

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"persona-emails/domain"

	_ "github.com/emersion/go-message/charset"
	"github.com/emersion/go-message/mail"
	"github.com/samber/lo"
)

// Draft reads a message and keeps From, To, Date, Subject and the first
// inline text part, preferring text/plain. Attachments are ignored.
// Missing headers are left empty so that validation reports them.
func Draft(r io.Reader) (domain.Draft, error) {
	mr, err := mail.CreateReader(r)
	if err != nil {
		return domain.Draft{}, fmt.Errorf("failed to read message: %w", err)
	}
	defer mr.Close()

	h := mr.Header
	from, err := h.AddressList("From")
	if err != nil {
		return domain.Draft{}, fmt.Errorf("failed to parse From header field: %w", err)
	}
	to, err := h.AddressList("To")
	if err != nil {
		return domain.Draft{}, fmt.Errorf("failed to parse To header field: %w", err)
	}
	subject, err := h.Text("Subject")
	if err != nil {
		return domain.Draft{}, fmt.Errorf("failed to parse Subject header field: %w", err)
	}

	draft := domain.Draft{
		From:    toParticipants(from),
		To:      toParticipants(to),
		Subject: subject,
	}
	if date, err := h.Date(); err == nil && !date.IsZero() {
		draft.Date = date.UTC().Format(time.RFC3339)
	}

	draft.Content, err = readContent(mr)
	if err != nil {
		return domain.Draft{}, err
	}
	return draft, nil
}

func readContent(mr *mail.Reader) (string, error) {
	var fallback string
	for {
		p, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			return fallback, nil
		}
		if err != nil {
			return "", fmt.Errorf("failed to read message part: %w", err)
		}

		h, ok := p.Header.(*mail.InlineHeader)
		if !ok {
			continue
		}
		b, err := io.ReadAll(p.Body)
		if err != nil {
			return "", fmt.Errorf("failed to read message part: %w", err)
		}
		mediaType, _, _ := h.ContentType()
		if mediaType == "" || mediaType == "text/plain" {
			return strings.TrimSpace(string(b)), nil
		}
		if fallback == "" {
			fallback = strings.TrimSpace(string(b))
		}
	}
}

func toParticipants(addresses []*mail.Address) []domain.Participant {
	return lo.Map(addresses, func(a *mail.Address, _ int) domain.Participant {
		return domain.Participant{Address: a.Address, Name: a.Name}
	})
}
