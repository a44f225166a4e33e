package mailparse

import (
	"strings"
	"testing"

	"persona-emails/domain"

	"github.com/stretchr/testify/require"
)

const plainMessage = "From: Alice <alice@example.com>\r\n" +
	"To: bob@example.com, \"Carol C.\" <carol@example.com>\r\n" +
	"Subject: Quarterly report\r\n" +
	"Date: Thu, 14 Mar 2024 11:00:00 +0100\r\n" +
	"Content-Type: text/plain; charset=utf-8\r\n" +
	"\r\n" +
	"Numbers are up.\r\n"

const multipartMessage = "From: alice@example.com\r\n" +
	"To: bob@example.com\r\n" +
	"Subject: Slides\r\n" +
	"Date: Thu, 14 Mar 2024 10:00:00 +0000\r\n" +
	"Content-Type: multipart/mixed; boundary=XYZ\r\n" +
	"\r\n" +
	"--XYZ\r\n" +
	"Content-Type: text/html\r\n" +
	"\r\n" +
	"<p>See attached</p>\r\n" +
	"--XYZ\r\n" +
	"Content-Type: text/plain\r\n" +
	"\r\n" +
	"See attached\r\n" +
	"--XYZ\r\n" +
	"Content-Type: application/pdf\r\n" +
	"Content-Disposition: attachment; filename=slides.pdf\r\n" +
	"\r\n" +
	"%PDF-1.4\r\n" +
	"--XYZ--\r\n"

func TestDraft(t *testing.T) {
	t.Run("should read headers and body of a plain message", func(t *testing.T) {
		req := require.New(t)
		draft, err := Draft(strings.NewReader(plainMessage))
		req.NoError(err)
		req.Equal([]domain.Participant{{Address: "alice@example.com", Name: "Alice"}}, draft.From)
		req.Equal([]domain.Participant{
			{Address: "bob@example.com"},
			{Address: "carol@example.com", Name: "Carol C."},
		}, draft.To)
		req.Equal("Quarterly report", draft.Subject)
		req.Equal("2024-03-14T10:00:00Z", draft.Date)
		req.Equal("Numbers are up.", draft.Content)
	})

	t.Run("should prefer the plain text part and skip attachments", func(t *testing.T) {
		req := require.New(t)
		draft, err := Draft(strings.NewReader(multipartMessage))
		req.NoError(err)
		req.Equal("See attached", draft.Content)
		req.Equal("Slides", draft.Subject)
	})

	t.Run("should leave a missing date empty", func(t *testing.T) {
		req := require.New(t)
		message := strings.Replace(plainMessage, "Date: Thu, 14 Mar 2024 11:00:00 +0100\r\n", "", 1)
		draft, err := Draft(strings.NewReader(message))
		req.NoError(err)
		req.Empty(draft.Date)
	})
}
