package internal

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"persona-emails/auth"
	"persona-emails/domain"
	"persona-emails/repositories"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func TestInspect(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	req.NoError(err)
	defer db.Close()

	emails := repositories.NewEmailRepository(db, logs.GetLoggerFromLevel(slog.LevelDebug))
	id, err := emails.Insert(ctx, domain.Email{
		From:    []domain.Participant{{Address: "alice@example.com"}},
		To:      []domain.Participant{{Address: "bob@example.com"}},
		Date:    time.Date(2024, time.March, 14, 10, 0, 0, 0, time.UTC),
		Subject: "Quarterly report",
		Content: "See attached",
	})
	req.NoError(err)
	_, err = repositories.NewPersonaRepository(db).
		CreatePersona(ctx, domain.Persona{UID: "u-1", Email: "bob@example.com"})
	req.NoError(err)

	t.Run("should decode email documents", func(t *testing.T) {
		req := require.New(t)
		rows, err := Scan(db, "email:", DefaultMapper)
		req.NoError(err)
		req.Len(rows, 1)
		req.Equal("EMAIL", rows[0].Type)
		req.Equal(id, rows[0].ID)
		req.Equal("2024-03-14T10:00:00Z", rows[0].Date)
		req.Contains(rows[0].Detail, "Quarterly report")
	})

	t.Run("should decode the recipient index date", func(t *testing.T) {
		req := require.New(t)
		rows, err := Scan(db, "to:", DefaultMapper)
		req.NoError(err)
		req.Len(rows, 1)
		req.Equal("INDEX", rows[0].Type)
		req.Equal("bob@example.com", rows[0].Detail)
		req.Equal("2024-03-14T10:00:00Z", rows[0].Date)
		req.Equal(id, rows[0].ID)
	})

	t.Run("should list personas", func(t *testing.T) {
		req := require.New(t)
		rows, err := Scan(db, "persona:", DefaultMapper)
		req.NoError(err)
		req.Len(rows, 1)
		req.Equal("PERSONA", rows[0].Type)
		req.Contains(rows[0].Detail, "uid=u-1")
	})

	t.Run("should render a table", func(t *testing.T) {
		req := require.New(t)
		rows, err := Scan(db, "", DefaultMapper)
		req.NoError(err)
		var buf bytes.Buffer
		WriteTable(&buf, rows)
		req.Contains(buf.String(), "Quarterly report")
		req.Contains(buf.String(), "PERSONA INDEX")
	})

	verifier := auth.NewJWTVerifier("inspect-secret", "persona")
	handler := InspectHandler(db, auth.NewResolver(slog.Default(), verifier, false))
	inspect := func(roles ...string) *httptest.ResponseRecorder {
		r := httptest.NewRequest(http.MethodGet, "/debug/inspect", nil)
		if roles != nil {
			token, err := verifier.GenerateToken("u-1", roles, time.Minute)
			require.NoError(t, err)
			r.Header.Set("Authorization", "Bearer "+token)
		}
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, r)
		return rec
	}

	t.Run("should refuse a request without credentials", func(t *testing.T) {
		req := require.New(t)
		rec := inspect()
		req.Equal(http.StatusUnauthorized, rec.Code)
		req.NotContains(rec.Body.String(), "Quarterly report")
	})

	t.Run("should refuse a user without the admin role", func(t *testing.T) {
		req := require.New(t)
		rec := inspect("user")
		req.Equal(http.StatusForbidden, rec.Code)
		req.NotContains(rec.Body.String(), "Quarterly report")
	})

	t.Run("should serve the dump to an admin", func(t *testing.T) {
		req := require.New(t)
		rec := inspect(auth.RoleAdmin)
		req.Equal(http.StatusOK, rec.Code)
		req.Contains(rec.Body.String(), id)
	})
}
