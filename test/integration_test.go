package test

import (
	"context"
	"log/slog"
	"net"
	"testing"
	"time"

	"persona-emails/api"
	"persona-emails/auth"
	"persona-emails/domain"
	"persona-emails/infrastructure/grpc/client"
	"persona-emails/infrastructure/grpc/server"
	"persona-emails/observability"
	"persona-emails/repositories"
	"persona-emails/services"

	"github.com/dgraph-io/badger/v4"
	grpc3 "github.com/mama165/sdk-go/grpc"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

const (
	secret = "integration-secret"
	issuer = "persona"
)

type harness struct {
	emails   api.EmailServiceClient
	verifier *auth.JWTVerifier
	bob      domain.Persona
	carol    domain.Persona
}

// newHarness runs the whole server stack over bufconn: interceptor chain, email
// service on BadgerDB, and the persona directory reached through its own gRPC client.
func newHarness(t *testing.T) harness {
	t.Helper()
	req := require.New(t)
	ctx := context.Background()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).
		WithLoggingLevel(badger.ERROR).
		WithValueLogFileSize(16 << 20))
	req.NoError(err)
	t.Cleanup(func() { _ = db.Close() })

	personas := repositories.NewPersonaRepository(db)
	bob := domain.Persona{UID: "u-bob", Email: "bob@example.com", Name: "Bob"}
	bob.ID, err = personas.CreatePersona(ctx, bob)
	req.NoError(err)
	carol := domain.Persona{UID: "u-carol", Email: "carol@example.com", Name: "Carol"}
	carol.ID, err = personas.CreatePersona(ctx, carol)
	req.NoError(err)

	listener := bufconn.Listen(1024 * 1024)
	dial := func() *grpc.ClientConn {
		conn, err := grpc.NewClient("passthrough:///bufnet",
			grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
				return listener.DialContext(ctx)
			}),
			grpc.WithTransportCredentials(insecure.NewCredentials()))
		req.NoError(err)
		t.Cleanup(func() { _ = conn.Close() })
		return conn
	}

	verifier := auth.NewJWTVerifier(secret, issuer)
	directory := client.NewPersonaClient(api.NewPersonaServiceClient(dial()))
	emailService := services.NewEmailService(log, repositories.NewEmailRepository(db, log), directory)

	s := grpc.NewServer(grpc.ChainUnaryInterceptor(
		grpc3.UnaryLoggingInterceptor(log),
		observability.UnaryMetricsInterceptor(),
		auth.UnaryServerInterceptor(auth.NewResolver(log, verifier, false)),
	))
	api.RegisterEmailServiceServer(s, server.NewEmailServer(log, emailService))
	api.RegisterPersonaServiceServer(s, server.NewPersonaServer(personas))
	go func() { _ = s.Serve(listener) }()
	t.Cleanup(s.Stop)

	return harness{
		emails:   api.NewEmailServiceClient(dial()),
		verifier: verifier,
		bob:      bob,
		carol:    carol,
	}
}

func (h harness) as(t *testing.T, persona domain.Persona) context.Context {
	t.Helper()
	token, err := h.verifier.GenerateToken(persona.UID, nil, time.Hour)
	require.NoError(t, err)
	return auth.BearerContext(context.Background(), token)
}

func (h harness) create(t *testing.T, date string, to ...string) api.Email {
	t.Helper()
	recipients := make([]api.Participant, 0, len(to))
	for _, address := range to {
		recipients = append(recipients, api.Participant{Address: address})
	}
	res, err := h.emails.Create(auth.SystemContext(context.Background()), &api.CreateEmailRequest{
		From:    []api.Participant{{Address: "alice@example.com", Name: "Alice"}},
		To:      recipients,
		Date:    date,
		Subject: "Subject of " + date,
		Content: "Hello",
	})
	require.NoError(t, err)
	return res.Email
}

func requireCode(t *testing.T, err error, code codes.Code) {
	t.Helper()
	require.Error(t, err)
	require.Equal(t, code, status.Code(err), status.Convert(err).Message())
}

func Test_Scenario(t *testing.T) {
	h := newHarness(t)
	bobCtx := h.as(t, h.bob)
	carolCtx := h.as(t, h.carol)

	older := h.create(t, "2024-01-10T09:00:00Z", "bob@example.com")
	newer := h.create(t, "Thu, 14 Mar 2024 11:00:00 +0100", "bob@example.com", "dave@example.com")

	t.Run("should store a created email unread with a generated id", func(t *testing.T) {
		req := require.New(t)
		req.Len(newer.ID, 24)
		req.False(newer.Read)
		req.Equal("2024-03-14T10:00:00Z", newer.Date)
		req.Equal("2024-01-10T09:00:00Z", older.Date)
	})

	t.Run("should refuse create from an end user", func(t *testing.T) {
		_, err := h.emails.Create(bobCtx, &api.CreateEmailRequest{
			From: []api.Participant{{Address: "bob@example.com"}},
			To:   []api.Participant{{Address: "carol@example.com"}},
			Date: "2024-03-14T10:00:00Z", Subject: "s", Content: "c",
		})
		requireCode(t, err, codes.PermissionDenied)
	})

	t.Run("should reject an invalid document", func(t *testing.T) {
		req := require.New(t)
		_, err := h.emails.Create(auth.SystemContext(context.Background()), &api.CreateEmailRequest{
			From: []api.Participant{{Address: "alice@example.com"}},
			To:   []api.Participant{{Address: "not-an-email"}},
			Date: "2024-03-14T10:00:00Z", Subject: "s", Content: "c",
		})
		requireCode(t, err, codes.InvalidArgument)
		req.Contains(status.Convert(err).Message(), "to[0].address")
	})

	t.Run("should list the emails of a persona newest first", func(t *testing.T) {
		req := require.New(t)
		res, err := h.emails.List(bobCtx, &api.ListEmailsRequest{PersonaID: h.bob.ID})
		req.NoError(err)
		req.Len(res.Emails, 2)
		req.Equal(newer.ID, res.Emails[0].ID)
		req.Equal(older.ID, res.Emails[1].ID)

		res, err = h.emails.List(carolCtx, &api.ListEmailsRequest{PersonaID: h.carol.ID})
		req.NoError(err)
		req.Empty(res.Emails)
	})

	t.Run("should report an unknown persona", func(t *testing.T) {
		_, err := h.emails.List(bobCtx, &api.ListEmailsRequest{PersonaID: "ghost"})
		requireCode(t, err, codes.NotFound)
	})

	t.Run("should hide emails addressed to someone else", func(t *testing.T) {
		req := require.New(t)
		_, foreign := h.emails.Show(carolCtx, &api.ShowEmailRequest{ID: older.ID})
		requireCode(t, foreign, codes.NotFound)
		req.Equal("email with id = "+older.ID+" doesn't exist", status.Convert(foreign).Message())

		absentID := "65f1c0ffee0000000000beef"
		_, absent := h.emails.Show(carolCtx, &api.ShowEmailRequest{ID: absentID})
		requireCode(t, absent, codes.NotFound)
		req.Equal("email with id = "+absentID+" doesn't exist", status.Convert(absent).Message())

		_, malformed := h.emails.Show(carolCtx, &api.ShowEmailRequest{ID: "xyz"})
		requireCode(t, malformed, codes.NotFound)
	})

	t.Run("should mark an email read when its recipient shows it", func(t *testing.T) {
		req := require.New(t)
		res, err := h.emails.Show(bobCtx, &api.ShowEmailRequest{ID: newer.ID})
		req.NoError(err)
		req.True(res.Email.Read)

		again, err := h.emails.Show(bobCtx, &api.ShowEmailRequest{ID: newer.ID})
		req.NoError(err)
		req.True(again.Email.Read)

		list, err := h.emails.List(bobCtx, &api.ListEmailsRequest{PersonaID: h.bob.ID})
		req.NoError(err)
		req.True(list.Emails[0].Read)
		req.False(list.Emails[1].Read)
	})

	t.Run("should reject calls without a valid token", func(t *testing.T) {
		_, err := h.emails.Show(context.Background(), &api.ShowEmailRequest{ID: newer.ID})
		requireCode(t, err, codes.Unauthenticated)

		_, err = h.emails.Show(auth.BearerContext(context.Background(), "garbage"), &api.ShowEmailRequest{ID: newer.ID})
		requireCode(t, err, codes.Unauthenticated)

		forged, err := auth.NewJWTVerifier("other-secret", issuer).GenerateToken("u-bob", nil, time.Hour)
		require.NoError(t, err)
		_, err = h.emails.Show(auth.BearerContext(context.Background(), forged), &api.ShowEmailRequest{ID: newer.ID})
		requireCode(t, err, codes.Unauthenticated)
	})

	t.Run("should only let a recipient delete", func(t *testing.T) {
		req := require.New(t)
		_, err := h.emails.Delete(carolCtx, &api.DeleteEmailRequest{ID: older.ID})
		requireCode(t, err, codes.NotFound)

		_, err = h.emails.Delete(bobCtx, &api.DeleteEmailRequest{ID: older.ID})
		req.NoError(err)

		_, err = h.emails.Show(bobCtx, &api.ShowEmailRequest{ID: older.ID})
		requireCode(t, err, codes.NotFound)

		list, err := h.emails.List(bobCtx, &api.ListEmailsRequest{PersonaID: h.bob.ID})
		req.NoError(err)
		req.Len(list.Emails, 1)
	})
}
