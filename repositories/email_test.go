package repositories

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"persona-emails/domain"
	"persona-emails/errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func openBadger(t *testing.T) *badger.DB {
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func newEmail(date time.Time, to ...string) domain.Email {
	return domain.Email{
		From: []domain.Participant{{Address: "alice@example.com", Name: "Alice"}},
		To: lo.Map(to, func(address string, _ int) domain.Participant {
			return domain.Participant{Address: address}
		}),
		Date:    date,
		Subject: "Subject",
		Content: "Content",
	}
}

func day(month time.Month) time.Time {
	return time.Date(2024, month, 1, 0, 0, 0, 0, time.UTC)
}

func Test_Insert_And_FindByID(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repository := NewEmailRepository(openBadger(t), slog.Default())

	email := newEmail(day(time.January), "bob@example.com")
	id, err := repository.Insert(ctx, email)
	req.NoError(err)
	req.Len(id, 24)

	stored, err := repository.FindByID(ctx, id)
	req.NoError(err)
	email.ID = id
	req.Equal(email, stored)
	req.False(stored.Read)
}

func Test_FindByID_Unknown(t *testing.T) {
	req := require.New(t)
	repository := NewEmailRepository(openBadger(t), slog.Default())

	_, err := repository.FindByID(context.Background(), "65f1c0a2b3d4e5f601234567")
	req.ErrorIs(err, errors.ErrNotFound)
	req.False(errors.IsRetryable(err))
}

func Test_Find_By_Recipient_Newest_First(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repository := NewEmailRepository(openBadger(t), slog.Default())

	for _, month := range []time.Month{time.January, time.March, time.February} {
		_, err := repository.Insert(ctx, newEmail(day(month), "bob@example.com"))
		req.NoError(err)
	}
	_, err := repository.Insert(ctx, newEmail(day(time.April), "carol@example.com"))
	req.NoError(err)

	emails, err := repository.Find(ctx, Filter{Recipient: "bob@example.com"}, NewestFirst)
	req.NoError(err)
	req.Equal([]time.Time{day(time.March), day(time.February), day(time.January)},
		lo.Map(emails, func(e domain.Email, _ int) time.Time { return e.Date }))

	ascending, err := repository.Find(ctx, Filter{Recipient: "bob@example.com"}, &Sort{Field: SortByDate})
	req.NoError(err)
	req.Equal(day(time.January), ascending[0].Date)

	none, err := repository.Find(ctx, Filter{Recipient: "nobody@example.com"}, NewestFirst)
	req.NoError(err)
	req.NotNil(none)
	req.Empty(none)
}

func Test_Find_Before_Epoch_Keeps_Order(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repository := NewEmailRepository(openBadger(t), slog.Default())

	old := time.Date(1969, time.July, 20, 20, 17, 0, 0, time.UTC)
	_, err := repository.Insert(ctx, newEmail(old, "bob@example.com"))
	req.NoError(err)
	_, err = repository.Insert(ctx, newEmail(day(time.May), "bob@example.com"))
	req.NoError(err)

	emails, err := repository.Find(ctx, Filter{Recipient: "bob@example.com"}, NewestFirst)
	req.NoError(err)
	req.Len(emails, 2)
	req.Equal(day(time.May), emails[0].Date)
	req.Equal(old, emails[1].Date)
}

func Test_Find_Far_Future_Keeps_Order(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repository := NewEmailRepository(openBadger(t), slog.Default())

	future := time.Date(2300, time.January, 1, 0, 0, 0, 0, time.UTC)
	recent := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	_, err := repository.Insert(ctx, newEmail(recent, "bob@example.com"))
	req.NoError(err)
	_, err = repository.Insert(ctx, newEmail(future, "bob@example.com"))
	req.NoError(err)

	emails, err := repository.Find(ctx, Filter{Recipient: "bob@example.com"}, NewestFirst)
	req.NoError(err)
	req.Len(emails, 2)
	req.Equal(future, emails[0].Date)
	req.Equal(recent, emails[1].Date)
}

func Test_Find_All_Sorted(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repository := NewEmailRepository(openBadger(t), slog.Default())

	_, err := repository.Insert(ctx, newEmail(day(time.February), "bob@example.com"))
	req.NoError(err)
	_, err = repository.Insert(ctx, newEmail(day(time.June), "carol@example.com"))
	req.NoError(err)

	emails, err := repository.Find(ctx, Filter{}, NewestFirst)
	req.NoError(err)
	req.Len(emails, 2)
	req.Equal(day(time.June), emails[0].Date)
}

func Test_Duplicate_Recipient_Listed_Once(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repository := NewEmailRepository(openBadger(t), slog.Default())

	_, err := repository.Insert(ctx, newEmail(day(time.January), "bob@example.com", "bob@example.com"))
	req.NoError(err)

	emails, err := repository.Find(ctx, Filter{Recipient: "bob@example.com"}, NewestFirst)
	req.NoError(err)
	req.Len(emails, 1)
}

func Test_MarkRead_Is_Idempotent(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repository := NewEmailRepository(openBadger(t), slog.Default())

	id, err := repository.Insert(ctx, newEmail(day(time.January), "bob@example.com"))
	req.NoError(err)

	req.NoError(repository.MarkRead(ctx, id))
	req.NoError(repository.MarkRead(ctx, id))

	stored, err := repository.FindByID(ctx, id)
	req.NoError(err)
	req.True(stored.Read)

	req.ErrorIs(repository.MarkRead(ctx, "65f1c0a2b3d4e5f601234567"), errors.ErrNotFound)
}

func Test_DeleteByID_Removes_Document_And_Index(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repository := NewEmailRepository(openBadger(t), slog.Default())

	id, err := repository.Insert(ctx, newEmail(day(time.January), "bob@example.com", "carol@example.com"))
	req.NoError(err)

	req.NoError(repository.DeleteByID(ctx, id))

	_, err = repository.FindByID(ctx, id)
	req.ErrorIs(err, errors.ErrNotFound)

	for _, recipient := range []string{"bob@example.com", "carol@example.com"} {
		emails, err := repository.Find(ctx, Filter{Recipient: recipient}, NewestFirst)
		req.NoError(err)
		req.Empty(emails)
	}

	req.ErrorIs(repository.DeleteByID(ctx, id), errors.ErrNotFound)
}

func Test_Ping_Closed_Database(t *testing.T) {
	req := require.New(t)
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	req.NoError(err)
	repository := NewEmailRepository(db, slog.Default())

	req.NoError(repository.Ping(context.Background()))
	req.NoError(db.Close())

	err = repository.Ping(context.Background())
	req.ErrorIs(err, errors.ErrStoreUnavailable)
}
