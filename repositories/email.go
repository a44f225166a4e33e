//go:generate go run go.uber.org/mock/mockgen -source=email.go -destination=../mocks/mock_email_repository.go -package=mocks
package repositories

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"persona-emails/domain"
	"persona-emails/errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Filter selects emails. An empty Recipient matches every email.
type Filter struct {
	Recipient string // matches emails whose To holds this exact address
}

type SortField string

const SortByDate SortField = "date"

type Sort struct {
	Field      SortField
	Descending bool
}

// NewestFirst orders emails by date, most recent first.
var NewestFirst = &Sort{Field: SortByDate, Descending: true}

// IEmailRepository is the store adapter used by the email service.
// Every method may fail with errors.ErrStoreUnavailable.
type IEmailRepository interface {
	Insert(ctx context.Context, email domain.Email) (string, error)
	Find(ctx context.Context, filter Filter, sort *Sort) ([]domain.Email, error)
	FindByID(ctx context.Context, id string) (domain.Email, error)
	MarkRead(ctx context.Context, id string) error
	DeleteByID(ctx context.Context, id string) error
	Ping(ctx context.Context) error
}

// EmailRepository stores emails in BadgerDB.
type EmailRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewEmailRepository(db *badger.DB, log *slog.Logger) *EmailRepository {
	return &EmailRepository{db: db, log: log}
}

const (
	emailPrefix     = "email:"
	recipientPrefix = "to:"
)

func emailKey(id string) []byte {
	return []byte(emailPrefix + id)
}

// recipientKey is formatted as "to:{address}:{date}:{id}" where the date is a
// 20-digit zero padded, sign shifted UnixMilli so that lexicographical order is
// chronological order for every date a document can hold.
func recipientKey(address string, doc emailDocument) []byte {
	return []byte(fmt.Sprintf("%s%s:%020d:%s",
		recipientPrefix, address, sortableMilli(doc), doc.ID.Hex()))
}

func recipientScanPrefix(address string) []byte {
	return []byte(recipientPrefix + address + ":")
}

func sortableMilli(doc emailDocument) uint64 {
	return uint64(doc.Date.UnixMilli()) ^ (1 << 63)
}

// Insert persists the email under a freshly generated ObjectID and indexes it
// once per distinct recipient address.
func (r *EmailRepository) Insert(_ context.Context, email domain.Email) (string, error) {
	doc := fromEmail(email)
	doc.ID = bson.NewObjectID()
	id := doc.ID.Hex()

	data, err := bson.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("marshal failed: %w", err)
	}

	err = r.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(emailKey(id), data); err != nil {
			return err
		}
		for _, address := range uniqueRecipients(doc) {
			if err := txn.Set(recipientKey(address, doc), []byte(id)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return "", errors.Unavailable("insert", err)
	}
	return id, nil
}

// Find returns the emails matching the filter. With a recipient, the date index is
// walked directly (in reverse for descending order), otherwise every email is loaded
// and sorted in memory.
func (r *EmailRepository) Find(_ context.Context, filter Filter, sortBy *Sort) ([]domain.Email, error) {
	emails := make([]domain.Email, 0)
	err := r.db.View(func(txn *badger.Txn) error {
		if filter.Recipient == "" {
			all, err := r.scanAll(txn)
			if err != nil {
				return err
			}
			emails = all
			return nil
		}

		ids, err := r.scanRecipient(txn, filter.Recipient, sortBy != nil && sortBy.Descending)
		if err != nil {
			return err
		}
		for _, id := range ids {
			doc, err := getDocument(txn, id)
			if errors.Is(err, errors.ErrNotFound) {
				r.log.Debug("Dangling recipient index entry", "email_id", id)
				continue
			}
			if err != nil {
				return err
			}
			emails = append(emails, toEmail(doc))
		}
		return nil
	})
	if err != nil {
		return nil, errors.Unavailable("find", err)
	}

	if filter.Recipient == "" && sortBy != nil {
		sort.SliceStable(emails, func(i, j int) bool {
			if sortBy.Descending {
				return emails[i].Date.After(emails[j].Date)
			}
			return emails[i].Date.Before(emails[j].Date)
		})
	}
	return emails, nil
}

func (r *EmailRepository) scanRecipient(txn *badger.Txn, address string, descending bool) ([]string, error) {
	prefix := recipientScanPrefix(address)
	options := badger.DefaultIteratorOptions
	options.PrefetchValues = true
	options.Reverse = descending
	it := txn.NewIterator(options)
	defer it.Close()

	seekKey := prefix
	if descending {
		// Jump past every key of the prefix, then walk backwards.
		seekKey = append(append([]byte{}, prefix...), 0xFF)
	}

	var ids []string
	for it.Seek(seekKey); it.ValidForPrefix(prefix); it.Next() {
		err := it.Item().Value(func(value []byte) error {
			ids = append(ids, string(value))
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return ids, nil
}

func (r *EmailRepository) scanAll(txn *badger.Txn) ([]domain.Email, error) {
	prefix := []byte(emailPrefix)
	it := txn.NewIterator(badger.DefaultIteratorOptions)
	defer it.Close()

	emails := make([]domain.Email, 0)
	for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
		err := it.Item().Value(func(value []byte) error {
			var doc emailDocument
			if err := bson.Unmarshal(value, &doc); err != nil {
				return fmt.Errorf("failed to unmarshal email: %w", err)
			}
			emails = append(emails, toEmail(doc))
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return emails, nil
}

func (r *EmailRepository) FindByID(_ context.Context, id string) (domain.Email, error) {
	var doc emailDocument
	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		doc, err = getDocument(txn, id)
		return err
	})
	if errors.Is(err, errors.ErrNotFound) {
		return domain.Email{}, err
	}
	if err != nil {
		return domain.Email{}, errors.Unavailable("find by id", err)
	}
	return toEmail(doc), nil
}

// MarkRead sets Read to true. Marking an email that is already read is a no-op.
func (r *EmailRepository) MarkRead(_ context.Context, id string) error {
	err := r.db.Update(func(txn *badger.Txn) error {
		doc, err := getDocument(txn, id)
		if err != nil {
			return err
		}
		if doc.Read {
			return nil
		}
		doc.Read = true
		data, err := bson.Marshal(doc)
		if err != nil {
			return err
		}
		return txn.Set(emailKey(id), data)
	})
	if errors.Is(err, errors.ErrNotFound) {
		return err
	}
	if err != nil {
		return errors.Unavailable("mark read", err)
	}
	return nil
}

// DeleteByID removes the email and its recipient index entries.
func (r *EmailRepository) DeleteByID(_ context.Context, id string) error {
	err := r.db.Update(func(txn *badger.Txn) error {
		doc, err := getDocument(txn, id)
		if err != nil {
			return err
		}
		for _, address := range uniqueRecipients(doc) {
			if err := txn.Delete(recipientKey(address, doc)); err != nil {
				return err
			}
		}
		return txn.Delete(emailKey(id))
	})
	if errors.Is(err, errors.ErrNotFound) {
		return err
	}
	if err != nil {
		return errors.Unavailable("delete", err)
	}
	return nil
}

func (r *EmailRepository) Ping(_ context.Context) error {
	if r.db.IsClosed() {
		return errors.Unavailable("ping", badger.ErrDBClosed)
	}
	return nil
}

func getDocument(txn *badger.Txn, id string) (emailDocument, error) {
	var doc emailDocument
	item, err := txn.Get(emailKey(id))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return doc, errors.ErrNotFound
	}
	if err != nil {
		return doc, err
	}
	err = item.Value(func(value []byte) error {
		return bson.Unmarshal(value, &doc)
	})
	return doc, err
}

func uniqueRecipients(doc emailDocument) []string {
	return lo.Uniq(lo.Map(doc.To, func(p participantDocument, _ int) string {
		return p.Address
	}))
}
