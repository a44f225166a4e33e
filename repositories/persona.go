package repositories

import (
	"context"
	"fmt"

	"persona-emails/domain"
	"persona-emails/errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// IPersonaRepository is a local persona directory backed by BadgerDB.
type IPersonaRepository interface {
	CreatePersona(ctx context.Context, persona domain.Persona) (string, error)
	LookupByID(ctx context.Context, personaID string) (domain.Persona, error)
	LookupByEmail(ctx context.Context, address string) (domain.Persona, error)
}

type PersonaRepository struct {
	db *badger.DB
}

func NewPersonaRepository(db *badger.DB) *PersonaRepository {
	return &PersonaRepository{db: db}
}

type personaDocument struct {
	ID    string `bson:"id"`
	UID   string `bson:"uid"`
	Email string `bson:"email"`
	Name  string `bson:"name,omitempty"`
}

func personaKey(id string) []byte {
	return []byte("persona:" + id)
}

func personaEmailKey(address string) []byte {
	return []byte("persona-email:" + address)
}

// CreatePersona persists the persona and its email index.
// It returns the persona ID, generated when the caller left it empty.
func (p *PersonaRepository) CreatePersona(_ context.Context, persona domain.Persona) (string, error) {
	if persona.ID == "" {
		persona.ID = uuid.New().String()
	}
	data, err := bson.Marshal(personaDocument{
		ID:    persona.ID,
		UID:   persona.UID,
		Email: persona.Email,
		Name:  persona.Name,
	})
	if err != nil {
		return "", fmt.Errorf("marshal failed: %w", err)
	}

	err = p.db.Update(func(txn *badger.Txn) error {
		emailKey := personaEmailKey(persona.Email)
		if _, err := txn.Get(emailKey); err == nil {
			return errors.ErrPersonaAlreadyExists
		}
		if err := txn.Set(personaKey(persona.ID), data); err != nil {
			return err
		}
		return txn.Set(emailKey, []byte(persona.ID))
	})
	if err != nil {
		return "", err
	}
	return persona.ID, nil
}

func (p *PersonaRepository) LookupByID(_ context.Context, personaID string) (domain.Persona, error) {
	var persona domain.Persona
	err := p.db.View(func(txn *badger.Txn) error {
		var err error
		persona, err = getPersona(txn, personaID)
		return err
	})
	return persona, err
}

func (p *PersonaRepository) LookupByEmail(_ context.Context, address string) (domain.Persona, error) {
	var persona domain.Persona
	err := p.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(personaEmailKey(address))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("%w: no persona for %s", errors.ErrPersonaNotFound, address)
		}
		if err != nil {
			return err
		}
		id, err := item.ValueCopy(nil)
		if err != nil {
			return err
		}
		persona, err = getPersona(txn, string(id))
		return err
	})
	return persona, err
}

func getPersona(txn *badger.Txn, id string) (domain.Persona, error) {
	item, err := txn.Get(personaKey(id))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return domain.Persona{}, fmt.Errorf("%w: %s", errors.ErrPersonaNotFound, id)
	}
	if err != nil {
		return domain.Persona{}, err
	}
	var persona domain.Persona
	err = item.Value(func(val []byte) error {
		persona, err = DecodePersona(val)
		return err
	})
	return persona, err
}
