package repositories

import (
	"time"

	"persona-emails/domain"
	"persona-emails/errors"

	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// emailDocument is the persisted layout shared by the Mongo and Badger stores.
type emailDocument struct {
	ID      bson.ObjectID         `bson:"_id,omitempty"`
	From    []participantDocument `bson:"from"`
	To      []participantDocument `bson:"to"`
	Date    time.Time             `bson:"date"`
	Subject string                `bson:"subject"`
	Content string                `bson:"content"`
	Read    bool                  `bson:"read"`
}

type participantDocument struct {
	Address string `bson:"address"`
	Name    string `bson:"name,omitempty"`
}

func fromEmail(email domain.Email) emailDocument {
	return emailDocument{
		From:    lo.Map(email.From, toParticipantDocument),
		To:      lo.Map(email.To, toParticipantDocument),
		Date:    email.Date.UTC().Truncate(time.Millisecond), // BSON keeps milliseconds
		Subject: email.Subject,
		Content: email.Content,
		Read:    email.Read,
	}
}

func toEmail(doc emailDocument) domain.Email {
	return domain.Email{
		ID:      doc.ID.Hex(),
		From:    lo.Map(doc.From, toParticipant),
		To:      lo.Map(doc.To, toParticipant),
		Date:    doc.Date.UTC(),
		Subject: doc.Subject,
		Content: doc.Content,
		Read:    doc.Read,
	}
}

func toParticipantDocument(p domain.Participant, _ int) participantDocument {
	return participantDocument{Address: p.Address, Name: p.Name}
}

func toParticipant(p participantDocument, _ int) domain.Participant {
	return domain.Participant{Address: p.Address, Name: p.Name}
}

// parseID converts an opaque email id into the native ObjectID.
// Ids the store could never have produced are reported as not found.
func parseID(id string) (bson.ObjectID, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return bson.ObjectID{}, errors.ErrNotFound
	}
	return oid, nil
}

// DecodeEmail reads a raw email value as written by the Badger store.
func DecodeEmail(value []byte) (domain.Email, error) {
	var doc emailDocument
	if err := bson.Unmarshal(value, &doc); err != nil {
		return domain.Email{}, err
	}
	return toEmail(doc), nil
}

// DecodePersona reads a raw persona value as written by PersonaRepository.
func DecodePersona(value []byte) (domain.Persona, error) {
	var doc personaDocument
	if err := bson.Unmarshal(value, &doc); err != nil {
		return domain.Persona{}, err
	}
	return domain.Persona{ID: doc.ID, UID: doc.UID, Email: doc.Email, Name: doc.Name}, nil
}
