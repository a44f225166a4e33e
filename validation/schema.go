// Package validation checks candidate email documents against a typed schema
// before they reach the store.
package validation

import (
	"fmt"
	"time"

	"persona-emails/domain"
	"persona-emails/errors"

	"github.com/araddon/dateparse"
	"github.com/go-playground/validator/v10"
)

// Kind is the rule applied to a single document field.
type Kind int

const (
	Text Kind = iota
	Date
	Participants
	Boolean
	ObjectID
)

type Field struct {
	Name string
	Kind Kind
}

// Schema is evaluated in declaration order, which is also the order
// in which violations are reported.
type Schema []Field

// EmailSchema describes every field of a stored email document.
var EmailSchema = Schema{
	{Name: "id", Kind: ObjectID},
	{Name: "from", Kind: Participants},
	{Name: "to", Kind: Participants},
	{Name: "date", Kind: Date},
	{Name: "subject", Kind: Text},
	{Name: "content", Kind: Text},
	{Name: "read", Kind: Boolean},
}

// Candidate holds the fields to validate. Absent keys are not checked,
// a key present with a nil value is treated as a missing required value.
type Candidate map[string]any

var validate = validator.New()

// Validate checks only the fields present in the candidate and stops at the first violation.
func (s Schema) Validate(c Candidate) error {
	for _, field := range s {
		value, present := c[field.Name]
		if !present {
			continue
		}
		if err := field.check(value); err != nil {
			return err
		}
	}
	return nil
}

// Validate runs EmailSchema against the candidate.
func Validate(c Candidate) error {
	return EmailSchema.Validate(c)
}

// DraftCandidate exposes the five caller supplied fields of a draft.
func DraftCandidate(d domain.Draft) Candidate {
	return Candidate{
		"from":    d.From,
		"to":      d.To,
		"date":    d.Date,
		"subject": d.Subject,
		"content": d.Content,
	}
}

// ParseDate accepts the usual textual date formats and normalizes to UTC
// with the millisecond precision the stores keep.
func ParseDate(value string) (time.Time, error) {
	t, err := dateparse.ParseIn(value, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC().Truncate(time.Millisecond), nil
}

func (f Field) check(value any) error {
	if value == nil {
		return errors.NewValidationError(f.Name, errors.MissingRequiredField, "is required")
	}
	switch f.Kind {
	case Text:
		return f.checkText(value)
	case Date:
		return f.checkDate(value)
	case Participants:
		return f.checkParticipants(value)
	case Boolean:
		if _, ok := value.(bool); !ok {
			return errors.NewValidationError(f.Name, errors.InvalidType, "should be a boolean")
		}
	case ObjectID:
		return f.checkObjectID(value)
	}
	return nil
}

func (f Field) checkText(value any) error {
	s, ok := value.(string)
	if !ok {
		return errors.NewValidationError(f.Name, errors.InvalidType, "should be a string")
	}
	if s == "" {
		return errors.NewValidationError(f.Name, errors.MissingRequiredField, "should not be empty")
	}
	return nil
}

func (f Field) checkDate(value any) error {
	switch v := value.(type) {
	case time.Time:
		if v.IsZero() {
			return errors.NewValidationError(f.Name, errors.InvalidDate, "should be a valid date")
		}
		return nil
	case string:
		if v == "" {
			return errors.NewValidationError(f.Name, errors.MissingRequiredField, "is required")
		}
		if _, err := ParseDate(v); err != nil {
			return errors.NewValidationError(f.Name, errors.InvalidDate, "should be a valid date")
		}
		return nil
	default:
		return errors.NewValidationError(f.Name, errors.InvalidDate, "should be a valid date")
	}
}

func (f Field) checkObjectID(value any) error {
	s, ok := value.(string)
	if !ok {
		return errors.NewValidationError(f.Name, errors.InvalidType, "should be a string")
	}
	if err := validate.Var(s, "required,mongodb"); err != nil {
		return errors.NewValidationError(f.Name, errors.InvalidFormat, "should be a 24 character hex object id")
	}
	return nil
}

func (f Field) checkParticipants(value any) error {
	entries, ok := participantEntries(value)
	if !ok {
		return errors.NewValidationError(f.Name, errors.InvalidType, "should be an array")
	}
	if len(entries) == 0 {
		return errors.NewValidationError(f.Name, errors.MissingRequiredField, "should have at least 1 item")
	}
	for i, entry := range entries {
		prefix := fmt.Sprintf("%s[%d]", f.Name, i)
		if entry == nil {
			return errors.NewValidationError(prefix, errors.InvalidParticipant, "should be an object")
		}
		address, present := entry["address"]
		if !present || address == nil || address == "" {
			return errors.NewValidationError(prefix+".address", errors.InvalidParticipant, "is required")
		}
		s, isString := address.(string)
		if !isString || validate.Var(s, "email") != nil {
			return errors.NewValidationError(prefix+".address", errors.InvalidParticipant, "should be an email")
		}
		if name, has := entry["name"]; has && name != nil {
			if _, isString := name.(string); !isString {
				return errors.NewValidationError(prefix+".name", errors.InvalidParticipant, "should be a string")
			}
		}
	}
	return nil
}

// participantEntries flattens typed and decoded JSON participant lists into maps.
func participantEntries(value any) ([]map[string]any, bool) {
	switch v := value.(type) {
	case []domain.Participant:
		entries := make([]map[string]any, 0, len(v))
		for _, p := range v {
			entries = append(entries, map[string]any{"address": p.Address, "name": p.Name})
		}
		return entries, true
	case []map[string]any:
		return v, true
	case []any:
		entries := make([]map[string]any, 0, len(v))
		for _, item := range v {
			m, _ := item.(map[string]any)
			entries = append(entries, m)
		}
		return entries, true
	default:
		return nil, false
	}
}
