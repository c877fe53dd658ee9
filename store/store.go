// Package store is the persistence gateway: transactional create, read, patch
// and cascade-delete for every entity, with field validation running inside
// the same transaction as the write.
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"

	"gorm.io/gorm"

	"projecthub/models"
	"projecthub/utils"
)

// Payload is a decoded JSON request body that remembers the order in which
// keys appeared on the wire. Patches replay fields in that order.
type Payload struct {
	values map[string]json.RawMessage
	keys   []string
}

func NewPayload() Payload {
	return Payload{values: make(map[string]json.RawMessage)}
}

// Set assigns raw to key, recording the key's position on first assignment.
func (p *Payload) Set(key string, raw json.RawMessage) {
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.values[key] = raw
}

func (p Payload) Get(key string) (json.RawMessage, bool) {
	raw, ok := p.values[key]
	return raw, ok
}

// Keys returns the payload's field names in wire order.
func (p Payload) Keys() []string {
	return p.keys
}

// ParsePayload decodes a raw request body into a Payload, walking the object
// token by token so the original key order survives.
func ParsePayload(body []byte) (Payload, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	tok, err := dec.Token()
	if err != nil {
		return Payload{}, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return Payload{}, errors.New("request body must be a JSON object")
	}
	payload := NewPayload()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return Payload{}, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return Payload{}, errors.New("malformed JSON object key")
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return Payload{}, err
		}
		payload.Set(key, raw)
	}
	if _, err := dec.Token(); err != nil {
		return Payload{}, err
	}
	return payload, nil
}

// Store wraps the database handle and the password capability. All writes are
// all-or-nothing: a failing field validation leaves no persisted trace.
type Store struct {
	db     *gorm.DB
	hasher utils.PasswordHasher
}

func New(db *gorm.DB, hasher utils.PasswordHasher) *Store {
	return &Store{db: db, hasher: hasher}
}

// DB exposes the underlying handle for callers that only read.
func (s *Store) DB() *gorm.DB {
	return s.db
}

var nullValue = json.RawMessage("null")

// createEntity requires every constructor field, runs the field engine on each
// in order (a missing key validates as null and fails the presence rule), then
// inserts.
func createEntity(tx *gorm.DB, entity models.Entity, payload Payload) error {
	for _, field := range entity.ConstructorFields() {
		raw, ok := payload.Get(field)
		if !ok {
			raw = nullValue
		}
		if err := entity.ApplyField(tx, field, raw); err != nil {
			return err
		}
	}
	return translateWriteError(entity, tx.Create(entity).Error)
}

// applyPatch assigns only the payload keys the entity knows, in the order the
// keys appeared on the wire, re-validating each against the transaction, then
// saves the whole change set. Unknown keys are skipped.
func applyPatch(tx *gorm.DB, entity models.Entity, payload Payload) error {
	patchable := make(map[string]struct{})
	for _, field := range entity.PatchableFields() {
		patchable[field] = struct{}{}
	}
	for _, key := range payload.Keys() {
		if _, ok := patchable[key]; !ok {
			continue
		}
		raw, _ := payload.Get(key)
		if err := entity.ApplyField(tx, key, raw); err != nil {
			return err
		}
	}
	return translateWriteError(entity, tx.Save(entity).Error)
}

// uniqueMessages maps each entity to the message of its one unique field, for
// translating constraint violations that slip past the scan under concurrency.
var uniqueMessages = map[string]string{
	"User":     "User Username must be unique",
	"Team":     "Team Name must be unique",
	"Project":  "Project Title must be unique",
	"Task":     "Task Title must be unique",
	"File":     "File Filename must be unique",
	"Calendar": "Calendar Event Name must be unique",
}

func translateWriteError(entity models.Entity, err error) error {
	if err == nil {
		return nil
	}
	if isDuplicateKey(err) {
		if message, ok := uniqueMessages[entity.EntityName()]; ok {
			return models.NewValidationError(models.KindUniqueness, "", message)
		}
	}
	return err
}

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value")
}

func translateFindError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.ErrNotFound
	}
	return err
}
