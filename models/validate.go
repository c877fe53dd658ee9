package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"unicode/utf8"

	"gorm.io/gorm"
)

// maxTextLength caps every bounded text field (descriptions, message text).
const maxTextLength = 250

// Entity is implemented by every persisted record type. The store drives
// creation and patching exclusively through this interface: each payload key is
// validated and assigned one field at a time by ApplyField, against the current
// state of the supplied transaction.
type Entity interface {
	// EntityName is the client-facing name used in error and confirmation
	// bodies (e.g. "Chat_Message").
	EntityName() string
	// ConstructorFields lists the payload keys a create must carry, in the
	// order they are validated.
	ConstructorFields() []string
	// PatchableFields lists every payload key a patch may assign, in canonical
	// order. Payload keys outside this list are ignored.
	PatchableFields() []string
	// ApplyField validates raw for the named field and assigns it on success.
	ApplyField(tx *gorm.DB, name string, raw json.RawMessage) error
	// PrimaryID returns the assigned identity, zero before the first insert.
	PrimaryID() uint
}

func missingField(entity, field, article, label string) *ValidationError {
	return newValidationError(KindMissingField, field,
		fmt.Sprintf("%s must have %s %s", entity, article, label))
}

func invalidValue(entity, field string) *ValidationError {
	return newValidationError(KindInvalidValue, field,
		fmt.Sprintf("%s %s is invalid", entity, field))
}

// decodeString accepts a JSON string. JSON null decodes to "", which the
// presence rule then rejects.
func decodeString(entity, field string, raw json.RawMessage) (string, error) {
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return "", nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", invalidValue(entity, field)
	}
	return s, nil
}

// decodeInt accepts a JSON number or a numeric string ("3"), matching the
// source API which coerced id-shaped payload values with int().
func decodeInt(entity, field string, raw json.RawMessage) (int64, error) {
	trimmed := bytes.TrimSpace(raw)
	if bytes.Equal(trimmed, []byte("null")) {
		return 0, nil
	}
	var n json.Number
	if err := json.Unmarshal(trimmed, &n); err == nil {
		if v, convErr := n.Int64(); convErr == nil {
			return v, nil
		}
		return 0, invalidValue(entity, field)
	}
	var s string
	if err := json.Unmarshal(trimmed, &s); err != nil {
		return 0, invalidValue(entity, field)
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, invalidValue(entity, field)
	}
	return v, nil
}

func decodeBool(entity, field string, raw json.RawMessage) (bool, error) {
	var b bool
	if err := json.Unmarshal(raw, &b); err != nil {
		return false, invalidValue(entity, field)
	}
	return b, nil
}

// requireMaxLen rejects values longer than 250 characters. Length 250 passes.
func requireMaxLen(field, value, message string) error {
	if utf8.RuneCountInString(value) > maxTextLength {
		return newValidationError(KindLengthExceeded, field, message)
	}
	return nil
}

// requireUnique scans the entity's table for another row holding value in
// column. The record's own row is excluded so a patch may restate the current
// value. The unique index on the column backstops this check under concurrent
// writers.
func requireUnique(tx *gorm.DB, model interface{}, column string, value interface{}, selfID uint, message string) error {
	query := tx.Model(model).Where(column+" = ?", value)
	if selfID != 0 {
		query = query.Where("id <> ?", selfID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return newValidationError(KindUniqueness, column, message)
	}
	return nil
}

// requireExists checks that id identifies a row of the referenced table.
func requireExists(tx *gorm.DB, model interface{}, id uint, field, message string) error {
	var count int64
	if err := tx.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return newValidationError(KindInvalidReference, field, message)
	}
	return nil
}
