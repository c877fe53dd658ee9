package models

import (
	"encoding/json"
	"strings"
	"time"

	"gorm.io/gorm"
)

// User is an account that owns tasks, files, teams and calendar entries, and
// exchanges chat messages with other users. Deleting a user removes everything
// it owns, including messages in both directions.
type User struct {
	ID           uint   `gorm:"primarykey"`
	Username     string `gorm:"uniqueIndex;not null"`
	Email        string `gorm:"not null"`
	PasswordHash string `gorm:"not null"`

	DateCreated time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time
	LastLogin   *time.Time
	IsActive    bool
	IsAdmin     bool

	Tasks            []Task        `gorm:"foreignKey:AssignedToUserID"`
	Files            []File        `gorm:"foreignKey:UploadedByUserID"`
	Teams            []Team        `gorm:"foreignKey:CreatedByUserID"`
	Calendars        []Calendar    `gorm:"foreignKey:CreatedByUserID"`
	SentMessages     []ChatMessage `gorm:"foreignKey:SenderUserID"`
	ReceivedMessages []ChatMessage `gorm:"foreignKey:ReceiverUserID"`
}

func (u *User) EntityName() string { return "User" }

func (u *User) PrimaryID() uint { return u.ID }

// The password credential is not a constructor field here: the store exchanges
// the raw "password" payload key for a hash through its injected hasher before
// the record reaches the field engine.
func (u *User) ConstructorFields() []string {
	return []string{"username", "email"}
}

func (u *User) PatchableFields() []string {
	return []string{"username", "email", "is_active", "is_admin"}
}

func (u *User) ApplyField(tx *gorm.DB, name string, raw json.RawMessage) error {
	switch name {
	case "username":
		username, err := decodeString("User", name, raw)
		if err != nil {
			return err
		}
		if username == "" {
			return missingField("User", name, "a", "username")
		}
		if err := requireUnique(tx, &User{}, "username", username, u.ID, "User Username must be unique"); err != nil {
			return err
		}
		u.Username = username
	case "email":
		email, err := decodeString("User", name, raw)
		if err != nil {
			return err
		}
		if email == "" {
			return missingField("User", name, "a", "email")
		}
		if !strings.Contains(email, "@") {
			return newValidationError(KindInvalidValue, name, "User failed simple email validation")
		}
		u.Email = email
	case "is_active":
		active, err := decodeBool("User", name, raw)
		if err != nil {
			return err
		}
		u.IsActive = active
	case "is_admin":
		admin, err := decodeBool("User", name, raw)
		if err != nil {
			return err
		}
		u.IsAdmin = admin
	}
	return nil
}
