package models

import (
	"encoding/json"
	"time"

	"gorm.io/gorm"
)

// Calendar is a single named event belonging to one user.
type Calendar struct {
	ID               uint   `gorm:"primarykey"`
	EventName        string `gorm:"uniqueIndex;not null"`
	EventDescription string
	EventDate        string `gorm:"not null"`

	CreatedAt time.Time
	UpdatedAt time.Time

	CreatedByUserID uint

	User *User `gorm:"foreignKey:CreatedByUserID"`
}

func (c *Calendar) EntityName() string { return "Calendar" }

func (c *Calendar) PrimaryID() uint { return c.ID }

func (c *Calendar) ConstructorFields() []string {
	return []string{"event_name", "event_description", "event_date", "created_by_user_id"}
}

func (c *Calendar) PatchableFields() []string {
	return []string{"event_name", "event_description", "event_date", "created_by_user_id"}
}

func (c *Calendar) ApplyField(tx *gorm.DB, name string, raw json.RawMessage) error {
	switch name {
	case "event_name":
		value, err := decodeString("Calendar", name, raw)
		if err != nil {
			return err
		}
		if value == "" {
			return missingField("Calendar", name, "an", "Event Name")
		}
		if err := requireUnique(tx, &Calendar{}, "event_name", value, c.ID, "Calendar Event Name must be unique"); err != nil {
			return err
		}
		c.EventName = value
	case "event_description":
		value, err := decodeString("Calendar", name, raw)
		if err != nil {
			return err
		}
		if value == "" {
			return missingField("Calendar", name, "an", "Event Description")
		}
		if err := requireMaxLen(name, value, "Calendar Event Description must be less than or equal to 250 characters long."); err != nil {
			return err
		}
		c.EventDescription = value
	case "event_date":
		value, err := decodeString("Calendar", name, raw)
		if err != nil {
			return err
		}
		if value == "" {
			return missingField("Calendar", name, "an", "Event Date")
		}
		c.EventDate = value
	case "created_by_user_id":
		id, err := decodeInt("Calendar", name, raw)
		if err != nil {
			return err
		}
		if id == 0 {
			return missingField("Calendar", name, "a", "User")
		}
		if id < 0 {
			return newValidationError(KindInvalidReference, name, "Calendar User must exist.")
		}
		if err := requireExists(tx, &User{}, uint(id), name, "Calendar User must exist."); err != nil {
			return err
		}
		c.CreatedByUserID = uint(id)
	}
	return nil
}
