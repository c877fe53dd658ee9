package models

import (
	"encoding/json"
	"time"

	"gorm.io/gorm"
)

// Team groups projects under a creating user. Deleting a team removes its
// projects and, through them, their tasks and files.
type Team struct {
	ID          uint   `gorm:"primarykey"`
	Name        string `gorm:"uniqueIndex;not null"`
	Description string

	DateCreated time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time

	CreatedByUserID uint

	User     *User     `gorm:"foreignKey:CreatedByUserID"`
	Projects []Project `gorm:"foreignKey:TeamID"`
}

func (t *Team) EntityName() string { return "Team" }

func (t *Team) PrimaryID() uint { return t.ID }

func (t *Team) ConstructorFields() []string {
	return []string{"name", "description", "created_by_user_id"}
}

func (t *Team) PatchableFields() []string {
	return []string{"name", "description", "created_by_user_id"}
}

func (t *Team) ApplyField(tx *gorm.DB, name string, raw json.RawMessage) error {
	switch name {
	case "name":
		value, err := decodeString("Team", name, raw)
		if err != nil {
			return err
		}
		if value == "" {
			return missingField("Team", name, "a", "Name")
		}
		if err := requireUnique(tx, &Team{}, "name", value, t.ID, "Team Name must be unique"); err != nil {
			return err
		}
		t.Name = value
	case "description":
		value, err := decodeString("Team", name, raw)
		if err != nil {
			return err
		}
		if value == "" {
			return missingField("Team", name, "a", "Description")
		}
		if err := requireMaxLen(name, value, "Team Description must be less than or equal to 250 characters long."); err != nil {
			return err
		}
		t.Description = value
	case "created_by_user_id":
		id, err := decodeInt("Team", name, raw)
		if err != nil {
			return err
		}
		if id == 0 {
			return missingField("Team", name, "a", "User")
		}
		if id < 0 {
			return newValidationError(KindInvalidReference, name, "Team User must exist.")
		}
		if err := requireExists(tx, &User{}, uint(id), name, "Team User must exist."); err != nil {
			return err
		}
		t.CreatedByUserID = uint(id)
	}
	return nil
}
