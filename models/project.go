package models

import (
	"encoding/json"
	"time"

	"gorm.io/gorm"
)

// Project belongs to a team and owns tasks and files. The date fields are
// carried as opaque strings; the API never interprets them.
type Project struct {
	ID          uint   `gorm:"primarykey"`
	Title       string `gorm:"uniqueIndex;not null"`
	Description string
	Status      string `gorm:"not null"`
	StartDate   string `gorm:"not null"`
	EndDate     string `gorm:"not null"`

	CreatedAt time.Time
	UpdatedAt time.Time

	TeamID uint

	Team  *Team  `gorm:"foreignKey:TeamID"`
	Tasks []Task `gorm:"foreignKey:ProjectID"`
	Files []File `gorm:"foreignKey:ProjectID"`
}

func (p *Project) EntityName() string { return "Project" }

func (p *Project) PrimaryID() uint { return p.ID }

func (p *Project) ConstructorFields() []string {
	return []string{"title", "description", "status", "start_date", "end_date", "team_id"}
}

func (p *Project) PatchableFields() []string {
	return []string{"title", "description", "status", "start_date", "end_date", "team_id"}
}

func (p *Project) ApplyField(tx *gorm.DB, name string, raw json.RawMessage) error {
	switch name {
	case "title":
		value, err := decodeString("Project", name, raw)
		if err != nil {
			return err
		}
		if value == "" {
			return missingField("Project", name, "a", "Title")
		}
		if err := requireUnique(tx, &Project{}, "title", value, p.ID, "Project Title must be unique"); err != nil {
			return err
		}
		p.Title = value
	case "description":
		value, err := decodeString("Project", name, raw)
		if err != nil {
			return err
		}
		if value == "" {
			return missingField("Project", name, "a", "Description")
		}
		if err := requireMaxLen(name, value, "Project Description must be less than or equal to 250 characters long."); err != nil {
			return err
		}
		p.Description = value
	case "status":
		value, err := decodeString("Project", name, raw)
		if err != nil {
			return err
		}
		if value == "" {
			return missingField("Project", name, "a", "Status")
		}
		p.Status = value
	case "start_date":
		value, err := decodeString("Project", name, raw)
		if err != nil {
			return err
		}
		if value == "" {
			return missingField("Project", name, "a", "Start Date")
		}
		p.StartDate = value
	case "end_date":
		value, err := decodeString("Project", name, raw)
		if err != nil {
			return err
		}
		if value == "" {
			return missingField("Project", name, "an", "End Date")
		}
		p.EndDate = value
	case "team_id":
		id, err := decodeInt("Project", name, raw)
		if err != nil {
			return err
		}
		if id == 0 {
			return missingField("Project", name, "a", "team_id")
		}
		if id < 0 {
			return newValidationError(KindInvalidReference, name, "Project Team must exist.")
		}
		if err := requireExists(tx, &Team{}, uint(id), name, "Project Team must exist."); err != nil {
			return err
		}
		p.TeamID = uint(id)
	}
	return nil
}
