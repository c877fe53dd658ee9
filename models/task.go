package models

import (
	"encoding/json"
	"time"

	"gorm.io/gorm"
)

// Task is assigned to one user within one project.
type Task struct {
	ID          uint   `gorm:"primarykey"`
	Title       string `gorm:"uniqueIndex;not null"`
	Description string
	Status      string `gorm:"not null"`
	DueDate     string `gorm:"not null"`
	Priority    int    `gorm:"not null"`

	CreatedAt time.Time
	UpdatedAt time.Time

	AssignedToUserID uint
	ProjectID        uint

	User    *User    `gorm:"foreignKey:AssignedToUserID"`
	Project *Project `gorm:"foreignKey:ProjectID"`
}

func (t *Task) EntityName() string { return "Task" }

func (t *Task) PrimaryID() uint { return t.ID }

func (t *Task) ConstructorFields() []string {
	return []string{"title", "description", "status", "due_date", "priority", "assigned_to_user_id", "project_id"}
}

func (t *Task) PatchableFields() []string {
	return []string{"title", "description", "status", "due_date", "priority", "assigned_to_user_id", "project_id"}
}

func (t *Task) ApplyField(tx *gorm.DB, name string, raw json.RawMessage) error {
	switch name {
	case "title":
		value, err := decodeString("Task", name, raw)
		if err != nil {
			return err
		}
		if value == "" {
			return missingField("Task", name, "a", "Title")
		}
		if err := requireUnique(tx, &Task{}, "title", value, t.ID, "Task Title must be unique"); err != nil {
			return err
		}
		t.Title = value
	case "description":
		value, err := decodeString("Task", name, raw)
		if err != nil {
			return err
		}
		if value == "" {
			return missingField("Task", name, "a", "Description")
		}
		if err := requireMaxLen(name, value, "Task Description must be less than or equal to 250 characters long."); err != nil {
			return err
		}
		t.Description = value
	case "status":
		value, err := decodeString("Task", name, raw)
		if err != nil {
			return err
		}
		if value == "" {
			return missingField("Task", name, "a", "Status")
		}
		t.Status = value
	case "due_date":
		value, err := decodeString("Task", name, raw)
		if err != nil {
			return err
		}
		if value == "" {
			return missingField("Task", name, "a", "Due Date")
		}
		t.DueDate = value
	case "priority":
		value, err := decodeInt("Task", name, raw)
		if err != nil {
			return err
		}
		if value == 0 {
			return missingField("Task", name, "an", "priority.")
		}
		if value < 1 {
			return newValidationError(KindInvalidValue, name, "Task Priority must be above 0.")
		}
		t.Priority = int(value)
	case "assigned_to_user_id":
		id, err := decodeInt("Task", name, raw)
		if err != nil {
			return err
		}
		if id == 0 {
			return missingField("Task", name, "an", "Assigned User")
		}
		if id < 0 {
			return newValidationError(KindInvalidReference, name, "Task Assigned User must exist.")
		}
		if err := requireExists(tx, &User{}, uint(id), name, "Task Assigned User must exist."); err != nil {
			return err
		}
		t.AssignedToUserID = uint(id)
	case "project_id":
		id, err := decodeInt("Task", name, raw)
		if err != nil {
			return err
		}
		if id == 0 {
			return missingField("Task", name, "a", "Project Id")
		}
		if id < 0 {
			return newValidationError(KindInvalidReference, name, "Task Project must exist.")
		}
		if err := requireExists(tx, &Project{}, uint(id), name, "Task Project must exist."); err != nil {
			return err
		}
		t.ProjectID = uint(id)
	}
	return nil
}
