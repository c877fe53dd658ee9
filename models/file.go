package models

import (
	"encoding/json"
	"time"

	"gorm.io/gorm"
)

// File records an upload's metadata against a user and a project. The content
// itself never passes through this API.
type File struct {
	ID          uint   `gorm:"primarykey"`
	Filename    string `gorm:"uniqueIndex;not null"`
	Description string
	FileType    string `gorm:"not null"`
	Size        int    `gorm:"not null"`

	DateUploaded time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time

	UploadedByUserID uint
	ProjectID        uint

	User    *User    `gorm:"foreignKey:UploadedByUserID"`
	Project *Project `gorm:"foreignKey:ProjectID"`
}

func (f *File) EntityName() string { return "File" }

func (f *File) PrimaryID() uint { return f.ID }

// Description is not part of the create payload; it is only assignable by
// patch, where the engine still requires it non-empty.
func (f *File) ConstructorFields() []string {
	return []string{"filename", "file_type", "size", "uploaded_by_user_id", "project_id"}
}

func (f *File) PatchableFields() []string {
	return []string{"filename", "description", "file_type", "size", "uploaded_by_user_id", "project_id"}
}

func (f *File) ApplyField(tx *gorm.DB, name string, raw json.RawMessage) error {
	switch name {
	case "filename":
		value, err := decodeString("File", name, raw)
		if err != nil {
			return err
		}
		if value == "" {
			return missingField("File", name, "a", "Filename")
		}
		if err := requireUnique(tx, &File{}, "filename", value, f.ID, "File Filename must be unique"); err != nil {
			return err
		}
		f.Filename = value
	case "description":
		value, err := decodeString("File", name, raw)
		if err != nil {
			return err
		}
		if value == "" {
			return missingField("File", name, "a", "Description")
		}
		if err := requireMaxLen(name, value, "File Description must be less than or equal to 250 characters long."); err != nil {
			return err
		}
		f.Description = value
	case "file_type":
		value, err := decodeString("File", name, raw)
		if err != nil {
			return err
		}
		if value == "" {
			return missingField("File", name, "a", "File Type")
		}
		f.FileType = value
	case "size":
		value, err := decodeInt("File", name, raw)
		if err != nil {
			return err
		}
		if value == 0 {
			return missingField("File", name, "a", "File Size.")
		}
		// Enforced bound is strictly greater than 1, not the ">0" the old
		// docs claimed; the message is kept as-is.
		if value <= 1 {
			return newValidationError(KindInvalidValue, name, "File Size cannot be 0.")
		}
		f.Size = int(value)
	case "uploaded_by_user_id":
		id, err := decodeInt("File", name, raw)
		if err != nil {
			return err
		}
		if id == 0 {
			return missingField("File", name, "an", "Uploaded by User")
		}
		if id < 0 {
			return newValidationError(KindInvalidReference, name, "File Uploading User must exist.")
		}
		if err := requireExists(tx, &User{}, uint(id), name, "File Uploading User must exist."); err != nil {
			return err
		}
		f.UploadedByUserID = uint(id)
	case "project_id":
		id, err := decodeInt("File", name, raw)
		if err != nil {
			return err
		}
		if id == 0 {
			return missingField("File", name, "a", "Project Id")
		}
		if id < 0 {
			return newValidationError(KindInvalidReference, name, "File Project must exist.")
		}
		if err := requireExists(tx, &Project{}, uint(id), name, "File Project must exist."); err != nil {
			return err
		}
		f.ProjectID = uint(id)
	}
	return nil
}
