package store

import (
	"gorm.io/gorm"

	"projecthub/models"
)

var filePreloads = []string{"User", "Project"}

func (s *Store) CreateFile(payload Payload) (*models.File, error) {
	file := &models.File{}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		return createEntity(tx, file, payload)
	})
	if err != nil {
		return nil, err
	}
	return file, nil
}

func (s *Store) GetFile(id uint) (*models.File, error) {
	var file models.File
	if err := withPreloads(s.db, filePreloads).First(&file, id).Error; err != nil {
		return nil, translateFindError(err)
	}
	return &file, nil
}

func (s *Store) ListFiles() ([]models.File, error) {
	var files []models.File
	if err := withPreloads(s.db, filePreloads).Find(&files).Error; err != nil {
		return nil, err
	}
	return files, nil
}

func (s *Store) PatchFile(id uint, payload Payload) (*models.File, error) {
	file := &models.File{}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(file, id).Error; err != nil {
			return translateFindError(err)
		}
		return applyPatch(tx, file, payload)
	})
	if err != nil {
		return nil, err
	}
	return file, nil
}

func (s *Store) DeleteFile(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var file models.File
		if err := tx.First(&file, id).Error; err != nil {
			return translateFindError(err)
		}
		return tx.Delete(&file).Error
	})
}
