package store

import (
	"gorm.io/gorm"

	"projecthub/models"
)

var projectPreloads = []string{"Team", "Tasks", "Files"}

func (s *Store) CreateProject(payload Payload) (*models.Project, error) {
	project := &models.Project{}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		return createEntity(tx, project, payload)
	})
	if err != nil {
		return nil, err
	}
	return project, nil
}

func (s *Store) GetProject(id uint) (*models.Project, error) {
	var project models.Project
	if err := withPreloads(s.db, projectPreloads).First(&project, id).Error; err != nil {
		return nil, translateFindError(err)
	}
	return &project, nil
}

func (s *Store) ListProjects() ([]models.Project, error) {
	var projects []models.Project
	if err := withPreloads(s.db, projectPreloads).Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

func (s *Store) PatchProject(id uint, payload Payload) (*models.Project, error) {
	project := &models.Project{}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(project, id).Error; err != nil {
			return translateFindError(err)
		}
		return applyPatch(tx, project, payload)
	})
	if err != nil {
		return nil, err
	}
	return project, nil
}

// DeleteProject removes the project and its tasks and files.
func (s *Store) DeleteProject(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var project models.Project
		if err := tx.First(&project, id).Error; err != nil {
			return translateFindError(err)
		}
		return deleteProjectTx(tx, id)
	})
}

func deleteProjectTx(tx *gorm.DB, id uint) error {
	if err := tx.Where("project_id = ?", id).Delete(&models.Task{}).Error; err != nil {
		return err
	}
	if err := tx.Where("project_id = ?", id).Delete(&models.File{}).Error; err != nil {
		return err
	}
	return tx.Delete(&models.Project{}, id).Error
}
