package store

import (
	"gorm.io/gorm"

	"projecthub/models"
)

var taskPreloads = []string{"User", "Project"}

func (s *Store) CreateTask(payload Payload) (*models.Task, error) {
	task := &models.Task{}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		return createEntity(tx, task, payload)
	})
	if err != nil {
		return nil, err
	}
	return task, nil
}

func (s *Store) GetTask(id uint) (*models.Task, error) {
	var task models.Task
	if err := withPreloads(s.db, taskPreloads).First(&task, id).Error; err != nil {
		return nil, translateFindError(err)
	}
	return &task, nil
}

func (s *Store) ListTasks() ([]models.Task, error) {
	var tasks []models.Task
	if err := withPreloads(s.db, taskPreloads).Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (s *Store) PatchTask(id uint, payload Payload) (*models.Task, error) {
	task := &models.Task{}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(task, id).Error; err != nil {
			return translateFindError(err)
		}
		return applyPatch(tx, task, payload)
	})
	if err != nil {
		return nil, err
	}
	return task, nil
}

func (s *Store) DeleteTask(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var task models.Task
		if err := tx.First(&task, id).Error; err != nil {
			return translateFindError(err)
		}
		return tx.Delete(&task).Error
	})
}
