package store

import (
	"gorm.io/gorm"

	"projecthub/models"
)

var calendarPreloads = []string{"User"}

func (s *Store) CreateCalendar(payload Payload) (*models.Calendar, error) {
	calendar := &models.Calendar{}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		return createEntity(tx, calendar, payload)
	})
	if err != nil {
		return nil, err
	}
	return calendar, nil
}

func (s *Store) GetCalendar(id uint) (*models.Calendar, error) {
	var calendar models.Calendar
	if err := withPreloads(s.db, calendarPreloads).First(&calendar, id).Error; err != nil {
		return nil, translateFindError(err)
	}
	return &calendar, nil
}

func (s *Store) ListCalendars() ([]models.Calendar, error) {
	var calendars []models.Calendar
	if err := withPreloads(s.db, calendarPreloads).Find(&calendars).Error; err != nil {
		return nil, err
	}
	return calendars, nil
}

func (s *Store) PatchCalendar(id uint, payload Payload) (*models.Calendar, error) {
	calendar := &models.Calendar{}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(calendar, id).Error; err != nil {
			return translateFindError(err)
		}
		return applyPatch(tx, calendar, payload)
	})
	if err != nil {
		return nil, err
	}
	return calendar, nil
}

func (s *Store) DeleteCalendar(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var calendar models.Calendar
		if err := tx.First(&calendar, id).Error; err != nil {
			return translateFindError(err)
		}
		return tx.Delete(&calendar).Error
	})
}
