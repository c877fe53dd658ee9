package store

import (
	"gorm.io/gorm"

	"projecthub/models"
)

var chatMessagePreloads = []string{"Sender", "Receiver"}

func (s *Store) CreateChatMessage(payload Payload) (*models.ChatMessage, error) {
	message := &models.ChatMessage{}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		return createEntity(tx, message, payload)
	})
	if err != nil {
		return nil, err
	}
	return message, nil
}

func (s *Store) GetChatMessage(id uint) (*models.ChatMessage, error) {
	var message models.ChatMessage
	if err := withPreloads(s.db, chatMessagePreloads).First(&message, id).Error; err != nil {
		return nil, translateFindError(err)
	}
	return &message, nil
}

func (s *Store) ListChatMessages() ([]models.ChatMessage, error) {
	var messages []models.ChatMessage
	if err := withPreloads(s.db, chatMessagePreloads).Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

// ListChatMessagesAfter returns messages with an id greater than afterID, in
// id order. The websocket feed polls with this.
func (s *Store) ListChatMessagesAfter(afterID uint) ([]models.ChatMessage, error) {
	var messages []models.ChatMessage
	err := withPreloads(s.db, chatMessagePreloads).
		Where("id > ?", afterID).
		Order("id").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

// LastChatMessageID returns the highest assigned message id, zero when the
// table is empty.
func (s *Store) LastChatMessageID() (uint, error) {
	var id *uint
	err := s.db.Model(&models.ChatMessage{}).Select("MAX(id)").Scan(&id).Error
	if err != nil {
		return 0, err
	}
	if id == nil {
		return 0, nil
	}
	return *id, nil
}

func (s *Store) PatchChatMessage(id uint, payload Payload) (*models.ChatMessage, error) {
	message := &models.ChatMessage{}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(message, id).Error; err != nil {
			return translateFindError(err)
		}
		return applyPatch(tx, message, payload)
	})
	if err != nil {
		return nil, err
	}
	return message, nil
}

func (s *Store) DeleteChatMessage(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var message models.ChatMessage
		if err := tx.First(&message, id).Error; err != nil {
			return translateFindError(err)
		}
		return tx.Delete(&message).Error
	})
}
