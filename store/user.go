package store

import (
	"encoding/json"

	"gorm.io/gorm"

	"projecthub/models"
)

var userPreloads = []string{"Tasks", "Files", "Teams", "Calendars", "SentMessages", "ReceivedMessages"}

func withPreloads(db *gorm.DB, preloads []string) *gorm.DB {
	for _, preload := range preloads {
		db = db.Preload(preload)
	}
	return db
}

// CreateUser hashes the password credential through the injected capability,
// applies the signup defaults (active, not admin), then funnels the remaining
// fields through the field engine.
func (s *Store) CreateUser(payload Payload) (*models.User, error) {
	user := &models.User{IsActive: true, IsAdmin: false}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		raw, _ := payload.Get("password")
		hash, err := s.hashPassword(raw)
		if err != nil {
			return err
		}
		user.PasswordHash = hash
		return createEntity(tx, user, payload)
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *Store) hashPassword(raw json.RawMessage) (string, error) {
	var password string
	if raw != nil {
		_ = json.Unmarshal(raw, &password)
	}
	if password == "" {
		return "", models.NewValidationError(models.KindMissingField, "password", "User must have a password")
	}
	return s.hasher.Hash(password)
}

func (s *Store) GetUser(id uint) (*models.User, error) {
	var user models.User
	if err := withPreloads(s.db, userPreloads).First(&user, id).Error; err != nil {
		return nil, translateFindError(err)
	}
	return &user, nil
}

// GetUserByUsername is the login lookup.
func (s *Store) GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	if err := withPreloads(s.db, userPreloads).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, translateFindError(err)
	}
	return &user, nil
}

func (s *Store) ListUsers() ([]models.User, error) {
	var users []models.User
	if err := withPreloads(s.db, userPreloads).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// PatchUser applies only the fields present in the payload. A "password" key
// is exchanged for a fresh hash before the rest go through the engine.
func (s *Store) PatchUser(id uint, payload Payload) (*models.User, error) {
	user := &models.User{}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(user, id).Error; err != nil {
			return translateFindError(err)
		}
		if raw, ok := payload.Get("password"); ok {
			hash, err := s.hashPassword(raw)
			if err != nil {
				return err
			}
			user.PasswordHash = hash
		}
		return applyPatch(tx, user, payload)
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// TouchLastLogin stamps a successful authentication.
func (s *Store) TouchLastLogin(id uint) error {
	return s.db.Model(&models.User{}).Where("id = ?", id).
		Update("last_login", gorm.Expr("CURRENT_TIMESTAMP")).Error
}

// DeleteUser removes the user and everything it owns: tasks, files, teams
// (with their projects and the projects' tasks and files), calendars, and
// chat messages in both directions.
func (s *Store) DeleteUser(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, id).Error; err != nil {
			return translateFindError(err)
		}
		if err := tx.Where("assigned_to_user_id = ?", id).Delete(&models.Task{}).Error; err != nil {
			return err
		}
		if err := tx.Where("uploaded_by_user_id = ?", id).Delete(&models.File{}).Error; err != nil {
			return err
		}
		var teamIDs []uint
		if err := tx.Model(&models.Team{}).Where("created_by_user_id = ?", id).Pluck("id", &teamIDs).Error; err != nil {
			return err
		}
		for _, teamID := range teamIDs {
			if err := deleteTeamTx(tx, teamID); err != nil {
				return err
			}
		}
		if err := tx.Where("created_by_user_id = ?", id).Delete(&models.Calendar{}).Error; err != nil {
			return err
		}
		if err := tx.Where("sender_user_id = ? OR receiver_user_id = ?", id, id).Delete(&models.ChatMessage{}).Error; err != nil {
			return err
		}
		return tx.Delete(&user).Error
	})
}
