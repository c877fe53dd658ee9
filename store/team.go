package store

import (
	"gorm.io/gorm"

	"projecthub/models"
)

var teamPreloads = []string{"User", "Projects"}

func (s *Store) CreateTeam(payload Payload) (*models.Team, error) {
	team := &models.Team{}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		return createEntity(tx, team, payload)
	})
	if err != nil {
		return nil, err
	}
	return team, nil
}

func (s *Store) GetTeam(id uint) (*models.Team, error) {
	var team models.Team
	if err := withPreloads(s.db, teamPreloads).First(&team, id).Error; err != nil {
		return nil, translateFindError(err)
	}
	return &team, nil
}

func (s *Store) ListTeams() ([]models.Team, error) {
	var teams []models.Team
	if err := withPreloads(s.db, teamPreloads).Find(&teams).Error; err != nil {
		return nil, err
	}
	return teams, nil
}

func (s *Store) PatchTeam(id uint, payload Payload) (*models.Team, error) {
	team := &models.Team{}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(team, id).Error; err != nil {
			return translateFindError(err)
		}
		return applyPatch(tx, team, payload)
	})
	if err != nil {
		return nil, err
	}
	return team, nil
}

// DeleteTeam removes the team, its projects, and the projects' tasks and
// files.
func (s *Store) DeleteTeam(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var team models.Team
		if err := tx.First(&team, id).Error; err != nil {
			return translateFindError(err)
		}
		return deleteTeamTx(tx, id)
	})
}

func deleteTeamTx(tx *gorm.DB, id uint) error {
	var projectIDs []uint
	if err := tx.Model(&models.Project{}).Where("team_id = ?", id).Pluck("id", &projectIDs).Error; err != nil {
		return err
	}
	for _, projectID := range projectIDs {
		if err := deleteProjectTx(tx, projectID); err != nil {
			return err
		}
	}
	return tx.Delete(&models.Team{}, id).Error
}
