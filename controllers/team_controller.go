package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"projecthub/serializer"
	"projecthub/store"
)

type TeamController struct {
	store  *store.Store
	logger *logrus.Logger
}

func NewTeamController(s *store.Store, logger *logrus.Logger) *TeamController {
	return &TeamController{store: s, logger: logger}
}

func (tc *TeamController) GetTeams(c *fiber.Ctx) error {
	teams, err := tc.store.ListTeams()
	if err != nil {
		tc.logger.WithError(err).Error("listing teams")
		return queryFailure(c, "Team")
	}
	if len(teams) == 0 {
		return queryFailure(c, "Team")
	}
	return c.Status(fiber.StatusOK).JSON(serializer.NewTeams(teams))
}

func (tc *TeamController) CreateTeam(c *fiber.Ctx) error {
	payload, err := parseBody(c)
	if err != nil {
		return writeFailure(c, "Team", err)
	}
	team, err := tc.store.CreateTeam(payload)
	if err != nil {
		return writeFailure(c, "Team", err)
	}
	created, err := tc.store.GetTeam(team.ID)
	if err != nil {
		return writeFailure(c, "Team", err)
	}
	return c.Status(fiber.StatusCreated).JSON(serializer.NewTeam(created))
}

func (tc *TeamController) GetTeam(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return recordNotFound(c, "Team")
	}
	team, err := tc.store.GetTeam(id)
	if err != nil {
		return writeFailure(c, "Team", err)
	}
	return c.Status(fiber.StatusOK).JSON(serializer.NewTeam(team))
}

func (tc *TeamController) UpdateTeam(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return recordNotFound(c, "Team")
	}
	payload, err := parseBody(c)
	if err != nil {
		return writeFailure(c, "Team", err)
	}
	team, err := tc.store.PatchTeam(id, payload)
	if err != nil {
		return writeFailure(c, "Team", err)
	}
	updated, err := tc.store.GetTeam(team.ID)
	if err != nil {
		return writeFailure(c, "Team", err)
	}
	return c.Status(fiber.StatusCreated).JSON(serializer.NewTeam(updated))
}

// DeleteTeam cascades through the team's projects and their tasks and files.
func (tc *TeamController) DeleteTeam(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return recordNotFound(c, "Team")
	}
	if err := tc.store.DeleteTeam(id); err != nil {
		return writeFailure(c, "Team", err)
	}
	return deleteConfirmation(c, "Team")
}
