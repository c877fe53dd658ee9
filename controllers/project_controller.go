package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"projecthub/serializer"
	"projecthub/store"
)

type ProjectController struct {
	store  *store.Store
	logger *logrus.Logger
}

func NewProjectController(s *store.Store, logger *logrus.Logger) *ProjectController {
	return &ProjectController{store: s, logger: logger}
}

func (pc *ProjectController) GetProjects(c *fiber.Ctx) error {
	projects, err := pc.store.ListProjects()
	if err != nil {
		pc.logger.WithError(err).Error("listing projects")
		return queryFailure(c, "Project")
	}
	if len(projects) == 0 {
		return queryFailure(c, "Project")
	}
	return c.Status(fiber.StatusOK).JSON(serializer.NewProjects(projects))
}

func (pc *ProjectController) CreateProject(c *fiber.Ctx) error {
	payload, err := parseBody(c)
	if err != nil {
		return writeFailure(c, "Project", err)
	}
	project, err := pc.store.CreateProject(payload)
	if err != nil {
		return writeFailure(c, "Project", err)
	}
	created, err := pc.store.GetProject(project.ID)
	if err != nil {
		return writeFailure(c, "Project", err)
	}
	return c.Status(fiber.StatusCreated).JSON(serializer.NewProject(created))
}

func (pc *ProjectController) GetProject(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return recordNotFound(c, "Project")
	}
	project, err := pc.store.GetProject(id)
	if err != nil {
		return writeFailure(c, "Project", err)
	}
	return c.Status(fiber.StatusOK).JSON(serializer.NewProject(project))
}

func (pc *ProjectController) UpdateProject(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return recordNotFound(c, "Project")
	}
	payload, err := parseBody(c)
	if err != nil {
		return writeFailure(c, "Project", err)
	}
	project, err := pc.store.PatchProject(id, payload)
	if err != nil {
		return writeFailure(c, "Project", err)
	}
	updated, err := pc.store.GetProject(project.ID)
	if err != nil {
		return writeFailure(c, "Project", err)
	}
	return c.Status(fiber.StatusCreated).JSON(serializer.NewProject(updated))
}

func (pc *ProjectController) DeleteProject(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return recordNotFound(c, "Project")
	}
	if err := pc.store.DeleteProject(id); err != nil {
		return writeFailure(c, "Project", err)
	}
	return deleteConfirmation(c, "Project")
}
