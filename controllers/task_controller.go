package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"projecthub/serializer"
	"projecthub/store"
)

type TaskController struct {
	store  *store.Store
	logger *logrus.Logger
}

func NewTaskController(s *store.Store, logger *logrus.Logger) *TaskController {
	return &TaskController{store: s, logger: logger}
}

func (tc *TaskController) GetTasks(c *fiber.Ctx) error {
	tasks, err := tc.store.ListTasks()
	if err != nil {
		tc.logger.WithError(err).Error("listing tasks")
		return queryFailure(c, "Task")
	}
	if len(tasks) == 0 {
		return queryFailure(c, "Task")
	}
	return c.Status(fiber.StatusOK).JSON(serializer.NewTasks(tasks))
}

func (tc *TaskController) CreateTask(c *fiber.Ctx) error {
	payload, err := parseBody(c)
	if err != nil {
		return writeFailure(c, "Task", err)
	}
	task, err := tc.store.CreateTask(payload)
	if err != nil {
		return writeFailure(c, "Task", err)
	}
	created, err := tc.store.GetTask(task.ID)
	if err != nil {
		return writeFailure(c, "Task", err)
	}
	return c.Status(fiber.StatusCreated).JSON(serializer.NewTask(created))
}

func (tc *TaskController) GetTask(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return recordNotFound(c, "Task")
	}
	task, err := tc.store.GetTask(id)
	if err != nil {
		return writeFailure(c, "Task", err)
	}
	return c.Status(fiber.StatusOK).JSON(serializer.NewTask(task))
}

func (tc *TaskController) UpdateTask(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return recordNotFound(c, "Task")
	}
	payload, err := parseBody(c)
	if err != nil {
		return writeFailure(c, "Task", err)
	}
	task, err := tc.store.PatchTask(id, payload)
	if err != nil {
		return writeFailure(c, "Task", err)
	}
	updated, err := tc.store.GetTask(task.ID)
	if err != nil {
		return writeFailure(c, "Task", err)
	}
	return c.Status(fiber.StatusCreated).JSON(serializer.NewTask(updated))
}

func (tc *TaskController) DeleteTask(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return recordNotFound(c, "Task")
	}
	if err := tc.store.DeleteTask(id); err != nil {
		return writeFailure(c, "Task", err)
	}
	return deleteConfirmation(c, "Task")
}
