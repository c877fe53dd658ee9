package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"projecthub/serializer"
	"projecthub/store"
)

type UserController struct {
	store  *store.Store
	logger *logrus.Logger
}

func NewUserController(s *store.Store, logger *logrus.Logger) *UserController {
	return &UserController{store: s, logger: logger}
}

func (uc *UserController) GetUsers(c *fiber.Ctx) error {
	users, err := uc.store.ListUsers()
	if err != nil {
		uc.logger.WithError(err).Error("listing users")
		return queryFailure(c, "User")
	}
	if len(users) == 0 {
		return queryFailure(c, "User")
	}
	return c.Status(fiber.StatusOK).JSON(serializer.NewUsers(users))
}

func (uc *UserController) CreateUser(c *fiber.Ctx) error {
	payload, err := parseBody(c)
	if err != nil {
		return writeFailure(c, "User", err)
	}
	user, err := uc.store.CreateUser(payload)
	if err != nil {
		return writeFailure(c, "User", err)
	}
	created, err := uc.store.GetUser(user.ID)
	if err != nil {
		return writeFailure(c, "User", err)
	}
	return c.Status(fiber.StatusCreated).JSON(serializer.NewUser(created))
}

func (uc *UserController) GetUser(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return recordNotFound(c, "User")
	}
	user, err := uc.store.GetUser(id)
	if err != nil {
		return writeFailure(c, "User", err)
	}
	return c.Status(fiber.StatusOK).JSON(serializer.NewUser(user))
}

// UpdateUser answers 201 on success; the original API did, and clients expect
// it.
func (uc *UserController) UpdateUser(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return recordNotFound(c, "User")
	}
	payload, err := parseBody(c)
	if err != nil {
		return writeFailure(c, "User", err)
	}
	user, err := uc.store.PatchUser(id, payload)
	if err != nil {
		return writeFailure(c, "User", err)
	}
	updated, err := uc.store.GetUser(user.ID)
	if err != nil {
		return writeFailure(c, "User", err)
	}
	return c.Status(fiber.StatusCreated).JSON(serializer.NewUser(updated))
}

func (uc *UserController) DeleteUser(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return recordNotFound(c, "User")
	}
	if err := uc.store.DeleteUser(id); err != nil {
		return writeFailure(c, "User", err)
	}
	return deleteConfirmation(c, "User")
}
