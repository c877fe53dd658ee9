package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"projecthub/serializer"
	"projecthub/store"
)

type FileController struct {
	store  *store.Store
	logger *logrus.Logger
}

func NewFileController(s *store.Store, logger *logrus.Logger) *FileController {
	return &FileController{store: s, logger: logger}
}

func (fc *FileController) GetFiles(c *fiber.Ctx) error {
	files, err := fc.store.ListFiles()
	if err != nil {
		fc.logger.WithError(err).Error("listing files")
		return queryFailure(c, "File")
	}
	if len(files) == 0 {
		return queryFailure(c, "File")
	}
	return c.Status(fiber.StatusOK).JSON(serializer.NewFiles(files))
}

func (fc *FileController) CreateFile(c *fiber.Ctx) error {
	payload, err := parseBody(c)
	if err != nil {
		return writeFailure(c, "File", err)
	}
	file, err := fc.store.CreateFile(payload)
	if err != nil {
		return writeFailure(c, "File", err)
	}
	created, err := fc.store.GetFile(file.ID)
	if err != nil {
		return writeFailure(c, "File", err)
	}
	return c.Status(fiber.StatusCreated).JSON(serializer.NewFile(created))
}

func (fc *FileController) GetFile(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return recordNotFound(c, "File")
	}
	file, err := fc.store.GetFile(id)
	if err != nil {
		return writeFailure(c, "File", err)
	}
	return c.Status(fiber.StatusOK).JSON(serializer.NewFile(file))
}

func (fc *FileController) UpdateFile(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return recordNotFound(c, "File")
	}
	payload, err := parseBody(c)
	if err != nil {
		return writeFailure(c, "File", err)
	}
	file, err := fc.store.PatchFile(id, payload)
	if err != nil {
		return writeFailure(c, "File", err)
	}
	updated, err := fc.store.GetFile(file.ID)
	if err != nil {
		return writeFailure(c, "File", err)
	}
	return c.Status(fiber.StatusCreated).JSON(serializer.NewFile(updated))
}

func (fc *FileController) DeleteFile(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return recordNotFound(c, "File")
	}
	if err := fc.store.DeleteFile(id); err != nil {
		return writeFailure(c, "File", err)
	}
	return deleteConfirmation(c, "File")
}
