package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"projecthub/serializer"
	"projecthub/store"
)

type ChatMessageController struct {
	store  *store.Store
	logger *logrus.Logger
}

func NewChatMessageController(s *store.Store, logger *logrus.Logger) *ChatMessageController {
	return &ChatMessageController{store: s, logger: logger}
}

func (mc *ChatMessageController) GetChatMessages(c *fiber.Ctx) error {
	messages, err := mc.store.ListChatMessages()
	if err != nil {
		mc.logger.WithError(err).Error("listing chat messages")
		return queryFailure(c, "Chat_Message")
	}
	if len(messages) == 0 {
		return queryFailure(c, "Chat_Message")
	}
	return c.Status(fiber.StatusOK).JSON(serializer.NewChatMessages(messages))
}

func (mc *ChatMessageController) CreateChatMessage(c *fiber.Ctx) error {
	payload, err := parseBody(c)
	if err != nil {
		return writeFailure(c, "Chat_Message", err)
	}
	message, err := mc.store.CreateChatMessage(payload)
	if err != nil {
		return writeFailure(c, "Chat_Message", err)
	}
	created, err := mc.store.GetChatMessage(message.ID)
	if err != nil {
		return writeFailure(c, "Chat_Message", err)
	}
	return c.Status(fiber.StatusCreated).JSON(serializer.NewChatMessage(created))
}

func (mc *ChatMessageController) GetChatMessage(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return recordNotFound(c, "Chat_Message")
	}
	message, err := mc.store.GetChatMessage(id)
	if err != nil {
		return writeFailure(c, "Chat_Message", err)
	}
	return c.Status(fiber.StatusOK).JSON(serializer.NewChatMessage(message))
}

func (mc *ChatMessageController) UpdateChatMessage(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return recordNotFound(c, "Chat_Message")
	}
	payload, err := parseBody(c)
	if err != nil {
		return writeFailure(c, "Chat_Message", err)
	}
	message, err := mc.store.PatchChatMessage(id, payload)
	if err != nil {
		return writeFailure(c, "Chat_Message", err)
	}
	updated, err := mc.store.GetChatMessage(message.ID)
	if err != nil {
		return writeFailure(c, "Chat_Message", err)
	}
	return c.Status(fiber.StatusCreated).JSON(serializer.NewChatMessage(updated))
}

func (mc *ChatMessageController) DeleteChatMessage(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return recordNotFound(c, "Chat_Message")
	}
	if err := mc.store.DeleteChatMessage(id); err != nil {
		return writeFailure(c, "Chat_Message", err)
	}
	return deleteConfirmation(c, "Chat_Message")
}
