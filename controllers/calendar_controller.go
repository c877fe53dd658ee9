package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"projecthub/serializer"
	"projecthub/store"
)

type CalendarController struct {
	store  *store.Store
	logger *logrus.Logger
}

func NewCalendarController(s *store.Store, logger *logrus.Logger) *CalendarController {
	return &CalendarController{store: s, logger: logger}
}

func (cc *CalendarController) GetCalendars(c *fiber.Ctx) error {
	calendars, err := cc.store.ListCalendars()
	if err != nil {
		cc.logger.WithError(err).Error("listing calendars")
		return queryFailure(c, "Calendar")
	}
	if len(calendars) == 0 {
		return queryFailure(c, "Calendar")
	}
	return c.Status(fiber.StatusOK).JSON(serializer.NewCalendars(calendars))
}

func (cc *CalendarController) CreateCalendar(c *fiber.Ctx) error {
	payload, err := parseBody(c)
	if err != nil {
		return writeFailure(c, "Calendar", err)
	}
	calendar, err := cc.store.CreateCalendar(payload)
	if err != nil {
		return writeFailure(c, "Calendar", err)
	}
	created, err := cc.store.GetCalendar(calendar.ID)
	if err != nil {
		return writeFailure(c, "Calendar", err)
	}
	return c.Status(fiber.StatusCreated).JSON(serializer.NewCalendar(created))
}

func (cc *CalendarController) GetCalendar(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return recordNotFound(c, "Calendar")
	}
	calendar, err := cc.store.GetCalendar(id)
	if err != nil {
		return writeFailure(c, "Calendar", err)
	}
	return c.Status(fiber.StatusOK).JSON(serializer.NewCalendar(calendar))
}

func (cc *CalendarController) UpdateCalendar(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return recordNotFound(c, "Calendar")
	}
	payload, err := parseBody(c)
	if err != nil {
		return writeFailure(c, "Calendar", err)
	}
	calendar, err := cc.store.PatchCalendar(id, payload)
	if err != nil {
		return writeFailure(c, "Calendar", err)
	}
	updated, err := cc.store.GetCalendar(calendar.ID)
	if err != nil {
		return writeFailure(c, "Calendar", err)
	}
	return c.Status(fiber.StatusCreated).JSON(serializer.NewCalendar(updated))
}

func (cc *CalendarController) DeleteCalendar(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return recordNotFound(c, "Calendar")
	}
	if err := cc.store.DeleteCalendar(id); err != nil {
		return writeFailure(c, "Calendar", err)
	}
	return deleteConfirmation(c, "Calendar")
}
