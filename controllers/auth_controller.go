package controller

import (
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"projecthub/middleware"
	"projecthub/serializer"
	"projecthub/store"
	"projecthub/utils"
)

type AuthController struct {
	store    *store.Store
	sessions utils.SessionStore
	hasher   utils.PasswordHasher
	logger   *logrus.Logger
}

func NewAuthController(s *store.Store, sessions utils.SessionStore, hasher utils.PasswordHasher, logger *logrus.Logger) *AuthController {
	return &AuthController{store: s, sessions: sessions, hasher: hasher, logger: logger}
}

// SignupRequest only requires presence here; the email shape rule (contains
// "@") belongs to the user field engine so signup and POST /users agree.
type SignupRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Home greets unauthenticated clients at the API root.
func (ac *AuthController) Home(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Welcome to the Syntax Slingers RESTful API",
	})
}

func (ac *AuthController) Signup(c *fiber.Ctx) error {
	var req SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return signupRejected(c)
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return signupRejected(c)
	}

	payload := store.NewPayload()
	payload.Set("username", mustRaw(req.Username))
	payload.Set("email", mustRaw(req.Email))
	payload.Set("password", mustRaw(req.Password))
	user, err := ac.store.CreateUser(payload)
	if err != nil {
		ac.logger.WithError(err).Warn("signup rejected")
		return signupRejected(c)
	}

	if err := ac.openSession(c, user.ID); err != nil {
		ac.logger.WithError(err).Error("opening session after signup")
		return signupRejected(c)
	}

	created, err := ac.store.GetUser(user.ID)
	if err != nil {
		return signupRejected(c)
	}
	return c.Status(fiber.StatusCreated).JSON(serializer.NewUser(created))
}

func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return loginRejected(c)
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return loginRejected(c)
	}

	user, err := ac.store.GetUserByUsername(req.Username)
	if err != nil {
		return loginRejected(c)
	}
	if !ac.hasher.Verify(user.PasswordHash, req.Password) {
		return loginRejected(c)
	}

	if err := ac.store.TouchLastLogin(user.ID); err != nil {
		ac.logger.WithError(err).Warn("recording last login")
	}
	if err := ac.openSession(c, user.ID); err != nil {
		ac.logger.WithError(err).Error("opening session after login")
		return loginRejected(c)
	}

	fresh, err := ac.store.GetUser(user.ID)
	if err != nil {
		return loginRejected(c)
	}
	return c.Status(fiber.StatusOK).JSON(serializer.NewUser(fresh))
}

// CheckSession resolves the session cookie back into the logged-in user.
func (ac *AuthController) CheckSession(c *fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c, ac.sessions)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "401 Unauthorized",
		})
	}
	user, err := ac.store.GetUser(userID)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "401 Unauthorized",
		})
	}
	return c.Status(fiber.StatusOK).JSON(serializer.NewUser(user))
}

func (ac *AuthController) Logout(c *fiber.Ctx) error {
	token := c.Cookies(middleware.SessionCookie)
	if token == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "401 Unauthorized",
		})
	}
	if _, ok := ac.sessions.Get(c.Context(), token); !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "401 Unauthorized",
		})
	}
	if err := ac.sessions.Delete(c.Context(), token); err != nil {
		ac.logger.WithError(err).Warn("deleting session")
	}
	ac.expireCookie(c)
	return c.SendStatus(fiber.StatusNoContent)
}

// ClearSession drops whatever session cookie is present without caring
// whether it was valid.
func (ac *AuthController) ClearSession(c *fiber.Ctx) error {
	if token := c.Cookies(middleware.SessionCookie); token != "" {
		if err := ac.sessions.Delete(c.Context(), token); err != nil {
			ac.logger.WithError(err).Warn("deleting session")
		}
	}
	ac.expireCookie(c)
	return c.SendStatus(fiber.StatusNoContent)
}

func (ac *AuthController) openSession(c *fiber.Ctx, userID uint) error {
	token, err := ac.sessions.Create(c.Context(), userID)
	if err != nil {
		return err
	}
	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
	return nil
}

func (ac *AuthController) expireCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Path:     "/",
	})
}

func signupRejected(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
		"error": "422 Unprocessable Entity",
	})
}

func loginRejected(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error": "401 Unauthorized",
	})
}

func mustRaw(v interface{}) json.RawMessage {
	raw, err := json.Marshal(v)
	if err != nil {
		return json.RawMessage("null")
	}
	return raw
}
