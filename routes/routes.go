package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/websocket/v2"
	"github.com/sirupsen/logrus"

	controller "projecthub/controllers"
	"projecthub/store"
	"projecthub/utils"
)

func SetupAuthRoutes(app *fiber.App, s *store.Store, sessions utils.SessionStore, hasher utils.PasswordHasher, log *logrus.Logger) {
	authController := controller.NewAuthController(s, sessions, hasher, log)

	app.Get("/", authController.Home)
	app.Post("/signup", authController.Signup)
	app.Post("/login", authController.Login)
	app.Get("/check_session", authController.CheckSession)
	app.Delete("/logout", authController.Logout)
	app.Delete("/clear", authController.ClearSession)

	log.Info("Authentication routes initialized successfully")
}

func SetupAPIRoutes(app *fiber.App, s *store.Store, log *logrus.Logger) {
	userController := controller.NewUserController(s, log)
	teamController := controller.NewTeamController(s, log)
	projectController := controller.NewProjectController(s, log)
	taskController := controller.NewTaskController(s, log)
	fileController := controller.NewFileController(s, log)
	calendarController := controller.NewCalendarController(s, log)
	chatMessageController := controller.NewChatMessageController(s, log)

	api := app.Group("", logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	users := api.Group("/users")
	users.Get("/", userController.GetUsers)
	users.Post("/", userController.CreateUser)
	users.Get("/:id", userController.GetUser)
	users.Patch("/:id", userController.UpdateUser)
	users.Delete("/:id", userController.DeleteUser)

	teams := api.Group("/teams")
	teams.Get("/", teamController.GetTeams)
	teams.Post("/", teamController.CreateTeam)
	teams.Get("/:id", teamController.GetTeam)
	teams.Patch("/:id", teamController.UpdateTeam)
	teams.Delete("/:id", teamController.DeleteTeam)

	projects := api.Group("/projects")
	projects.Get("/", projectController.GetProjects)
	projects.Post("/", projectController.CreateProject)
	projects.Get("/:id", projectController.GetProject)
	projects.Patch("/:id", projectController.UpdateProject)
	projects.Delete("/:id", projectController.DeleteProject)

	tasks := api.Group("/tasks")
	tasks.Get("/", taskController.GetTasks)
	tasks.Post("/", taskController.CreateTask)
	tasks.Get("/:id", taskController.GetTask)
	tasks.Patch("/:id", taskController.UpdateTask)
	tasks.Delete("/:id", taskController.DeleteTask)

	files := api.Group("/files")
	files.Get("/", fileController.GetFiles)
	files.Post("/", fileController.CreateFile)
	files.Get("/:id", fileController.GetFile)
	files.Patch("/:id", fileController.UpdateFile)
	files.Delete("/:id", fileController.DeleteFile)

	calendars := api.Group("/calendars")
	calendars.Get("/", calendarController.GetCalendars)
	calendars.Post("/", calendarController.CreateCalendar)
	calendars.Get("/:id", calendarController.GetCalendar)
	calendars.Patch("/:id", calendarController.UpdateCalendar)
	calendars.Delete("/:id", calendarController.DeleteCalendar)

	chatMessages := api.Group("/chat_messages")
	chatMessages.Get("/", chatMessageController.GetChatMessages)
	chatMessages.Post("/", chatMessageController.CreateChatMessage)
	chatMessages.Get("/:id", chatMessageController.GetChatMessage)
	chatMessages.Patch("/:id", chatMessageController.UpdateChatMessage)
	chatMessages.Delete("/:id", chatMessageController.DeleteChatMessage)

	// WebSocket feed for new chat messages
	app.Get("/ws/chat_messages", websocket.New(controller.HandleChatFeedWS(s, log)))

	log.Info("API routes initialized successfully")
}

func SetupRoutes(app *fiber.App, s *store.Store, sessions utils.SessionStore, hasher utils.PasswordHasher, log *logrus.Logger) {
	SetupAuthRoutes(app, s, sessions, hasher, log)
	SetupAPIRoutes(app, s, log)

	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error":   "Not Found",
			"message": "The requested resource was not found",
		})
	})
}
