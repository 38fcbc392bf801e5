package http

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/taskcollab/backend/internal/config"
	"github.com/taskcollab/backend/internal/core/services"
	"github.com/taskcollab/backend/internal/infrastructure/logger"
	"github.com/taskcollab/backend/internal/infrastructure/store"
	"github.com/taskcollab/backend/internal/transport/http/handlers"
	"github.com/taskcollab/backend/internal/transport/ws"
)

type RouterConfig struct {
	Redis  *redis.Client
	Logger *logger.Logger
	Config *config.Config
	Hub    *ws.Hub
}

func SetupRoutes(app *fiber.App, cfg RouterConfig) {
	// Initialize store layer
	cache := store.NewCache(cfg.Redis, cfg.Config.Cache.TTL, cfg.Logger)
	taskRepo := store.NewTaskRepository(cfg.Redis, cache, cfg.Logger)

	// Initialize services
	taskService := services.NewTaskService(services.TaskServiceConfig{
		Repository: taskRepo,
		Logger:     cfg.Logger,
	})

	// Initialize handlers
	taskHandler := handlers.NewTaskHandler(taskService, cfg.Logger)
	userHandler := handlers.NewUserHandler(cfg.Logger)
	realtimeHandler := handlers.NewRealtimeHandler(cfg.Hub, cfg.Logger)

	// Static front-end assets
	app.Static("/", "./public")

	// Real-time viewer route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			c.Locals("allowed", true)
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(realtimeHandler.Handle))

	// API v1 routes
	api := app.Group("/api/v1")

	// Task routes; /user/:userId must be registered before /:id
	tasks := api.Group("/tasks")
	tasks.Post("/", taskHandler.CreateTask)
	tasks.Get("/", taskHandler.GetTasks)
	tasks.Get("/user/:userId", taskHandler.GetTasksByUser)
	tasks.Get("/:id", taskHandler.GetTask)
	tasks.Put("/:id", taskHandler.UpdateTask)
	tasks.Delete("/:id", taskHandler.DeleteTask)

	// User routes
	api.Get("/users", userHandler.GetUsers)
}
