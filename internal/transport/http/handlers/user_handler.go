package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/taskcollab/backend/internal/domain"
	"github.com/taskcollab/backend/internal/infrastructure/logger"
)

type UserHandler struct {
	logger *logger.Logger
}

func NewUserHandler(logger *logger.Logger) *UserHandler {
	return &UserHandler{logger: logger}
}

// GetUsers returns the static demo assignee list.
func (h *UserHandler) GetUsers(c *fiber.Ctx) error {
	return c.JSON(domain.DemoUsers)
}
