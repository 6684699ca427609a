package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/yatraflow/yatraflow/internal/api/dto"
	"github.com/yatraflow/yatraflow/internal/repository"
)

// UsersHandler exposes admin account management.
type UsersHandler struct {
	users repository.UserRepository
}

// NewUsersHandler constructs handler.
func NewUsersHandler(users repository.UserRepository) *UsersHandler {
	return &UsersHandler{users: users}
}

// List handles GET /users.
func (h *UsersHandler) List(c *fiber.Ctx) error {
	accounts := h.users.ListUsers()
	out := make([]dto.UserResponse, len(accounts))
	for i, u := range accounts {
		out[i] = dto.NewUserResponse(u)
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"users": out}})
}

// Delete handles DELETE /users/:id. Absent ids are a silent no-op.
func (h *UsersHandler) Delete(c *fiber.Ctx) error {
	h.users.DeleteUser(c.Context(), c.Params("id"))
	return c.SendStatus(http.StatusNoContent)
}
