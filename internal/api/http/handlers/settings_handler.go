package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/yatraflow/yatraflow/internal/service"
)

// SettingsHandler exposes persisted dashboard preferences.
type SettingsHandler struct {
	settings *service.SettingsService
}

// NewSettingsHandler constructs handler.
func NewSettingsHandler(settings *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

// GetTheme handles GET /settings/theme.
func (h *SettingsHandler) GetTheme(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": fiber.Map{"theme": h.settings.Theme(c.Context())}})
}

// PutTheme handles PUT /settings/theme.
func (h *SettingsHandler) PutTheme(c *fiber.Ctx) error {
	var req struct {
		Theme string `json:"theme"`
	}
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if err := h.settings.SetTheme(c.Context(), req.Theme); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"theme": req.Theme}})
}
