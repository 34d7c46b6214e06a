package handlers

import (
	"encoding/json"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/maheshrc27/postflow-tools/internal/tools"
)

type ToolHandler struct {
	r *tools.Registry
}

func NewToolHandler(registry *tools.Registry) *ToolHandler {
	return &ToolHandler{r: registry}
}

func (h *ToolHandler) ListTools(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"tools": h.r.Catalog(),
	})
}

func (h *ToolHandler) CallTool(c *fiber.Ctx) error {
	name := c.Params("name")

	body := c.Body()
	if len(body) > 0 && !json.Valid(body) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Request body must be a JSON object",
			"tool":  name,
		})
	}

	result, err := h.r.Invoke(c.UserContext(), name, json.RawMessage(body))
	if err != nil {
		status := fiber.StatusInternalServerError
		if tools.IsClientError(err) {
			status = fiber.StatusBadRequest
		}
		slog.Info("tool call failed", "tool", name, "client_id", GetClientID(c), "error", err)
		return c.Status(status).JSON(tools.Envelope(name, err))
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *ToolHandler) Health(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "ok",
	})
}
