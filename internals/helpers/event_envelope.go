package helpers

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
)

// EventEnvelope: amplop standar semua event masuk. Data dibiarkan mentah
// supaya tiap family bisa decode sesuai skemanya sendiri.
type EventEnvelope struct {
	EventType string          `json:"eventType" validate:"required"`
	Data      json.RawMessage `json:"data" validate:"required"`
}

// ParseEnvelope membaca body request jadi amplop event.
func ParseEnvelope(c *fiber.Ctx) (*EventEnvelope, error) {
	var env EventEnvelope
	if err := c.BodyParser(&env); err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Payload event tidak valid")
	}
	if env.EventType == "" {
		return nil, fiber.NewError(fiber.StatusBadRequest, "eventType wajib diisi")
	}
	if len(env.Data) == 0 {
		return nil, fiber.NewError(fiber.StatusBadRequest, "data wajib diisi")
	}
	return &env, nil
}
