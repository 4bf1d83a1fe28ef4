package utils

import "github.com/gofiber/fiber/v2"

// ErrorResponse is the failure envelope every endpoint returns.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse acknowledges a mutation. ID is set on creations.
type MessageResponse struct {
	Message string      `json:"message"`
	ID      interface{} `json:"id,omitempty"`
}

// SendError sends an error JSON response with the given status code.
func SendError(c *fiber.Ctx, status int, message string) error {
	if message == "" {
		message = "error"
	}

	return c.Status(status).JSON(ErrorResponse{Error: message})
}

// SendMessage sends a mutation acknowledgement.
func SendMessage(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(MessageResponse{Message: message})
}

// SendCreated sends a 201 acknowledgement carrying the new record id.
func SendCreated(c *fiber.Ctx, message string, id interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(MessageResponse{Message: message, ID: id})
}
