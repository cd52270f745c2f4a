package utils

import "github.com/gofiber/fiber/v2"

// ErrorBody is the shape of every error response.
type ErrorBody struct {
	Error string `json:"error" example:"Invalid credentials"`
}

// MessageBody is returned by endpoints that only acknowledge an action.
type MessageBody struct {
	Message string `json:"message" example:"User registered successfully"`
}

// ErrorResponse sends an error response
func ErrorResponse(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(ErrorBody{Error: message})
}

// MessageResponse sends a message-only response
func MessageResponse(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(MessageBody{Message: message})
}

// JSONResponse sends data as-is with the given status
func JSONResponse(c *fiber.Ctx, code int, data interface{}) error {
	return c.Status(code).JSON(data)
}
