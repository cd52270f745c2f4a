package handlers

import (
	"translation-backend/internal/services"
	"translation-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type AuthHandler struct {
	service services.AuthService
	logger  *logrus.Logger
}

func NewAuthHandler(service services.AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		logger:  logger,
	}
}

// Register godoc
// @Summary Register a user
// @Description Create an account with an email and a password
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body CredentialsRequest true "Email and password"
// @Success 201 {object} utils.MessageBody
// @Failure 400 {object} utils.ErrorBody "Missing email or password"
// @Failure 409 {object} utils.ErrorBody "Email already registered"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req CredentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if err := h.service.Register(c.UserContext(), req.Email, req.Password); err != nil {
		if statusFor(err) == fiber.StatusInternalServerError {
			h.logger.WithError(err).Error("Failed to register user")
		}
		return errorResponse(c, err)
	}

	return utils.MessageResponse(c, fiber.StatusCreated, "User registered successfully")
}

// Login godoc
// @Summary Log in
// @Description Exchange credentials for a bearer token valid for 24 hours
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body CredentialsRequest true "Email and password"
// @Success 200 {object} LoginResponse
// @Failure 401 {object} utils.ErrorBody "Invalid credentials"
// @Failure 429 {object} utils.ErrorBody "Too many attempts"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req CredentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	res, err := h.service.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		if statusFor(err) == fiber.StatusInternalServerError {
			h.logger.WithError(err).Error("Failed to log in user")
		}
		return errorResponse(c, err)
	}

	return utils.JSONResponse(c, fiber.StatusOK, LoginResponse{
		Message:     "Login successful",
		AccessToken: res.AccessToken,
		UserID:      res.UserID,
		Email:       res.Email,
	})
}
