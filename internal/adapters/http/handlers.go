package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gospelarchive/core/internal/application/services"
	"github.com/gospelarchive/core/internal/domain/entities"
	"github.com/gospelarchive/core/internal/infrastructure/logger"
	"github.com/gospelarchive/core/internal/ports"
)

// MessageResponse is a generic message payload
type MessageResponse struct {
	Message string `json:"message"`
}

// AuthHandler handles the admin login gate
type AuthHandler struct {
	authService *services.AuthService
	logger      *logger.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *services.AuthService, logger *logger.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// Login handles admin login
func (h *AuthHandler) Login(c echo.Context) error {
	var req ports.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	response, err := h.authService.Login(req)
	if err != nil {
		if errors.Is(err, entities.ErrInvalidCredentials) {
			h.logger.LogSecurityEvent("failed_login", c.RealIP(), map[string]interface{}{"id": req.ID})
			// Same generic message for any mismatch
			return echo.NewHTTPError(http.StatusUnauthorized, "Incorrect ID or password. Please try again.")
		}
		h.logger.Error("Login failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Login failed")
	}

	return c.JSON(http.StatusOK, response)
}

// Logout handles admin logout
func (h *AuthHandler) Logout(c echo.Context) error {
	return c.JSON(http.StatusOK, h.authService.Logout())
}

// ContactHandler relays contact form submissions
type ContactHandler struct {
	contactService *services.ContactService
	logger         *logger.Logger
}

// NewContactHandler creates a new contact handler
func NewContactHandler(contactService *services.ContactService, logger *logger.Logger) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
		logger:         logger,
	}
}

// Submit forwards a contact form submission to the relay
func (h *ContactHandler) Submit(c echo.Context) error {
	var req ports.ContactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.contactService.Send(c.Request().Context(), req); err != nil {
		h.logger.Error("Contact relay failed", "error", err)
		return echo.NewHTTPError(http.StatusBadGateway, "Failed to send message")
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "Message sent"})
}
