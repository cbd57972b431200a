package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/gospelarchive/core/internal/application/services"
	"github.com/gospelarchive/core/internal/domain/entities"
	"github.com/gospelarchive/core/internal/infrastructure/logger"
	"github.com/gospelarchive/core/internal/ports"
)

// AdminHandler serves the authenticated mutation surface
type AdminHandler struct {
	contentService *services.ContentService
	mediaService   *services.MediaService
	logger         *logger.Logger
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(contentService *services.ContentService, mediaService *services.MediaService, logger *logger.Logger) *AdminHandler {
	return &AdminHandler{
		contentService: contentService,
		mediaService:   mediaService,
		logger:         logger,
	}
}

// PublishPost handles publishing a draft
func (h *AdminHandler) PublishPost(c echo.Context) error {
	var req ports.PublishPostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	response, err := h.contentService.PublishPost(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, entities.ErrDraftIncomplete) {
			return echo.NewHTTPError(http.StatusBadRequest, "Title and Content are required.")
		}
		h.logger.Error("Publish post failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to publish post")
	}

	return c.JSON(http.StatusCreated, response)
}

// DeletePost handles the confirmation-gated delete. Without confirm=true the
// request is a no-op answered with confirmationRequired, mirroring a declined
// confirmation dialog.
func (h *AdminHandler) DeletePost(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post id")
	}

	confirmed := c.QueryParam("confirm") == "true"
	response := h.contentService.DeletePost(c.Request().Context(), id, confirmed)
	return c.JSON(http.StatusOK, response)
}

// ReplaceContent handles the wholesale SiteContent replacement
func (h *AdminHandler) ReplaceContent(c echo.Context) error {
	var content entities.SiteContent
	if err := c.Bind(&content); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := h.contentService.ReplaceSiteContent(c.Request().Context(), &content); err != nil {
		if errors.Is(err, entities.ErrContentInvalid) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		h.logger.Error("Replace site content failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to save site content")
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "Site content saved"})
}

// UploadMedia converts an uploaded file into a data: URL
func (h *AdminHandler) UploadMedia(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Missing file")
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.logger.Error("Failed to open upload", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "Unreadable file")
	}
	defer file.Close()

	response, err := h.mediaService.EncodeUpload(fileHeader.Filename, fileHeader.Header.Get("Content-Type"), file)
	if err != nil {
		if errors.Is(err, entities.ErrUploadTooLarge) {
			return echo.NewHTTPError(http.StatusRequestEntityTooLarge, "File is too large")
		}
		h.logger.Error("Upload encoding failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to process upload")
	}

	return c.JSON(http.StatusOK, response)
}
