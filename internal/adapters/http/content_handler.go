package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gospelarchive/core/internal/application/router"
	"github.com/gospelarchive/core/internal/application/services"
	"github.com/gospelarchive/core/internal/infrastructure/logger"
	"github.com/gospelarchive/core/internal/ports"
)

// ContentHandler serves the public read surface
type ContentHandler struct {
	contentService *services.ContentService
	verseRotator   *services.VerseRotator
	logger         *logger.Logger
}

// NewContentHandler creates a new content handler
func NewContentHandler(contentService *services.ContentService, verseRotator *services.VerseRotator, logger *logger.Logger) *ContentHandler {
	return &ContentHandler{
		contentService: contentService,
		verseRotator:   verseRotator,
		logger:         logger,
	}
}

// GetSiteContent returns the SiteContent document
func (h *ContentHandler) GetSiteContent(c echo.Context) error {
	return c.JSON(http.StatusOK, h.contentService.SiteContent(c.Request().Context()))
}

// ListPosts returns the full post collection, most recent first
func (h *ContentHandler) ListPosts(c echo.Context) error {
	return c.JSON(http.StatusOK, h.contentService.Posts(c.Request().Context()))
}

// GetBoard returns one category/language board page
func (h *ContentHandler) GetBoard(c echo.Context) error {
	category := c.Param("category")
	language := c.Param("language")
	return c.JSON(http.StatusOK, h.contentService.BoardPage(c.Request().Context(), category, language))
}

// CurrentVerse returns the verse the rotator has on display
func (h *ContentHandler) CurrentVerse(c echo.Context) error {
	verse, ok := h.verseRotator.Current()
	if !ok {
		return c.NoContent(http.StatusNoContent)
	}
	return c.JSON(http.StatusOK, verse)
}

// ResolveRoute resolves a URL fragment against the route grammar. Malformed
// fragments resolve to Home, never an error.
func (h *ContentHandler) ResolveRoute(c echo.Context) error {
	fragment := c.QueryParam("fragment")
	return c.JSON(http.StatusOK, ports.RouteResponse{
		Fragment: fragment,
		Route:    router.Parse(fragment),
	})
}
