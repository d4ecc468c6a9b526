package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"securehub/internal/service"
)

// BookmarkHandler handles per-user bookmark endpoints.
type BookmarkHandler struct {
	bookmarkService service.BookmarkService
}

// NewBookmarkHandler creates a new bookmark handler.
func NewBookmarkHandler(bookmarkService service.BookmarkService) *BookmarkHandler {
	return &BookmarkHandler{bookmarkService: bookmarkService}
}

// List godoc
// @Summary List the caller's bookmarked articles, newest bookmark first
// @Tags bookmarks
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Article
// @Failure 401 {object} errors.ErrorResponse
// @Router /bookmarks [get]
func (h *BookmarkHandler) List(c echo.Context) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}
	articles, err := h.bookmarkService.List(c.Request().Context(), identity.ID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, articles)
}

// IsBookmarked godoc
// @Summary Check whether the caller bookmarked an article
// @Tags bookmarks
// @Produce json
// @Security BearerAuth
// @Param articleId path string true "Article ID"
// @Success 200 {boolean} bool
// @Router /bookmarks/{articleId} [get]
func (h *BookmarkHandler) IsBookmarked(c echo.Context) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}
	articleID, err := pathID(c, "articleId")
	if err != nil {
		return err
	}

	bookmarked, err := h.bookmarkService.IsBookmarked(c.Request().Context(), identity.ID, articleID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, bookmarked)
}

// Add godoc
// @Summary Bookmark an article
// @Tags bookmarks
// @Produce json
// @Security BearerAuth
// @Param articleId path string true "Article ID"
// @Success 201 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /bookmarks/{articleId} [post]
func (h *BookmarkHandler) Add(c echo.Context) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}
	articleID, err := pathID(c, "articleId")
	if err != nil {
		return err
	}

	if err := h.bookmarkService.Add(c.Request().Context(), identity.ID, articleID); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]string{"message": "Article bookmarked successfully"})
}

// Remove godoc
// @Summary Remove a bookmark; removing an absent one is a no-op
// @Tags bookmarks
// @Produce json
// @Security BearerAuth
// @Param articleId path string true "Article ID"
// @Success 200 {object} map[string]string
// @Router /bookmarks/{articleId} [delete]
func (h *BookmarkHandler) Remove(c echo.Context) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}
	articleID, err := pathID(c, "articleId")
	if err != nil {
		return err
	}

	if err := h.bookmarkService.Remove(c.Request().Context(), identity.ID, articleID); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Bookmark removed"})
}
