package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"securehub/internal/repository"
	"securehub/internal/service"
	"securehub/internal/storage"
)

// ArticleHandler handles article aggregate endpoints.
type ArticleHandler struct {
	articleService service.ArticleService
	media          storage.MediaStore
}

// NewArticleHandler creates a new article handler.
func NewArticleHandler(articleService service.ArticleService, media storage.MediaStore) *ArticleHandler {
	return &ArticleHandler{articleService: articleService, media: media}
}

// CreateArticleRequest represents an article creation form. Tags arrive as a
// JSON-encoded string array, matching the multipart form the frontend sends.
type CreateArticleRequest struct {
	Title    string `json:"title" form:"title" validate:"required,min=5,max=200"`
	Content  string `json:"content" form:"content" validate:"required,min=50"`
	Category string `json:"category" form:"category" validate:"required,oneof=cybersecurity privacy ethical-hacking network-security"`
	Tags     string `json:"tags" form:"tags"`
	ReadTime int    `json:"readTime" form:"readTime" validate:"required,gte=1"`
}

// UpdateArticleRequest represents a partial article update; empty fields keep
// their stored values.
type UpdateArticleRequest struct {
	Title    string `json:"title" form:"title" validate:"omitempty,min=5,max=200"`
	Content  string `json:"content" form:"content" validate:"omitempty,min=50"`
	Category string `json:"category" form:"category" validate:"omitempty,oneof=cybersecurity privacy ethical-hacking network-security"`
	Tags     string `json:"tags" form:"tags"`
	ReadTime int    `json:"readTime" form:"readTime" validate:"omitempty,gte=1"`
}

// AddCommentRequest represents a comment creation request.
type AddCommentRequest struct {
	Content string `json:"content" validate:"required,min=1,max=1000"`
}

// List godoc
// @Summary List articles with optional filters
// @Tags articles
// @Produce json
// @Param category query string false "Category filter"
// @Param tag query string false "Tag filter"
// @Param search query string false "Free-text search over title, content and tags"
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size (default 10)"
// @Success 200 {object} service.ArticlePage
// @Router /articles [get]
func (h *ArticleHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	result, err := h.articleService.List(c.Request().Context(), repository.ArticleFilter{
		Category: c.QueryParam("category"),
		Tag:      c.QueryParam("tag"),
		Search:   c.QueryParam("search"),
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

// GetByID godoc
// @Summary Get an article by id, counting the view
// @Tags articles
// @Produce json
// @Param id path string true "Article ID"
// @Success 200 {object} model.ArticleView
// @Failure 404 {object} errors.ErrorResponse
// @Router /articles/{id} [get]
func (h *ArticleHandler) GetByID(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	article, err := h.articleService.GetByID(c.Request().Context(), id)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, article)
}

// Create godoc
// @Summary Create an article
// @Tags articles
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param title formData string true "Title"
// @Param content formData string true "Content"
// @Param category formData string true "Category"
// @Param tags formData string false "JSON-encoded tag array"
// @Param readTime formData int true "Read time in minutes"
// @Param media formData file false "Single image or video"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /articles [post]
func (h *ArticleHandler) Create(c echo.Context) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}

	var req CreateArticleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return validationError(c, err)
	}

	tags, err := parseTags(req.Tags)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "tags must be a JSON array of strings")
	}

	imageURL, videoURL, err := h.saveMedia(c)
	if err != nil {
		return err
	}

	article, err := h.articleService.Create(c.Request().Context(), identity, service.ArticleInput{
		Title:    req.Title,
		Content:  req.Content,
		Category: req.Category,
		Tags:     tags,
		ReadTime: req.ReadTime,
		ImageURL: imageURL,
		VideoURL: videoURL,
	})
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "Article created successfully",
		"article": article,
	})
}

// Update godoc
// @Summary Update an article (author or admin)
// @Tags articles
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param id path string true "Article ID"
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /articles/{id} [put]
func (h *ArticleHandler) Update(c echo.Context) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req UpdateArticleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return validationError(c, err)
	}

	tags, err := parseTags(req.Tags)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "tags must be a JSON array of strings")
	}

	imageURL, videoURL, err := h.saveMedia(c)
	if err != nil {
		return err
	}

	article, err := h.articleService.Update(c.Request().Context(), id, identity, service.ArticleInput{
		Title:    req.Title,
		Content:  req.Content,
		Category: req.Category,
		Tags:     tags,
		ReadTime: req.ReadTime,
		ImageURL: imageURL,
		VideoURL: videoURL,
	})
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Article updated successfully",
		"article": article,
	})
}

// Delete godoc
// @Summary Delete an article and its media (author or admin)
// @Tags articles
// @Produce json
// @Security BearerAuth
// @Param id path string true "Article ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /articles/{id} [delete]
func (h *ArticleHandler) Delete(c echo.Context) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.articleService.Delete(c.Request().Context(), id, identity); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Article deleted successfully"})
}

// ToggleLike godoc
// @Summary Toggle the caller's like on an article
// @Tags articles
// @Produce json
// @Security BearerAuth
// @Param id path string true "Article ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} errors.ErrorResponse
// @Router /articles/{id}/like [post]
func (h *ArticleHandler) ToggleLike(c echo.Context) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	likes, err := h.articleService.ToggleLike(c.Request().Context(), id, identity)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"likes": likes})
}

// AddComment godoc
// @Summary Comment on an article
// @Tags articles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Article ID"
// @Param request body AddCommentRequest true "Comment content"
// @Success 201 {object} map[string]interface{}
// @Failure 404 {object} errors.ErrorResponse
// @Router /articles/{id}/comments [post]
func (h *ArticleHandler) AddComment(c echo.Context) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req AddCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return validationError(c, err)
	}

	comment, err := h.articleService.AddComment(c.Request().Context(), id, identity, req.Content)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]interface{}{"comment": comment})
}

// DeleteComment godoc
// @Summary Delete a comment (comment author or admin)
// @Tags articles
// @Produce json
// @Security BearerAuth
// @Param id path string true "Article ID"
// @Param commentId path string true "Comment ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /articles/{id}/comments/{commentId} [delete]
func (h *ArticleHandler) DeleteComment(c echo.Context) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	commentID, err := pathID(c, "commentId")
	if err != nil {
		return err
	}

	if err := h.articleService.DeleteComment(c.Request().Context(), id, commentID, identity); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Comment deleted successfully"})
}

// saveMedia stores the optional single "media" form file and returns the URL
// for the slot matching its MIME type.
func (h *ArticleHandler) saveMedia(c echo.Context) (imageURL, videoURL string, err error) {
	file, err := c.FormFile("media")
	if err != nil {
		// No multipart body or no media field; both mean no upload.
		return "", "", nil
	}

	saved, err := h.media.Save(file)
	if err != nil {
		if errors.Is(err, storage.ErrUnsupportedMedia) || errors.Is(err, storage.ErrFileTooLarge) {
			return "", "", echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return "", "", echo.NewHTTPError(http.StatusInternalServerError, "failed to store media")
	}

	if saved.Kind == storage.MediaVideo {
		return "", saved.URL, nil
	}
	return saved.URL, "", nil
}

func parseTags(raw string) ([]string, error) {
	if raw == "" {
		return nil, nil
	}
	var tags []string
	if err := json.Unmarshal([]byte(raw), &tags); err != nil {
		return nil, err
	}
	return tags, nil
}
