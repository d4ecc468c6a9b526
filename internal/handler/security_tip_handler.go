package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"securehub/internal/service"
)

// SecurityTipHandler handles security tip endpoints.
type SecurityTipHandler struct {
	tipService service.SecurityTipService
}

// NewSecurityTipHandler creates a new security tip handler.
func NewSecurityTipHandler(tipService service.SecurityTipService) *SecurityTipHandler {
	return &SecurityTipHandler{tipService: tipService}
}

// CreateTipRequest represents a security tip creation request.
type CreateTipRequest struct {
	Content  string `json:"content" validate:"required"`
	Category string `json:"category" validate:"required"`
}

// UpdateTipRequest represents a partial security tip update.
type UpdateTipRequest struct {
	Content  string `json:"content"`
	Category string `json:"category"`
}

// List godoc
// @Summary List security tips, newest first
// @Tags security-tips
// @Produce json
// @Success 200 {array} model.SecurityTip
// @Router /security-tips [get]
func (h *SecurityTipHandler) List(c echo.Context) error {
	tips, err := h.tipService.List(c.Request().Context())
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, tips)
}

// Random godoc
// @Summary Get a random security tip
// @Tags security-tips
// @Produce json
// @Success 200 {object} model.SecurityTip
// @Failure 404 {object} errors.ErrorResponse
// @Router /security-tips/random [get]
func (h *SecurityTipHandler) Random(c echo.Context) error {
	tip, err := h.tipService.Random(c.Request().Context())
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, tip)
}

// GetByID godoc
// @Summary Get a security tip by id
// @Tags security-tips
// @Produce json
// @Param id path string true "Tip ID"
// @Success 200 {object} model.SecurityTip
// @Failure 404 {object} errors.ErrorResponse
// @Router /security-tips/{id} [get]
func (h *SecurityTipHandler) GetByID(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	tip, err := h.tipService.GetByID(c.Request().Context(), id)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, tip)
}

// Create godoc
// @Summary Create a security tip (admin)
// @Tags security-tips
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateTipRequest true "Tip data"
// @Success 201 {object} model.SecurityTip
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /security-tips [post]
func (h *SecurityTipHandler) Create(c echo.Context) error {
	var req CreateTipRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return validationError(c, err)
	}

	tip, err := h.tipService.Create(c.Request().Context(), req.Content, req.Category)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusCreated, tip)
}

// Update godoc
// @Summary Update a security tip (admin)
// @Tags security-tips
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Tip ID"
// @Param request body UpdateTipRequest true "Tip fields"
// @Success 200 {object} model.SecurityTip
// @Failure 404 {object} errors.ErrorResponse
// @Router /security-tips/{id} [put]
func (h *SecurityTipHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req UpdateTipRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	tip, err := h.tipService.Update(c.Request().Context(), id, req.Content, req.Category)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, tip)
}

// Delete godoc
// @Summary Delete a security tip (admin)
// @Tags security-tips
// @Produce json
// @Security BearerAuth
// @Param id path string true "Tip ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /security-tips/{id} [delete]
func (h *SecurityTipHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.tipService.Delete(c.Request().Context(), id); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Security tip deleted successfully"})
}
