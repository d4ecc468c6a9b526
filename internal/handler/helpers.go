package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"securehub/internal/auth"
	apperrors "securehub/internal/errors"
	"securehub/internal/middleware"
)

// serviceError maps a domain error to its HTTP response body.
func serviceError(c echo.Context, err error) error {
	httpErr := apperrors.MapErrorToHTTP(err)
	return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
}

// validationError reports every failed field at once, each tagged with the
// field name and the rule that failed.
func validationError(c echo.Context, err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	fieldErrs := make([]apperrors.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		name := lowerFirst(fe.Field())
		fieldErrs = append(fieldErrs, apperrors.FieldError{
			Field:   name,
			Message: fieldMessage(name, fe),
			Type:    fe.Tag(),
		})
	}
	return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{
		Message: "Validation failed",
		Errors:  fieldErrs,
	})
}

func fieldMessage(name string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", name)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", name, fe.Param())
	case "max":
		return fmt.Sprintf("%s cannot exceed %s characters", name, fe.Param())
	case "email":
		return "please enter a valid email address"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", name, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", name, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", name)
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

// requireIdentity returns the authenticated caller or a 401 error. Secured
// routes always run behind LoadIdentity, so a miss means misconfiguration.
func requireIdentity(c echo.Context) (auth.Identity, error) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		return auth.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	return identity, nil
}

// pathID parses a UUID path parameter.
func pathID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return id, nil
}
