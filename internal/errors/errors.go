package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrUserNotFound is returned when no user matches the given identity or email.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidCredentials is returned when a password does not verify.
	ErrInvalidCredentials = errors.New("invalid password")
	// ErrEmailTaken is returned when registering with an already used email.
	ErrEmailTaken = errors.New("email is already taken")
	// ErrUsernameTaken is returned when registering with an already used username.
	ErrUsernameTaken = errors.New("username is already taken")
	// ErrInvalidToken is returned for missing, malformed or expired tokens.
	ErrInvalidToken = errors.New("token is not valid")
	// ErrForbidden is returned when the caller is authenticated but not authorized.
	ErrForbidden = errors.New("not authorized")
	// ErrArticleNotFound is returned when an article does not exist.
	ErrArticleNotFound = errors.New("article not found")
	// ErrCommentNotFound is returned when a comment does not exist on the article.
	ErrCommentNotFound = errors.New("comment not found")
	// ErrAlreadyBookmarked is returned when a (user, article) bookmark pair exists.
	ErrAlreadyBookmarked = errors.New("article already bookmarked")
	// ErrTipNotFound is returned when a security tip does not exist.
	ErrTipNotFound = errors.New("security tip not found")
)

// FieldError describes a single validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Type    string `json:"type,omitempty"`
}

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Errors     []FieldError
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message string, fieldErrors ...FieldError) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Errors:     fieldErrors,
	}
}

// ToErrorResponse converts an HTTPError to its response body.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Message: e.Message,
		Errors:  e.Errors,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Unrecognized errors become
// a generic 500 so internal details never leak to clients.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, ErrArticleNotFound), errors.Is(err, ErrCommentNotFound), errors.Is(err, ErrTipNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrInvalidToken):
		return NewHTTPError(http.StatusUnauthorized, err.Error())
	case errors.Is(err, ErrForbidden):
		return NewHTTPError(http.StatusForbidden, err.Error())
	case errors.Is(err, ErrEmailTaken):
		return NewHTTPError(http.StatusConflict, "user already exists",
			FieldError{Field: "email", Message: err.Error()})
	case errors.Is(err, ErrUsernameTaken):
		return NewHTTPError(http.StatusConflict, "user already exists",
			FieldError{Field: "username", Message: err.Error()})
	case errors.Is(err, ErrAlreadyBookmarked):
		return NewHTTPError(http.StatusConflict, err.Error())
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}
