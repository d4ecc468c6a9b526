package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newTestContext(t *testing.T) echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec)
}

func TestValidationError_ReportsEveryField(t *testing.T) {
	v := validator.New()

	req := CreateArticleRequest{
		Title:    "abc", // below min=5
		Content:  "too short",
		Category: "cooking",
		ReadTime: 0,
	}
	err := v.Struct(req)
	assert.Error(t, err)

	c := newTestContext(t)
	assert.NoError(t, validationError(c, err))

	rec := c.Response().Writer.(*httptest.ResponseRecorder)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "Validation failed")
	// Every failing field is reported in one response.
	assert.Contains(t, body, `"field":"title"`)
	assert.Contains(t, body, `"field":"content"`)
	assert.Contains(t, body, `"field":"category"`)
	assert.Contains(t, body, `"field":"readTime"`)
}

func TestValidationError_ArticleTitleBounds(t *testing.T) {
	v := validator.New()

	valid := CreateArticleRequest{
		Title:    "Password Hygiene",
		Content:  strings.Repeat("security advice ", 10),
		Category: "cybersecurity",
		ReadTime: 5,
	}
	assert.NoError(t, v.Struct(valid))

	tooLong := valid
	tooLong.Title = strings.Repeat("t", 201)
	assert.Error(t, v.Struct(tooLong))

	tooShort := valid
	tooShort.Title = "abcd"
	assert.Error(t, v.Struct(tooShort))
}

func TestFieldMessage(t *testing.T) {
	v := validator.New()
	err := v.Struct(RegisterRequest{Username: "ab", Email: "not-an-email", Password: ""})
	assert.Error(t, err)

	verrs := err.(validator.ValidationErrors)
	messages := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		name := lowerFirst(fe.Field())
		messages[name] = fieldMessage(name, fe)
	}

	assert.Equal(t, "username must be at least 3 characters long", messages["username"])
	assert.Equal(t, "please enter a valid email address", messages["email"])
	assert.Equal(t, "password is required", messages["password"])
}
