package helper

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"project-board/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/go-playground/validator.v9"
)

func newTestContext(target string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	return c, w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestGetStatusCode(t *testing.T) {
	h := &HTTPHelper{}

	cases := []struct {
		err    error
		status int
	}{
		{nil, http.StatusOK},
		{models.ErrorNotFound{Resource: "article", ID: 1}, http.StatusNotFound},
		{fmt.Errorf("wrapped: %w", models.ErrorNotFound{Resource: "article", ID: 1}), http.StatusNotFound},
		{models.ErrorUnauthorized{Message: "no"}, http.StatusUnauthorized},
		{models.ErrorConflict{Message: "dup"}, http.StatusConflict},
		{models.ErrorValidation{Field: "title", Message: "blank"}, http.StatusBadRequest},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.status, h.GetStatusCode(tc.err), "%v", tc.err)
	}
}

func TestSendServiceError(t *testing.T) {
	h := &HTTPHelper{}
	c, w := newTestContext("/api/articles/1")

	require.NoError(t, h.SendServiceError(c, models.ErrorNotFound{Resource: "article", ID: 1}))

	assert.Equal(t, http.StatusNotFound, w.Code)
	body := decode(t, w)
	assert.Equal(t, "notFound", body["code_type"])
	assert.Equal(t, "article not found - id: 1", body["code_message"])
}

func TestSendServiceError_HidesInternalErrors(t *testing.T) {
	h := &HTTPHelper{}
	c, w := newTestContext("/api/articles")

	require.NoError(t, h.SendServiceError(c, errors.New("pq: password authentication failed")))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "password")
}

func TestSendValidationError(t *testing.T) {
	h, err := NewHTTPHelper()
	require.NoError(t, err)

	req := models.ArticleRequest{Content: "c"}
	verr := h.Validate.Struct(req)
	require.Error(t, verr)

	c, w := newTestContext("/api/articles")
	require.NoError(t, h.SendValidationError(c, verr.(validator.ValidationErrors)))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decode(t, w)
	messages := body["code_message"].(map[string]interface{})
	assert.Contains(t, messages, "title")
}

func TestGeneratePaging(t *testing.T) {
	h := &HTTPHelper{}
	c, _ := newTestContext("/api/articles?title=go&page=1&size=10")

	paging := h.GeneratePaging(c, 1, 10, 35, 4)

	links := paging["links"].(map[string]interface{})
	assert.Equal(t, "http://example.com/api/articles?page=0&size=10&title=go", links["previous"])
	assert.Equal(t, "http://example.com/api/articles?page=2&size=10&title=go", links["next"])
	assert.Equal(t, "http://example.com/api/articles?page=3&size=10&title=go", links["last"])
	assert.Equal(t, 4, paging["total_pages"])
}

func TestGeneratePaging_LastPage(t *testing.T) {
	h := &HTTPHelper{}
	c, _ := newTestContext("/api/articles")

	links := h.GeneratePaging(c, 0, 10, 3, 1)["links"].(map[string]interface{})

	assert.Empty(t, links["previous"])
	assert.Empty(t, links["next"])
}

func TestSendHelpersEnvelope(t *testing.T) {
	h := &HTTPHelper{}
	cases := []struct {
		name     string
		send     func(c *gin.Context) error
		status   int
		code     float64
		codeType string
	}{
		{"success", func(c *gin.Context) error { return h.SendSuccess(c, "", gin.H{"id": 1}) }, http.StatusOK, 200, "success"},
		{"bad request", func(c *gin.Context) error { return h.SendBadRequest(c, "bad", h.EmptyJsonMap()) }, http.StatusBadRequest, 400, "badRequest"},
		{"unauthorized", func(c *gin.Context) error { return h.SendUnauthorizedError(c, "no", h.EmptyJsonMap()) }, http.StatusUnauthorized, 401, "unAuthorized"},
		{"database", func(c *gin.Context) error { return h.SendDatabaseError(c, "oops", h.EmptyJsonMap()) }, http.StatusInternalServerError, 402, "databaseError"},
		{"not found", func(c *gin.Context) error { return h.SendNotFoundError(c, "gone", h.EmptyJsonMap()) }, http.StatusNotFound, 404, "notFound"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, w := newTestContext("/api/articles")
			require.NoError(t, tc.send(c))

			assert.Equal(t, tc.status, w.Code)
			body := decode(t, w)
			assert.Equal(t, tc.code, body["code"])
			assert.Equal(t, tc.codeType, body["code_type"])
			assert.NotEmpty(t, body["code_message"])
		})
	}
}

func TestGeneratePaging_ClampedPageHasNoNext(t *testing.T) {
	h := &HTTPHelper{}
	c, _ := newTestContext("/api/articles")

	paging := h.GeneratePaging(c, math.MaxInt, 1, 3, 3)

	links := paging["links"].(map[string]interface{})
	assert.Empty(t, links["next"])
	assert.Empty(t, links["previous"])
}

func TestUnderscore(t *testing.T) {
	assert.Equal(t, "user_id", Underscore("UserID"))
	assert.Equal(t, "title", Underscore("Title"))
	assert.Equal(t, "article_id", Underscore("ArticleID"))
	assert.Equal(t, "http_status", Underscore("HTTPStatus"))
}
