package handlers

import (
	"html"
	"net/url"
	"strconv"

	"project-board/helper"
	"project-board/models"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
)

var strictPolicy = bluemonday.StrictPolicy()

// parsePageable reads page (0-based), size and repeatable sort=prop[,asc|desc].
func parsePageable(c *gin.Context) (models.Pageable, error) {
	page, err := queryInt(c, "page", 0)
	if err != nil {
		return models.Pageable{}, err
	}
	size, err := queryInt(c, "size", models.DefaultPageSize)
	if err != nil {
		return models.Pageable{}, err
	}

	var orders []models.Order
	for _, raw := range c.QueryArray("sort") {
		if order, ok := models.ParseOrder(raw); ok {
			orders = append(orders, order)
		}
	}
	return models.NewPageable(page, size, orders...), nil
}

func queryInt(c *gin.Context, key string, fallback int) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, models.ErrorValidation{Field: key, Message: "must be an integer"}
	}
	return v, nil
}

func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, models.ErrorValidation{Field: "id", Message: "invalid id"}
	}
	return uint(id), nil
}

// decodeJSON decodes the body into req, answering 400 itself on failure.
func decodeJSON(h *helper.HTTPHelper, c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		h.SendBadRequest(c, "Invalid request body", err.Error())
		return false
	}
	return true
}

// validate runs the struct's validate tags, answering the error itself on failure.
// Call it after plainText so limits apply to the stored value.
func validate(h *helper.HTTPHelper, c *gin.Context, req interface{}) bool {
	if err := h.Validate.Struct(req); err != nil {
		h.SendServiceError(c, err)
		return false
	}
	return true
}

// plainText drops markup and decodes entities, so "<b>Q&amp;A</b>" and
// "Q&A" both become "Q&A". Stored text and search keywords both go through it.
func plainText(s string) string {
	return html.UnescapeString(strictPolicy.Sanitize(s))
}

func plainTextPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := plainText(*s)
	return &v
}

func plainQuery(values url.Values) url.Values {
	out := make(url.Values, len(values))
	for key, vs := range values {
		for _, v := range vs {
			out.Add(key, plainText(v))
		}
	}
	return out
}

func pageData[T any](h *helper.HTTPHelper, c *gin.Context, page models.Page[T]) gin.H {
	return gin.H{
		"content":    page.Content,
		"pagination": h.GeneratePaging(c, page.Number, page.Size, page.TotalElements, page.TotalPages),
	}
}
