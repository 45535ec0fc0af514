package helper

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"project-board/models"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"gopkg.in/go-playground/validator.v9"
	en_translations "gopkg.in/go-playground/validator.v9/translations/en"
)

const (
	textError             = `error`
	textOk                = `ok`
	codeSuccess           = 200
	codeBadRequestError   = 400
	codeUnauthorizedError = 401
	codeDatabaseError     = 402
	codeValidationError   = 403
	codeNotFound          = 404
	codeConflict          = 409
)

// httpStatus maps envelope codes onto HTTP statuses.
var httpStatus = map[int]int{
	codeSuccess:           http.StatusOK,
	codeBadRequestError:   http.StatusBadRequest,
	codeUnauthorizedError: http.StatusUnauthorized,
	codeDatabaseError:     http.StatusInternalServerError,
	codeValidationError:   http.StatusBadRequest,
	codeNotFound:          http.StatusNotFound,
	codeConflict:          http.StatusConflict,
}

// ResponseHelper is one JSON envelope waiting to be written to C.
type ResponseHelper struct {
	C        *gin.Context
	Status   string
	Message  string
	Data     interface{}
	Code     int // not the http code
	CodeType string
}

// HTTPHelper writes the board's JSON envelopes and validates request bodies.
type HTTPHelper struct {
	Validate   *validator.Validate
	Translator ut.Translator
}

// NewHTTPHelper wires a validator with English messages.
func NewHTTPHelper() (*HTTPHelper, error) {
	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")

	validate := validator.New()
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}
	return &HTTPHelper{Validate: validate, Translator: trans}, nil
}

// GetStatusCode maps service errors onto HTTP statuses; unknown errors are 500.
func (u *HTTPHelper) GetStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}
	switch {
	case errors.As(err, new(models.ErrorUnauthorized)):
		return http.StatusUnauthorized
	case errors.As(err, new(models.ErrorNotFound)):
		return http.StatusNotFound
	case errors.As(err, new(models.ErrorConflict)):
		return http.StatusConflict
	case errors.As(err, new(models.ErrorValidation)):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// SetResponse packs an envelope without writing it.
func (u *HTTPHelper) SetResponse(c *gin.Context, status string, message string, data interface{}, code int, codeType string) ResponseHelper {
	return ResponseHelper{c, status, message, data, code, codeType}
}

// SendError writes an "error" envelope whose HTTP status follows code.
func (u *HTTPHelper) SendError(c *gin.Context, message string, data interface{}, code int, codeType string) error {
	res := u.SetResponse(c, textError, message, data, code, codeType)

	return u.SendResponse(res)
}

// SendServiceError answers with the status GetStatusCode picks for err.
func (u *HTTPHelper) SendServiceError(c *gin.Context, err error) error {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		return u.SendValidationError(c, validationErrors)
	}

	switch u.GetStatusCode(err) {
	case http.StatusUnauthorized:
		return u.SendUnauthorizedError(c, err.Error(), u.EmptyJsonMap())
	case http.StatusNotFound:
		return u.SendNotFoundError(c, err.Error(), u.EmptyJsonMap())
	case http.StatusConflict:
		return u.SendError(c, err.Error(), u.EmptyJsonMap(), codeConflict, `conflict`)
	case http.StatusBadRequest:
		return u.SendBadRequest(c, err.Error(), u.EmptyJsonMap())
	default:
		return u.SendDatabaseError(c, "internal server error", u.EmptyJsonMap())
	}
}

// SendBadRequest answers 400 with code_type badRequest, used for undecodable bodies and bad query values.
func (u *HTTPHelper) SendBadRequest(c *gin.Context, message string, data interface{}) error {
	res := u.SetResponse(c, textError, message, data, codeBadRequestError, `badRequest`)

	return u.SendResponse(res)
}

// SendValidationError answers 400 with the translated messages keyed by snake_case field.
func (u *HTTPHelper) SendValidationError(c *gin.Context, validationErrors validator.ValidationErrors) error {
	errorResponse := map[string][]string{}
	errorTranslation := validationErrors.Translate(u.Translator)
	for _, err := range validationErrors {
		errKey := Underscore(err.StructField())
		errorResponse[errKey] = append(errorResponse[errKey], errorTranslation[err.Namespace()])
	}

	c.JSON(http.StatusBadRequest, map[string]interface{}{
		"code":         codeValidationError,
		"code_type":    "validationError",
		"code_message": errorResponse,
		"data":         u.EmptyJsonMap(),
	})
	return nil
}

// SendDatabaseError answers 500. Callers pass a generic message, never the driver error.
func (u *HTTPHelper) SendDatabaseError(c *gin.Context, message string, data interface{}) error {
	return u.SendError(c, message, data, codeDatabaseError, `databaseError`)
}

// SendUnauthorizedError answers 401 for a missing or rejected bearer token.
func (u *HTTPHelper) SendUnauthorizedError(c *gin.Context, message string, data interface{}) error {
	return u.SendError(c, message, data, codeUnauthorizedError, `unAuthorized`)
}

// SendNotFoundError answers 404 when the requested record does not exist.
func (u *HTTPHelper) SendNotFoundError(c *gin.Context, message string, data interface{}) error {
	return u.SendError(c, message, data, codeNotFound, `notFound`)
}

// SendSuccess answers 200 with data in the envelope.
func (u *HTTPHelper) SendSuccess(c *gin.Context, message string, data interface{}) error {
	res := u.SetResponse(c, textOk, message, data, codeSuccess, `success`)

	return u.SendResponse(res)
}

// SendResponse writes res, defaulting an empty message to "success".
func (u *HTTPHelper) SendResponse(res ResponseHelper) error {
	if len(res.Message) == 0 {
		res.Message = `success`
	}

	status, ok := httpStatus[res.Code]
	if !ok {
		status = http.StatusBadRequest
	}

	res.C.JSON(status, map[string]interface{}{
		"code":         res.Code,
		"code_type":    res.CodeType,
		"code_message": res.Message,
		"data":         res.Data,
	})
	return nil
}

func (u *HTTPHelper) EmptyJsonMap() map[string]interface{} {
	return make(map[string]interface{})
}

// GetPagingUrl keeps the current query (filters, sort) and replaces page and size.
func (u *HTTPHelper) GetPagingUrl(c *gin.Context, page, size int) string {
	r := c.Request
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	query := url.Values{}
	for k, v := range r.URL.Query() {
		query[k] = v
	}
	query.Set("page", strconv.Itoa(page))
	query.Set("size", strconv.Itoa(size))
	return scheme + "://" + r.Host + r.URL.Path + "?" + query.Encode()
}

// GeneratePaging builds the pagination block for a 0-based page.
func (u *HTTPHelper) GeneratePaging(c *gin.Context, page, size int, totalRecord int64, totalPages int) map[string]interface{} {
	prevURL, nextURL, firstURL, lastURL := "", "", "", ""

	if page > 0 && page < totalPages {
		prevURL = u.GetPagingUrl(c, page-1, size)
		firstURL = u.GetPagingUrl(c, 0, size)
	}
	if page < totalPages-1 {
		nextURL = u.GetPagingUrl(c, page+1, size)
		lastURL = u.GetPagingUrl(c, totalPages-1, size)
	}

	links := map[string]interface{}{
		"previous": prevURL,
		"next":     nextURL,
		"first":    firstURL,
		"last":     lastURL,
	}

	return map[string]interface{}{
		"total_records": totalRecord,
		"per_page":      size,
		"current_page":  page,
		"total_pages":   totalPages,
		"links":         links,
	}
}
