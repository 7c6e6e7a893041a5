package helper

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"news-api/models"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"gopkg.in/go-playground/validator.v9"
	en_translations "gopkg.in/go-playground/validator.v9/translations/en"
)

var (
	digitsPattern   = regexp.MustCompile(`^\d+$`)
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
)

// HandlerFunc is a gin handler that reports failure by returning an error
// instead of writing a response.
type HandlerFunc func(c *gin.Context) error

// HTTPHelper ...
type HTTPHelper struct {
	Validate   *validator.Validate
	Translator ut.Translator
}

// NewHTTPHelper builds the validator with the API's custom tags and English
// messages for every rule.
func NewHTTPHelper() *HTTPHelper {
	english := en.New()
	translator, _ := ut.New(english, english).GetTranslator("en")

	validate := validator.New()
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		for _, key := range []string{"json", "form", "uri"} {
			name := strings.SplitN(field.Tag.Get(key), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return field.Name
	})
	_ = en_translations.RegisterDefaultTranslations(validate, translator)

	registerPattern(validate, translator, "digits", digitsPattern, "{0} must contain only digits")
	registerPattern(validate, translator, "username", usernamePattern, "{0} must contain only letters, digits, '_' or '-'")

	return &HTTPHelper{
		Validate:   validate,
		Translator: translator,
	}
}

func registerPattern(v *validator.Validate, trans ut.Translator, tag string, pattern *regexp.Regexp, message string) {
	_ = v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		return pattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterTranslation(tag, trans, func(ut ut.Translator) error {
		return ut.Add(tag, message, true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T(tag, fe.Field())
		return t
	})
}

// Handle adapts a HandlerFunc to gin. A returned error is recorded on the
// context for the error middleware to render; handlers never render errors
// themselves.
func (u *HTTPHelper) Handle(fn HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := fn(c); err != nil {
			_ = c.Error(err)
			c.Abort()
		}
	}
}

// ValidateStruct runs the struct's validate tags. Failures come back as a
// bad request whose cause lists every field, translated.
func (u *HTTPHelper) ValidateStruct(s interface{}) error {
	err := u.Validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return models.NewBadRequest(err)
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		messages = append(messages, fieldErr.Translate(u.Translator))
	}
	return models.NewBadRequest(errors.New(strings.Join(messages, "; ")))
}

// BindURI binds and validates path parameters.
func (u *HTTPHelper) BindURI(c *gin.Context, dst interface{}) error {
	if err := c.ShouldBindUri(dst); err != nil {
		return models.NewBadRequest(err)
	}
	return u.ValidateStruct(dst)
}

// BindQuery binds and validates the query string.
func (u *HTTPHelper) BindQuery(c *gin.Context, dst interface{}) error {
	if err := c.ShouldBindQuery(dst); err != nil {
		return models.NewBadRequest(err)
	}
	return u.ValidateStruct(dst)
}

// BindJSON decodes and validates the request body. Wrong JSON types fail
// here, before validation.
func (u *HTTPHelper) BindJSON(c *gin.Context, dst interface{}) error {
	if err := c.ShouldBindJSON(dst); err != nil {
		return models.NewBadRequest(err)
	}
	return u.ValidateStruct(dst)
}

// ParseID converts a validated digits-only id. Ids past the INTEGER range
// of the id columns cannot exist, so they are reported as not found.
func ParseID(s string) (int, error) {
	if !digitsPattern.MatchString(s) {
		return 0, models.NewBadRequest(fmt.Errorf("invalid id %q", s))
	}
	id, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, models.NewNotFound(err)
	}
	return int(id), nil
}

// ParsePagination applies the defaults: DefaultPageSize rows, page 0.
func ParsePagination(limit, page string) (models.Pagination, error) {
	p := models.Pagination{Limit: models.DefaultPageSize}

	if limit != "" {
		n, err := strconv.Atoi(limit)
		if err != nil || n < 1 || n > models.MaxPageSize {
			return p, models.NewBadRequest(fmt.Errorf("limit must be between 1 and %d", models.MaxPageSize))
		}
		p.Limit = n
	}

	if page != "" {
		n, err := strconv.ParseInt(page, 10, 32)
		if err != nil || n < 0 {
			return p, models.NewBadRequest(fmt.Errorf("invalid page %q", page))
		}
		p.Page = int(n)
	}

	return p, nil
}

// StatusCode ...
// Map an error to the HTTP status it is rendered with.
func StatusCode(err error) int {
	var (
		badRequest *models.ErrorBadRequest
		notFound   *models.ErrorNotFound
		conflict   *models.ErrorConflict
	)
	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &badRequest):
		return http.StatusBadRequest
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &conflict):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// ErrorMessage ...
// The client-facing message of an error. Unknown errors never leak detail.
func ErrorMessage(err error) string {
	var (
		badRequest *models.ErrorBadRequest
		notFound   *models.ErrorNotFound
		conflict   *models.ErrorConflict
	)
	switch {
	case errors.As(err, &badRequest):
		return badRequest.Message
	case errors.As(err, &notFound):
		return notFound.Message
	case errors.As(err, &conflict):
		return conflict.Message
	default:
		return models.MessageInternalServer
	}
}

// SendError ...
// Send error response to consumers.
func (u *HTTPHelper) SendError(c *gin.Context, err error) {
	c.JSON(StatusCode(err), gin.H{"message": ErrorMessage(err)})
}

// SendSuccess ...
// Send success response to consumers.
func (u *HTTPHelper) SendSuccess(c *gin.Context, code int, data interface{}) error {
	c.JSON(code, data)
	return nil
}

// SendNoContent ...
func (u *HTTPHelper) SendNoContent(c *gin.Context) error {
	c.Status(http.StatusNoContent)
	return nil
}

// get pagination URL
func (u *HTTPHelper) GetPagingUrl(c *gin.Context, page, limit int) string {
	query := c.Request.URL.Query()
	query.Set("p", strconv.Itoa(page))
	query.Set("limit", strconv.Itoa(limit))

	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + c.Request.Host + c.Request.URL.Path + "?" + query.Encode()
}

// SetPagingLinks writes an RFC 5988 Link header for a zero-based page of
// totalRecord rows.
func (u *HTTPHelper) SetPagingLinks(c *gin.Context, p models.Pagination, totalRecord int64) {
	if p.Limit <= 0 {
		return
	}
	totalPages := int(math.Ceil(float64(totalRecord) / float64(p.Limit)))
	lastPage := totalPages - 1

	var links []string
	if p.Page > 0 && lastPage >= 0 {
		links = append(links, fmt.Sprintf(`<%s>; rel="first"`, u.GetPagingUrl(c, 0, p.Limit)))
		prev := p.Page - 1
		if prev > lastPage {
			prev = lastPage
		}
		links = append(links, fmt.Sprintf(`<%s>; rel="prev"`, u.GetPagingUrl(c, prev, p.Limit)))
	}
	if p.Page < lastPage {
		links = append(links, fmt.Sprintf(`<%s>; rel="next"`, u.GetPagingUrl(c, p.Page+1, p.Limit)))
		links = append(links, fmt.Sprintf(`<%s>; rel="last"`, u.GetPagingUrl(c, lastPage, p.Limit)))
	}

	if len(links) > 0 {
		c.Header("Link", strings.Join(links, ", "))
	}
}
