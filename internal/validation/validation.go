package validation

import (
	"errors"
	"net/http"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/snnyvrz/readinglist/internal/model"
	"github.com/snnyvrz/readinglist/internal/repository"
)

type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error  string       `json:"error"`
	Code   string       `json:"code"`
	Fields []FieldError `json:"fields,omitempty"`
}

var registerOnce sync.Once

// RegisterBookRules makes the book rules ("notblank", "bookstatus")
// available to gin's binding tags.
func RegisterBookRules() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		if err := model.RegisterRules(v); err != nil {
			panic(err)
		}
	})
}

func BindAndValidateJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{
				Error:  "validation failed",
				Code:   "VALIDATION_FAILED",
				Fields: FromValidator(verrs),
			})
			return false
		}

		c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
			Fields: []FieldError{
				{
					Field:   "",
					Rule:    "syntax",
					Message: err.Error(),
				},
			},
		})
		return false
	}

	return true
}

func FromValidator(verrs validator.ValidationErrors) []FieldError {
	fields := make([]FieldError, 0, len(verrs))

	for _, fe := range verrs {
		fields = append(fields, newFieldError(fe.Field(), fe.Tag(), fe.Param()))
	}

	return fields
}

func FromRepository(errs []repository.FieldError) []FieldError {
	fields := make([]FieldError, 0, len(errs))

	for _, fe := range errs {
		fields = append(fields, newFieldError(fe.Field, fe.Rule, fe.Param))
	}

	return fields
}

func newFieldError(field, rule, param string) FieldError {
	jsonField := toJSONFieldName(field)
	return FieldError{
		Field:   jsonField,
		Rule:    rule,
		Message: buildMessage(jsonField, rule, param),
	}
}

func toJSONFieldName(field string) string {
	if field == "" {
		return field
	}
	return strings.ToLower(field[:1]) + field[1:]
}

func buildMessage(field, rule, param string) string {
	switch rule {
	case "required", "notblank":
		return field + " is required"
	case "min":
		return field + " must be at least " + param
	case "max":
		return field + " must be at most " + param
	case "bookstatus":
		names := make([]string, 0, 3)
		for _, s := range model.Statuses() {
			names = append(names, `"`+s.String()+`"`)
		}
		return field + " must be one of " + strings.Join(names, ", ")
	}

	return field + " is invalid (" + rule + ")"
}
