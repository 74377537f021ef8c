package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/psds-microservice/office-manager/internal/errs"
)

type errorBody struct {
	Kind    errs.Kind `json:"kind"`
	Message string    `json:"message"`
}

// writeError maps err to its status and writes {"error": {"kind", "message"}}.
func writeError(c *gin.Context, log *slog.Logger, err error) {
	kind := errs.KindOf(err)
	status := errs.HTTPStatus(kind)
	if status >= 500 {
		log.Error("request failed", "path", c.FullPath(), "kind", kind, "error", err)
	}
	c.AbortWithStatusJSON(status, gin.H{"error": errorBody{Kind: kind, Message: errs.PublicMessage(err)}})
}

// bindJSON decodes the body into req; any failure is a validation error.
func bindJSON(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindJSON(req); err != nil {
		return errs.Validation(validationMessage(err))
	}
	return nil
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		switch fe.Tag() {
		case "required":
			return fe.Field() + " is required"
		case "notblank":
			return fe.Field() + " must not be blank"
		case "gte":
			return fe.Field() + " must be >= " + fe.Param()
		default:
			return fmt.Sprintf("%s is invalid (%s)", fe.Field(), fe.Tag())
		}
	}
	if errors.Is(err, io.EOF) {
		return "request body is required"
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return typeErr.Field + " has the wrong type"
	}
	return "invalid body"
}

var registerOnce sync.Once

// RegisterValidators installs the notblank tag and reports json field names
// in validation errors. Safe to call more than once.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return f.Name
			}
			return name
		})
		_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
	})
}
