package utils

import (
	stderrors "errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"helpdesk/internal/shared/constants"
	"helpdesk/internal/shared/errors"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(jsonFieldName)

	// Share the same field naming with gin's binding validator so that
	// messages produced during ShouldBindJSON use the wire names too.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(jsonFieldName)
	}
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		name = strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
	}
	return name
}

// ValidateStruct validates a struct and returns a user-friendly error
func ValidateStruct(s interface{}) error {
	return translateValidation(validate.Struct(s))
}

// BindError converts an error returned by gin's ShouldBind* into a 400 AppError.
func BindError(err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if stderrors.As(err, &verrs) {
		return translateValidation(verrs)
	}
	return errors.NewValidationError("Invalid request body", err.Error())
}

func translateValidation(err error) error {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !stderrors.As(err, &verrs) || len(verrs) == 0 {
		return errors.NewValidationError(constants.ErrMsgValidationFailed, err.Error())
	}

	messages := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		messages = append(messages, fieldErrorMessage(fe))
	}

	return errors.NewValidationError(constants.ErrMsgValidationFailed, strings.Join(messages, "; "))
}

func fieldErrorMessage(fe validator.FieldError) string {
	field := fe.Field()
	param := fe.Param()

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters long", field, param)
		}
		return fmt.Sprintf("%s must be at least %s", field, param)
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters long", field, param)
		}
		return fmt.Sprintf("%s must be at most %s", field, param)
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, param)
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, param)
	default:
		return fmt.Sprintf("%s failed validation for '%s'", field, fe.Tag())
	}
}
