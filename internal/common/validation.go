package common

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return f.Name
			}
			return name
		})
	})
	return validate
}

// ValidateStruct runs the `validate` tags on v and reports the first
// failing field as InvalidArgument.
func ValidateStruct(v interface{}) error {
	err := validatorInstance().Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return InvalidArgument("invalid request")
	}

	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return InvalidArgument(fmt.Sprintf("%s is required", fe.Field()))
	case "max":
		return InvalidArgument(fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param()))
	case "min":
		return InvalidArgument(fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param()))
	default:
		return InvalidArgument(fmt.Sprintf("%s is invalid", fe.Field()))
	}
}

// ValidateText trims s and checks it is non-empty and within max runes.
func ValidateText(s, field string, max int) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", InvalidArgument(field + " is required")
	}
	if max > 0 && len([]rune(s)) > max {
		return "", InvalidArgument(fmt.Sprintf("%s must be at most %d characters", field, max))
	}
	return s, nil
}
