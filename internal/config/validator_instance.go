package config

import (
	"fmt"
	"reflect"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/stepperlab/internal/stepper"
	apperrors "github.com/alexisbeaulieu97/stepperlab/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	hexColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		// Report yaml/mapstructure names rather than Go field names.
		v.RegisterTagNameFunc(tagName)

		_ = v.RegisterValidation("ansi_color", func(fl validator.FieldLevel) bool {
			value := strings.TrimSpace(fl.Field().String())
			if hexColorPattern.MatchString(value) {
				return true
			}
			n, err := strconv.Atoi(value)
			return err == nil && n >= 0 && n <= 255
		})

		_ = v.RegisterValidation("event_field", func(fl validator.FieldLevel) bool {
			field := fl.Field().String()
			return field == "orientation" || slices.Contains(stepper.Fields(), field)
		})

		validateInst = v
	})

	return validateInst
}

// convertValidationError normalizes validator errors into validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := fieldPath(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return apperrors.NewValidationError(field, msg, err)
	}

	return apperrors.NewValidationError("config", err.Error(), err)
}

// fieldPath drops the root struct name from the namespace: Script.events[0].field
// becomes events[0].field.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}
	return ns
}

func tagName(field reflect.StructField) string {
	for _, key := range []string{"yaml", "mapstructure"} {
		name, _, _ := strings.Cut(field.Tag.Get(key), ",")
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return field.Name
}
