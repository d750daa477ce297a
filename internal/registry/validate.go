package registry

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	cssErrors "github.com/alexisbeaulieu97/utilicss/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	utilityNamePattern = regexp.MustCompile(`^-?[a-z0-9@*][a-z0-9./-]*$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("utility_name", func(fl validator.FieldLevel) bool {
			return utilityNamePattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

func validateOptions(opts any) error {
	if err := validatorInstance().Struct(opts); err != nil {
		return convertValidationError(err)
	}
	return nil
}

func convertValidationError(err error) error {
	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := strings.ToLower(ve.StructNamespace())
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return cssErrors.NewValidationError(field, msg, err)
	}
	return cssErrors.NewValidationError("options", err.Error(), err)
}
