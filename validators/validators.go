// Package validators is the schema layer: one payload struct per resource
// operation, tag-driven field rules, first failing field reported.
package validators

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

var phoneRe = regexp.MustCompile(`^[0-9]{10,15}$`)
var codeRe = regexp.MustCompile(`^[0-9]{6}$`)

func init() {
	// report fields by their json name, not the Go identifier
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return fld.Name
		}
		return name
	})

	validate.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phoneRe.MatchString(fl.Field().String())
	})
	validate.RegisterValidation("verifycode", func(fl validator.FieldLevel) bool {
		return codeRe.MatchString(fl.Field().String())
	})
}

// Validate checks a payload struct and returns an error describing the
// first failing field, or nil.
func Validate(payload any) error {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return fmt.Errorf("%s: failed %q validation", fe.Field(), fe.Tag())
	}
	return err
}
