package birthday

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	validate    = newValidator()
)

// ValidationError names the first field that failed validation.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("ymd", func(fl validator.FieldLevel) bool {
		return datePattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}

	v.RegisterStructValidation(validatePatch, Patch{})

	return v
}

// Dates are checked lexically only, so 2023-02-30 passes.
func validatePatch(sl validator.StructLevel) {
	p := sl.Current().Interface().(Patch)

	if p.Name.Set && (p.Name.Null || p.Name.Value == "") {
		sl.ReportError(p.Name.Value, "name", "Name", "required", "")
	}
	if p.BirthDate.Set {
		switch {
		case p.BirthDate.Null || p.BirthDate.Value == "":
			sl.ReportError(p.BirthDate.Value, "birthDate", "BirthDate", "required", "")
		case !datePattern.MatchString(p.BirthDate.Value):
			sl.ReportError(p.BirthDate.Value, "birthDate", "BirthDate", "ymd", "")
		}
	}
	if p.IsGiftRequired.Set && p.IsGiftRequired.Null {
		sl.ReportError(p.IsGiftRequired.Value, "isGiftRequired", "IsGiftRequired", "boolean", "")
	}
	if p.IsReminderSet.Set && p.IsReminderSet.Null {
		sl.ReportError(p.IsReminderSet.Value, "isReminderSet", "IsReminderSet", "boolean", "")
	}
}

func (in Input) Validate() error {
	return firstError(validate.Struct(in))
}

func (p Patch) Validate() error {
	return firstError(validate.Struct(p))
}

func firstError(err error) error {
	if err == nil {
		return nil
	}
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return err
	}
	fe := errs[0]
	return &ValidationError{Field: fe.Field(), Message: message(fe)}
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "ymd":
		return fmt.Sprintf("%s must be a date in YYYY-MM-DD form", fe.Field())
	case "boolean":
		return fmt.Sprintf("%s must be a boolean", fe.Field())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
