package forms

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// validate is shared by every form; validator.Validate is safe for concurrent use.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// registration only fails on empty tags or nil funcs
	_ = v.RegisterValidation("notblank", notBlank)
	_ = v.RegisterValidation("trimmedmin", trimmedMin)
	_ = v.RegisterValidation("looseemail", looseEmail)
	return v
}

func notBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func trimmedMin(fl validator.FieldLevel) bool {
	n, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return utf8.RuneCountInString(strings.TrimSpace(fl.Field().String())) >= n
}

func looseEmail(fl validator.FieldLevel) bool {
	return emailPattern.MatchString(fl.Field().String())
}
