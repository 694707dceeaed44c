package validators

import (
	"regexp"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var (
	ymdPattern  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	hhmmPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)
)

// IsYMD validates an opaque "YYYY-MM-DD" calendar day key.
func IsYMD(fl validator.FieldLevel) bool {
	return ymdPattern.MatchString(fl.Field().String())
}

// IsHHMM validates a 24h "HH:MM" clock string.
func IsHHMM(fl validator.FieldLevel) bool {
	return hhmmPattern.MatchString(fl.Field().String())
}

func HasUpper(fl validator.FieldLevel) bool {
	return containsClass(fl.Field().String(), unicode.IsUpper)
}

func HasLower(fl validator.FieldLevel) bool {
	return containsClass(fl.Field().String(), unicode.IsLower)
}

func HasDigit(fl validator.FieldLevel) bool {
	return containsClass(fl.Field().String(), unicode.IsDigit)
}

func HasSpecial(fl validator.FieldLevel) bool {
	return containsClass(fl.Field().String(), func(r rune) bool {
		return unicode.IsPunct(r) || unicode.IsSymbol(r)
	})
}

func NoWhiteSpaces(fl validator.FieldLevel) bool {
	return !containsClass(fl.Field().String(), unicode.IsSpace)
}

func containsClass(s string, class func(rune) bool) bool {
	for _, r := range s {
		if class(r) {
			return true
		}
	}
	return false
}
