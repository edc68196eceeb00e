package utils

import (
	"careportal-service/internal/pkg/constvars"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("password", validatePassword)
	validate.RegisterValidation("pin", validatePin)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validatePassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()
	hasMinLen := len(password) >= 8
	hasSpecialChar := regexp.MustCompile(constvars.RegexContainAtLeastOneSpecialChar).MatchString(password)
	hasUppercase := regexp.MustCompile(constvars.RegexContainAtLeastOneUppercase).MatchString(password)
	return hasMinLen && hasSpecialChar && hasUppercase
}

func validatePin(fl validator.FieldLevel) bool {
	return IsValidPin(fl.Field().String())
}

// IsValidPin checks the 4-6 digit shape without touching stored hashes.
func IsValidPin(pin string) bool {
	if len(pin) < constvars.PinMinLength || len(pin) > constvars.PinMaxLength {
		return false
	}
	return regexp.MustCompile(constvars.RegexDigitsOnly).MatchString(pin)
}
