package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Usernames are login handles, not display names: letters, digits and
// underscores only.
var usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("valid_username", ValidUsername)
}

// ValidUsername validates the username character set
func ValidUsername(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true // Optional, use required if needed
	}
	return usernameRegex.MatchString(val)
}
