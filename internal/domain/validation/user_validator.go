// Package validation holds the business rules a user record must satisfy
// before the user service persists it.
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"usermgr/internal/domain/entity"

	"github.com/go-playground/validator/v10"
)

const (
	MinUsernameLength = 3
	MaxUsernameLength = 20
	MinPasswordLength = 6
)

const (
	tagUsernameChars = "username_chars"
	tagHasDigit      = "has_digit"
	tagHasLetter     = "has_letter"
	tagEmailFormat   = "email_format"
)

var (
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
	emailPattern    = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
)

// rule pairs a validator tag with the violation reported when it fails.
type rule struct {
	tag     string
	message string
}

var (
	usernameRules = []rule{
		{tag: fmt.Sprintf("min=%d", MinUsernameLength), message: fmt.Sprintf("username must be at least %d characters", MinUsernameLength)},
		{tag: fmt.Sprintf("max=%d", MaxUsernameLength), message: fmt.Sprintf("username cannot exceed %d characters", MaxUsernameLength)},
		{tag: tagUsernameChars, message: "username may only contain letters, digits and underscore"},
	}

	passwordRules = []rule{
		{tag: fmt.Sprintf("min=%d", MinPasswordLength), message: fmt.Sprintf("password must be at least %d characters", MinPasswordLength)},
		{tag: tagHasDigit, message: "password must contain at least one digit"},
		{tag: tagHasLetter, message: "password must contain at least one letter"},
	}

	emailRules = []rule{
		{tag: tagEmailFormat, message: "email format is not valid"},
	}
)

// UserValidator checks a candidate user against the account rules.
// Every rule is evaluated and all violations are reported, in the order
// username, password, email, role.
type UserValidator struct {
	v *validator.Validate
}

// NewUserValidator builds a UserValidator with the account rule tags registered.
func NewUserValidator() *UserValidator {
	v := validator.New()
	mustRegister(v, tagUsernameChars, matches(usernamePattern))
	mustRegister(v, tagEmailFormat, matches(emailPattern))
	mustRegister(v, tagHasDigit, containsRune(unicode.IsDigit))
	mustRegister(v, tagHasLetter, containsRune(isASCIILetter))

	return &UserValidator{v: v}
}

// Validate returns every violation found on user. An empty result means the user is valid.
func (uv *UserValidator) Validate(user *entity.User) []string {
	if user == nil {
		return []string{"user cannot be nil"}
	}

	var violations []string
	violations = append(violations, uv.ValidateUsername(user.Username)...)
	violations = append(violations, uv.ValidatePassword(user.Password)...)
	violations = append(violations, uv.ValidateEmail(user.Email)...)

	switch {
	case user.Role == "":
		violations = append(violations, "role is required")
	case !user.Role.IsValid():
		violations = append(violations, fmt.Sprintf("role %q is not a known role", user.Role))
	}

	return violations
}

// ValidateUsername checks only the username rules. Surrounding whitespace is ignored.
func (uv *UserValidator) ValidateUsername(username string) []string {
	trimmed := strings.TrimSpace(username)
	if trimmed == "" {
		return []string{"username is required"}
	}

	return uv.check(trimmed, usernameRules)
}

// ValidatePassword checks only the password rules. The password is not trimmed.
func (uv *UserValidator) ValidatePassword(password string) []string {
	if password == "" {
		return []string{"password is required"}
	}

	return uv.check(password, passwordRules)
}

// ValidateEmail checks only the email rules. Surrounding whitespace is ignored.
func (uv *UserValidator) ValidateEmail(email string) []string {
	trimmed := strings.TrimSpace(email)
	if trimmed == "" {
		return []string{"email is required"}
	}

	return uv.check(trimmed, emailRules)
}

// IsValid reports whether user has no violations.
func (uv *UserValidator) IsValid(user *entity.User) bool {
	return len(uv.Validate(user)) == 0
}

func (uv *UserValidator) check(value string, rules []rule) []string {
	var violations []string
	for _, r := range rules {
		if err := uv.v.Var(value, r.tag); err != nil {
			violations = append(violations, r.message)
		}
	}

	return violations
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register validation %s: %v", tag, err))
	}
}

func matches(pattern *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return pattern.MatchString(fl.Field().String())
	}
}

func containsRune(pred func(rune) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return strings.IndexFunc(fl.Field().String(), pred) >= 0
	}
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
