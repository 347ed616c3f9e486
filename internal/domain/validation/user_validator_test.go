package validation

import (
	"strings"
	"testing"

	"usermgr/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validUser() *entity.User {
	return entity.NewUser("alice_01", "secret1", "alice@x.com", entity.RoleUser)
}

func TestValidate_NilUser(t *testing.T) {
	uv := NewUserValidator()

	violations := uv.Validate(nil)
	require.Len(t, violations, 1)
	assert.False(t, uv.IsValid(nil))
}

func TestValidate_ValidUser(t *testing.T) {
	uv := NewUserValidator()

	assert.Empty(t, uv.Validate(validUser()))
	assert.True(t, uv.IsValid(validUser()))
}

func TestValidate_AccumulatesAllViolations(t *testing.T) {
	uv := NewUserValidator()

	user := &entity.User{Username: "a!", Password: "abc", Email: "nope"}
	violations := uv.Validate(user)

	assert.Equal(t, []string{
		"username must be at least 3 characters",
		"username may only contain letters, digits and underscore",
		"password must be at least 6 characters",
		"password must contain at least one digit",
		"email format is not valid",
		"role is required",
	}, violations)
}

func TestValidate_UnknownRole(t *testing.T) {
	uv := NewUserValidator()

	user := validUser()
	user.Role = entity.Role("ROOT")

	violations := uv.Validate(user)
	require.Len(t, violations, 1)
	assert.Contains(t, violations[0], "ROOT")
}

func TestValidateUsername_LengthBoundaries(t *testing.T) {
	uv := NewUserValidator()

	tests := []struct {
		name     string
		username string
		contains string
	}{
		{name: "length 2", username: "ab", contains: "3"},
		{name: "length 21", username: strings.Repeat("a", 21), contains: "20"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			violations := uv.ValidateUsername(tt.username)
			require.Len(t, violations, 1)
			assert.Contains(t, violations[0], tt.contains)
		})
	}

	assert.Empty(t, uv.ValidateUsername("abc"))
	assert.Empty(t, uv.ValidateUsername(strings.Repeat("a", 20)))
}

func TestValidateUsername_Rules(t *testing.T) {
	uv := NewUserValidator()

	assert.Equal(t, []string{"username is required"}, uv.ValidateUsername(""))
	assert.Equal(t, []string{"username is required"}, uv.ValidateUsername("   "))
	assert.Empty(t, uv.ValidateUsername("  bob  "), "surrounding whitespace is trimmed")
	assert.Len(t, uv.ValidateUsername("bob smith"), 1)
	assert.Len(t, uv.ValidateUsername("bob-smith"), 1)
	assert.Empty(t, uv.ValidateUsername("Bob_Smith_9"))
}

func TestValidatePassword_Rules(t *testing.T) {
	uv := NewUserValidator()

	assert.Empty(t, uv.ValidatePassword("pass12"))
	assert.Equal(t, []string{"password is required"}, uv.ValidatePassword(""))

	tests := []struct {
		password string
		want     string
	}{
		{password: "pas1", want: "password must be at least 6 characters"},
		{password: "password", want: "password must contain at least one digit"},
		{password: "123456", want: "password must contain at least one letter"},
	}

	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			assert.Equal(t, []string{tt.want}, uv.ValidatePassword(tt.password))
		})
	}
}

func TestValidateEmail_Rules(t *testing.T) {
	uv := NewUserValidator()

	valid := []string{"alice@x.com", "a.b+c_d-e@mail.example.org", " bob@host.io "}
	for _, email := range valid {
		assert.Empty(t, uv.ValidateEmail(email), email)
	}

	invalid := []string{"alice", "alice@", "alice@host", "alice@host.c", "al ice@host.com", "@host.com"}
	for _, email := range invalid {
		assert.Equal(t, []string{"email format is not valid"}, uv.ValidateEmail(email), email)
	}

	assert.Equal(t, []string{"email is required"}, uv.ValidateEmail("  "))
}
