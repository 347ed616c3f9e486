package handler

import (
	"strings"

	"usermgr/internal/domain/entity"
)

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Username string `json:"username" validate:"max=64"`
	Password string `json:"password" validate:"max=256"`
}

// LoginResponse carries the issued access token.
type LoginResponse struct {
	AccessToken string        `json:"accessToken"`
	TokenType   string        `json:"tokenType"`
	ExpiresIn   int64         `json:"expiresIn"` // seconds
	User        *UserResponse `json:"user"`
}

// CreateUserRequest is the body of POST /users.
type CreateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// UpdateUserRequest is the body of PUT /users/:id. Blank fields keep their
// current value.
type UpdateUserRequest struct {
	ID       int64  `param:"id" json:"-" validate:"required,gt=0"`
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Active   *bool  `json:"active"`
}

// UserIDParam binds the :id path parameter.
type UserIDParam struct {
	ID int64 `param:"id" validate:"required,gt=0"`
}

// UserResponse is the public view of a user. The password digest is never exposed.
type UserResponse struct {
	ID              int64  `json:"id"`
	Username        string `json:"username"`
	Email           string `json:"email"`
	Role            string `json:"role"`
	RoleDescription string `json:"roleDescription"`
	Active          bool   `json:"active"`
	CanManageUsers  bool   `json:"canManageUsers"`
}

func toUserResponse(user *entity.User) *UserResponse {
	if user == nil {
		return nil
	}

	return &UserResponse{
		ID:              user.ID,
		Username:        user.Username,
		Email:           user.Email,
		Role:            user.Role.String(),
		RoleDescription: user.Role.Description(),
		Active:          user.Active,
		CanManageUsers:  user.Role.CanManageUsers(),
	}
}

func toUserResponses(users []*entity.User) []*UserResponse {
	out := make([]*UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}

	return out
}

// parseRole normalizes a role name from a request. Unknown names are passed
// through so the user validator reports them.
func parseRole(s string) entity.Role {
	return entity.Role(strings.ToUpper(strings.TrimSpace(s)))
}

// applyUpdate merges the non-blank request fields into a copy of current.
func (r *UpdateUserRequest) applyUpdate(current *entity.User) *entity.User {
	user := current.Clone()
	if v := strings.TrimSpace(r.Username); v != "" {
		user.Username = v
	}
	if r.Password != "" {
		user.Password = r.Password
	}
	if v := strings.TrimSpace(r.Email); v != "" {
		user.Email = v
	}
	if strings.TrimSpace(r.Role) != "" {
		user.Role = parseRole(r.Role)
	}
	if r.Active != nil {
		user.Active = *r.Active
	}

	return user
}
