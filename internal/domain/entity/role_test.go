package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRole_IsValid(t *testing.T) {
	for _, r := range AllRoles {
		assert.True(t, r.IsValid(), "role %s should be valid", r)
	}

	assert.False(t, Role("").IsValid())
	assert.False(t, Role("admin").IsValid())
	assert.False(t, Role("ROOT").IsValid())
}

func TestRole_Description(t *testing.T) {
	assert.Equal(t, "Administrator", RoleAdmin.Description())
	assert.Equal(t, "Therapist", RoleTerapeuta.Description())
	assert.Empty(t, Role("ROOT").Description())
}

func TestRole_CanManageUsers(t *testing.T) {
	assert.True(t, RoleAdmin.CanManageUsers())
	assert.True(t, RoleGuest.CanManageUsers())
	assert.False(t, RoleUser.CanManageUsers())
	assert.False(t, Role("").CanManageUsers())

	assert.Equal(t, Roles{RoleAdmin, RoleGuest, RoleMedico, RoleTerapeuta}, AllRoles.Managers())
}

func TestParseRole(t *testing.T) {
	role, ok := ParseRole("MEDICO")
	assert.True(t, ok)
	assert.Equal(t, RoleMedico, role)

	role, ok = ParseRole("medico")
	assert.False(t, ok)
	assert.Empty(t, role)
}

func TestUser_NewAndClone(t *testing.T) {
	var bare User
	assert.False(t, bare.Active)
	assert.False(t, bare.IsPersisted())

	u := NewUser("alice", "secret1", "alice@x.com", RoleUser)
	assert.True(t, u.Active)
	assert.False(t, u.IsPersisted())

	u.ID = 7
	clone := u.Clone()
	clone.Username = "bob"
	assert.Equal(t, "alice", u.Username)
	assert.True(t, clone.IsPersisted())
	assert.Nil(t, (*User)(nil).Clone())
}
