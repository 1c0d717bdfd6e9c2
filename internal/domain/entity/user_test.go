package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserRoleValid(t *testing.T) {
	assert.True(t, RoleAdmin.Valid())
	assert.True(t, RoleDoctor.Valid())
	assert.True(t, RoleReceptionist.Valid())
	assert.True(t, RolePatient.Valid())
	assert.False(t, UserRole("superuser").Valid())
	assert.False(t, UserRole("").Valid())
}
