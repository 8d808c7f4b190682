package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		in     string
		want   Role
		wantOK bool
	}{
		{in: "SELLER", want: RoleSeller, wantOK: true},
		{in: " admin ", want: RoleAdmin, wantOK: true},
		{in: "Customer", want: RoleCustomer, wantOK: true},
		{in: "ROOT"},
		{in: ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseRole(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRolesFromStrings(t *testing.T) {
	roles := RolesFromStrings([]string{"SELLER", "bogus", "admin"})

	assert.Equal(t, Roles{RoleSeller, RoleAdmin}, roles)
	assert.True(t, roles.Contains(RoleAdmin))
	assert.False(t, roles.Contains(RoleCustomer))
	assert.Equal(t, []string{"SELLER", "ADMIN"}, roles.Strings())
}
