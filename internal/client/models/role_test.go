package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		in   string
		want Role
		ok   bool
	}{
		{"FARMER", RoleFarmer, true},
		{" distributor ", RoleDistributor, true},
		{"Buyer", RoleBuyer, true},
		{"admin", RoleAdmin, true},
		{"CONSUMER", Role("CONSUMER"), false},
		{"", Role(""), false},
	}
	for _, tt := range tests {
		got, ok := ParseRole(tt.in)
		assert.Equal(t, tt.want, got, tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
	}
}

func TestRoles_AllValid(t *testing.T) {
	for _, r := range Roles() {
		assert.True(t, r.Valid(), r)
	}
	assert.Len(t, Roles(), 4)
}
