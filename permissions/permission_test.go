package permissions_test

import (
	"frontdesk/permissions"
	"frontdesk/shared/constant"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_Embedded(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)

	assert.False(t, data.Skip)
	assert.True(t, data.FindPermissions("/v1/auth/login", http.MethodPost).Skip)
	assert.True(t, data.FindPermissions("/v1/auth/refresh", http.MethodPost).Skip)

	guestDelete := data.FindPermissions("/v1/guests/{id}", http.MethodDelete)
	assert.ElementsMatch(t, []string{constant.RoleAdmin, constant.RoleManager}, guestDelete.Permissions)

	checkout := data.FindPermissions("/v1/bookings/{id}/checkout", http.MethodPost)
	assert.Contains(t, checkout.Permissions, constant.RoleReceptionist)
	assert.NotContains(t, checkout.Permissions, constant.RoleStaff)
}

func TestFindPermissions_Unlisted(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)

	permission := data.FindPermissions("/v1/bookings/{id}", http.MethodDelete)

	assert.False(t, permission.Skip)
	assert.Empty(t, permission.Permissions)
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr bool
	}{
		{
			name: "known roles",
			data: `{"endpoints":[{"path":"/v1/reports","method":"GET","permissions":["admin","manager"]}]}`,
		},
		{
			name:    "unknown role",
			data:    `{"endpoints":[{"path":"/v1/reports","method":"GET","permissions":["owner"]}]}`,
			wantErr: true,
		},
		{
			name:    "malformed document",
			data:    `{"endpoints":`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := permissions.Parse([]byte(tt.data))
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, data)

				return
			}

			require.NoError(t, err)
			assert.Len(t, data.Endpoints, 1)
		})
	}
}
