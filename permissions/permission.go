package permissions

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"frontdesk/shared/constant"
	"slices"

	"github.com/rs/zerolog/log"
)

//go:embed permissions.json
var permissionsData []byte

var knownRoles = []string{
	constant.RoleAdmin,
	constant.RoleManager,
	constant.RoleReceptionist,
	constant.RoleStaff,
}

// Permission lists the roles allowed on one route pattern. Skip opens the route without a token.
type Permission struct {
	Permissions []string `json:"permissions"`
	Path        string   `json:"path"`
	Method      string   `json:"method"`
	Skip        bool     `json:"skip"`
}

type PermissionData struct {
	Endpoints []Permission `json:"endpoints"`
	Skip      bool         `json:"skip"`
}

// FindPermissions returns the entry for the chi route pattern and method, or the zero Permission
// (authenticated, any role) when the route is not listed.
func (r *PermissionData) FindPermissions(path, method string) Permission {
	idx := slices.IndexFunc(r.Endpoints, func(rp Permission) bool {
		return rp.Path == path && rp.Method == method
	})

	if idx == -1 {
		return Permission{}
	}

	return r.Endpoints[idx]
}

// Parse decodes a permissions document and rejects roles the service does not issue.
func Parse(data []byte) (*PermissionData, error) {
	var permissions PermissionData

	if err := json.Unmarshal(data, &permissions); err != nil {
		return nil, fmt.Errorf("failed to decode permissions: %w", err)
	}

	for _, endpoint := range permissions.Endpoints {
		for _, role := range endpoint.Permissions {
			if !slices.Contains(knownRoles, role) {
				return nil, fmt.Errorf("unknown role %q on %s %s", role, endpoint.Method, endpoint.Path)
			}
		}
	}

	return &permissions, nil
}

// Get loads the embedded permissions. A nil result makes RBAC deny every request.
func Get() *PermissionData {
	permissions, err := Parse(permissionsData)
	if err != nil {
		log.Err(err).Msg("Failed to load embedded permissions")

		return nil
	}

	log.Info().Int("endpoints", len(permissions.Endpoints)).Msg("Successfully loaded embedded permissions")

	return permissions
}
