package rbac

import (
	"slices"

	"ats-backend/models"
)

// permissionSet is what the frontend gets to decide which screens to show.
type permissionSet map[models.UserRole]map[models.Module][]models.Permission

func (s permissionSet) grant(roles []models.UserRole, module models.Module, permission models.Permission) {
	for _, role := range roles {
		modules, ok := s[role]
		if !ok {
			modules = map[models.Module][]models.Permission{}
			s[role] = modules
		}
		if !slices.Contains(modules[module], permission) {
			modules[module] = append(modules[module], permission)
		}
	}
}

func (s permissionSet) forRole(role models.UserRole) map[models.Module][]models.Permission {
	result := make(map[models.Module][]models.Permission, len(s[role]))
	for module, permissions := range s[role] {
		result[module] = slices.Clone(permissions)
	}
	return result
}
