package rbac

import (
	"regexp"
	"slices"
	"strings"

	"ats-backend/models"

	"github.com/pkg/errors"
)

type Provider interface {
	GetRuleFunc(method, path string) (models.RbacFunc, bool)
	RegisterRule(module models.Module, permission models.Permission, roles []models.UserRole, swaggerPattern string, handler models.RbacFunc) error
	GetPermissions(role models.UserRole) map[models.Module][]models.Permission
}

var Instance Provider

func NewHandler() {
	i := &impl{
		routes:      map[HTTPMethod]*routeTable{},
		permissions: permissionSet{},
	}
	i.initRules()
	Instance = i
}

type impl struct {
	routes      map[HTTPMethod]*routeTable
	permissions permissionSet
}

func (i *impl) GetRuleFunc(method, path string) (models.RbacFunc, bool) {
	table, ok := i.routes[HTTPMethod(strings.ToUpper(method))]
	if !ok {
		return nil, false
	}
	return table.find(normalizePath(path))
}

// RegisterRule guards the route with handler, or with a role check when handler is nil.
func (i *impl) RegisterRule(module models.Module, permission models.Permission, roles []models.UserRole, swaggerPattern string, handler models.RbacFunc) error {
	path, method, err := parseSwaggerPattern(swaggerPattern)
	if err != nil {
		return err
	}
	i.permissions.grant(roles, module, permission)
	if handler == nil {
		handler = AllowByRoleFunc(roles)
	}
	table, ok := i.routes[method]
	if !ok {
		table = newRouteTable()
		i.routes[method] = table
	}
	table.add(path, handler)
	return nil
}

func (i *impl) mustRegister(module models.Module, permission models.Permission, roles []models.UserRole, swaggerPattern string, handler models.RbacFunc) {
	if err := i.RegisterRule(module, permission, roles, swaggerPattern, handler); err != nil {
		panic(err.Error())
	}
}

func (i *impl) GetPermissions(role models.UserRole) map[models.Module][]models.Permission {
	return i.permissions.forRole(role)
}

func AllowFunc() models.RbacFunc {
	return func(userID string, role models.UserRole, uri string) bool {
		return true
	}
}

func AllowByRoleFunc(accessRoles []models.UserRole) models.RbacFunc {
	return func(userID string, role models.UserRole, uri string) bool {
		return slices.Contains(accessRoles, role)
	}
}

// AllowSelfOrRolesFunc lets the roles through and any user whose id is a segment of the uri.
func AllowSelfOrRolesFunc(accessRoles []models.UserRole) models.RbacFunc {
	byRole := AllowByRoleFunc(accessRoles)
	return func(userID string, role models.UserRole, uri string) bool {
		if byRole(userID, role, uri) {
			return true
		}
		return userID != "" && slices.Contains(splitPath(uri), userID)
	}
}

var swaggerPatternRe = regexp.MustCompile(`^(\S+)\s*\[(\w+)\]$`)

// parses "/api/v1/users [post]"
func parseSwaggerPattern(pattern string) (path string, method HTTPMethod, err error) {
	parts := swaggerPatternRe.FindStringSubmatch(strings.TrimSpace(pattern))
	if parts == nil {
		return "", "", errors.Errorf("invalid rbac pattern %q, expected \"/path [method]\"", pattern)
	}
	return normalizePath(parts[1]), HTTPMethod(strings.ToUpper(parts[2])), nil
}
