package rbac

import (
	"strings"

	"ats-backend/models"
)

type HTTPMethod string

const (
	GET    HTTPMethod = "GET"
	POST   HTTPMethod = "POST"
	PUT    HTTPMethod = "PUT"
	DELETE HTTPMethod = "DELETE"
	PATCH  HTTPMethod = "PATCH"
)

// routeTable holds the rules of one http method. Literal paths win over patterns,
// patterns are tried in registration order.
type routeTable struct {
	exact    map[string]models.RbacFunc
	patterns []route
}

func newRouteTable() *routeTable {
	return &routeTable{exact: map[string]models.RbacFunc{}}
}

func (t *routeTable) add(path string, check models.RbacFunc) {
	segments := splitPath(path)
	for _, segment := range segments {
		if isParam(segment) || segment == "*" {
			t.patterns = append(t.patterns, route{segments: segments, check: check})
			return
		}
	}
	t.exact[path] = check
}

func (t *routeTable) find(path string) (models.RbacFunc, bool) {
	if check, ok := t.exact[path]; ok {
		return check, true
	}
	segments := splitPath(path)
	for _, r := range t.patterns {
		if r.match(segments) {
			return r.check, true
		}
	}
	return nil, false
}

type route struct {
	segments []string
	check    models.RbacFunc
}

// match compares segment by segment: {param} takes one non-empty segment, a trailing * takes the rest.
func (r route) match(segments []string) bool {
	for idx, segment := range r.segments {
		if segment == "*" {
			return true
		}
		if idx >= len(segments) {
			return false
		}
		if isParam(segment) {
			if segments[idx] == "" {
				return false
			}
			continue
		}
		if segment != segments[idx] {
			return false
		}
	}
	return len(segments) == len(r.segments)
}

func isParam(segment string) bool {
	return len(segment) > 2 && strings.HasPrefix(segment, "{") && strings.HasSuffix(segment, "}")
}

func splitPath(path string) []string {
	return strings.Split(strings.Trim(normalizePath(path), "/"), "/")
}

func normalizePath(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	for strings.Contains(path, "//") {
		path = strings.ReplaceAll(path, "//", "/")
	}
	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}
	return path
}
