package routes

import (
	"strings"

	"hotel-assistant/internal/model"
)

// Table is the immutable route permission matrix together with the ordered
// navigation keyword list. It is safe for concurrent use.
type Table struct {
	routes   []RouteEntry
	byPath   map[string]int
	keywords []KeywordRoute
}

// Routes returns all routes in declaration order.
func (t *Table) Routes() []RouteEntry {
	out := make([]RouteEntry, len(t.routes))
	copy(out, t.routes)
	return out
}

// Keywords returns the navigation phrases in declaration order.
func (t *Table) Keywords() []KeywordRoute {
	out := make([]KeywordRoute, len(t.keywords))
	copy(out, t.keywords)
	return out
}

// Lookup returns the route registered at path.
func (t *Table) Lookup(path string) (RouteEntry, bool) {
	i, ok := t.byPath[path]
	if !ok {
		return RouteEntry{}, false
	}
	return t.routes[i], true
}

// Match returns the route of the first keyword phrase contained in message.
// message is lower-cased here so callers may pass raw input.
func (t *Table) Match(message string) (RouteEntry, KeywordRoute, bool) {
	lower := strings.ToLower(message)
	for _, k := range t.keywords {
		if strings.Contains(lower, k.Phrase) {
			return t.routes[t.byPath[k.Path]], k, true
		}
	}
	return RouteEntry{}, KeywordRoute{}, false
}

// ListAvailableRoutes returns every route the given roles may open, in declaration order.
func (t *Table) ListAvailableRoutes(roleIDs []model.RoleID) []RouteEntry {
	out := make([]RouteEntry, 0, len(t.routes))
	for _, r := range t.routes {
		if CheckPermission(r, roleIDs) {
			out = append(out, r)
		}
	}
	return out
}

// CheckPermission reports whether any of roleIDs may open route.
// Public routes accept every caller, including one with no roles.
func CheckPermission(route RouteEntry, roleIDs []model.RoleID) bool {
	if route.IsPublic() {
		return true
	}
	for _, allowed := range route.AllowedRoles {
		for _, id := range roleIDs {
			if allowed == id {
				return true
			}
		}
	}
	return false
}
