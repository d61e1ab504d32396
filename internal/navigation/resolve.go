package navigation

import (
	"fmt"
	"strings"

	"hotel-assistant/internal/model"
	"hotel-assistant/internal/routes"
)

// ResolvePrompt finds the first keyword phrase in message and checks the caller may open its page.
// role is only consulted when roleIDs is empty.
func (r *resolver) ResolvePrompt(message, role string, roleIDs []model.RoleID) Result {
	if len(roleIDs) == 0 {
		if id, ok := model.RoleIDFromName(role); ok {
			roleIDs = []model.RoleID{id}
		}
	}

	route, _, found := r.table.Match(message)
	if !found {
		available := r.table.ListAvailableRoutes(roleIDs)
		return Result{
			CanNavigate: false,
			Action:      ActionShowAvailableRoutes,
			Available:   available,
			Message:     availableMessage(available),
		}
	}

	if !routes.CheckPermission(route, roleIDs) {
		return Result{
			CanNavigate: false,
			Route:       route.Path,
			Action:      ActionPermissionDenied,
			Message:     fmt.Sprintf(MsgPermissionDenied, route.DisplayName),
		}
	}

	return Result{
		CanNavigate: true,
		Route:       route.Path,
		Action:      ActionNavigate,
		Target: &ActionData{
			Route: route.Path,
			Name:  route.DisplayName,
			Icon:  route.Icon,
			Color: route.Color,
		},
		Message: fmt.Sprintf(MsgNavigate, route.DisplayName),
	}
}

func (r *resolver) ListAvailableRoutes(roleIDs []model.RoleID) []routes.RouteEntry {
	return r.table.ListAvailableRoutes(roleIDs)
}

func availableMessage(available []routes.RouteEntry) string {
	if len(available) == 0 {
		return MsgNoRoutes
	}

	var sb strings.Builder
	sb.WriteString(MsgAvailableRoutes)
	for _, rt := range available {
		fmt.Fprintf(&sb, "\n• %s (%s)", rt.DisplayName, rt.Path)
	}
	return sb.String()
}
