package navigation

import (
	"hotel-assistant/internal/model"
	"hotel-assistant/internal/routes"
)

// Resolver maps free text to an application page and enforces route permissions.
type Resolver interface {
	ResolvePrompt(message, role string, roleIDs []model.RoleID) Result
	ListAvailableRoutes(roleIDs []model.RoleID) []routes.RouteEntry
}

type resolver struct {
	table *routes.Table
}

// New creates a Resolver over an immutable route table.
func New(table *routes.Table) Resolver {
	return &resolver{table: table}
}
