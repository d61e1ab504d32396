package routes

import "hotel-assistant/internal/model"

// RouteEntry is one navigable page of the hotel application.
type RouteEntry struct {
	Path         string         `yaml:"path" json:"path"`
	AllowedRoles []model.RoleID `yaml:"allowed_roles" json:"allowedRoles"`
	DisplayName  string         `yaml:"display_name" json:"name"`
	Icon         string         `yaml:"icon" json:"icon"`
	Color        string         `yaml:"color" json:"color"`
}

// IsPublic reports whether any caller may open the route.
func (r RouteEntry) IsPublic() bool {
	return len(r.AllowedRoles) == 0
}

// KeywordRoute binds a lower-case phrase to a route path.
type KeywordRoute struct {
	Phrase string `yaml:"phrase" json:"phrase"`
	Path   string `yaml:"path" json:"path"`
}

// tableFile is the on-disk layout of a route table document.
type tableFile struct {
	Routes   []RouteEntry   `yaml:"routes"`
	Keywords []KeywordRoute `yaml:"keywords"`
}
