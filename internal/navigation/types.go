package navigation

import (
	"encoding/json"

	"hotel-assistant/internal/routes"
)

// Action tells the front end what to do with a navigation result.
type Action string

const (
	ActionNavigate            Action = "NAVIGATE"
	ActionPermissionDenied    Action = "PERMISSION_DENIED"
	ActionShowAvailableRoutes Action = "SHOW_AVAILABLE_ROUTES"
)

// ActionData carries what the front end needs to render a NAVIGATE action.
type ActionData struct {
	Route string `json:"route"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// Result is the outcome of resolving a navigation request.
//   - NAVIGATE: CanNavigate is true and Target is set.
//   - PERMISSION_DENIED: Route is the requested path and there is no payload.
//   - SHOW_AVAILABLE_ROUTES: Available lists every page the caller may open.
//
// On the wire the payload of each action is sent as "actionData".
type Result struct {
	CanNavigate bool
	Route       string
	Action      Action
	Target      *ActionData
	Available   []routes.RouteEntry
	Message     string
}

// ActionData returns the action specific payload: *ActionData for NAVIGATE,
// the route list for SHOW_AVAILABLE_ROUTES and nil otherwise.
func (r Result) ActionData() any {
	switch r.Action {
	case ActionNavigate:
		if r.Target != nil {
			return r.Target
		}
	case ActionShowAvailableRoutes:
		if r.Available == nil {
			return []routes.RouteEntry{}
		}
		return r.Available
	}
	return nil
}

type resultJSON struct {
	CanNavigate bool   `json:"canNavigate"`
	Route       string `json:"route,omitempty"`
	Action      Action `json:"action"`
	ActionData  any    `json:"actionData"`
	Message     string `json:"message"`
}

func (r Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(resultJSON{
		CanNavigate: r.CanNavigate,
		Route:       r.Route,
		Action:      r.Action,
		ActionData:  r.ActionData(),
		Message:     r.Message,
	})
}
