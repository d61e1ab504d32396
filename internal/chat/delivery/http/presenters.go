package http

import (
	"strings"

	"hotel-assistant/internal/chat"
	"hotel-assistant/internal/intent"
	"hotel-assistant/internal/model"
	"hotel-assistant/internal/navigation"
	"hotel-assistant/internal/routes"
	"hotel-assistant/pkg/response"
)

// --- Request DTOs ---

type historyItem struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type messageReq struct {
	Message             string         `json:"message"`
	UserRole            string         `json:"userRole"`
	UserID              string         `json:"userId"`
	UserRoles           []int          `json:"userRoles"`
	SessionID           string         `json:"sessionId"`
	Context             map[string]any `json:"context"`
	ConversationHistory []historyItem  `json:"conversationHistory"`
}

func (r messageReq) toUser() model.UserContext {
	ids := make([]model.RoleID, 0, len(r.UserRoles))
	for _, id := range r.UserRoles {
		ids = append(ids, model.RoleID(id))
	}
	return model.UserContext{
		UserID:    r.UserID,
		Role:      strings.ToLower(strings.TrimSpace(r.UserRole)),
		RoleIDs:   ids,
		SessionID: r.SessionID,
		Raw:       r.Context,
	}
}

func (r messageReq) toInput() chat.ProcessInput {
	history := make([]model.Message, 0, len(r.ConversationHistory))
	for _, m := range r.ConversationHistory {
		role := model.SpeakerUser
		if m.Role == model.SpeakerAssistant || m.Role == "bot" {
			role = model.SpeakerAssistant
		}
		history = append(history, model.Message{Role: role, Content: m.Content})
	}
	return chat.ProcessInput{
		Message: r.Message,
		History: history,
		User:    r.toUser(),
	}
}

type classifyReq struct {
	Message  string         `json:"message"`
	UserRole string         `json:"userRole"`
	Context  map[string]any `json:"context"`
}

type routesReq struct {
	RoleIDs string `form:"roleIds"`
}

// --- Response DTOs ---

// navigationResp.ActionData is *navigation.ActionData for NAVIGATE, the route list
// for SHOW_AVAILABLE_ROUTES and null for PERMISSION_DENIED.
type navigationResp struct {
	CanNavigate bool              `json:"canNavigate"`
	Action      navigation.Action `json:"action"`
	Route       string            `json:"route,omitempty"`
	ActionData  any               `json:"actionData"`
}

type metadataResp struct {
	Kind            chat.Kind         `json:"kind"`
	Intent          *intent.Intent    `json:"intent,omitempty"`
	HasSpecificData bool              `json:"hasSpecificData"`
	EntityKinds     []string          `json:"entityKinds,omitempty"`
	SessionID       string            `json:"sessionId,omitempty"`
	Timestamp       response.DateTime `json:"timestamp"`
	DurationMs      int64             `json:"durationMs"`
}

type messageResp struct {
	Success              bool            `json:"success"`
	Response             string          `json:"response"`
	IsNavigationResponse bool            `json:"isNavigationResponse"`
	QuickReplies         []string        `json:"quickReplies"`
	Metadata             metadataResp    `json:"metadata"`
	Navigation           *navigationResp `json:"navigation,omitempty"`
	Error                string          `json:"error,omitempty"`
}

func (h *handler) newMessageResp(res chat.ProcessedResult, sessionID string) messageResp {
	resp := messageResp{
		Success:              res.Kind != chat.KindError,
		Response:             res.Text,
		IsNavigationResponse: res.IsNavigation(),
		QuickReplies:         res.QuickReplies,
		Metadata: metadataResp{
			Kind:       res.Kind,
			Intent:     res.Metadata.Intent,
			SessionID:  sessionID,
			Timestamp:  response.DateTime(res.Metadata.ProcessedAt),
			DurationMs: res.Metadata.Duration.Milliseconds(),
		},
	}
	if resp.QuickReplies == nil {
		resp.QuickReplies = []string{}
	}

	if nav := res.Navigation; nav != nil {
		resp.Navigation = &navigationResp{
			CanNavigate: nav.CanNavigate,
			Action:      nav.Action,
			Route:       nav.Route,
			ActionData:  nav.ActionData(),
		}
	}
	if gen := res.Generation; gen != nil {
		resp.Metadata.HasSpecificData = gen.HasSpecificData
		for _, e := range gen.Entities {
			resp.Metadata.EntityKinds = append(resp.Metadata.EntityKinds, e.Kind)
		}
	}
	if res.Failure != nil {
		resp.Error = string(res.Failure.Code)
	}
	return resp
}

type classifyResp struct {
	Intent       intent.Intent `json:"intent"`
	QuickReplies []string      `json:"quickReplies"`
}

type routesResp struct {
	Routes []routes.RouteEntry `json:"routes"`
}

func (h *handler) newRoutesResp(entries []routes.RouteEntry) routesResp {
	if entries == nil {
		entries = []routes.RouteEntry{}
	}
	return routesResp{Routes: entries}
}
