package model

// UserContext describes the caller of a single chat request.
// It is supplied per request and never stored.
type UserContext struct {
	UserID    string
	Role      string
	RoleIDs   []RoleID
	SessionID string
	Raw       map[string]any
}

// EffectiveRole returns Role when set, otherwise the primary role derived from RoleIDs.
func (u UserContext) EffectiveRole() string {
	if u.Role != "" {
		return u.Role
	}
	return PrimaryRole(u.RoleIDs)
}

// EffectiveRoleIDs returns RoleIDs when set, otherwise the id matching Role (if any).
func (u UserContext) EffectiveRoleIDs() []RoleID {
	if len(u.RoleIDs) > 0 {
		return u.RoleIDs
	}
	if id, ok := RoleIDFromName(u.Role); ok {
		return []RoleID{id}
	}
	return nil
}
