package model

import "strings"

// RoleID is the numeric role identifier issued by the hotel application.
type RoleID int

const (
	RoleIDManager      RoleID = 1
	RoleIDReceptionist RoleID = 2
	RoleIDCustomer     RoleID = 3
)

// Role names as sent by the front end in userRole.
const (
	RoleManager      = "manager"
	RoleReceptionist = "receptionist"
	RoleCustomer     = "customer"
	RoleGuest        = "guest"
)

var roleNames = map[RoleID]string{
	RoleIDManager:      RoleManager,
	RoleIDReceptionist: RoleReceptionist,
	RoleIDCustomer:     RoleCustomer,
}

// Name returns the role name for the id, or RoleGuest when unknown.
func (r RoleID) Name() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return RoleGuest
}

// RoleIDFromName maps a role name to its id. The second value is false for unknown names.
func RoleIDFromName(name string) (RoleID, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for id, n := range roleNames {
		if n == name {
			return id, true
		}
	}
	return 0, false
}

// PrimaryRole picks the most privileged role name out of ids (lowest id wins).
func PrimaryRole(ids []RoleID) string {
	best := RoleID(0)
	for _, id := range ids {
		if _, ok := roleNames[id]; !ok {
			continue
		}
		if best == 0 || id < best {
			best = id
		}
	}
	if best == 0 {
		return RoleGuest
	}
	return best.Name()
}
