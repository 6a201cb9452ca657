package api

import "fmt"

// BasePath prefixes every admin route.
const BasePath = "/api/admin"

// Entity names as they appear in paths and list-response keys.
const (
	EntityUsers       = "users"
	EntityTeams       = "teams"
	EntityDepartments = "departments"
	EntityEvents      = "events"
)

// CollectionPath returns the list/create path for an entity collection.
func CollectionPath(entity string) string {
	return fmt.Sprintf("%s/%s", BasePath, entity)
}

// ItemPath returns the update/delete path for a single item.
func ItemPath(entity, id string) string {
	return fmt.Sprintf("%s/%s/%s", BasePath, entity, id)
}

// VerifyUserPath returns the dedicated user verification path.
func VerifyUserPath(id string) string {
	return fmt.Sprintf("%s/users/%s/verify", BasePath, id)
}

// MembersPath returns the add-member path for a team or department.
func MembersPath(parent, parentID string) string {
	return fmt.Sprintf("%s/%s/%s/members", BasePath, parent, parentID)
}

// MemberPath returns the remove/update path for one membership.
func MemberPath(parent, parentID, userID string) string {
	return fmt.Sprintf("%s/%s/%s/members/%s", BasePath, parent, parentID, userID)
}

// RequestsPath returns the pending event request collection path.
func RequestsPath() string {
	return fmt.Sprintf("%s/events/requests", BasePath)
}

// ApproveRequestPath returns the approve path for a pending event.
func ApproveRequestPath(id string) string {
	return fmt.Sprintf("%s/events/requests/%s/approve", BasePath, id)
}

// RejectRequestPath returns the reject path for a pending event.
func RejectRequestPath(id string) string {
	return fmt.Sprintf("%s/events/requests/%s/reject", BasePath, id)
}
