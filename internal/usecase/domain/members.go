// Package domain contains synchronizer operations on membership. Member
// mutations are never applied locally: success always routes through the
// full refresh, trading latency for guaranteed cross-store consistency.
package domain

import (
	"context"

	"github.com/samibentaiba/itc-hub-sub000/internal/api"
	"github.com/samibentaiba/itc-hub-sub000/internal/entities"
	"github.com/samibentaiba/itc-hub-sub000/internal/mapper"
)

// AddMember adds a user to a team or department. Roles travel UPPERCASE
// on the wire.
func (u *Usecase) AddMember(ctx context.Context, parent entities.MemberParent, parentID, userID string, role entities.MemberRole) bool {
	if parentID == "" || userID == "" {
		return u.invalid("Could not add member", "member and target are required")
	}

	token := "add-member-" + parentID
	u.tokens.begin(token)
	defer u.tokens.end(token)

	body := api.AddMemberRequest{UserID: userID, Role: mapper.WireRole(role)}
	if _, err := u.api.Post(ctx, api.MembersPath(string(parent), parentID), body); err != nil {
		return u.failed("Could not add member", err)
	}

	u.notify.Success("Member added", "Membership has been updated.")
	u.RefreshAll(ctx)
	return true
}

// RemoveMember removes a user from a team or department.
func (u *Usecase) RemoveMember(ctx context.Context, parent entities.MemberParent, parentID, userID string) bool {
	if parentID == "" || userID == "" {
		return u.invalid("Could not remove member", "member and target are required")
	}

	token := "remove-member-" + parentID + "-" + userID
	u.tokens.begin(token)
	defer u.tokens.end(token)

	if _, err := u.api.Delete(ctx, api.MemberPath(string(parent), parentID, userID)); err != nil {
		return u.failed("Could not remove member", err)
	}

	u.notify.Success("Member removed", "Membership has been updated.")
	u.RefreshAll(ctx)
	return true
}

// ChangeMemberRole updates a member's role within a team or department.
func (u *Usecase) ChangeMemberRole(ctx context.Context, parent entities.MemberParent, parentID, userID string, role entities.MemberRole) bool {
	if parentID == "" || userID == "" {
		return u.invalid("Could not change role", "member and target are required")
	}

	token := "edit-member-" + parentID + "-" + userID
	u.tokens.begin(token)
	defer u.tokens.end(token)

	body := api.MemberRoleRequest{Role: mapper.WireRole(role)}
	if _, err := u.api.Put(ctx, api.MemberPath(string(parent), parentID, userID), body); err != nil {
		return u.failed("Could not change role", err)
	}

	u.notify.Success("Role updated", "Membership has been updated.")
	u.RefreshAll(ctx)
	return true
}
