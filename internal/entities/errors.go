// Package entities contains core business entities and errors.
package entities

import "errors"

var (
	// ErrUserNotFound is returned when a user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrTeamNotFound signals missing team.
	ErrTeamNotFound = errors.New("team not found")
	// ErrDepartmentNotFound signals missing department.
	ErrDepartmentNotFound = errors.New("department not found")
	// ErrEventNotFound signals missing calendar event.
	ErrEventNotFound = errors.New("event not found")
	// ErrRequestNotFound signals missing pending event request.
	ErrRequestNotFound = errors.New("event request not found")
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrEmailExists signals user email conflict.
	ErrEmailExists = errors.New("email exists")
	// ErrMemberExists signals a duplicate member within one team or department.
	ErrMemberExists = errors.New("member exists")
	// ErrMemberNotFound signals the user is not a member of the team or department.
	ErrMemberNotFound = errors.New("member not found")
	// ErrAlreadyVerified signals a verify attempt on a verified user.
	ErrAlreadyVerified = errors.New("user already verified")
)
