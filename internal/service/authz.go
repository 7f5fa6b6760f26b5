package service

import (
	"fmt"

	"projectportal/internal/domain"
)

// Action enumerates everything a principal can ask of the portal.
type Action string

const (
	ActionViewProject      Action = "view-project"
	ActionCreateProject    Action = "create-project"
	ActionEditProject      Action = "edit-project"
	ActionDeleteProject    Action = "delete-project"
	ActionReassignHead     Action = "reassign-head"
	ActionEditSubmission   Action = "edit-submission"
	ActionDeleteSubmission Action = "delete-submission"
	ActionReviewMembership Action = "review-membership"
	ActionManageAccounts   Action = "manage-accounts"
	ActionDeleteAccount    Action = "delete-account"
)

// Resource describes the target of an action with just enough context
// for the decision: who owns it (project head or submission author),
// what role the owner holds, and, for account actions, which account is
// being acted on.
type Resource struct {
	OwnerID         int32
	OwnerRole       domain.Role
	TargetAccountID int32
}

// Authorize is the single access-control decision function. It is pure:
// no I/O, no clock, no store. A nil error means allow; otherwise the
// error wraps domain.ErrForbidden with the denial reason.
func Authorize(principal *domain.Principal, res Resource, action Action) error {
	if principal == nil {
		return fmt.Errorf("%w: not logged in", domain.ErrForbidden)
	}

	switch action {
	case ActionViewProject:
		return nil

	case ActionCreateProject:
		if principal.Role == domain.RoleAdmin || principal.Role == domain.RoleLecturer {
			return nil
		}
		return fmt.Errorf("%w: insufficient role", domain.ErrForbidden)

	case ActionEditProject, ActionDeleteProject:
		if principal.Role == domain.RoleAdmin {
			return nil
		}
		if principal.AccountID == res.OwnerID {
			return nil
		}
		return fmt.Errorf("%w: only the project head may %s", domain.ErrForbidden, action)

	case ActionReassignHead:
		if principal.Role == domain.RoleAdmin {
			return nil
		}
		return fmt.Errorf("%w: insufficient role", domain.ErrForbidden)

	case ActionEditSubmission:
		// Author only. Admins may delete a submission but never edit
		// someone else's words.
		if principal.AccountID == res.OwnerID {
			return nil
		}
		return fmt.Errorf("%w: only the author may edit a submission", domain.ErrForbidden)

	case ActionDeleteSubmission:
		if principal.Role == domain.RoleAdmin {
			return nil
		}
		if principal.AccountID == res.OwnerID {
			return nil
		}
		if principal.Role == domain.RoleLecturer && res.OwnerRole == domain.RoleStudent {
			return nil
		}
		return fmt.Errorf("%w: insufficient role", domain.ErrForbidden)

	case ActionReviewMembership:
		if principal.Role == domain.RoleAdmin {
			return nil
		}
		if principal.Role == domain.RoleLecturer && principal.AccountID == res.OwnerID {
			return nil
		}
		return fmt.Errorf("%w: only the project head or an admin may review requests", domain.ErrForbidden)

	case ActionManageAccounts:
		if principal.Role == domain.RoleAdmin {
			return nil
		}
		return fmt.Errorf("%w: insufficient role", domain.ErrForbidden)

	case ActionDeleteAccount:
		if principal.Role != domain.RoleAdmin {
			return fmt.Errorf("%w: insufficient role", domain.ErrForbidden)
		}
		if principal.AccountID == res.TargetAccountID {
			return fmt.Errorf("%w: admins may not delete their own account", domain.ErrForbidden)
		}
		return nil
	}

	return fmt.Errorf("%w: insufficient role", domain.ErrForbidden)
}
