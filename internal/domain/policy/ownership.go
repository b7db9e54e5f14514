// Package policy holds the ownership-authorization guard shared by every mutating operation.
package policy

import (
	"adboard/internal/domain/entity"
	domainerrors "adboard/internal/domain/errors"
	"adboard/internal/errors"
)

// Requirement states what an actor needs to mutate a resource.
type Requirement int

const (
	// RequireOwnerOrAdmin admits the resource owner and any administrator.
	RequireOwnerOrAdmin Requirement = iota
	// RequireAdmin admits administrators only.
	RequireAdmin
)

// Reason explains a guard decision.
type Reason string

const (
	ReasonOwner           Reason = "owner"
	ReasonAdmin           Reason = "admin"
	ReasonNotOwner        Reason = "not_owner"
	ReasonNotAdmin        Reason = "not_admin"
	ReasonUnauthenticated Reason = "unauthenticated"
)

// Decision is the result of evaluating a requirement.
type Decision struct {
	Allowed bool
	Reason  Reason
}

// Evaluate decides whether actor may mutate a resource owned by ownerID.
func Evaluate(actor *entity.User, ownerID int64, requirement Requirement) Decision {
	if actor == nil {
		return Decision{Allowed: false, Reason: ReasonUnauthenticated}
	}

	if actor.IsAdmin() {
		return Decision{Allowed: true, Reason: ReasonAdmin}
	}

	if requirement == RequireAdmin {
		return Decision{Allowed: false, Reason: ReasonNotAdmin}
	}

	if actor.ID == ownerID {
		return Decision{Allowed: true, Reason: ReasonOwner}
	}

	return Decision{Allowed: false, Reason: ReasonNotOwner}
}

// Authorize evaluates the requirement and converts a denial into a domain error.
func Authorize(actor *entity.User, ownerID int64, requirement Requirement) error {
	decision := Evaluate(actor, ownerID, requirement)
	if decision.Allowed {
		return nil
	}

	if decision.Reason == ReasonUnauthenticated {
		return errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	return errors.Wrapf(domainerrors.ErrForbidden, "access denied: %s", decision.Reason)
}
