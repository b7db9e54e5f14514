package policy

import (
	"testing"

	"adboard/internal/domain/entity"
	domainerrors "adboard/internal/domain/errors"
	"adboard/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestEvaluate(t *testing.T) {
	owner := &entity.User{ID: 1, Username: "owner@example.com", Role: entity.RoleUser}
	other := &entity.User{ID: 2, Username: "other@example.com", Role: entity.RoleUser}
	admin := &entity.User{ID: 3, Username: "admin@example.com", Role: entity.RoleAdmin}

	tests := []struct {
		name        string
		actor       *entity.User
		requirement Requirement
		want        Decision
	}{
		{"owner passes", owner, RequireOwnerOrAdmin, Decision{Allowed: true, Reason: ReasonOwner}},
		{"admin passes", admin, RequireOwnerOrAdmin, Decision{Allowed: true, Reason: ReasonAdmin}},
		{"other user denied", other, RequireOwnerOrAdmin, Decision{Allowed: false, Reason: ReasonNotOwner}},
		{"nil actor denied", nil, RequireOwnerOrAdmin, Decision{Allowed: false, Reason: ReasonUnauthenticated}},
		{"owner denied when admin required", owner, RequireAdmin, Decision{Allowed: false, Reason: ReasonNotAdmin}},
		{"admin passes admin requirement", admin, RequireAdmin, Decision{Allowed: true, Reason: ReasonAdmin}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Evaluate(tt.actor, owner.ID, tt.requirement))
		})
	}
}

func TestAuthorize_Errors(t *testing.T) {
	owner := &entity.User{ID: 1, Role: entity.RoleUser}
	other := &entity.User{ID: 2, Role: entity.RoleUser}

	assert.NoError(t, Authorize(owner, owner.ID, RequireOwnerOrAdmin))

	err := Authorize(other, owner.ID, RequireOwnerOrAdmin)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))

	err = Authorize(nil, owner.ID, RequireOwnerOrAdmin)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
}
