package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidRole(t *testing.T) {
	assert.True(t, ValidRole(RoleClient))
	assert.True(t, ValidRole(RoleMaster))
	assert.True(t, ValidRole(RoleAdmin))
	assert.False(t, ValidRole("manager"))
	assert.False(t, ValidRole(""))
}

func TestActorCanConfirm(t *testing.T) {
	b := &Booking{ClientID: 10, MasterID: 20}

	assert.True(t, Actor{ID: 20, Role: RoleMaster}.CanConfirm(b))
	assert.False(t, Actor{ID: 21, Role: RoleMaster}.CanConfirm(b), "other master")
	assert.False(t, Actor{ID: 10, Role: RoleClient}.CanConfirm(b), "client")
	assert.False(t, Actor{ID: 1, Role: RoleAdmin}.CanConfirm(b), "admin does not confirm on master's behalf")
	assert.False(t, Actor{ID: 20, Role: RoleClient}.CanConfirm(b), "same id, wrong role")
}

func TestActorCanComplete(t *testing.T) {
	b := &Booking{ClientID: 10, MasterID: 20}

	assert.True(t, Actor{ID: 20, Role: RoleMaster}.CanComplete(b))
	assert.False(t, Actor{ID: 21, Role: RoleMaster}.CanComplete(b))
	assert.False(t, Actor{ID: 1, Role: RoleAdmin}.CanComplete(b))
}

func TestActorCanCancel(t *testing.T) {
	b := &Booking{ClientID: 10, MasterID: 20}

	assert.True(t, Actor{ID: 10, Role: RoleClient}.CanCancel(b), "owning client")
	assert.True(t, Actor{ID: 20, Role: RoleMaster}.CanCancel(b), "assigned master")
	assert.True(t, Actor{ID: 1, Role: RoleAdmin}.CanCancel(b), "any admin")
	assert.False(t, Actor{ID: 11, Role: RoleClient}.CanCancel(b), "other client")
	assert.False(t, Actor{ID: 21, Role: RoleMaster}.CanCancel(b), "other master")
}

func TestActorCanView(t *testing.T) {
	b := &Booking{ClientID: 10, MasterID: 20}

	assert.True(t, Actor{ID: 10, Role: RoleClient}.CanView(b))
	assert.True(t, Actor{ID: 20, Role: RoleMaster}.CanView(b))
	assert.True(t, Actor{ID: 1, Role: RoleAdmin}.CanView(b))
	assert.False(t, Actor{ID: 11, Role: RoleClient}.CanView(b))

	// an ID match under the wrong role is not a participant
	assert.False(t, Actor{ID: 20, Role: RoleClient}.CanView(b))
	assert.False(t, Actor{ID: 10, Role: RoleMaster}.CanView(b))
}

func TestActorCancelledBy(t *testing.T) {
	b := &Booking{ClientID: 10, MasterID: 20}

	assert.Equal(t, "client", Actor{ID: 10, Role: RoleClient}.CancelledBy(b))
	assert.Equal(t, "master", Actor{ID: 20, Role: RoleMaster}.CancelledBy(b))
	assert.Equal(t, "admin", Actor{ID: 1, Role: RoleAdmin}.CancelledBy(b))
}
