package domain

// Role is the role of the acting principal, supplied by the identity provider
type Role string

const (
	RoleClient Role = "client"
	RoleMaster Role = "master"
	RoleAdmin  Role = "admin"
)

// Actor is the authenticated principal performing an operation
type Actor struct {
	ID   int64
	Role Role
}

// IsClient returns true for client actors
func (a Actor) IsClient() bool { return a.Role == RoleClient }

// IsMaster returns true for master actors
func (a Actor) IsMaster() bool { return a.Role == RoleMaster }

// IsAdmin returns true for admin actors
func (a Actor) IsAdmin() bool { return a.Role == RoleAdmin }

// ValidRole reports whether r is a known role.
func ValidRole(r Role) bool {
	switch r {
	case RoleClient, RoleMaster, RoleAdmin:
		return true
	default:
		return false
	}
}

// CanConfirm: only the assigned master confirms a booking.
func (a Actor) CanConfirm(b *Booking) bool {
	return a.IsMaster() && a.ID == b.MasterID
}

// CanComplete: only the assigned master completes a booking.
func (a Actor) CanComplete(b *Booking) bool {
	return a.IsMaster() && a.ID == b.MasterID
}

// CanCancel: the client who owns the booking, the assigned master, or any admin.
func (a Actor) CanCancel(b *Booking) bool {
	switch {
	case a.IsAdmin():
		return true
	case a.IsClient() && a.ID == b.ClientID:
		return true
	case a.IsMaster() && a.ID == b.MasterID:
		return true
	default:
		return false
	}
}

// CanView: booking participants and admins. A participant is matched by
// role and ID together; a bare ID match under another role grants nothing.
func (a Actor) CanView(b *Booking) bool {
	switch {
	case a.IsAdmin():
		return true
	case a.IsClient() && a.ID == b.ClientID:
		return true
	case a.IsMaster() && a.ID == b.MasterID:
		return true
	default:
		return false
	}
}

// CancelledBy returns the actor label recorded in cancellation notes.
func (a Actor) CancelledBy(b *Booking) string {
	switch {
	case a.ID == b.ClientID && a.IsClient():
		return "client"
	case a.ID == b.MasterID && a.IsMaster():
		return "master"
	default:
		return "admin"
	}
}
