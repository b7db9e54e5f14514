package entity

// Principal is the authenticated identity carried by an inbound request.
type Principal struct {
	Username string
	Role     Role
}

// IsZero reports whether no identity was resolved.
func (p Principal) IsZero() bool {
	return p.Username == ""
}
