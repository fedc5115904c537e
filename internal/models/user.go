package models

import "time"

// Roles accepted by the registration endpoint. Admin accounts are provisioned
// out of band and never created through the public surface.
const (
	RoleCandidate = "candidate"
	RoleHR        = "hr"
	RoleCompany   = "company"
	RoleAdmin     = "admin"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// User represents a platform account keyed by the identity provider's uid.
// HR and company accounts start inactive until verified by an admin.
type User struct {
	ID         string    `bson:"_id,omitempty" json:"id"`
	UID        string    `bson:"uid" json:"uid"`
	Email      string    `bson:"email" json:"email"`
	Name       string    `bson:"name,omitempty" json:"name,omitempty"`
	Phone      string    `bson:"phone,omitempty" json:"phone,omitempty"`
	PhotoURL   string    `bson:"photoURL,omitempty" json:"photoURL,omitempty"`
	Role       string    `bson:"role,omitempty" json:"role,omitempty"`
	Status     string    `bson:"status,omitempty" json:"status,omitempty"`
	IsVerified bool      `bson:"isVerified" json:"isVerified"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time `bson:"updatedAt" json:"updatedAt"`
}

// StatusForRole maps a registration role to its initial activation status:
// candidates are active immediately, everyone else waits for verification.
func StatusForRole(role string) string {
	if role == RoleCandidate {
		return StatusActive
	}
	return StatusInactive
}
