package domain

import "time"

// Role enumerates authorization levels. Roles are ordered: ADMIN satisfies
// every USER-level requirement, never the other way around.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

var roleRank = map[Role]int{
	RoleUser:  1,
	RoleAdmin: 2,
}

// Valid reports whether the role is a known value.
func (r Role) Valid() bool {
	_, ok := roleRank[r]
	return ok
}

// Satisfies reports whether the role meets the required authorization level.
// Unknown roles satisfy nothing.
func (r Role) Satisfies(required Role) bool {
	have, ok := roleRank[r]
	if !ok {
		return false
	}
	want, ok := roleRank[required]
	if !ok {
		return false
	}
	return have >= want
}

// SubjectStatus represents account lifecycle states.
type SubjectStatus string

const (
	SubjectStatusActive   SubjectStatus = "ACTIVE"
	SubjectStatusInactive SubjectStatus = "INACTIVE"
)

// Subject is the authenticated principal: a registered account. Accounts are
// provisioned out of band; this service only reads them during login.
type Subject struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Phone        string
	AvatarURL    string
	Role         Role
	Status       SubjectStatus
	Verified     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
