package model

import "time"

// PositionMember is the role assigned to every self-registration.
// Officer positions are assigned out of band, never through the signup form.
const PositionMember = "Member"

// Member represents a registered chapter member.
// JSON tags follow the column names so listings serialize as stored rows.
type Member struct {
	ID         int       `json:"id"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Email      string    `json:"email"`
	SchoolID   string    `json:"school_id"`
	Major      string    `json:"major"`
	GradYear   int       `json:"grad_year"`
	Position   string    `json:"position"`
	DateJoined time.Time `json:"date_joined"`
}

// RegisterMemberRequest is the signup form payload.
// The form submits graduationYear as a string; the service coerces it.
type RegisterMemberRequest struct {
	FirstName      string `json:"firstName" binding:"required"`
	LastName       string `json:"lastName" binding:"required"`
	Email          string `json:"email" binding:"required,utsa_email"`
	UlsaID         string `json:"ulsaId" binding:"required,utsa_id"`
	Major          string `json:"major" binding:"required"`
	GraduationYear string `json:"graduationYear" binding:"required"`
}
