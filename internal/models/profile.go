package models

import "time"

// Profile is an employee account. Role is the permission level
// (admin/employee); JobRole is the visible work station (puesto).
type Profile struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	FullName *string `gorm:"size:100" json:"full_name"`
	Email    string  `gorm:"size:100;uniqueIndex;not null" json:"email"`

	PasswordHash string `gorm:"size:255" json:"-"`

	Role    string `gorm:"size:20;default:'employee'" json:"role"`
	JobRole string `gorm:"size:30" json:"job_role"`

	InviteAcceptedAt *time.Time `json:"invite_accepted_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
