package user

import "time"

type Role string

const (
	// RoleUser is the tier every account starts at.
	RoleUser Role = "USER"
	// RoleAll is the elevated tier unlocked by companion-posting history.
	RoleAll Role = "ALL"
)

type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
)

type User struct {
	ID              uint64    `json:"id" gorm:"primaryKey"`
	Email           string    `json:"email" gorm:"unique;not null"`
	Name            string    `json:"name" gorm:"not null"`
	Gender          Gender    `json:"gender" gorm:"type:varchar(10)"`
	ProfileImageURL *string   `json:"profile_image_url,omitempty"`
	Role            Role      `json:"role" gorm:"type:varchar(10);not null;default:'USER'"`
	CreatedAt       time.Time `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

type ProfileResponse struct {
	Email           string  `json:"email"`
	Name            string  `json:"name"`
	Gender          Gender  `json:"gender"`
	ProfileImageURL *string `json:"profileImageUrl"`
	Role            Role    `json:"role"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
