package member

import "time"

type Member struct {
	ID           int        `db:"member_id" json:"member_id"`
	Name         string     `db:"name" json:"name"`
	Email        string     `db:"email" json:"email"`
	PasswordHash string     `db:"password_hash" json:"-"`
	DateOfBirth  *time.Time `db:"date_of_birth" json:"date_of_birth,omitempty"`
	Gender       *string    `db:"gender" json:"gender,omitempty"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
}

type RegisterRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	DateOfBirth string `json:"date_of_birth" binding:"omitempty,isodate"`
	Gender      string `json:"gender"`
}

type RegisterResponse struct {
	Member       Member `json:"member"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// UpdateProfileRequest carries optional fields; nil means leave unchanged.
type UpdateProfileRequest struct {
	Name        *string `json:"name"`
	Email       *string `json:"email" binding:"omitempty,email"`
	DateOfBirth *string `json:"date_of_birth"`
	Gender      *string `json:"gender"`
}

// ProfileUpdate is the repository-level form of an update, with the date
// already parsed.
type ProfileUpdate struct {
	Name        *string
	Email       *string
	DateOfBirth *time.Time
	Gender      *string
}
