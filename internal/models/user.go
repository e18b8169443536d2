package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/Reivaj85/TaskManagerApplication/internal/domain"
)

// UserDTO is the public representation of a user. The password hash is never
// exposed.
type UserDTO struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
}

// UpdateUserRequest carries an optional password change. CurrentPassword is
// required whenever NewPassword is supplied.
type UpdateUserRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

func UserToDTO(u *domain.User) UserDTO {
	return UserDTO{
		ID:        u.ID(),
		Username:  u.Username().String(),
		CreatedAt: u.CreatedAt(),
	}
}
