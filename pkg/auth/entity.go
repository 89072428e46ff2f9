package auth

import (
	"time"

	"github.com/google/uuid"
)

// User is an operator account. Every authenticated caller may manage job
// roles and scan records; there is no role hierarchy.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
