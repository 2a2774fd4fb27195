package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is a founder known to the platform. Identity comes from the external
// identity service (the JWT subject); rows are created lazily on first write.
// Peers only ever see the pseudonym.
type User struct {
	ID        uuid.UUID
	Pseudonym string
	CreatedAt time.Time
	UpdatedAt time.Time
}
