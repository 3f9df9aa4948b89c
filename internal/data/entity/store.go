package entity

import (
	"github.com/google/uuid"
)

// Store is owned by exactly one STORE_OWNER user. The owner's role is
// validated at creation time only.
type Store struct {
	Base
	Name    string    `db:"name"`
	Email   string    `db:"email"`
	Address string    `db:"address"`
	OwnerID uuid.UUID `db:"owner_id"`
}
