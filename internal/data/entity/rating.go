package entity

import (
	"github.com/google/uuid"
)

// Rating holds at most one record per (user, store) pair; a second
// submission overwrites the value instead of duplicating.
type Rating struct {
	Base
	UserID  uuid.UUID `db:"user_id"`
	StoreID uuid.UUID `db:"store_id"`
	Rating  int       `db:"rating"` // 1-5
}
