package repository

import (
	"errors"

	"store-rating/pkg/database"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

type Repository struct {
	User   UserRepository
	Store  StoreRepository
	Rating RatingRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:   NewUserRepository(db, log),
		Store:  NewStoreRepository(db, log),
		Rating: NewRatingRepository(db, log),
	}
}

// IsUniqueViolation reports whether err is a Postgres unique constraint
// violation (code 23505). Services use it to tell a conflicting insert
// apart from an infrastructure failure.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
