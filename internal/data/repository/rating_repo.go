package repository

import (
	"context"
	"fmt"

	"store-rating/internal/data/entity"
	"store-rating/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type RatingRepository interface {
	// Upsert creates the rating or overwrites the existing value for the
	// (user, store) pair; the unique index resolves concurrent submissions
	Upsert(ctx context.Context, rating *entity.Rating) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Rating, error)
	FindByUserAndStore(ctx context.Context, userID, storeID uuid.UUID) (*entity.Rating, error)
	FindByStoreID(ctx context.Context, storeID uuid.UUID) ([]*entity.Rating, error)
	CountAll(ctx context.Context) (int64, error)
	DeleteOwn(ctx context.Context, id, userID uuid.UUID) error

	// Business queries
	GetStoreAverageRating(ctx context.Context, storeID uuid.UUID) (float64, error)
}

type ratingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRatingRepository(db database.PgxIface, log *zap.Logger) RatingRepository {
	return &ratingRepository{
		db:  db,
		log: log.With(zap.String("repository", "rating")),
	}
}

func (r *ratingRepository) Upsert(ctx context.Context, rating *entity.Rating) error {
	query := `
		INSERT INTO ratings (id, user_id, store_id, rating, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id, store_id)
		DO UPDATE SET rating = EXCLUDED.rating, updated_at = EXCLUDED.updated_at
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		rating.ID,
		rating.UserID,
		rating.StoreID,
		rating.Rating,
		rating.CreatedAt,
		rating.UpdatedAt,
	).Scan(&rating.ID, &rating.CreatedAt)

	if err != nil {
		r.log.Error("Failed to upsert rating",
			zap.Error(err),
			zap.String("user_id", rating.UserID.String()),
			zap.String("store_id", rating.StoreID.String()),
		)
		return fmt.Errorf("upsert rating for store %s by user %s: %w",
			rating.StoreID.String(), rating.UserID.String(), err)
	}

	return nil
}

func (r *ratingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Rating, error) {
	query := `
		SELECT id, user_id, store_id, rating, created_at, updated_at
		FROM ratings
		WHERE id = $1
	`

	var rating entity.Rating
	err := r.db.QueryRow(ctx, query, id).Scan(
		&rating.ID,
		&rating.UserID,
		&rating.StoreID,
		&rating.Rating,
		&rating.CreatedAt,
		&rating.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find rating by ID",
			zap.Error(err),
			zap.String("rating_id", id.String()),
		)
		return nil, fmt.Errorf("find rating by ID %s: %w", id.String(), err)
	}

	return &rating, nil
}

func (r *ratingRepository) FindByUserAndStore(ctx context.Context, userID, storeID uuid.UUID) (*entity.Rating, error) {
	query := `
		SELECT id, user_id, store_id, rating, created_at, updated_at
		FROM ratings
		WHERE user_id = $1 AND store_id = $2
		LIMIT 1
	`

	var rating entity.Rating
	err := r.db.QueryRow(ctx, query, userID, storeID).Scan(
		&rating.ID,
		&rating.UserID,
		&rating.StoreID,
		&rating.Rating,
		&rating.CreatedAt,
		&rating.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find rating by user and store",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("store_id", storeID.String()),
		)
		return nil, fmt.Errorf("find rating by user %s and store %s: %w",
			userID.String(), storeID.String(), err)
	}

	return &rating, nil
}

func (r *ratingRepository) FindByStoreID(ctx context.Context, storeID uuid.UUID) ([]*entity.Rating, error) {
	query := `
		SELECT id, user_id, store_id, rating, created_at, updated_at
		FROM ratings
		WHERE store_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, storeID)
	if err != nil {
		r.log.Error("Failed to find ratings by store ID",
			zap.Error(err),
			zap.String("store_id", storeID.String()),
		)
		return nil, fmt.Errorf("find ratings by store ID %s: %w", storeID.String(), err)
	}
	defer rows.Close()

	var ratings []*entity.Rating
	for rows.Next() {
		var rating entity.Rating
		err := rows.Scan(
			&rating.ID,
			&rating.UserID,
			&rating.StoreID,
			&rating.Rating,
			&rating.CreatedAt,
			&rating.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan rating row", zap.Error(err))
			return nil, fmt.Errorf("scan rating row: %w", err)
		}
		ratings = append(ratings, &rating)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate ratings rows: %w", err)
	}

	return ratings, nil
}

func (r *ratingRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM ratings`

	var count int64
	err := r.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count ratings", zap.Error(err))
		return 0, fmt.Errorf("count all ratings: %w", err)
	}

	return count, nil
}

// DeleteOwn removes a rating only when it belongs to the given user.
// A non-matching id or a foreign record is a no-op, not an error.
func (r *ratingRepository) DeleteOwn(ctx context.Context, id, userID uuid.UUID) error {
	query := `DELETE FROM ratings WHERE id = $1 AND user_id = $2`

	result, err := r.db.Exec(ctx, query, id, userID)
	if err != nil {
		r.log.Error("Failed to delete rating",
			zap.Error(err),
			zap.String("rating_id", id.String()),
			zap.String("user_id", userID.String()),
		)
		return fmt.Errorf("delete rating %s: %w", id.String(), err)
	}

	if result.RowsAffected() > 0 {
		r.log.Info("Rating deleted",
			zap.String("rating_id", id.String()),
			zap.String("user_id", userID.String()))
	}

	return nil
}

func (r *ratingRepository) GetStoreAverageRating(ctx context.Context, storeID uuid.UUID) (float64, error) {
	query := `SELECT COALESCE(AVG(rating), 0) FROM ratings WHERE store_id = $1`

	var avgRating float64
	err := r.db.QueryRow(ctx, query, storeID).Scan(&avgRating)
	if err != nil {
		r.log.Error("Failed to get store average rating",
			zap.Error(err),
			zap.String("store_id", storeID.String()),
		)
		return 0, fmt.Errorf("get store average rating for %s: %w", storeID.String(), err)
	}

	return avgRating, nil
}
