package repository

import (
	"context"
	"fmt"
	"strings"

	"store-rating/internal/data/entity"
	"store-rating/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type StoreRepository interface {
	Create(ctx context.Context, store *entity.Store) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Store, error)
	FindByEmail(ctx context.Context, email string) (*entity.Store, error)
	FindByOwnerID(ctx context.Context, ownerID uuid.UUID) (*entity.Store, error)
	FindAll(ctx context.Context, search, sortField, sortDir string) ([]*entity.Store, error)
	CountAll(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

var storeSortColumns = map[string]string{
	"name":       "name",
	"email":      "email",
	"address":    "address",
	"created_at": "created_at",
}

type storeRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewStoreRepository(db database.PgxIface, log *zap.Logger) StoreRepository {
	return &storeRepository{
		db:  db,
		log: log.With(zap.String("repository", "store")),
	}
}

func (sr *storeRepository) Create(ctx context.Context, store *entity.Store) error {
	query := `
		INSERT INTO stores (id, name, email, address, owner_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := sr.db.Exec(ctx, query,
		store.ID,
		store.Name,
		store.Email,
		store.Address,
		store.OwnerID,
		store.CreatedAt,
		store.UpdatedAt,
	)

	if err != nil {
		sr.log.Error("Failed to create store",
			zap.Error(err),
			zap.String("email", store.Email),
			zap.String("owner_id", store.OwnerID.String()),
		)
		return fmt.Errorf("create store %s: %w", store.Email, err)
	}

	return nil
}

func (sr *storeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Store, error) {
	query := `
		SELECT id, name, email, address, owner_id, created_at, updated_at
		FROM stores
		WHERE id = $1
	`

	var store entity.Store
	err := sr.db.QueryRow(ctx, query, id).Scan(
		&store.ID,
		&store.Name,
		&store.Email,
		&store.Address,
		&store.OwnerID,
		&store.CreatedAt,
		&store.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		sr.log.Error("Failed to find store by ID",
			zap.Error(err),
			zap.String("store_id", id.String()),
		)
		return nil, fmt.Errorf("find store by ID %s: %w", id.String(), err)
	}

	return &store, nil
}

func (sr *storeRepository) FindByEmail(ctx context.Context, email string) (*entity.Store, error) {
	query := `
		SELECT id, name, email, address, owner_id, created_at, updated_at
		FROM stores
		WHERE email = $1
	`

	var store entity.Store
	err := sr.db.QueryRow(ctx, query, email).Scan(
		&store.ID,
		&store.Name,
		&store.Email,
		&store.Address,
		&store.OwnerID,
		&store.CreatedAt,
		&store.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		sr.log.Error("Failed to find store by email",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("find store by email %s: %w", email, err)
	}

	return &store, nil
}

// FindByOwnerID returns the single store owned by the given user
func (sr *storeRepository) FindByOwnerID(ctx context.Context, ownerID uuid.UUID) (*entity.Store, error) {
	query := `
		SELECT id, name, email, address, owner_id, created_at, updated_at
		FROM stores
		WHERE owner_id = $1
		LIMIT 1
	`

	var store entity.Store
	err := sr.db.QueryRow(ctx, query, ownerID).Scan(
		&store.ID,
		&store.Name,
		&store.Email,
		&store.Address,
		&store.OwnerID,
		&store.CreatedAt,
		&store.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		sr.log.Error("Failed to find store by owner",
			zap.Error(err),
			zap.String("owner_id", ownerID.String()),
		)
		return nil, fmt.Errorf("find store by owner %s: %w", ownerID.String(), err)
	}

	return &store, nil
}

func (sr *storeRepository) FindAll(ctx context.Context, search, sortField, sortDir string) ([]*entity.Store, error) {
	query := `
		SELECT id, name, email, address, owner_id, created_at, updated_at
		FROM stores
	`

	var conditions []string
	var args []any

	if search != "" {
		args = append(args, "%"+search+"%")
		placeholder := fmt.Sprintf("$%d", len(args))
		conditions = append(conditions, fmt.Sprintf(
			"(name ILIKE %s OR address ILIKE %s)", placeholder, placeholder))
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	query += " ORDER BY " + orderClause(storeSortColumns, sortField, sortDir)

	rows, err := sr.db.Query(ctx, query, args...)
	if err != nil {
		sr.log.Error("Failed to get all stores",
			zap.Error(err),
			zap.String("search", search),
		)
		return nil, fmt.Errorf("find all stores: %w", err)
	}
	defer rows.Close()

	var stores []*entity.Store
	for rows.Next() {
		var store entity.Store
		err := rows.Scan(
			&store.ID,
			&store.Name,
			&store.Email,
			&store.Address,
			&store.OwnerID,
			&store.CreatedAt,
			&store.UpdatedAt,
		)
		if err != nil {
			sr.log.Error("Failed to scan store row", zap.Error(err))
			return nil, fmt.Errorf("scan store row: %w", err)
		}
		stores = append(stores, &store)
	}

	if err := rows.Err(); err != nil {
		sr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate stores rows: %w", err)
	}

	return stores, nil
}

func (sr *storeRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM stores`

	var count int64
	err := sr.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		sr.log.Error("Failed to count stores", zap.Error(err))
		return 0, fmt.Errorf("count all stores: %w", err)
	}

	return count, nil
}

func (sr *storeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM stores WHERE id = $1`

	result, err := sr.db.Exec(ctx, query, id)
	if err != nil {
		sr.log.Error("Failed to delete store",
			zap.Error(err),
			zap.String("store_id", id.String()),
		)
		return fmt.Errorf("delete store %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("store %s not found", id.String())
	}

	sr.log.Info("Store deleted", zap.String("store_id", id.String()))
	return nil
}
