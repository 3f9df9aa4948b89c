package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"store-rating/internal/data/entity"
	"store-rating/internal/data/repository"
	"store-rating/pkg/utils"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

// In-memory repository fakes shared by the service tests. They honor the
// same contracts as the SQL implementations: nil without error on a miss,
// a pgconn unique-violation error on conflicting inserts, one rating per
// (user, store) pair, newest-first rating listings, average 0 when no
// ratings exist.

func uniqueViolation(constraint string) error {
	return &pgconn.PgError{
		Code:           "23505",
		Message:        "duplicate key value violates unique constraint",
		ConstraintName: constraint,
	}
}

type fakeUserRepo struct {
	users []*entity.User
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	for _, u := range f.users {
		if u.Email == user.Email {
			return uniqueViolation("users_email_key")
		}
	}
	f.users = append(f.users, user)
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindAll(_ context.Context, search, role, sortField, sortDir string) ([]*entity.User, error) {
	var out []*entity.User
	needle := strings.ToLower(search)
	for _, u := range f.users {
		if search != "" &&
			!strings.Contains(strings.ToLower(u.Name), needle) &&
			!strings.Contains(strings.ToLower(u.Email), needle) &&
			!strings.Contains(strings.ToLower(u.Address), needle) {
			continue
		}
		if role != "" && string(u.Role) != role {
			continue
		}
		out = append(out, u)
	}

	if sortField == "name" {
		sort.Slice(out, func(i, j int) bool {
			if sortDir == "desc" {
				return out[i].Name > out[j].Name
			}
			return out[i].Name < out[j].Name
		})
	}

	return out, nil
}

func (f *fakeUserRepo) CountAll(_ context.Context) (int64, error) {
	return int64(len(f.users)), nil
}

func (f *fakeUserRepo) UpdatePassword(_ context.Context, id uuid.UUID, passwordHash string) error {
	for _, u := range f.users {
		if u.ID == id {
			u.PasswordHash = passwordHash
			return nil
		}
	}
	return fmt.Errorf("user %s not found", id.String())
}

type fakeStoreRepo struct {
	stores []*entity.Store
}

func (f *fakeStoreRepo) Create(_ context.Context, store *entity.Store) error {
	for _, s := range f.stores {
		if s.Email == store.Email {
			return uniqueViolation("stores_email_key")
		}
	}
	f.stores = append(f.stores, store)
	return nil
}

func (f *fakeStoreRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Store, error) {
	for _, s := range f.stores {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, nil
}

func (f *fakeStoreRepo) FindByEmail(_ context.Context, email string) (*entity.Store, error) {
	for _, s := range f.stores {
		if s.Email == email {
			return s, nil
		}
	}
	return nil, nil
}

func (f *fakeStoreRepo) FindByOwnerID(_ context.Context, ownerID uuid.UUID) (*entity.Store, error) {
	for _, s := range f.stores {
		if s.OwnerID == ownerID {
			return s, nil
		}
	}
	return nil, nil
}

func (f *fakeStoreRepo) FindAll(_ context.Context, search, sortField, sortDir string) ([]*entity.Store, error) {
	var out []*entity.Store
	needle := strings.ToLower(search)
	for _, s := range f.stores {
		if search != "" &&
			!strings.Contains(strings.ToLower(s.Name), needle) &&
			!strings.Contains(strings.ToLower(s.Address), needle) {
			continue
		}
		out = append(out, s)
	}

	if sortField == "name" {
		sort.Slice(out, func(i, j int) bool {
			if sortDir == "desc" {
				return out[i].Name > out[j].Name
			}
			return out[i].Name < out[j].Name
		})
	}

	return out, nil
}

func (f *fakeStoreRepo) CountAll(_ context.Context) (int64, error) {
	return int64(len(f.stores)), nil
}

func (f *fakeStoreRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, s := range f.stores {
		if s.ID == id {
			f.stores = append(f.stores[:i], f.stores[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("store %s not found", id.String())
}

type fakeRatingRepo struct {
	ratings []*entity.Rating
}

func (f *fakeRatingRepo) Upsert(_ context.Context, rating *entity.Rating) error {
	for _, r := range f.ratings {
		if r.UserID == rating.UserID && r.StoreID == rating.StoreID {
			r.Rating = rating.Rating
			r.UpdatedAt = rating.UpdatedAt
			// Mirror the RETURNING clause: the caller sees the original row
			rating.ID = r.ID
			rating.CreatedAt = r.CreatedAt
			return nil
		}
	}
	f.ratings = append(f.ratings, rating)
	return nil
}

func (f *fakeRatingRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Rating, error) {
	for _, r := range f.ratings {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeRatingRepo) FindByUserAndStore(_ context.Context, userID, storeID uuid.UUID) (*entity.Rating, error) {
	for _, r := range f.ratings {
		if r.UserID == userID && r.StoreID == storeID {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeRatingRepo) FindByStoreID(_ context.Context, storeID uuid.UUID) ([]*entity.Rating, error) {
	var out []*entity.Rating
	for _, r := range f.ratings {
		if r.StoreID == storeID {
			out = append(out, r)
		}
	}
	// Newest first, like the ORDER BY created_at DESC listing
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (f *fakeRatingRepo) CountAll(_ context.Context) (int64, error) {
	return int64(len(f.ratings)), nil
}

func (f *fakeRatingRepo) DeleteOwn(_ context.Context, id, userID uuid.UUID) error {
	for i, r := range f.ratings {
		if r.ID == id && r.UserID == userID {
			f.ratings = append(f.ratings[:i], f.ratings[i+1:]...)
			return nil
		}
	}
	// Foreign or unknown rating is a silent no-op
	return nil
}

func (f *fakeRatingRepo) GetStoreAverageRating(_ context.Context, storeID uuid.UUID) (float64, error) {
	sum, count := 0, 0
	for _, r := range f.ratings {
		if r.StoreID == storeID {
			sum += r.Rating
			count++
		}
	}
	if count == 0 {
		return 0, nil
	}
	return float64(sum) / float64(count), nil
}

// brokenUserRepo and brokenStoreRepo fail every insert with the given
// error, standing in for a database outage.
type brokenUserRepo struct {
	repository.UserRepository
	err error
}

func (r *brokenUserRepo) Create(context.Context, *entity.User) error { return r.err }

type brokenStoreRepo struct {
	repository.StoreRepository
	err error
}

func (r *brokenStoreRepo) Create(context.Context, *entity.Store) error { return r.err }

func newTestRepo() *repository.Repository {
	return &repository.Repository{
		User:   &fakeUserRepo{},
		Store:  &fakeStoreRepo{},
		Rating: &fakeRatingRepo{},
	}
}

var seedClock = time.Now()

// seedTime hands out strictly increasing timestamps so listings have a
// deterministic newest-first order
func seedTime() time.Time {
	seedClock = seedClock.Add(time.Second)
	return seedClock
}

func testConfig() *utils.Config {
	return &utils.Config{
		JWT: utils.JWTConfig{Secret: "test-secret-key", ExpiryHours: 1},
	}
}

func seedUser(repo *repository.Repository, name, email, password string, role entity.UserRole) *entity.User {
	hash, _ := utils.HashPassword(password)
	now := time.Now()
	user := &entity.User{
		Base:         entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Address:      "12 Test Street",
		Role:         role,
	}
	repo.User.Create(context.Background(), user)
	return user
}

func seedStore(repo *repository.Repository, name, email string, ownerID uuid.UUID) *entity.Store {
	now := time.Now()
	store := &entity.Store{
		Base:    entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Name:    name,
		Email:   email,
		Address: "99 Market Square",
		OwnerID: ownerID,
	}
	repo.Store.Create(context.Background(), store)
	return store
}

func seedRating(repo *repository.Repository, userID, storeID uuid.UUID, value int) *entity.Rating {
	now := seedTime()
	rating := &entity.Rating{
		Base:    entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		UserID:  userID,
		StoreID: storeID,
		Rating:  value,
	}
	repo.Rating.Upsert(context.Background(), rating)
	return rating
}
