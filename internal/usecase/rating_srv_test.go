package usecase

import (
	"context"
	"testing"

	"store-rating/internal/data/entity"
	"store-rating/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestSubmitRating(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo()
	svc := NewRatingService(repo, zap.NewNop())

	owner := seedUser(repo, "Margaret Elizabeth Thompson", "margaret@example.com", "Secret@123", entity.RoleStoreOwner)
	user := seedUser(repo, "Jonathan Maxwell Harrington", "jonathan@example.com", "Secret@123", entity.RoleUser)
	store := seedStore(repo, "Corner Grocery", "grocery@example.com", owner.ID)

	t.Run("Creates a new rating", func(t *testing.T) {
		resp, err := svc.SubmitRating(ctx, user.ID, store.ID.String(), &request.SubmitRatingRequest{Rating: 4})
		assert.NoError(t, err)
		assert.Equal(t, 4, resp.Rating)
		assert.Equal(t, user.Name, resp.UserName)

		count, _ := repo.Rating.CountAll(ctx)
		assert.Equal(t, int64(1), count)
	})

	t.Run("Second submission overwrites instead of duplicating", func(t *testing.T) {
		resp, err := svc.SubmitRating(ctx, user.ID, store.ID.String(), &request.SubmitRatingRequest{Rating: 2})
		assert.NoError(t, err)
		assert.Equal(t, 2, resp.Rating)

		count, _ := repo.Rating.CountAll(ctx)
		assert.Equal(t, int64(1), count)

		stored, _ := repo.Rating.FindByUserAndStore(ctx, user.ID, store.ID)
		assert.Equal(t, 2, stored.Rating)
	})

	t.Run("Unknown store", func(t *testing.T) {
		_, err := svc.SubmitRating(ctx, user.ID, uuid.NewString(), &request.SubmitRatingRequest{Rating: 3})
		assert.ErrorContains(t, err, "store not found")
	})

	t.Run("Out of range value", func(t *testing.T) {
		_, err := svc.SubmitRating(ctx, user.ID, store.ID.String(), &request.SubmitRatingRequest{Rating: 6})
		assert.ErrorContains(t, err, "validation failed")
	})
}

func TestGetStoreRatings(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo()
	svc := NewRatingService(repo, zap.NewNop())

	owner := seedUser(repo, "Margaret Elizabeth Thompson", "margaret@example.com", "Secret@123", entity.RoleStoreOwner)
	rater := seedUser(repo, "Jonathan Maxwell Harrington", "jonathan@example.com", "Secret@123", entity.RoleUser)
	later := seedUser(repo, "Benjamin Theodore Caldwell", "benjamin@example.com", "Secret@123", entity.RoleUser)
	store := seedStore(repo, "Corner Grocery", "grocery@example.com", owner.ID)
	seedRating(repo, rater.ID, store.ID, 5)
	seedRating(repo, later.ID, store.ID, 3)

	t.Run("Newest first with rater names", func(t *testing.T) {
		ratings, err := svc.GetStoreRatings(ctx, store.ID.String())
		assert.NoError(t, err)
		assert.Len(t, ratings, 2)
		assert.Equal(t, later.Name, ratings[0].UserName)
		assert.Equal(t, 3, ratings[0].Rating)
		assert.Equal(t, rater.Name, ratings[1].UserName)
		assert.Equal(t, 5, ratings[1].Rating)
	})

	t.Run("Store without ratings yields empty list", func(t *testing.T) {
		other := seedStore(repo, "Quiet Bookshop", "books@example.com", owner.ID)
		ratings, err := svc.GetStoreRatings(ctx, other.ID.String())
		assert.NoError(t, err)
		assert.Empty(t, ratings)
	})
}

func TestDeleteRating(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo()
	svc := NewRatingService(repo, zap.NewNop())

	owner := seedUser(repo, "Margaret Elizabeth Thompson", "margaret@example.com", "Secret@123", entity.RoleStoreOwner)
	rater := seedUser(repo, "Jonathan Maxwell Harrington", "jonathan@example.com", "Secret@123", entity.RoleUser)
	intruder := seedUser(repo, "Benjamin Theodore Caldwell", "benjamin@example.com", "Secret@123", entity.RoleUser)
	store := seedStore(repo, "Corner Grocery", "grocery@example.com", owner.ID)
	rating := seedRating(repo, rater.ID, store.ID, 5)

	t.Run("Another user's rating is a silent no-op", func(t *testing.T) {
		err := svc.DeleteRating(ctx, rating.ID.String(), intruder.ID)
		assert.NoError(t, err)

		remaining, _ := repo.Rating.FindByID(ctx, rating.ID)
		assert.NotNil(t, remaining)
	})

	t.Run("Owner of the rating removes it", func(t *testing.T) {
		err := svc.DeleteRating(ctx, rating.ID.String(), rater.ID)
		assert.NoError(t, err)

		remaining, _ := repo.Rating.FindByID(ctx, rating.ID)
		assert.Nil(t, remaining)
	})

	t.Run("Unknown rating is a silent no-op", func(t *testing.T) {
		err := svc.DeleteRating(ctx, uuid.NewString(), rater.ID)
		assert.NoError(t, err)
	})

	t.Run("Invalid ID format", func(t *testing.T) {
		err := svc.DeleteRating(ctx, "not-a-uuid", rater.ID)
		assert.ErrorContains(t, err, "invalid rating ID format")
	})
}
