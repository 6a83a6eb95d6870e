package store

import (
	"context"
	"testing"
	"time"

	"github.com/beatfluencer/beatfluencer-api/internal/logger"
	"github.com/beatfluencer/beatfluencer-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func newMockMongo(t *testing.T) *mtest.T {
	return mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
}

func TestMongoUserRepository(t *testing.T) {
	mt := newMockMongo(t)

	mt.Run("create", func(mt *mtest.T) {
		repo := NewMongoUserRepository(mt.DB, logger.Nop())
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		err := repo.Create(context.Background(), models.User{ID: "u-1", Email: "a@b.c"})
		require.NoError(mt, err)
	})

	mt.Run("create duplicate email", func(mt *mtest.T) {
		repo := NewMongoUserRepository(mt.DB, logger.Nop())
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "duplicate key error",
		}))

		err := repo.Create(context.Background(), models.User{ID: "u-1", Email: "a@b.c"})
		assert.ErrorIs(mt, err, ErrEmailAlreadyExists)
	})

	mt.Run("find by email", func(mt *mtest.T) {
		repo := NewMongoUserRepository(mt.DB, logger.Nop())
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.users", mtest.FirstBatch, bson.D{
			{Key: "id", Value: "u-1"},
			{Key: "email", Value: "a@b.c"},
			{Key: "role", Value: "campaign_manager"},
			{Key: "password_hash", Value: "stored"},
			{Key: "is_active", Value: true},
		}))

		user, err := repo.FindByEmail(context.Background(), "a@b.c")
		require.NoError(mt, err)
		assert.Equal(mt, "u-1", user.ID)
		assert.Equal(mt, models.RoleCampaignManager, user.Role)
		assert.Equal(mt, "stored", user.PasswordHash)
	})

	mt.Run("find by email not found", func(mt *mtest.T) {
		repo := NewMongoUserRepository(mt.DB, logger.Nop())
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.users", mtest.FirstBatch))

		_, err := repo.FindByEmail(context.Background(), "missing@b.c")
		assert.ErrorIs(mt, err, ErrUserNotFound)
	})

	mt.Run("list", func(mt *mtest.T) {
		repo := NewMongoUserRepository(mt.DB, logger.Nop())
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.users", mtest.FirstBatch,
			bson.D{{Key: "id", Value: "u-1"}},
			bson.D{{Key: "id", Value: "u-2"}},
		))

		users, err := repo.List(context.Background(), 1000)
		require.NoError(mt, err)
		require.Len(mt, users, 2)
		assert.Equal(mt, "u-2", users[1].ID)
	})

	mt.Run("update login info", func(mt *mtest.T) {
		repo := NewMongoUserRepository(mt.DB, logger.Nop())
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "n", Value: 1}, {Key: "nModified", Value: 1}})

		err := repo.UpdateLoginInfo(context.Background(), "u-1", time.Now(), "rehashed")
		require.NoError(mt, err)
	})

	mt.Run("update login info unknown user", func(mt *mtest.T) {
		repo := NewMongoUserRepository(mt.DB, logger.Nop())
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "n", Value: 0}, {Key: "nModified", Value: 0}})

		err := repo.UpdateLoginInfo(context.Background(), "u-x", time.Now(), "")
		assert.ErrorIs(mt, err, ErrUserNotFound)
	})
}

func TestMongoInfluencerRepository(t *testing.T) {
	mt := newMockMongo(t)

	mt.Run("find by id", func(mt *mtest.T) {
		repo := NewMongoInfluencerRepository(mt.DB, logger.Nop())
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.influencers", mtest.FirstBatch, bson.D{
			{Key: "id", Value: "i-1"},
			{Key: "name", Value: "Rafi"},
			{Key: "social_media_accounts", Value: bson.A{
				bson.D{{Key: "platform", Value: "youtube"}, {Key: "follower_count", Value: int64(50000)}},
			}},
		}))

		inf, err := repo.FindByID(context.Background(), "i-1")
		require.NoError(mt, err)
		assert.Equal(mt, "Rafi", inf.Name)
		require.Len(mt, inf.SocialMediaAccounts, 1)
		assert.Equal(mt, int64(50000), inf.SocialMediaAccounts[0].FollowerCount)
	})

	mt.Run("find by id not found", func(mt *mtest.T) {
		repo := NewMongoInfluencerRepository(mt.DB, logger.Nop())
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.influencers", mtest.FirstBatch))

		_, err := repo.FindByID(context.Background(), "nope")
		assert.ErrorIs(mt, err, ErrInfluencerNotFound)
	})

	mt.Run("exists by email", func(mt *mtest.T) {
		repo := NewMongoInfluencerRepository(mt.DB, logger.Nop())
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.influencers", mtest.FirstBatch, bson.D{{Key: "_id", Value: primitive.NewObjectID()}}))

		ok, err := repo.ExistsByEmail(context.Background(), "a@b.c")
		require.NoError(mt, err)
		assert.True(mt, ok)
	})

	mt.Run("exists by social url", func(mt *mtest.T) {
		repo := NewMongoInfluencerRepository(mt.DB, logger.Nop())
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.influencers", mtest.FirstBatch))

		ok, err := repo.ExistsBySocialURL(context.Background(), "https://instagram.com/nobody")
		require.NoError(mt, err)
		assert.False(mt, ok)
	})

	mt.Run("find", func(mt *mtest.T) {
		repo := NewMongoInfluencerRepository(mt.DB, logger.Nop())
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.influencers", mtest.FirstBatch,
			bson.D{{Key: "id", Value: "i-1"}, {Key: "status", Value: "published"}},
		))

		found, err := repo.Find(context.Background(), models.InfluencerFilter{Status: "published", Limit: 100})
		require.NoError(mt, err)
		require.Len(mt, found, 1)
		assert.Equal(mt, "published", found[0].Status)
	})
}

func TestMongoDocumentRepositories(t *testing.T) {
	mt := newMockMongo(t)

	mt.Run("brands", func(mt *mtest.T) {
		repo := NewMongoBrandRepository(mt.DB, logger.Nop())
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(),
			mtest.CreateCursorResponse(0, "test.brands", mtest.FirstBatch, bson.D{{Key: "id", Value: "b-1"}, {Key: "legal_name", Value: "Acme"}}),
		)

		require.NoError(mt, repo.Create(context.Background(), models.Brand{ID: "b-1", LegalName: "Acme"}))
		brands, err := repo.List(context.Background(), 1000)
		require.NoError(mt, err)
		require.Len(mt, brands, 1)
		assert.Equal(mt, "Acme", brands[0].LegalName)
	})

	mt.Run("campaigns", func(mt *mtest.T) {
		repo := NewMongoCampaignRepository(mt.DB, logger.Nop())
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.campaigns", mtest.FirstBatch))

		campaigns, err := repo.List(context.Background(), 1000)
		require.NoError(mt, err)
		assert.NotNil(mt, campaigns)
		assert.Empty(mt, campaigns)
	})
}

func TestEnsureIndexes(t *testing.T) {
	mt := newMockMongo(t)

	mt.Run("creates indexes on every collection", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(),
			mtest.CreateSuccessResponse(),
			mtest.CreateSuccessResponse(),
			mtest.CreateSuccessResponse(),
		)

		require.NoError(mt, EnsureIndexes(context.Background(), mt.DB))
	})

	mt.Run("reports failures", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 11000, Message: "E11000 duplicate key error"}),
			mtest.CreateSuccessResponse(),
			mtest.CreateSuccessResponse(),
			mtest.CreateSuccessResponse(),
		)

		err := EnsureIndexes(context.Background(), mt.DB)
		require.Error(mt, err)
		assert.Contains(mt, err.Error(), "users")
	})
}

func Test_buildInfluencerFilter(t *testing.T) {
	before := time.Date(2006, 1, 1, 0, 0, 0, 0, time.UTC)
	after := time.Date(1996, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("empty filter matches everything", func(t *testing.T) {
		assert.Equal(t, bson.M{}, buildInfluencerFilter(models.InfluencerFilter{}))
	})

	t.Run("all criteria", func(t *testing.T) {
		got := buildInfluencerFilter(models.InfluencerFilter{
			Status:     "published",
			Text:       "c++",
			Category:   "tech",
			Gender:     "male",
			Division:   "Sylhet",
			BornBefore: &before,
			BornAfter:  &after,
		})

		rx := primitive.Regex{Pattern: `c\+\+`, Options: "i"}
		want := bson.M{
			"status": "published",
			"$or": bson.A{
				bson.M{"name": rx},
				bson.M{"bio": rx},
				bson.M{"categories": rx},
				bson.M{"affiliated_brands": rx},
			},
			"categories":    "tech",
			"gender":        "male",
			"division":      "Sylhet",
			"date_of_birth": bson.M{"$lte": before, "$gte": after},
		}
		assert.Equal(t, want, got)
	})
}
