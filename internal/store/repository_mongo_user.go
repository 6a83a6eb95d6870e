package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/beatfluencer/beatfluencer-api/internal/logger"
	"github.com/beatfluencer/beatfluencer-api/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// mongoUserRepository is the MongoDB-backed [UserRepository].
type mongoUserRepository struct {
	logger *logger.Logger
	coll   *mongo.Collection
}

// NewMongoUserRepository constructs a [UserRepository] on the users collection of db.
func NewMongoUserRepository(db *mongo.Database, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating mongo user repository")
	return &mongoUserRepository{
		coll:   db.Collection(usersTable),
		logger: logger,
	}
}

func (r *mongoUserRepository) Create(ctx context.Context, user models.User) error {
	if _, err := r.coll.InsertOne(ctx, user); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*mongoUserRepository.Create").Msg("error inserting user")
		return mongoError(err)
	}

	return nil
}

func (r *mongoUserRepository) FindByEmail(ctx context.Context, email string) (models.User, error) {
	var user models.User

	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*mongoUserRepository.FindByEmail").Msg("error finding user")
		return models.User{}, mongoError(err)
	}

	return user, nil
}

func (r *mongoUserRepository) List(ctx context.Context, limit int64) ([]models.User, error) {
	users, err := findAll[models.User](ctx, r.coll, bson.M{}, limit)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*mongoUserRepository.List").Msg("error listing users")
		return nil, err
	}

	return users, nil
}

func (r *mongoUserRepository) UpdateLoginInfo(ctx context.Context, userID string, lastLogin time.Time, passwordHash string) error {
	set := bson.M{"last_login": lastLogin}
	if passwordHash != "" {
		set["password_hash"] = passwordHash
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"id": userID}, bson.M{"$set": set})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*mongoUserRepository.UpdateLoginInfo").Msg("error updating user")
		return mongoError(err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("%w: id %s", ErrUserNotFound, userID)
	}

	return nil
}
