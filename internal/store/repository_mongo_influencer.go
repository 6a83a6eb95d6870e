package store

import (
	"context"
	"errors"
	"regexp"

	"github.com/beatfluencer/beatfluencer-api/internal/logger"
	"github.com/beatfluencer/beatfluencer-api/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// mongoInfluencerRepository is the MongoDB-backed [InfluencerRepository].
type mongoInfluencerRepository struct {
	logger *logger.Logger
	coll   *mongo.Collection
}

// NewMongoInfluencerRepository constructs an [InfluencerRepository] on the
// influencers collection of db.
func NewMongoInfluencerRepository(db *mongo.Database, logger *logger.Logger) InfluencerRepository {
	logger.Debug().Msg("creating mongo influencer repository")
	return &mongoInfluencerRepository{
		coll:   db.Collection(influencersTable),
		logger: logger,
	}
}

func (r *mongoInfluencerRepository) Create(ctx context.Context, influencer models.Influencer) error {
	if _, err := r.coll.InsertOne(ctx, influencer); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*mongoInfluencerRepository.Create").Msg("error inserting influencer")
		return mongoError(err)
	}

	return nil
}

func (r *mongoInfluencerRepository) FindByID(ctx context.Context, id string) (models.Influencer, error) {
	var influencer models.Influencer

	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&influencer)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Influencer{}, ErrInfluencerNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*mongoInfluencerRepository.FindByID").Msg("error finding influencer")
		return models.Influencer{}, mongoError(err)
	}

	return influencer, nil
}

func (r *mongoInfluencerRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return exists(ctx, r.coll, bson.M{"email": email})
}

func (r *mongoInfluencerRepository) ExistsBySocialURL(ctx context.Context, url string) (bool, error) {
	return exists(ctx, r.coll, bson.M{"social_media_accounts.url": url})
}

func (r *mongoInfluencerRepository) Find(ctx context.Context, filter models.InfluencerFilter) ([]models.Influencer, error) {
	influencers, err := findAll[models.Influencer](ctx, r.coll, buildInfluencerFilter(filter), filter.Limit)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*mongoInfluencerRepository.Find").Msg("error finding influencers")
		return nil, err
	}

	return influencers, nil
}

// buildInfluencerFilter translates filter into a Mongo query document.
func buildInfluencerFilter(filter models.InfluencerFilter) bson.M {
	query := bson.M{}

	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.Text != "" {
		rx := primitive.Regex{Pattern: regexp.QuoteMeta(filter.Text), Options: "i"}
		query["$or"] = bson.A{
			bson.M{"name": rx},
			bson.M{"bio": rx},
			bson.M{"categories": rx},
			bson.M{"affiliated_brands": rx},
		}
	}
	if filter.Category != "" {
		query["categories"] = filter.Category
	}
	if filter.Gender != "" {
		query["gender"] = filter.Gender
	}
	if filter.Division != "" {
		query["division"] = filter.Division
	}

	dob := bson.M{}
	if filter.BornBefore != nil {
		dob["$lte"] = *filter.BornBefore
	}
	if filter.BornAfter != nil {
		dob["$gte"] = *filter.BornAfter
	}
	if len(dob) > 0 {
		query["date_of_birth"] = dob
	}

	return query
}
