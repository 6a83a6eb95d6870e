package store

import (
	"context"

	"github.com/beatfluencer/beatfluencer-api/internal/logger"
	"github.com/beatfluencer/beatfluencer-api/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// mongoDocumentRepository stores records of one collection as-is. It backs
// brands and campaigns.
type mongoDocumentRepository[T any] struct {
	coll *mongo.Collection
}

func (r *mongoDocumentRepository[T]) Create(ctx context.Context, record T) error {
	if _, err := r.coll.InsertOne(ctx, record); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*mongoDocumentRepository.Create").Str("collection", r.coll.Name()).Msg("error inserting document")
		return mongoError(err)
	}

	return nil
}

func (r *mongoDocumentRepository[T]) List(ctx context.Context, limit int64) ([]T, error) {
	records, err := findAll[T](ctx, r.coll, bson.M{}, limit)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*mongoDocumentRepository.List").Str("collection", r.coll.Name()).Msg("error listing documents")
		return nil, err
	}

	return records, nil
}

// NewMongoBrandRepository constructs a [BrandRepository] on the brands collection of db.
func NewMongoBrandRepository(db *mongo.Database, logger *logger.Logger) BrandRepository {
	logger.Debug().Msg("creating mongo brand repository")
	return &mongoDocumentRepository[models.Brand]{coll: db.Collection(brandsTable)}
}

// NewMongoCampaignRepository constructs a [CampaignRepository] on the campaigns collection of db.
func NewMongoCampaignRepository(db *mongo.Database, logger *logger.Logger) CampaignRepository {
	logger.Debug().Msg("creating mongo campaign repository")
	return &mongoDocumentRepository[models.Campaign]{coll: db.Collection(campaignsTable)}
}
