package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/beatfluencer/beatfluencer-api/internal/config"
	"github.com/beatfluencer/beatfluencer-api/internal/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Mongo holds the client and database used by the Mongo repositories.
type Mongo struct {
	client *mongo.Client
	db     *mongo.Database
	logger *logger.Logger
}

// NewConnectMongo connects to cfg.DSN, pings the primary and selects cfg.Name.
func NewConnectMongo(ctx context.Context, cfg config.DB, log *logger.Logger) (*Mongo, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.DSN))
	if err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error occurred during database connection")
		return nil, fmt.Errorf("error occurred during database connection: %w", err)
	}

	if err = client.Ping(ctx, readpref.Primary()); err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error connecting database (ping)")
		_ = client.Disconnect(ctx)
		return nil, err
	}
	log.Info().Str("func", "NewConnectMongo").Str("database", cfg.Name).Msg("connected to database successfully")

	return &Mongo{
		client: client,
		db:     client.Database(cfg.Name),
		logger: log,
	}, nil
}

// Database returns the selected database.
func (m *Mongo) Database() *mongo.Database {
	return m.db
}

// Close disconnects the client.
func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

// EnsureIndexes creates the unique e-mail indexes of users and influencers
// along with the id and social URL lookup indexes.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		usersTable: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		influencersTable: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "social_media_accounts.url", Value: 1}}},
			{Keys: bson.D{{Key: "status", Value: 1}, {Key: "created_at", Value: 1}}},
		},
		brandsTable: {
			{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		campaignsTable: {
			{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
	}

	var errs []error
	for _, collection := range []string{usersTable, influencersTable, brandsTable, campaignsTable} {
		if _, err := db.Collection(collection).Indexes().CreateMany(ctx, indexes[collection]); err != nil {
			errs = append(errs, fmt.Errorf("failed to create indexes on %s: %w", collection, err))
		}
	}

	return errors.Join(errs...)
}

// mongoError maps driver errors onto the store sentinels.
func mongoError(err error) error {
	switch {
	case mongo.IsDuplicateKeyError(err):
		return ErrEmailAlreadyExists
	case mongo.IsNetworkError(err), mongo.IsTimeout(err), errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	default:
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
}

// findAll runs filter on coll and decodes every document into T.
func findAll[T any](ctx context.Context, coll *mongo.Collection, filter any, limit int64) ([]T, error) {
	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, mongoError(err)
	}
	defer cursor.Close(ctx)

	records := make([]T, 0)
	if err = cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodingDocument, err)
	}

	return records, nil
}

// exists reports whether coll holds at least one document matching filter.
func exists(ctx context.Context, coll *mongo.Collection, filter any) (bool, error) {
	err := coll.FindOne(ctx, filter, options.FindOne().SetProjection(bson.D{{Key: "_id", Value: 1}})).Err()
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return false, nil
	case err != nil:
		return false, mongoError(err)
	}

	return true, nil
}
