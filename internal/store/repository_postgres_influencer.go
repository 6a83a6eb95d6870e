package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/beatfluencer/beatfluencer-api/internal/logger"
	"github.com/beatfluencer/beatfluencer-api/models"
)

// postgresInfluencerRepository is the PostgreSQL-backed [InfluencerRepository].
type postgresInfluencerRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewPostgresInfluencerRepository constructs an [InfluencerRepository] on db.
func NewPostgresInfluencerRepository(db *DB, logger *logger.Logger) InfluencerRepository {
	logger.Debug().Msg("creating postgres influencer repository")
	return &postgresInfluencerRepository{
		db:     db,
		logger: logger,
	}
}

func (r *postgresInfluencerRepository) Create(ctx context.Context, influencer models.Influencer) error {
	query, args, err := buildInsertInfluencerQuery(ctx, influencer)
	if err != nil {
		return err
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*postgresInfluencerRepository.Create").Msg("error inserting influencer")
		return r.db.wrapError(err)
	}

	return nil
}

func (r *postgresInfluencerRepository) FindByID(ctx context.Context, id string) (models.Influencer, error) {
	query, args, err := buildSelectInfluencerByIDQuery(ctx, id)
	if err != nil {
		return models.Influencer{}, err
	}

	influencer, err := scanDocument[models.Influencer](r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Influencer{}, ErrInfluencerNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*postgresInfluencerRepository.FindByID").Msg("error selecting influencer")
		if errors.Is(err, ErrDecodingDocument) {
			return models.Influencer{}, err
		}
		return models.Influencer{}, r.db.wrapError(err)
	}

	return influencer, nil
}

func (r *postgresInfluencerRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	query, args, err := buildInfluencerExistsByEmailQuery(ctx, email)
	if err != nil {
		return false, err
	}

	return r.exists(ctx, query, args)
}

func (r *postgresInfluencerRepository) ExistsBySocialURL(ctx context.Context, url string) (bool, error) {
	query, args, err := buildInfluencerExistsBySocialURLQuery(ctx, url)
	if err != nil {
		return false, err
	}

	return r.exists(ctx, query, args)
}

func (r *postgresInfluencerRepository) Find(ctx context.Context, filter models.InfluencerFilter) ([]models.Influencer, error) {
	query, args, err := buildFindInfluencersQuery(ctx, filter)
	if err != nil {
		return nil, err
	}

	influencers, err := queryDocuments[models.Influencer](ctx, r.db, query, args)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*postgresInfluencerRepository.Find").Msg("error selecting influencers")
		return nil, err
	}

	return influencers, nil
}

func (r *postgresInfluencerRepository) exists(ctx context.Context, query string, args []any) (bool, error) {
	var exists bool
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&exists); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*postgresInfluencerRepository.exists").Msg("error checking influencer existence")
		return false, r.db.wrapError(err)
	}

	return exists, nil
}
