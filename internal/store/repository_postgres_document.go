package store

import (
	"context"
	"time"

	"github.com/beatfluencer/beatfluencer-api/internal/logger"
	"github.com/beatfluencer/beatfluencer-api/models"
)

// postgresDocumentRepository stores records of one table as plain JSONB
// documents. It backs brands and campaigns, which have no secondary keys.
type postgresDocumentRepository[T any] struct {
	db    *DB
	table string
	key   func(T) (string, time.Time)
}

func (r *postgresDocumentRepository[T]) Create(ctx context.Context, record T) error {
	id, createdAt := r.key(record)

	query, args, err := buildInsertDocumentQuery(ctx, r.table, id, createdAt, record)
	if err != nil {
		return err
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*postgresDocumentRepository.Create").Str("table", r.table).Msg("error inserting document")
		return r.db.wrapError(err)
	}

	return nil
}

func (r *postgresDocumentRepository[T]) List(ctx context.Context, limit int64) ([]T, error) {
	query, args, err := buildListDocumentsQuery(ctx, r.table, limit)
	if err != nil {
		return nil, err
	}

	records, err := queryDocuments[T](ctx, r.db, query, args)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*postgresDocumentRepository.List").Str("table", r.table).Msg("error selecting documents")
		return nil, err
	}

	return records, nil
}

// NewPostgresBrandRepository constructs a [BrandRepository] on db.
func NewPostgresBrandRepository(db *DB, logger *logger.Logger) BrandRepository {
	logger.Debug().Msg("creating postgres brand repository")
	return &postgresDocumentRepository[models.Brand]{
		db:    db,
		table: brandsTable,
		key:   func(b models.Brand) (string, time.Time) { return b.ID, b.CreatedAt },
	}
}

// NewPostgresCampaignRepository constructs a [CampaignRepository] on db.
func NewPostgresCampaignRepository(db *DB, logger *logger.Logger) CampaignRepository {
	logger.Debug().Msg("creating postgres campaign repository")
	return &postgresDocumentRepository[models.Campaign]{
		db:    db,
		table: campaignsTable,
		key:   func(c models.Campaign) (string, time.Time) { return c.ID, c.CreatedAt },
	}
}
