package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/beatfluencer/beatfluencer-api/internal/config"
	"github.com/beatfluencer/beatfluencer-api/internal/logger"
)

// Storages bundles every repository and the upload storage used by the
// services, together with the handles that must be closed on shutdown.
type Storages struct {
	UserRepository       UserRepository
	InfluencerRepository InfluencerRepository
	BrandRepository      BrandRepository
	CampaignRepository   CampaignRepository
	FileStorage          FileStorage

	closers []func(ctx context.Context) error
}

// NewStorages connects the configured document store and upload storage.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	s := &Storages{}

	switch cfg.DB.Driver {
	case config.DriverMongo:
		mongoDB, err := NewConnectMongo(ctx, cfg.DB, log)
		if err != nil {
			return nil, err
		}
		s.closers = append(s.closers, mongoDB.Close)

		// existing duplicates keep the unique index from being built; the
		// service still checks e-mails before inserting
		if err = EnsureIndexes(ctx, mongoDB.Database()); err != nil {
			log.Err(err).Str("func", "NewStorages").Msg("failed to ensure mongo indexes")
		}

		s.UserRepository = NewMongoUserRepository(mongoDB.Database(), log)
		s.InfluencerRepository = NewMongoInfluencerRepository(mongoDB.Database(), log)
		s.BrandRepository = NewMongoBrandRepository(mongoDB.Database(), log)
		s.CampaignRepository = NewMongoCampaignRepository(mongoDB.Database(), log)
	case config.DriverPostgres:
		db, err := NewConnectPostgres(ctx, cfg.DB, log)
		if err != nil {
			return nil, err
		}
		s.closers = append(s.closers, func(context.Context) error { return db.Close() })

		s.UserRepository = NewPostgresUserRepository(db, log)
		s.InfluencerRepository = NewPostgresInfluencerRepository(db, log)
		s.BrandRepository = NewPostgresBrandRepository(db, log)
		s.CampaignRepository = NewPostgresCampaignRepository(db, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.DB.Driver)
	}

	var err error
	if cfg.Files.UsesS3() {
		s.FileStorage, err = NewS3FileStorage(ctx, cfg.Files.S3)
	} else {
		s.FileStorage, err = NewLocalFileStorage(cfg.Files.UploadDir)
	}
	if err != nil {
		_ = s.Close(ctx)
		return nil, err
	}

	log.Info().Str("func", "NewStorages").
		Str("driver", cfg.DB.Driver).
		Bool("s3", cfg.Files.UsesS3()).
		Msg("storages are ready")

	return s, nil
}

// Close releases every backend connection.
func (s *Storages) Close(ctx context.Context) error {
	var errs []error
	for _, closeFn := range s.closers {
		errs = append(errs, closeFn(ctx))
	}

	return errors.Join(errs...)
}
