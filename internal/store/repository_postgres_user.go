package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/beatfluencer/beatfluencer-api/internal/logger"
	"github.com/beatfluencer/beatfluencer-api/models"
)

// postgresUserRepository is the PostgreSQL-backed [UserRepository]. The user
// document lives in a JSONB column; email and password hash are kept in
// dedicated columns (the hash is never part of the JSON document).
type postgresUserRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewPostgresUserRepository constructs a [UserRepository] on db.
func NewPostgresUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating postgres user repository")
	return &postgresUserRepository{
		db:     db,
		logger: logger,
	}
}

func (r *postgresUserRepository) Create(ctx context.Context, user models.User) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertUserQuery(ctx, user)
	if err != nil {
		return err
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*postgresUserRepository.Create").Msg("error inserting user")
		return r.db.wrapError(err)
	}

	return nil
}

func (r *postgresUserRepository) FindByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUserByEmailQuery(ctx, email)
	if err != nil {
		return models.User{}, err
	}

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*postgresUserRepository.FindByEmail").Msg("error selecting user")
		return models.User{}, r.db.wrapError(err)
	}

	return user, nil
}

func (r *postgresUserRepository) List(ctx context.Context, limit int64) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUsersQuery(ctx, limit)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*postgresUserRepository.List").Msg("error selecting users")
		return nil, r.db.wrapError(err)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			log.Err(err).Str("func", "*postgresUserRepository.List").Msg("error scanning user")
			return nil, err
		}
		users = append(users, user)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return users, nil
}

func (r *postgresUserRepository) UpdateLoginInfo(ctx context.Context, userID string, lastLogin time.Time, passwordHash string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateUserLoginQuery(ctx, userID, lastLogin, passwordHash)
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*postgresUserRepository.UpdateLoginInfo").Msg("error updating user")
		return r.db.wrapError(err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrUserNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var (
		doc  []byte
		hash string
		user models.User
	)
	if err := row.Scan(&doc, &hash); err != nil {
		return models.User{}, err
	}
	if err := json.Unmarshal(doc, &user); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrDecodingDocument, err)
	}
	user.PasswordHash = hash

	return user, nil
}

func scanDocument[T any](row rowScanner) (T, error) {
	var (
		doc    []byte
		record T
	)
	if err := row.Scan(&doc); err != nil {
		return record, err
	}
	if err := json.Unmarshal(doc, &record); err != nil {
		return record, fmt.Errorf("%w: %w", ErrDecodingDocument, err)
	}

	return record, nil
}

// queryDocuments runs a single-column doc query and decodes every row.
func queryDocuments[T any](ctx context.Context, db *DB, query string, args []any) ([]T, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, db.wrapError(err)
	}
	defer rows.Close()

	records := make([]T, 0)
	for rows.Next() {
		record, err := scanDocument[T](rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, nil
}
