// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/beatfluencer/beatfluencer-api/internal/logger"
	"github.com/beatfluencer/beatfluencer-api/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return &DB{DB: conn, logger: logger.Nop(), errorClassificator: NewPostgresErrorClassifier()}, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

// ── users ──

func TestPostgresUserRepository_Create(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewPostgresUserRepository(db, logger.Nop())

	user := models.User{ID: "u-1", Email: "a@b.c", PasswordHash: "hash", CreatedAt: time.Now()}

	mock.ExpectExec("INSERT INTO users").
		WithArgs("u-1", "a@b.c", "hash", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Create(context.Background(), user))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresUserRepository_Create_UniqueViolation(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewPostgresUserRepository(db, logger.Nop())

	mock.ExpectExec("INSERT INTO users").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	err := repo.Create(context.Background(), models.User{ID: "u-1", Email: "a@b.c"})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestPostgresUserRepository_Create_ConnectionFailure(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewPostgresUserRepository(db, logger.Nop())

	mock.ExpectExec("INSERT INTO users").
		WillReturnError(pgError(pgerrcode.ConnectionFailure))

	err := repo.Create(context.Background(), models.User{ID: "u-1"})
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}

func TestPostgresUserRepository_FindByEmail(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewPostgresUserRepository(db, logger.Nop())

	rows := sqlmock.NewRows([]string{"doc", "password_hash"}).
		AddRow([]byte(`{"id":"u-1","email":"a@b.c","role":"admin","is_active":true}`), "stored-hash")
	mock.ExpectQuery("SELECT doc, password_hash FROM users WHERE email").
		WithArgs("a@b.c").
		WillReturnRows(rows)

	user, err := repo.FindByEmail(context.Background(), "a@b.c")
	require.NoError(t, err)
	assert.Equal(t, "u-1", user.ID)
	assert.Equal(t, models.RoleAdmin, user.Role)
	assert.Equal(t, "stored-hash", user.PasswordHash)
	assert.True(t, user.IsActive)
}

func TestPostgresUserRepository_FindByEmail_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewPostgresUserRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT doc, password_hash FROM users").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByEmail(context.Background(), "nobody@b.c")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestPostgresUserRepository_List(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewPostgresUserRepository(db, logger.Nop())

	rows := sqlmock.NewRows([]string{"doc", "password_hash"}).
		AddRow([]byte(`{"id":"u-1"}`), "h1").
		AddRow([]byte(`{"id":"u-2"}`), "h2")
	mock.ExpectQuery("SELECT doc, password_hash FROM users ORDER BY created_at LIMIT 1000").
		WillReturnRows(rows)

	users, err := repo.List(context.Background(), 1000)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "u-2", users[1].ID)
	assert.Equal(t, "h2", users[1].PasswordHash)
}

func TestPostgresUserRepository_List_Empty(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewPostgresUserRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT doc, password_hash FROM users").
		WillReturnRows(sqlmock.NewRows([]string{"doc", "password_hash"}))

	users, err := repo.List(context.Background(), 1000)
	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)
}

func TestPostgresUserRepository_UpdateLoginInfo(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewPostgresUserRepository(db, logger.Nop())

	mock.ExpectExec("UPDATE users SET doc").
		WithArgs(sqlmock.AnyArg(), "new-hash", "u-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpdateLoginInfo(context.Background(), "u-1", time.Now(), "new-hash"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresUserRepository_UpdateLoginInfo_NoRows(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewPostgresUserRepository(db, logger.Nop())

	mock.ExpectExec("UPDATE users SET doc").
		WithArgs(sqlmock.AnyArg(), "missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateLoginInfo(context.Background(), "missing", time.Now(), "")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

// ── influencers ──

func TestPostgresInfluencerRepository_FindByID(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewPostgresInfluencerRepository(db, logger.Nop())

	rows := sqlmock.NewRows([]string{"doc"}).
		AddRow([]byte(`{"id":"i-1","name":"Rafi","categories":["music"],"social_media_accounts":[{"platform":"instagram","follower_count":12000}]}`))
	mock.ExpectQuery("SELECT doc FROM influencers WHERE id").
		WithArgs("i-1").
		WillReturnRows(rows)

	inf, err := repo.FindByID(context.Background(), "i-1")
	require.NoError(t, err)
	assert.Equal(t, "Rafi", inf.Name)
	assert.Equal(t, []string{"music"}, inf.Categories)
	require.Len(t, inf.SocialMediaAccounts, 1)
	assert.Equal(t, int64(12000), inf.SocialMediaAccounts[0].FollowerCount)
}

func TestPostgresInfluencerRepository_FindByID_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewPostgresInfluencerRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT doc FROM influencers").
		WillReturnRows(sqlmock.NewRows([]string{"doc"}))

	_, err := repo.FindByID(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrInfluencerNotFound)
}

func TestPostgresInfluencerRepository_FindByID_BadDocument(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewPostgresInfluencerRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT doc FROM influencers").
		WillReturnRows(sqlmock.NewRows([]string{"doc"}).AddRow([]byte(`{not json`)))

	_, err := repo.FindByID(context.Background(), "i-1")
	assert.ErrorIs(t, err, ErrDecodingDocument)
}

func TestPostgresInfluencerRepository_Exists(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewPostgresInfluencerRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("a@b.c").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(`[{"url":"https://x.com/a"}]`).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	ok, err := repo.ExistsByEmail(context.Background(), "a@b.c")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.ExistsBySocialURL(context.Background(), "https://x.com/a")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPostgresInfluencerRepository_Create_UniqueViolation(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewPostgresInfluencerRepository(db, logger.Nop())

	mock.ExpectExec("INSERT INTO influencers").
		WithArgs("i-1", "dup@b.c", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	err := repo.Create(context.Background(), models.Influencer{ID: "i-1", Email: "dup@b.c"})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestPostgresInfluencerRepository_Find(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewPostgresInfluencerRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT doc FROM influencers WHERE").
		WithArgs("published").
		WillReturnRows(sqlmock.NewRows([]string{"doc"}).
			AddRow([]byte(`{"id":"i-1","status":"published"}`)).
			AddRow([]byte(`{"id":"i-2","status":"published"}`)))

	found, err := repo.Find(context.Background(), models.InfluencerFilter{Status: "published", Limit: 100})
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, "i-1", found[0].ID)
}

func TestPostgresInfluencerRepository_Find_QueryError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewPostgresInfluencerRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT doc FROM influencers").
		WillReturnError(errors.New("boom"))

	_, err := repo.Find(context.Background(), models.InfluencerFilter{})
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

// ── brands and campaigns ──

func TestPostgresBrandRepository_CreateAndList(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewPostgresBrandRepository(db, logger.Nop())

	mock.ExpectExec("INSERT INTO brands").
		WithArgs("b-1", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT doc FROM brands ORDER BY created_at LIMIT 1000").
		WillReturnRows(sqlmock.NewRows([]string{"doc"}).AddRow([]byte(`{"id":"b-1","legal_name":"Acme"}`)))

	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, models.Brand{ID: "b-1", LegalName: "Acme"}))

	brands, err := repo.List(ctx, 1000)
	require.NoError(t, err)
	require.Len(t, brands, 1)
	assert.Equal(t, "Acme", brands[0].LegalName)
}

func TestPostgresCampaignRepository_CreateAndList(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewPostgresCampaignRepository(db, logger.Nop())

	mock.ExpectExec("INSERT INTO campaigns").
		WithArgs("c-1", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT doc FROM campaigns").
		WillReturnRows(sqlmock.NewRows([]string{"doc"}).AddRow([]byte(`{"id":"c-1","status":"ongoing","budget":1500}`)))

	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, models.Campaign{ID: "c-1", Status: models.CampaignStatusOngoing}))

	campaigns, err := repo.List(ctx, 1000)
	require.NoError(t, err)
	require.Len(t, campaigns, 1)
	assert.Equal(t, models.CampaignStatusOngoing, campaigns[0].Status)
	assert.Equal(t, 1500.0, campaigns[0].Budget)
}
