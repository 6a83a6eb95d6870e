package store

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/beatfluencer/beatfluencer-api/internal/logger"
	"github.com/beatfluencer/beatfluencer-api/models"
)

// psql is the statement builder for every query of this package.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const (
	usersTable       = "users"
	influencersTable = "influencers"
	brandsTable      = "brands"
	campaignsTable   = "campaigns"
)

// textSearchExpressions are the fields matched by InfluencerFilter.Text.
var textSearchExpressions = []string{
	"doc->>'name' ~* ?",
	"doc->>'bio' ~* ?",
	"EXISTS (SELECT 1 FROM jsonb_array_elements_text(doc->'categories') AS c(v) WHERE c.v ~* ?)",
	"EXISTS (SELECT 1 FROM jsonb_array_elements_text(doc->'affiliated_brands') AS b(v) WHERE b.v ~* ?)",
}

func buildInsertUserQuery(ctx context.Context, user models.User) (string, []any, error) {
	doc, err := json.Marshal(user)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrEncodingDocument, err)
	}

	return finish(ctx, "buildInsertUserQuery", psql.
		Insert(usersTable).
		Columns("id", "email", "password_hash", "doc", "created_at").
		Values(user.ID, user.Email, user.PasswordHash, string(doc), user.CreatedAt))
}

func buildSelectUserByEmailQuery(ctx context.Context, email string) (string, []any, error) {
	return finish(ctx, "buildSelectUserByEmailQuery", psql.
		Select("doc", "password_hash").
		From(usersTable).
		Where(sq.Eq{"email": email}))
}

func buildSelectUsersQuery(ctx context.Context, limit int64) (string, []any, error) {
	return finish(ctx, "buildSelectUsersQuery", withLimit(psql.
		Select("doc", "password_hash").
		From(usersTable).
		OrderBy("created_at"), limit))
}

// buildUpdateUserLoginQuery merges last_login into the document and, when
// passwordHash is set, replaces the stored digest.
func buildUpdateUserLoginQuery(ctx context.Context, userID string, lastLogin time.Time, passwordHash string) (string, []any, error) {
	patch, err := json.Marshal(map[string]time.Time{"last_login": lastLogin})
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrEncodingDocument, err)
	}

	query := psql.
		Update(usersTable).
		Set("doc", sq.Expr("doc || ?::jsonb", string(patch)))
	if passwordHash != "" {
		query = query.Set("password_hash", passwordHash)
	}

	return finish(ctx, "buildUpdateUserLoginQuery", query.Where(sq.Eq{"id": userID}))
}

func buildInsertInfluencerQuery(ctx context.Context, influencer models.Influencer) (string, []any, error) {
	doc, err := json.Marshal(influencer)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrEncodingDocument, err)
	}

	return finish(ctx, "buildInsertInfluencerQuery", psql.
		Insert(influencersTable).
		Columns("id", "email", "doc", "created_at").
		Values(influencer.ID, influencer.Email, string(doc), influencer.CreatedAt))
}

func buildSelectInfluencerByIDQuery(ctx context.Context, id string) (string, []any, error) {
	return finish(ctx, "buildSelectInfluencerByIDQuery", psql.
		Select("doc").
		From(influencersTable).
		Where(sq.Eq{"id": id}))
}

func buildInfluencerExistsQuery(ctx context.Context, where sq.Sqlizer) (string, []any, error) {
	return finish(ctx, "buildInfluencerExistsQuery", psql.
		Select("1").
		From(influencersTable).
		Where(where).
		Prefix("SELECT EXISTS (").
		Suffix(")"))
}

func buildInfluencerExistsByEmailQuery(ctx context.Context, email string) (string, []any, error) {
	return buildInfluencerExistsQuery(ctx, sq.Eq{"email": email})
}

func buildInfluencerExistsBySocialURLQuery(ctx context.Context, url string) (string, []any, error) {
	probe, err := json.Marshal([]map[string]string{{"url": url}})
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrEncodingDocument, err)
	}

	return buildInfluencerExistsQuery(ctx, sq.Expr("doc->'social_media_accounts' @> ?::jsonb", string(probe)))
}

// buildFindInfluencersQuery translates filter into a conjunction of JSONB
// predicates. The text criterion is a case-insensitive literal match.
func buildFindInfluencersQuery(ctx context.Context, filter models.InfluencerFilter) (string, []any, error) {
	where := sq.And{}

	if filter.Status != "" {
		where = append(where, sq.Expr("doc->>'status' = ?", filter.Status))
	}
	if filter.Text != "" {
		pattern := regexp.QuoteMeta(filter.Text)
		text := sq.Or{}
		for _, expr := range textSearchExpressions {
			text = append(text, sq.Expr(expr, pattern))
		}
		where = append(where, text)
	}
	if filter.Category != "" {
		category, err := json.Marshal([]string{filter.Category})
		if err != nil {
			return "", nil, fmt.Errorf("%w: %w", ErrEncodingDocument, err)
		}
		where = append(where, sq.Expr("doc->'categories' @> ?::jsonb", string(category)))
	}
	if filter.Gender != "" {
		where = append(where, sq.Expr("doc->>'gender' = ?", filter.Gender))
	}
	if filter.Division != "" {
		where = append(where, sq.Expr("doc->>'division' = ?", filter.Division))
	}
	if filter.BornBefore != nil {
		where = append(where, sq.Expr("(doc->>'date_of_birth')::timestamptz <= ?", *filter.BornBefore))
	}
	if filter.BornAfter != nil {
		where = append(where, sq.Expr("(doc->>'date_of_birth')::timestamptz >= ?", *filter.BornAfter))
	}

	query := psql.Select("doc").From(influencersTable)
	if len(where) > 0 {
		query = query.Where(where)
	}

	return finish(ctx, "buildFindInfluencersQuery", withLimit(query.OrderBy("created_at"), filter.Limit))
}

// buildInsertDocumentQuery inserts a document into one of the tables
// without secondary columns (brands, campaigns).
func buildInsertDocumentQuery(ctx context.Context, table, id string, createdAt time.Time, record any) (string, []any, error) {
	doc, err := json.Marshal(record)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrEncodingDocument, err)
	}

	return finish(ctx, "buildInsertDocumentQuery", psql.
		Insert(table).
		Columns("id", "doc", "created_at").
		Values(id, string(doc), createdAt))
}

func buildListDocumentsQuery(ctx context.Context, table string, limit int64) (string, []any, error) {
	return finish(ctx, "buildListDocumentsQuery", withLimit(psql.
		Select("doc").
		From(table).
		OrderBy("created_at"), limit))
}

func withLimit(query sq.SelectBuilder, limit int64) sq.SelectBuilder {
	if limit > 0 {
		return query.Limit(uint64(limit))
	}

	return query
}

func finish(ctx context.Context, funcName string, query sq.Sqlizer) (string, []any, error) {
	sqlStr, args, err := query.ToSql()
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", funcName).Msg("failed to build query")
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return sqlStr, args, nil
}
