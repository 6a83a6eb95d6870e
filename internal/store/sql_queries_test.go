// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/beatfluencer/beatfluencer-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildInsertUserQuery_KeepsHashOutOfDocument(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	user := models.User{ID: "u-1", Email: "a@b.c", PasswordHash: "$2a$10$secret", Role: models.RoleAdmin, CreatedAt: now}

	query, args, err := buildInsertUserQuery(ctx, user)
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "insert into users")
	require.Contains(t, q, "(id,email,password_hash,doc,created_at)")
	require.Contains(t, query, "$5")

	require.Len(t, args, 5)
	assert.Equal(t, "u-1", args[0])
	assert.Equal(t, "a@b.c", args[1])
	assert.Equal(t, "$2a$10$secret", args[2])
	assert.NotContains(t, args[3], "secret")
	assert.Contains(t, args[3], `"role":"admin"`)
	assert.Equal(t, now, args[4])
}

func Test_buildSelectUsersQuery_Limit(t *testing.T) {
	query, args, err := buildSelectUsersQuery(context.Background(), 1000)
	require.NoError(t, err)

	assert.Empty(t, args)
	assert.Equal(t, "SELECT doc, password_hash FROM users ORDER BY created_at LIMIT 1000", query)
}

func Test_buildUpdateUserLoginQuery(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		hash      string
		wantParts []string
		wantArgs  int
	}{
		{
			name:      "last login only",
			wantParts: []string{"UPDATE users SET doc = doc || $1::jsonb WHERE id = $2"},
			wantArgs:  2,
		},
		{
			name:      "with rehash",
			hash:      "$2a$10$new",
			wantParts: []string{"doc = doc || $1::jsonb", "password_hash = $2", "WHERE id = $3"},
			wantArgs:  3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildUpdateUserLoginQuery(ctx, "u-1", at, tt.hash)
			require.NoError(t, err)

			for _, part := range tt.wantParts {
				assert.Contains(t, query, part)
			}
			require.Len(t, args, tt.wantArgs)
			assert.JSONEq(t, `{"last_login":"2026-05-01T10:00:00Z"}`, args[0].(string))
			assert.Equal(t, "u-1", args[len(args)-1])
		})
	}
}

func Test_buildInfluencerExistsQueries(t *testing.T) {
	ctx := context.Background()

	query, args, err := buildInfluencerExistsByEmailQuery(ctx, "x@y.z")
	require.NoError(t, err)
	assert.Equal(t, "SELECT EXISTS ( SELECT 1 FROM influencers WHERE email = $1 )", query)
	assert.Equal(t, []any{"x@y.z"}, args)

	query, args, err = buildInfluencerExistsBySocialURLQuery(ctx, "https://ig.com/a")
	require.NoError(t, err)
	assert.Contains(t, query, "doc->'social_media_accounts' @> $1::jsonb")
	require.Len(t, args, 1)
	assert.JSONEq(t, `[{"url":"https://ig.com/a"}]`, args[0].(string))
}

func Test_buildFindInfluencersQuery(t *testing.T) {
	ctx := context.Background()
	before := time.Date(2006, 1, 1, 0, 0, 0, 0, time.UTC)
	after := time.Date(1996, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		filter    models.InfluencerFilter
		wantParts []string
		absent    []string
		wantArgs  []any
	}{
		{
			name:      "no criteria",
			filter:    models.InfluencerFilter{Limit: 1000},
			wantParts: []string{"SELECT doc FROM influencers ORDER BY created_at LIMIT 1000"},
			absent:    []string{"WHERE"},
		},
		{
			name:      "status and category",
			filter:    models.InfluencerFilter{Status: "published", Category: "fashion"},
			wantParts: []string{"doc->>'status' = $1", "doc->'categories' @> $2::jsonb"},
			absent:    []string{"LIMIT"},
			wantArgs:  []any{"published", `["fashion"]`},
		},
		{
			name:   "text matches four fields with a quoted pattern",
			filter: models.InfluencerFilter{Text: "a.b"},
			wantParts: []string{
				"doc->>'name' ~* $1",
				"doc->>'bio' ~* $2",
				"jsonb_array_elements_text(doc->'categories')",
				"jsonb_array_elements_text(doc->'affiliated_brands')",
				" OR ",
			},
			wantArgs: []any{regexp.QuoteMeta("a.b"), regexp.QuoteMeta("a.b"), regexp.QuoteMeta("a.b"), regexp.QuoteMeta("a.b")},
		},
		{
			name: "search window",
			filter: models.InfluencerFilter{
				Status:     "published",
				Gender:     "female",
				Division:   "Dhaka",
				BornBefore: &before,
				BornAfter:  &after,
				Limit:      100,
			},
			wantParts: []string{
				"doc->>'gender' = $2",
				"doc->>'division' = $3",
				"(doc->>'date_of_birth')::timestamptz <= $4",
				"(doc->>'date_of_birth')::timestamptz >= $5",
				"LIMIT 100",
			},
			wantArgs: []any{"published", "female", "Dhaka", before, after},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildFindInfluencersQuery(ctx, tt.filter)
			require.NoError(t, err)

			for _, part := range tt.wantParts {
				assert.Contains(t, query, part)
			}
			for _, part := range tt.absent {
				assert.NotContains(t, query, part)
			}
			if tt.wantArgs == nil {
				assert.Empty(t, args)
			} else {
				assert.Equal(t, tt.wantArgs, args)
			}
		})
	}
}

func Test_buildInsertDocumentQuery(t *testing.T) {
	now := time.Now().UTC()
	brand := models.Brand{ID: "b-1", LegalName: "Acme", CreatedAt: now}

	query, args, err := buildInsertDocumentQuery(context.Background(), brandsTable, brand.ID, brand.CreatedAt, brand)
	require.NoError(t, err)

	assert.Equal(t, "INSERT INTO brands (id,doc,created_at) VALUES ($1,$2,$3)", query)
	require.Len(t, args, 3)
	assert.Equal(t, "b-1", args[0])
	assert.Contains(t, args[1], `"legal_name":"Acme"`)
}

func Test_buildListDocumentsQuery(t *testing.T) {
	query, _, err := buildListDocumentsQuery(context.Background(), campaignsTable, 1000)
	require.NoError(t, err)
	assert.Equal(t, "SELECT doc FROM campaigns ORDER BY created_at LIMIT 1000", query)
}
