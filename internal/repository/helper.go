package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type QueryType string

const (
	QueryTypeSelect QueryType = "select"
	QueryTypeCount  QueryType = "count"
)

const pqUniqueViolation = "23505"

// IsUniqueViolation reports whether err is a Postgres duplicate-key error.
// Seeders treat these as expected on intentionally duplicatable attempts.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation
}

// SelectSome fetches a bounded sample of rows from a table, oldest first.
// Seeders use it to pick up prerequisite entities without loading whole
// tables. A limit of 0 means no bound.
func SelectSome[T any](ctx context.Context, db *sqlx.DB, psql sq.StatementBuilderType, table string, limit uint64) ([]T, error) {
	builder := psql.Select("*").
		From(table).
		OrderBy("created_at ASC")
	if limit > 0 {
		builder = builder.Limit(limit)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	var rows []T
	if err := db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}
	return rows, nil
}

// Exists runs a COUNT(*) against a table with the given conjunctive equality
// conditions.
func Exists(ctx context.Context, db *sqlx.DB, psql sq.StatementBuilderType, table string, where sq.Eq) (bool, error) {
	query, args, err := psql.Select("COUNT(*)").
		From(table).
		Where(where).
		ToSql()
	if err != nil {
		return false, err
	}

	var count int
	if err := db.GetContext(ctx, &count, query, args...); err != nil {
		return false, err
	}
	return count > 0, nil
}

func ToNullUUID(id uuid.UUID) uuid.NullUUID {
	if id == uuid.Nil {
		return uuid.NullUUID{UUID: uuid.Nil, Valid: false}
	}

	return uuid.NullUUID{UUID: id, Valid: true}
}

func ToNullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{Valid: false}
	}

	return sql.NullTime{Time: *t, Valid: true}
}

func ToNullBool(b *bool) sql.NullBool {
	if b == nil {
		return sql.NullBool{Valid: false}
	}

	return sql.NullBool{Bool: *b, Valid: true}
}

func ToNullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{Valid: false}
	}

	return sql.NullString{String: *s, Valid: true}
}
