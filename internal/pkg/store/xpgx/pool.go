package xpgx

import (
	"context"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Sqlizer is the part of squirrel builders the pool needs.
type Sqlizer interface {
	ToSql() (string, []interface{}, error)
}

// Pool wraps pgxpool so the store can run squirrel builders directly and scan
// results into db-tagged structs.
type Pool interface {
	Getx(ctx context.Context, dest interface{}, query Sqlizer) error
	Selectx(ctx context.Context, dest interface{}, query Sqlizer) error
	Execx(ctx context.Context, query Sqlizer) (pgconn.CommandTag, error)
	Close()
}

type pool struct {
	inner *pgxpool.Pool
}

func NewPool(ctx context.Context, dsn string) (Pool, error) {
	inner, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("pgxpool.New: %w", err)
	}

	if err = inner.Ping(ctx); err != nil {
		return nil, fmt.Errorf("pool.Ping: %w", err)
	}

	return &pool{inner: inner}, nil
}

func (p *pool) Getx(ctx context.Context, dest interface{}, query Sqlizer) error {
	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("query.ToSql: %w", err)
	}

	return pgxscan.Get(ctx, p.inner, dest, sql, args...)
}

func (p *pool) Selectx(ctx context.Context, dest interface{}, query Sqlizer) error {
	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("query.ToSql: %w", err)
	}

	return pgxscan.Select(ctx, p.inner, dest, sql, args...)
}

func (p *pool) Execx(ctx context.Context, query Sqlizer) (pgconn.CommandTag, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return pgconn.CommandTag{}, fmt.Errorf("query.ToSql: %w", err)
	}

	return p.inner.Exec(ctx, sql, args...)
}

func (p *pool) Close() {
	p.inner.Close()
}
