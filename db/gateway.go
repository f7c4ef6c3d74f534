// db/gateway.go
package db

import (
	"context"
	"database/sql"
	"log"
	"strings"
	"time"
)

// Gateway is the single entry point to the relational store. It mirrors the
// *sql.DB query methods and logs statement duration and, where known, the
// affected row count.
type Gateway struct {
	db *sql.DB
}

func NewGateway(database *sql.DB) *Gateway {
	return &Gateway{db: database}
}

func (g *Gateway) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	start := time.Now()
	res, err := g.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Printf("db exec failed (%v): %s", time.Since(start), collapse(query))
		return nil, err
	}
	rows := int64(-1)
	if n, rowsErr := res.RowsAffected(); rowsErr == nil {
		rows = n
	}
	log.Printf("db exec (%v) rows=%d: %s", time.Since(start), rows, collapse(query))
	return res, nil
}

func (g *Gateway) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	start := time.Now()
	rows, err := g.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Printf("db query failed (%v): %s", time.Since(start), collapse(query))
		return nil, err
	}
	log.Printf("db query (%v): %s", time.Since(start), collapse(query))
	return rows, nil
}

func (g *Gateway) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	start := time.Now()
	row := g.db.QueryRowContext(ctx, query, args...)
	log.Printf("db query (%v): %s", time.Since(start), collapse(query))
	return row
}

// collapse flattens a multi-line SQL literal for one-line logging.
func collapse(query string) string {
	return strings.Join(strings.Fields(query), " ")
}
