// Package db holds the connection provider and the scoped insert shared by
// the SQL dialects.
package db

import (
	"context"
	"database/sql"
	"fmt"
)

// Opener hands out a connection private to one request. The caller owns it
// and must Close it.
type Opener interface {
	Open(ctx context.Context) (*sql.DB, error)
}

// OpenerFunc adapts a function to Opener.
type OpenerFunc func(ctx context.Context) (*sql.DB, error)

func (f OpenerFunc) Open(ctx context.Context) (*sql.DB, error) { return f(ctx) }

// DSNOpener opens a fresh single-connection handle per call.
type DSNOpener struct {
	Driver string
	DSN    string
}

func (o DSNOpener) Open(ctx context.Context) (*sql.DB, error) {
	conn, err := sql.Open(o.Driver, o.DSN)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", o.Driver, err)
	}
	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("connect %s: %w", o.Driver, err)
	}
	return conn, nil
}

// Ping opens a connection, pings it and releases it. Used by health checks.
func Ping(ctx context.Context, o Opener) error {
	conn, err := o.Open(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()
	return conn.PingContext(ctx)
}
