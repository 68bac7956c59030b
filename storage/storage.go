// Package storage caches puzzle solutions and persists
// benchmark runs.  Solutions are cached in Redis keyed by the
// puzzle text; run statistics and per-puzzle results live in
// Postgres.  Both endpoints come from the environment
// (REDIS_URL, DATABASE_URL) with localhost defaults.
package storage

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/gomodule/redigo/redis"
	"github.com/jackc/pgx/v5"

	"github.com/jalil-salame/nsudoku-solve/dbprep"
)

// Connect makes sure the database schema and seed data exist,
// then opens both backing connections.  It returns the ids
// (URLs) of the cache and database actually connected to.
func Connect(ctx context.Context) (cacheId, databaseId string, err error) {
	// make sure the database is initialized
	if err = dbprep.EnsureData(ctx); err != nil {
		err = fmt.Errorf("couldn't initialize database: %w", err)
		return
	}

	rdInit()
	rdMutex.Lock()
	cacheId, err = rdConnect()
	rdMutex.Unlock()
	if err != nil {
		return
	}

	pgInit()
	pgMutex.Lock()
	databaseId, err = pgConnect(ctx)
	pgMutex.Unlock()
	return
}

// Close shuts down both connections.
func Close() {
	pgMutex.Lock()
	pgClose()
	pgMutex.Unlock()
	rdMutex.Lock()
	rdClose()
	rdMutex.Unlock()
}

/*

cache using Redis

*/

// Redis connection data
var (
	rdc     redis.Conn // open connection, if any
	rdUrl   string     // URL for the open connection
	rdMutex sync.Mutex // prevent concurrent connection use
)

// rdInit - look up Redis info from the environment
func rdInit() {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		rdUrl = "redis://localhost:6379/"
	} else {
		rdUrl = url
	}
}

// rdConnect: connect to the given Redis URL.  Returns the
// connection id, if successful, an error otherwise.
func rdConnect() (string, error) {
	conn, err := redis.DialURL(rdUrl)
	if err != nil {
		return "", fmt.Errorf("couldn't connect to cache at %q: %w", rdUrl, err)
	}
	rdc = conn
	return rdUrl, nil
}

// rdClose: close the open Redis connection, if any.
func rdClose() {
	if rdc != nil {
		rdc.Close()
		rdc = nil
	}
}

// rdExecute: run the body with the Redis mutex and connection.
// Because Redis connections can go away without warning, we ping
// to make sure the connection is alive, and try to reconnect if
// not.
func rdExecute(body func(conn redis.Conn) error) error {
	rdMutex.Lock()
	defer rdMutex.Unlock()
	if rdc == nil {
		return fmt.Errorf("cache is not connected")
	}
	if _, err := rdc.Do("PING"); err != nil {
		rdClose()
		if _, err := rdConnect(); err != nil {
			return fmt.Errorf("failed to reconnect to cache at %q: %w", rdUrl, err)
		}
	}
	return body(rdc)
}

/*

persistence using Postgres

*/

// Postgres connection data
var (
	pgConn  *pgx.Conn  // open database, if any
	pgUrl   string     // URL for the open connection
	pgMutex sync.Mutex // prevent concurrent connection use
)

// pgInit - look up Postgres info from the environment
func pgInit() {
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		pgUrl = "postgres://localhost/nsudoku?sslmode=disable"
	} else {
		pgUrl = url
	}
}

// pgConnect: open the Postgres database.  Returns any error
// encountered during the open.
func pgConnect(ctx context.Context) (string, error) {
	conn, err := pgx.Connect(ctx, pgUrl)
	if err != nil {
		return "", fmt.Errorf("couldn't connect to db at %q: %w", pgUrl, err)
	}
	pgConn = conn
	return pgUrl, nil
}

// pgClose: close the open Postgres connection, if any.
func pgClose() {
	if pgConn != nil {
		pgConn.Close(context.Background())
		pgConn = nil
	}
}

// pgExecute: run the body inside a single transaction.  If the
// body errs out, the transaction is rolled back, otherwise it's
// committed.
func pgExecute(ctx context.Context, body func(tx pgx.Tx) error) error {
	pgMutex.Lock()
	defer pgMutex.Unlock()
	if pgConn == nil {
		return fmt.Errorf("database is not connected")
	}
	tx, err := pgConn.Begin(ctx)
	if err != nil {
		return fmt.Errorf("can't open a transaction against database: %w", err)
	}
	if err := body(tx); err != nil {
		tx.Rollback(ctx)
		return err
	}
	return tx.Commit(ctx)
}
