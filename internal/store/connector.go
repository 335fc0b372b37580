package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
)

// Connector opens one database connection per request. There is no pool:
// the caller owns the returned *sql.DB and must close it on every exit
// path.
type Connector struct {
	dsn     string
	timeout time.Duration
}

func NewConnector(dsn string, timeout time.Duration) *Connector {
	return &Connector{dsn: dsn, timeout: timeout}
}

// Connect opens and pings the database. sql.Open alone validates nothing,
// so the ping is what turns a bad host or password into an error here
// instead of at first query. Failures wrap ErrUnavailable.
func (c *Connector) Connect(ctx context.Context) (*sql.DB, error) {
	db, err := sql.Open("postgres", c.dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	return db, nil
}
