// Package ch provides a clickhouse client
package ch

import (
	"context"
	"fmt"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
)

// Config configures clickhouse client
type Config struct {
	URL  string
	Role string // process role reported in client info, e.g. "api", "reparse"
	Tag  string // build tag reported in client info
}

// Rows is the minimal result set iteration for ch
type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
	Columns() []string
}

// CH wraps the native clickhouse connection
type CH struct {
	conn driver.Conn
}

// Open parses the DSN and returns a lazy client
// no network traffic happens until the first query or ping
func Open(_ context.Context, cfg Config) (*CH, error) {
	opts, err := clickhouse.ParseDSN(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("ch: parse dsn: %w", err)
	}
	opts.ClientInfo = BuildClientInfo(cfg.Role, cfg.Tag)

	conn, err := clickhouse.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("ch: open: %w", err)
	}
	return &CH{conn: conn}, nil
}

// Ping verifies connectivity
func (c *CH) Ping(ctx context.Context) error { return c.conn.Ping(ctx) }

// Insert appends positional value rows to table in a single batch
func (c *CH) Insert(ctx context.Context, table string, rows [][]any) error {
	batch, err := c.conn.PrepareBatch(ctx, "INSERT INTO "+table)
	if err != nil {
		return fmt.Errorf("ch: prepare batch: %w", err)
	}
	for _, r := range rows {
		if err := batch.Append(r...); err != nil {
			return fmt.Errorf("ch: append row: %w", err)
		}
	}
	return batch.Send()
}

// Query runs a query and returns ch.Rows
func (c *CH) Query(ctx context.Context, sql string, args ...any) (Rows, error) {
	r, err := c.conn.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	return &driverRows{r: r}, nil
}

// Close closes the underlying connection
func (c *CH) Close() error { return c.conn.Close() }

// driverRows adapts driver.Rows to ch.Rows
type driverRows struct {
	r driver.Rows
}

func (d *driverRows) Next() bool             { return d.r.Next() }
func (d *driverRows) Scan(dest ...any) error { return d.r.Scan(dest...) }
func (d *driverRows) Err() error             { return d.r.Err() }
func (d *driverRows) Close() error           { return d.r.Close() }
func (d *driverRows) Columns() []string      { return d.r.Columns() }
