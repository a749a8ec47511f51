package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"log/slog"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"modernc.org/sqlite"

	"github.com/snapledger/snapledger/gen/ent"
)

// sqliteDriver adapts the modernc driver so Ent can open it under the
// "sqlite3" name it expects, with foreign keys switched on per connection.
type sqliteDriver struct {
	*sqlite.Driver
}

func (d sqliteDriver) Open(name string) (driver.Conn, error) {
	conn, err := d.Driver.Open(name)
	if err != nil {
		return nil, err
	}
	c := conn.(interface {
		Exec(stmt string, args []driver.Value) (driver.Result, error)
	})
	if _, err := c.Exec("PRAGMA foreign_keys = ON;", nil); err != nil {
		_ = conn.Close()
		return nil, err
	}
	return conn, nil
}

func init() {
	sql.Register("sqlite3", sqliteDriver{Driver: &sqlite.Driver{}})
}

// OpenSQLite opens an Ent client on a local SQLite database and runs the
// schema migration. Pass ":memory:" style DSNs for throwaway batch runs.
func OpenSQLite(ctx context.Context, dsn string, logger *slog.Logger) (*ent.Client, error) {
	drv, err := entsql.Open(dialect.SQLite, dsn)
	if err != nil {
		logger.Error("failed to open sqlite database", "error", err)
		return nil, err
	}
	client := ent.NewClient(ent.Driver(drv))
	if err := client.Schema.Create(ctx); err != nil {
		_ = client.Close()
		logger.Error("failed to migrate sqlite schema", "error", err)
		return nil, err
	}
	logger.Info("opened sqlite database", "dsn", dsn)
	return client, nil
}

// InMemoryDSN is a shared in-memory SQLite database for one-shot runs.
const InMemoryDSN = "file:snapledger?mode=memory&cache=shared&_fk=1"
