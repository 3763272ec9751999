package store

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"

	_ "github.com/duckdb/duckdb-go/v2"
	"github.com/go-sql-driver/mysql"
	_ "modernc.org/sqlite"
)

// Warehouse drivers accepted by OpenWarehouse.
const (
	DriverDuckDB = "duckdb"
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

// NewDB opens a DuckDB database at the given path.
// Use ":memory:" for an in-memory database (useful for testing).
func NewDB(path string) (*sql.DB, error) {
	conn, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, err
	}

	// DuckDB is single-writer; a single connection prevents idle pool
	// connections from blocking WAL checkpointing.
	conn.SetMaxOpenConns(1)

	if err := conn.Ping(); err != nil {
		_ = conn.Close()
		return nil, err
	}

	// Keep extensions next to the database instead of ~/.duckdb which may be read-only.
	if path != ":memory:" {
		extDir := filepath.Dir(path)
		if _, err := conn.Exec(fmt.Sprintf("SET extension_directory = '%s'", extDir)); err != nil {
			_ = conn.Close()
			return nil, fmt.Errorf("setting extension directory: %w", err)
		}
	}

	return conn, nil
}

// OpenWarehouse opens the database source queries run against.
// An empty DuckDB dsn is an in-memory database. Every driver is opened so
// that queries cannot reach the host filesystem or modify data.
func OpenWarehouse(driver, dsn string) (*sql.DB, error) {
	switch driver {
	case DriverDuckDB:
		if dsn == "" {
			dsn = ":memory:"
		}
		conn, err := NewDB(dsn)
		if err != nil {
			return nil, err
		}
		// enable_external_access cannot be turned back on once disabled.
		for _, stmt := range []string{
			"SET enable_external_access = false",
			"SET lock_configuration = true",
		} {
			if _, err := conn.Exec(stmt); err != nil {
				_ = conn.Close()
				return nil, fmt.Errorf("restricting duckdb warehouse: %w", err)
			}
		}
		return conn, nil
	case DriverMySQL, DriverSQLite:
		roDSN, err := readOnlyDSN(driver, dsn)
		if err != nil {
			return nil, err
		}
		conn, err := sql.Open(driver, roDSN)
		if err != nil {
			return nil, err
		}
		if err := conn.Ping(); err != nil {
			_ = conn.Close()
			return nil, fmt.Errorf("failed to reach %s warehouse: %w", driver, err)
		}
		return conn, nil
	default:
		return nil, fmt.Errorf("unsupported warehouse driver: %s", driver)
	}
}

// readOnlyDSN adds the session settings that make every connection of the
// pool read-only.
func readOnlyDSN(driver, dsn string) (string, error) {
	switch driver {
	case DriverMySQL:
		cfg, err := mysql.ParseDSN(dsn)
		if err != nil {
			return "", fmt.Errorf("invalid mysql dsn: %w", err)
		}
		if cfg.Params == nil {
			cfg.Params = map[string]string{}
		}
		cfg.Params["transaction_read_only"] = "1"
		return cfg.FormatDSN(), nil
	case DriverSQLite:
		sep := "?"
		if strings.Contains(dsn, "?") {
			sep = "&"
		}
		return dsn + sep + "_pragma=query_only(1)", nil
	default:
		return dsn, nil
	}
}
