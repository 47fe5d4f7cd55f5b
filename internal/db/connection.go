package db

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/investor-registry/internal/config"
)

// Connection holds the database connection used by the audit trail and the
// review web UI. The file pipeline runs without one.
type Connection struct {
	DB *sql.DB
}

// NewConnection opens a Postgres connection from PG* environment variables.
func NewConnection() (*Connection, error) {
	host := config.GetEnv("PGHOST", "localhost")
	port := config.GetEnv("PGPORT", "5432")
	user := config.GetEnv("PGUSER", "registry")
	password := config.GetEnv("PGPASSWORD", "registry")
	dbname := config.GetEnv("PGDATABASE", "investor_registry")

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		host, port, user, password, dbname)

	conn, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := conn.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(5)

	return &Connection{DB: conn}, nil
}

// Close closes the database connection.
func (c *Connection) Close() error {
	return c.DB.Close()
}
