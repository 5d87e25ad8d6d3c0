package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/karimsaad/wasel_backend/config"
)

// InitializeDatabase creates the application database if it doesn't exist.
// It connects to the default 'postgres' database to create it. A no-op for
// the embedded sqlite backend, where opening the file creates it.
func InitializeDatabase(cfg *config.Config) error {
	c := FromCentralConfig(cfg.Database)
	if c.Driver == DriverSQLite {
		return nil
	}
	if c.DBName == "" {
		return fmt.Errorf("no database name configured")
	}

	adminCfg := c
	adminCfg.DBName = "postgres"

	conn, err := openSQLDB(adminCfg)
	if err != nil {
		return fmt.Errorf("failed to connect to postgres database: %w", err)
	}
	defer conn.Close()

	if err := createDatabaseIfNotExists(conn, c.DBName); err != nil {
		return fmt.Errorf("failed to create database %q: %w", c.DBName, err)
	}
	return nil
}

// createDatabaseIfNotExists creates a database if it doesn't already exist
func createDatabaseIfNotExists(conn *sql.DB, dbName string) error {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)`
	err := conn.QueryRowContext(context.Background(), query, dbName).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check if database exists: %w", err)
	}

	if exists {
		return nil
	}

	createQuery := fmt.Sprintf("CREATE DATABASE %s", dbName)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err = conn.ExecContext(ctx, createQuery)
	if err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}

	return nil
}
