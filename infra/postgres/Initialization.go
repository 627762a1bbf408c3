package postgres

import (
	"database/sql"
	"fmt"

	"go.uber.org/zap"
)

const (
	createUsersTable = `
		CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			username VARCHAR(50) NOT NULL UNIQUE,
			wins INT NOT NULL DEFAULT 0,
			losses INT NOT NULL DEFAULT 0,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
		);`

	// Performans için indeksler
	createIndexes = `
		CREATE UNIQUE INDEX IF NOT EXISTS idx_users_username ON users(username);`
)

// initDB, tüm veritabanı tablolarını oluşturur.
// Oda ve oyun durumu bellekte tutulur; kalıcı olan yalnızca kullanıcı kayıtlarıdır.
func initDB(db *sql.DB) error {
	tables := []struct {
		name  string
		query string
	}{
		{"users", createUsersTable},
	}

	for _, table := range tables {
		if _, err := db.Exec(table.query); err != nil {
			return fmt.Errorf("failed to create '%s' table: %w", table.name, err)
		}
		zap.L().Info("Table created successfully", zap.String("table", table.name))
	}

	if _, err := db.Exec(createIndexes); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}

	zap.L().Info("Database initialized successfully with all tables and indexes")
	return nil
}
