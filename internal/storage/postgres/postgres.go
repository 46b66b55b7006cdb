package postgres

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/lib/pq"
)

type Storage struct {
	Db *sql.DB
}

func New() (*Storage, error) {
	return connect(getenv(`DATABASE_URL`,
		`user=postgres password=postgres dbname=roomstay host=localhost port=5432 sslmode=disable`))
}

func NewForTest() (*Storage, error) {
	return connect(getenv(`TEST_DATABASE_URL`,
		`user=postgres password=postgres dbname=roomstay_test host=localhost port=5432 sslmode=disable`))
}

func connect(dsn string) (*Storage, error) {
	database, err := sql.Open(`postgres`, dsn)
	if err != nil {
		return nil, err
	}

	if err := database.Ping(); err != nil {
		return nil, err
	}

	storage := &Storage{Db: database}

	if err := storage.init(); err != nil {
		return storage, err
	}

	return storage, nil
}

func (storage *Storage) init() error {
	schema, err := os.ReadFile(getenv(`TABLES_SQL`, `tables/createTables.sql`))
	if err != nil {
		return fmt.Errorf(`read schema: %w`, err)
	}

	if _, err := storage.Db.Exec(string(schema)); err != nil {
		return fmt.Errorf(`apply schema: %w`, err)
	}

	return nil
}

func getenv(key, fallback string) string {
	if value := os.Getenv(key); value != `` {
		return value
	}
	return fallback
}
