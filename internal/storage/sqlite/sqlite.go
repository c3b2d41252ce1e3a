package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"randstring/internal/storage"
	"randstring/migrations"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/mattn/go-sqlite3"
)

type Storage struct {
	db *sql.DB
}

var _ storage.Storage = (*Storage)(nil)

// New initializes a new SQLite storage with the given file path.
func New(storagePath string) (*Storage, error) {
	const op = "storage.sqlite.New"

	db, err := sql.Open("sqlite3", storagePath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err = db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{db: db}, nil
}

// Migrate applies the embedded schema migrations. It is a no-op on an up to date database.
func (s *Storage) Migrate(migrationTable string) error {
	const op = "storage.sqlite.Migrate"

	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	driver, err := migratesqlite.WithInstance(s.db, &migratesqlite.Config{MigrationsTable: migrationTable})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "sqlite3", driver)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err = m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Storage) SaveIssuance(ctx context.Context, iss storage.Issuance) (int64, error) {
	const op = "storage.sqlite.SaveIssuance"

	if iss.Alphabet == "" || iss.Length < 0 || iss.Count < 1 {
		return 0, fmt.Errorf("%s: %w", op, storage.ErrInvalidIssuance)
	}

	stmt, err := s.db.PrepareContext(ctx,
		"INSERT INTO issuances(alphabet, length, count, unbiased, subject) VALUES(?, ?, ?, ?, ?)")
	if err != nil {
		return 0, fmt.Errorf("%s: prepare statement: %w", op, err)
	}
	defer stmt.Close()

	res, err := stmt.ExecContext(ctx, iss.Alphabet, iss.Length, iss.Count, iss.Unbiased, iss.Subject)
	if err != nil {
		return 0, fmt.Errorf("%s: execute statement: %w", op, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%s: failed to get last insert id: %w", op, err)
	}

	return id, nil
}

func (s *Storage) Stats(ctx context.Context) ([]storage.AlphabetStats, error) {
	const op = "storage.sqlite.Stats"

	rows, err := s.db.QueryContext(ctx, `
		SELECT alphabet, COUNT(*), SUM(count), SUM(length * count)
		FROM issuances
		GROUP BY alphabet
		ORDER BY alphabet`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var stats []storage.AlphabetStats
	for rows.Next() {
		var st storage.AlphabetStats
		if err = rows.Scan(&st.Alphabet, &st.Requests, &st.Tokens, &st.Chars); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		stats = append(stats, st)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return stats, nil
}

// Close closes the database connection.
func (s *Storage) Close() error {
	return s.db.Close()
}
