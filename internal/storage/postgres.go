package storage

import (
	"database/sql"
	"embed"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/xaenox/axon/internal/models"
)

//go:embed migrations.sql
var migrations embed.FS

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// PostgresStorage keeps the collection in a single thoughts table while
// preserving the whole-collection contract: SaveAll replaces the table
// contents in one transaction.
type PostgresStorage struct {
	db *sql.DB
}

func NewPostgresStorage(config DatabaseConfig) (*PostgresStorage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		config.Host, config.Port, config.User, config.Password, config.DBName, config.SSLMode)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("error connecting to the database: %w", err)
	}

	storage := &PostgresStorage{db: db}

	if err := storage.initializeSchema(); err != nil {
		return nil, fmt.Errorf("error initializing database schema: %w", err)
	}

	return storage, nil
}

func (s *PostgresStorage) initializeSchema() error {
	migrationSQL, err := migrations.ReadFile("migrations.sql")
	if err != nil {
		return fmt.Errorf("error reading migrations file: %w", err)
	}

	if _, err := s.db.Exec(string(migrationSQL)); err != nil {
		return fmt.Errorf("error executing migrations: %w", err)
	}

	return nil
}

func (s *PostgresStorage) LoadAll(includeDeleted bool) ([]*models.Thought, error) {
	query := `
		SELECT id, text, category, priority, status, confidence, intensity,
		       tags, is_deleted, deleted_at, created_at, updated_at
		FROM thoughts`
	if !includeDeleted {
		query += `
		WHERE NOT is_deleted`
	}
	query += `
		ORDER BY created_at`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("error querying thoughts: %w", err)
	}
	defer rows.Close()

	var thoughts []*models.Thought
	for rows.Next() {
		t := &models.Thought{}
		var deletedAt sql.NullTime
		err := rows.Scan(
			&t.ID,
			&t.Text,
			&t.Category,
			&t.Priority,
			&t.Status,
			&t.Confidence,
			&t.Intensity,
			pq.Array(&t.Tags),
			&t.IsDeleted,
			&deletedAt,
			&t.CreatedAt,
			&t.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning thought: %w", err)
		}
		if deletedAt.Valid {
			d := deletedAt.Time
			t.DeletedAt = &d
		}
		thoughts = append(thoughts, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating thoughts: %w", err)
	}

	if thoughts == nil {
		thoughts = []*models.Thought{}
	}
	return thoughts, nil
}

func (s *PostgresStorage) SaveAll(thoughts []*models.Thought) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM thoughts`); err != nil {
		return fmt.Errorf("error clearing thoughts: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO thoughts (id, text, category, priority, status, confidence,
		                      intensity, tags, is_deleted, deleted_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`)
	if err != nil {
		return fmt.Errorf("error preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, t := range thoughts {
		var deletedAt *time.Time
		if t.DeletedAt != nil {
			deletedAt = t.DeletedAt
		}
		_, err := stmt.Exec(
			t.ID,
			t.Text,
			t.Category,
			t.Priority,
			t.Status,
			t.Confidence,
			t.Intensity,
			pq.Array(t.Tags),
			t.IsDeleted,
			deletedAt,
			t.CreatedAt,
			t.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("error inserting thought %s: %w", t.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing thoughts: %w", err)
	}
	return nil
}

func (s *PostgresStorage) Close() error {
	return s.db.Close()
}
