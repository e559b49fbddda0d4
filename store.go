package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ============================================================================
// SUBMISSION STORE
// ============================================================================

// Submission is the one persisted entity: a record of a plan request. Rows are
// insert-only; nothing in this system updates or deletes them.
type Submission struct {
	ID            string    `json:"id"`
	CreatedAt     time.Time `json:"createdAt"`
	Address       string    `json:"address"`
	Email         string    `json:"email"`
	Region        string    `json:"region"`
	WaterDistrict string    `json:"waterDistrict"`
	PlantsJSON    string    `json:"plantsJson"`
	RebatesJSON   string    `json:"rebatesJson"`
	PDFURL        *string   `json:"pdfUrl,omitempty"`
	EmailStatus   string    `json:"emailStatus"`
	EmailError    string    `json:"emailError,omitempty"`
}

// SubmissionStore is the persistence boundary consumed by the handlers.
type SubmissionStore interface {
	Insert(ctx context.Context, sub *Submission) error
	Recent(ctx context.Context, limit int) ([]Submission, error)
}

// PostgresStore backs SubmissionStore with a single submissions table.
type PostgresStore struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewPostgresStore(db *sql.DB, logger *zap.Logger) *PostgresStore {
	return &PostgresStore{db: db, logger: logger}
}

// EnsureSchema creates the submissions table when it does not exist yet.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS submissions (
			id             TEXT PRIMARY KEY,
			created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			address        TEXT NOT NULL,
			email          TEXT NOT NULL,
			region         TEXT NOT NULL,
			water_district TEXT NOT NULL,
			plants_json    TEXT NOT NULL,
			rebates_json   TEXT NOT NULL,
			pdf_url        TEXT,
			email_status   TEXT NOT NULL DEFAULT '',
			email_error    TEXT NOT NULL DEFAULT ''
		)
	`)
	if err != nil {
		return fmt.Errorf("ensure submissions table: %w", err)
	}
	return nil
}

func (s *PostgresStore) Insert(ctx context.Context, sub *Submission) error {
	if sub.ID == "" {
		sub.ID = uuid.NewString()
	}
	if sub.CreatedAt.IsZero() {
		sub.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO submissions
		(id, created_at, address, email, region, water_district, plants_json, rebates_json, pdf_url, email_status, email_error)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`, sub.ID, sub.CreatedAt, sub.Address, sub.Email, sub.Region, sub.WaterDistrict,
		sub.PlantsJSON, sub.RebatesJSON, sub.PDFURL, sub.EmailStatus, sub.EmailError)
	if err != nil {
		return fmt.Errorf("insert submission: %w", err)
	}

	s.logger.Info("submission persisted",
		zap.String("id", sub.ID),
		zap.String("region", sub.Region),
		zap.String("district", sub.WaterDistrict),
	)
	return nil
}

func (s *PostgresStore) Recent(ctx context.Context, limit int) ([]Submission, error) {
	if limit <= 0 || limit > 500 {
		limit = 200
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, created_at, address, email, region, water_district,
		       plants_json, rebates_json, pdf_url, email_status, email_error
		FROM submissions
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query submissions: %w", err)
	}
	defer rows.Close()

	var subs []Submission
	for rows.Next() {
		var sub Submission
		var pdfURL sql.NullString
		if err := rows.Scan(
			&sub.ID, &sub.CreatedAt, &sub.Address, &sub.Email, &sub.Region,
			&sub.WaterDistrict, &sub.PlantsJSON, &sub.RebatesJSON, &pdfURL,
			&sub.EmailStatus, &sub.EmailError,
		); err != nil {
			return nil, fmt.Errorf("scan submission: %w", err)
		}
		if pdfURL.Valid {
			sub.PDFURL = &pdfURL.String
		}
		subs = append(subs, sub)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate submissions: %w", err)
	}
	return subs, nil
}

// Count supports the health endpoint.
func (s *PostgresStore) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM submissions").Scan(&n); err != nil {
		return 0, fmt.Errorf("count submissions: %w", err)
	}
	return n, nil
}
