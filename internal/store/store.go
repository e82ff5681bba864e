// Package store persists completed audit runs in SQLite. Nested parts
// of a result (details, scores, findings) are stored as JSON columns;
// the fields we filter and sort on are plain columns.
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/webatelier/siteaudit/internal/models"
)

const schema = `
CREATE TABLE IF NOT EXISTS audits (
    id TEXT PRIMARY KEY,
    url TEXT NOT NULL,
    business_type TEXT NOT NULL,
    locale TEXT NOT NULL,
    details TEXT NOT NULL,
    scores TEXT NOT NULL,
    findings TEXT NOT NULL,
    recommendation TEXT NOT NULL,
    total_score INTEGER NOT NULL,
    generated_at DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_audits_url ON audits(url);
CREATE INDEX IF NOT EXISTS idx_audits_generated_at ON audits(generated_at);
`

// ErrNotFound is returned when no audit exists for the requested ID.
var ErrNotFound = errors.New("audit not found")

// Store wraps the SQLite connection.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database at path and applies the schema.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveAudit inserts one completed audit run.
func (s *Store) SaveAudit(result *models.AuditResult) error {
	details, err := json.Marshal(result.Details)
	if err != nil {
		return fmt.Errorf("marshal details: %w", err)
	}
	scores, err := json.Marshal(result.Scores)
	if err != nil {
		return fmt.Errorf("marshal scores: %w", err)
	}
	findings, err := json.Marshal(result.Findings)
	if err != nil {
		return fmt.Errorf("marshal findings: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO audits (id, url, business_type, locale, details, scores, findings, recommendation, total_score, generated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, result.ID, result.URL, string(result.BusinessType), string(result.Locale),
		string(details), string(scores), string(findings),
		result.Recommendation, result.Scores.Total, result.GeneratedAt.UTC())
	if err != nil {
		return fmt.Errorf("insert audit: %w", err)
	}
	return nil
}

// GetAudit loads one audit run by ID.
func (s *Store) GetAudit(id string) (*models.AuditResult, error) {
	row := s.db.QueryRow(`
		SELECT id, url, business_type, locale, details, scores, findings, recommendation, generated_at
		FROM audits WHERE id = ?
	`, id)
	result, err := scanAudit(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return result, err
}

// AuditSummary is the list view of a stored run: everything except the
// large JSON payloads.
type AuditSummary struct {
	ID           string              `json:"id"`
	URL          string              `json:"url"`
	BusinessType models.BusinessType `json:"business_type"`
	Locale       models.Locale       `json:"locale"`
	TotalScore   int                 `json:"total_score"`
	GeneratedAt  time.Time           `json:"generated_at"`
}

// ListAudits returns the most recent runs, newest first.
func (s *Store) ListAudits(limit int) ([]AuditSummary, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.Query(`
		SELECT id, url, business_type, locale, total_score, generated_at
		FROM audits ORDER BY generated_at DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []AuditSummary
	for rows.Next() {
		var a AuditSummary
		var business, locale string
		if err := rows.Scan(&a.ID, &a.URL, &business, &locale, &a.TotalScore, &a.GeneratedAt); err != nil {
			return nil, err
		}
		a.BusinessType = models.BusinessType(business)
		a.Locale = models.Locale(locale)
		summaries = append(summaries, a)
	}
	return summaries, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAudit(row scanner) (*models.AuditResult, error) {
	var r models.AuditResult
	var business, locale, details, scores, findings string
	if err := row.Scan(&r.ID, &r.URL, &business, &locale, &details, &scores, &findings, &r.Recommendation, &r.GeneratedAt); err != nil {
		return nil, err
	}
	r.BusinessType = models.BusinessType(business)
	r.Locale = models.Locale(locale)
	if err := json.Unmarshal([]byte(details), &r.Details); err != nil {
		return nil, fmt.Errorf("decode details: %w", err)
	}
	if err := json.Unmarshal([]byte(scores), &r.Scores); err != nil {
		return nil, fmt.Errorf("decode scores: %w", err)
	}
	if err := json.Unmarshal([]byte(findings), &r.Findings); err != nil {
		return nil, fmt.Errorf("decode findings: %w", err)
	}
	return &r, nil
}
