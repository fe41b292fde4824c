package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"bigvalue-web/internal/domain/models"
	"bigvalue-web/internal/storage"

	"github.com/mattn/go-sqlite3"
)

type Storage struct {
	db *sql.DB
}

func New(storagePath string) (*Storage, error) {
	const op = "storage.sqlite.New"

	if dir := filepath.Dir(storagePath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	db, err := sql.Open("sqlite3", storagePath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS inquiries (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			mobile TEXT NOT NULL DEFAULT '',
			affiliation TEXT NOT NULL DEFAULT '',
			content TEXT NOT NULL,
			agree_privacy_policy INTEGER NOT NULL,
			status TEXT NOT NULL,
			error TEXT NOT NULL DEFAULT '',
			created_at DATETIME NOT NULL
		)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	_, err = db.Exec(`CREATE INDEX IF NOT EXISTS idx_inquiries_created_at ON inquiries(created_at)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{db: db}, nil
}

func (s *Storage) Close() error {
	return s.db.Close()
}

func (s *Storage) SaveInquiry(ctx context.Context, inq models.Inquiry) error {
	const op = "storage.sqlite.SaveInquiry"

	stmt, err := s.db.PrepareContext(ctx, `
		INSERT INTO inquiries (id, name, email, mobile, affiliation, content, agree_privacy_policy, status, error, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer stmt.Close()

	createdAt := time.Now().UTC()
	if inq.CreatedAt != nil {
		createdAt = inq.CreatedAt.UTC()
	}

	_, err = stmt.ExecContext(ctx,
		inq.ID, inq.Name, inq.Email, inq.Mobile, inq.Affiliation, inq.Content,
		inq.AgreePrivacyPolicy, inq.Status, inq.Error, createdAt,
	)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) &&
			(sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey || sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique) {
			return fmt.Errorf("%s: %w", op, storage.ErrInquiryExists)
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Storage) UpdateInquiryStatus(ctx context.Context, id, status, errMsg string) error {
	const op = "storage.sqlite.UpdateInquiryStatus"

	res, err := s.db.ExecContext(ctx, `UPDATE inquiries SET status = ?, error = ? WHERE id = ?`, status, errMsg, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrInquiryNotFound)
	}

	return nil
}

func (s *Storage) Inquiry(ctx context.Context, id string) (models.Inquiry, error) {
	const op = "storage.sqlite.Inquiry"

	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, email, mobile, affiliation, content, agree_privacy_policy, status, error, created_at
		FROM inquiries WHERE id = ?`, id)

	inq, err := scanInquiry(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Inquiry{}, fmt.Errorf("%s: %w", op, storage.ErrInquiryNotFound)
		}
		return models.Inquiry{}, fmt.Errorf("%s: %w", op, err)
	}

	return inq, nil
}

// Inquiries returns the latest inquiries, newest first.
func (s *Storage) Inquiries(ctx context.Context, limit int) ([]models.Inquiry, error) {
	const op = "storage.sqlite.Inquiries"

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, email, mobile, affiliation, content, agree_privacy_policy, status, error, created_at
		FROM inquiries ORDER BY created_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var inquiries []models.Inquiry
	for rows.Next() {
		inq, err := scanInquiry(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		inquiries = append(inquiries, inq)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return inquiries, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanInquiry(row scanner) (models.Inquiry, error) {
	var (
		inq       models.Inquiry
		createdAt time.Time
	)

	err := row.Scan(&inq.ID, &inq.Name, &inq.Email, &inq.Mobile, &inq.Affiliation, &inq.Content,
		&inq.AgreePrivacyPolicy, &inq.Status, &inq.Error, &createdAt)
	if err != nil {
		return models.Inquiry{}, err
	}
	inq.CreatedAt = &createdAt

	return inq, nil
}
