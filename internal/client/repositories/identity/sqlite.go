package identity

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MayankTomar21/Python-Flask-Full-Stack-App-for-Google-Drive-Uploads/internal/client/models"
)

// DBTX is satisfied by both *sql.DB and *sql.Tx.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type SQLiteRepository struct {
	db DBTX
}

func NewSQLiteRepository(db DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Get(ctx context.Context, appID string) (*models.Identity, error) {
	var (
		id        models.Identity
		anonymous int
		createdAt string
	)

	err := r.db.QueryRowContext(ctx,
		`SELECT user_id, provider, anonymous, created_at FROM identities WHERE app_id = ?`, appID).
		Scan(&id.UserID, &id.Provider, &anonymous, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get identity[%s]: %w", appID, err)
	}

	id.Anonymous = anonymous != 0
	if createdAt != "" {
		t, err := time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse identity[%s] created_at: %w", appID, err)
		}
		id.CreatedAt = t
	}
	return &id, nil
}

func (r *SQLiteRepository) Save(ctx context.Context, appID string, identity *models.Identity) error {
	anonymous := 0
	if identity.Anonymous {
		anonymous = 1
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO identities (app_id, user_id, provider, anonymous, created_at) VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(app_id) DO UPDATE SET
			user_id = excluded.user_id,
			provider = excluded.provider,
			anonymous = excluded.anonymous,
			created_at = excluded.created_at
	`, appID, identity.UserID, identity.Provider, anonymous, identity.CreatedAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("failed to save identity[%s]: %w", appID, err)
	}
	return nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, appID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM identities WHERE app_id = ?`, appID)
	if err != nil {
		return fmt.Errorf("failed to delete identity[%s]: %w", appID, err)
	}
	return nil
}
