package tokens

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/gamezone/gamezone/internal/common"
	"github.com/gamezone/gamezone/internal/dbx"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Save(ctx context.Context, t Token) error {
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = time.Now()
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO tokens (name, account_id, token, updated_at) VALUES (?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			account_id = excluded.account_id,
			token = excluded.token,
			updated_at = excluded.updated_at
	`, t.Name, t.AccountID, t.Token, t.UpdatedAt.Unix())
	if err != nil {
		return fmt.Errorf("failed to save token[%s]: %w", t.Name, err)
	}
	return nil
}

func (r *SQLiteRepository) Get(ctx context.Context, name string) (*Token, error) {
	var (
		t       Token
		updated int64
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT name, account_id, token, updated_at FROM tokens WHERE name = ?`, name).
		Scan(&t.Name, &t.AccountID, &t.Token, &updated)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get token[%s]: %w", name, err)
	}
	t.UpdatedAt = time.Unix(updated, 0)
	return &t, nil
}

func (r *SQLiteRepository) List(ctx context.Context) ([]Token, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT name, account_id, token, updated_at FROM tokens ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list tokens: %w", err)
	}
	defer rows.Close()

	var result []Token
	for rows.Next() {
		var (
			t       Token
			updated int64
		)
		if err := rows.Scan(&t.Name, &t.AccountID, &t.Token, &updated); err != nil {
			return nil, fmt.Errorf("failed to scan token row: %w", err)
		}
		t.UpdatedAt = time.Unix(updated, 0)
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate token rows: %w", err)
	}
	return result, nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, name string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM tokens WHERE name = ?`, name); err != nil {
		return fmt.Errorf("failed to delete token[%s]: %w", name, err)
	}
	return nil
}
