package games

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gamezone/gamezone/internal/common"
	"github.com/gamezone/gamezone/internal/dbx"
	"github.com/gamezone/gamezone/internal/server/models"
)

const selectGames = `SELECT id, title, platforms, created_at FROM games`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// platforms are stored as a JSONB array
func encodePlatforms(p []string) ([]byte, error) {
	if p == nil {
		p = []string{}
	}
	return json.Marshal(p)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanGame(s scanner) (*models.Game, error) {
	g := &models.Game{}
	var platforms []byte
	if err := s.Scan(&g.ID, &g.Title, &platforms, &g.CreatedAt); err != nil {
		return nil, err
	}
	if len(platforms) > 0 {
		if err := json.Unmarshal(platforms, &g.Platforms); err != nil {
			return nil, fmt.Errorf("decode platforms: %w", err)
		}
	}
	if g.Platforms == nil {
		g.Platforms = []string{}
	}
	return g, nil
}

func (r *PostgresRepository) Create(ctx context.Context, game *models.Game) (*models.Game, error) {
	platforms, err := encodePlatforms(game.Platforms)
	if err != nil {
		return nil, err
	}

	query :=
		`INSERT INTO games (title, platforms)
		 VALUES ($1, $2)
		 RETURNING id, created_at
		 `

	if err := r.db.QueryRowContext(ctx, query, game.Title, platforms).Scan(&game.ID, &game.CreatedAt); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	if game.Platforms == nil {
		game.Platforms = []string{}
	}

	return game, nil
}

func (r *PostgresRepository) FindByID(ctx context.Context, id string) (*models.Game, error) {
	g, err := scanGame(r.db.QueryRowContext(ctx, selectGames+` WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return g, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.Game, error) {
	return r.query(ctx, selectGames+` ORDER BY created_at, id`)
}

func (r *PostgresRepository) Page(ctx context.Context, limit, offset int) ([]*models.Game, error) {
	return r.query(ctx, selectGames+` ORDER BY created_at, id LIMIT $1 OFFSET $2`, limit, offset)
}

func (r *PostgresRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM games`).Scan(&n); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

func (r *PostgresRepository) SearchTitle(ctx context.Context, pattern string) ([]*models.Game, error) {
	return r.query(ctx, selectGames+` WHERE title ~* $1 ORDER BY created_at, id`, pattern)
}

func (r *PostgresRepository) Update(ctx context.Context, id string, upd models.GameUpdate) (*models.Game, error) {
	var platforms any
	if upd.Platforms != nil {
		p, err := encodePlatforms(*upd.Platforms)
		if err != nil {
			return nil, err
		}
		platforms = p
	}

	query :=
		`UPDATE games
		 SET title = COALESCE($2, title), platforms = COALESCE($3::jsonb, platforms)
		 WHERE id = $1
		 RETURNING id, title, platforms, created_at
		 `

	g, err := scanGame(r.db.QueryRowContext(ctx, query, id, upd.Title, platforms))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return g, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM games WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func (r *PostgresRepository) query(ctx context.Context, query string, args ...any) ([]*models.Game, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []*models.Game{}
	for rows.Next() {
		g, err := scanGame(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}
