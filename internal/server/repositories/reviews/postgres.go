package reviews

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/gamezone/gamezone/internal/common"
	"github.com/gamezone/gamezone/internal/dbx"
	"github.com/gamezone/gamezone/internal/server/models"
)

const selectReviews = `SELECT id, rating, content, author_id, game_id, created_at FROM reviews`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, review *models.Review) (*models.Review, error) {

	query :=
		`INSERT INTO reviews (rating, content, author_id, game_id)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		review.Rating, review.Content, review.AuthorID, review.GameID).Scan(&review.ID, &review.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return review, nil
}

func (r *PostgresRepository) FindByID(ctx context.Context, id string) (*models.Review, error) {
	review := &models.Review{}
	err := r.db.QueryRowContext(ctx, selectReviews+` WHERE id = $1`, id).Scan(
		&review.ID, &review.Rating, &review.Content, &review.AuthorID, &review.GameID, &review.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return review, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.Review, error) {
	return r.query(ctx, selectReviews+` ORDER BY created_at, id`)
}

func (r *PostgresRepository) ListByGame(ctx context.Context, gameID string) ([]*models.Review, error) {
	return r.query(ctx, selectReviews+` WHERE game_id = $1 ORDER BY created_at, id`, gameID)
}

func (r *PostgresRepository) ListByAuthor(ctx context.Context, authorID string) ([]*models.Review, error) {
	return r.query(ctx, selectReviews+` WHERE author_id = $1 ORDER BY created_at, id`, authorID)
}

func (r *PostgresRepository) query(ctx context.Context, query string, args ...any) ([]*models.Review, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []*models.Review{}
	for rows.Next() {
		review := &models.Review{}
		if err := rows.Scan(&review.ID, &review.Rating, &review.Content, &review.AuthorID, &review.GameID, &review.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, review)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}
