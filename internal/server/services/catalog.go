package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/gamezone/gamezone/internal/common"
	"github.com/gamezone/gamezone/internal/dbx"
	"github.com/gamezone/gamezone/internal/server/auth"
	"github.com/gamezone/gamezone/internal/server/models"
	"github.com/gamezone/gamezone/internal/server/repositories/repomanager"
)

// GameDetails is a game together with its reviews.
type GameDetails struct {
	Game    *models.Game
	Reviews []*models.Review
}

// ReviewDetails is a review with the author and game it refers to.
type ReviewDetails struct {
	Review *models.Review
	Author *models.Account
	Game   *models.Game
}

// NewReview is the input of CatalogService.SubmitReview. The author is taken
// from the request identity.
type NewReview struct {
	Rating  int
	Content string
	GameID  string
}

// CatalogService serves games and reviews.
type CatalogService struct {
	db          dbx.DB
	repomanager repomanager.RepositoryManager
	pageSize    int
}

func NewCatalogService(db dbx.DB, m repomanager.RepositoryManager, pageSize int) *CatalogService {
	if pageSize < 1 {
		pageSize = 1
	}
	return &CatalogService{db: db, repomanager: m, pageSize: pageSize}
}

func (s *CatalogService) Games(ctx context.Context) ([]*models.Game, error) {
	return s.repomanager.Games(s.db).List(ctx)
}

func (s *CatalogService) Game(ctx context.Context, id string) (*GameDetails, error) {
	if err := validateID("game id", id); err != nil {
		return nil, err
	}

	game, err := s.repomanager.Games(s.db).FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	reviews, err := s.repomanager.Reviews(s.db).ListByGame(ctx, id)
	if err != nil {
		return nil, err
	}

	return &GameDetails{Game: game, Reviews: reviews}, nil
}

// GamePage returns the 1-based page pageNo. Asking for a page past the last
// one yields common.ErrPageOutOfRange.
func (s *CatalogService) GamePage(ctx context.Context, pageNo int) ([]*models.Game, error) {
	if pageNo < 1 {
		return nil, fmt.Errorf("%w: page number must be positive", common.ErrorValidation)
	}

	repo := s.repomanager.Games(s.db)

	total, err := repo.Count(ctx)
	if err != nil {
		return nil, err
	}

	pages := (total + s.pageSize - 1) / s.pageSize
	if pageNo > pages {
		return nil, common.ErrPageOutOfRange
	}

	return repo.Page(ctx, s.pageSize, (pageNo-1)*s.pageSize)
}

// GamesByTitle finds games whose title matches pattern, ignoring case.
func (s *CatalogService) GamesByTitle(ctx context.Context, pattern string) ([]*models.Game, error) {
	if _, err := regexp.Compile("(?i)" + pattern); err != nil {
		return nil, fmt.Errorf("%w: invalid title pattern", common.ErrorValidation)
	}
	return s.repomanager.Games(s.db).SearchTitle(ctx, pattern)
}

func (s *CatalogService) AddGame(ctx context.Context, title string, platforms []string) (*models.Game, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", common.ErrorValidation)
	}
	return s.repomanager.Games(s.db).Create(ctx, &models.Game{Title: title, Platforms: cleanPlatforms(platforms)})
}

func (s *CatalogService) UpdateGame(ctx context.Context, id string, upd models.GameUpdate) (*models.Game, error) {
	if err := validateID("game id", id); err != nil {
		return nil, err
	}
	if upd.Title != nil {
		title := strings.TrimSpace(*upd.Title)
		if title == "" {
			return nil, fmt.Errorf("%w: title must not be empty", common.ErrorValidation)
		}
		upd.Title = &title
	}
	if upd.Platforms != nil {
		p := cleanPlatforms(*upd.Platforms)
		upd.Platforms = &p
	}
	return s.repomanager.Games(s.db).Update(ctx, id, upd)
}

// DeleteGame removes the game with its reviews and returns the games left.
func (s *CatalogService) DeleteGame(ctx context.Context, id string) ([]*models.Game, error) {
	if err := validateID("game id", id); err != nil {
		return nil, err
	}

	repo := s.repomanager.Games(s.db)
	if err := repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return repo.List(ctx)
}

func (s *CatalogService) Reviews(ctx context.Context) ([]*models.Review, error) {
	return s.repomanager.Reviews(s.db).List(ctx)
}

func (s *CatalogService) Review(ctx context.Context, id string) (*ReviewDetails, error) {
	if err := validateID("review id", id); err != nil {
		return nil, err
	}

	review, err := s.repomanager.Reviews(s.db).FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	author, err := s.repomanager.Accounts(s.db).FindByID(ctx, review.AuthorID)
	if err != nil {
		return nil, err
	}

	game, err := s.repomanager.Games(s.db).FindByID(ctx, review.GameID)
	if err != nil {
		return nil, err
	}

	return &ReviewDetails{Review: review, Author: author, Game: game}, nil
}

// SubmitReview stores a review written by the authenticated caller.
func (s *CatalogService) SubmitReview(ctx context.Context, in NewReview) (*models.Review, error) {
	id, err := auth.Require(ctx)
	if err != nil {
		return nil, err
	}

	if err := validateID("game id", in.GameID); err != nil {
		return nil, err
	}

	var review *models.Review
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := s.repomanager.Games(tx).FindByID(ctx, in.GameID); err != nil {
			return err
		}

		r, err := s.repomanager.Reviews(tx).Create(ctx, &models.Review{
			Rating:   in.Rating,
			Content:  in.Content,
			AuthorID: id.AccountID,
			GameID:   in.GameID,
		})
		if err != nil {
			return err
		}
		review = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	return review, nil
}

func cleanPlatforms(in []string) []string {
	out := make([]string, 0, len(in))
	for _, p := range in {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
