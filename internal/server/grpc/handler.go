package grpc

import (
	"context"

	"github.com/gamezone/gamezone/internal/api"
	"github.com/gamezone/gamezone/internal/server/models"
	"github.com/gamezone/gamezone/internal/server/services"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func (s *GRPCServer) fail(ctx context.Context, err error) error {
	mapped := mapError(err)
	if status.Code(mapped) == codes.Internal {
		s.logger.Error(ctx, "internal error", "error", err)
	}
	return mapped
}

func (s *GRPCServer) Games(ctx context.Context, _ *api.Empty) (*api.GamesResponse, error) {
	games, err := s.catalog.Games(ctx)
	if err != nil {
		return nil, s.fail(ctx, err)
	}
	return &api.GamesResponse{Games: toGames(games)}, nil
}

func (s *GRPCServer) Game(ctx context.Context, req *api.IDRequest) (*api.GameResponse, error) {
	d, err := s.catalog.Game(ctx, req.ID)
	if err != nil {
		return nil, s.fail(ctx, err)
	}
	return &api.GameResponse{Game: toGame(d.Game), Reviews: toReviews(d.Reviews)}, nil
}

func (s *GRPCServer) GamePage(ctx context.Context, req *api.GamePageRequest) (*api.GamesResponse, error) {
	games, err := s.catalog.GamePage(ctx, req.PageNo)
	if err != nil {
		return nil, s.fail(ctx, err)
	}
	return &api.GamesResponse{Games: toGames(games)}, nil
}

func (s *GRPCServer) GamesByTitle(ctx context.Context, req *api.GamesByTitleRequest) (*api.GamesResponse, error) {
	games, err := s.catalog.GamesByTitle(ctx, req.Title)
	if err != nil {
		return nil, s.fail(ctx, err)
	}
	return &api.GamesResponse{Games: toGames(games)}, nil
}

func (s *GRPCServer) Reviews(ctx context.Context, _ *api.Empty) (*api.ReviewsResponse, error) {
	reviews, err := s.catalog.Reviews(ctx)
	if err != nil {
		return nil, s.fail(ctx, err)
	}
	return &api.ReviewsResponse{Reviews: toReviews(reviews)}, nil
}

func (s *GRPCServer) Review(ctx context.Context, req *api.IDRequest) (*api.ReviewResponse, error) {
	d, err := s.catalog.Review(ctx, req.ID)
	if err != nil {
		return nil, s.fail(ctx, err)
	}
	return &api.ReviewResponse{Review: toReview(d.Review), Author: toAuthor(d.Author), Game: toGame(d.Game)}, nil
}

func (s *GRPCServer) Authors(ctx context.Context, _ *api.Empty) (*api.AuthorsResponse, error) {
	accounts, err := s.accounts.List(ctx)
	if err != nil {
		return nil, s.fail(ctx, err)
	}
	out := make([]api.Author, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, toAuthor(a))
	}
	return &api.AuthorsResponse{Authors: out}, nil
}

func (s *GRPCServer) Author(ctx context.Context, req *api.IDRequest) (*api.AuthorResponse, error) {
	d, err := s.accounts.Get(ctx, req.ID)
	if err != nil {
		return nil, s.fail(ctx, err)
	}
	return &api.AuthorResponse{Author: toAuthor(d.Account), Reviews: toReviews(d.Reviews)}, nil
}

func (s *GRPCServer) AddGame(ctx context.Context, req *api.AddGameRequest) (*api.Game, error) {
	g, err := s.catalog.AddGame(ctx, req.Title, req.Platforms)
	if err != nil {
		return nil, s.fail(ctx, err)
	}
	out := toGame(g)
	return &out, nil
}

func (s *GRPCServer) UpdateGame(ctx context.Context, req *api.UpdateGameRequest) (*api.Game, error) {
	g, err := s.catalog.UpdateGame(ctx, req.ID, models.GameUpdate{Title: req.Title, Platforms: req.Platforms})
	if err != nil {
		return nil, s.fail(ctx, err)
	}
	out := toGame(g)
	return &out, nil
}

func (s *GRPCServer) DeleteGame(ctx context.Context, req *api.IDRequest) (*api.GamesResponse, error) {
	games, err := s.catalog.DeleteGame(ctx, req.ID)
	if err != nil {
		return nil, s.fail(ctx, err)
	}
	return &api.GamesResponse{Games: toGames(games)}, nil
}

func (s *GRPCServer) AddAuthor(ctx context.Context, req *api.AddAuthorRequest) (*api.AddAuthorResponse, error) {
	a, token, err := s.accounts.Create(ctx, services.NewAccount{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Verified: req.Verified,
	})
	if err != nil {
		return nil, s.fail(ctx, err)
	}

	s.logger.Info(ctx, "author registered", "author_id", a.ID, "verified", a.Verified)
	return &api.AddAuthorResponse{Author: toAuthor(a), Token: token}, nil
}

func (s *GRPCServer) AddReview(ctx context.Context, req *api.AddReviewRequest) (*api.Review, error) {
	r, err := s.catalog.SubmitReview(ctx, services.NewReview{
		Rating:  req.Rating,
		Content: req.Content,
		GameID:  req.GameID,
	})
	if err != nil {
		return nil, s.fail(ctx, err)
	}
	out := toReview(r)
	return &out, nil
}
