package api

import (
	"context"

	"google.golang.org/grpc"
)

// CatalogClient is a typed client for the catalog service.
type CatalogClient struct {
	cc grpc.ClientConnInterface
}

func NewCatalogClient(cc grpc.ClientConnInterface) *CatalogClient {
	return &CatalogClient{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, FullMethod(method), in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *CatalogClient) Games(ctx context.Context, opts ...grpc.CallOption) (*GamesResponse, error) {
	return invoke[GamesResponse](ctx, c.cc, MethodGames, &Empty{}, opts)
}

func (c *CatalogClient) Game(ctx context.Context, id string, opts ...grpc.CallOption) (*GameResponse, error) {
	return invoke[GameResponse](ctx, c.cc, MethodGame, &IDRequest{ID: id}, opts)
}

func (c *CatalogClient) GamePage(ctx context.Context, pageNo int, opts ...grpc.CallOption) (*GamesResponse, error) {
	return invoke[GamesResponse](ctx, c.cc, MethodGamePage, &GamePageRequest{PageNo: pageNo}, opts)
}

func (c *CatalogClient) GamesByTitle(ctx context.Context, title string, opts ...grpc.CallOption) (*GamesResponse, error) {
	return invoke[GamesResponse](ctx, c.cc, MethodGamesByTitle, &GamesByTitleRequest{Title: title}, opts)
}

func (c *CatalogClient) Reviews(ctx context.Context, opts ...grpc.CallOption) (*ReviewsResponse, error) {
	return invoke[ReviewsResponse](ctx, c.cc, MethodReviews, &Empty{}, opts)
}

func (c *CatalogClient) Review(ctx context.Context, id string, opts ...grpc.CallOption) (*ReviewResponse, error) {
	return invoke[ReviewResponse](ctx, c.cc, MethodReview, &IDRequest{ID: id}, opts)
}

func (c *CatalogClient) Authors(ctx context.Context, opts ...grpc.CallOption) (*AuthorsResponse, error) {
	return invoke[AuthorsResponse](ctx, c.cc, MethodAuthors, &Empty{}, opts)
}

func (c *CatalogClient) Author(ctx context.Context, id string, opts ...grpc.CallOption) (*AuthorResponse, error) {
	return invoke[AuthorResponse](ctx, c.cc, MethodAuthor, &IDRequest{ID: id}, opts)
}

func (c *CatalogClient) AddGame(ctx context.Context, in *AddGameRequest, opts ...grpc.CallOption) (*Game, error) {
	return invoke[Game](ctx, c.cc, MethodAddGame, in, opts)
}

func (c *CatalogClient) UpdateGame(ctx context.Context, in *UpdateGameRequest, opts ...grpc.CallOption) (*Game, error) {
	return invoke[Game](ctx, c.cc, MethodUpdateGame, in, opts)
}

func (c *CatalogClient) DeleteGame(ctx context.Context, id string, opts ...grpc.CallOption) (*GamesResponse, error) {
	return invoke[GamesResponse](ctx, c.cc, MethodDeleteGame, &IDRequest{ID: id}, opts)
}

func (c *CatalogClient) AddAuthor(ctx context.Context, in *AddAuthorRequest, opts ...grpc.CallOption) (*AddAuthorResponse, error) {
	return invoke[AddAuthorResponse](ctx, c.cc, MethodAddAuthor, in, opts)
}

func (c *CatalogClient) AddReview(ctx context.Context, in *AddReviewRequest, opts ...grpc.CallOption) (*Review, error) {
	return invoke[Review](ctx, c.cc, MethodAddReview, in, opts)
}
