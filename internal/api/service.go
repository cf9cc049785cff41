package api

import (
	"context"

	"google.golang.org/grpc"
)

const ServiceName = "gamezone.CatalogService"

const (
	MethodGames        = "Games"
	MethodGame         = "Game"
	MethodGamePage     = "GamePage"
	MethodGamesByTitle = "GamesByTitle"
	MethodReviews      = "Reviews"
	MethodReview       = "Review"
	MethodAuthors      = "Authors"
	MethodAuthor       = "Author"
	MethodAddGame      = "AddGame"
	MethodUpdateGame   = "UpdateGame"
	MethodDeleteGame   = "DeleteGame"
	MethodAddAuthor    = "AddAuthor"
	MethodAddReview    = "AddReview"
)

// FullMethod returns the gRPC path of method, e.g. "/gamezone.CatalogService/Games".
func FullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

// CatalogServer is implemented by the server side of the catalog service.
type CatalogServer interface {
	Games(context.Context, *Empty) (*GamesResponse, error)
	Game(context.Context, *IDRequest) (*GameResponse, error)
	GamePage(context.Context, *GamePageRequest) (*GamesResponse, error)
	GamesByTitle(context.Context, *GamesByTitleRequest) (*GamesResponse, error)
	Reviews(context.Context, *Empty) (*ReviewsResponse, error)
	Review(context.Context, *IDRequest) (*ReviewResponse, error)
	Authors(context.Context, *Empty) (*AuthorsResponse, error)
	Author(context.Context, *IDRequest) (*AuthorResponse, error)
	AddGame(context.Context, *AddGameRequest) (*Game, error)
	UpdateGame(context.Context, *UpdateGameRequest) (*Game, error)
	DeleteGame(context.Context, *IDRequest) (*GamesResponse, error)
	AddAuthor(context.Context, *AddAuthorRequest) (*AddAuthorResponse, error)
	AddReview(context.Context, *AddReviewRequest) (*Review, error)
}

func unaryHandler[Req any, Resp any](method string, call func(CatalogServer, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(CatalogServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: FullMethod(method)}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(CatalogServer), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// ServiceDesc describes the catalog service for grpc.Server.RegisterService.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CatalogServer)(nil),
	Methods: []grpc.MethodDesc{
		unaryHandler(MethodGames, CatalogServer.Games),
		unaryHandler(MethodGame, CatalogServer.Game),
		unaryHandler(MethodGamePage, CatalogServer.GamePage),
		unaryHandler(MethodGamesByTitle, CatalogServer.GamesByTitle),
		unaryHandler(MethodReviews, CatalogServer.Reviews),
		unaryHandler(MethodReview, CatalogServer.Review),
		unaryHandler(MethodAuthors, CatalogServer.Authors),
		unaryHandler(MethodAuthor, CatalogServer.Author),
		unaryHandler(MethodAddGame, CatalogServer.AddGame),
		unaryHandler(MethodUpdateGame, CatalogServer.UpdateGame),
		unaryHandler(MethodDeleteGame, CatalogServer.DeleteGame),
		unaryHandler(MethodAddAuthor, CatalogServer.AddAuthor),
		unaryHandler(MethodAddReview, CatalogServer.AddReview),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "gamezone/catalog",
}

func RegisterCatalogServer(s grpc.ServiceRegistrar, srv CatalogServer) {
	s.RegisterService(&ServiceDesc, srv)
}
