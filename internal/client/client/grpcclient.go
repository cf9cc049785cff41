package client

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gamezone/gamezone/internal/api"
	"github.com/gamezone/gamezone/internal/common"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// catalogAPI is the subset of *api.CatalogClient used here.
type catalogAPI interface {
	Games(ctx context.Context, opts ...grpc.CallOption) (*api.GamesResponse, error)
	Game(ctx context.Context, id string, opts ...grpc.CallOption) (*api.GameResponse, error)
	GamePage(ctx context.Context, pageNo int, opts ...grpc.CallOption) (*api.GamesResponse, error)
	GamesByTitle(ctx context.Context, title string, opts ...grpc.CallOption) (*api.GamesResponse, error)
	Reviews(ctx context.Context, opts ...grpc.CallOption) (*api.ReviewsResponse, error)
	Authors(ctx context.Context, opts ...grpc.CallOption) (*api.AuthorsResponse, error)
	Author(ctx context.Context, id string, opts ...grpc.CallOption) (*api.AuthorResponse, error)
	AddGame(ctx context.Context, in *api.AddGameRequest, opts ...grpc.CallOption) (*api.Game, error)
	DeleteGame(ctx context.Context, id string, opts ...grpc.CallOption) (*api.GamesResponse, error)
	AddAuthor(ctx context.Context, in *api.AddAuthorRequest, opts ...grpc.CallOption) (*api.AddAuthorResponse, error)
	AddReview(ctx context.Context, in *api.AddReviewRequest, opts ...grpc.CallOption) (*api.Review, error)
}

type GRPCClient struct {
	endpointURL string
	timeout     time.Duration
	conn        *grpc.ClientConn
	client      catalogAPI

	mu          sync.RWMutex
	accessToken string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AuthorizationHeaderName)
	md.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if token := s.token(); token != "" {
		ctx = withAccessToken(ctx, token)
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	return invoker(ctx, method, req, reply, cc, opts...)
}

// NewGRPCClient dials endpointURL without TLS. Extra dial options are
// appended, which lets tests substitute the transport.
func NewGRPCClient(endpointURL string, timeout time.Duration, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, timeout: timeout}

	dialOpts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(c.accessTokenInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(endpointURL, dialOpts...)
	if err != nil {
		return nil, err
	}
	c.conn = conn
	c.client = api.NewCatalogClient(conn)
	return c, nil
}

func (s *GRPCClient) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken = token
}

func (s *GRPCClient) token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

// Register creates an author and returns it with its session token. The
// password is sent once and is not retained.
func (s *GRPCClient) Register(ctx context.Context, name, email string, password []byte, verified bool) (*api.Author, string, error) {
	req := &api.AddAuthorRequest{Name: name, Email: email, Password: string(password), Verified: verified}

	resp, err := s.client.AddAuthor(ctx, req)
	if err != nil {
		return nil, "", s.mapError(err)
	}
	return &resp.Author, resp.Token, nil
}

func (s *GRPCClient) Authors(ctx context.Context) ([]api.Author, error) {
	resp, err := s.client.Authors(ctx)
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Authors, nil
}

func (s *GRPCClient) Author(ctx context.Context, id string) (*api.AuthorResponse, error) {
	resp, err := s.client.Author(ctx, id)
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) Games(ctx context.Context) ([]api.Game, error) {
	resp, err := s.client.Games(ctx)
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Games, nil
}

func (s *GRPCClient) Game(ctx context.Context, id string) (*api.GameResponse, error) {
	resp, err := s.client.Game(ctx, id)
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) GamePage(ctx context.Context, pageNo int) ([]api.Game, error) {
	resp, err := s.client.GamePage(ctx, pageNo)
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Games, nil
}

func (s *GRPCClient) GamesByTitle(ctx context.Context, title string) ([]api.Game, error) {
	resp, err := s.client.GamesByTitle(ctx, title)
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Games, nil
}

func (s *GRPCClient) AddGame(ctx context.Context, title string, platforms []string) (*api.Game, error) {
	g, err := s.client.AddGame(ctx, &api.AddGameRequest{Title: title, Platforms: platforms})
	if err != nil {
		return nil, s.mapError(err)
	}
	return g, nil
}

func (s *GRPCClient) DeleteGame(ctx context.Context, id string) ([]api.Game, error) {
	resp, err := s.client.DeleteGame(ctx, id)
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Games, nil
}

func (s *GRPCClient) Reviews(ctx context.Context) ([]api.Review, error) {
	resp, err := s.client.Reviews(ctx)
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Reviews, nil
}

func (s *GRPCClient) AddReview(ctx context.Context, gameID string, rating int, content string) (*api.Review, error) {
	r, err := s.client.AddReview(ctx, &api.AddReviewRequest{GameID: gameID, Rating: rating, Content: content})
	if err != nil {
		return nil, s.mapError(err)
	}
	return r, nil
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return ErrUnauthorized
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	case codes.NotFound:
		return ErrNotFound
	case codes.OutOfRange:
		return ErrNoMoreData
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", ErrInvalid, st.Message())
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
