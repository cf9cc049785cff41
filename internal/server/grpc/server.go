// Package grpc exposes the catalog service over gRPC. Every call passes the
// logging interceptor and then the authorization gate before reaching a
// handler.
package grpc

import (
	"context"
	"net"

	"github.com/gamezone/gamezone/internal/api"
	"github.com/gamezone/gamezone/internal/logging"
	"github.com/gamezone/gamezone/internal/server/auth"
	"github.com/gamezone/gamezone/internal/server/observability"
	"github.com/gamezone/gamezone/internal/server/services"
	"google.golang.org/grpc"
)

type GRPCServer struct {
	address  string
	accounts *services.AccountService
	catalog  *services.CatalogService
	gate     *auth.Gate
	metrics  *observability.Metrics
	logger   logging.Logger
}

var _ api.CatalogServer = (*GRPCServer)(nil)

func NewGRPCServer(a string, l logging.Logger, gate *auth.Gate, as *services.AccountService, cs *services.CatalogService, m *observability.Metrics) *GRPCServer {
	return &GRPCServer{
		address:  a,
		logger:   l.With("module", "grpc_server"),
		gate:     gate,
		accounts: as,
		catalog:  cs,
		metrics:  m,
	}
}

// NewServer builds a grpc.Server with the interceptor chain and the catalog
// service registered.
func (s *GRPCServer) NewServer(opts ...grpc.ServerOption) *grpc.Server {
	opts = append(opts, grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.authInterceptor))
	srv := grpc.NewServer(opts...)
	api.RegisterCatalogServer(srv, s)
	return srv
}

// Run serves until ctx is cancelled, then stops gracefully.
func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := s.NewServer()

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	<-stopped
	return nil
}
