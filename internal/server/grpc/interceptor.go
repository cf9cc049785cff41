package grpc

import (
	"context"
	"errors"
	"time"

	"github.com/gamezone/gamezone/internal/common"
	"github.com/gamezone/gamezone/internal/server/auth"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const (
	outcomeAnonymous     = "anonymous"
	outcomeAuthenticated = "authenticated"
	outcomeRejected      = "rejected"
	outcomeError         = "error"
)

func (s *GRPCServer) loggingInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	start := time.Now()
	l := s.logger.With("request_id", uuid.NewString(), "method", info.FullMethod)

	resp, err := handler(ctx, req)

	code := status.Code(err)
	s.metrics.ObserveRPC(info.FullMethod, code.String())

	switch code {
	case codes.OK:
		l.Info(ctx, "request handled", "code", code.String(), "duration", time.Since(start))
	case codes.Internal, codes.Unknown:
		l.Error(ctx, "request failed", "code", code.String(), "duration", time.Since(start))
	default:
		l.Warn(ctx, "request rejected", "code", code.String(), "duration", time.Since(start))
	}

	return resp, err
}

// presentedToken reads the session token from the authorization metadata.
func presentedToken(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	values := md.Get(common.AuthorizationHeaderName)
	if len(values) == 0 {
		return ""
	}
	return common.StripBearer(values[0])
}

func (s *GRPCServer) authInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	id, err := s.gate.Authenticate(ctx, presentedToken(ctx))
	if err != nil {
		var rejection *auth.Rejection
		if errors.As(err, &rejection) {
			s.metrics.ObserveGate(outcomeRejected)
			s.logger.Warn(ctx, "authentication rejected", "method", info.FullMethod, "reason", rejection.Kind.String())
			return nil, status.Error(codes.Unauthenticated, common.ErrUnauthenticated.Error())
		}
		s.metrics.ObserveGate(outcomeError)
		s.logger.Error(ctx, "authentication failed", "method", info.FullMethod, "error", err)
		return nil, status.Error(codes.Internal, common.ErrorInternal.Error())
	}

	if id == nil {
		s.metrics.ObserveGate(outcomeAnonymous)
		return handler(ctx, req)
	}

	s.metrics.ObserveGate(outcomeAuthenticated)
	return handler(auth.WithIdentity(ctx, *id), req)
}
