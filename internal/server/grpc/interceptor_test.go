package grpc

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gamezone/gamezone/internal/logging"
	"github.com/gamezone/gamezone/internal/server/auth"
	"github.com/gamezone/gamezone/internal/server/models"
	"github.com/gamezone/gamezone/internal/server/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const accountA = "11111111-1111-4111-8111-111111111111"

type stubDirectory struct {
	account *models.Account
	err     error
}

func (d stubDirectory) FindByID(ctx context.Context, id string) (*models.Account, error) {
	return d.account, d.err
}

func newInterceptorServer(dir auth.Directory) (*GRPCServer, *auth.Codec, *observability.Metrics) {
	codec := auth.NewCodec([]byte("secret"), time.Hour)
	m := observability.NewMetrics(prometheus.NewRegistry())
	s := NewGRPCServer("", logging.Nop(), auth.NewGate(codec, dir), nil, nil, m)
	return s, codec, m
}

func withToken(token string) context.Context {
	return metadata.NewIncomingContext(context.Background(), metadata.Pairs("authorization", token))
}

var info = &grpc.UnaryServerInfo{FullMethod: "/gamezone.CatalogService/Authors"}

func TestPresentedToken(t *testing.T) {
	assert.Equal(t, "", presentedToken(context.Background()))
	assert.Equal(t, "", presentedToken(metadata.NewIncomingContext(context.Background(), metadata.MD{})))
	assert.Equal(t, "abc", presentedToken(withToken("abc")))
	assert.Equal(t, "abc", presentedToken(withToken("Bearer abc")))
	assert.Equal(t, "abc", presentedToken(withToken("bearer  abc ")))
	assert.Equal(t, "Bearer", presentedToken(withToken("Bearer ")))
	assert.Equal(t, "", presentedToken(withToken("   ")))
}

func TestAuthInterceptor_Anonymous(t *testing.T) {
	s, _, m := newInterceptorServer(stubDirectory{})

	called := false
	_, err := s.authInterceptor(context.Background(), nil, info, func(ctx context.Context, req interface{}) (interface{}, error) {
		called = true
		_, ok := auth.IdentityFromContext(ctx)
		assert.False(t, ok)
		return "ok", nil
	})
	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.GateDecisions.WithLabelValues(outcomeAnonymous)))
}

func TestAuthInterceptor_Authenticated(t *testing.T) {
	s, codec, m := newInterceptorServer(stubDirectory{account: &models.Account{ID: accountA, Verified: true}})
	tok, err := codec.Issue(accountA)
	require.NoError(t, err)

	resp, err := s.authInterceptor(withToken("Bearer "+tok), nil, info, func(ctx context.Context, req interface{}) (interface{}, error) {
		id, ok := auth.IdentityFromContext(ctx)
		require.True(t, ok)
		return id.AccountID, nil
	})
	require.NoError(t, err)
	assert.Equal(t, accountA, resp)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.GateDecisions.WithLabelValues(outcomeAuthenticated)))
}

func TestAuthInterceptor_RejectionsLookAlike(t *testing.T) {
	s, codec, m := newInterceptorServer(stubDirectory{account: &models.Account{ID: accountA, Verified: false}})
	unverified, err := codec.Issue(accountA)
	require.NoError(t, err)

	never := func(ctx context.Context, req interface{}) (interface{}, error) {
		t.Fatal("handler must not run")
		return nil, nil
	}

	_, errGarbled := s.authInterceptor(withToken("garbled"), nil, info, never)
	_, errUnverified := s.authInterceptor(withToken(unverified), nil, info, never)
	_, errBareBearer := s.authInterceptor(withToken("Bearer "), nil, info, never)

	for _, err := range []error{errGarbled, errUnverified, errBareBearer} {
		st, _ := status.FromError(err)
		assert.Equal(t, codes.Unauthenticated, st.Code())
		assert.Equal(t, "authentication required", st.Message())
	}
	assert.Equal(t, 3.0, testutil.ToFloat64(m.GateDecisions.WithLabelValues(outcomeRejected)))
}

func TestAuthInterceptor_DirectoryErrorIsInternal(t *testing.T) {
	s, codec, m := newInterceptorServer(stubDirectory{err: errors.New("connection reset")})
	tok, err := codec.Issue(accountA)
	require.NoError(t, err)

	_, err = s.authInterceptor(withToken(tok), nil, info, func(ctx context.Context, req interface{}) (interface{}, error) {
		t.Fatal("handler must not run")
		return nil, nil
	})
	st, _ := status.FromError(err)
	assert.Equal(t, codes.Internal, st.Code())
	assert.NotContains(t, st.Message(), "connection reset")
	assert.Equal(t, 1.0, testutil.ToFloat64(m.GateDecisions.WithLabelValues(outcomeError)))
}

func TestLoggingInterceptor_CountsByCode(t *testing.T) {
	s, _, m := newInterceptorServer(stubDirectory{})

	_, _ = s.loggingInterceptor(context.Background(), nil, info, func(ctx context.Context, req interface{}) (interface{}, error) {
		return "ok", nil
	})
	_, err := s.loggingInterceptor(context.Background(), nil, info, func(ctx context.Context, req interface{}) (interface{}, error) {
		return nil, status.Error(codes.NotFound, "not found")
	})
	assert.Equal(t, codes.NotFound, status.Code(err))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.RPCRequests.WithLabelValues(info.FullMethod, "OK")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RPCRequests.WithLabelValues(info.FullMethod, "NotFound")))
}
