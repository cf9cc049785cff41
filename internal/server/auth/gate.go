package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/gamezone/gamezone/internal/common"
	"github.com/gamezone/gamezone/internal/server/models"
	"github.com/google/uuid"
)

// Directory resolves accounts by id; it returns common.ErrorNotFound for
// unknown ids.
type Directory interface {
	FindByID(ctx context.Context, id string) (*models.Account, error)
}

// SessionLookup reads the token currently parked for an account.
type SessionLookup interface {
	Get(ctx context.Context, accountID string) (string, error)
}

type Gate struct {
	codec         *Codec
	directory     Directory
	sessions      SessionLookup
	singleSession bool
}

type GateOption func(*Gate)

// WithSingleSession makes the gate accept only the token currently cached
// for the account.
func WithSingleSession(sessions SessionLookup) GateOption {
	return func(g *Gate) {
		g.sessions = sessions
		g.singleSession = true
	}
}

func NewGate(codec *Codec, directory Directory, opts ...GateOption) *Gate {
	g := &Gate{codec: codec, directory: directory}
	for _, o := range opts {
		o(g)
	}
	return g
}

// Authenticate turns a presented token into an identity. An empty token is
// anonymous: nil identity and nil error. Authentication failures are
// *Rejection values; any other error comes from the directory or the cache.
func (g *Gate) Authenticate(ctx context.Context, presented string) (*Identity, error) {
	if presented == "" {
		return nil, nil
	}

	accountID, err := g.codec.Verify(presented)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrTokenExpired):
			return nil, reject(KindExpired)
		case errors.Is(err, common.ErrInvalidSignature):
			return nil, reject(KindInvalidSignature)
		default:
			return nil, reject(KindMalformed)
		}
	}
	if uuid.Validate(accountID) != nil {
		return nil, reject(KindMalformed)
	}

	account, err := g.directory.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, reject(KindUnknownAccount)
		}
		return nil, fmt.Errorf("account lookup: %w", err)
	}

	if !account.Verified {
		return nil, reject(KindUnverified)
	}

	if g.singleSession {
		cached, err := g.sessions.Get(ctx, accountID)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return nil, reject(KindSessionMismatch)
			}
			return nil, fmt.Errorf("session lookup: %w", err)
		}
		if cached != presented {
			return nil, reject(KindSessionMismatch)
		}
	}

	return &Identity{AccountID: account.ID}, nil
}
