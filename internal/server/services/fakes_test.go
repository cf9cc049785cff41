package services

import (
	"context"
	"sync"
	"time"

	"github.com/gamezone/gamezone/internal/dbx"
	"github.com/gamezone/gamezone/internal/server/models"
	"github.com/gamezone/gamezone/internal/server/repositories/accounts"
	"github.com/gamezone/gamezone/internal/server/repositories/games"
	"github.com/gamezone/gamezone/internal/server/repositories/repomanager"
	"github.com/gamezone/gamezone/internal/server/repositories/reviews"
)

// memStore wraps the in-memory manager, counts vended repositories and can
// make Create fail.
type memStore struct {
	*repomanager.InMemoryRepositoryManager

	accountsErr error
	reviewsErr  error

	calls int
}

func newMemStore() *memStore {
	return &memStore{InMemoryRepositoryManager: repomanager.NewInMemoryRepositoryManager()}
}

func (m *memStore) Accounts(db dbx.DBTX) accounts.Repository {
	m.calls++
	return &failingAccounts{Repository: m.InMemoryRepositoryManager.Accounts(db), err: m.accountsErr}
}

func (m *memStore) Games(db dbx.DBTX) games.Repository {
	m.calls++
	return m.InMemoryRepositoryManager.Games(db)
}

func (m *memStore) Reviews(db dbx.DBTX) reviews.Repository {
	m.calls++
	return &failingReviews{Repository: m.InMemoryRepositoryManager.Reviews(db), err: m.reviewsErr}
}

type failingAccounts struct {
	accounts.Repository
	err error
}

func (f *failingAccounts) Create(ctx context.Context, a *models.Account) (*models.Account, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.Repository.Create(ctx, a)
}

type failingReviews struct {
	reviews.Repository
	err error
}

func (f *failingReviews) Create(ctx context.Context, r *models.Review) (*models.Review, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.Repository.Create(ctx, r)
}

// fakeSessions records the last Put per account.
type fakeSessions struct {
	mu     sync.Mutex
	tokens map[string]string
	ttls   map[string]time.Duration
	err    error
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{tokens: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeSessions) Put(ctx context.Context, accountID, token string, ttl time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.tokens[accountID] = token
	f.ttls[accountID] = ttl
	return nil
}
