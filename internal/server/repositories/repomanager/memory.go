package repomanager

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"sort"
	"sync"
	"time"

	"github.com/gamezone/gamezone/internal/common"
	"github.com/gamezone/gamezone/internal/dbx"
	"github.com/gamezone/gamezone/internal/server/models"
	"github.com/gamezone/gamezone/internal/server/repositories/accounts"
	"github.com/gamezone/gamezone/internal/server/repositories/games"
	"github.com/gamezone/gamezone/internal/server/repositories/reviews"
	"github.com/google/uuid"
)

// InMemoryRepositoryManager keeps everything in process memory. The DBTX
// passed to the factories is ignored, so transactions are not isolated.
type InMemoryRepositoryManager struct {
	mu       sync.Mutex
	seq      int
	accounts map[string]*models.Account
	games    map[string]*models.Game
	reviews  map[string]*models.Review
	order    map[string]int
	now      func() time.Time
}

func NewInMemoryRepositoryManager() *InMemoryRepositoryManager {
	return &InMemoryRepositoryManager{
		accounts: map[string]*models.Account{},
		games:    map[string]*models.Game{},
		reviews:  map[string]*models.Review{},
		order:    map[string]int{},
		now:      time.Now,
	}
}

func (m *InMemoryRepositoryManager) RunMigrations(context.Context, *sql.DB) error {
	return nil
}

func (m *InMemoryRepositoryManager) Accounts(dbx.DBTX) accounts.Repository {
	return (*memAccounts)(m)
}

func (m *InMemoryRepositoryManager) Games(dbx.DBTX) games.Repository {
	return (*memGames)(m)
}

func (m *InMemoryRepositoryManager) Reviews(dbx.DBTX) reviews.Repository {
	return (*memReviews)(m)
}

// insert registers id and returns its creation time; callers hold mu.
func (m *InMemoryRepositoryManager) insert() (string, time.Time) {
	m.seq++
	id := uuid.NewString()
	m.order[id] = m.seq
	return id, m.now()
}

func (m *InMemoryRepositoryManager) before(a, b string) bool {
	return m.order[a] < m.order[b]
}

type memAccounts InMemoryRepositoryManager

func (r *memAccounts) Create(ctx context.Context, a *models.Account) (*models.Account, error) {
	m := (*InMemoryRepositoryManager)(r)
	m.mu.Lock()
	defer m.mu.Unlock()

	a.ID, a.CreatedAt = m.insert()
	cp := *a
	m.accounts[a.ID] = &cp
	return a, nil
}

func (r *memAccounts) FindByID(ctx context.Context, id string) (*models.Account, error) {
	m := (*InMemoryRepositoryManager)(r)
	m.mu.Lock()
	defer m.mu.Unlock()

	a, ok := m.accounts[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *a
	return &cp, nil
}

func (r *memAccounts) List(ctx context.Context) ([]*models.Account, error) {
	m := (*InMemoryRepositoryManager)(r)
	m.mu.Lock()
	defer m.mu.Unlock()

	out := []*models.Account{}
	for _, a := range m.accounts {
		cp := *a
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return m.before(out[i].ID, out[j].ID) })
	return out, nil
}

type memGames InMemoryRepositoryManager

func (r *memGames) Create(ctx context.Context, g *models.Game) (*models.Game, error) {
	m := (*InMemoryRepositoryManager)(r)
	m.mu.Lock()
	defer m.mu.Unlock()

	if g.Platforms == nil {
		g.Platforms = []string{}
	}
	g.ID, g.CreatedAt = m.insert()
	m.games[g.ID] = copyGame(g)
	return g, nil
}

func (r *memGames) FindByID(ctx context.Context, id string) (*models.Game, error) {
	m := (*InMemoryRepositoryManager)(r)
	m.mu.Lock()
	defer m.mu.Unlock()

	g, ok := m.games[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return copyGame(g), nil
}

func (r *memGames) List(ctx context.Context) ([]*models.Game, error) {
	return r.filter(func(*models.Game) bool { return true }), nil
}

func (r *memGames) Page(ctx context.Context, limit, offset int) ([]*models.Game, error) {
	all := r.filter(func(*models.Game) bool { return true })
	if offset >= len(all) {
		return []*models.Game{}, nil
	}
	end := min(offset+limit, len(all))
	return all[offset:end], nil
}

func (r *memGames) Count(ctx context.Context) (int, error) {
	m := (*InMemoryRepositoryManager)(r)
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.games), nil
}

func (r *memGames) SearchTitle(ctx context.Context, pattern string) ([]*models.Game, error) {
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return r.filter(func(g *models.Game) bool { return re.MatchString(g.Title) }), nil
}

func (r *memGames) Update(ctx context.Context, id string, upd models.GameUpdate) (*models.Game, error) {
	m := (*InMemoryRepositoryManager)(r)
	m.mu.Lock()
	defer m.mu.Unlock()

	g, ok := m.games[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	if upd.Title != nil {
		g.Title = *upd.Title
	}
	if upd.Platforms != nil {
		g.Platforms = append([]string{}, *upd.Platforms...)
	}
	return copyGame(g), nil
}

func (r *memGames) Delete(ctx context.Context, id string) error {
	m := (*InMemoryRepositoryManager)(r)
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.games[id]; !ok {
		return common.ErrorNotFound
	}
	delete(m.games, id)
	for rid, rv := range m.reviews {
		if rv.GameID == id {
			delete(m.reviews, rid)
		}
	}
	return nil
}

func (r *memGames) filter(match func(*models.Game) bool) []*models.Game {
	m := (*InMemoryRepositoryManager)(r)
	m.mu.Lock()
	defer m.mu.Unlock()

	out := []*models.Game{}
	for _, g := range m.games {
		if match(g) {
			out = append(out, copyGame(g))
		}
	}
	sort.Slice(out, func(i, j int) bool { return m.before(out[i].ID, out[j].ID) })
	return out
}

func copyGame(g *models.Game) *models.Game {
	cp := *g
	cp.Platforms = append([]string{}, g.Platforms...)
	return &cp
}

type memReviews InMemoryRepositoryManager

func (r *memReviews) Create(ctx context.Context, rv *models.Review) (*models.Review, error) {
	m := (*InMemoryRepositoryManager)(r)
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.accounts[rv.AuthorID]; !ok {
		return nil, fmt.Errorf("db error: unknown author %q", rv.AuthorID)
	}
	if _, ok := m.games[rv.GameID]; !ok {
		return nil, fmt.Errorf("db error: unknown game %q", rv.GameID)
	}

	rv.ID, rv.CreatedAt = m.insert()
	cp := *rv
	m.reviews[rv.ID] = &cp
	return rv, nil
}

func (r *memReviews) FindByID(ctx context.Context, id string) (*models.Review, error) {
	m := (*InMemoryRepositoryManager)(r)
	m.mu.Lock()
	defer m.mu.Unlock()

	rv, ok := m.reviews[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *rv
	return &cp, nil
}

func (r *memReviews) List(ctx context.Context) ([]*models.Review, error) {
	return r.filter(func(*models.Review) bool { return true }), nil
}

func (r *memReviews) ListByGame(ctx context.Context, gameID string) ([]*models.Review, error) {
	return r.filter(func(rv *models.Review) bool { return rv.GameID == gameID }), nil
}

func (r *memReviews) ListByAuthor(ctx context.Context, authorID string) ([]*models.Review, error) {
	return r.filter(func(rv *models.Review) bool { return rv.AuthorID == authorID }), nil
}

func (r *memReviews) filter(match func(*models.Review) bool) []*models.Review {
	m := (*InMemoryRepositoryManager)(r)
	m.mu.Lock()
	defer m.mu.Unlock()

	out := []*models.Review{}
	for _, rv := range m.reviews {
		if match(rv) {
			cp := *rv
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return m.before(out[i].ID, out[j].ID) })
	return out
}
