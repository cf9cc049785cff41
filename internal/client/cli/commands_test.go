package cli

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gamezone/gamezone/internal/api"
	"github.com/gamezone/gamezone/internal/client/client"
	"github.com/gamezone/gamezone/internal/client/repositories/tokens"
	"github.com/gamezone/gamezone/internal/client/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAPI implements client.Client; methods not overridden panic.
type fakeAPI struct {
	client.Client

	games   []api.Game
	authors []api.Author
	err     error

	lastTitle     string
	lastPlatforms []string
	lastReview    []any
	lastPage      int
}

func (f *fakeAPI) Games(ctx context.Context) ([]api.Game, error) { return f.games, f.err }

func (f *fakeAPI) GamePage(ctx context.Context, n int) ([]api.Game, error) {
	f.lastPage = n
	return f.games, f.err
}

func (f *fakeAPI) Authors(ctx context.Context) ([]api.Author, error) { return f.authors, f.err }

func (f *fakeAPI) AddGame(ctx context.Context, title string, platforms []string) (*api.Game, error) {
	f.lastTitle, f.lastPlatforms = title, platforms
	return &api.Game{ID: "g9", Title: title, Platforms: platforms}, f.err
}

func (f *fakeAPI) AddReview(ctx context.Context, gameID string, rating int, content string) (*api.Review, error) {
	f.lastReview = []any{gameID, rating, content}
	if f.err != nil {
		return nil, f.err
	}
	return &api.Review{ID: "r9"}, nil
}

type fakeSession struct {
	active     string
	registered []string
	known      []tokens.Token
	err        error
	closed     bool
}

func (f *fakeSession) Register(ctx context.Context, name, email string, password []byte, verified bool) (*api.Author, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.registered = append(f.registered, strings.Join([]string{name, email, string(password), map[bool]string{true: "v", false: "u"}[verified]}, "|"))
	return &api.Author{ID: "a1", Name: name}, nil
}

func (f *fakeSession) Use(ctx context.Context, name string) error {
	if f.err != nil {
		return f.err
	}
	f.active = name
	return nil
}

func (f *fakeSession) Restore(ctx context.Context) (string, error) { return f.active, nil }

func (f *fakeSession) Known(ctx context.Context) ([]tokens.Token, error) { return f.known, f.err }

func (f *fakeSession) Close(ctx context.Context) error {
	f.closed = true
	return nil
}

var _ services.SessionService = (*fakeSession)(nil)

func newTestApp(fa *fakeAPI, fs *fakeSession, input string) (*App, *bytes.Buffer) {
	var out bytes.Buffer
	return newApp(fa, fs, bufio.NewReader(strings.NewReader(input)), &out), &out
}

func TestRegister_PromptsAndActivates(t *testing.T) {
	old := readPassword
	readPassword = func(int) ([]byte, error) { return []byte("pw"), nil }
	t.Cleanup(func() { readPassword = old })

	fs := &fakeSession{}
	a, out := newTestApp(&fakeAPI{}, fs, "alice@example.com\ny\n")

	require.NoError(t, a.Register(context.Background(), []string{"alice"}))
	assert.Equal(t, []string{"alice|alice@example.com|pw|v"}, fs.registered)
	assert.Equal(t, "alice", a.status())
	assert.Contains(t, out.String(), "Registered alice (a1)")
}

func TestUse(t *testing.T) {
	fs := &fakeSession{}
	a, _ := newTestApp(&fakeAPI{}, fs, "")

	require.ErrorIs(t, a.Use(context.Background(), nil), ErrUsage)

	require.NoError(t, a.Use(context.Background(), []string{"bob"}))
	assert.Equal(t, "bob", fs.active)
	assert.Equal(t, "bob", a.status())

	fs.err = services.ErrUnknownAuthor
	require.ErrorIs(t, a.Use(context.Background(), []string{"carol"}), services.ErrUnknownAuthor)
	assert.Equal(t, "bob", a.status())
}

func TestTokens_MarksActive(t *testing.T) {
	fs := &fakeSession{known: []tokens.Token{
		{Name: "alice", AccountID: "a1", UpdatedAt: time.Unix(0, 0)},
		{Name: "bob", AccountID: "b1", UpdatedAt: time.Unix(0, 0)},
	}}
	a, out := newTestApp(&fakeAPI{}, fs, "")
	a.author = "bob"

	require.NoError(t, a.Tokens(context.Background(), nil))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[2], "*"))
	assert.Contains(t, lines[2], "bob")
}

func TestGamesAndAuthors_Print(t *testing.T) {
	fa := &fakeAPI{
		games:   []api.Game{{ID: "g1", Title: "Zelda", Platforms: []string{"switch", "wii"}}},
		authors: []api.Author{{ID: "a1", Name: "alice", Verified: true}},
	}
	a, out := newTestApp(fa, &fakeSession{}, "")

	require.NoError(t, a.Games(context.Background(), nil))
	require.NoError(t, a.Authors(context.Background(), nil))

	assert.Contains(t, out.String(), "switch, wii")
	assert.Contains(t, out.String(), "alice")
	assert.Contains(t, out.String(), "true")
}

func TestAuthors_Unauthorized(t *testing.T) {
	a, _ := newTestApp(&fakeAPI{err: client.ErrUnauthorized}, &fakeSession{}, "")
	require.ErrorIs(t, a.Authors(context.Background(), nil), client.ErrUnauthorized)
}

func TestAddGame_ParsesPlatforms(t *testing.T) {
	fa := &fakeAPI{}
	a, out := newTestApp(fa, &fakeSession{}, "")

	require.ErrorIs(t, a.AddGame(context.Background(), []string{"Zelda"}), ErrUsage)

	require.NoError(t, a.AddGame(context.Background(), []string{"Super", "Mario", "switch, ,n64"}))
	assert.Equal(t, "Super Mario", fa.lastTitle)
	assert.Equal(t, []string{"switch", "n64"}, fa.lastPlatforms)
	assert.Contains(t, out.String(), "Added game Super Mario (g9)")
}

func TestPage_ValidatesNumber(t *testing.T) {
	fa := &fakeAPI{}
	a, _ := newTestApp(fa, &fakeSession{}, "")

	require.ErrorIs(t, a.Page(context.Background(), []string{"two"}), ErrUsage)
	require.NoError(t, a.Page(context.Background(), []string{"2"}))
	assert.Equal(t, 2, fa.lastPage)
}

func TestReview_ContentFromArgsOrPrompt(t *testing.T) {
	fa := &fakeAPI{}
	a, _ := newTestApp(fa, &fakeSession{}, "line one\nline two\n\n")

	require.ErrorIs(t, a.Review(context.Background(), []string{"g1", "five"}), ErrUsage)

	require.NoError(t, a.Review(context.Background(), []string{"g1", "5", "great", "game"}))
	assert.Equal(t, []any{"g1", 5, "great game"}, fa.lastReview)

	require.NoError(t, a.Review(context.Background(), []string{"g1", "4"}))
	assert.Equal(t, []any{"g1", 4, "line one\nline two"}, fa.lastReview)
}

func TestRun_SingleCommand(t *testing.T) {
	fs := &fakeSession{active: "alice"}
	fa := &fakeAPI{games: []api.Game{{ID: "g1", Title: "Zelda"}}}
	a, out := newTestApp(fa, fs, "")

	require.NoError(t, a.Run(context.Background(), []string{"games"}))
	assert.Contains(t, out.String(), "Zelda")
	assert.Equal(t, "alice", a.status())
	assert.True(t, fs.closed)
}

func TestRun_UnknownCommand(t *testing.T) {
	a, _ := newTestApp(&fakeAPI{}, &fakeSession{}, "")
	require.ErrorIs(t, a.Run(context.Background(), []string{"nope"}), ErrUnknownCommand)
}

func TestRun_REPL(t *testing.T) {
	capturePrint(t)
	fa := &fakeAPI{games: []api.Game{{ID: "g1", Title: "Zelda"}}}
	a, out := newTestApp(fa, &fakeSession{}, "games\nexit\n")

	require.NoError(t, a.Run(context.Background(), nil))
	assert.Contains(t, out.String(), "Welcome to GameZone CLI")
	assert.Contains(t, out.String(), "Zelda")
	assert.Equal(t, "anonymous", a.status())
}
