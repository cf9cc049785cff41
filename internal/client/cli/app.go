package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gamezone/gamezone/internal/client/client"
	"github.com/gamezone/gamezone/internal/client/config"
	"github.com/gamezone/gamezone/internal/client/services"
)

type App struct {
	config  *config.Config
	api     client.Client
	session services.SessionService
	store   *client.Repositories

	author string
	reader *bufio.Reader
	out    io.Writer
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	repos, err := client.InitDatabase(ctx, c.TokenStorePath)
	if err != nil {
		log.Printf("error initializing token store: %s", err.Error())
		return nil, err
	}

	apiClient, err := client.NewGRPCClient(c.ServerEndpointAddr, c.RequestTimeout)
	if err != nil {
		_ = repos.Close()
		return nil, err
	}

	a := newApp(apiClient, services.NewSessionService(apiClient, repos.DB), bufio.NewReader(os.Stdin), os.Stdout)
	a.config = c
	a.store = repos
	return a, nil
}

func newApp(api client.Client, session services.SessionService, reader *bufio.Reader, out io.Writer) *App {
	return &App{api: api, session: session, reader: reader, out: out}
}

// Run executes args as a single command, or starts the REPL when args is empty.
func (a *App) Run(ctx context.Context, args []string) error {
	defer a.close(ctx)

	name, err := a.session.Restore(ctx)
	if err != nil {
		log.Printf("restoring active author: %s", err.Error())
	}
	a.author = name

	if len(args) > 0 {
		_, err := dispatch(ctx, a, args)
		return err
	}

	fmt.Fprintln(a.out, "Welcome to GameZone CLI (type 'help' for commands)")
	runREPL(ctx, a, a.status, a.reader)
	return nil
}

func (a *App) close(ctx context.Context) {
	if err := a.session.Close(ctx); err != nil {
		log.Printf("closing connection: %s", err.Error())
	}
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			log.Printf("closing token store: %s", err.Error())
		}
	}
}

func (a *App) status() string {
	if a.author == "" {
		return "anonymous"
	}
	return a.author
}
