// Package services contains application services for the catalog CLI.
// This file defines the session service: registering authors, keeping their
// tokens in the local store and choosing which token accompanies calls.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/gamezone/gamezone/internal/api"
	"github.com/gamezone/gamezone/internal/client/client"
	"github.com/gamezone/gamezone/internal/client/repositories/metadata"
	"github.com/gamezone/gamezone/internal/client/repositories/tokens"
	"github.com/gamezone/gamezone/internal/common"
	"github.com/gamezone/gamezone/internal/dbx"
)

var ErrUnknownAuthor = errors.New("no token stored for author")

// SessionService defines the credential operations of the CLI.
//
// Contract:
//   - Register: create an author on the server, store its token and make it active.
//   - Use: make a previously registered author active.
//   - Restore: re-activate the author selected in an earlier run, if any.
//   - Known: list the authors with stored tokens.
type SessionService interface {
	Register(ctx context.Context, name, email string, password []byte, verified bool) (*api.Author, error)
	Use(ctx context.Context, name string) error
	Restore(ctx context.Context) (string, error)
	Known(ctx context.Context) ([]tokens.Token, error)
	Close(ctx context.Context) error
}

type sessionService struct {
	client client.Client
	db     *sql.DB
}

func NewSessionService(c client.Client, db *sql.DB) SessionService {
	return &sessionService{client: c, db: db}
}

func (s *sessionService) Register(ctx context.Context, name, email string, password []byte, verified bool) (*api.Author, error) {
	author, token, err := s.client.Register(ctx, name, email, password, verified)
	if err != nil {
		return nil, err
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		t := tokens.Token{Name: name, AccountID: author.ID, Token: token, UpdatedAt: time.Now()}
		if err := tokens.NewSQLiteRepository(tx).Save(ctx, t); err != nil {
			return err
		}
		return metadata.NewSQLiteRepository(tx).SetActiveAuthor(ctx, name)
	})
	if err != nil {
		return nil, fmt.Errorf("store token: %w", err)
	}

	s.client.SetToken(token)
	return author, nil
}

func (s *sessionService) Use(ctx context.Context, name string) error {
	t, err := tokens.NewSQLiteRepository(s.db).Get(ctx, name)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return fmt.Errorf("%w: %s", ErrUnknownAuthor, name)
		}
		return err
	}

	if err := metadata.NewSQLiteRepository(s.db).SetActiveAuthor(ctx, name); err != nil {
		return err
	}
	s.client.SetToken(t.Token)
	return nil
}

func (s *sessionService) Restore(ctx context.Context) (string, error) {
	name, err := metadata.NewSQLiteRepository(s.db).ActiveAuthor(ctx)
	if err != nil || name == "" {
		return "", err
	}

	t, err := tokens.NewSQLiteRepository(s.db).Get(ctx, name)
	if errors.Is(err, common.ErrorNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}

	s.client.SetToken(t.Token)
	return name, nil
}

func (s *sessionService) Known(ctx context.Context) ([]tokens.Token, error) {
	return tokens.NewSQLiteRepository(s.db).List(ctx)
}

func (s *sessionService) Close(ctx context.Context) error {
	return s.client.Close()
}
