// Package services contains server-side business logic. This file implements
// AccountService: author registration, which mints and parks the session
// token, and the author queries.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gamezone/gamezone/internal/common"
	"github.com/gamezone/gamezone/internal/dbx"
	"github.com/gamezone/gamezone/internal/server/auth"
	"github.com/gamezone/gamezone/internal/server/models"
	"github.com/gamezone/gamezone/internal/server/repositories/repomanager"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// SessionStore is the write side of the session cache.
type SessionStore interface {
	Put(ctx context.Context, accountID, token string, ttl time.Duration) error
}

// NewAccount is the input of AccountService.Create.
type NewAccount struct {
	Name     string
	Email    string
	Password string
	Verified bool
}

// AuthorDetails is an account together with the reviews it wrote.
type AuthorDetails struct {
	Account *models.Account
	Reviews []*models.Review
}

type AccountService struct {
	db          dbx.DB
	repomanager repomanager.RepositoryManager
	codec       *auth.Codec
	sessions    SessionStore
	sessionTTL  time.Duration
	bcryptCost  int
}

func NewAccountService(db dbx.DB, m repomanager.RepositoryManager, codec *auth.Codec, sessions SessionStore, sessionTTL time.Duration, bcryptCost int) *AccountService {
	return &AccountService{
		db:          db,
		repomanager: m,
		codec:       codec,
		sessions:    sessions,
		sessionTTL:  sessionTTL,
		bcryptCost:  bcryptCost,
	}
}

// Create stores a new account and returns it with a freshly issued session
// token. The account is only committed once the token is parked in the cache.
func (s *AccountService) Create(ctx context.Context, in NewAccount) (*models.Account, string, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, "", fmt.Errorf("%w: name is required", common.ErrorValidation)
	}
	if in.Password == "" {
		return nil, "", fmt.Errorf("%w: password is required", common.ErrorValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.bcryptCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, "", fmt.Errorf("%w: password is too long", common.ErrorValidation)
		}
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	var (
		account *models.Account
		token   string
	)

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		a, err := s.repomanager.Accounts(tx).Create(ctx, &models.Account{
			Name:         name,
			Email:        strings.TrimSpace(in.Email),
			Verified:     in.Verified,
			PasswordHash: string(hash),
		})
		if err != nil {
			return fmt.Errorf("error creating account: %w", err)
		}

		t, err := s.codec.Issue(a.ID)
		if err != nil {
			return fmt.Errorf("error issuing token: %w", err)
		}

		if err := s.sessions.Put(ctx, a.ID, t, s.sessionTTL); err != nil {
			return fmt.Errorf("error caching session: %w", err)
		}

		account, token = a, t
		return nil
	})
	if err != nil {
		return nil, "", err
	}

	return account, token, nil
}

// List returns every author. The caller must be authenticated.
func (s *AccountService) List(ctx context.Context) ([]*models.Account, error) {
	if _, err := auth.Require(ctx); err != nil {
		return nil, err
	}
	return s.repomanager.Accounts(s.db).List(ctx)
}

// Get returns the author with id and the reviews they wrote.
func (s *AccountService) Get(ctx context.Context, id string) (*AuthorDetails, error) {
	if err := validateID("author id", id); err != nil {
		return nil, err
	}

	account, err := s.repomanager.Accounts(s.db).FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	reviews, err := s.repomanager.Reviews(s.db).ListByAuthor(ctx, id)
	if err != nil {
		return nil, err
	}

	return &AuthorDetails{Account: account, Reviews: reviews}, nil
}

func validateID(what, id string) error {
	if err := uuid.Validate(id); err != nil {
		return fmt.Errorf("%w: %s must be a UUID", common.ErrorValidation, what)
	}
	return nil
}
