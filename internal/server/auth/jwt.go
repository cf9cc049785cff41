// Package auth holds the request authorization pieces: the session token
// codec, the gate that turns a presented token into an identity, and the
// enforcer used by privileged operations.
package auth

import (
	"errors"
	"time"

	"github.com/gamezone/gamezone/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the signed payload of a session token.
type Claims struct {
	jwt.RegisteredClaims
	AccountID string `json:"account_id"`
}

// Codec issues and verifies HS256 session tokens with a process-wide secret.
type Codec struct {
	secret   []byte
	validity time.Duration
	now      func() time.Time
}

func NewCodec(secret []byte, validity time.Duration) *Codec {
	return &Codec{secret: secret, validity: validity, now: time.Now}
}

// Issue signs a token for accountID that expires after the codec validity.
func (c *Codec) Issue(accountID string) (string, error) {
	now := c.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.validity)),
		},
		AccountID: accountID,
	})

	tokenString, err := token.SignedString(c.secret)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// Verify returns the account id bound to tokenString, or one of
// common.ErrMalformedToken, common.ErrInvalidSignature, common.ErrTokenExpired.
// An elapsed expiry wins over a bad signature.
func (c *Codec) Verify(tokenString string) (string, error) {
	claims := &Claims{}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(c.now),
		jwt.WithExpirationRequired(),
	)

	token, err := parser.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return c.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return "", common.ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			if c.expiredUnverified(tokenString) {
				return "", common.ErrTokenExpired
			}
			return "", common.ErrInvalidSignature
		default:
			return "", common.ErrMalformedToken
		}
	}

	if !token.Valid || claims.AccountID == "" {
		return "", common.ErrMalformedToken
	}

	return claims.AccountID, nil
}

// expiredUnverified reports whether the token's exp claim has elapsed,
// without checking the signature.
func (c *Codec) expiredUnverified(tokenString string) bool {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return false
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return !c.now().Before(claims.ExpiresAt.Time)
}
