package auth

import (
	"fmt"

	"github.com/gamezone/gamezone/internal/common"
)

// Kind tells why a request was not authenticated.
type Kind int

const (
	KindUnauthenticated Kind = iota
	KindMalformed
	KindInvalidSignature
	KindExpired
	KindUnknownAccount
	KindUnverified
	KindSessionMismatch
)

func (k Kind) String() string {
	switch k {
	case KindMalformed:
		return "malformed"
	case KindInvalidSignature:
		return "invalid_signature"
	case KindExpired:
		return "expired"
	case KindUnknownAccount:
		return "unknown_account"
	case KindUnverified:
		return "unverified"
	case KindSessionMismatch:
		return "session_mismatch"
	default:
		return "unauthenticated"
	}
}

// Rejection is the terminal outcome of the gate or the enforcer.
// It matches common.ErrUnauthenticated under errors.Is.
type Rejection struct {
	Kind Kind
}

func reject(kind Kind) *Rejection {
	return &Rejection{Kind: kind}
}

func (r *Rejection) Error() string {
	return fmt.Sprintf("%s: %s", common.ErrUnauthenticated, r.Kind)
}

func (r *Rejection) Is(target error) bool {
	return target == common.ErrUnauthenticated
}
