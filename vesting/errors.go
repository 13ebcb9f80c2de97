package vesting

import "fmt"

// Kind is the error taxonomy every failure reduces to. Callers should
// compare against these with errors.Is, never by inspecting Msg.
type Kind string

const (
	KindUnauthorized      Kind = "unauthorized"
	KindNotInitialized    Kind = "not_initialized"
	KindAlreadyInit       Kind = "already_initialized"
	KindVaultNotFound     Kind = "vault_not_found"
	KindVaultFrozen       Kind = "vault_frozen"
	KindVaultIrrevocable  Kind = "vault_irrevocable"
	KindNothingToRevoke   Kind = "nothing_to_revoke"
	KindInsufficientFunds Kind = "insufficient_funds"
	KindInvalidAmount     Kind = "invalid_amount"
	KindInvalidDuration   Kind = "invalid_duration"
	KindDeprecated        Kind = "deprecated"
	KindPaused            Kind = "paused"
)

// Error is the one error type the engine ever returns. Op names the
// operation that failed, for logs; Kind is what callers should branch on.
type Error struct {
	Kind Kind
	Op   string
	Msg  string
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %s", e.Op, e.Kind, e.Msg)
}

// Is lets errors.Is(err, &Error{Kind: KindX}) match on Kind alone, so
// call sites can check `errors.Is(err, vesting.ErrKind(vesting.KindPaused))`.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// ErrKind builds a comparable sentinel for errors.Is checks against a Kind
// alone, ignoring Op/Msg.
func ErrKind(k Kind) error {
	return &Error{Kind: k}
}

func fail(op string, kind Kind, msg string) error {
	return &Error{Op: op, Kind: kind, Msg: msg}
}
