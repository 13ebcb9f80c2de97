package sdk

import (
	"encoding/json"
)

// Address is an opaque caller identity string, e.g. "hive:alice" or
// "did:key:...". The engine only ever compares addresses for equality; it
// never parses or validates their internal shape, mirroring the host's own
// treatment of identities.
type Address string

// String returns the literal representation of the address.
func (a Address) String() string {
	return string(a)
}

// IsZero reports whether the address is the empty identity, used to detect
// unset optional identity fields without a pointer.
func (a Address) IsZero() bool {
	return a == ""
}

// Sender describes who is invoking the current operation and which
// addresses have supplied an authorization signature for it.
type Sender struct {
	Address       Address   `json:"id"`
	RequiredAuths []Address `json:"required_auths"`
}

// Env is a per-invocation snapshot of everything the host exposes about the
// current call: caller identity, transaction id (for memoization), and the
// ledger timestamp. It is fetched at most once per transaction.
type Env struct {
	TxID      string `json:"tx.id"`
	Timestamp uint64 `json:"block.timestamp"`
	Sender    Sender
}

// GetEnv fetches and decodes the full environment blob. Prefer currentEnv()
// in the vesting package, which memoizes this per transaction id.
func GetEnv() Env {
	raw := GetEnvStr()
	var flat map[string]interface{}
	_ = json.Unmarshal([]byte(raw), &flat)

	env := Env{}
	if v, ok := flat["tx.id"].(string); ok {
		env.TxID = v
	}
	if v, ok := flat["block.timestamp"].(float64); ok {
		env.Timestamp = uint64(v)
	}
	sender := Sender{}
	if v, ok := flat["msg.sender"].(string); ok {
		sender.Address = Address(v)
	}
	if raw, ok := flat["msg.required_auths"].([]interface{}); ok {
		for _, a := range raw {
			if s, ok := a.(string); ok {
				sender.RequiredAuths = append(sender.RequiredAuths, Address(s))
			}
		}
	}
	env.Sender = sender
	return env
}
