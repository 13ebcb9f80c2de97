package vesting

import "vesting-engine/sdk"

// cachedEnv/cachedEnvTx memoize the host environment snapshot for the
// lifetime of a single transaction, so a call chain that touches caller
// identity and the ledger timestamp several times pays the host round
// trip once. A changed tx.id invalidates the cache.
var (
	cachedEnv   sdk.Env
	cachedEnvTx string
	cachedEnvOK bool
)

func currentEnv() *sdk.Env {
	var tx string
	if ptr := sdk.GetEnvKey("tx.id"); ptr != nil {
		tx = *ptr
	}
	if !cachedEnvOK || cachedEnvTx != tx {
		cachedEnv = sdk.GetEnv()
		cachedEnvTx = tx
		cachedEnvOK = true
	}
	return &cachedEnv
}

func caller() sdk.Address {
	return currentEnv().Sender.Address
}

func now() uint64 {
	return currentEnv().Timestamp
}
