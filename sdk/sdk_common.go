package sdk

import "strconv"

// Log writes a line to the host console. Used for audit trails that don't
// warrant a typed event.
func Log(s string) {
	log(&s)
}

// Abort stops the current operation and surfaces msg to the host. No state
// mutation made before the call is retained; the host rolls the invocation
// back in its entirety.
func Abort(msg string) {
	var ln int32
	abort(&msg, nil, &ln, &ln)
	panic(msg)
}

// Revert throws a named, machine-matchable error back to the caller.
func Revert(msg string, symbol string) {
	revert(&msg, &symbol)
}

// StateSetObject stores a raw key/value pair in the host's durable store.
func StateSetObject(key string, value string) {
	stateSetObject(&key, &value)
}

// StateGetObject fetches a key, returning nil when absent.
func StateGetObject(key string) *string {
	return stateGetObject(&key)
}

// StateDeleteObject removes a key.
func StateDeleteObject(key string) {
	stateDeleteObject(&key)
}

// GetEnvKey pulls a single environment key, e.g. "block.timestamp" or
// "tx.id", without paying for the full environment blob.
func GetEnvKey(key string) *string {
	return getEnvKey(&key)
}

// GetEnvStr returns the raw JSON environment blob for callers that need the
// full snapshot (used once per transaction by currentEnv).
func GetEnvStr() string {
	return *getEnv(nil)
}

// Now reads the host-provided ledger timestamp. The host guarantees this
// value is monotonically non-decreasing across the lifetime of the
// contract; the engine never calls time.Now.
func Now() uint64 {
	ptr := getEnvKey(strPtr("block.timestamp"))
	if ptr == nil || *ptr == "" {
		Abort("host did not supply block.timestamp")
	}
	ts, err := strconv.ParseUint(*ptr, 10, 64)
	if err != nil {
		Abort("malformed block.timestamp")
	}
	return ts
}

func strPtr(s string) *string { return &s }
