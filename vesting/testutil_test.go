//go:build test

package vesting

import "vesting-engine/sdk"

// setCaller points the mock environment at identity as the current
// transaction's sender. advanceTxn is unnecessary here: currentEnv()
// memoizes by tx.id, and the mock's tx.id never changes within a test, so
// tests call resetEnvCache() whenever they flip MockSender/MockClock
// mid-test and need the next call to observe it.
func setCaller(identity sdk.Address) {
	sdk.MockSender = identity
	resetEnvCache()
}

func setClock(ts uint64) {
	sdk.MockClock = ts
	resetEnvCache()
}

func resetEnvCache() {
	cachedEnvOK = false
}

func freshState() {
	sdk.ResetMockState()
	resetEnvCache()
}
