package vesting

import "vesting-engine/sdk"

// ContractState is the fold get_contract_state returns.
type ContractState struct {
	TotalLocked  Amount
	TotalClaimed Amount
	AdminBalance Amount
}

// GetContractState folds across every vault ever created. O(n) in
// vault_count, same as spec.md §4.G documents.
func GetContractState() ContractState {
	count, _ := getSingletonUint64(singletonVaultCount)
	locked, claimed := Zero, Zero
	for id := uint64(0); id < count; id++ {
		v, ok := loadVault(id)
		if !ok {
			continue
		}
		rem, err := v.TotalAmount.Sub(v.ReleasedAmount)
		if err != nil {
			sdk.Abort("released exceeds total for vault " + u64s(id))
		}
		locked = locked.Add(rem)
		claimed = claimed.Add(v.ReleasedAmount)
	}
	balance, _ := getSingletonAmount(singletonAdminBalance)
	return ContractState{TotalLocked: locked, TotalClaimed: claimed, AdminBalance: balance}
}

// CheckInvariant reports whether total_locked + total_claimed +
// admin_balance equals initial_supply exactly — the precise
// equality spec.md §3 invariant 3 demands, not the looser inequality the
// source contract this engine was modeled on settles for.
func CheckInvariant() bool {
	state := GetContractState()
	supply, _ := getSingletonAmount(singletonInitialSupply)
	sum := state.TotalLocked.Add(state.TotalClaimed).Add(state.AdminBalance)
	return sum.Equal(supply)
}

// GetVault is a pure read: it never promotes a lazy vault, unlike the
// source this engine was modeled on, which mutated state from a routine
// named like a getter (spec.md §9 Q4). Promotion is InitializeVaultMetadata,
// called explicitly.
func GetVault(vaultID uint64) (*Vault, error) {
	v, ok := loadVault(vaultID)
	if !ok {
		return nil, fail("get_vault", KindVaultNotFound, "")
	}
	return v, nil
}

// GetUserVaults is a pure read over the per-user index; it reflects only
// vaults that have been promoted to active (IsInitialized), by invariant 5.
func GetUserVaults(addr sdk.Address) []uint64 {
	return loadUserIndex(addr)
}

// GetClaimHistory is a pure query over the append-only claim ledger
// (component K); it never feeds back into the invariant or into claim
// preconditions, only into audit/observability.
func GetClaimHistory(vaultID uint64) []ClaimEvent {
	return loadClaimHistory(vaultID)
}

// BatchRevoke revokes every revocable vault in the list atomically,
// skipping (not failing on) vaults already fully released, and failing
// the whole batch only if not a single vault could be revoked.
func BatchRevoke(vaultIDs []uint64) (Amount, error) {
	const op = "batch_revoke"
	if err := checkNotDeprecated(op); err != nil {
		return Zero, err
	}
	if err := requireAdmin(caller(), op); err != nil {
		return Zero, err
	}
	total := Zero
	anyRevoked := false
	for _, id := range vaultIDs {
		v, ok := loadVault(id)
		if !ok || v.IsIrrevocable {
			continue
		}
		unreleased, err := v.TotalAmount.Sub(v.ReleasedAmount)
		if err != nil || unreleased.IsZero() {
			continue
		}
		amt, err := revokeVault(op, v)
		if err != nil {
			continue
		}
		total = total.Add(amt)
		anyRevoked = true
	}
	if !anyRevoked {
		return Zero, fail(op, KindNothingToRevoke, "no vault in the batch was revocable")
	}
	return total, nil
}
