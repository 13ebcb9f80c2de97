package vesting

import "vesting-engine/sdk"

// -----------------------------------------------------------------------------
// Component F — two-step admin handover. Splitting propose/accept into two
// transactions eliminates the single-transaction lockout where an admin
// hands control to an identity that can never sign a follow-up call.
// -----------------------------------------------------------------------------

// ProposeNewAdmin records a pending handover; admin-only, overwrites any
// prior unaccepted proposal.
func ProposeNewAdmin(candidate sdk.Address) error {
	const op = "propose_new_admin"
	if err := checkNotDeprecated(op); err != nil {
		return err
	}
	if err := requireAdmin(caller(), op); err != nil {
		return err
	}
	old, _ := getSingletonAddress(singletonAdminAddress)
	setSingletonAddress(singletonProposedAdmin, candidate)
	emitAdminProposed(old, candidate, now())
	return nil
}

// AcceptOwnership completes the handover; callable only by the proposed
// admin.
func AcceptOwnership() error {
	const op = "accept_ownership"
	if err := checkNotDeprecated(op); err != nil {
		return err
	}
	who := caller()
	if err := requireProposedAdmin(who, op); err != nil {
		return err
	}
	old, _ := getSingletonAddress(singletonAdminAddress)
	setSingletonAddress(singletonAdminAddress, who)
	deleteSingleton(singletonProposedAdmin)
	emitAdminAccepted(old, who, now())
	return nil
}

// GetAdmin is a pure query.
func GetAdmin() (sdk.Address, bool) {
	return getSingletonAddress(singletonAdminAddress)
}

// GetProposedAdmin is a pure query.
func GetProposedAdmin() (sdk.Address, bool) {
	return getSingletonAddress(singletonProposedAdmin)
}

// Pause blocks the claim path without touching admin operations.
func Pause() error {
	const op = "pause"
	if err := checkNotDeprecated(op); err != nil {
		return err
	}
	if err := requireAdmin(caller(), op); err != nil {
		return err
	}
	setSingletonBool(singletonPaused, true)
	return nil
}

// Unpause reopens the claim path.
func Unpause() error {
	const op = "unpause"
	if err := checkNotDeprecated(op); err != nil {
		return err
	}
	if err := requireAdmin(caller(), op); err != nil {
		return err
	}
	setSingletonBool(singletonPaused, false)
	return nil
}

// IsPaused is a pure query.
func IsPaused() bool {
	return getSingletonBool(singletonPaused)
}

// MigrateLiquidity marks the deployment deprecated in favor of successor.
// After this call every mutating operation except MigrateLiquidity itself
// fails Deprecated. Draining actual token balances is the external
// settlement collaborator's job, per spec.md's accounting-only boundary;
// this call only flips the two singletons and emits the signal.
func MigrateLiquidity(successor sdk.Address) error {
	const op = "migrate_liquidity"
	if err := requireAdmin(caller(), op); err != nil {
		return err
	}
	setSingletonBool(singletonIsDeprecated, true)
	setSingletonAddress(singletonMigrationTarget, successor)
	emitDeprecated(successor, now())
	return nil
}

// IsDeprecated is a pure query.
func IsDeprecated() bool {
	return getSingletonBool(singletonIsDeprecated)
}

// GetMigrationTarget is a pure query.
func GetMigrationTarget() (sdk.Address, bool) {
	return getSingletonAddress(singletonMigrationTarget)
}
