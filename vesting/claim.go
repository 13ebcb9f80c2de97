package vesting

import "vesting-engine/sdk"

// claimableAmount computes vested-minus-released for v at the given
// timestamp, dispatching to the milestone variant when the vault has a
// configured milestone list and otherwise to the time-based curve.
func claimableAmount(v *Vault, ts uint64) (Amount, error) {
	var vested Amount
	if len(v.Milestones) > 0 {
		vested = MilestoneVested(v.TotalAmount, unlockedWeightSum(v.Milestones))
	} else {
		vested = Vested(v.TotalAmount, v.StartTime, v.EndTime, ts, v.Curve)
	}
	return vested.Sub(v.ReleasedAmount)
}

// ClaimTokens is the beneficiary/delegate claim path. Every precondition
// in spec.md §4.E is a distinct failure kind, checked in the order listed
// there so the first violated precondition is always the one reported.
func ClaimTokens(vaultID uint64, amount Amount) (Amount, error) {
	return claim("claim_tokens", vaultID, amount, false)
}

// ClaimAsDelegate additionally requires the vault actually has a delegate
// set and that the caller is it — a convenience front door, not a
// different credit path: funds still land on vault.Owner.
func ClaimAsDelegate(vaultID uint64, amount Amount) (Amount, error) {
	return claim("claim_as_delegate", vaultID, amount, true)
}

func claim(op string, vaultID uint64, amount Amount, requireDelegate bool) (Amount, error) {
	if getSingletonBool(singletonPaused) {
		return Zero, fail(op, KindPaused, "")
	}
	if err := checkNotDeprecated(op); err != nil {
		return Zero, err
	}
	v, ok := loadVault(vaultID)
	if !ok {
		return Zero, fail(op, KindVaultNotFound, "")
	}
	if !v.IsInitialized {
		return Zero, fail(op, KindNotInitialized, "vault is lazy")
	}
	if v.IsFrozen {
		return Zero, fail(op, KindVaultFrozen, "")
	}
	if amount.IsZero() {
		return Zero, fail(op, KindInvalidAmount, "")
	}
	who := caller()
	if requireDelegate {
		if v.Delegate == nil || who != *v.Delegate {
			return Zero, fail(op, KindUnauthorized, "caller is not the vault's delegate")
		}
	} else if err := requireDelegateOrOwner(who, v, op); err != nil {
		return Zero, err
	}

	ts := now()
	available, err := claimableAmount(v, ts)
	if err != nil {
		sdk.Abort("released exceeds vested for vault " + u64s(vaultID))
	}
	if amount.GreaterThan(available) {
		return Zero, fail(op, KindInsufficientFunds, "amount exceeds available balance")
	}
	unstaked, err := availableUnstaked(v)
	if err != nil || amount.GreaterThan(unstaked) {
		return Zero, fail(op, KindInsufficientFunds, "amount exceeds unstaked balance")
	}

	v.ReleasedAmount = v.ReleasedAmount.Add(amount)
	saveVault(v)
	appendClaimHistory(vaultID, ClaimEvent{Amount: amount, Released: v.ReleasedAmount, Timestamp: ts, Kind: "claim"})
	emitTokensClaimed(vaultID, v.Owner, amount, ts)
	return amount, nil
}

// AutoClaim lets anyone trigger a claim on the vault's behalf, splitting
// the claimable amount between the owner and a keeper fee. Supplemented
// from the source contract's keeper-incentivized auto_claim; unlike that
// source, no token transfer happens here — released_amount moves for both
// shares and one TokensClaimed event is emitted for each non-zero share
// (owner remainder, keeper fee), leaving the actual payout to the external
// settlement collaborator spec.md assumes.
func AutoClaim(vaultID uint64, keeper sdk.Address) (Amount, error) {
	const op = "auto_claim"
	if getSingletonBool(singletonPaused) {
		return Zero, fail(op, KindPaused, "")
	}
	if err := checkNotDeprecated(op); err != nil {
		return Zero, err
	}
	v, ok := loadVault(vaultID)
	if !ok {
		return Zero, fail(op, KindVaultNotFound, "")
	}
	if !v.IsInitialized {
		return Zero, fail(op, KindNotInitialized, "vault is lazy")
	}
	if v.IsFrozen {
		return Zero, fail(op, KindVaultFrozen, "")
	}

	ts := now()
	available, err := claimableAmount(v, ts)
	if err != nil {
		sdk.Abort("released exceeds vested for vault " + u64s(vaultID))
	}
	if available.IsZero() {
		return Zero, fail(op, KindInvalidAmount, "nothing available to claim")
	}

	fee := Zero
	if v.KeeperFee != nil {
		fee = *v.KeeperFee
		if fee.GreaterThan(available) {
			fee = available
		}
	}
	toOwner, err := available.Sub(fee)
	if err != nil {
		sdk.Abort("keeper fee exceeds claimable amount for vault " + u64s(vaultID))
	}

	v.ReleasedAmount = v.ReleasedAmount.Add(available)
	saveVault(v)
	appendClaimHistory(vaultID, ClaimEvent{Amount: available, Released: v.ReleasedAmount, Timestamp: ts, Kind: "claim"})
	if !toOwner.IsZero() {
		emitTokensClaimed(vaultID, v.Owner, toOwner, ts)
	}
	if !fee.IsZero() {
		emitTokensClaimed(vaultID, keeper, fee, ts)
	}
	return available, nil
}
