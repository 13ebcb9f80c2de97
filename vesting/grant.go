package vesting

import "vesting-engine/sdk"

// GrantInfo is the tuple get_grant_info returns.
type GrantInfo struct {
	TotalAmount Amount
	StartTime   uint64
	EndTime     uint64
	Claimed     Amount
}

// InitializeGrant sets up the degenerate single-beneficiary variant: one
// recipient, one linear schedule starting now, no admin, no vault index.
// Fails AlreadyInitialized on a second call, same re-init guard the main
// engine's Initialize enforces.
func InitializeGrant(recipient sdk.Address, total Amount, durationSeconds uint64) (uint64, error) {
	const op = "initialize_grant"
	if err := checkNotDeprecated(op); err != nil {
		return 0, err
	}
	if getSingletonBool(singletonGrantInitialized) {
		return 0, fail(op, KindAlreadyInit, "")
	}
	if durationSeconds == 0 || durationSeconds > MaxDuration {
		return 0, fail(op, KindInvalidDuration, "")
	}
	if !total.FitsIn128() {
		return 0, fail(op, KindInvalidAmount, "total exceeds 128-bit range")
	}
	start := now()
	end := start + durationSeconds

	setSingletonAddress(singletonGrantRecipient, recipient)
	setSingletonAmount(singletonGrantTotal, total)
	setSingletonUint64(singletonGrantStart, start)
	setSingletonUint64(singletonGrantEnd, end)
	setSingletonAmount(singletonGrantClaimed, Zero)
	setSingletonBool(singletonGrantInitialized, true)
	return end, nil
}

func loadGrant(op string) (recipient sdk.Address, total Amount, start, end uint64, claimed Amount, err error) {
	if !getSingletonBool(singletonGrantInitialized) {
		err = fail(op, KindNotInitialized, "")
		return
	}
	recipient, _ = getSingletonAddress(singletonGrantRecipient)
	total, _ = getSingletonAmount(singletonGrantTotal)
	start, _ = getSingletonUint64(singletonGrantStart)
	end, _ = getSingletonUint64(singletonGrantEnd)
	claimed, _ = getSingletonAmount(singletonGrantClaimed)
	return
}

// ClaimableBalance is a pure query: vested-minus-claimed under the linear
// curve, the same 256-bit-intermediate math component A uses.
func ClaimableBalance() (Amount, error) {
	_, total, start, end, claimed, err := loadGrant("claimable_balance")
	if err != nil {
		return Zero, err
	}
	vested := Vested(total, start, end, now(), CurveLinear)
	available, subErr := vested.Sub(claimed)
	if subErr != nil {
		return Zero, nil
	}
	return available, nil
}

// Claim requires caller == recipient; fails InvalidAmount when nothing is
// claimable (mirrors scenario 3's "further claim fails InvalidAmount").
func Claim(recipient sdk.Address) (Amount, error) {
	const op = "claim"
	if err := checkNotDeprecated(op); err != nil {
		return Zero, err
	}
	storedRecipient, total, start, end, claimed, err := loadGrant(op)
	if err != nil {
		return Zero, err
	}
	if caller() != recipient || recipient != storedRecipient {
		return Zero, fail(op, KindUnauthorized, "caller is not the grant recipient")
	}
	vested := Vested(total, start, end, now(), CurveLinear)
	claimable, subErr := vested.Sub(claimed)
	if subErr != nil || claimable.IsZero() {
		return Zero, fail(op, KindInvalidAmount, "nothing to claim")
	}
	setSingletonAmount(singletonGrantClaimed, claimed.Add(claimable))
	emitTokensClaimed(0, recipient, claimable, now())
	return claimable, nil
}

// GetGrantInfo is a pure query.
func GetGrantInfo() (GrantInfo, error) {
	_, total, start, end, claimed, err := loadGrant("get_grant_info")
	if err != nil {
		return GrantInfo{}, err
	}
	return GrantInfo{TotalAmount: total, StartTime: start, EndTime: end, Claimed: claimed}, nil
}
