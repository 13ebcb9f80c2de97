//go:build test

package vesting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vesting-engine/sdk"
)

// scenario 1 (claim leg): linear half-vested claim then over-claim.
func TestClaimLinearHalfVested(t *testing.T) {
	initAdmin(t, 1_000_000)
	setCaller(admin)
	setClock(1000)
	id, err := CreateVaultFull(CreateVaultRequest{
		Owner: alice, Amount: NewAmount(1_000_000), Start: 1000, End: 1100, Curve: CurveLinear,
	})
	require.NoError(t, err)

	setCaller(alice)
	setClock(1050)
	amt, err := ClaimTokens(id, NewAmount(500_000))
	require.NoError(t, err)
	assert.Equal(t, "500000", amt.String())

	_, err = ClaimTokens(id, NewAmount(500_000))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrKind(KindInsufficientFunds))

	assert.True(t, CheckInvariant())
}

// scenario 2: exponential quarter-vested.
func TestClaimExponentialQuarterVested(t *testing.T) {
	initAdmin(t, 1_000_000)
	setCaller(admin)
	setClock(1000)
	id, err := CreateVaultFull(CreateVaultRequest{
		Owner: alice, Amount: NewAmount(1_000_000), Start: 1000, End: 1100, Curve: CurveExponential,
	})
	require.NoError(t, err)

	setCaller(alice)
	setClock(1050)
	amt, err := ClaimTokens(id, NewAmount(250_000))
	require.NoError(t, err)
	assert.Equal(t, "250000", amt.String())

	_, err = ClaimTokens(id, NewAmount(1))
	require.Error(t, err)
}

func TestClaimRequiresOwnerOrDelegate(t *testing.T) {
	initAdmin(t, 1_000_000)
	setCaller(admin)
	setClock(1000)
	id, err := CreateVaultFull(CreateVaultRequest{
		Owner: alice, Amount: NewAmount(1_000_000), Start: 1000, End: 1100, Curve: CurveLinear,
	})
	require.NoError(t, err)

	setCaller(bob)
	setClock(1050)
	_, err = ClaimTokens(id, NewAmount(1))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrKind(KindUnauthorized))
}

func TestClaimAsDelegateRequiresDelegateSet(t *testing.T) {
	initAdmin(t, 1_000_000)
	setCaller(admin)
	setClock(1000)
	id, err := CreateVaultFull(CreateVaultRequest{
		Owner: alice, Amount: NewAmount(1_000_000), Start: 1000, End: 1100, Curve: CurveLinear,
	})
	require.NoError(t, err)

	setCaller(bob)
	setClock(1050)
	_, err = ClaimAsDelegate(id, NewAmount(1))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrKind(KindUnauthorized))

	setCaller(alice)
	require.NoError(t, SetDelegate(id, &bob))

	setCaller(bob)
	amt, err := ClaimAsDelegate(id, NewAmount(100_000))
	require.NoError(t, err)
	assert.Equal(t, "100000", amt.String())

	v, err := GetVault(id)
	require.NoError(t, err)
	assert.Equal(t, alice, v.Owner, "delegate claims still credit the owner")
}

// P3: monotone release across a claim sequence.
func TestMonotoneReleaseAcrossClaims(t *testing.T) {
	initAdmin(t, 1_000_000)
	setCaller(admin)
	setClock(0)
	id, err := CreateVaultFull(CreateVaultRequest{
		Owner: alice, Amount: NewAmount(1_000_000), Start: 0, End: 1000, Curve: CurveLinear,
	})
	require.NoError(t, err)

	setCaller(alice)
	var lastReleased Amount
	for _, ts := range []uint64{100, 300, 600, 1000} {
		setClock(ts)
		vested := Vested(NewAmount(1_000_000), 0, 1000, ts, CurveLinear)
		available, _ := vested.Sub(lastReleased)
		if available.IsZero() {
			continue
		}
		amt, err := ClaimTokens(id, available)
		require.NoError(t, err)
		lastReleased = lastReleased.Add(amt)
		v, _ := GetVault(id)
		assert.True(t, v.ReleasedAmount.Equal(lastReleased))
		assert.False(t, v.ReleasedAmount.GreaterThan(vested))
	}
	assert.Equal(t, "1000000", lastReleased.String())
}

// P5: freeze committed strictly before claim submission blocks the claim.
func TestFreezeBlocksSubsequentClaim(t *testing.T) {
	initAdmin(t, 1_000_000)
	setCaller(admin)
	setClock(0)
	id, err := CreateVaultFull(CreateVaultRequest{
		Owner: alice, Amount: NewAmount(1_000_000), Start: 0, End: 1000, Curve: CurveLinear,
	})
	require.NoError(t, err)
	require.NoError(t, FreezeVault(id))

	setCaller(alice)
	setClock(500)
	_, err = ClaimTokens(id, NewAmount(1))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrKind(KindVaultFrozen))
}

func TestPauseBlocksClaims(t *testing.T) {
	initAdmin(t, 1_000_000)
	setCaller(admin)
	setClock(0)
	id, err := CreateVaultFull(CreateVaultRequest{
		Owner: alice, Amount: NewAmount(1_000_000), Start: 0, End: 1000, Curve: CurveLinear,
	})
	require.NoError(t, err)
	require.NoError(t, Pause())

	setCaller(alice)
	setClock(500)
	_, err = ClaimTokens(id, NewAmount(1))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrKind(KindPaused))
}

func TestAutoClaimSplitsKeeperFee(t *testing.T) {
	initAdmin(t, 1_000_000)
	setCaller(admin)
	setClock(0)
	id, err := CreateVaultFull(CreateVaultRequest{
		Owner: alice, Amount: NewAmount(1_000_000), Start: 0, End: 1000, Curve: CurveLinear,
	})
	require.NoError(t, err)

	v, err := GetVault(id)
	require.NoError(t, err)
	fee := NewAmount(10)
	v.KeeperFee = &fee
	saveVault(v)

	setClock(500)
	keeper := sdk.Address("keeper")
	amt, err := AutoClaim(id, keeper)
	require.NoError(t, err)
	assert.Equal(t, "500000", amt.String())

	v, _ = GetVault(id)
	assert.Equal(t, "500000", v.ReleasedAmount.String())
}
