//go:build test

package vesting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vesting-engine/sdk"
)

var (
	admin = sdk.Address("admin")
	alice = sdk.Address("alice")
	bob   = sdk.Address("bob")
)

func initAdmin(t *testing.T, supply uint64) {
	t.Helper()
	freshState()
	setCaller(admin)
	require.NoError(t, Initialize(admin, NewAmount(supply)))
}

func TestInitializeAlreadyInitialized(t *testing.T) {
	initAdmin(t, 1_000_000)
	err := Initialize(admin, NewAmount(1))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrKind(KindAlreadyInit))
}

func TestCreateVaultFullDecrementsAdminBalance(t *testing.T) {
	initAdmin(t, 1_000_000)
	setCaller(admin)
	id, err := CreateVaultFull(CreateVaultRequest{
		Owner: alice, Amount: NewAmount(1_000_000), Start: 1000, End: 1100, Curve: CurveLinear,
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(0), id)

	state := GetContractState()
	assert.True(t, state.AdminBalance.IsZero())
	assert.Equal(t, "1000000", state.TotalLocked.String())
	assert.Contains(t, GetUserVaults(alice), uint64(0))
}

func TestCreateVaultLazyDefersIndex(t *testing.T) {
	initAdmin(t, 1_000_000)
	setCaller(admin)
	id, err := CreateVaultLazy(CreateVaultRequest{
		Owner: alice, Amount: NewAmount(500), Start: 1000, End: 1100, Curve: CurveLinear,
	})
	require.NoError(t, err)
	assert.Empty(t, GetUserVaults(alice))

	promoted, err := InitializeVaultMetadata(id)
	require.NoError(t, err)
	assert.True(t, promoted)
	assert.Contains(t, GetUserVaults(alice), id)

	promotedAgain, err := InitializeVaultMetadata(id)
	require.NoError(t, err)
	assert.False(t, promotedAgain)
}

func TestCreateVaultRejectsNonAdmin(t *testing.T) {
	initAdmin(t, 1_000_000)
	setCaller(alice)
	_, err := CreateVaultFull(CreateVaultRequest{Owner: alice, Amount: NewAmount(1), Start: 0, End: 10, Curve: CurveLinear})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrKind(KindUnauthorized))
}

// scenario 6: batch atomicity.
func TestBatchCreateVaultsAtomicity(t *testing.T) {
	initAdmin(t, 1_000)
	setCaller(admin)
	_, err := BatchCreateVaultsFull([]CreateVaultRequest{
		{Owner: alice, Amount: NewAmount(600), Start: 0, End: 10, Curve: CurveLinear},
		{Owner: bob, Amount: NewAmount(500), Start: 0, End: 10, Curve: CurveLinear},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrKind(KindInsufficientFunds))

	count, _ := getSingletonUint64(singletonVaultCount)
	assert.Equal(t, uint64(0), count)
}

func createTestVault(t *testing.T, irrevocable, transferable bool) uint64 {
	t.Helper()
	setCaller(admin)
	id, err := CreateVaultFull(CreateVaultRequest{
		Owner: alice, Amount: NewAmount(100_000), Start: 1000, End: 1100,
		Curve: CurveLinear, Irrevocable: irrevocable, Transferable: transferable,
	})
	require.NoError(t, err)
	return id
}

// scenario 4: freeze-then-revoke success.
func TestFreezeThenRevoke(t *testing.T) {
	initAdmin(t, 100_000)
	id := createTestVault(t, false, false)

	setCaller(admin)
	require.NoError(t, FreezeVault(id))

	setCaller(alice)
	setClock(1050)
	_, err := ClaimTokens(id, NewAmount(1))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrKind(KindVaultFrozen))

	setCaller(admin)
	amt, err := RevokeTokens(id)
	require.NoError(t, err)
	assert.Equal(t, "100000", amt.String())

	state := GetContractState()
	assert.Equal(t, "100000", state.AdminBalance.String())
}

// P6: revoke ignores freeze; revoke respects irrevocable.
func TestRevokeIgnoresFreezeButRespectsIrrevocable(t *testing.T) {
	initAdmin(t, 200_000)
	id := createTestVault(t, true, false)
	setCaller(admin)
	require.NoError(t, FreezeVault(id))

	_, err := RevokeTokens(id)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrKind(KindVaultIrrevocable))

	revocable := createTestVault(t, false, false)
	setCaller(admin)
	require.NoError(t, FreezeVault(revocable))
	amt, err := RevokeTokens(revocable)
	require.NoError(t, err)
	assert.Equal(t, "100000", amt.String())
}

func TestRevokeNothingToRevoke(t *testing.T) {
	initAdmin(t, 100_000)
	id := createTestVault(t, false, false)
	setCaller(admin)
	_, err := RevokeTokens(id)
	require.NoError(t, err)
	_, err = RevokeTokens(id)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrKind(KindNothingToRevoke))
}

func TestRevokePartialLeavesVaultActive(t *testing.T) {
	initAdmin(t, 100_000)
	id := createTestVault(t, false, false)
	setCaller(admin)

	amt, err := RevokePartial(id, NewAmount(40_000))
	require.NoError(t, err)
	assert.Equal(t, "40000", amt.String())

	v, err := GetVault(id)
	require.NoError(t, err)
	assert.Equal(t, "40000", v.ReleasedAmount.String())
	assert.False(t, v.IsFrozen)

	state := GetContractState()
	assert.Equal(t, "40000", state.AdminBalance.String())

	_, err = RevokePartial(id, NewAmount(100_000))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrKind(KindInsufficientFunds))
}

func TestRevokePartialRespectsIrrevocable(t *testing.T) {
	initAdmin(t, 100_000)
	id := createTestVault(t, true, false)
	setCaller(admin)

	_, err := RevokePartial(id, NewAmount(1))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrKind(KindVaultIrrevocable))
}

func TestMarkIrrevocableBlocksLaterRevoke(t *testing.T) {
	initAdmin(t, 100_000)
	id := createTestVault(t, false, false)
	setCaller(admin)

	irrevocable, err := IsVaultIrrevocable(id)
	require.NoError(t, err)
	assert.False(t, irrevocable)

	require.NoError(t, MarkIrrevocable(id))

	irrevocable, err = IsVaultIrrevocable(id)
	require.NoError(t, err)
	assert.True(t, irrevocable)

	_, err = RevokeTokens(id)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrKind(KindVaultIrrevocable))

	err = MarkIrrevocable(id)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrKind(KindVaultIrrevocable))
}

func TestIsVaultFrozenReflectsFreezeState(t *testing.T) {
	initAdmin(t, 100_000)
	id := createTestVault(t, false, false)
	setCaller(admin)

	frozen, err := IsVaultFrozen(id)
	require.NoError(t, err)
	assert.False(t, frozen)

	require.NoError(t, FreezeVault(id))

	frozen, err = IsVaultFrozen(id)
	require.NoError(t, err)
	assert.True(t, frozen)
}

func TestTransferBeneficiaryMovesIndex(t *testing.T) {
	initAdmin(t, 100_000)
	id := createTestVault(t, false, false)
	setCaller(admin)
	require.NoError(t, TransferBeneficiary(id, bob))
	assert.NotContains(t, GetUserVaults(alice), id)
	assert.Contains(t, GetUserVaults(bob), id)
}

func TestTransferVaultRequiresTransferableFlag(t *testing.T) {
	initAdmin(t, 100_000)
	id := createTestVault(t, false, false)
	setCaller(alice)
	err := TransferVault(id, bob)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrKind(KindUnauthorized))
}

func TestTransferVaultSelfServiceClearsDelegate(t *testing.T) {
	initAdmin(t, 100_000)
	id := createTestVault(t, false, true)
	setCaller(alice)
	require.NoError(t, SetDelegate(id, &bob))

	require.NoError(t, TransferVault(id, bob))
	v, err := GetVault(id)
	require.NoError(t, err)
	assert.Equal(t, bob, v.Owner)
	assert.Nil(t, v.Delegate)
}

func TestClawbackWithinGraceAndNoClaims(t *testing.T) {
	initAdmin(t, 100_000)
	setCaller(admin)
	setClock(1000)
	id := createTestVault(t, false, false)

	setClock(1000 + ClawbackGrace - 1)
	require.NoError(t, ClawbackVault(id))

	state := GetContractState()
	assert.Equal(t, "100000", state.AdminBalance.String())
}

func TestClawbackFailsAfterGrace(t *testing.T) {
	initAdmin(t, 100_000)
	setCaller(admin)
	setClock(1000)
	id := createTestVault(t, false, false)

	setClock(1000 + ClawbackGrace + 1)
	err := ClawbackVault(id)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrKind(KindInvalidDuration))
}

func TestClawbackRespectsIrrevocable(t *testing.T) {
	initAdmin(t, 100_000)
	setCaller(admin)
	setClock(1000)
	id := createTestVault(t, true, false)

	err := ClawbackVault(id)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrKind(KindVaultIrrevocable))
}

func TestStakeAndUnstakeBookkeeping(t *testing.T) {
	initAdmin(t, 100_000)
	id := createTestVault(t, false, false)

	setCaller(alice)
	require.NoError(t, StakeTokens(id, NewAmount(10_000)))
	v, err := GetVault(id)
	require.NoError(t, err)
	assert.Equal(t, "10000", v.StakedAmount.String())

	err = StakeTokens(id, NewAmount(95_000))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrKind(KindInsufficientFunds))

	require.NoError(t, UnstakeTokens(id, NewAmount(4_000)))
	v, _ = GetVault(id)
	assert.Equal(t, "6000", v.StakedAmount.String())
}

func TestSetMilestonesAndUnlock(t *testing.T) {
	initAdmin(t, 100_000)
	id := createTestVault(t, false, false)
	setCaller(admin)

	require.NoError(t, SetMilestones(id, []Milestone{{ID: 1, Weight: 40}, {ID: 2, Weight: 60}}))
	require.NoError(t, UnlockMilestone(id, 1))

	ms, err := GetMilestones(id)
	require.NoError(t, err)
	require.Len(t, ms, 2)
	assert.True(t, ms[0].Unlocked)
	assert.False(t, ms[1].Unlocked)

	err = UnlockMilestone(id, 1)
	require.Error(t, err)
}
