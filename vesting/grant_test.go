//go:build test

package vesting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scenario 3: ten-year grant.
func TestScenarioTenYearGrant(t *testing.T) {
	freshState()
	recipient := alice
	setCaller(recipient)
	setClock(0)

	end, err := InitializeGrant(recipient, NewAmount(100_000_000), MaxDuration)
	require.NoError(t, err)
	assert.Equal(t, MaxDuration, end)

	setClock(157_680_000)
	claimable, err := ClaimableBalance()
	require.NoError(t, err)
	// midpoint of a linear ten-year schedule lands within a 1-unit
	// truncation tolerance of exactly half.
	assert.True(t, claimable.Cmp(NewAmount(49_999_999)) >= 0)
	assert.True(t, claimable.Cmp(NewAmount(50_000_000)) <= 0)

	setClock(MaxDuration)
	amt, err := Claim(recipient)
	require.NoError(t, err)
	assert.Equal(t, "100000000", amt.String())

	_, err = Claim(recipient)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrKind(KindInvalidAmount))
}

func TestInitializeGrantRejectsSecondCall(t *testing.T) {
	freshState()
	setCaller(alice)
	_, err := InitializeGrant(alice, NewAmount(100), 10)
	require.NoError(t, err)

	_, err = InitializeGrant(alice, NewAmount(100), 10)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrKind(KindAlreadyInit))
}

func TestClaimRequiresRecipient(t *testing.T) {
	freshState()
	setCaller(alice)
	_, err := InitializeGrant(alice, NewAmount(1_000), 1000)
	require.NoError(t, err)

	setClock(500)
	setCaller(bob)
	_, err = Claim(bob)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrKind(KindUnauthorized))
}
