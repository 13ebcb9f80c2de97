//go:build test

package vesting

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
)

func TestVestedPartitionLinear(t *testing.T) {
	total := NewAmount(1_000_000)
	for _, now := range []uint64{900, 1000, 1025, 1050, 1075, 1100, 1200} {
		vested := Vested(total, 1000, 1100, now, CurveLinear)
		unvested := Unvested(total, 1000, 1100, now, CurveLinear)
		sum := vested.Add(unvested)
		assert.True(t, sum.Equal(total), "partition broken at now=%d", now)
		assert.False(t, vested.GreaterThan(total))
	}
}

func TestVestedMaturation(t *testing.T) {
	total := NewAmount(1_000_000)
	for _, now := range []uint64{1100, 1101, 5000} {
		assert.True(t, Vested(total, 1000, 1100, now, CurveLinear).Equal(total))
		assert.True(t, Vested(total, 1000, 1100, now, CurveExponential).Equal(total))
	}
}

func TestVestedBeforeStart(t *testing.T) {
	total := NewAmount(1_000_000)
	assert.True(t, Vested(total, 1000, 1100, 1000, CurveLinear).IsZero())
	assert.True(t, Vested(total, 1000, 1100, 500, CurveLinear).IsZero())
}

// scenario 1: linear half-vested.
func TestScenarioLinearHalfVested(t *testing.T) {
	total := NewAmount(1_000_000)
	vested := Vested(total, 1000, 1100, 1050, CurveLinear)
	assert.Equal(t, "500000", vested.String())
}

// scenario 2: exponential quarter-vested.
func TestScenarioExponentialQuarterVested(t *testing.T) {
	total := NewAmount(1_000_000)
	vested := Vested(total, 1000, 1100, 1050, CurveExponential)
	assert.Equal(t, "250000", vested.String())
}

func TestMilestoneVested(t *testing.T) {
	total := NewAmount(1_000_000)
	assert.True(t, MilestoneVested(total, 0).IsZero())
	assert.True(t, MilestoneVested(total, 100).Equal(total))
	assert.Equal(t, "250000", MilestoneVested(total, 25).String())
}

func TestAmountSubUnderflow(t *testing.T) {
	_, err := NewAmount(1).Sub(NewAmount(2))
	assert.Error(t, err)
}

func TestAmountFitsIn128(t *testing.T) {
	assert.True(t, NewAmount(1).FitsIn128())
	var over uint256.Int
	over.Lsh(uint256.NewInt(1), 129)
	assert.False(t, amountFromInt(&over).FitsIn128())
}
