package vesting

import (
	"fmt"

	result "github.com/JustinKnueppel/go-result"
	"github.com/holiman/uint256"
)

// Curve tags the shape of a vault's release schedule. It is an immutable
// choice captured at vault creation; adding a new release shape means
// adding a variant here and a matching arm in Vested, never a virtual
// dispatch table.
type Curve uint8

const (
	CurveLinear Curve = iota
	CurveExponential
)

func (c Curve) String() string {
	switch c {
	case CurveLinear:
		return "linear"
	case CurveExponential:
		return "exponential"
	default:
		return "unknown"
	}
}

// parseCurve decodes a persisted curve tag, returning a Result so the one
// call site that needs to distinguish "valid but exotic" from "corrupt
// storage" can do so without an extra bool return. This mirrors the
// Result-returning style of the Soroban contract this engine was modeled
// on; outside this file the engine always uses plain (T, error).
func parseCurve(tag uint8) result.Result[Curve] {
	switch Curve(tag) {
	case CurveLinear:
		return result.Ok(CurveLinear)
	case CurveExponential:
		return result.Ok(CurveExponential)
	default:
		return result.Err[Curve](fmt.Errorf("unknown curve tag %d", tag))
	}
}

// Vested computes the portion of total unlocked by curve c at time now,
// over the half-open window [start, end). All multiplication happens in
// 256-bit intermediates so that total approaching the 128-bit ceiling and
// elapsed approaching MAX_DURATION never overflow the arithmetic, only
// ever the (much larger) 256-bit result space. Division truncates toward
// zero: the returned value may underestimate the continuous curve by at
// most one unit.
func Vested(total Amount, start, end, now uint64, c Curve) Amount {
	if now <= start {
		return Zero
	}
	if now >= end {
		return total
	}
	span := end - start
	elapsed := now - start

	switch c {
	case CurveExponential:
		return amountFromInt(scaledSquare(total.Int(), elapsed, span))
	default:
		return amountFromInt(scaledLinear(total.Int(), elapsed, span))
	}
}

// Unvested is the complement of Vested; together they satisfy the
// partition invariant exactly because Unvested is defined as the
// subtraction, never recomputed independently.
func Unvested(total Amount, start, end, now uint64, c Curve) Amount {
	v := Vested(total, start, end, now, c)
	u, err := total.Sub(v)
	if err != nil {
		// Vested never exceeds total by construction; this would indicate
		// a logic error in Vested itself, not a caller mistake.
		panic(err)
	}
	return u
}

// scaledLinear computes total * elapsed / span.
func scaledLinear(total *uint256.Int, elapsed, span uint64) *uint256.Int {
	num := new(uint256.Int).Mul(total, uint256.NewInt(elapsed))
	return safeDiv256(num, uint256.NewInt(span))
}

// scaledSquare computes total * elapsed^2 / span^2, the Exponential curve.
// elapsed and span are each bounded by MAX_DURATION (~2^29), so their
// squares fit comfortably in 64 bits before the multiply by total widens
// the product into 256-bit space.
func scaledSquare(total *uint256.Int, elapsed, span uint64) *uint256.Int {
	elapsedSq := new(uint256.Int).Mul(uint256.NewInt(elapsed), uint256.NewInt(elapsed))
	spanSq := new(uint256.Int).Mul(uint256.NewInt(span), uint256.NewInt(span))
	num := new(uint256.Int).Mul(total, elapsedSq)
	return safeDiv256(num, spanSq)
}

// safeDiv256 divides, trusting the caller that the divisor (a validated
// span, never user-supplied directly) is non-zero; it aborts loudly rather
// than silently returning zero if that trust is ever violated, since a
// zero span here means an invariant elsewhere already broke.
func safeDiv256(num, denom *uint256.Int) *uint256.Int {
	if denom.IsZero() {
		panic("vesting: division by zero span")
	}
	return new(uint256.Int).Div(num, denom)
}

// MilestoneVested implements the discrete milestone variant of the curve:
// total * (sum of unlocked milestone weights) / 100. unlockedWeightSum is
// supplied by the caller (component D owns which milestones are unlocked);
// this function stays pure.
func MilestoneVested(total Amount, unlockedWeightSum uint8) Amount {
	if unlockedWeightSum == 0 {
		return Zero
	}
	if unlockedWeightSum >= 100 {
		return total
	}
	num := new(uint256.Int).Mul(total.Int(), uint256.NewInt(uint64(unlockedWeightSum)))
	return amountFromInt(safeDiv256(num, uint256.NewInt(100)))
}
