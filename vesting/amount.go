package vesting

import (
	"encoding/json"
	"fmt"

	"github.com/holiman/uint256"
)

// Amount is a non-negative accounting value. It is backed by a 256-bit
// unsigned integer so that intermediate products in the Exponential curve
// (total * elapsed^2, elapsed bounded by MAX_DURATION) never silently
// wrap even when total approaches the 128-bit range the data model
// promises callers. Division truncates toward zero, matching the spec's
// documented ±1-unit underestimate.
type Amount struct {
	n uint256.Int
}

// Zero is the additive identity, safe to use as a zero value directly
// (Amount{} already satisfies this; Zero exists for readability).
var Zero = Amount{}

// NewAmount wraps a uint64 as an Amount.
func NewAmount(v uint64) Amount {
	return Amount{n: *uint256.NewInt(v)}
}

// amountFromInt adopts a *uint256.Int computed by the math helpers below.
func amountFromInt(v *uint256.Int) Amount {
	return Amount{n: *v}
}

// maxAmount128 is the largest value the data model's "non-negative 128-bit
// integer" fields may hold.
var maxAmount128 = func() uint256.Int {
	var max uint256.Int
	max.Lsh(uint256.NewInt(1), 128)
	max.SubUint64(&max, 1)
	return max
}()

// FitsIn128 reports whether the value is within the 128-bit range the data
// model reserves for total_amount, released_amount, admin_balance, and
// initial_supply.
func (a Amount) FitsIn128() bool {
	return a.n.Cmp(&maxAmount128) <= 0
}

func (a Amount) Add(b Amount) Amount {
	var r uint256.Int
	r.Add(&a.n, &b.n)
	return Amount{n: r}
}

// Sub returns an error instead of wrapping when b exceeds a, since every
// subtraction in this engine represents a balance that must never go
// negative.
func (a Amount) Sub(b Amount) (Amount, error) {
	if a.n.Lt(&b.n) {
		return Amount{}, fmt.Errorf("amount underflow: %s - %s", a.String(), b.String())
	}
	var r uint256.Int
	r.Sub(&a.n, &b.n)
	return Amount{n: r}, nil
}

func (a Amount) Cmp(b Amount) int         { return a.n.Cmp(&b.n) }
func (a Amount) LessThan(b Amount) bool   { return a.n.Lt(&b.n) }
func (a Amount) GreaterThan(b Amount) bool { return a.n.Gt(&b.n) }
func (a Amount) Equal(b Amount) bool      { return a.n.Eq(&b.n) }
func (a Amount) IsZero() bool             { return a.n.IsZero() }
func (a Amount) Uint64() uint64           { return a.n.Uint64() }
func (a Amount) String() string           { return a.n.String() }
func (a Amount) Int() *uint256.Int        { c := a.n; return &c }

func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.n.String())
}

func (a *Amount) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	v, err := uint256.FromDecimal(s)
	if err != nil {
		return fmt.Errorf("decode amount %q: %w", s, err)
	}
	a.n = *v
	return nil
}
