package vesting

import (
	"encoding/json"
	"fmt"

	"vesting-engine/sdk"
)

// Milestone is one discretely-unlockable slice of a vault's total. Weights
// across a vault's milestone list sum to at most 100.
type Milestone struct {
	ID       uint8 `json:"id"`
	Weight   uint8 `json:"weight"`
	Unlocked bool  `json:"unlocked"`
}

// Vault is the accounting record spec.md §3 describes. ID is not part of
// the JSON encoding; it is recovered from the storage key on load.
type Vault struct {
	ID uint64 `json:"-"`

	Owner    sdk.Address  `json:"owner"`
	Delegate *sdk.Address `json:"delegate,omitempty"`

	TotalAmount    Amount  `json:"total_amount"`
	ReleasedAmount Amount  `json:"released_amount"`
	KeeperFee      *Amount `json:"keeper_fee,omitempty"`
	StakedAmount   Amount  `json:"staked_amount"`

	StartTime     uint64  `json:"start_time"`
	EndTime       uint64  `json:"end_time"`
	CreationTime  uint64  `json:"creation_time"`
	StepDuration  *uint64 `json:"step_duration,omitempty"`
	Curve         Curve   `json:"curve"`

	IsInitialized  bool `json:"is_initialized"`
	IsFrozen       bool `json:"is_frozen"`
	IsIrrevocable  bool `json:"is_irrevocable"`
	IsTransferable bool `json:"is_transferable"`

	Milestones []Milestone `json:"milestones,omitempty"`
	Title      string      `json:"title,omitempty"`
}

// vaultWire is the on-the-wire shape; it exists separately from Vault only
// so Curve can round-trip as a plain uint8 tag rather than leaning on
// Curve's own (nonexistent) JSON methods, keeping the schema explicit and
// versionable the way spec.md §6 asks (VaultV1, VaultV2, ... by adding
// fields, never by reordering).
type vaultWire struct {
	Owner          sdk.Address  `json:"owner"`
	Delegate       *sdk.Address `json:"delegate,omitempty"`
	TotalAmount    Amount       `json:"total_amount"`
	ReleasedAmount Amount       `json:"released_amount"`
	KeeperFee      *Amount      `json:"keeper_fee,omitempty"`
	StakedAmount   Amount       `json:"staked_amount"`
	StartTime      uint64       `json:"start_time"`
	EndTime        uint64       `json:"end_time"`
	CreationTime   uint64       `json:"creation_time"`
	StepDuration   *uint64      `json:"step_duration,omitempty"`
	Curve          uint8        `json:"curve"`
	IsInitialized  bool         `json:"is_initialized"`
	IsFrozen       bool         `json:"is_frozen"`
	IsIrrevocable  bool         `json:"is_irrevocable"`
	IsTransferable bool         `json:"is_transferable"`
	Milestones     []Milestone  `json:"milestones,omitempty"`
	Title          string       `json:"title,omitempty"`
}

func encodeVault(v *Vault) string {
	w := vaultWire{
		Owner:          v.Owner,
		Delegate:       v.Delegate,
		TotalAmount:    v.TotalAmount,
		ReleasedAmount: v.ReleasedAmount,
		KeeperFee:      v.KeeperFee,
		StakedAmount:   v.StakedAmount,
		StartTime:      v.StartTime,
		EndTime:        v.EndTime,
		CreationTime:   v.CreationTime,
		StepDuration:   v.StepDuration,
		Curve:          uint8(v.Curve),
		IsInitialized:  v.IsInitialized,
		IsFrozen:       v.IsFrozen,
		IsIrrevocable:  v.IsIrrevocable,
		IsTransferable: v.IsTransferable,
		Milestones:     v.Milestones,
		Title:          v.Title,
	}
	b, err := json.Marshal(&w)
	if err != nil {
		sdk.Abort("encode vault: " + err.Error())
	}
	return string(b)
}

func decodeVault(data string) (*Vault, error) {
	var w vaultWire
	if err := json.Unmarshal([]byte(data), &w); err != nil {
		return nil, fmt.Errorf("unmarshal vault: %w", err)
	}
	curve := parseCurve(w.Curve)
	if curve.IsErr() {
		return nil, fmt.Errorf("decode vault: %w", curve.UnwrapErr())
	}
	return &Vault{
		Owner:          w.Owner,
		Delegate:       w.Delegate,
		TotalAmount:    w.TotalAmount,
		ReleasedAmount: w.ReleasedAmount,
		KeeperFee:      w.KeeperFee,
		StakedAmount:   w.StakedAmount,
		StartTime:      w.StartTime,
		EndTime:        w.EndTime,
		CreationTime:   w.CreationTime,
		StepDuration:   w.StepDuration,
		Curve:          curve.Unwrap(),
		IsInitialized:  w.IsInitialized,
		IsFrozen:       w.IsFrozen,
		IsIrrevocable:  w.IsIrrevocable,
		IsTransferable: w.IsTransferable,
		Milestones:     w.Milestones,
		Title:          w.Title,
	}, nil
}
