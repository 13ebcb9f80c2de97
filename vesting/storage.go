package vesting

import (
	"encoding/json"
	"strconv"

	"vesting-engine/sdk"
)

// -----------------------------------------------------------------------------
// Component B — typed storage abstraction. Every mutation an operation makes
// happens inside the host's per-invocation atomic boundary already (the
// host commits or discards the whole call); this layer only adds typing
// and key-naming discipline on top of the raw sdk.StateSetObject/GetObject
// string kv.
// -----------------------------------------------------------------------------

func getSingletonString(name string) (string, bool) {
	ptr := sdk.StateGetObject(singletonKey(name))
	if ptr == nil {
		return "", false
	}
	return *ptr, true
}

func setSingletonString(name, value string) {
	sdk.StateSetObject(singletonKey(name), value)
}

func deleteSingleton(name string) {
	sdk.StateDeleteObject(singletonKey(name))
}

func getSingletonAmount(name string) (Amount, bool) {
	s, ok := getSingletonString(name)
	if !ok {
		return Zero, false
	}
	var a Amount
	if err := a.UnmarshalJSON([]byte(strconv.Quote(s))); err != nil {
		return Zero, false
	}
	return a, true
}

func setSingletonAmount(name string, a Amount) {
	setSingletonString(name, a.String())
}

func getSingletonUint64(name string) (uint64, bool) {
	s, ok := getSingletonString(name)
	if !ok {
		return 0, false
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func setSingletonUint64(name string, n uint64) {
	setSingletonString(name, strconv.FormatUint(n, 10))
}

func getSingletonBool(name string) bool {
	s, ok := getSingletonString(name)
	return ok && s == "1"
}

func setSingletonBool(name string, v bool) {
	if v {
		setSingletonString(name, "1")
	} else {
		setSingletonString(name, "0")
	}
}

func getSingletonAddress(name string) (sdk.Address, bool) {
	s, ok := getSingletonString(name)
	if !ok || s == "" {
		return "", false
	}
	return sdk.Address(s), true
}

func setSingletonAddress(name string, a sdk.Address) {
	setSingletonString(name, string(a))
}

// -----------------------------------------------------------------------------
// Vault entity storage
// -----------------------------------------------------------------------------

func loadVault(id uint64) (*Vault, bool) {
	ptr := sdk.StateGetObject(vaultKey(id))
	if ptr == nil {
		return nil, false
	}
	v, err := decodeVault(*ptr)
	if err != nil {
		sdk.Abort("corrupt vault record " + strconv.FormatUint(id, 10) + ": " + err.Error())
	}
	v.ID = id
	return v, true
}

func saveVault(v *Vault) {
	sdk.StateSetObject(vaultKey(v.ID), encodeVault(v))
}

// -----------------------------------------------------------------------------
// Per-user vault index
// -----------------------------------------------------------------------------

func loadUserIndex(addr sdk.Address) []uint64 {
	ptr := sdk.StateGetObject(userIndexKey(addr))
	if ptr == nil || *ptr == "" {
		return nil
	}
	var ids []uint64
	if err := json.Unmarshal([]byte(*ptr), &ids); err != nil {
		return nil
	}
	return ids
}

func saveUserIndex(addr sdk.Address, ids []uint64) {
	b, _ := json.Marshal(ids)
	sdk.StateSetObject(userIndexKey(addr), string(b))
}

func addToUserIndex(addr sdk.Address, id uint64) {
	ids := loadUserIndex(addr)
	for _, v := range ids {
		if v == id {
			return
		}
	}
	ids = append(ids, id)
	saveUserIndex(addr, ids)
}

func removeFromUserIndex(addr sdk.Address, id uint64) {
	ids := loadUserIndex(addr)
	out := make([]uint64, 0, len(ids))
	removed := false
	for _, v := range ids {
		if v == id && !removed {
			removed = true
			continue
		}
		out = append(out, v)
	}
	saveUserIndex(addr, out)
}

// -----------------------------------------------------------------------------
// Claim ledger (component K, supplemented audit trail)
// -----------------------------------------------------------------------------

// ClaimEvent is one entry in a vault's append-only claim/revoke history.
type ClaimEvent struct {
	Amount    Amount `json:"amount"`
	Released  Amount `json:"released_after"`
	Timestamp uint64 `json:"timestamp"`
	Kind      string `json:"kind"` // "claim" | "revoke"
}

// appendClaimHistory writes into a MaxClaimHistory-sized ring buffer keyed
// by seq % MaxClaimHistory: the len key tracks the total number of entries
// ever appended (monotonic, never reset), so once it exceeds MaxClaimHistory
// the next write overwrites the oldest surviving slot instead of growing an
// unbounded number of kv records.
func appendClaimHistory(vaultID uint64, ev ClaimEvent) {
	lenKey := claimHistoryLenKey(vaultID)
	seq, _ := getUint64(lenKey)
	b, _ := json.Marshal(ev)
	sdk.StateSetObject(claimHistoryEntryKey(vaultID, seq%MaxClaimHistory), string(b))
	setUint64(lenKey, seq+1)
}

func loadClaimHistory(vaultID uint64) []ClaimEvent {
	lenKey := claimHistoryLenKey(vaultID)
	total, ok := getUint64(lenKey)
	if !ok {
		return nil
	}
	start := uint64(0)
	if total > MaxClaimHistory {
		start = total - MaxClaimHistory
	}
	out := make([]ClaimEvent, 0, total-start)
	for i := start; i < total; i++ {
		ptr := sdk.StateGetObject(claimHistoryEntryKey(vaultID, i%MaxClaimHistory))
		if ptr == nil {
			continue
		}
		var ev ClaimEvent
		if err := json.Unmarshal([]byte(*ptr), &ev); err == nil {
			out = append(out, ev)
		}
	}
	return out
}

func getUint64(key string) (uint64, bool) {
	ptr := sdk.StateGetObject(key)
	if ptr == nil || *ptr == "" {
		return 0, false
	}
	n, err := strconv.ParseUint(*ptr, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func setUint64(key string, n uint64) {
	sdk.StateSetObject(key, strconv.FormatUint(n, 10))
}
