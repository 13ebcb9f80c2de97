package vesting

import "vesting-engine/sdk"

// packU64LE appends x to dst in little-endian order, keeping numeric key
// suffixes compact and directly comparable as byte strings.
func packU64LE(x uint64, dst []byte) []byte {
	return append(dst,
		byte(x), byte(x>>8), byte(x>>16), byte(x>>24),
		byte(x>>32), byte(x>>40), byte(x>>48), byte(x>>56),
	)
}

func singletonKey(name string) string {
	buf := make([]byte, 0, 1+len(name))
	buf = append(buf, kSingleton)
	buf = append(buf, name...)
	return string(buf)
}

func vaultKey(id uint64) string {
	buf := make([]byte, 0, 9)
	buf = append(buf, kVault)
	buf = packU64LE(id, buf)
	return string(buf)
}

func userIndexKey(addr sdk.Address) string {
	buf := make([]byte, 0, 1+len(addr))
	buf = append(buf, kUserIndex)
	buf = append(buf, addr...)
	return string(buf)
}

func claimHistoryLenKey(vaultID uint64) string {
	buf := make([]byte, 0, 9)
	buf = append(buf, kClaimHistLen)
	buf = packU64LE(vaultID, buf)
	return string(buf)
}

func claimHistoryEntryKey(vaultID uint64, seq uint64) string {
	buf := make([]byte, 0, 17)
	buf = append(buf, kClaimHistory)
	buf = packU64LE(vaultID, buf)
	buf = packU64LE(seq, buf)
	return string(buf)
}
