package vesting

import (
	"strconv"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"vesting-engine/sdk"
)

// sdkWriter forwards every zerolog-formatted line to the host console sink,
// so the structured event stream and the host's own log view see the same
// lines.
type sdkWriter struct{}

func (sdkWriter) Write(p []byte) (int, error) {
	sdk.Log(string(p))
	return len(p), nil
}

var eventLog = zerolog.New(sdkWriter{}).With().Logger()

// emit is the shared tail of every typed event: a structured zerolog
// record (for off-chain indexers that want fields) plus the terse
// topic-tagged line the contract's own console watchers expect.
func emit(topic string, rid string, pairs ...string) {
	ev := eventLog.Info().Str("topic", topic).Str("rid", rid)
	line := topic + "|rid:" + rid
	for i := 0; i+1 < len(pairs); i += 2 {
		ev = ev.Str(pairs[i], pairs[i+1])
		line += "|" + pairs[i] + ":" + pairs[i+1]
	}
	ev.Send()
	sdk.Log(line)
}

func newRID() string {
	return uuid.NewString()
}

func u64s(n uint64) string { return strconv.FormatUint(n, 10) }

func emitVaultCreated(v *Vault) {
	emit("vc", newRID(),
		"id", u64s(v.ID),
		"owner", v.Owner.String(),
		"total", v.TotalAmount.String(),
		"start", u64s(v.StartTime),
		"end", u64s(v.EndTime),
		"curve", v.Curve.String(),
	)
}

func emitTokensClaimed(vaultID uint64, beneficiary sdk.Address, amount Amount, ts uint64) {
	emit("tc", newRID(),
		"id", u64s(vaultID),
		"to", beneficiary.String(),
		"amount", amount.String(),
		"ts", u64s(ts),
	)
}

func emitTokensRevoked(vaultID uint64, amount Amount, ts uint64) {
	emit("tr", newRID(),
		"id", u64s(vaultID),
		"amount", amount.String(),
		"ts", u64s(ts),
	)
}

func emitVaultFrozen(vaultID uint64, ts uint64) {
	emit("vf", newRID(), "id", u64s(vaultID), "ts", u64s(ts))
}

func emitVaultUnfrozen(vaultID uint64, ts uint64) {
	emit("vu", newRID(), "id", u64s(vaultID), "ts", u64s(ts))
}

func emitVaultMarkedIrrevocable(vaultID uint64, ts uint64) {
	emit("vi", newRID(), "id", u64s(vaultID), "ts", u64s(ts))
}

func emitBeneficiaryChanged(vaultID uint64, old, new sdk.Address, ts uint64) {
	emit("bc", newRID(),
		"id", u64s(vaultID),
		"old", old.String(),
		"new", new.String(),
		"ts", u64s(ts),
	)
}

func emitAdminProposed(old, new sdk.Address, ts uint64) {
	emit("ap", newRID(), "old", old.String(), "new", new.String(), "ts", u64s(ts))
}

func emitAdminAccepted(old, new sdk.Address, ts uint64) {
	emit("aa", newRID(), "old", old.String(), "new", new.String(), "ts", u64s(ts))
}

func emitDeprecated(successor sdk.Address, ts uint64) {
	emit("dp", newRID(), "successor", successor.String(), "ts", u64s(ts))
}
