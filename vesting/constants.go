package vesting

// MaxDuration is the hard ceiling on end-start for any vault window: ten
// years in seconds.
const MaxDuration uint64 = 315_360_000

// ClawbackGrace is the window after a vault's creation_time during which
// an admin may clawback_vault a vault that has not yet been claimed
// against at all, regardless of is_frozen.
const ClawbackGrace uint64 = 3600

// MaxTitleLen caps the opaque vault title, set via set_vault_title.
const MaxTitleLen = 64

// MaxMilestones caps the milestone list length per vault.
const MaxMilestones = 32

// MaxClaimHistory caps the per-vault claim ledger (component K) at its
// most recent entries; a vault that claims in small increments for years
// should not grow an unbounded number of kv records.
const MaxClaimHistory = 256

// -----------------------------------------------------------------------------
// Storage key prefixes. Each entity namespace gets its own leading byte so
// that distinct record kinds never collide inside the flat host kv store,
// the same packing convention the DAO contract this engine is descended
// from used for its project/proposal/member keys.
// -----------------------------------------------------------------------------

const (
	kSingleton    byte = 0x01 // scalar singletons, suffixed by a name string; the grant variant's own singletons share this namespace under distinct names
	kVault        byte = 0x02 // vault:{id} -> encoded Vault
	kUserIndex    byte = 0x03 // user_index:{identity} -> sequence of vault_id
	kClaimHistory byte = 0x04 // claim_history:{vault_id}:{seq % MaxClaimHistory} -> encoded ClaimEvent
	kClaimHistLen byte = 0x05 // claim_history_len:{vault_id} -> uint64 counter
)

// Singleton names, packed after kSingleton.
const (
	singletonInitialSupply     = "initial_supply"
	singletonAdminBalance      = "admin_balance"
	singletonAdminAddress      = "admin_address"
	singletonProposedAdmin     = "proposed_admin"
	singletonVaultCount        = "vault_count"
	singletonIsDeprecated      = "is_deprecated"
	singletonMigrationTarget   = "migration_target"
	singletonPaused            = "paused"
	singletonGrantRecipient    = "grant_recipient"
	singletonGrantTotal        = "grant_total"
	singletonGrantStart        = "grant_start"
	singletonGrantEnd          = "grant_end"
	singletonGrantClaimed      = "grant_claimed"
	singletonGrantInitialized  = "grant_initialized"
)
