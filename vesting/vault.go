package vesting

import "vesting-engine/sdk"

// CreateVaultRequest bundles the arguments create_vault_full/lazy and the
// batch variants share.
type CreateVaultRequest struct {
	Owner       sdk.Address
	Amount      Amount
	Start       uint64
	End         uint64
	Curve       Curve
	Irrevocable bool
	Transferable bool
}

func validateWindow(op string, start, end uint64) error {
	if end <= start {
		return fail(op, KindInvalidDuration, "end must be after start")
	}
	if end-start > MaxDuration {
		return fail(op, KindInvalidDuration, "window exceeds MAX_DURATION")
	}
	return nil
}

func validateAmount(op string, a Amount) error {
	if a.IsZero() {
		return fail(op, KindInvalidAmount, "amount must be positive")
	}
	if !a.FitsIn128() {
		return fail(op, KindInvalidAmount, "amount exceeds 128-bit range")
	}
	return nil
}

// Initialize sets the one-time singletons. Fails AlreadyInitialized if
// admin_address is already set — the source this engine was modeled on
// has no such guard; this engine mandates it.
func Initialize(admin sdk.Address, initialSupply Amount) error {
	const op = "initialize"
	if _, ok := getSingletonAddress(singletonAdminAddress); ok {
		return fail(op, KindAlreadyInit, "initialize already called")
	}
	// Unlike vault amounts, initial_supply of zero is a legitimate (if
	// useless) deployment; only the 128-bit range is enforced here.
	if !initialSupply.FitsIn128() {
		return fail(op, KindInvalidAmount, "initial_supply exceeds 128-bit range")
	}
	setSingletonAddress(singletonAdminAddress, admin)
	setSingletonAmount(singletonInitialSupply, initialSupply)
	setSingletonAmount(singletonAdminBalance, initialSupply)
	setSingletonUint64(singletonVaultCount, 0)
	setSingletonBool(singletonIsDeprecated, false)
	setSingletonBool(singletonPaused, false)
	return nil
}

func nextVaultID() uint64 {
	id, _ := getSingletonUint64(singletonVaultCount)
	setSingletonUint64(singletonVaultCount, id+1)
	return id
}

// createVault is the shared body of create_vault_full and create_vault_lazy;
// lazy only differs in whether the owner's index is written immediately.
func createVault(op string, req CreateVaultRequest, lazy bool) (uint64, error) {
	if err := checkAdminInitialized(op); err != nil {
		return 0, err
	}
	if err := checkNotDeprecated(op); err != nil {
		return 0, err
	}
	if err := requireAdmin(caller(), op); err != nil {
		return 0, err
	}
	if err := validateAmount(op, req.Amount); err != nil {
		return 0, err
	}
	if err := validateWindow(op, req.Start, req.End); err != nil {
		return 0, err
	}
	balance, _ := getSingletonAmount(singletonAdminBalance)
	if req.Amount.GreaterThan(balance) {
		return 0, fail(op, KindInsufficientFunds, "amount exceeds admin_balance")
	}

	id := nextVaultID()
	v := &Vault{
		ID:             id,
		Owner:          req.Owner,
		TotalAmount:    req.Amount,
		ReleasedAmount: Zero,
		StakedAmount:   Zero,
		StartTime:      req.Start,
		EndTime:        req.End,
		CreationTime:   now(),
		Curve:          req.Curve,
		IsInitialized:  !lazy,
		IsIrrevocable:  req.Irrevocable,
		IsTransferable: req.Transferable,
	}
	newBalance, _ := balance.Sub(req.Amount)
	setSingletonAmount(singletonAdminBalance, newBalance)
	saveVault(v)
	if !lazy {
		addToUserIndex(req.Owner, id)
	}
	emitVaultCreated(v)
	return id, nil
}

// CreateVaultFull creates an active vault: the owner's index is written
// immediately.
func CreateVaultFull(req CreateVaultRequest) (uint64, error) {
	return createVault("create_vault_full", req, false)
}

// CreateVaultLazy creates a dormant vault: the owner's index write is
// deferred to InitializeVaultMetadata, the only operation that promotes it.
func CreateVaultLazy(req CreateVaultRequest) (uint64, error) {
	return createVault("create_vault_lazy", req, true)
}

// BatchCreateVaultsFull validates the sum of requested amounts against
// admin_balance once, then commits every creation, or none.
func BatchCreateVaultsFull(reqs []CreateVaultRequest) ([]uint64, error) {
	return batchCreateVaults("batch_create_vaults_full", reqs, false)
}

// BatchCreateVaultsLazy is the lazy counterpart.
func BatchCreateVaultsLazy(reqs []CreateVaultRequest) ([]uint64, error) {
	return batchCreateVaults("batch_create_vaults_lazy", reqs, true)
}

func batchCreateVaults(op string, reqs []CreateVaultRequest, lazy bool) ([]uint64, error) {
	if err := checkAdminInitialized(op); err != nil {
		return nil, err
	}
	if err := checkNotDeprecated(op); err != nil {
		return nil, err
	}
	if err := requireAdmin(caller(), op); err != nil {
		return nil, err
	}
	sum := Zero
	for _, r := range reqs {
		if err := validateAmount(op, r.Amount); err != nil {
			return nil, err
		}
		if err := validateWindow(op, r.Start, r.End); err != nil {
			return nil, err
		}
		sum = sum.Add(r.Amount)
	}
	balance, _ := getSingletonAmount(singletonAdminBalance)
	if sum.GreaterThan(balance) {
		return nil, fail(op, KindInsufficientFunds, "batch sum exceeds admin_balance")
	}
	ids := make([]uint64, 0, len(reqs))
	for _, r := range reqs {
		id, err := createVault(op, r, lazy)
		if err != nil {
			// Already validated above; a failure here would be a logic
			// error, not a caller mistake, since the balance check already
			// passed for the whole batch.
			sdk.Abort("batch creation inconsistency: " + err.Error())
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// InitializeVaultMetadata is the idempotent lazy-vault promoter. Restricted
// to admin, not any caller as the system this was modeled on allowed —
// left open in spec.md §9 Q3, decided here in favor of admin-only so that
// the same authority that created a lazy vault is the one that pays for
// promoting it into the index, avoiding unbounded index writes driven by
// arbitrary callers.
func InitializeVaultMetadata(vaultID uint64) (bool, error) {
	const op = "initialize_vault_metadata"
	if err := checkNotDeprecated(op); err != nil {
		return false, err
	}
	if err := requireAdmin(caller(), op); err != nil {
		return false, err
	}
	v, ok := loadVault(vaultID)
	if !ok {
		return false, fail(op, KindVaultNotFound, "")
	}
	if v.IsInitialized {
		return false, nil
	}
	v.IsInitialized = true
	saveVault(v)
	addToUserIndex(v.Owner, vaultID)
	return true, nil
}

// TransferBeneficiary is the admin-driven beneficiary transfer: moves the
// vault id between the old and new owner's index (if active) or just
// rewrites Owner (if lazy, where the index is lazy-correct by
// construction).
func TransferBeneficiary(vaultID uint64, newOwner sdk.Address) error {
	const op = "transfer_beneficiary"
	if err := checkNotDeprecated(op); err != nil {
		return err
	}
	if err := requireAdmin(caller(), op); err != nil {
		return err
	}
	v, ok := loadVault(vaultID)
	if !ok {
		return fail(op, KindVaultNotFound, "")
	}
	old := v.Owner
	if v.IsInitialized {
		removeFromUserIndex(old, vaultID)
		addToUserIndex(newOwner, vaultID)
	}
	v.Owner = newOwner
	saveVault(v)
	emitBeneficiaryChanged(vaultID, old, newOwner, now())
	return nil
}

// TransferVault is the owner-initiated self-service counterpart, gated on
// IsTransferable. Supplemented from the source contract's
// transfer_vault/rotate_beneficiary_key, which also clears any delegate on
// transfer — kept here for the same reason: a delegate authorized by the
// old owner has no standing claim on the new owner's vault.
func TransferVault(vaultID uint64, newOwner sdk.Address) error {
	const op = "transfer_vault"
	if err := checkNotDeprecated(op); err != nil {
		return err
	}
	v, ok := loadVault(vaultID)
	if !ok {
		return fail(op, KindVaultNotFound, "")
	}
	if err := requireOwner(caller(), v, op); err != nil {
		return err
	}
	if !v.IsTransferable {
		return fail(op, KindUnauthorized, "vault is not transferable")
	}
	old := v.Owner
	if v.IsInitialized {
		removeFromUserIndex(old, vaultID)
		addToUserIndex(newOwner, vaultID)
	}
	v.Owner = newOwner
	v.Delegate = nil
	saveVault(v)
	emitBeneficiaryChanged(vaultID, old, newOwner, now())
	return nil
}

// SetDelegate sets or clears the vault's delegate; owner-only.
func SetDelegate(vaultID uint64, delegate *sdk.Address) error {
	const op = "set_delegate"
	if err := checkNotDeprecated(op); err != nil {
		return err
	}
	v, ok := loadVault(vaultID)
	if !ok {
		return fail(op, KindVaultNotFound, "")
	}
	if err := requireOwner(caller(), v, op); err != nil {
		return err
	}
	v.Delegate = delegate
	saveVault(v)
	return nil
}

// SetVaultTitle sets the opaque label; admin or owner.
func SetVaultTitle(vaultID uint64, title string) error {
	const op = "set_vault_title"
	if err := checkNotDeprecated(op); err != nil {
		return err
	}
	if len(title) > MaxTitleLen {
		return fail(op, KindInvalidAmount, "title exceeds max length")
	}
	v, ok := loadVault(vaultID)
	if !ok {
		return fail(op, KindVaultNotFound, "")
	}
	who := caller()
	if who != v.Owner {
		if err := requireAdmin(who, op); err != nil {
			return err
		}
	}
	v.Title = title
	saveVault(v)
	return nil
}

// FreezeVault disables claims against the vault without touching revoke
// eligibility.
func FreezeVault(vaultID uint64) error {
	const op = "freeze_vault"
	if err := checkNotDeprecated(op); err != nil {
		return err
	}
	if err := requireAdmin(caller(), op); err != nil {
		return err
	}
	v, ok := loadVault(vaultID)
	if !ok {
		return fail(op, KindVaultNotFound, "")
	}
	if v.IsFrozen {
		return fail(op, KindVaultFrozen, "already frozen")
	}
	v.IsFrozen = true
	saveVault(v)
	emitVaultFrozen(vaultID, now())
	return nil
}

// UnfreezeVault re-enables claims.
func UnfreezeVault(vaultID uint64) error {
	const op = "unfreeze_vault"
	if err := checkNotDeprecated(op); err != nil {
		return err
	}
	if err := requireAdmin(caller(), op); err != nil {
		return err
	}
	v, ok := loadVault(vaultID)
	if !ok {
		return fail(op, KindVaultNotFound, "")
	}
	if !v.IsFrozen {
		return fail(op, KindVaultFrozen, "not frozen")
	}
	v.IsFrozen = false
	saveVault(v)
	emitVaultUnfrozen(vaultID, now())
	return nil
}

// RevokeTokens reclaims the unreleased remainder of a vault into
// admin_balance. Deliberately does not consult is_frozen — freeze blocks
// claims, not revokes; see the freeze-then-revoke protocol note in
// spec.md §4.D.
func RevokeTokens(vaultID uint64) (Amount, error) {
	const op = "revoke_tokens"
	if err := checkNotDeprecated(op); err != nil {
		return Zero, err
	}
	if err := requireAdmin(caller(), op); err != nil {
		return Zero, err
	}
	v, ok := loadVault(vaultID)
	if !ok {
		return Zero, fail(op, KindVaultNotFound, "")
	}
	return revokeVault(op, v)
}

func revokeVault(op string, v *Vault) (Amount, error) {
	if v.IsIrrevocable {
		return Zero, fail(op, KindVaultIrrevocable, "")
	}
	unreleased, err := v.TotalAmount.Sub(v.ReleasedAmount)
	if err != nil {
		sdk.Abort("released exceeds total for vault " + u64s(v.ID))
	}
	if unreleased.IsZero() {
		return Zero, fail(op, KindNothingToRevoke, "")
	}
	v.ReleasedAmount = v.TotalAmount
	saveVault(v)
	balance, _ := getSingletonAmount(singletonAdminBalance)
	setSingletonAmount(singletonAdminBalance, balance.Add(unreleased))
	appendClaimHistory(v.ID, ClaimEvent{Amount: unreleased, Released: v.TotalAmount, Timestamp: now(), Kind: "revoke"})
	emitTokensRevoked(v.ID, unreleased, now())
	return unreleased, nil
}

// RevokePartial reclaims only amount of a vault's unreleased remainder,
// leaving the vault active and still claimable for whatever stays
// unreleased. Supplemented from the source contract's revoke_partial, which
// folds the revoked amount into released_amount rather than tracking a
// separate revoked bucket — kept here for the same reason: total_amount -
// released_amount remains the single source of truth for "how much is left
// to vest or revoke," so claimableAmount and CheckInvariant need no new
// field to stay correct after a partial revoke.
func RevokePartial(vaultID uint64, amount Amount) (Amount, error) {
	const op = "revoke_partial"
	if err := checkNotDeprecated(op); err != nil {
		return Zero, err
	}
	if err := requireAdmin(caller(), op); err != nil {
		return Zero, err
	}
	v, ok := loadVault(vaultID)
	if !ok {
		return Zero, fail(op, KindVaultNotFound, "")
	}
	if v.IsIrrevocable {
		return Zero, fail(op, KindVaultIrrevocable, "")
	}
	if amount.IsZero() {
		return Zero, fail(op, KindInvalidAmount, "amount must be positive")
	}
	unreleased, err := v.TotalAmount.Sub(v.ReleasedAmount)
	if err != nil {
		sdk.Abort("released exceeds total for vault " + u64s(v.ID))
	}
	if amount.GreaterThan(unreleased) {
		return Zero, fail(op, KindInsufficientFunds, "amount exceeds unreleased balance")
	}
	v.ReleasedAmount = v.ReleasedAmount.Add(amount)
	saveVault(v)
	balance, _ := getSingletonAmount(singletonAdminBalance)
	setSingletonAmount(singletonAdminBalance, balance.Add(amount))
	ts := now()
	appendClaimHistory(vaultID, ClaimEvent{Amount: amount, Released: v.ReleasedAmount, Timestamp: ts, Kind: "revoke"})
	emitTokensRevoked(vaultID, amount, ts)
	return amount, nil
}

// MarkIrrevocable flips a vault from revocable to irrevocable; one-way,
// admin-only. Supplemented from the source contract's mark_irrevocable —
// there is deliberately no inverse, since an irrevocable guarantee that a
// later admin call could undo would not be a guarantee at all.
func MarkIrrevocable(vaultID uint64) error {
	const op = "mark_irrevocable"
	if err := checkNotDeprecated(op); err != nil {
		return err
	}
	if err := requireAdmin(caller(), op); err != nil {
		return err
	}
	v, ok := loadVault(vaultID)
	if !ok {
		return fail(op, KindVaultNotFound, "")
	}
	if v.IsIrrevocable {
		return fail(op, KindVaultIrrevocable, "already irrevocable")
	}
	v.IsIrrevocable = true
	saveVault(v)
	emitVaultMarkedIrrevocable(vaultID, now())
	return nil
}

// IsVaultIrrevocable is a pure query.
func IsVaultIrrevocable(vaultID uint64) (bool, error) {
	v, ok := loadVault(vaultID)
	if !ok {
		return false, fail("is_vault_irrevocable", KindVaultNotFound, "")
	}
	return v.IsIrrevocable, nil
}

// IsVaultFrozen is a pure query.
func IsVaultFrozen(vaultID uint64) (bool, error) {
	v, ok := loadVault(vaultID)
	if !ok {
		return false, fail("is_vault_frozen", KindVaultNotFound, "")
	}
	return v.IsFrozen, nil
}

// ClawbackVault is an admin-only emergency undo available only within
// ClawbackGrace of a vault's creation and only while nothing has been
// claimed yet. Supplemented from the source contract's clawback_vault;
// unlike that source, this respects IsIrrevocable, since spec.md
// invariant 4 makes irrevocability absolute across every revoke-shaped
// operation, not just revoke_tokens by name.
func ClawbackVault(vaultID uint64) error {
	const op = "clawback_vault"
	if err := checkNotDeprecated(op); err != nil {
		return err
	}
	if err := requireAdmin(caller(), op); err != nil {
		return err
	}
	v, ok := loadVault(vaultID)
	if !ok {
		return fail(op, KindVaultNotFound, "")
	}
	if !v.ReleasedAmount.IsZero() {
		return fail(op, KindNothingToRevoke, "vault has already been claimed against")
	}
	if now() > v.CreationTime+ClawbackGrace {
		return fail(op, KindInvalidDuration, "clawback grace period has elapsed")
	}
	_, err := revokeVault(op, v)
	return err
}

// StakeTokens moves amount from the vault's available (unclaimed,
// unstaked) balance into staked_amount, pure bookkeeping with no external
// staking-contract call — settlement of any real stake is out of scope,
// per spec.md's accounting-only boundary.
func StakeTokens(vaultID uint64, amount Amount) error {
	return restakeTokens("stake_tokens", vaultID, amount, true)
}

// UnstakeTokens is the inverse of StakeTokens.
func UnstakeTokens(vaultID uint64, amount Amount) error {
	return restakeTokens("unstake_tokens", vaultID, amount, false)
}

func restakeTokens(op string, vaultID uint64, amount Amount, stake bool) error {
	if err := checkNotDeprecated(op); err != nil {
		return err
	}
	if err := validateAmount(op, amount); err != nil {
		return err
	}
	v, ok := loadVault(vaultID)
	if !ok {
		return fail(op, KindVaultNotFound, "")
	}
	if err := requireDelegateOrOwner(caller(), v, op); err != nil {
		return err
	}
	if stake {
		available, err := availableUnstaked(v)
		if err != nil {
			return fail(op, KindInsufficientFunds, err.Error())
		}
		if amount.GreaterThan(available) {
			return fail(op, KindInsufficientFunds, "amount exceeds available balance")
		}
		v.StakedAmount = v.StakedAmount.Add(amount)
	} else {
		if amount.GreaterThan(v.StakedAmount) {
			return fail(op, KindInsufficientFunds, "amount exceeds staked_amount")
		}
		v.StakedAmount, _ = v.StakedAmount.Sub(amount)
	}
	saveVault(v)
	return nil
}

// availableUnstaked is total_amount - released_amount - staked_amount, the
// balance claim_tokens is allowed to draw against.
func availableUnstaked(v *Vault) (Amount, error) {
	rem, err := v.TotalAmount.Sub(v.ReleasedAmount)
	if err != nil {
		return Zero, err
	}
	return rem.Sub(v.StakedAmount)
}
