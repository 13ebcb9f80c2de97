////////////////////////////////////////////////////////////////////////////////
// vesting-engine: accounting-only vesting and grant contract
////////////////////////////////////////////////////////////////////////////////

package main

import (
	"encoding/json"

	"vesting-engine/sdk"
	"vesting-engine/vesting"
)

// main is left empty on purpose; every real entry point is a
// go:wasmexport function below.
func main() {}

func decode[T any](payload *string) T {
	var v T
	if payload == nil || *payload == "" {
		return v
	}
	if err := json.Unmarshal([]byte(*payload), &v); err != nil {
		sdk.Abort("malformed payload: " + err.Error())
	}
	return v
}

func respond(v any) *string {
	b, err := json.Marshal(v)
	if err != nil {
		sdk.Abort("encode response: " + err.Error())
	}
	s := string(b)
	return &s
}

func abortOn(op string, err error) {
	if err != nil {
		sdk.Abort(op + ": " + err.Error())
	}
}

func amount(v string) vesting.Amount {
	var a vesting.Amount
	if err := json.Unmarshal([]byte(`"`+v+`"`), &a); err != nil {
		sdk.Abort("malformed amount: " + err.Error())
	}
	return a
}

// -----------------------------------------------------------------------------
// Admin lifecycle
// -----------------------------------------------------------------------------

type initializeReq struct {
	Admin        sdk.Address `json:"admin"`
	InitialSupply string     `json:"initial_supply"`
}

//go:wasmexport initialize
func Initialize(payload *string) *string {
	req := decode[initializeReq](payload)
	err := vesting.Initialize(req.Admin, amount(req.InitialSupply))
	abortOn("initialize", err)
	return respond(map[string]bool{"ok": true})
}

type proposeAdminReq struct {
	Candidate sdk.Address `json:"candidate"`
}

//go:wasmexport propose_new_admin
func ProposeNewAdmin(payload *string) *string {
	req := decode[proposeAdminReq](payload)
	abortOn("propose_new_admin", vesting.ProposeNewAdmin(req.Candidate))
	return respond(map[string]bool{"ok": true})
}

//go:wasmexport accept_ownership
func AcceptOwnership(_ *string) *string {
	abortOn("accept_ownership", vesting.AcceptOwnership())
	return respond(map[string]bool{"ok": true})
}

//go:wasmexport pause
func PauseContract(_ *string) *string {
	abortOn("pause", vesting.Pause())
	return respond(map[string]bool{"ok": true})
}

//go:wasmexport unpause
func UnpauseContract(_ *string) *string {
	abortOn("unpause", vesting.Unpause())
	return respond(map[string]bool{"ok": true})
}

type migrateReq struct {
	Successor sdk.Address `json:"successor"`
}

//go:wasmexport migrate_liquidity
func MigrateLiquidity(payload *string) *string {
	req := decode[migrateReq](payload)
	abortOn("migrate_liquidity", vesting.MigrateLiquidity(req.Successor))
	return respond(map[string]bool{"ok": true})
}

// -----------------------------------------------------------------------------
// Vault creation & lifecycle
// -----------------------------------------------------------------------------

type createVaultReq struct {
	Owner        sdk.Address `json:"owner"`
	Amount       string      `json:"amount"`
	Start        uint64      `json:"start"`
	End          uint64      `json:"end"`
	Curve        uint8       `json:"curve"`
	Irrevocable  bool        `json:"irrevocable"`
	Transferable bool        `json:"transferable"`
}

func (r createVaultReq) toRequest() vesting.CreateVaultRequest {
	return vesting.CreateVaultRequest{
		Owner:        r.Owner,
		Amount:       amount(r.Amount),
		Start:        r.Start,
		End:          r.End,
		Curve:        vesting.Curve(r.Curve),
		Irrevocable:  r.Irrevocable,
		Transferable: r.Transferable,
	}
}

//go:wasmexport create_vault_full
func CreateVaultFull(payload *string) *string {
	req := decode[createVaultReq](payload)
	id, err := vesting.CreateVaultFull(req.toRequest())
	abortOn("create_vault_full", err)
	return respond(map[string]uint64{"vault_id": id})
}

//go:wasmexport create_vault_lazy
func CreateVaultLazy(payload *string) *string {
	req := decode[createVaultReq](payload)
	id, err := vesting.CreateVaultLazy(req.toRequest())
	abortOn("create_vault_lazy", err)
	return respond(map[string]uint64{"vault_id": id})
}

//go:wasmexport batch_create_vaults_full
func BatchCreateVaultsFull(payload *string) *string {
	reqs := decode[[]createVaultReq](payload)
	out := make([]vesting.CreateVaultRequest, len(reqs))
	for i, r := range reqs {
		out[i] = r.toRequest()
	}
	ids, err := vesting.BatchCreateVaultsFull(out)
	abortOn("batch_create_vaults_full", err)
	return respond(map[string][]uint64{"vault_ids": ids})
}

//go:wasmexport batch_create_vaults_lazy
func BatchCreateVaultsLazy(payload *string) *string {
	reqs := decode[[]createVaultReq](payload)
	out := make([]vesting.CreateVaultRequest, len(reqs))
	for i, r := range reqs {
		out[i] = r.toRequest()
	}
	ids, err := vesting.BatchCreateVaultsLazy(out)
	abortOn("batch_create_vaults_lazy", err)
	return respond(map[string][]uint64{"vault_ids": ids})
}

type vaultIDReq struct {
	VaultID uint64 `json:"vault_id"`
}

//go:wasmexport initialize_vault_metadata
func InitializeVaultMetadata(payload *string) *string {
	req := decode[vaultIDReq](payload)
	promoted, err := vesting.InitializeVaultMetadata(req.VaultID)
	abortOn("initialize_vault_metadata", err)
	return respond(map[string]bool{"promoted": promoted})
}

type transferBeneficiaryReq struct {
	VaultID  uint64      `json:"vault_id"`
	NewOwner sdk.Address `json:"new_owner"`
}

//go:wasmexport transfer_beneficiary
func TransferBeneficiary(payload *string) *string {
	req := decode[transferBeneficiaryReq](payload)
	abortOn("transfer_beneficiary", vesting.TransferBeneficiary(req.VaultID, req.NewOwner))
	return respond(map[string]bool{"ok": true})
}

//go:wasmexport transfer_vault
func TransferVault(payload *string) *string {
	req := decode[transferBeneficiaryReq](payload)
	abortOn("transfer_vault", vesting.TransferVault(req.VaultID, req.NewOwner))
	return respond(map[string]bool{"ok": true})
}

type setDelegateReq struct {
	VaultID  uint64       `json:"vault_id"`
	Delegate *sdk.Address `json:"delegate,omitempty"`
}

//go:wasmexport set_delegate
func SetDelegate(payload *string) *string {
	req := decode[setDelegateReq](payload)
	abortOn("set_delegate", vesting.SetDelegate(req.VaultID, req.Delegate))
	return respond(map[string]bool{"ok": true})
}

type setVaultTitleReq struct {
	VaultID uint64 `json:"vault_id"`
	Title   string `json:"title"`
}

//go:wasmexport set_vault_title
func SetVaultTitle(payload *string) *string {
	req := decode[setVaultTitleReq](payload)
	abortOn("set_vault_title", vesting.SetVaultTitle(req.VaultID, req.Title))
	return respond(map[string]bool{"ok": true})
}

//go:wasmexport freeze_vault
func FreezeVault(payload *string) *string {
	req := decode[vaultIDReq](payload)
	abortOn("freeze_vault", vesting.FreezeVault(req.VaultID))
	return respond(map[string]bool{"ok": true})
}

//go:wasmexport unfreeze_vault
func UnfreezeVault(payload *string) *string {
	req := decode[vaultIDReq](payload)
	abortOn("unfreeze_vault", vesting.UnfreezeVault(req.VaultID))
	return respond(map[string]bool{"ok": true})
}

//go:wasmexport revoke_tokens
func RevokeTokens(payload *string) *string {
	req := decode[vaultIDReq](payload)
	amt, err := vesting.RevokeTokens(req.VaultID)
	abortOn("revoke_tokens", err)
	return respond(map[string]string{"amount": amt.String()})
}

//go:wasmexport clawback_vault
func ClawbackVault(payload *string) *string {
	req := decode[vaultIDReq](payload)
	abortOn("clawback_vault", vesting.ClawbackVault(req.VaultID))
	return respond(map[string]bool{"ok": true})
}

type revokePartialReq struct {
	VaultID uint64 `json:"vault_id"`
	Amount  string `json:"amount"`
}

//go:wasmexport revoke_partial
func RevokePartial(payload *string) *string {
	req := decode[revokePartialReq](payload)
	amt, err := vesting.RevokePartial(req.VaultID, amount(req.Amount))
	abortOn("revoke_partial", err)
	return respond(map[string]string{"amount": amt.String()})
}

//go:wasmexport mark_irrevocable
func MarkIrrevocable(payload *string) *string {
	req := decode[vaultIDReq](payload)
	abortOn("mark_irrevocable", vesting.MarkIrrevocable(req.VaultID))
	return respond(map[string]bool{"ok": true})
}

//go:wasmexport is_vault_irrevocable
func IsVaultIrrevocable(payload *string) *string {
	req := decode[vaultIDReq](payload)
	irrevocable, err := vesting.IsVaultIrrevocable(req.VaultID)
	abortOn("is_vault_irrevocable", err)
	return respond(map[string]bool{"irrevocable": irrevocable})
}

//go:wasmexport is_vault_frozen
func IsVaultFrozen(payload *string) *string {
	req := decode[vaultIDReq](payload)
	frozen, err := vesting.IsVaultFrozen(req.VaultID)
	abortOn("is_vault_frozen", err)
	return respond(map[string]bool{"frozen": frozen})
}

type batchRevokeReq struct {
	VaultIDs []uint64 `json:"vault_ids"`
}

//go:wasmexport batch_revoke
func BatchRevoke(payload *string) *string {
	req := decode[batchRevokeReq](payload)
	amt, err := vesting.BatchRevoke(req.VaultIDs)
	abortOn("batch_revoke", err)
	return respond(map[string]string{"amount": amt.String()})
}

// -----------------------------------------------------------------------------
// Claims
// -----------------------------------------------------------------------------

type claimReq struct {
	VaultID uint64 `json:"vault_id"`
	Amount  string `json:"amount"`
}

//go:wasmexport claim_tokens
func ClaimTokens(payload *string) *string {
	req := decode[claimReq](payload)
	amt, err := vesting.ClaimTokens(req.VaultID, amount(req.Amount))
	abortOn("claim_tokens", err)
	return respond(map[string]string{"amount": amt.String()})
}

//go:wasmexport claim_as_delegate
func ClaimAsDelegate(payload *string) *string {
	req := decode[claimReq](payload)
	amt, err := vesting.ClaimAsDelegate(req.VaultID, amount(req.Amount))
	abortOn("claim_as_delegate", err)
	return respond(map[string]string{"amount": amt.String()})
}

type autoClaimReq struct {
	VaultID uint64      `json:"vault_id"`
	Keeper  sdk.Address `json:"keeper"`
}

//go:wasmexport auto_claim
func AutoClaim(payload *string) *string {
	req := decode[autoClaimReq](payload)
	amt, err := vesting.AutoClaim(req.VaultID, req.Keeper)
	abortOn("auto_claim", err)
	return respond(map[string]string{"amount": amt.String()})
}

// -----------------------------------------------------------------------------
// Milestones
// -----------------------------------------------------------------------------

type setMilestonesReq struct {
	VaultID    uint64               `json:"vault_id"`
	Milestones []vesting.Milestone `json:"milestones"`
}

//go:wasmexport set_milestones
func SetMilestones(payload *string) *string {
	req := decode[setMilestonesReq](payload)
	abortOn("set_milestones", vesting.SetMilestones(req.VaultID, req.Milestones))
	return respond(map[string]bool{"ok": true})
}

type unlockMilestoneReq struct {
	VaultID     uint64 `json:"vault_id"`
	MilestoneID uint8  `json:"milestone_id"`
}

//go:wasmexport unlock_milestone
func UnlockMilestone(payload *string) *string {
	req := decode[unlockMilestoneReq](payload)
	abortOn("unlock_milestone", vesting.UnlockMilestone(req.VaultID, req.MilestoneID))
	return respond(map[string]bool{"ok": true})
}

//go:wasmexport get_milestones
func GetMilestones(payload *string) *string {
	req := decode[vaultIDReq](payload)
	ms, err := vesting.GetMilestones(req.VaultID)
	abortOn("get_milestones", err)
	return respond(ms)
}

// -----------------------------------------------------------------------------
// Staking bookkeeping
// -----------------------------------------------------------------------------

type stakeReq struct {
	VaultID uint64 `json:"vault_id"`
	Amount  string `json:"amount"`
}

//go:wasmexport stake_tokens
func StakeTokens(payload *string) *string {
	req := decode[stakeReq](payload)
	abortOn("stake_tokens", vesting.StakeTokens(req.VaultID, amount(req.Amount)))
	return respond(map[string]bool{"ok": true})
}

//go:wasmexport unstake_tokens
func UnstakeTokens(payload *string) *string {
	req := decode[stakeReq](payload)
	abortOn("unstake_tokens", vesting.UnstakeTokens(req.VaultID, amount(req.Amount)))
	return respond(map[string]bool{"ok": true})
}

// -----------------------------------------------------------------------------
// Queries
// -----------------------------------------------------------------------------

//go:wasmexport get_admin
func GetAdmin(_ *string) *string {
	admin, ok := vesting.GetAdmin()
	return respond(map[string]any{"admin": admin, "set": ok})
}

//go:wasmexport get_proposed_admin
func GetProposedAdmin(_ *string) *string {
	admin, ok := vesting.GetProposedAdmin()
	return respond(map[string]any{"proposed_admin": admin, "set": ok})
}

//go:wasmexport get_vault
func GetVault(payload *string) *string {
	req := decode[vaultIDReq](payload)
	v, err := vesting.GetVault(req.VaultID)
	abortOn("get_vault", err)
	return respond(v)
}

type userReq struct {
	Address sdk.Address `json:"address"`
}

//go:wasmexport get_user_vaults
func GetUserVaults(payload *string) *string {
	req := decode[userReq](payload)
	return respond(map[string][]uint64{"vault_ids": vesting.GetUserVaults(req.Address)})
}

//go:wasmexport get_claim_history
func GetClaimHistory(payload *string) *string {
	req := decode[vaultIDReq](payload)
	return respond(vesting.GetClaimHistory(req.VaultID))
}

//go:wasmexport get_contract_state
func GetContractState(_ *string) *string {
	state := vesting.GetContractState()
	return respond(map[string]string{
		"total_locked":  state.TotalLocked.String(),
		"total_claimed": state.TotalClaimed.String(),
		"admin_balance": state.AdminBalance.String(),
	})
}

//go:wasmexport check_invariant
func CheckInvariant(_ *string) *string {
	return respond(map[string]bool{"ok": vesting.CheckInvariant()})
}

//go:wasmexport is_deprecated
func IsDeprecated(_ *string) *string {
	return respond(map[string]bool{"deprecated": vesting.IsDeprecated()})
}

//go:wasmexport get_migration_target
func GetMigrationTarget(_ *string) *string {
	target, ok := vesting.GetMigrationTarget()
	return respond(map[string]any{"migration_target": target, "set": ok})
}

// -----------------------------------------------------------------------------
// Grant-contract variant
// -----------------------------------------------------------------------------

type initializeGrantReq struct {
	Recipient       sdk.Address `json:"recipient"`
	TotalAmount     string      `json:"total_amount"`
	DurationSeconds uint64      `json:"duration_seconds"`
}

//go:wasmexport initialize_grant
func InitializeGrant(payload *string) *string {
	req := decode[initializeGrantReq](payload)
	end, err := vesting.InitializeGrant(req.Recipient, amount(req.TotalAmount), req.DurationSeconds)
	abortOn("initialize_grant", err)
	return respond(map[string]uint64{"end_time": end})
}

type grantClaimReq struct {
	Recipient sdk.Address `json:"recipient"`
}

//go:wasmexport claim
func GrantClaim(payload *string) *string {
	req := decode[grantClaimReq](payload)
	amt, err := vesting.Claim(req.Recipient)
	abortOn("claim", err)
	return respond(map[string]string{"amount": amt.String()})
}

//go:wasmexport claimable_balance
func ClaimableBalance(_ *string) *string {
	amt, err := vesting.ClaimableBalance()
	abortOn("claimable_balance", err)
	return respond(map[string]string{"claimable": amt.String()})
}

//go:wasmexport get_grant_info
func GetGrantInfo(_ *string) *string {
	info, err := vesting.GetGrantInfo()
	abortOn("get_grant_info", err)
	return respond(map[string]any{
		"total_amount": info.TotalAmount.String(),
		"start_time":   info.StartTime,
		"end_time":     info.EndTime,
		"claimed":      info.Claimed.String(),
	})
}
