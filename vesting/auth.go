package vesting

import "vesting-engine/sdk"

// -----------------------------------------------------------------------------
// Component C — authorization. Every check here consults the caller
// identity the host attached to the current invocation; none of them ever
// look at the contract's own address. vesting never substitutes one for
// the other.
// -----------------------------------------------------------------------------

func requireAdmin(caller sdk.Address, op string) error {
	admin, ok := getSingletonAddress(singletonAdminAddress)
	if !ok {
		return fail(op, KindUnauthorized, "admin not set")
	}
	if caller != admin {
		return fail(op, KindUnauthorized, "caller is not admin")
	}
	return nil
}

func requireOwner(caller sdk.Address, v *Vault, op string) error {
	if caller != v.Owner {
		return fail(op, KindUnauthorized, "caller is not vault owner")
	}
	return nil
}

func requireDelegateOrOwner(caller sdk.Address, v *Vault, op string) error {
	if caller == v.Owner {
		return nil
	}
	if v.Delegate != nil && caller == *v.Delegate {
		return nil
	}
	return fail(op, KindUnauthorized, "caller is neither owner nor delegate")
}

func requireProposedAdmin(caller sdk.Address, op string) error {
	proposed, ok := getSingletonAddress(singletonProposedAdmin)
	if !ok {
		return fail(op, KindUnauthorized, "no admin proposal pending")
	}
	if caller != proposed {
		return fail(op, KindUnauthorized, "caller is not the proposed admin")
	}
	return nil
}

// checkNotDeprecated gates every mutating operation except
// migrate_liquidity itself and pure queries.
func checkNotDeprecated(op string) error {
	if getSingletonBool(singletonIsDeprecated) {
		return fail(op, KindDeprecated, "contract has migrated to a successor")
	}
	return nil
}

func checkAdminInitialized(op string) error {
	if _, ok := getSingletonAddress(singletonAdminAddress); !ok {
		return fail(op, KindNotInitialized, "initialize has not been called")
	}
	return nil
}
