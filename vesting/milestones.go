package vesting

// SetMilestones replaces a vault's milestone list wholesale; admin-only.
// Validates weight bounds, duplicate ids, and that weights sum to at most
// 100 (not exactly 100, since a partially-specified milestone plan that
// tops out below full release is legitimate — the remainder simply never
// vests through the milestone path).
func SetMilestones(vaultID uint64, milestones []Milestone) error {
	const op = "set_milestones"
	if err := checkNotDeprecated(op); err != nil {
		return err
	}
	if err := requireAdmin(caller(), op); err != nil {
		return err
	}
	if len(milestones) > MaxMilestones {
		return fail(op, KindInvalidAmount, "too many milestones")
	}
	seen := map[uint8]bool{}
	var sum uint16
	for _, m := range milestones {
		if m.Weight == 0 || m.Weight > 100 {
			return fail(op, KindInvalidAmount, "milestone weight must be in [1,100]")
		}
		if seen[m.ID] {
			return fail(op, KindInvalidAmount, "duplicate milestone id")
		}
		seen[m.ID] = true
		sum += uint16(m.Weight)
	}
	if sum > 100 {
		return fail(op, KindInvalidAmount, "milestone weights exceed 100")
	}
	v, ok := loadVault(vaultID)
	if !ok {
		return fail(op, KindVaultNotFound, "")
	}
	v.Milestones = milestones
	saveVault(v)
	return nil
}

// UnlockMilestone marks one milestone unlocked; admin-only, idempotent
// barrier — re-unlocking the same id fails rather than silently no-op'ing,
// so callers notice a double-trigger bug instead of masking it.
func UnlockMilestone(vaultID uint64, milestoneID uint8) error {
	const op = "unlock_milestone"
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
	for i := range v.Milestones {
		if v.Milestones[i].ID == milestoneID {
			if v.Milestones[i].Unlocked {
				return fail(op, KindInvalidAmount, "milestone already unlocked")
			}
			v.Milestones[i].Unlocked = true
			saveVault(v)
			return nil
		}
	}
	return fail(op, KindInvalidAmount, "unknown milestone id")
}

// GetMilestones is a pure query.
func GetMilestones(vaultID uint64) ([]Milestone, error) {
	v, ok := loadVault(vaultID)
	if !ok {
		return nil, fail("get_milestones", KindVaultNotFound, "")
	}
	return v.Milestones, nil
}

func unlockedWeightSum(milestones []Milestone) uint8 {
	var sum uint16
	for _, m := range milestones {
		if m.Unlocked {
			sum += uint16(m.Weight)
		}
	}
	if sum > 100 {
		sum = 100
	}
	return uint8(sum)
}
