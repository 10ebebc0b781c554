package game

import "testing"

// TestDiscardDrawProtocol: the full two-step flow for a hand-selection
// ability. Toggled cards are discarded and replaced on confirm.
func TestDiscardDrawProtocol(t *testing.T) {
	deck := []*Card{JunkCell(), NailDriver(), SalvagePlanner(), BoltOnPlates(), DeflectorCoil(), ArcWelder()}
	c := newTestCombat(t, deck, []*Card{ScrapChassis()})
	planner := install(t, c, SidePlayer, "Salvage Planner")

	must(t, c.ActivateCPU(SidePlayer, planner.ID))
	if c.Pending == nil {
		t.Fatal("no pending ability after activation")
	}

	handBefore := len(c.Player().Hand)
	must(t, c.ToggleCPUDiscard(SidePlayer, c.Player().Hand[0].ID))
	must(t, c.ToggleCPUDiscard(SidePlayer, c.Player().Hand[1].ID))
	must(t, c.ConfirmCPUAbility(SidePlayer))

	if c.Pending != nil {
		t.Error("pending ability not cleared by confirm")
	}
	if len(c.Player().Discard) != 2 {
		t.Errorf("discard pile = %d, want 2", len(c.Player().Discard))
	}
	// Two discarded, one drawn (the deck held a single card).
	if got := len(c.Player().Hand); got != handBefore-1 {
		t.Errorf("hand size = %d, want %d", got, handBefore-1)
	}
	mustCode(t, c.ActivateCPU(SidePlayer, planner.ID), CodeAlreadyActivated)
}

// TestConfirmRequiresCompleteSelection: confirming early fails and leaves
// the pending state and hand untouched.
func TestConfirmRequiresCompleteSelection(t *testing.T) {
	c := newTestCombat(t, []*Card{SalvagePlanner(), NailDriver()}, []*Card{ScrapChassis()})
	planner := install(t, c, SidePlayer, "Salvage Planner")

	must(t, c.ActivateCPU(SidePlayer, planner.ID))
	must(t, c.ToggleCPUDiscard(SidePlayer, c.Player().Hand[0].ID))
	mustCode(t, c.ConfirmCPUAbility(SidePlayer), CodeSelectionIncomplete)

	if c.Pending == nil {
		t.Error("failed confirm cleared the pending ability")
	}
	if planner.Activations != 0 {
		t.Error("failed confirm consumed the activation")
	}
	if len(c.Player().Discard) != 0 {
		t.Error("failed confirm discarded cards")
	}
}

// TestCancelLeavesStateUnchanged: cancel clears the sub-state with no
// effect, and the CPU may be activated again.
func TestCancelLeavesStateUnchanged(t *testing.T) {
	c := newTestCombat(t, []*Card{SalvagePlanner(), NailDriver()}, []*Card{ScrapChassis()})
	planner := install(t, c, SidePlayer, "Salvage Planner")

	must(t, c.ActivateCPU(SidePlayer, planner.ID))
	must(t, c.ToggleCPUDiscard(SidePlayer, c.Player().Hand[0].ID))
	must(t, c.CancelCPUAbility(SidePlayer))

	if c.Pending != nil {
		t.Fatal("pending ability survived cancel")
	}
	if planner.Activations != 0 || len(c.Player().Discard) != 0 {
		t.Error("cancel changed combat state")
	}
	must(t, c.ActivateCPU(SidePlayer, planner.ID))
}

// TestReflexBlockTargeting: the target must be an armor component; confirm
// grants its shield bonus without dice.
func TestReflexBlockTargeting(t *testing.T) {
	c := newTestCombat(t, []*Card{ReflexCore(), DeflectorCoil(), JunkCell()}, []*Card{ScrapChassis()})
	core := install(t, c, SidePlayer, "Reflex Core")
	coil := install(t, c, SidePlayer, "Deflector Coil")
	cell := install(t, c, SidePlayer, "Junk Cell")

	must(t, c.ActivateCPU(SidePlayer, core.ID))
	mustCode(t, c.SelectCPUTarget(SidePlayer, cell.ID), CodeInvalidTarget)
	must(t, c.SelectCPUTarget(SidePlayer, coil.ID))
	must(t, c.ConfirmCPUAbility(SidePlayer))

	if c.Player().Shield != 2 {
		t.Errorf("shield = %d, want 2", c.Player().Shield)
	}
}

// TestSiphonPowerRecharges: a drained battery regains a charge, capped at
// its maximum.
func TestSiphonPowerRecharges(t *testing.T) {
	c := newTestCombat(t, []*Card{SiphonMatrix(), JunkCell()}, []*Card{ScrapChassis()})
	matrix := install(t, c, SidePlayer, "Siphon Matrix")
	cell := install(t, c, SidePlayer, "Junk Cell")

	must(t, c.ActivateCPU(SidePlayer, matrix.ID))
	// Fully charged batteries are not valid siphon targets.
	mustCode(t, c.SelectCPUTarget(SidePlayer, cell.ID), CodeInvalidTarget)
	must(t, c.CancelCPUAbility(SidePlayer))

	must(t, c.ActivateBattery(SidePlayer, cell.ID))
	must(t, c.ActivateCPU(SidePlayer, matrix.ID))
	must(t, c.SelectCPUTarget(SidePlayer, cell.ID))
	must(t, c.ConfirmCPUAbility(SidePlayer))
	if cell.Charges != 2 {
		t.Errorf("charges = %d, want 2", cell.Charges)
	}
}

// TestExtraActivationRefires: a spent weapon may go again, and fires
// immediately if it is already loaded.
func TestExtraActivationRefires(t *testing.T) {
	c := newTestCombat(t, []*Card{OverclockDaemon(), NailDriver()}, []*Card{ScrapChassis()})
	daemon := install(t, c, SidePlayer, "Overclock Daemon")
	driver := install(t, c, SidePlayer, "Nail Driver")

	// An unfired weapon is not a valid target.
	must(t, c.ActivateCPU(SidePlayer, daemon.ID))
	mustCode(t, c.SelectCPUTarget(SidePlayer, driver.ID), CodeInvalidTarget)
	must(t, c.CancelCPUAbility(SidePlayer))

	givePool(c.Player(), 4)
	must(t, c.AllocateDie(SidePlayer, 0, driver.ID, 0))
	hpAfterFirst := findInstalled(t, c.Enemy(), "Scrap Chassis").HP

	// Reloading is allowed, but the die sits idle: the activation is spent.
	givePool(c.Player(), 5)
	must(t, c.AllocateDie(SidePlayer, 0, driver.ID, 0))
	if hp := findInstalled(t, c.Enemy(), "Scrap Chassis").HP; hp != hpAfterFirst {
		t.Fatalf("spent weapon fired on reload: %d -> %d", hpAfterFirst, hp)
	}

	// The daemon resets the allowance; the fully-slotted weapon fires at once.
	must(t, c.ActivateCPU(SidePlayer, daemon.ID))
	must(t, c.SelectCPUTarget(SidePlayer, driver.ID))
	must(t, c.ConfirmCPUAbility(SidePlayer))

	hpAfterSecond := findInstalled(t, c.Enemy(), "Scrap Chassis").HP
	if hpAfterSecond >= hpAfterFirst {
		t.Errorf("second shot dealt nothing: %d -> %d", hpAfterFirst, hpAfterSecond)
	}
}

// TestTargetLockBypass: a locked weapon's next hit ignores both defense
// pools.
func TestTargetLockBypass(t *testing.T) {
	c := newTestCombat(t, []*Card{LockOnModule(), NailDriver()}, []*Card{ScrapChassis()})
	lock := install(t, c, SidePlayer, "Lock-On Module")
	driver := install(t, c, SidePlayer, "Nail Driver")
	c.Enemy().Shield = 20

	must(t, c.ActivateCPU(SidePlayer, lock.ID))
	must(t, c.SelectCPUTarget(SidePlayer, driver.ID))
	must(t, c.ConfirmCPUAbility(SidePlayer))
	if !driver.TargetLocked {
		t.Fatal("weapon not locked")
	}

	givePool(c.Player(), 4)
	must(t, c.AllocateDie(SidePlayer, 0, driver.ID, 0))
	if !c.LastAttack.Bypassed || c.LastAttack.Dealt != 5 {
		t.Errorf("attack = %+v, want bypassed dealt 5", c.LastAttack)
	}
	if c.Enemy().Shield != 20 || c.Enemy().Plating != 2 {
		t.Error("locked hit depleted a defense pool")
	}
}

// TestTargetLockConsumedOnResolution: the lock covers exactly one shot. A
// refire of the same weapon pays the defense pools again.
func TestTargetLockConsumedOnResolution(t *testing.T) {
	c := newTestCombat(t, []*Card{LockOnModule(), OverclockDaemon(), NailDriver()}, []*Card{ScrapChassis()})
	lock := install(t, c, SidePlayer, "Lock-On Module")
	daemon := install(t, c, SidePlayer, "Overclock Daemon")
	driver := install(t, c, SidePlayer, "Nail Driver")
	c.Enemy().Shield = 50
	c.Enemy().Plating = 50

	must(t, c.ActivateCPU(SidePlayer, lock.ID))
	must(t, c.SelectCPUTarget(SidePlayer, driver.ID))
	must(t, c.ConfirmCPUAbility(SidePlayer))

	givePool(c.Player(), 4)
	must(t, c.AllocateDie(SidePlayer, 0, driver.ID, 0))
	if !c.LastAttack.Bypassed {
		t.Fatal("locked shot did not bypass the defense pools")
	}
	if driver.TargetLocked {
		t.Error("lock survived the shot")
	}

	givePool(c.Player(), 5)
	must(t, c.AllocateDie(SidePlayer, 0, driver.ID, 0))
	must(t, c.ActivateCPU(SidePlayer, daemon.ID))
	must(t, c.SelectCPUTarget(SidePlayer, driver.ID))
	must(t, c.ConfirmCPUAbility(SidePlayer))

	if c.LastAttack.Bypassed {
		t.Error("second shot still bypassed the defense pools")
	}
	if c.LastAttack.Dealt != 0 || c.Enemy().Plating != 44 {
		t.Errorf("second shot absorbed %d with plating %d, want 6 absorbed into 44 plating",
			c.LastAttack.Absorbed, c.Enemy().Plating)
	}
}

// TestOnlyOnePendingAbility: a second CPU cannot open its protocol while
// another selection is pending.
func TestOnlyOnePendingAbility(t *testing.T) {
	c := newTestCombat(t, []*Card{ReflexCore(), LockOnModule()}, []*Card{ScrapChassis()})
	core := install(t, c, SidePlayer, "Reflex Core")
	lock := install(t, c, SidePlayer, "Lock-On Module")

	must(t, c.ActivateCPU(SidePlayer, core.ID))
	mustCode(t, c.ActivateCPU(SidePlayer, lock.ID), CodeInvalidTarget)
}

// TestDamagedCPUMalfunctions: a damaged CPU rolls for malfunction once per
// confirm. A malfunction consumes the activation and applies no effect.
func TestDamagedCPUMalfunctions(t *testing.T) {
	c := newTestCombat(t, []*Card{ReflexCore(), DeflectorCoil()}, []*Card{ScrapChassis()})
	core := install(t, c, SidePlayer, "Reflex Core")
	coil := install(t, c, SidePlayer, "Deflector Coil")

	core.takeDamage(3)
	if core.State != StateDamaged {
		t.Fatalf("core state = %s, want damaged", core.State)
	}

	sawMalfunction := false
	sawEffect := false
	for i := 0; i < 40 && !(sawMalfunction && sawEffect); i++ {
		shieldBefore := c.Player().Shield
		must(t, c.ActivateCPU(SidePlayer, core.ID))
		must(t, c.SelectCPUTarget(SidePlayer, coil.ID))
		must(t, c.ConfirmCPUAbility(SidePlayer))

		if core.Activations != 1 {
			t.Fatal("confirm did not consume the activation")
		}
		if c.Player().Shield == shieldBefore {
			sawMalfunction = true
			if core.LastResult != "malfunctioned" {
				t.Errorf("no-effect confirm reported %q", core.LastResult)
			}
		} else {
			sawEffect = true
			if c.Player().Shield != shieldBefore+2 {
				t.Errorf("shield %d -> %d, want +2", shieldBefore, c.Player().Shield)
			}
		}
		core.Activations = 0
	}

	if !sawMalfunction {
		t.Error("damaged CPU never malfunctioned across 40 activations")
	}
	if !sawEffect {
		t.Error("damaged CPU never resolved across 40 activations")
	}
}
