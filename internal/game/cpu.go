package game

import (
	"fmt"

	"github.com/eternaldensity/scrapduel/internal/log"
)

// PendingAbility is the CPU targeting sub-state: an ability has been selected
// and is waiting for its targets and a confirm (or cancel). Nothing in shared
// state changes until confirm.
type PendingAbility struct {
	Side    Side
	Card    *CardInstance
	Ability CPUAbility

	HandSelection   []int // instance IDs toggled for discard
	InstalledTarget int   // instance ID, 0 when none selected yet
}

func (p *PendingAbility) handSelected(id int) bool {
	for _, sel := range p.HandSelection {
		if sel == id {
			return true
		}
	}
	return false
}

// ActivateCPU selects a CPU card's special ability, entering the two-step
// targeting protocol.
func (c *Combat) ActivateCPU(side Side, cardID int) error {
	r, err := c.actingRobot(side)
	if err != nil {
		return err
	}
	card := r.InstalledByID(cardID)
	if card == nil {
		return notFoundErr(CodeCardNotFound, "no installed card %d", cardID)
	}
	if card.Card.CPU == nil {
		return validationErr(CodeInvalidTarget, "%s is not a CPU", card.Card.Name)
	}
	if card.Destroyed() {
		return validationErr(CodeCardDestroyed, "%s is destroyed", card.Card.Name)
	}
	if !card.CanActivate() {
		return validationErr(CodeAlreadyActivated, "%s already activated this turn", card.Card.Name)
	}
	if c.Pending != nil {
		return validationErr(CodeInvalidTarget, "another ability is already pending")
	}

	c.Pending = &PendingAbility{Side: side, Card: card, Ability: card.Card.CPU.Ability}
	c.log(log.NewAbilitySelectedEvent(c.Turn, c.Phase.String(), int(side), card.Card.Name, card.Card.CPU.Ability.Kind.String()))
	return nil
}

// ToggleCPUDiscard toggles a hand card in or out of the pending discard
// selection.
func (c *Combat) ToggleCPUDiscard(side Side, cardID int) error {
	r, err := c.actingRobot(side)
	if err != nil {
		return err
	}
	p := c.Pending
	if p == nil || p.Side != side {
		return validationErr(CodeNoPendingAbility, "no ability is pending")
	}
	if p.Ability.SelectionMode() != SelectHandCards {
		return validationErr(CodeInvalidTarget, "%s does not discard hand cards", p.Ability.Kind)
	}
	card := r.HandByID(cardID)
	if card == nil {
		return notFoundErr(CodeCardNotFound, "no hand card %d", cardID)
	}

	if p.handSelected(cardID) {
		for i, sel := range p.HandSelection {
			if sel == cardID {
				p.HandSelection = append(p.HandSelection[:i], p.HandSelection[i+1:]...)
				break
			}
		}
	} else {
		p.HandSelection = append(p.HandSelection, cardID)
	}
	return nil
}

// SelectCPUTarget picks the single installed card a targeted ability acts on.
func (c *Combat) SelectCPUTarget(side Side, cardID int) error {
	r, err := c.actingRobot(side)
	if err != nil {
		return err
	}
	p := c.Pending
	if p == nil || p.Side != side {
		return validationErr(CodeNoPendingAbility, "no ability is pending")
	}
	if p.Ability.SelectionMode() != SelectInstalledCard {
		return validationErr(CodeInvalidTarget, "%s does not target installed cards", p.Ability.Kind)
	}
	card := r.InstalledByID(cardID)
	if card == nil {
		return notFoundErr(CodeCardNotFound, "no installed card %d", cardID)
	}
	if card.Destroyed() {
		return validationErr(CodeCardDestroyed, "%s is destroyed", card.Card.Name)
	}
	if err := abilityTargetOK(p.Ability, card); err != nil {
		return err
	}

	p.InstalledTarget = cardID
	return nil
}

// abilityTargetOK enforces per-ability target compatibility.
func abilityTargetOK(a CPUAbility, card *CardInstance) error {
	switch a.Kind {
	case AbilityReflexBlock:
		if card.Card.Armor == nil {
			return validationErr(CodeInvalidTarget, "reflex block needs an armor component")
		}
	case AbilitySiphonPower:
		if card.Card.Battery == nil {
			return validationErr(CodeInvalidTarget, "siphon power needs a battery")
		}
		if card.Charges >= card.Card.Battery.MaxActivations {
			return validationErr(CodeInvalidTarget, "%s is fully charged", card.Card.Name)
		}
	case AbilityExtraActivation:
		switch card.Card.Category {
		case CategoryWeapon, CategoryArmor, CategoryUtility:
		default:
			return validationErr(CodeInvalidTarget, "extra activation needs a weapon, armor, or utility")
		}
		if card.Activations == 0 {
			return validationErr(CodeInvalidTarget, "%s has not activated yet", card.Card.Name)
		}
	case AbilityTargetLock:
		if card.Card.Weapon == nil {
			return validationErr(CodeInvalidTarget, "target lock needs a weapon")
		}
	}
	return nil
}

// ConfirmCPUAbility applies the pending ability. A damaged CPU has a 1-in-3
// chance to silently malfunction, consuming the activation with no effect;
// the malfunction roll happens once per activation.
func (c *Combat) ConfirmCPUAbility(side Side) error {
	r, err := c.actingRobot(side)
	if err != nil {
		return err
	}
	p := c.Pending
	if p == nil || p.Side != side {
		return validationErr(CodeNoPendingAbility, "no ability is pending")
	}

	var target *CardInstance
	switch p.Ability.SelectionMode() {
	case SelectHandCards:
		if len(p.HandSelection) != p.Ability.DiscardCount {
			return validationErr(CodeSelectionIncomplete, "select exactly %d card(s) to discard (have %d)",
				p.Ability.DiscardCount, len(p.HandSelection))
		}
	case SelectInstalledCard:
		if p.InstalledTarget == 0 {
			return validationErr(CodeSelectionIncomplete, "select a target card first")
		}
		target = r.InstalledByID(p.InstalledTarget)
		if target == nil || target.Destroyed() {
			return validationErr(CodeInvalidTarget, "the selected target is gone")
		}
	}

	cpu := p.Card
	cpu.Activations++
	c.Pending = nil

	if cpu.State == StateDamaged && c.rng.Intn(3) == 0 {
		cpu.LastResult = "malfunctioned"
		c.log(log.NewMalfunctionEvent(c.Turn, c.Phase.String(), int(side), cpu.Card.Name))
		return nil
	}

	switch p.Ability.Kind {
	case AbilityDiscardDraw:
		for _, id := range p.HandSelection {
			if card := r.HandByID(id); card != nil {
				r.RemoveFromHand(card)
				r.sendToDiscard(card)
			}
		}
		drawn := 0
		for i := 0; i < p.Ability.DrawCount; i++ {
			if c.drawOne(r) == nil {
				break
			}
			drawn++
		}
		cpu.LastResult = fmt.Sprintf("discarded %d, drew %d", len(p.HandSelection), drawn)

	case AbilityReflexBlock:
		block := target.Card.Armor.ShieldBase
		r.Shield += block
		cpu.LastResult = fmt.Sprintf("reflex block: +%d shield from %s", block, target.Card.Name)

	case AbilitySiphonPower:
		target.Charges += p.Ability.SiphonCharge
		if target.Charges > target.Card.Battery.MaxActivations {
			target.Charges = target.Card.Battery.MaxActivations
		}
		cpu.LastResult = fmt.Sprintf("siphoned %d charge into %s", p.Ability.SiphonCharge, target.Card.Name)

	case AbilityExtraActivation:
		target.Activations = 0
		target.DynamoUsed = false
		cpu.LastResult = fmt.Sprintf("%s may activate again", target.Card.Name)
		c.log(log.NewAbilityConfirmedEvent(c.Turn, c.Phase.String(), int(side), cpu.Card.Name, cpu.LastResult))
		// An already fully-slotted target fires right away.
		return c.maybeResolveFull(r, target)

	case AbilityTargetLock:
		target.TargetLocked = true
		cpu.LastResult = fmt.Sprintf("%s locked on: next hits bypass defenses", target.Card.Name)
	}

	c.log(log.NewAbilityConfirmedEvent(c.Turn, c.Phase.String(), int(side), cpu.Card.Name, cpu.LastResult))
	return nil
}

// CancelCPUAbility discards the pending selection with no effect on state.
func (c *Combat) CancelCPUAbility(side Side) error {
	if _, err := c.actingRobot(side); err != nil {
		return err
	}
	if c.Pending == nil || c.Pending.Side != side {
		return validationErr(CodeNoPendingAbility, "no ability is pending")
	}
	c.cancelPending(side)
	return nil
}

func (c *Combat) cancelPending(side Side) {
	if c.Pending == nil {
		return
	}
	name := c.Pending.Card.Card.Name
	c.Pending = nil
	c.log(log.NewAbilityCancelledEvent(c.Turn, c.Phase.String(), int(side), name))
}
