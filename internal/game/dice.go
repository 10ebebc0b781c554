package game

import (
	"fmt"

	"github.com/eternaldensity/scrapduel/internal/log"
)

// Die is a rolled die sitting in a robot's pool or in a slot.
type Die struct {
	Sides int
	Value int

	Blazing   bool // self-damages the receiving card on assignment, then clears
	Hidden    bool // value masked from the owning side's display layer
	ForcedOne bool // Subzero forced this roll to 1
}

func (d Die) String() string {
	return fmt.Sprintf("%d (d%d)", d.Value, d.Sides)
}

// rollDie produces one die for the robot, applying the turn-scoped status
// counters in order: Subzero forces the value, then Overheated tags it
// Blazing, then Hidden masks it. A single die can carry all three.
func (c *Combat) rollDie(r *Robot, sides int) Die {
	die := Die{Sides: sides, Value: c.rng.Intn(sides) + 1}

	if r.Counters.SubzeroForced < r.Status(ElementSubzero) {
		die.Value = 1
		die.ForcedOne = true
		r.Counters.SubzeroForced++
	}
	if r.Counters.OverheatTagged < r.Status(ElementOverheated) {
		die.Blazing = true
		r.Counters.OverheatTagged++
	}
	if r.Counters.HiddenMasked < r.Status(ElementHidden) {
		die.Hidden = true
		r.Counters.HiddenMasked++
	}

	r.Counters.DiceRolled++
	return die
}

// AllocateDie moves a die from the acting robot's pool into a slot on an
// installed card. Filling the last open slot of a weapon, armor, or utility
// card resolves it immediately.
func (c *Combat) AllocateDie(side Side, dieIndex, cardID, slotID int) error {
	r, err := c.actingRobot(side)
	if err != nil {
		return err
	}

	card := r.InstalledByID(cardID)
	if card == nil {
		return notFoundErr(CodeCardNotFound, "no installed card %d", cardID)
	}
	if card.Destroyed() {
		return validationErr(CodeCardDestroyed, "%s is destroyed", card.Card.Name)
	}
	if dieIndex < 0 || dieIndex >= len(r.Pool) {
		return notFoundErr(CodeDieNotFound, "no die at index %d", dieIndex)
	}
	slot := card.SlotByID(slotID)
	if slot == nil {
		return notFoundErr(CodeSlotNotFound, "%s has no slot %d", card.Card.Name, slotID)
	}

	die := r.Pool[dieIndex]

	if slot.Locked {
		// Placing any die into a fused slot burns the die to unlock it.
		r.Pool = append(r.Pool[:dieIndex], r.Pool[dieIndex+1:]...)
		slot.Locked = false
		c.log(log.GameEvent{
			Turn: c.Turn, Phase: c.Phase.String(), Side: int(side),
			Type: log.EventAllocate, Card: card.Card.Name,
			Details: fmt.Sprintf("%s burns a %d to unfuse a slot on %s", side, die.Value, card.Card.Name),
		})
		return nil
	}
	if slot.Die != nil {
		return validationErr(CodeSlotOccupied, "slot %d on %s already holds a die", slotID, card.Card.Name)
	}
	if !slot.Cond.Satisfied(die.Value) {
		return validationErr(CodeConditionNotMet, "a %d does not fit slot %d on %s (%s)",
			die.Value, slotID, card.Card.Name, slot.Cond)
	}

	r.Pool = append(r.Pool[:dieIndex], r.Pool[dieIndex+1:]...)
	slot.Die = &die
	if card.Card.Capacitor != nil && card.State == StateDamaged && die.Value > die.Sides-2 {
		slot.Die.Value = die.Sides - 2
	}
	c.log(log.NewAllocateEvent(c.Turn, c.Phase.String(), int(side), die.Value, card.Card.Name, slotID))

	if die.Blazing {
		slot.Die.Blazing = false
		c.log(log.NewBlazingBurnEvent(c.Turn, c.Phase.String(), int(side), card.Card.Name))
		c.damageCard(r, card, 1, "blazing die")
		if c.Result != ResultOngoing {
			return nil
		}
		if card.Destroyed() {
			return nil
		}
	}

	return c.maybeResolveFull(r, card)
}

// UnallocateDie returns a slotted die to the pool untouched. On-assign side
// effects are never reversed or re-triggered.
func (c *Combat) UnallocateDie(side Side, cardID, slotID int) error {
	r, err := c.actingRobot(side)
	if err != nil {
		return err
	}

	card := r.InstalledByID(cardID)
	if card == nil {
		return notFoundErr(CodeCardNotFound, "no installed card %d", cardID)
	}
	slot := card.SlotByID(slotID)
	if slot == nil {
		return notFoundErr(CodeSlotNotFound, "%s has no slot %d", card.Card.Name, slotID)
	}
	if slot.Die == nil {
		return validationErr(CodeDieNotFound, "slot %d on %s is empty", slotID, card.Card.Name)
	}

	r.Pool = append(r.Pool, *slot.Die)
	slot.Die = nil
	c.log(log.NewUnallocateEvent(c.Turn, c.Phase.String(), int(side), card.Card.Name, slotID))
	return nil
}

// fullySlotted reports whether every unlocked slot on the card holds a die.
// Locked slots keep the card from firing until unfused.
func fullySlotted(card *CardInstance) bool {
	if len(card.Slots) == 0 {
		return false
	}
	for _, s := range card.Slots {
		if s.Locked || s.Die == nil {
			return false
		}
	}
	return true
}

// maybeResolveFull resolves a weapon, armor, or utility card the moment its
// slots fill, provided it still has an activation this turn. Capacitors keep
// their dice stored instead.
func (c *Combat) maybeResolveFull(r *Robot, card *CardInstance) error {
	if !fullySlotted(card) || !card.CanActivate() {
		return nil
	}
	switch card.Card.Category {
	case CategoryWeapon:
		if card.Card.Weapon.AutoFire {
			return nil // discharges at end of turn instead
		}
		return c.resolveWeapon(r, card)
	case CategoryArmor:
		return c.resolveArmor(r, card)
	case CategoryUtility:
		return c.resolveUtility(r, card)
	default:
		return nil
	}
}
