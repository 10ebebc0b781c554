package game

import (
	"fmt"
	"strings"

	"github.com/eternaldensity/scrapduel/internal/log"
)

// ActivateBattery rolls the battery's dice into the acting robot's pool,
// spending one charge.
func (c *Combat) ActivateBattery(side Side, cardID int) error {
	r, err := c.actingRobot(side)
	if err != nil {
		return err
	}
	card := r.InstalledByID(cardID)
	if card == nil {
		return notFoundErr(CodeCardNotFound, "no installed card %d", cardID)
	}
	if card.Card.Battery == nil {
		return validationErr(CodeInvalidTarget, "%s is not a battery", card.Card.Name)
	}
	if card.Destroyed() {
		return validationErr(CodeCardDestroyed, "%s is destroyed", card.Card.Name)
	}
	if !card.CanActivate() {
		return validationErr(CodeAlreadyActivated, "%s already activated this turn", card.Card.Name)
	}
	if card.Charges <= 0 {
		return exhaustedErr(CodeNotEnoughCharge, "%s has no charge left", card.Card.Name)
	}

	props := card.Card.Battery
	count := props.DiceCount
	capAt := 0
	if card.State == StateDamaged {
		// A damaged battery loses a die, or caps its single die at sides-2.
		if count > 1 {
			count--
		} else {
			capAt = props.DieSides - 2
		}
	}

	var rolled []Die
	for i := 0; i < count; i++ {
		die := c.rollDie(r, props.DieSides)
		if capAt > 0 && die.Value > capAt {
			die.Value = capAt
		}
		rolled = append(rolled, die)
	}
	r.Pool = append(r.Pool, rolled...)

	card.Charges--
	card.Activations++
	card.LastResult = fmt.Sprintf("rolled %s", formatDice(rolled))
	c.log(log.NewRollEvent(c.Turn, c.Phase.String(), int(side), card.Card.Name, formatDice(rolled)))
	return nil
}

// ActivateCapacitor spends the capacitor's once-per-turn Dynamo boost on the
// die stored in the given slot.
func (c *Combat) ActivateCapacitor(side Side, cardID, slotID int) error {
	r, err := c.actingRobot(side)
	if err != nil {
		return err
	}
	card := r.InstalledByID(cardID)
	if card == nil {
		return notFoundErr(CodeCardNotFound, "no installed card %d", cardID)
	}
	if card.Card.Capacitor == nil {
		return validationErr(CodeInvalidTarget, "%s is not a capacitor", card.Card.Name)
	}
	if card.Destroyed() {
		return validationErr(CodeCardDestroyed, "%s is destroyed", card.Card.Name)
	}
	if card.Card.Capacitor.DynamoBoost <= 0 {
		return validationErr(CodeInvalidTarget, "%s has no dynamo", card.Card.Name)
	}
	if card.DynamoUsed {
		return validationErr(CodeAlreadyActivated, "%s already boosted this turn", card.Card.Name)
	}
	slot := card.SlotByID(slotID)
	if slot == nil {
		return notFoundErr(CodeSlotNotFound, "%s has no slot %d", card.Card.Name, slotID)
	}
	if slot.Locked {
		return validationErr(CodeSlotLocked, "slot %d on %s is fused shut", slotID, card.Card.Name)
	}
	if slot.Die == nil {
		return validationErr(CodeInvalidTarget, "slot %d on %s holds no die", slotID, card.Card.Name)
	}

	slot.Die.Value += card.Card.Capacitor.DynamoBoost
	if slot.Die.Value > slot.Die.Sides {
		slot.Die.Value = slot.Die.Sides
	}
	if card.State == StateDamaged && slot.Die.Value > slot.Die.Sides-2 {
		slot.Die.Value = slot.Die.Sides - 2
	}
	card.DynamoUsed = true
	card.Activations++
	card.LastResult = fmt.Sprintf("boosted a stored die to %d", slot.Die.Value)
	c.log(log.NewActivateEvent(c.Turn, c.Phase.String(), int(side), card.Card.Name, card.LastResult))
	return nil
}

// resolveArmor fires when an armor card's slots fill: plating is permanent,
// shield lasts until the robot's next turn. Dual-mode armor picks shield when
// the dice sum satisfies its condition, plating otherwise.
func (c *Combat) resolveArmor(r *Robot, card *CardInstance) error {
	props := card.Card.Armor
	sum := 0
	for _, d := range card.AssignedDice() {
		sum += d.Value
	}

	total := sum + props.ShieldBase
	if card.State == StateDamaged {
		total /= 2
	}

	mode := props.Mode
	if mode == ArmorDual {
		if props.DualCond.Satisfied(sum) {
			mode = ArmorShield
		} else {
			mode = ArmorPlating
		}
	}

	card.clearSlots()
	card.Activations++

	switch mode {
	case ArmorShield:
		r.Shield += total
	default:
		r.Plating += total
	}
	card.LastResult = fmt.Sprintf("+%d %s", total, mode)
	c.log(log.NewDefenseEvent(c.Turn, c.Phase.String(), int(r.Side), card.Card.Name, total, mode.String()))
	return nil
}

// resolveUtility fires when a utility card's slot fills, consuming the die.
func (c *Combat) resolveUtility(r *Robot, card *CardInstance) error {
	dice := card.AssignedDice()
	if len(dice) == 0 {
		return nil
	}
	die := *dice[0]
	card.clearSlots()
	card.Activations++

	switch card.Card.Utility.Kind {
	case UtilitySplitDie:
		lo := Die{Sides: die.Sides, Value: die.Value / 2}
		hi := Die{Sides: die.Sides, Value: (die.Value + 1) / 2}
		r.Pool = append(r.Pool, lo, hi)
		card.LastResult = fmt.Sprintf("split a %d into %d and %d", die.Value, lo.Value, hi.Value)

	case UtilityOvercharge:
		r.Overcharge++
		card.LastResult = "+1 weapon damage this turn"

	case UtilityReroll:
		rerolled := c.rollDie(r, die.Sides)
		r.Pool = append(r.Pool, rerolled)
		card.LastResult = fmt.Sprintf("rerolled a %d into %s", die.Value, formatDie(rerolled))

	case UtilityDrawCards:
		n := die.Value + 1
		drawn := 0
		for i := 0; i < n; i++ {
			if c.drawOne(r) == nil {
				break
			}
			drawn++
		}
		card.LastResult = fmt.Sprintf("drew %d card(s)", drawn)
	}

	c.log(log.NewActivateEvent(c.Turn, c.Phase.String(), int(r.Side), card.Card.Name, card.LastResult))
	return nil
}

func formatDie(d Die) string {
	if d.Hidden {
		return "?"
	}
	return fmt.Sprintf("%d", d.Value)
}

func formatDice(dice []Die) string {
	parts := make([]string, len(dice))
	for i, d := range dice {
		parts[i] = formatDie(d)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
