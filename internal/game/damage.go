package game

import (
	"fmt"

	"github.com/eternaldensity/scrapduel/internal/log"
)

// resolveWeapon fires when a weapon's slots fill: compute damage, run it
// through the opposing robot's defense pools, apply the remainder to the
// targeted card, and apply any elemental stacks on a damaging hit.
func (c *Combat) resolveWeapon(r *Robot, card *CardInstance) error {
	props := card.Card.Weapon
	opp := c.Robots[r.Side.Opponent()]

	dice := card.AssignedDice()
	raw := 0
	if props.Multiplier > 0 {
		if len(dice) > 0 {
			raw = dice[0].Value * props.Multiplier
		}
	} else {
		for _, d := range dice {
			raw += d.Value
		}
	}
	raw += props.DamageBase
	if props.Escalating {
		raw += r.WeaponsFired
	}
	raw += r.Overcharge
	if card.State == StateDamaged {
		raw /= 2
	}

	card.clearSlots()
	card.Activations++
	r.WeaponsFired++

	bypass := card.TargetLocked || props.DamageType == DamagePlasma
	card.TargetLocked = false
	absorbed := 0
	if !bypass {
		absorbed = c.absorb(opp, props.DamageType, raw)
	}
	dealt := raw - absorbed

	target := weaponTarget(opp)
	result := &AttackResult{
		Weapon:     card.Card.Name,
		WeaponID:   card.ID,
		TargetSide: opp.Side,
		DamageType: props.DamageType,
		Raw:        raw,
		Absorbed:   absorbed,
		Dealt:      dealt,
		Bypassed:   bypass,
	}

	if target != nil && dealt > 0 {
		result.Target = target.Card.Name
		result.TargetID = target.ID
		card.LastResult = fmt.Sprintf("dealt %d %s to %s", dealt, props.DamageType, target.Card.Name)
		c.log(log.NewDamageEvent(c.Turn, c.Phase.String(), int(opp.Side), target.Card.Name, dealt, props.DamageType.String()))
		c.damageCard(opp, target, dealt, fmt.Sprintf("%s hit", card.Card.Name))
		c.applyStatus(opp, props.Element, props.Stacks)
	} else {
		card.LastResult = fmt.Sprintf("0 damage (%d absorbed)", absorbed)
		c.log(log.NewActivateEvent(c.Turn, c.Phase.String(), int(r.Side), card.Card.Name, card.LastResult))
	}
	c.LastAttack = result

	if props.SelfDamage > 0 && !card.Destroyed() && c.Result == ResultOngoing {
		c.damageCard(r, card, props.SelfDamage, "recoil")
	}
	return nil
}

// absorb runs damage through the robot's defense pools and returns the total
// amount soaked. The matching pool absorbs one-for-one; the other pool soaks
// at quarter rate. Pools are depleted by what they absorb.
func (c *Combat) absorb(r *Robot, dmgType DamageType, amount int) int {
	if amount <= 0 {
		return 0
	}
	primary, secondary := &r.Plating, &r.Shield
	if dmgType == DamageEnergy {
		primary, secondary = &r.Shield, &r.Plating
	}

	absorbed := min(*primary, amount)
	*primary -= absorbed
	remaining := amount - absorbed

	partial := min(*secondary, remaining/4)
	*secondary -= partial
	absorbed += partial

	return absorbed
}

// weaponTarget picks the card a hit lands on: the front-most non-destroyed
// HP-bearing component that is not the chassis, falling back to the chassis.
func weaponTarget(r *Robot) *CardInstance {
	for _, ci := range r.Installed {
		if ci.Destroyed() || ci.Card.MaxHP == 0 || ci.Card.Category == CategoryChassis {
			continue
		}
		return ci
	}
	for _, ci := range r.Installed {
		if ci.Card.Category == CategoryChassis && !ci.Destroyed() {
			return ci
		}
	}
	return nil
}
