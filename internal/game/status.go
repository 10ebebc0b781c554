package game

import "github.com/eternaldensity/scrapduel/internal/log"

// applyStatus stacks an elemental effect onto the robot. Multiple hits of the
// same element in one turn stack additively.
func (c *Combat) applyStatus(r *Robot, e Element, stacks int) {
	if e == ElementNone || stacks <= 0 {
		return
	}
	r.Statuses[e] += stacks
	c.log(log.NewStatusAppliedEvent(c.Turn, c.Phase.String(), int(r.Side), e.String(), r.Statuses[e]))
}

// applyRust deals the robot's Rust stack as damage to one random installed
// card that is neither a CPU nor a Battery. With no eligible card the damage
// is dropped.
func (c *Combat) applyRust(r *Robot) {
	stacks := r.Status(ElementRust)
	if stacks <= 0 {
		return
	}
	var eligible []*CardInstance
	for _, ci := range r.Installed {
		if ci.Destroyed() {
			continue
		}
		if ci.Card.Category == CategoryCPU || ci.Card.Category == CategoryBattery {
			continue
		}
		eligible = append(eligible, ci)
	}
	if len(eligible) == 0 {
		return
	}
	target := eligible[c.rng.Intn(len(eligible))]
	c.log(log.NewRustDamageEvent(c.Turn, c.Phase.String(), int(r.Side), target.Card.Name, stacks))
	c.damageCard(r, target, stacks, "rust")
}

// decayStatuses runs end-of-turn decay: every effect clears except Rust,
// which decrements by exactly 1.
func (c *Combat) decayStatuses(r *Robot) {
	for e, n := range r.Statuses {
		if n <= 0 {
			continue
		}
		remaining := 0
		if e == ElementRust {
			remaining = n - 1
		}
		if remaining > 0 {
			r.Statuses[e] = remaining
		} else {
			delete(r.Statuses, e)
		}
		c.log(log.NewStatusDecayEvent(c.Turn, c.Phase.String(), int(r.Side), e.String(), remaining))
	}
}
