package game

import (
	"time"

	"github.com/eternaldensity/scrapduel/internal/log"
)

// EnemyStep is one presentable slice of the enemy's turn. The engine resolves
// the whole turn atomically; steps exist only so a client can replay it with
// pacing. Events holds the log entries the step produced.
type EnemyStep struct {
	Description string
	Events      []log.GameEvent
	Delay       time.Duration
}

const (
	stepDelayShort  = 600 * time.Millisecond
	stepDelayAttack = 1100 * time.Millisecond
)

type eventHistory interface {
	Events() []log.GameEvent
}

// stepRecorder slices the event log into per-step windows as the enemy acts.
type stepRecorder struct {
	hist  eventHistory
	mark  int
	steps []EnemyStep
}

func newStepRecorder(logger log.EventLogger) *stepRecorder {
	rec := &stepRecorder{}
	if hist, ok := logger.(eventHistory); ok {
		rec.hist = hist
		rec.mark = len(hist.Events())
	}
	return rec
}

// cut closes the current window. Steps that produced no events are dropped.
func (rec *stepRecorder) cut(desc string, delay time.Duration) {
	if rec.hist == nil {
		rec.steps = append(rec.steps, EnemyStep{Description: desc, Delay: delay})
		return
	}
	events := rec.hist.Events()
	if len(events) == rec.mark {
		return
	}
	window := make([]log.GameEvent, len(events)-rec.mark)
	copy(window, events[rec.mark:])
	rec.mark = len(events)
	rec.steps = append(rec.steps, EnemyStep{Description: desc, Events: window, Delay: delay})
}

// runEnemyTurn plays out the enemy's entire segment through the same command
// surface the player uses, recording replay steps along the way. The combat
// may end mid-turn; remaining actions are skipped.
func (c *Combat) runEnemyTurn() []EnemyStep {
	enemy := c.Enemy()
	rec := newStepRecorder(c.Logger)

	c.startSegment(enemy)
	c.Phase = PhaseEnemyTurn
	rec.cut("enemy powers up", stepDelayShort)

	c.enemyRecallStored(enemy, rec)
	c.enemyInstall(enemy, rec)
	c.enemyActivateBatteries(enemy, rec)

	for c.Result == ResultOngoing && c.enemyAllocateOne(enemy) {
		rec.cut("enemy allocates power", stepDelayAttack)
	}
	if c.Result != ResultOngoing {
		return rec.steps
	}

	c.enemyUseCPUs(enemy, rec)
	if c.Result != ResultOngoing {
		return rec.steps
	}

	c.endSegment(enemy)
	rec.cut("enemy ends its turn", stepDelayAttack)
	return rec.steps
}

// enemyRecallStored boosts and reclaims dice the enemy banked in capacitors on
// an earlier turn.
func (c *Combat) enemyRecallStored(r *Robot, rec *stepRecorder) {
	for _, bank := range r.InstalledOfCategory(CategoryCapacitor) {
		if bank.Destroyed() {
			continue
		}
		for _, s := range bank.Slots {
			if s.Die == nil {
				continue
			}
			if bank.Card.Capacitor.DynamoBoost > 0 && !bank.DynamoUsed {
				_ = c.ActivateCapacitor(SideEnemy, bank.ID, s.ID)
			}
			if err := c.UnallocateDie(SideEnemy, bank.ID, s.ID); err == nil {
				rec.cut("enemy reclaims stored power", stepDelayShort)
			}
		}
	}
}

func (c *Combat) enemyInstall(r *Robot, rec *stepRecorder) {
	hand := append([]*CardInstance(nil), r.Hand...)
	for _, card := range hand {
		if err := c.InstallCard(SideEnemy, card.ID); err == nil {
			rec.cut("enemy installs a component", stepDelayShort)
		}
	}
}

func (c *Combat) enemyActivateBatteries(r *Robot, rec *stepRecorder) {
	for _, bat := range r.InstalledOfCategory(CategoryBattery) {
		for c.ActivateBattery(SideEnemy, bat.ID) == nil {
			rec.cut("enemy spins up a battery", stepDelayShort)
		}
	}
}

// enemyAllocateOne places the single best pool die it can find, preferring
// weapons over armor over utilities, with capacitors as a bank for leftovers.
// Returns false once nothing can be placed.
func (c *Combat) enemyAllocateOne(r *Robot) bool {
	order := []Category{CategoryWeapon, CategoryArmor, CategoryUtility, CategoryCapacitor}
	for _, cat := range order {
		for _, card := range r.InstalledOfCategory(cat) {
			if card.Destroyed() {
				continue
			}
			if cat != CategoryCapacitor && !card.CanActivate() {
				continue
			}
			for _, s := range card.Slots {
				if s.Die != nil || s.Locked {
					continue
				}
				idx := bestDieFor(r.Pool, s.Cond)
				if idx < 0 {
					continue
				}
				if c.AllocateDie(SideEnemy, idx, card.ID, s.ID) == nil {
					return true
				}
			}
		}
	}
	return false
}

// bestDieFor picks the highest-value pool die satisfying the condition.
func bestDieFor(pool []Die, cond SlotCondition) int {
	best := -1
	for i, d := range pool {
		if !cond.Satisfied(d.Value) {
			continue
		}
		if best < 0 || d.Value > pool[best].Value {
			best = i
		}
	}
	return best
}

// enemyUseCPUs runs each ready CPU through the full targeting protocol,
// cancelling cleanly when no legal selection exists.
func (c *Combat) enemyUseCPUs(r *Robot, rec *stepRecorder) {
	for _, cpu := range r.InstalledOfCategory(CategoryCPU) {
		if cpu.Destroyed() || !cpu.CanActivate() {
			continue
		}
		if c.ActivateCPU(SideEnemy, cpu.ID) != nil {
			continue
		}
		ability := cpu.Card.CPU.Ability

		ok := false
		switch ability.SelectionMode() {
		case SelectHandCards:
			if len(r.Hand) >= ability.DiscardCount {
				ok = true
				for i := 0; i < ability.DiscardCount; i++ {
					if c.ToggleCPUDiscard(SideEnemy, r.Hand[i].ID) != nil {
						ok = false
						break
					}
				}
			}
		case SelectInstalledCard:
			for _, target := range r.Installed {
				if !target.Destroyed() && abilityTargetOK(ability, target) == nil {
					ok = c.SelectCPUTarget(SideEnemy, target.ID) == nil
					break
				}
			}
		}

		if !ok || c.ConfirmCPUAbility(SideEnemy) != nil {
			_ = c.CancelCPUAbility(SideEnemy)
			continue
		}
		rec.cut("enemy engages a CPU routine", stepDelayAttack)
		if c.Result != ResultOngoing {
			return
		}
	}
}
